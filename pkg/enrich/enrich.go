// Package enrich keeps lookups built from the auxiliary tables
// (VernacularName, SpeciesProfile, Distribution) and joins them to moth
// species by taxon ID.
package enrich

import (
	"github.com/gnames/gnmoth/pkg/dwca"
	"github.com/gnames/gnmoth/pkg/moth"
)

// DefaultLanguage is the language of common names kept by default.
const DefaultLanguage = "eng"

// Joiner holds three independent lookups keyed by taxon ID.
type Joiner struct {
	lang     string
	names    map[string][]string
	profiles map[string]moth.SpeciesProfile
	dists    map[string]moth.Distribution
}

// Bundle is the enrichment of one taxon. Every part is optional.
type Bundle struct {
	CommonNames    []string
	SpeciesProfile *moth.SpeciesProfile
	Distribution   *moth.Distribution
}

// New creates a Joiner that keeps common names in the given language.
// An empty lang means DefaultLanguage.
func New(lang string) *Joiner {
	if lang == "" {
		lang = DefaultLanguage
	}
	return &Joiner{
		lang:     lang,
		names:    make(map[string][]string),
		profiles: make(map[string]moth.SpeciesProfile),
		dists:    make(map[string]moth.Distribution),
	}
}

// AddVernacular keeps the name if it is in the language of the Joiner and
// reports if it was kept. Repeated names stay in the list.
func (j *Joiner) AddVernacular(row dwca.VernacularRow) bool {
	if row.Language != j.lang || row.Name == "" {
		return false
	}
	j.names[row.TaxonID] = append(j.names[row.TaxonID], row.Name)
	return true
}

// AddProfile stores ecological flags of a taxon. The last row for a taxon
// wins, and a last row without any flag leaves the taxon without profile.
func (j *Joiner) AddProfile(row dwca.ProfileRow) {
	sp := moth.SpeciesProfile{
		Extinct:    row.Extinct,
		Freshwater: row.Freshwater,
		Marine:     row.Marine,
	}
	if sp.IsEmpty() {
		delete(j.profiles, row.TaxonID)
		return
	}
	j.profiles[row.TaxonID] = sp
}

// AddDistribution stores locality and threat status of a taxon. The last
// row for a taxon wins, and a last row with neither value leaves the taxon
// without distribution.
func (j *Joiner) AddDistribution(row dwca.DistributionRow) {
	d := moth.Distribution{
		Locality:     row.Locality,
		ThreatStatus: row.ThreatStatus,
	}
	if d.IsEmpty() {
		delete(j.dists, row.TaxonID)
		return
	}
	j.dists[row.TaxonID] = d
}

// Join returns enrichment for a taxon. Missing data results in nil parts.
func (j *Joiner) Join(taxonID string) Bundle {
	var res Bundle
	if names, ok := j.names[taxonID]; ok {
		res.CommonNames = names
	}
	if sp, ok := j.profiles[taxonID]; ok {
		res.SpeciesProfile = &sp
	}
	if d, ok := j.dists[taxonID]; ok {
		res.Distribution = &d
	}
	return res
}

// Sizes returns the number of taxa in each lookup.
func (j *Joiner) Sizes() (names, profiles, distributions int) {
	return len(j.names), len(j.profiles), len(j.dists)
}
