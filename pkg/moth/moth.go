// Package moth contains the entities GNmoth produces: moth species
// entries, the butterfly blacklist, the collision record and the run
// summary. JSON field names follow the published moth dataset, absent
// optional values are omitted instead of written as null.
package moth

import "github.com/gnames/gnmoth/pkg/dwca"

// Entry is one accepted moth species.
type Entry struct {
	// TaxonID is the Catalogue of Life taxon ID, unique in the output.
	TaxonID string `json:"catalogue_of_life_taxon_id"`

	// CanonicalName is the simple canonical form of the scientific name.
	CanonicalName string `json:"canonical_name,omitempty"`

	// NameID is UUID v5 generated from CanonicalName.
	NameID string `json:"name_id,omitempty"`

	Classification Classification `json:"classification"`

	CommonNames []string `json:"common_names,omitempty"`

	SpeciesProfile *SpeciesProfile `json:"species_profile,omitempty"`

	Distribution *Distribution `json:"distribution,omitempty"`

	Synonyms []Synonym `json:"synonyms,omitempty"`
}

// Classification is the ladder from superfamily down to the specific
// epithet. Genus and Epithet are always set for moths, empty strings in
// the other fields mean the rank is absent.
type Classification struct {
	Superfamily string `json:"superfamily,omitempty"`
	Family      string `json:"family,omitempty"`
	Subfamily   string `json:"subfamily,omitempty"`
	Tribe       string `json:"tribe,omitempty"`
	Subtribe    string `json:"subtribe,omitempty"`
	Genus       string `json:"genus"`
	Epithet     string `json:"epithet"`
}

// SpeciesProfile keeps ecological flags. A nil flag was absent in the
// source, it does not mean false.
type SpeciesProfile struct {
	Extinct    *bool `json:"extinct,omitempty"`
	Freshwater *bool `json:"freshwater,omitempty"`
	Marine     *bool `json:"marine,omitempty"`
}

// IsEmpty is true when no flag is set.
func (sp SpeciesProfile) IsEmpty() bool {
	return sp.Extinct == nil && sp.Freshwater == nil && sp.Marine == nil
}

// Distribution keeps locality and IUCN threat status of a species.
type Distribution struct {
	Locality     string            `json:"locality,omitempty"`
	ThreatStatus dwca.ThreatStatus `json:"threat_status,omitempty"`
}

// IsEmpty is true when neither locality nor threat status is known.
func (d Distribution) IsEmpty() bool {
	return d.Locality == "" && d.ThreatStatus == dwca.NoThreatStatus
}

// Synonym is a name a moth species was also filed under.
type Synonym struct {
	TaxonID string `json:"catalogue_of_life_taxon_id"`
	Genus   string `json:"genus"`
	Epithet string `json:"epithet"`
}

// Fragments is the shape shared by the butterfly blacklist and the
// collision record: six sets of name fragments, serialized as sorted
// arrays.
type Fragments struct {
	Families    []string `json:"families"`
	Subfamilies []string `json:"subfamilies"`
	Tribes      []string `json:"tribes"`
	Subtribes   []string `json:"subtribes"`
	Genera      []string `json:"genera"`
	Epithets    []string `json:"epithets"`
}

// Len returns the number of fragments in all categories.
func (f Fragments) Len() int {
	return len(f.Families) + len(f.Subfamilies) + len(f.Tribes) +
		len(f.Subtribes) + len(f.Genera) + len(f.Epithets)
}

// Result is everything one run produces.
type Result struct {
	Moths      []Entry
	Blacklist  Fragments
	Collisions Fragments
	Summary    Summary
}
