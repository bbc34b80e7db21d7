package dwca

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gnames/gnlib"
)

// Ladder holds the classification fields of a Taxon row, from order down
// to the specific epithet. Any field may be empty, even for species.
type Ladder struct {
	Order       string
	Superfamily string
	Family      string
	Subfamily   string
	Tribe       string
	Subtribe    string
	Genus       string
	// GenericName is used when Genus is empty.
	GenericName string
	Epithet     string
}

// GenusOrGeneric returns Genus, or GenericName if Genus is empty.
func (l Ladder) GenusOrGeneric() string {
	if l.Genus != "" {
		return l.Genus
	}
	return l.GenericName
}

// TaxonRow is one record of the Taxon table.
type TaxonRow struct {
	TaxonID        string
	ParentID       string
	AcceptedID     string
	OriginalID     string
	Status         TaxonomicStatus
	Rank           string
	ScientificName string
	Authorship     string
	Ladder
}

// VernacularRow is one record of the VernacularName table.
type VernacularRow struct {
	TaxonID  string
	Language string
	Name     string
}

// ProfileRow is one record of the SpeciesProfile table. A nil flag means
// the value was absent in the source.
type ProfileRow struct {
	TaxonID    string
	Extinct    *bool
	Freshwater *bool
	Marine     *bool
}

// DistributionRow is one record of the Distribution table.
type DistributionRow struct {
	TaxonID      string
	Locality     string
	ThreatStatus ThreatStatus
}

// DecodeTaxon builds a TaxonRow from a record. A row without taxon ID is
// malformed. A species row with a taxonomic status outside of the closed
// set is malformed too, rows of other ranks get UnknownStatus instead.
func DecodeTaxon(r Record) (TaxonRow, error) {
	var res TaxonRow
	res.TaxonID = r.Get(ColTaxonID)
	if res.TaxonID == "" {
		return res, fmt.Errorf("%w: empty %s", ErrMalformedRow, ColTaxonID)
	}

	res.Rank = r.Get(ColTaxonRank)
	status, err := NewTaxonomicStatus(r.Get(ColTaxonomicStatus))
	if err != nil && res.Rank == SpeciesRank {
		return res, fmt.Errorf("taxon '%s': %w", res.TaxonID, err)
	}

	res.Status = status
	res.ParentID = r.Get(ColParentID)
	res.AcceptedID = r.Get(ColAcceptedID)
	res.OriginalID = r.Get(ColOriginalID)
	res.ScientificName = gnlib.FixUtf8(r.Get(ColScientificName))
	res.Authorship = gnlib.FixUtf8(r.Get(ColAuthorship))
	res.Ladder = Ladder{
		Order:       r.Get(ColOrder),
		Superfamily: r.Get(ColSuperfamily),
		Family:      r.Get(ColFamily),
		Subfamily:   r.Get(ColSubfamily),
		Tribe:       r.Get(ColTribe),
		Subtribe:    r.Get(ColSubtribe),
		Genus:       r.Get(ColGenus),
		GenericName: r.Get(ColGenericName),
		Epithet:     r.Get(ColSpecificEpithet),
	}
	return res, nil
}

// DecodeVernacular builds a VernacularRow from a record.
func DecodeVernacular(r Record) (VernacularRow, error) {
	res := VernacularRow{
		TaxonID:  r.Get(ColTaxonID),
		Language: r.Get(ColVernacularLanguage),
		Name:     gnlib.FixUtf8(r.Get(ColVernacularName)),
	}
	if res.TaxonID == "" {
		return res, fmt.Errorf("%w: empty %s", ErrMalformedRow, ColTaxonID)
	}
	return res, nil
}

// DecodeProfile builds a ProfileRow from a record. Flags that are empty or
// not a boolean stay nil.
func DecodeProfile(r Record) (ProfileRow, error) {
	res := ProfileRow{
		TaxonID:    r.Get(ColTaxonID),
		Extinct:    parseFlag(r.Get(ColIsExtinct)),
		Freshwater: parseFlag(r.Get(ColIsFreshwater)),
		Marine:     parseFlag(r.Get(ColIsMarine)),
	}
	if res.TaxonID == "" {
		return res, fmt.Errorf("%w: empty %s", ErrMalformedRow, ColTaxonID)
	}
	return res, nil
}

// DecodeDistribution builds a DistributionRow from a record.
func DecodeDistribution(r Record) (DistributionRow, error) {
	res := DistributionRow{
		TaxonID:      r.Get(ColTaxonID),
		Locality:     gnlib.FixUtf8(r.Get(ColLocality)),
		ThreatStatus: NewThreatStatus(r.Get(ColThreatStatus)),
	}
	if res.TaxonID == "" {
		return res, fmt.Errorf("%w: empty %s", ErrMalformedRow, ColTaxonID)
	}
	return res, nil
}

func parseFlag(s string) *bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	b, err := strconv.ParseBool(strings.ToLower(s))
	if err != nil {
		return nil
	}
	return &b
}
