// Package dwca describes rows of the Darwin Core Archive tables that
// GNmoth reads: Taxon, VernacularName, SpeciesProfile and Distribution.
//
// The package is pure. It knows the column names of each table and how to
// turn a header-addressed Record into a typed row. Reading files belongs to
// internal/iotsv.
package dwca

import "errors"

// ErrMalformedRow is the signal for a row that does not fit the shape of
// its table. Such rows are counted and skipped, they never abort a run.
var ErrMalformedRow = errors.New("malformed row")

// Record gives access to the fields of one data line by column name.
// Missing columns and empty fields both return an empty string.
type Record interface {
	Get(column string) string
}

// Table names, they are also the base names of the TSV files.
const (
	TaxonTable          = "Taxon"
	VernacularTable     = "VernacularName"
	SpeciesProfileTable = "SpeciesProfile"
	DistributionTable   = "Distribution"
)

// SpeciesRank is the dwc:taxonRank value of species.
const SpeciesRank = "species"

// Taxon table columns.
const (
	ColTaxonID            = "dwc:taxonID"
	ColParentID           = "dwc:parentNameUsageID"
	ColAcceptedID         = "dwc:acceptedNameUsageID"
	ColOriginalID         = "dwc:originalNameUsageID"
	ColTaxonomicStatus    = "dwc:taxonomicStatus"
	ColTaxonRank          = "dwc:taxonRank"
	ColScientificName     = "dwc:scientificName"
	ColAuthorship         = "dwc:scientificNameAuthorship"
	ColGenericName        = "dwc:genericName"
	ColSpecificEpithet    = "dwc:specificEpithet"
	ColOrder              = "dwc:order"
	ColSuperfamily        = "dwc:superfamily"
	ColFamily             = "dwc:family"
	ColSubfamily          = "dwc:subfamily"
	ColTribe              = "dwc:tribe"
	ColSubtribe           = "dwc:subtribe"
	ColGenus              = "dwc:genus"
	ColVernacularLanguage = "dcterms:language"
	ColVernacularName     = "dwc:vernacularName"
	ColIsExtinct          = "gbif:isExtinct"
	ColIsMarine           = "gbif:isMarine"
	ColIsFreshwater       = "gbif:isFreshwater"
	ColThreatStatus       = "iucn:threatStatus"
	ColLocality           = "dwc:locality"
)

// RequiredColumns lists, per table, the columns a header must contain.
// All other columns are optional and read as empty when absent.
var RequiredColumns = map[string][]string{
	TaxonTable: {
		ColTaxonID, ColAcceptedID, ColTaxonomicStatus, ColTaxonRank,
	},
	VernacularTable: {
		ColTaxonID, ColVernacularLanguage, ColVernacularName,
	},
	SpeciesProfileTable: {ColTaxonID},
	DistributionTable:   {ColTaxonID},
}
