// Package classify decides what a Taxon row is: a moth species, a
// butterfly species, a synonym, a misapplied name, or something GNmoth
// does not care about.
//
// The order of checks is fixed: rank, then synonym and misapplied status,
// then order, then superfamily. Synonym rows usually carry little or no
// classification, so they are recognized before the order test.
package classify

import (
	"errors"

	"github.com/gnames/gnmoth/pkg/dwca"
	"github.com/gnames/gnmoth/pkg/moth"
)

const (
	// SpeciesRank is the only rank taken into account.
	SpeciesRank = dwca.SpeciesRank
	// MothOrder is the order all moths belong to.
	MothOrder = "Lepidoptera"
	// ButterflySuperfamily separates butterflies from moths.
	ButterflySuperfamily = "Papilionoidea"
)

var (
	// ErrMissingGenus means a moth row has neither genus nor generic name.
	ErrMissingGenus = errors.New("moth row without genus or generic name")
	// ErrMissingEpithet means a moth row has no specific epithet.
	ErrMissingEpithet = errors.New("moth row without specific epithet")
)

// Category is the outcome of classification.
type Category int

const (
	Irrelevant Category = iota
	Moth
	Butterfly
	Synonym
	Misapplied
)

func (c Category) String() string {
	switch c {
	case Moth:
		return "Species-Moth"
	case Butterfly:
		return "Species-Butterfly"
	case Synonym:
		return "Synonym"
	case Misapplied:
		return "Misapplied"
	default:
		return "Irrelevant"
	}
}

// Result is a classified row. Only the field matching Category is set.
type Result struct {
	Category Category

	// Moth is set for a repaired moth species.
	Moth *MothCandidate

	// Synonym is set for synonyms that have both genus and epithet.
	// Synonym rows without a usable name have Category Synonym and a nil
	// Synonym.
	Synonym *SynonymCandidate

	// Butterfly keeps the ladder of a butterfly species for the blacklist.
	Butterfly *moth.Classification
}

// MothCandidate is a moth species with a repaired ladder.
type MothCandidate struct {
	TaxonID        string
	ScientificName string
	Classification moth.Classification
}

// SynonymCandidate is a synonym together with the ID of its accepted taxon.
type SynonymCandidate struct {
	TargetID string
	Species  moth.Synonym
}

// Classify returns the category of a row. For moth rows that cannot be
// repaired it returns a Result with Category Moth and ErrMissingGenus or
// ErrMissingEpithet. Such rows are bad entries.
func Classify(row dwca.TaxonRow) (Result, error) {
	if row.Rank != SpeciesRank {
		return Result{Category: Irrelevant}, nil
	}

	switch {
	case row.Status.IsSynonym():
		return Result{Category: Synonym, Synonym: synonym(row)}, nil
	case row.Status == dwca.Misapplied:
		return Result{Category: Misapplied}, nil
	}

	if row.Order != MothOrder {
		return Result{Category: Irrelevant}, nil
	}

	if row.Superfamily == ButterflySuperfamily {
		cl := ladder(row.Ladder)
		return Result{Category: Butterfly, Butterfly: &cl}, nil
	}

	cl := ladder(row.Ladder)
	res := Result{Category: Moth}
	if cl.Genus == "" {
		return res, ErrMissingGenus
	}
	if cl.Epithet == "" {
		return res, ErrMissingEpithet
	}

	res.Moth = &MothCandidate{
		TaxonID:        row.TaxonID,
		ScientificName: row.ScientificName,
		Classification: cl,
	}
	return res, nil
}

func synonym(row dwca.TaxonRow) *SynonymCandidate {
	genus := row.GenusOrGeneric()
	if genus == "" || row.Epithet == "" || row.AcceptedID == "" {
		return nil
	}
	return &SynonymCandidate{
		TargetID: row.AcceptedID,
		Species: moth.Synonym{
			TaxonID: row.TaxonID,
			Genus:   genus,
			Epithet: row.Epithet,
		},
	}
}

func ladder(l dwca.Ladder) moth.Classification {
	return moth.Classification{
		Superfamily: l.Superfamily,
		Family:      l.Family,
		Subfamily:   l.Subfamily,
		Tribe:       l.Tribe,
		Subtribe:    l.Subtribe,
		Genus:       l.GenusOrGeneric(),
		Epithet:     l.Epithet,
	}
}
