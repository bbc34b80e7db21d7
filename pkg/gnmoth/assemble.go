package gnmoth

import (
	"github.com/gnames/gnmoth/pkg/classify"
	"github.com/gnames/gnmoth/pkg/enrich"
	"github.com/gnames/gnmoth/pkg/moth"
)

// assemble creates the output entry of a moth species from its
// classification, enrichment and synonyms. Empty lists stay nil, so they
// are omitted from JSON.
func assemble(
	mc classify.MothCandidate,
	b enrich.Bundle,
	syns []moth.Synonym,
) moth.Entry {
	res := moth.Entry{
		TaxonID:        mc.TaxonID,
		Classification: mc.Classification,
		SpeciesProfile: b.SpeciesProfile,
		Distribution:   b.Distribution,
	}
	if len(b.CommonNames) > 0 {
		res.CommonNames = append([]string(nil), b.CommonNames...)
	}
	if len(syns) > 0 {
		res.Synonyms = append([]moth.Synonym(nil), syns...)
	}
	return res
}
