package synonym_test

import (
	"testing"

	"github.com/gnames/gnmoth/pkg/moth"
	"github.com/gnames/gnmoth/pkg/synonym"
	"github.com/stretchr/testify/assert"
)

func TestResolver(t *testing.T) {
	r := synonym.New()
	s1 := moth.Synonym{TaxonID: "S1", Genus: "Agrotis", Epithet: "suffusa"}
	s2 := moth.Synonym{TaxonID: "S2", Genus: "Noctua", Epithet: "ipsilon"}
	s3 := moth.Synonym{TaxonID: "S3", Genus: "Papilio", Epithet: "alter"}

	r.Add("T1", s1)
	r.Add("T1", s2)
	r.Add("B1", s3)
	assert.Equal(t, 3, r.Count())
	assert.Equal(t, []moth.Synonym{s1, s2}, r.Synonyms("T1"))

	pruned := r.Prune(map[string]struct{}{"T1": {}, "T2": {}})
	assert.Equal(t, 1, pruned)
	assert.Equal(t, 2, r.Count())
	assert.Nil(t, r.Synonyms("B1"))
	assert.Nil(t, r.Synonyms("T2"))

	// insertion order survives pruning
	assert.Equal(t, []moth.Synonym{s1, s2}, r.Synonyms("T1"))

	assert.Equal(t, 0, r.Prune(map[string]struct{}{"T1": {}}))
	assert.Equal(t, 2, r.Prune(nil))
	assert.Equal(t, 0, r.Count())
}
