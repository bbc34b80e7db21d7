package gnmoth_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnmoth/pkg/config"
	"github.com/gnames/gnmoth/pkg/dwca"
	"github.com/gnames/gnmoth/pkg/errcode"
	"github.com/gnames/gnmoth/pkg/gnmoth"
	"github.com/gnames/gnmoth/pkg/moth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taxonItem struct {
	row dwca.TaxonRow
	err error
}

type memSource struct {
	taxa  []taxonItem
	names []dwca.VernacularRow
	profs []dwca.ProfileRow
	dists []dwca.DistributionRow
	fatal error
}

func (m *memSource) Taxa(fn func(dwca.TaxonRow, error) error) error {
	for _, v := range m.taxa {
		if err := fn(v.row, v.err); err != nil {
			return err
		}
	}
	return m.fatal
}

func (m *memSource) Vernaculars(fn func(dwca.VernacularRow, error) error) error {
	for _, v := range m.names {
		if err := fn(v, nil); err != nil {
			return err
		}
	}
	return nil
}

func (m *memSource) Profiles(fn func(dwca.ProfileRow, error) error) error {
	for _, v := range m.profs {
		if err := fn(v, nil); err != nil {
			return err
		}
	}
	return fn(dwca.ProfileRow{}, fmt.Errorf("line 3: %w", dwca.ErrMalformedRow))
}

func (m *memSource) Distributions(fn func(dwca.DistributionRow, error) error) error {
	for _, v := range m.dists {
		if err := fn(v, nil); err != nil {
			return err
		}
	}
	return nil
}

func species(id string, st dwca.TaxonomicStatus, l dwca.Ladder) taxonItem {
	return taxonItem{row: dwca.TaxonRow{
		TaxonID: id,
		Status:  st,
		Rank:    "species",
		Ladder:  l,
	}}
}

func mothLadder(genus, epithet string) dwca.Ladder {
	return dwca.Ladder{
		Order:       "Lepidoptera",
		Superfamily: "Noctuoidea",
		Family:      "Noctuidae",
		Genus:       genus,
		Epithet:     epithet,
	}
}

func build(t *testing.T, src gnmoth.Source) *moth.Result {
	gnm := gnmoth.New(config.New())
	res, err := gnm.Build(context.Background(), src)
	require.Nil(t, err)
	require.NotNil(t, res)
	return res
}

func TestBuildGenusRepair(t *testing.T) {
	assert := assert.New(t)
	src := &memSource{taxa: []taxonItem{
		species("T1", dwca.Accepted, dwca.Ladder{
			Order:       "Lepidoptera",
			Superfamily: "Noctuoidea",
			GenericName: "Agrotis",
			Epithet:     "ipsilon",
		}),
	}}
	res := build(t, src)

	require.Len(t, res.Moths, 1)
	ent := res.Moths[0]
	assert.Equal("T1", ent.TaxonID)
	assert.Equal("Agrotis", ent.Classification.Genus)
	assert.Equal("ipsilon", ent.Classification.Epithet)
	assert.Equal("Noctuoidea", ent.Classification.Superfamily)
	assert.Empty(ent.Classification.Family)
	assert.Nil(ent.CommonNames)
	assert.Nil(ent.SpeciesProfile)
	assert.Nil(ent.Distribution)
	assert.Nil(ent.Synonyms)
	assert.Equal("Agrotis ipsilon", ent.CanonicalName)
	assert.NotEmpty(ent.NameID)
	assert.Equal(0, res.Summary.BadEntries)
}

func TestBuild(t *testing.T) {
	assert := assert.New(t)
	yes, no := true, false

	misapplied := species("X1", dwca.Misapplied, mothLadder("Catocala", "nupta"))
	genusRank := species("X2", dwca.Accepted, mothLadder("Catocala", ""))
	genusRank.row.Rank = "genus"
	beetle := species("X3", dwca.Accepted, dwca.Ladder{
		Order: "Coleoptera", Genus: "Carabus", Epithet: "auratus",
	})
	noEpithet := species("X4", dwca.Accepted, mothLadder("Catocala", ""))
	noGenus := species("X5", dwca.Accepted, mothLadder("", "nupta"))
	dup := species("M1", dwca.Accepted, mothLadder("Acronicta", "psi"))

	synToMoth := species("S1", dwca.Synonym, dwca.Ladder{
		GenericName: "Noctua", Epithet: "ipsilon",
	})
	synToMoth.row.AcceptedID = "M1"
	ambiguous := species("S2", dwca.AmbiguousSynonym, dwca.Ladder{
		Genus: "Phalaena", Epithet: "ipsilon",
	})
	ambiguous.row.AcceptedID = "M1"
	synToButterfly := species("S3", dwca.Synonym, dwca.Ladder{
		Genus: "Papilio", Epithet: "regina",
	})
	synToButterfly.row.AcceptedID = "B1"
	unnamed := species("S4", dwca.Synonym, dwca.Ladder{Genus: "Noctua"})
	unnamed.row.AcceptedID = "M1"

	m1 := species("M1", dwca.Accepted, mothLadder("Agrotis", "ipsilon"))
	m1.row.ScientificName = "Agrotis ipsilon (Hufnagel, 1766)"

	src := &memSource{
		taxa: []taxonItem{
			synToMoth,
			m1,
			species("B1", dwca.Accepted, dwca.Ladder{
				Order:       "Lepidoptera",
				Superfamily: "Papilionoidea",
				Family:      "Papilionidae",
				Genus:       "Papilio",
				Epithet:     "machaon",
			}),
			species("M2", dwca.ProvisionallyAccepted, mothLadder("papilio", "nigra")),
			ambiguous,
			synToButterfly,
			unnamed,
			misapplied,
			genusRank,
			beetle,
			noEpithet,
			noGenus,
			dup,
			{err: fmt.Errorf("line 42: %w", dwca.ErrMalformedRow)},
		},
		names: []dwca.VernacularRow{
			{TaxonID: "M1", Language: "eng", Name: "Dark sword-grass"},
			{TaxonID: "M1", Language: "fra", Name: "Noctuelle baignée"},
			{TaxonID: "M1", Language: "eng", Name: "Black cutworm"},
			{TaxonID: "B1", Language: "eng", Name: "Swallowtail"},
		},
		profs: []dwca.ProfileRow{
			{TaxonID: "M1", Extinct: &no, Marine: &no},
			{TaxonID: "M2", Freshwater: &yes},
		},
		dists: []dwca.DistributionRow{
			{TaxonID: "M1", Locality: "Cosmopolitan",
				ThreatStatus: dwca.LeastConcern},
			{TaxonID: "M2"},
		},
	}

	res := build(t, src)
	require.Len(t, res.Moths, 2)

	m := res.Moths[0]
	assert.Equal("M1", m.TaxonID)
	assert.Equal("Agrotis", m.Classification.Genus)
	assert.Equal("Agrotis ipsilon", m.CanonicalName)
	assert.Equal([]string{"Dark sword-grass", "Black cutworm"}, m.CommonNames)
	require.NotNil(t, m.SpeciesProfile)
	assert.Equal(&no, m.SpeciesProfile.Extinct)
	assert.Nil(m.SpeciesProfile.Freshwater)
	require.NotNil(t, m.Distribution)
	assert.Equal("Cosmopolitan", m.Distribution.Locality)
	assert.Equal(dwca.LeastConcern, m.Distribution.ThreatStatus)
	assert.Equal([]moth.Synonym{
		{TaxonID: "S1", Genus: "Noctua", Epithet: "ipsilon"},
		{TaxonID: "S2", Genus: "Phalaena", Epithet: "ipsilon"},
	}, m.Synonyms)

	m = res.Moths[1]
	assert.Equal("M2", m.TaxonID)
	assert.Nil(m.CommonNames)
	require.NotNil(t, m.SpeciesProfile)
	assert.Equal(&yes, m.SpeciesProfile.Freshwater)
	assert.Nil(m.Distribution)
	assert.Nil(m.Synonyms)

	assert.Equal([]string{}, res.Blacklist.Genera)
	assert.Equal([]string{"machaon"}, res.Blacklist.Epithets)
	assert.Equal([]string{"papilionidae"}, res.Blacklist.Families)
	assert.Equal([]string{"papilio"}, res.Collisions.Genera)
	assert.Equal(1, res.Collisions.Len())

	sum := res.Summary
	assert.NotEmpty(sum.RunID)
	assert.Equal(14, sum.TaxonRows)
	assert.Equal(2, sum.Moths)
	assert.Equal(1, sum.Butterflies)
	assert.Equal(2, sum.Synonyms)
	assert.Equal(1, sum.UnnamedSynonyms)
	assert.Equal(1, sum.DanglingSynonyms)
	assert.Equal(1, sum.Misapplied)
	assert.Equal(2, sum.Irrelevant)
	assert.Equal(1, sum.Duplicates)
	assert.Equal(1, sum.MalformedRows)
	assert.Equal(2, sum.RepairFailures)
	assert.Equal(3, sum.BadEntries)
	assert.Equal(1, sum.AuxMalformedRows)
	assert.Equal(2, sum.BlacklistSize)
	assert.Equal(1, sum.CollisionSize)
}

func TestBuildVernacularLanguage(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptVernacularLanguage("fra")})
	src := &memSource{
		taxa: []taxonItem{
			species("M1", dwca.Accepted, mothLadder("Agrotis", "ipsilon")),
		},
		names: []dwca.VernacularRow{
			{TaxonID: "M1", Language: "eng", Name: "Dark sword-grass"},
			{TaxonID: "M1", Language: "fra", Name: "Noctuelle baignée"},
		},
	}
	res, err := gnmoth.New(cfg).Build(context.Background(), src)
	require.Nil(t, err)
	require.Len(t, res.Moths, 1)
	assert.Equal(t, []string{"Noctuelle baignée"}, res.Moths[0].CommonNames)
}

func TestBuildFatal(t *testing.T) {
	fatal := errors.New("disk is gone")
	src := &memSource{
		taxa: []taxonItem{
			species("M1", dwca.Accepted, mothLadder("Agrotis", "ipsilon")),
			{err: fatal},
		},
	}
	res, err := gnmoth.New(config.New()).Build(context.Background(), src)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, fatal)

	src = &memSource{fatal: fatal}
	_, err = gnmoth.New(config.New()).Build(context.Background(), src)
	assert.ErrorIs(t, err, fatal)
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := &memSource{
		taxa: []taxonItem{
			species("M1", dwca.Accepted, mothLadder("Agrotis", "ipsilon")),
		},
		names: []dwca.VernacularRow{
			{TaxonID: "M1", Language: "eng", Name: "Dark sword-grass"},
		},
	}
	_, err := gnmoth.New(config.New()).Build(ctx, src)
	require.Error(t, err)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.BuildCancelledError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, context.Canceled)
}

func TestBuildEmpty(t *testing.T) {
	res := build(t, &memSource{})
	assert.NotNil(t, res.Moths)
	assert.Empty(t, res.Moths)
	assert.Equal(t, 0, res.Blacklist.Len())
	assert.Equal(t, []string{}, res.Blacklist.Families)
}

func TestBuildLogsRunID(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	var buf bytes.Buffer
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, opts)))

	src := &memSource{taxa: []taxonItem{
		species("T1", dwca.Accepted, mothLadder("Agrotis", "ipsilon")),
		species("T2", dwca.Accepted, mothLadder("", "")),
	}}
	res := build(t, src)
	require.NotEmpty(t, res.Summary.RunID)

	var count int
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		assert.Equal(t, res.Summary.RunID, rec["run_id"], rec["msg"])
		count++
	}
	assert.Greater(t, count, 5)
}
