package gnmoth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnmoth/pkg/blacklist"
	"github.com/gnames/gnmoth/pkg/canonical"
	"github.com/gnames/gnmoth/pkg/classify"
	"github.com/gnames/gnmoth/pkg/config"
	"github.com/gnames/gnmoth/pkg/dwca"
	"github.com/gnames/gnmoth/pkg/enrich"
	"github.com/gnames/gnmoth/pkg/moth"
	"github.com/gnames/gnmoth/pkg/synonym"
	"github.com/google/uuid"
)

type gnmoth struct {
	cfg   *config.Config
	namer canonical.Namer
}

// New creates a GNmoth instance.
func New(cfg *config.Config) GNmoth {
	return &gnmoth{cfg: cfg, namer: canonical.New()}
}

// Build implements GNmoth. It loads auxiliary tables first, then
// classifies every Taxon row, prunes synonyms, resolves name collisions
// and assembles moth entries.
func (g *gnmoth) Build(
	ctx context.Context,
	src Source,
) (*moth.Result, error) {
	startTime := time.Now()
	sum := moth.Summary{RunID: uuid.NewString()}
	log := slog.With("run_id", sum.RunID)
	log.Info("Starting moth dataset build",
		"language", g.cfg.VernacularLanguage)

	joiner, err := g.loadAux(ctx, src, &sum, log)
	if err != nil {
		return nil, err
	}

	st := newState(&sum, log)
	err = src.Taxa(func(row dwca.TaxonRow, err error) error {
		select {
		case <-ctx.Done():
			return CancelledError(ctx.Err())
		default:
		}
		sum.TaxonRows++
		return st.add(row, err)
	})
	if err != nil {
		return nil, err
	}
	log.Info("Taxon table classified",
		"rows", sum.TaxonRows,
		"moths", len(st.moths),
		"butterflies", sum.Butterflies,
		"synonyms", st.syns.Count(),
	)

	sum.DanglingSynonyms = st.syns.Prune(st.ids)
	sum.Synonyms = st.syns.Count()
	log.Info("Synonyms pruned",
		"kept", sum.Synonyms,
		"dangling", sum.DanglingSynonyms,
	)

	res := &moth.Result{Moths: make([]moth.Entry, 0, len(st.moths))}
	var moved int
	for _, mc := range st.moths {
		moved += st.black.Resolve(mc.Classification)
		ent := assemble(mc, joiner.Join(mc.TaxonID), st.syns.Synonyms(mc.TaxonID))
		ent.CanonicalName, ent.NameID = g.namer.Canonical(
			mc.ScientificName,
			mc.Classification.Genus,
			mc.Classification.Epithet,
		)
		res.Moths = append(res.Moths, ent)
	}
	log.Info("Name collisions resolved", "fragments", moved)

	res.Blacklist = st.black.Blacklist()
	res.Collisions = st.black.Collisions()

	sum.Moths = len(res.Moths)
	sum.BadEntries = sum.MalformedRows + sum.RepairFailures
	sum.BlacklistSize = res.Blacklist.Len()
	sum.CollisionSize = res.Collisions.Len()
	res.Summary = sum

	dur := time.Since(startTime)
	log.Info("Moth dataset build complete",
		"moths", sum.Moths,
		"synonyms", sum.Synonyms,
		"bad_entries", sum.BadEntries,
		"duration", gnfmt.TimeString(dur.Seconds()),
	)
	gn.Message(
		"<em>Found %s moths with %s synonyms, %s bad entries</em>",
		humanize.Comma(int64(sum.Moths)),
		humanize.Comma(int64(sum.Synonyms)),
		humanize.Comma(int64(sum.BadEntries)),
	)
	return res, nil
}

// loadAux builds lookups from VernacularName, SpeciesProfile and
// Distribution tables.
func (g *gnmoth) loadAux(
	ctx context.Context,
	src Source,
	sum *moth.Summary,
	log *slog.Logger,
) (*enrich.Joiner, error) {
	res := enrich.New(g.cfg.VernacularLanguage)

	skip := func(table string, err error) error {
		if !errors.Is(err, dwca.ErrMalformedRow) {
			return err
		}
		sum.AuxMalformedRows++
		log.Debug("Skipping malformed row", "table", table, "error", err)
		return nil
	}

	check := func() error {
		select {
		case <-ctx.Done():
			return CancelledError(ctx.Err())
		default:
			return nil
		}
	}

	var names int
	err := src.Vernaculars(func(row dwca.VernacularRow, err error) error {
		if cerr := check(); cerr != nil {
			return cerr
		}
		if err != nil {
			return skip(dwca.VernacularTable, err)
		}
		if res.AddVernacular(row) {
			names++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = src.Profiles(func(row dwca.ProfileRow, err error) error {
		if cerr := check(); cerr != nil {
			return cerr
		}
		if err != nil {
			return skip(dwca.SpeciesProfileTable, err)
		}
		res.AddProfile(row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = src.Distributions(func(row dwca.DistributionRow, err error) error {
		if cerr := check(); cerr != nil {
			return cerr
		}
		if err != nil {
			return skip(dwca.DistributionTable, err)
		}
		res.AddDistribution(row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	nameTaxa, profiles, dists := res.Sizes()
	log.Info("Auxiliary tables loaded",
		"common_names", names,
		"taxa_with_common_names", nameTaxa,
		"profiles", profiles,
		"distributions", dists,
		"malformed_rows", sum.AuxMalformedRows,
	)
	gn.Message(
		"<em>Loaded %s common names, %s profiles, %s distributions</em>",
		humanize.Comma(int64(names)),
		humanize.Comma(int64(profiles)),
		humanize.Comma(int64(dists)),
	)
	return res, nil
}

// state accumulates results of the Taxon table pass.
type state struct {
	log   *slog.Logger
	sum   *moth.Summary
	syns  *synonym.Resolver
	black *blacklist.Builder
	moths []classify.MothCandidate
	ids   map[string]struct{}
}

func newState(sum *moth.Summary, log *slog.Logger) *state {
	return &state{
		log:   log,
		sum:   sum,
		syns:  synonym.New(),
		black: blacklist.New(),
		ids:   make(map[string]struct{}),
	}
}

func (s *state) add(row dwca.TaxonRow, err error) error {
	if err != nil {
		if !errors.Is(err, dwca.ErrMalformedRow) {
			return err
		}
		s.sum.MalformedRows++
		s.log.Debug("Skipping malformed row",
			"table", dwca.TaxonTable, "error", err)
		return nil
	}

	res, err := classify.Classify(row)
	if err != nil {
		s.sum.RepairFailures++
		s.log.Debug("Dropping moth that cannot be repaired",
			"taxon_id", row.TaxonID, "error", err)
		return nil
	}

	switch res.Category {
	case classify.Irrelevant:
		s.sum.Irrelevant++
	case classify.Misapplied:
		s.sum.Misapplied++
	case classify.Synonym:
		if res.Synonym == nil {
			s.sum.UnnamedSynonyms++
			return nil
		}
		s.syns.Add(res.Synonym.TargetID, res.Synonym.Species)
	case classify.Butterfly:
		s.sum.Butterflies++
		s.black.Add(*res.Butterfly)
	case classify.Moth:
		id := res.Moth.TaxonID
		if _, ok := s.ids[id]; ok {
			s.sum.Duplicates++
			s.log.Debug("Dropping duplicate moth", "taxon_id", id)
			return nil
		}
		s.ids[id] = struct{}{}
		s.moths = append(s.moths, *res.Moth)
	}
	return nil
}
