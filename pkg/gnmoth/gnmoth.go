// Package gnmoth defines the main use case of the project: deriving a
// moth dataset from a Darwin Core checklist.
//
// The package has no I/O. Rows come from a Source, results are returned
// as moth.Result and saved by the caller.
package gnmoth

import (
	"context"

	"github.com/gnames/gnmoth/pkg/dwca"
	"github.com/gnames/gnmoth/pkg/moth"
)

// Source provides rows of the four input tables. Each method calls fn
// once for every data row in the order of the file. Malformed rows are
// passed with an error that wraps dwca.ErrMalformedRow and a zero row.
// Any other error is fatal. If fn returns an error, iteration stops and
// the error is returned.
type Source interface {
	Taxa(fn func(dwca.TaxonRow, error) error) error
	Vernaculars(fn func(dwca.VernacularRow, error) error) error
	Profiles(fn func(dwca.ProfileRow, error) error) error
	Distributions(fn func(dwca.DistributionRow, error) error) error
}

// GNmoth builds the moth dataset.
type GNmoth interface {
	// Build reads all tables of the Source once and returns moth
	// species, the butterfly blacklist, name collisions and counters of
	// the run. Row-level problems are counted, they never stop the
	// build.
	Build(ctx context.Context, src Source) (*moth.Result, error)
}
