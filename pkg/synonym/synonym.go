// Package synonym collects synonym names by the taxon they resolve to and
// keeps only those that end up pointing to a moth.
package synonym

import "github.com/gnames/gnmoth/pkg/moth"

// Resolver maps an accepted taxon ID to its synonyms in the order they
// were added.
type Resolver struct {
	targets map[string][]moth.Synonym
	count   int
}

// New creates an empty Resolver.
func New() *Resolver {
	return &Resolver{targets: make(map[string][]moth.Synonym)}
}

// Add files a synonym under the ID of its accepted taxon.
func (r *Resolver) Add(targetID string, syn moth.Synonym) {
	r.targets[targetID] = append(r.targets[targetID], syn)
	r.count++
}

// Prune removes synonyms whose target is not in mothIDs and returns how
// many synonyms were removed.
func (r *Resolver) Prune(mothIDs map[string]struct{}) int {
	var res int
	for k, v := range r.targets {
		if _, ok := mothIDs[k]; ok {
			continue
		}
		res += len(v)
		delete(r.targets, k)
	}
	r.count -= res
	return res
}

// Synonyms returns synonyms of a taxon, or nil if there are none.
func (r *Resolver) Synonyms(targetID string) []moth.Synonym {
	return r.targets[targetID]
}

// Count returns the number of synonyms currently kept.
func (r *Resolver) Count() int {
	return r.count
}
