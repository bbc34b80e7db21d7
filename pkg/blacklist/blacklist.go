// Package blacklist builds the butterfly blacklist: lowercase name
// fragments (family, subfamily, tribe, subtribe, genus, epithet) seen on
// butterfly species. A fragment that also names part of a real moth is
// moved from the blacklist to the collision record.
//
// Building and collision resolution are separate passes. Resolve should
// only be called after all butterflies were added.
package blacklist

import (
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gnmoth/pkg/moth"
)

// Category is a classification rank that has its own fragment set.
type Category int

const (
	Family Category = iota
	Subfamily
	Tribe
	Subtribe
	Genus
	Epithet
)

// Categories lists all categories in output order.
var Categories = []Category{Family, Subfamily, Tribe, Subtribe, Genus, Epithet}

func (c Category) String() string {
	switch c {
	case Family:
		return "family"
	case Subfamily:
		return "subfamily"
	case Tribe:
		return "tribe"
	case Subtribe:
		return "subtribe"
	case Genus:
		return "genus"
	case Epithet:
		return "epithet"
	}
	return "unknown"
}

type set map[string]struct{}

// Builder keeps the blacklist and the collision record.
type Builder struct {
	black      [6]set
	collisions [6]set
}

// New creates an empty Builder.
func New() *Builder {
	var res Builder
	for _, c := range Categories {
		res.black[c] = make(set)
		res.collisions[c] = make(set)
	}
	return &res
}

// Add puts every non-empty fragment of a butterfly ladder to the
// blacklist in lowercase.
func (b *Builder) Add(cl moth.Classification) {
	for c, v := range fragments(cl) {
		if v == "" {
			continue
		}
		b.black[c][strings.ToLower(v)] = struct{}{}
	}
}

// Contains reports if a fragment is blacklisted. Case is ignored.
func (b *Builder) Contains(c Category, fragment string) bool {
	_, ok := b.black[c][strings.ToLower(fragment)]
	return ok
}

// Resolve checks the ladder of a moth against the blacklist. Each
// colliding fragment is removed from the blacklist and its moth spelling
// is added to the collision record. It returns the number of fragments
// moved.
func (b *Builder) Resolve(cl moth.Classification) int {
	var res int
	for c, v := range fragments(cl) {
		if v == "" {
			continue
		}
		low := strings.ToLower(v)
		if _, ok := b.black[c][low]; !ok {
			continue
		}
		delete(b.black[c], low)
		b.collisions[c][v] = struct{}{}
		res++
	}
	return res
}

// Blacklist returns the blacklist as sorted arrays.
func (b *Builder) Blacklist() moth.Fragments {
	return toFragments(b.black)
}

// Collisions returns the collision record as sorted arrays.
func (b *Builder) Collisions() moth.Fragments {
	return toFragments(b.collisions)
}

func fragments(cl moth.Classification) [6]string {
	return [6]string{
		Family:    cl.Family,
		Subfamily: cl.Subfamily,
		Tribe:     cl.Tribe,
		Subtribe:  cl.Subtribe,
		Genus:     cl.Genus,
		Epithet:   cl.Epithet,
	}
}

func toFragments(sets [6]set) moth.Fragments {
	sorted := func(s set) []string {
		res := slices.Sorted(maps.Keys(s))
		if res == nil {
			res = []string{}
		}
		return res
	}
	return moth.Fragments{
		Families:    sorted(sets[Family]),
		Subfamilies: sorted(sets[Subfamily]),
		Tribes:      sorted(sets[Tribe]),
		Subtribes:   sorted(sets[Subtribe]),
		Genera:      sorted(sets[Genus]),
		Epithets:    sorted(sets[Epithet]),
	}
}
