// Package canonical normalizes scientific names of moth species with
// gnparser and generates stable name-string IDs for them.
// This is a pure package - parsing is computation, not I/O.
package canonical

import (
	"strings"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnuuid"
)

// Namer creates canonical forms of names.
type Namer interface {
	// Canonical returns the simple canonical form of a scientific name
	// together with its UUID v5. If the name cannot be parsed, the
	// canonical form is built from genus and epithet.
	Canonical(name, genus, epithet string) (canonical, id string)
}

type namer struct {
	gnp gnparser.GNparser
}

// New creates a Namer that parses names according to the zoological
// nomenclatural code.
func New() Namer {
	cfg := gnparser.NewConfig(
		gnparser.OptCode(nomcode.Zoological),
	)
	return &namer{gnp: gnparser.New(cfg)}
}

// Canonical implements Namer.
func (n *namer) Canonical(name, genus, epithet string) (string, string) {
	res := n.parse(name)
	if res == "" {
		res = strings.TrimSpace(genus + " " + epithet)
	}
	if res == "" {
		return "", ""
	}
	return res, gnuuid.New(res).String()
}

func (n *namer) parse(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	p := n.gnp.ParseName(name)
	if !p.Parsed || p.Canonical == nil {
		return ""
	}
	return p.Canonical.Simple
}
