package dwca

import (
	"fmt"
	"strings"
)

// TaxonomicStatus is the closed set of dwc:taxonomicStatus values.
type TaxonomicStatus int

const (
	UnknownStatus TaxonomicStatus = iota
	Accepted
	ProvisionallyAccepted
	Synonym
	AmbiguousSynonym
	Misapplied
)

var statusNames = map[TaxonomicStatus]string{
	Accepted:              "accepted",
	ProvisionallyAccepted: "provisionally accepted",
	Synonym:               "synonym",
	AmbiguousSynonym:      "ambiguous synonym",
	Misapplied:            "misapplied",
}

var statusByName = func() map[string]TaxonomicStatus {
	res := make(map[string]TaxonomicStatus, len(statusNames))
	for k, v := range statusNames {
		res[v] = k
	}
	return res
}()

// NewTaxonomicStatus parses a dwc:taxonomicStatus value. Matching ignores
// case and surrounding spaces. Any other value, including an empty one,
// is a malformed row.
func NewTaxonomicStatus(s string) (TaxonomicStatus, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if res, ok := statusByName[s]; ok {
		return res, nil
	}
	return UnknownStatus, fmt.Errorf("%w: taxonomic status '%s'", ErrMalformedRow, s)
}

// String returns the value as it appears in the Taxon table.
func (s TaxonomicStatus) String() string {
	if res, ok := statusNames[s]; ok {
		return res
	}
	return "unknown"
}

// IsSynonym is true for synonyms and ambiguous synonyms.
func (s TaxonomicStatus) IsSynonym() bool {
	return s == Synonym || s == AmbiguousSynonym
}
