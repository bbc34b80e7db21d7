package dwca

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ThreatStatus is an IUCN threat category kept in the output.
// NoThreatStatus is the zero value and means "absent".
type ThreatStatus int

const (
	NoThreatStatus ThreatStatus = iota
	LeastConcern
	Vulnerable
	Endangered
	CriticallyEndangered
	ExtinctInTheWild
	Extinct
)

var threatNames = map[ThreatStatus]string{
	LeastConcern:         "LeastConcern",
	Vulnerable:           "Vulnerable",
	Endangered:           "Endangered",
	CriticallyEndangered: "CriticallyEndangered",
	ExtinctInTheWild:     "ExtinctInTheWild",
	Extinct:              "Extinct",
}

// threatByKey is keyed by the value lowercased with spaces, dashes and
// underscores removed. NotEvaluated and DataDeficient are not listed and
// collapse to NoThreatStatus.
var threatByKey = map[string]ThreatStatus{
	"leastconcern":         LeastConcern,
	"lc":                   LeastConcern,
	"vulnerable":           Vulnerable,
	"vu":                   Vulnerable,
	"endangered":           Endangered,
	"en":                   Endangered,
	"criticallyendangered": CriticallyEndangered,
	"cr":                   CriticallyEndangered,
	"extinctinthewild":     ExtinctInTheWild,
	"ew":                   ExtinctInTheWild,
	"extinct":              Extinct,
	"ex":                   Extinct,
}

var threatKeyReplacer = strings.NewReplacer(" ", "", "_", "", "-", "")

// NewThreatStatus converts an iucn:threatStatus value. Empty, NotEvaluated,
// DataDeficient and unknown categories all return NoThreatStatus.
func NewThreatStatus(s string) ThreatStatus {
	key := threatKeyReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
	return threatByKey[key]
}

func (t ThreatStatus) String() string {
	if res, ok := threatNames[t]; ok {
		return res
	}
	return ""
}

// MarshalJSON writes the category name, e.g. "CriticallyEndangered".
func (t ThreatStatus) MarshalJSON() ([]byte, error) {
	if t == NoThreatStatus {
		return []byte("null"), nil
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON reads the category name written by MarshalJSON.
func (t *ThreatStatus) UnmarshalJSON(bs []byte) error {
	var s string
	if err := json.Unmarshal(bs, &s); err != nil {
		return err
	}
	if s == "" {
		*t = NoThreatStatus
		return nil
	}
	for k, v := range threatNames {
		if v == s {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unknown threat status '%s'", s)
}
