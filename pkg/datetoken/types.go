package datetoken

import (
	"regexp"
	"time"
)

// Tokens emitted when nothing better can be derived from the input.
const (
	// DefaultTimeToken is the noon fallback used for empty or unparseable times.
	DefaultTimeToken = "1200"
)

// dateRule pairs a pattern with an emitter. Rules are tried in order; the
// first rule whose pattern matches and whose emitter accepts the submatches
// wins. An emitter returning "" rejects the match and hands over to the next
// rule (used for unrecognized month names).
type dateRule struct {
	pattern *regexp.Regexp
	emit    func(m []string, base time.Time) string
}

// timeRule is the same shape for time strings, without a base instant.
type timeRule struct {
	pattern *regexp.Regexp
	emit    func(m []string) string
}

// monthNumbers maps full English month names, standard 3-letter abbreviations
// and "sept" to month numbers. Lookups are done on lowercased input.
var monthNumbers = map[string]int{
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may": 5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sep": 9, "sept": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}
