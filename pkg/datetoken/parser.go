package datetoken

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Normalizer converts freeform date and time strings into the canonical
// tokens used for calendar instant composition: 8-digit YYYYMMDD dates and
// 4-digit HHMM 24-hour times. It never fails; unparseable input resolves to
// documented fallbacks (the base date, noon).
type Normalizer struct {
	location *time.Location
}

// NewNormalizer creates a normalizer for the given IANA timezone string,
// e.g. "America/New_York". The timezone only affects which calendar date the
// fallback picks for a given base instant.
func NewNormalizer(timezone string) (*Normalizer, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Normalizer{location: loc}, nil
}

// Location returns the timezone the normalizer resolves fallbacks in.
func (n *Normalizer) Location() *time.Location { return n.location }

var dateRules = []dateRule{
	// YYYY-MM-DD: already canonical, strip separators.
	{
		pattern: regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`),
		emit: func(m []string, _ time.Time) string {
			return m[1] + m[2] + m[3]
		},
	},
	// Bare 8 digits: already a date token.
	{
		pattern: regexp.MustCompile(`^\d{8}$`),
		emit: func(m []string, _ time.Time) string {
			return m[0]
		},
	},
	// "<MonthName> <Day>[, <Year>]" e.g. "January 5, 2025", "sept 3".
	{
		pattern: regexp.MustCompile(`^([a-z]+)\s+(\d{1,2})(?:[,\s]\s*(\d{4}))?$`),
		emit: func(m []string, base time.Time) string {
			return emitMonthDayYear(m[1], m[2], m[3], base)
		},
	},
	// "<Day> <MonthName>[, <Year>]" e.g. "5 Jan 2025".
	{
		pattern: regexp.MustCompile(`^(\d{1,2})\s+([a-z]+)(?:[,\s]\s*(\d{4}))?$`),
		emit: func(m []string, base time.Time) string {
			return emitMonthDayYear(m[2], m[1], m[3], base)
		},
	},
	// MM/DD/YYYY or MM-DD-YYYY.
	{
		pattern: regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`),
		emit: func(m []string, _ time.Time) string {
			month, _ := strconv.Atoi(m[1])
			day, _ := strconv.Atoi(m[2])
			return fmt.Sprintf("%s%02d%02d", m[3], month, day)
		},
	},
}

// DateToken converts a freeform date string to an 8-digit YYYYMMDD token.
// Rules are tried in a fixed priority order; when none matches, the token
// falls back to the calendar date of base in the normalizer's timezone.
func (n *Normalizer) DateToken(input string, base time.Time) string {
	trimmed := strings.ToLower(strings.TrimSpace(input))

	for _, rule := range dateRules {
		m := rule.pattern.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		if token := rule.emit(m, base); token != "" {
			return token
		}
	}

	return base.In(n.location).Format("20060102")
}

// emitMonthDayYear resolves a month name plus day and optional year into a
// date token. Unknown month names return "" so the rule falls through.
func emitMonthDayYear(monthName, dayStr, yearStr string, base time.Time) string {
	month, ok := monthNumbers[monthName]
	if !ok {
		return ""
	}
	day, _ := strconv.Atoi(dayStr)
	year := base.Year()
	if yearStr != "" {
		year, _ = strconv.Atoi(yearStr)
	}
	return fmt.Sprintf("%04d%02d%02d", year, month, day)
}

var timeRules = []timeRule{
	// H:MM / HH:MM, 24-hour.
	{
		pattern: regexp.MustCompile(`^(\d{1,2}):(\d{2})$`),
		emit: func(m []string) string {
			hour, _ := strconv.Atoi(m[1])
			return fmt.Sprintf("%02d%s", hour, m[2])
		},
	},
	// H:MM am/pm, converted to 24-hour.
	{
		pattern: regexp.MustCompile(`^(\d{1,2}):(\d{2})(am|pm)$`),
		emit: func(m []string) string {
			hour, _ := strconv.Atoi(m[1])
			if m[3] == "pm" && hour < 12 {
				hour += 12
			}
			if m[3] == "am" && hour == 12 {
				hour = 0
			}
			return fmt.Sprintf("%02d%s", hour, m[2])
		},
	},
	// Bare 4 digits: already a time token.
	{
		pattern: regexp.MustCompile(`^\d{4}$`),
		emit: func(m []string) string {
			return m[0]
		},
	},
}

// TimeToken converts a freeform time string to a 4-digit HHMM 24-hour token.
// Empty and unparseable input both resolve to noon.
func (n *Normalizer) TimeToken(input string) string {
	compact := strings.ToLower(strings.Join(strings.Fields(input), ""))
	if compact == "" {
		return DefaultTimeToken
	}

	for _, rule := range timeRules {
		if m := rule.pattern.FindStringSubmatch(compact); m != nil {
			return rule.emit(m)
		}
	}

	return DefaultTimeToken
}

// NextHour returns the token one hour after the given HHMM token, keeping the
// minutes. The hour is incremented without rollover: "2330" becomes "2430".
// Late-evening events without an explicit end time inherit this quirk; fixing
// it would change the composed instant range callers already rely on.
func NextHour(token string) string {
	if len(token) != 4 {
		return token
	}
	hour, err := strconv.Atoi(token[:2])
	if err != nil {
		return token
	}
	return fmt.Sprintf("%02d%s", hour+1, token[2:])
}
