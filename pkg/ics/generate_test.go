package ics_test

import (
	"strings"
	"testing"
	"time"

	"eventsnap/pkg/datetoken"
	"eventsnap/pkg/ics"
)

func newGenerator(t *testing.T) *ics.Generator {
	t.Helper()
	tokens, err := datetoken.NewNormalizer("UTC")
	if err != nil {
		t.Fatalf("normalizer: %v", err)
	}
	g := ics.NewGenerator(tokens)
	g.SetClock(func() time.Time {
		return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	})
	g.SetUIDFunc(func() string { return "fixed-uid-123" })
	return g
}

func TestGenerate(t *testing.T) {
	g := newGenerator(t)
	base := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	body := string(g.Generate(ics.Invite{
		Title:       "Jazz Night",
		Date:        "2025-01-05",
		Time:        "19:30",
		EndTime:     "22:00",
		Location:    "Blue Note",
		Description: "Late set",
	}, base))

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"END:VCALENDAR",
		"BEGIN:VEVENT",
		"END:VEVENT",
		"PRODID:-//EventSnap//Calendar//EN",
		"VERSION:2.0",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"UID:fixed-uid-123",
		"DTSTART:20250105T193000",
		"DTEND:20250105T220000",
		"SUMMARY:Jazz Night",
		"LOCATION:Blue Note",
		"DESCRIPTION:Late set",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("generated ICS missing %q:\n%s", want, body)
		}
	}
}

func TestGenerate_Defaults(t *testing.T) {
	g := newGenerator(t)
	base := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	body := string(g.Generate(ics.Invite{
		Title: "Fair",
		Date:  "garbage date",
	}, base))

	// Unparseable date falls back to the base date, missing time to noon,
	// missing end time to one hour later.
	if !strings.Contains(body, "DTSTART:20250615T120000") {
		t.Errorf("expected fallback start instant, got:\n%s", body)
	}
	if !strings.Contains(body, "DTEND:20250615T130000") {
		t.Errorf("expected fallback end instant, got:\n%s", body)
	}
	if strings.Contains(body, "LOCATION") || strings.Contains(body, "DESCRIPTION") {
		t.Errorf("empty optional fields must be omitted:\n%s", body)
	}
}

func TestGenerate_EscapesText(t *testing.T) {
	g := newGenerator(t)
	base := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	body := string(g.Generate(ics.Invite{
		Title:    "Dinner; drinks, dancing",
		Date:     "2025-01-05",
		Location: "1 Main St, Springfield",
	}, base))

	if !strings.Contains(body, `SUMMARY:Dinner\; drinks\, dancing`) {
		t.Errorf("summary not escaped:\n%s", body)
	}
	if !strings.Contains(body, `LOCATION:1 Main St\, Springfield`) {
		t.Errorf("location not escaped:\n%s", body)
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{title: "Mom's Birthday!!", want: "Mom_s_Birthday__.ics"},
		{title: "Jazz Night", want: "Jazz_Night.ics"},
		{title: "plain", want: "plain.ics"},
		{title: "", want: "event.ics"},
	}

	for _, tt := range tests {
		if got := ics.Filename(tt.title); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
