package gcalendar_test

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"eventsnap/pkg/datetoken"
	"eventsnap/pkg/gcalendar"
)

func newBuilder(t *testing.T) *gcalendar.LinkBuilder {
	t.Helper()
	tokens, err := datetoken.NewNormalizer("UTC")
	if err != nil {
		t.Fatalf("normalizer: %v", err)
	}
	return gcalendar.NewLinkBuilder(tokens)
}

func TestEventURL_RequiredFields(t *testing.T) {
	b := newBuilder(t)
	base := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		ev    gcalendar.EventDetails
		wantOK bool
	}{
		{name: "Missing title", ev: gcalendar.EventDetails{Date: "2025-01-05"}, wantOK: false},
		{name: "Missing date", ev: gcalendar.EventDetails{Title: "Party"}, wantOK: false},
		{name: "Blank title", ev: gcalendar.EventDetails{Title: "   ", Date: "2025-01-05"}, wantOK: false},
		{name: "Both present", ev: gcalendar.EventDetails{Title: "Party", Date: "2025-01-05"}, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, ok := b.EventURL(tt.ev, base)
			if ok != tt.wantOK {
				t.Fatalf("EventURL ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok && link != "" {
				t.Errorf("unavailable export must return empty link, got %q", link)
			}
		})
	}
}

func TestEventURL_Composition(t *testing.T) {
	b := newBuilder(t)
	base := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	ev := gcalendar.EventDetails{
		Title:       "Jazz Night",
		Date:        "2025-01-05",
		Time:        "19:30",
		EndTime:     "22:00",
		Location:    "Blue Note, 131 W 3rd St",
		Description: "Late set & jam session",
	}

	link, ok := b.EventURL(ev, base)
	if !ok {
		t.Fatalf("expected link to be built")
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link is not a valid URL: %v", err)
	}
	if !strings.HasPrefix(link, gcalendar.RenderBaseURL+"?") {
		t.Errorf("link does not target the render endpoint: %q", link)
	}

	q := parsed.Query()
	if q.Get("action") != "TEMPLATE" {
		t.Errorf("action = %q, want TEMPLATE", q.Get("action"))
	}
	if q.Get("text") != ev.Title {
		t.Errorf("text = %q, want %q", q.Get("text"), ev.Title)
	}
	if q.Get("dates") != "20250105T193000/20250105T220000" {
		t.Errorf("dates = %q", q.Get("dates"))
	}
	if q.Get("details") != ev.Description {
		t.Errorf("details = %q", q.Get("details"))
	}
	if q.Get("location") != ev.Location {
		t.Errorf("location = %q", q.Get("location"))
	}
}

func TestEventURL_EndTimeDefault(t *testing.T) {
	b := newBuilder(t)
	base := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	link, ok := b.EventURL(gcalendar.EventDetails{
		Title: "Brunch",
		Date:  "2025-01-05",
		Time:  "10:00",
	}, base)
	if !ok {
		t.Fatalf("expected link to be built")
	}

	parsed, _ := url.Parse(link)
	if got := parsed.Query().Get("dates"); got != "20250105T100000/20250105T110000" {
		t.Errorf("dates = %q, want one hour after start", got)
	}
}

func TestEventURL_TimeDefaultsToNoon(t *testing.T) {
	b := newBuilder(t)
	base := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	link, _ := b.EventURL(gcalendar.EventDetails{
		Title: "Fair",
		Date:  "2025-01-05",
	}, base)

	parsed, _ := url.Parse(link)
	if got := parsed.Query().Get("dates"); got != "20250105T120000/20250105T130000" {
		t.Errorf("dates = %q, want noon default", got)
	}
}

func TestEventURL_Idempotent(t *testing.T) {
	b := newBuilder(t)
	base := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	ev := gcalendar.EventDetails{
		Title:       "Jazz Night",
		Date:        "January 5, 2025",
		Time:        "7:30 pm",
		Location:    "Blue Note",
		Description: "Bring cash",
	}

	first, ok1 := b.EventURL(ev, base)
	second, ok2 := b.EventURL(ev, base)
	if !ok1 || !ok2 {
		t.Fatalf("expected both calls to build a link")
	}
	if first != second {
		t.Errorf("EventURL is not deterministic:\n%s\n%s", first, second)
	}
}
