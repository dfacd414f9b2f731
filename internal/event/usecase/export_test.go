package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/api/calendar/v3"

	"eventsnap/internal/event"
	"eventsnap/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func TestGenerateInvite(t *testing.T) {
	ctx := context.Background()

	t.Run("Requires title and date", func(t *testing.T) {
		uc := newUseCase(t, ucDeps{})
		for _, in := range []event.ExportInput{
			{Title: "", Date: "2025-01-05"},
			{Title: "Jazz Night", Date: "   "},
		} {
			if _, err := uc.GenerateInvite(ctx, in); !errors.Is(err, event.ErrMissingRequiredField) {
				t.Errorf("input %+v: expected ErrMissingRequiredField, got %v", in, err)
			}
		}
	})

	t.Run("Renders a downloadable invite", func(t *testing.T) {
		uc := newUseCase(t, ucDeps{})
		out, err := uc.GenerateInvite(ctx, event.ExportInput{
			Title: "Jazz Night",
			Date:  "2025-01-05",
			Time:  "7:30 PM",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Filename != "Jazz_Night.ics" {
			t.Errorf("filename = %q", out.Filename)
		}
		body := string(out.Body)
		for _, want := range []string{"BEGIN:VCALENDAR", "SUMMARY:Jazz Night", "DTSTART:20250105T193000", "DTEND:20250105T203000"} {
			if !strings.Contains(body, want) {
				t.Errorf("invite missing %q", want)
			}
		}
	})
}

func TestBuildLink(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, ucDeps{})

	t.Run("Requires title and date", func(t *testing.T) {
		if _, err := uc.BuildLink(ctx, event.ExportInput{Title: "Jazz Night"}); !errors.Is(err, event.ErrMissingRequiredField) {
			t.Errorf("expected ErrMissingRequiredField, got %v", err)
		}
	})

	t.Run("Builds a prefilled link", func(t *testing.T) {
		link, err := uc.BuildLink(ctx, event.ExportInput{
			Title: "Jazz Night",
			Date:  "2025-01-05",
			Time:  "7:30 PM",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(link, "https://calendar.google.com/calendar/render?") {
			t.Errorf("unexpected base: %q", link)
		}
		if !strings.Contains(link, "dates=20250105T193000%2F20250105T203000") {
			t.Errorf("dates parameter wrong: %q", link)
		}
	})
}

func TestCreateCalendarEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Unconfigured calendar", func(t *testing.T) {
		uc := newUseCase(t, ucDeps{})
		_, err := uc.CreateCalendarEvent(ctx, event.ExportInput{Title: "Jazz Night", Date: "2025-01-05"})
		if !errors.Is(err, event.ErrCalendarNotConfigured) {
			t.Errorf("expected ErrCalendarNotConfigured, got %v", err)
		}
	})

	t.Run("Inserts the event", func(t *testing.T) {
		var got calendar.Event
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || !strings.Contains(r.URL.Path, "/calendars/primary/events") {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			json.NewDecoder(r.Body).Decode(&got)
			got.Id = "evt-123"
			got.HtmlLink = "https://calendar.google.com/event?eid=abc"
			json.NewEncoder(w).Encode(got)
		}))
		defer ts.Close()

		httpClient := &http.Client{Transport: &rewriteTransport{
			Transport: http.DefaultTransport,
			Host:      strings.TrimPrefix(ts.URL, "http://"),
		}}
		client, err := gcalendar.NewClientFromHTTP(ctx, httpClient)
		if err != nil {
			t.Fatalf("client: %v", err)
		}

		uc := newUseCase(t, ucDeps{calendar: client})
		out, err := uc.CreateCalendarEvent(ctx, event.ExportInput{
			Title:    "Jazz Night",
			Date:     "2025-01-05",
			Time:     "7:30 PM",
			Location: "Blue Note",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.EventID != "evt-123" || out.Link == "" {
			t.Errorf("unexpected output: %+v", out)
		}
		if got.Summary != "Jazz Night" || got.Location != "Blue Note" {
			t.Errorf("unexpected payload: %+v", got)
		}
		if !strings.HasPrefix(got.Start.DateTime, "2025-01-05T19:30:00") {
			t.Errorf("start = %q", got.Start.DateTime)
		}
		if !strings.HasPrefix(got.End.DateTime, "2025-01-05T20:30:00") {
			t.Errorf("end = %q", got.End.DateTime)
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	repo := &fakeRepo{}
	llm := &fakeExtractor{raw: `{"title": "Jazz Night", "date": "2025-01-05", "time": "", "location": "", "description": ""}`}
	uc := newUseCase(t, ucDeps{llm: llm, repo: repo})

	if _, err := uc.Extract(ctx, event.ExtractInput{MIMEType: "image/png", Data: []byte("img")}); err != nil {
		t.Fatalf("extract: %v", err)
	}

	out, err := uc.List(ctx, event.ListInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out.Total != 1 || len(out.Events) != 1 {
		t.Fatalf("unexpected page: total=%d len=%d", out.Total, len(out.Events))
	}
	if out.Events[0].Event.Title != "Jazz Night" {
		t.Errorf("unexpected event: %+v", out.Events[0])
	}

	if _, err := uc.List(ctx, event.ListInput{Limit: -5, Offset: -1}); err != nil {
		t.Errorf("negative paging must be clamped, got %v", err)
	}
}
