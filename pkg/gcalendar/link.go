package gcalendar

import (
	"net/url"
	"strings"
	"time"

	"eventsnap/pkg/datetoken"
)

// RenderBaseURL is the Google Calendar event-creation page. The query
// parameter names and the YYYYMMDDTHHMMSS/YYYYMMDDTHHMMSS range format are
// fixed by that page, not by us.
const RenderBaseURL = "https://calendar.google.com/calendar/render"

// LinkBuilder composes pre-filled Google Calendar links from freeform event
// fields. It is pure: no network, no I/O, deterministic for a given input
// and base instant.
type LinkBuilder struct {
	tokens *datetoken.Normalizer
}

// NewLinkBuilder creates a LinkBuilder on top of the given normalizer.
func NewLinkBuilder(tokens *datetoken.Normalizer) *LinkBuilder {
	return &LinkBuilder{tokens: tokens}
}

// EventURL builds the deep link for the given event. It returns ok=false
// when title or date is empty; callers treat that as "export unavailable"
// rather than an error. The base instant resolves year-less and unparseable
// dates.
func (b *LinkBuilder) EventURL(ev EventDetails, base time.Time) (string, bool) {
	if strings.TrimSpace(ev.Title) == "" || strings.TrimSpace(ev.Date) == "" {
		return "", false
	}

	dateToken := b.tokens.DateToken(ev.Date, base)
	startTime := b.tokens.TimeToken(ev.Time)

	endTime := datetoken.NextHour(startTime)
	if strings.TrimSpace(ev.EndTime) != "" {
		endTime = b.tokens.TimeToken(ev.EndTime)
	}

	// Instants are floating local time, seconds always zero.
	start := dateToken + "T" + startTime + "00"
	end := dateToken + "T" + endTime + "00"

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", ev.Title)
	params.Set("dates", start+"/"+end)
	params.Set("details", ev.Description)
	params.Set("location", ev.Location)

	return RenderBaseURL + "?" + params.Encode(), true
}
