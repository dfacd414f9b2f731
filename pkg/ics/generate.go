package ics

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"eventsnap/pkg/datetoken"
)

const (
	// ProductID identifies this generator in emitted calendars.
	ProductID = "-//EventSnap//Calendar//EN"

	// ContentType is the MIME type for the generated invite file.
	ContentType = "text/calendar"
)

// Generator turns freeform event fields into a downloadable calendar invite.
// Date and time strings go through the same normalizers as the deep-link
// builder, so both export paths agree on the composed instants.
type Generator struct {
	tokens *datetoken.Normalizer
	now    func() time.Time
	newUID func() string
}

// NewGenerator creates a Generator on top of the given normalizer.
func NewGenerator(tokens *datetoken.Normalizer) *Generator {
	return &Generator{
		tokens: tokens,
		now:    time.Now,
		newUID: func() string { return uuid.New().String() },
	}
}

// SetClock overrides the DTSTAMP clock (used in tests).
func (g *Generator) SetClock(now func() time.Time) { g.now = now }

// SetUIDFunc overrides UID generation (used in tests).
func (g *Generator) SetUIDFunc(newUID func() string) { g.newUID = newUID }

// Invite holds the freeform event fields for one VEVENT.
type Invite struct {
	Title       string
	Date        string
	Time        string
	EndTime     string
	Location    string
	Description string
}

// Generate emits a single-event VCALENDAR document. It never fails on
// unparseable dates or times; those resolve through the normalizer
// fallbacks against base.
func (g *Generator) Generate(inv Invite, base time.Time) []byte {
	dateToken := g.tokens.DateToken(inv.Date, base)
	startTime := g.tokens.TimeToken(inv.Time)

	endTime := datetoken.NextHour(startTime)
	if strings.TrimSpace(inv.EndTime) != "" {
		endTime = g.tokens.TimeToken(inv.EndTime)
	}

	cal := ical.NewCalendar()
	cal.SetProductId(ProductID)
	cal.SetVersion("2.0")
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ical.MethodPublish)

	ev := cal.AddEvent(g.newUID())
	ev.SetDtStampTime(g.now().UTC())
	// Floating local instants, seconds always zero.
	ev.SetProperty(ical.ComponentPropertyDtStart, dateToken+"T"+startTime+"00")
	ev.SetProperty(ical.ComponentPropertyDtEnd, dateToken+"T"+endTime+"00")
	ev.SetProperty(ical.ComponentPropertySummary, escapeText(inv.Title))
	if inv.Location != "" {
		ev.SetProperty(ical.ComponentPropertyLocation, escapeText(inv.Location))
	}
	if inv.Description != "" {
		ev.SetProperty(ical.ComponentPropertyDescription, escapeText(inv.Description))
	}

	return []byte(cal.Serialize())
}

// escapeText escapes the characters RFC 5545 reserves in TEXT values.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// Filename derives the download filename from the event title: every
// character outside [A-Za-z0-9] becomes "_", an empty title becomes "event".
func Filename(title string) string {
	stem := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, title)
	if stem == "" {
		stem = "event"
	}
	return fmt.Sprintf("%s.ics", stem)
}
