package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "America/New_York"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}

// EventDetails holds the freeform event fields used to build a pre-filled
// event-creation link. All fields are opaque strings straight from
// extraction or user edits; the link builder runs them through the
// normalizers itself.
type EventDetails struct {
	Title       string
	Date        string
	Time        string
	EndTime     string
	Location    string
	Description string
}
