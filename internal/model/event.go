package model

import (
	"time"

	"github.com/google/uuid"
)

// EventRecord is the structured form of a single event as extracted from a
// flyer image. Every field is freeform text; the date and time fields are
// normalized only at export time.
type EventRecord struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	EndTime     string `json:"end_time,omitempty"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// ExtractedEvent is an EventRecord together with its server-side identity.
type ExtractedEvent struct {
	ID        uuid.UUID   `json:"id"`
	Event     EventRecord `json:"event"`
	CreatedAt time.Time   `json:"created_at"`
}
