package event

import "eventsnap/internal/model"

// ExtractInput carries one uploaded flyer image.
type ExtractInput struct {
	MIMEType string
	Data     []byte
}

// ExportInput selects the event fields used by every export operation.
type ExportInput struct {
	Title       string
	Date        string
	Time        string
	EndTime     string
	Location    string
	Description string
}

// InviteOutput is a rendered calendar invite ready to download.
type InviteOutput struct {
	Filename string
	Body     []byte
}

// ShareOutput reports how the share cascade delivered the event summary.
type ShareOutput struct {
	Outcome string
	Summary string
	Link    string
}

// CalendarOutput reports a direct calendar insertion.
type CalendarOutput struct {
	EventID string
	Link    string
}

// ListInput pages through previously extracted events.
type ListInput struct {
	Limit  int
	Offset int
}

// ListOutput is one page of extraction history.
type ListOutput struct {
	Events []model.ExtractedEvent
	Total  int
}
