package http

import (
	"strings"
	"time"

	"eventsnap/internal/event"
	"eventsnap/internal/model"
)

// --- Request DTOs ---

type exportReq struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	EndTime     string `json:"end_time"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func (r exportReq) validate() error {
	if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.Date) == "" {
		return event.ErrMissingRequiredField
	}
	return nil
}

func (r exportReq) toInput() event.ExportInput {
	return event.ExportInput{
		Title:       r.Title,
		Date:        r.Date,
		Time:        r.Time,
		EndTime:     r.EndTime,
		Location:    r.Location,
		Description: r.Description,
	}
}

// ---

type listReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() event.ListInput {
	return event.ListInput{
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

// --- Response DTOs ---

type eventResp struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	EndTime     string `json:"end_time,omitempty"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func newEventResp(record model.EventRecord) eventResp {
	return eventResp{
		Title:       record.Title,
		Date:        record.Date,
		Time:        record.Time,
		EndTime:     record.EndTime,
		Location:    record.Location,
		Description: record.Description,
	}
}

type extractResp struct {
	ID        string    `json:"id"`
	Event     eventResp `json:"event"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *handler) newExtractResp(ev model.ExtractedEvent) extractResp {
	return extractResp{
		ID:        ev.ID.String(),
		Event:     newEventResp(ev.Event),
		CreatedAt: ev.CreatedAt,
	}
}

type linkResp struct {
	Link string `json:"link"`
}

type shareResp struct {
	Outcome string `json:"outcome"`
	Summary string `json:"summary"`
	Link    string `json:"link,omitempty"`
}

func (h *handler) newShareResp(out event.ShareOutput) shareResp {
	return shareResp{
		Outcome: out.Outcome,
		Summary: out.Summary,
		Link:    out.Link,
	}
}

type calendarResp struct {
	EventID string `json:"event_id"`
	Link    string `json:"link,omitempty"`
}

func (h *handler) newCalendarResp(out event.CalendarOutput) calendarResp {
	return calendarResp{
		EventID: out.EventID,
		Link:    out.Link,
	}
}

type listResp struct {
	Events []extractResp `json:"events"`
	Total  int           `json:"total"`
}

func (h *handler) newListResp(out event.ListOutput) listResp {
	events := make([]extractResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = h.newExtractResp(ev)
	}
	return listResp{
		Events: events,
		Total:  out.Total,
	}
}
