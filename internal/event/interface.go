package event

import (
	"context"

	"eventsnap/internal/model"
)

// UseCase defines the business logic interface for the event domain.
type UseCase interface {
	// Extract turns a flyer image into a structured event record. It only
	// fails on transport-level problems; an unreadable flyer still yields a
	// record with fallback fields.
	Extract(ctx context.Context, in ExtractInput) (model.ExtractedEvent, error)

	// GenerateInvite renders a downloadable calendar invite for the event.
	GenerateInvite(ctx context.Context, in ExportInput) (InviteOutput, error)

	// BuildLink builds a prefilled Google Calendar link for the event.
	BuildLink(ctx context.Context, in ExportInput) (string, error)

	// Share pushes a plain-text event summary through the share cascade.
	Share(ctx context.Context, in ExportInput) (ShareOutput, error)

	// CreateCalendarEvent inserts the event directly into the configured
	// Google Calendar.
	CreateCalendarEvent(ctx context.Context, in ExportInput) (CalendarOutput, error)

	// List returns previously extracted events, newest first.
	List(ctx context.Context, in ListInput) (ListOutput, error)
}
