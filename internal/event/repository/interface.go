package repository

import (
	"context"

	"eventsnap/internal/model"
)

// EventRepository is the interface for extraction-history persistence.
type EventRepository interface {
	Save(ctx context.Context, ev model.ExtractedEvent) error
	List(ctx context.Context, opt ListOptions) ([]model.ExtractedEvent, error)
	Count(ctx context.Context) (int, error)
}

// ListOptions pages through stored events, newest first.
type ListOptions struct {
	Limit  int
	Offset int
}
