package usecase

import (
	"context"
	"fmt"

	"eventsnap/internal/event"
	"eventsnap/internal/event/repository"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

func (uc *implUseCase) List(ctx context.Context, in event.ListInput) (event.ListOutput, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}

	events, err := uc.repo.List(ctx, repository.ListOptions{Limit: limit, Offset: offset})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.List: %v", err)
		return event.ListOutput{}, fmt.Errorf("list events: %w", err)
	}

	total, err := uc.repo.Count(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.List: %v", err)
		return event.ListOutput{}, fmt.Errorf("count events: %w", err)
	}

	return event.ListOutput{Events: events, Total: total}, nil
}
