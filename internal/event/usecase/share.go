package usecase

import (
	"context"
	"fmt"
	"strings"

	"eventsnap/internal/event"
	"eventsnap/pkg/share"
)

func (uc *implUseCase) Share(ctx context.Context, in event.ExportInput) (event.ShareOutput, error) {
	if err := validateExport(in); err != nil {
		return event.ShareOutput{}, err
	}

	summary := buildSummary(in)
	link, _ := uc.links.EventURL(details(in), uc.clock())

	text := summary
	if link != "" {
		text += "\n" + link
	}

	outcome, err := uc.cascade.Share(ctx, share.Payload{
		Title: in.Title,
		Text:  text,
		URL:   link,
	})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Share: %v", err)
		return event.ShareOutput{}, fmt.Errorf("%w: %v", event.ErrShareFailed, err)
	}

	return event.ShareOutput{
		Outcome: string(outcome),
		Summary: summary,
		Link:    link,
	}, nil
}

// buildSummary renders the one-line human summary used for sharing, e.g.
// "Jazz Night on 2025-01-05 at 7:30 PM at Blue Note".
func buildSummary(in event.ExportInput) string {
	var b strings.Builder
	b.WriteString(in.Title)
	b.WriteString(" on ")
	b.WriteString(in.Date)
	if strings.TrimSpace(in.Time) != "" {
		b.WriteString(" at ")
		b.WriteString(in.Time)
	}
	if strings.TrimSpace(in.Location) != "" {
		b.WriteString(" at ")
		b.WriteString(in.Location)
	}
	return b.String()
}
