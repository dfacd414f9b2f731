package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eventsnap/internal/event"
	"eventsnap/pkg/gcalendar"
	"eventsnap/pkg/ics"
)

func validateExport(in event.ExportInput) error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Date) == "" {
		return event.ErrMissingRequiredField
	}
	return nil
}

func details(in event.ExportInput) gcalendar.EventDetails {
	return gcalendar.EventDetails{
		Title:       in.Title,
		Date:        in.Date,
		Time:        in.Time,
		EndTime:     in.EndTime,
		Location:    in.Location,
		Description: in.Description,
	}
}

func (uc *implUseCase) GenerateInvite(ctx context.Context, in event.ExportInput) (event.InviteOutput, error) {
	if err := validateExport(in); err != nil {
		return event.InviteOutput{}, err
	}

	inv := ics.Invite{
		Title:       in.Title,
		Date:        in.Date,
		Time:        in.Time,
		EndTime:     in.EndTime,
		Location:    in.Location,
		Description: in.Description,
	}

	return event.InviteOutput{
		Filename: ics.Filename(in.Title),
		Body:     uc.generator.Generate(inv, uc.clock()),
	}, nil
}

func (uc *implUseCase) BuildLink(ctx context.Context, in event.ExportInput) (string, error) {
	if err := validateExport(in); err != nil {
		return "", err
	}

	link, ok := uc.links.EventURL(details(in), uc.clock())
	if !ok {
		return "", event.ErrMissingRequiredField
	}

	return link, nil
}

func (uc *implUseCase) CreateCalendarEvent(ctx context.Context, in event.ExportInput) (event.CalendarOutput, error) {
	if err := validateExport(in); err != nil {
		return event.CalendarOutput{}, err
	}
	if uc.calendar == nil {
		return event.CalendarOutput{}, event.ErrCalendarNotConfigured
	}

	start, end := uc.resolveInstants(in)

	created, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     in.Title,
		Description: in.Description,
		Location:    in.Location,
		StartTime:   start,
		EndTime:     end,
		Timezone:    uc.tokens.Location().String(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.CreateCalendarEvent: %v", err)
		return event.CalendarOutput{}, fmt.Errorf("create calendar event: %w", err)
	}

	return event.CalendarOutput{
		EventID: created.ID,
		Link:    created.HtmlLink,
	}, nil
}

// resolveInstants converts the freeform date and time fields into concrete
// instants for the Calendar API. Unlike link and invite rendering, which pass
// tokens through as text, the API needs real timestamps, so an absent or
// unusable end time resolves to start plus one hour here.
func (uc *implUseCase) resolveInstants(in event.ExportInput) (time.Time, time.Time) {
	loc := uc.tokens.Location()
	dateToken := uc.tokens.DateToken(in.Date, uc.clock())
	startToken := uc.tokens.TimeToken(in.Time)

	start, err := time.ParseInLocation("20060102 1504", dateToken+" "+startToken, loc)
	if err != nil {
		start = uc.clock().In(loc)
	}

	end := start.Add(time.Hour)
	if strings.TrimSpace(in.EndTime) != "" {
		endToken := uc.tokens.TimeToken(in.EndTime)
		if parsed, err := time.ParseInLocation("20060102 1504", dateToken+" "+endToken, loc); err == nil {
			end = parsed
		}
	}

	return start, end
}
