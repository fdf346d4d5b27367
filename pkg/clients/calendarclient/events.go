package calendarclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/awayboard/awayboard/pkg/core/model"
)

const eventTypeOutOfOffice = "outOfOffice"

// FetchOOOEvents lists events in the [from, to] window and maps
// out-of-office ones to entry drafts. It implements
// services.EventSource.
func (c *Client) FetchOOOEvents(ctx context.Context, from, to time.Time) ([]model.EntryDraft, error) {
	call := c.service.Events.List(c.calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.AddDate(0, 0, 1).Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)

	var drafts []model.EntryDraft
	pageToken := ""
	for {
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		events, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list calendar events: %w", err)
		}

		for _, event := range events.Items {
			if !isOutOfOffice(event) {
				continue
			}

			draft, err := eventToDraft(event)
			if err != nil {
				return nil, fmt.Errorf("failed to convert event %s: %w", event.Id, err)
			}
			drafts = append(drafts, draft)
		}

		pageToken = events.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return drafts, nil
}

// isOutOfOffice keeps native out-of-office events plus regular events
// tagged OOO in their title, which is how some teams mark leave
func isOutOfOffice(event *calendar.Event) bool {
	if event.EventType == eventTypeOutOfOffice {
		return true
	}
	summary := strings.ToLower(event.Summary)
	return strings.Contains(summary, "ooo") || strings.Contains(summary, "out of office")
}

// eventToDraft maps a calendar event to an entry draft
func eventToDraft(event *calendar.Event) (model.EntryDraft, error) {
	start, err := eventDate(event.Start, false)
	if err != nil {
		return model.EntryDraft{}, fmt.Errorf("bad start: %w", err)
	}
	end, err := eventDate(event.End, true)
	if err != nil {
		return model.EntryDraft{}, fmt.Errorf("bad end: %w", err)
	}

	name := event.Summary
	if event.Creator != nil {
		if event.Creator.DisplayName != "" {
			name = event.Creator.DisplayName
		} else if event.Creator.Email != "" {
			name = event.Creator.Email
		}
	}

	return model.EntryDraft{
		Name:  name,
		Start: start,
		End:   end,
		Type:  model.TypeVacation,
		Notes: event.Summary,
	}, nil
}

// eventDate extracts the calendar date of an event boundary. All-day
// events carry an exclusive end date, which is shifted back one day to
// match the closed intervals entries use.
func eventDate(edt *calendar.EventDateTime, exclusiveEnd bool) (string, error) {
	if edt == nil {
		return "", fmt.Errorf("missing event boundary")
	}

	if edt.Date != "" {
		if !exclusiveEnd {
			return edt.Date, nil
		}
		d, err := model.ParseDate(edt.Date)
		if err != nil {
			return "", err
		}
		return d.AddDate(0, 0, -1).Format(model.DateLayout), nil
	}

	t, err := time.Parse(time.RFC3339, edt.DateTime)
	if err != nil {
		return "", fmt.Errorf("invalid event datetime %q: %w", edt.DateTime, err)
	}
	return t.Format(model.DateLayout), nil
}
