package gcal

import (
	"context"

	"github.com/pkg/errors"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/hrygo/eventsense/internal/apperr"
	"github.com/hrygo/eventsense/plugin/extract"
)

// InsertResult is the outcome of a successful event insertion.
type InsertResult struct {
	EventID   string
	EventLink string
}

// EventInserter submits validated event records to a calendar.
type EventInserter interface {
	InsertEvent(ctx context.Context, calendarID string, record *extract.EventRecord) (*InsertResult, error)
}

// Service implements EventInserter against the Google Calendar API.
type Service struct {
	auth *Authenticator
}

// NewService creates a Service using the given credential.
func NewService(auth *Authenticator) *Service {
	return &Service{auth: auth}
}

// InsertEvent maps the record to a calendar event and delegates to the
// events.insert call. The collaborator's error code and message are
// propagated unchanged.
func (s *Service) InsertEvent(ctx context.Context, calendarID string, record *extract.EventRecord) (*InsertResult, error) {
	client, err := s.auth.Client(ctx)
	if err != nil {
		return nil, err
	}

	srv, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, apperr.Collaborator(0, "creating calendar client", err)
	}

	description := record.Description
	if description == "" {
		description = record.Summary
	}

	event := &calendar.Event{
		Summary:     record.Summary,
		Description: description,
		Start:       &calendar.EventDateTime{DateTime: record.StartDateTime},
		End:         &calendar.EventDateTime{DateTime: record.EndDateTime},
	}

	created, err := srv.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, collaboratorError(err)
	}

	return &InsertResult{
		EventID:   created.Id,
		EventLink: created.HtmlLink,
	}, nil
}

// collaboratorError propagates the Google API status code and message when
// present, defaulting to 500 otherwise.
func collaboratorError(err error) *apperr.Error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		msg := gerr.Message
		if msg == "" {
			msg = "calendar insert failed"
		}
		return apperr.Collaborator(gerr.Code, msg, err)
	}
	return apperr.Collaborator(0, "calendar insert failed", err)
}
