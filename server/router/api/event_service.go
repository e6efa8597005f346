package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hrygo/eventsense/internal/apperr"
	"github.com/hrygo/eventsense/plugin/extract"
)

// timezoneHeader carries the caller's IANA zone for date anchoring.
const timezoneHeader = "X-Timezone"

type textToEventRequest struct {
	Text string `json:"text"`
}

type eventResponse struct {
	Success   bool                 `json:"success"`
	EventID   string               `json:"eventId"`
	EventLink string               `json:"eventLink"`
	EventData *extract.EventRecord `json:"eventData,omitempty"`
}

// textToEvent converts natural-language text into a calendar event: the full
// extraction pipeline followed by the insert call.
func (s *APIService) textToEvent(c echo.Context) error {
	var req textToEventRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apperr.InvalidArgument("invalid request body"))
	}

	// Reject before the model client is ever invoked.
	if strings.TrimSpace(req.Text) == "" {
		return writeError(c, apperr.InvalidArgument("missing required field: text"))
	}

	ctx := c.Request().Context()
	tz := c.Request().Header.Get(timezoneHeader)

	record, err := s.Extractor.Extract(ctx, req.Text, tz)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.Inserter.InsertEvent(ctx, s.Profile.CalendarID, record)
	if err != nil {
		return writeError(c, err)
	}

	slog.Info("event created from text",
		"event_id", result.EventID,
		"timezone", tz,
		"summary", record.Summary)

	return c.JSON(http.StatusCreated, eventResponse{
		Success:   true,
		EventID:   result.EventID,
		EventLink: result.EventLink,
		EventData: record,
	})
}

// createEvent inserts an already-structured event, bypassing the extraction
// pipeline entirely.
func (s *APIService) createEvent(c echo.Context) error {
	var record extract.EventRecord
	if err := c.Bind(&record); err != nil {
		return writeError(c, apperr.InvalidArgument("invalid request body"))
	}

	if err := record.Validate(); err != nil {
		return writeError(c, err)
	}

	ctx := c.Request().Context()
	result, err := s.Inserter.InsertEvent(ctx, s.Profile.CalendarID, &record)
	if err != nil {
		return writeError(c, err)
	}

	slog.Info("event created", "event_id", result.EventID, "summary", record.Summary)

	return c.JSON(http.StatusCreated, eventResponse{
		Success:   true,
		EventID:   result.EventID,
		EventLink: result.EventLink,
	})
}
