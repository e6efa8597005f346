package extract

import (
	"strings"
	"time"

	"github.com/hrygo/eventsense/internal/apperr"
)

// EventRecord is the structured representation of a calendar event produced
// by the parser and consumed once by the submission adapter.
type EventRecord struct {
	Summary       string `json:"summary"`
	Description   string `json:"description"`
	StartDateTime string `json:"startDateTime"`
	EndDateTime   string `json:"endDateTime"`
}

// Validate checks the record before submission: required fields, RFC 3339
// well-formedness and end strictly after start. A missing description
// defaults to the summary. Returns an INVALID_ARGUMENT error on any defect.
func (r *EventRecord) Validate() error {
	if strings.TrimSpace(r.Summary) == "" {
		return apperr.InvalidArgument("missing required field: summary")
	}
	if r.StartDateTime == "" {
		return apperr.InvalidArgument("missing required field: startDateTime")
	}
	if r.EndDateTime == "" {
		return apperr.InvalidArgument("missing required field: endDateTime")
	}

	if r.Description == "" {
		r.Description = r.Summary
	}

	start, err := time.Parse(time.RFC3339, r.StartDateTime)
	if err != nil {
		return apperr.InvalidArgumentf("startDateTime is not a valid ISO 8601 timestamp: %q", r.StartDateTime)
	}
	end, err := time.Parse(time.RFC3339, r.EndDateTime)
	if err != nil {
		return apperr.InvalidArgumentf("endDateTime is not a valid ISO 8601 timestamp: %q", r.EndDateTime)
	}

	if !end.After(start) {
		return apperr.InvalidArgument("endDateTime must be after startDateTime")
	}

	return nil
}
