package extract

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/hrygo/eventsense/internal/apperr"
	"github.com/hrygo/eventsense/plugin/llm"
)

// Extractor runs the full extraction pipeline: resolve date context, build
// the prompt, invoke the model, parse and validate the result. It is
// stateless; every request is processed independently with a single model
// call and no retries.
type Extractor struct {
	llm llm.Service
	now func() time.Time
}

// NewExtractor creates an Extractor backed by the given model service.
func NewExtractor(svc llm.Service) *Extractor {
	return &Extractor{
		llm: svc,
		now: time.Now,
	}
}

// Extract converts free-form text into a validated EventRecord. The timezone
// is an optional IANA identifier; empty or invalid values fall back to the
// host zone.
func (e *Extractor) Extract(ctx context.Context, text, tz string) (*EventRecord, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperr.InvalidArgument("text is required")
	}

	dc := ResolveDateContext(e.now(), tz)
	prompt := BuildPrompt(text, dc)

	raw, err := e.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	record, err := ParseEventRecord(raw)
	if err != nil {
		// The raw response is logged for diagnosis but never returned to
		// the caller.
		slog.Debug("unparsable model response", "timezone", dc.Timezone, "response", raw)
		return nil, err
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}
