// Package extract implements the natural-language-to-event extraction
// pipeline: date/timezone anchoring, prompt construction, model invocation
// and response parsing into a validated event record.
package extract

import (
	"log/slog"
	"time"

	"github.com/hrygo/eventsense/internal/timezone"
)

const dateLayout = "2006-01-02"

// DateContext anchors a prompt to "now" in the caller's timezone. It is
// recomputed per request, never cached, since "today" changes.
type DateContext struct {
	// Today and Tomorrow are calendar dates in the target zone, YYYY-MM-DD.
	Today    string
	Tomorrow string
	// Timezone is the resolved zone identifier.
	Timezone string
	// Offset is the zone's current UTC offset as a signed HH:MM string.
	Offset string

	// Now is the anchoring instant converted to the target zone. The prompt
	// builder uses it to resolve dates like "next Monday".
	Now time.Time
}

// ResolveDateContext computes the date context for the given instant and
// optional timezone identifier. It never fails: an invalid or empty zone
// falls back to the host's local zone, because prompt generation must
// proceed even with a malformed timezone string.
func ResolveDateContext(now time.Time, tz string) DateContext {
	loc, err := timezone.ParseTimezone(tz)
	if err != nil {
		slog.Warn("invalid timezone, using host zone", "timezone", tz, "error", err)
	}

	local := now.In(loc)
	offset := timezone.OffsetString(local)
	if offset == "" {
		offset = timezone.FallbackOffset
	}

	return DateContext{
		Today:    local.Format(dateLayout),
		Tomorrow: local.AddDate(0, 0, 1).Format(dateLayout),
		Timezone: loc.String(),
		Offset:   offset,
		Now:      local,
	}
}
