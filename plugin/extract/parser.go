package extract

import (
	"encoding/json"
	"strings"

	"github.com/hrygo/eventsense/internal/apperr"
)

// ParseEventRecord extracts an EventRecord from the model's raw response
// text. Models wrap the object in stray whitespace, prose or code fences
// despite instructions, so the parser scans for the first balanced top-level
// JSON object before falling back to parsing the whole text.
//
// Field presence is not enforced here; callers validate the record before
// use. Malformed JSON yields an UNPARSABLE_MODEL_OUTPUT error.
func ParseEventRecord(raw string) (*EventRecord, error) {
	var record EventRecord

	if obj := firstJSONObject(raw); obj != "" {
		if err := json.Unmarshal([]byte(obj), &record); err == nil {
			return &record, nil
		}
	}

	// No balanced object found, or it was malformed. Try the whole text.
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &record); err != nil {
		return nil, apperr.UnparsableOutput("model response contains no valid JSON object", err)
	}
	return &record, nil
}

// firstJSONObject returns the first balanced top-level {...} substring of s,
// or "" if none exists. The scan is string- and escape-aware so braces inside
// JSON string values do not confuse the depth counter. This replaces the
// greedy first-{ to last-} match, which breaks on responses containing
// multiple JSON-like fragments.
func firstJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}
