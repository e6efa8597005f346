package extract

import (
	"fmt"
	"strings"
	"time"
)

// BuildPrompt assembles the instruction string for the model. It is pure and
// deterministic: the same text and date context produce a byte-identical
// prompt. The worked examples are rendered with the actual resolved dates and
// offset so they stay consistent with the anchoring dates.
func BuildPrompt(text string, dc DateContext) string {
	apr15 := nextOccurrence(dc.Now, time.April, 15)
	monday := nextWeekday(dc.Now, time.Monday)

	var b strings.Builder

	b.WriteString(`You are an expert calendar event extraction system designed to accurately convert natural language text into structured JSON. Your primary focus is to identify and precisely extract key event components: event type, participants, dates, times, durations, and locations. You excel at understanding context and preserving all relevant details from the original text. You maintain strict output formatting as valid JSON without any explanatory text.

`)
	fmt.Fprintf(&b, "TODAY'S DATE IS: %s\n", dc.Today)
	fmt.Fprintf(&b, "USER'S TIMEZONE IS: %s (UTC%s)\n\n", dc.Timezone, dc.Offset)

	b.WriteString(`Given a text description of an event, extract the event information and return ONLY a valid JSON object with these fields:
- summary: The event title INCLUDING any participant names mentioned
- description: A detailed description of the event including participants, purpose, and any other details from the original text
- startDateTime: ISO 8601 formatted start time
- endDateTime: ISO 8601 formatted end time

Rules:
`)
	fmt.Fprintf(&b, "- TODAY'S DATE IS %s - all relative dates must be calculated from this date\n", dc.Today)
	fmt.Fprintf(&b, "- Use the user's timezone (%s) for all datetime calculations\n", dc.Timezone)
	fmt.Fprintf(&b, "- \"Tomorrow\" means %s\n", dc.Tomorrow)
	fmt.Fprintf(&b, "- \"Next week\" means %s + 7 days\n", dc.Today)
	b.WriteString(`- Weekday names refer to the next future occurrence of that weekday
- For dates without specified times, assume the following defaults:
  - All-day events should start at 00:00:00 and end at 23:59:59
  - Events without specified times should start at 9:00 AM
  - If duration is not specified, assume 1 hour for meetings/calls and 2 hours for other events
- For dates without a year, assume the current year, or the next year if that date has already passed
- For relative dates like "tomorrow" or "next Friday", calculate the actual calendar date
`)
	fmt.Fprintf(&b, "- Include timezone information in the ISO timestamp (use offset format like \"%s\", never \"Z\")\n", dc.Offset)
	b.WriteString(`- Always extract participant names and include them in both the summary and description
- If someone is mentioned (like "with Sara"), include their name in the event summary

YOUR RESPONSE MUST BE A VALID JSON OBJECT ONLY. NO OTHER TEXT, EXPLANATION, OR FORMATTING. NO MARKDOWN CODE BLOCKS. JUST THE RAW JSON OBJECT.

Examples:

`)
	fmt.Fprintf(&b, "Input: \"Schedule a team meeting tomorrow at 2pm for 45 minutes\"\n")
	fmt.Fprintf(&b, "Output: %s\n\n", exampleJSON("Team Meeting", "Team Meeting", dc.Tomorrow, "14:00:00", dc.Tomorrow, "14:45:00", dc.Offset))

	fmt.Fprintf(&b, "Input: \"Schedule a team meeting with Sara tomorrow at 3pm for 2 hours\"\n")
	fmt.Fprintf(&b, "Output: %s\n\n", exampleJSON("Team Meeting with Sara", "Team Meeting with Sara", dc.Tomorrow, "15:00:00", dc.Tomorrow, "17:00:00", dc.Offset))

	fmt.Fprintf(&b, "Input: \"Create a dentist appointment on April 15 from 10am to 11:30am\"\n")
	fmt.Fprintf(&b, "Output: %s\n\n", exampleJSON("Dentist Appointment", "Dentist Appointment", apr15, "10:00:00", apr15, "11:30:00", dc.Offset))

	fmt.Fprintf(&b, "Input: \"Set up a project kickoff with the marketing team next Monday at 10am\"\n")
	fmt.Fprintf(&b, "Output: %s\n\n", exampleJSON("Project Kickoff with Marketing Team", "Project Kickoff with the Marketing Team", monday, "10:00:00", monday, "11:00:00", dc.Offset))

	fmt.Fprintf(&b, "Now convert the following text to a calendar event JSON:\n\"%s\"\n\n", text)
	b.WriteString("REMEMBER: RESPOND WITH RAW JSON ONLY. NO ADDITIONAL TEXT OR FORMATTING.\n")

	return b.String()
}

func exampleJSON(summary, description, startDate, startTime, endDate, endTime, offset string) string {
	return fmt.Sprintf(`{"summary":%q,"description":%q,"startDateTime":"%sT%s%s","endDateTime":"%sT%s%s"}`,
		summary, description, startDate, startTime, offset, endDate, endTime, offset)
}

// nextOccurrence returns the next occurrence of month/day relative to now as
// YYYY-MM-DD: the current year, or the next year if the date already passed.
func nextOccurrence(now time.Time, month time.Month, day int) string {
	candidate := time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if candidate.Before(today) {
		candidate = candidate.AddDate(1, 0, 0)
	}
	return candidate.Format(dateLayout)
}

// nextWeekday returns the next future occurrence of the weekday, strictly
// after today, as YYYY-MM-DD.
func nextWeekday(now time.Time, weekday time.Weekday) string {
	days := (int(weekday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return now.AddDate(0, 0, days).Format(dateLayout)
}
