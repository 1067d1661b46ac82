package railway

import (
	"fmt"
	"time"
)

// FormatLine renders a log entry as "[<ISO-8601 timestamp>] <message>", or
// the bare message when the entry carries no timestamp.
func FormatLine(entry LogEntry) string {
	if entry.Timestamp == "" {
		return entry.Message
	}

	ts := entry.Timestamp
	if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
		ts = parsed.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("[%s] %s", ts, entry.Message)
}
