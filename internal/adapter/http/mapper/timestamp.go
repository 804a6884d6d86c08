package mapper

import "time"

const (
	timestampLayout       = "2006-01-02T15:04:05Z07:00"
	timestampLayoutMicros = "2006-01-02T15:04:05.000000Z07:00"
)

// formatTimestamp renders t like ISO 8601 with microseconds, omitting the
// fraction when it is zero.
func formatTimestamp(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(timestampLayout)
	}
	return t.Format(timestampLayoutMicros)
}
