package utils

import "time"

// ISO8601Millis is the layout used for created-at timestamps: UTC with
// millisecond precision and a literal "Z" suffix.
const ISO8601Millis = "2006-01-02T15:04:05.000Z"

type SystemClock struct {
	now func() time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{now: time.Now}
}

// Now returns the current instant formatted with ISO8601Millis.
func (c *SystemClock) Now() string {
	return FormatTimestamp(c.now())
}

// FormatTimestamp converts t to UTC and formats it with ISO8601Millis.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(ISO8601Millis)
}
