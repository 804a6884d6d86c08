package domain

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // The civil zone must resolve on hosts without a zoneinfo database.
)

const (
	DefaultTimezone = "Asia/Shanghai"

	// StorageLayout is fixed width so that lexical order of formatted
	// timestamps in a single zone matches chronological order.
	StorageLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// Layouts accepted for timestamps that carry an explicit offset or Z marker.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04Z07:00",
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04Z0700",
	"2006-01-02 15:04:05.999999999Z0700",
	"2006-01-02 15:04Z0700",
}

// Layouts for naive timestamps, read as wall time in the civil zone.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
}

// Calendar is the single civil time zone every stored and compared timestamp
// is expressed in.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

func NewCalendar(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{loc: loc, now: time.Now}
}

// LoadCalendar returns a Calendar for the named IANA zone. An empty name
// selects DefaultTimezone.
func LoadCalendar(name string) (*Calendar, error) {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return NewCalendar(loc), nil
}

// WithClock returns a copy of c that reads the current time from now.
func (c *Calendar) WithClock(now func() time.Time) *Calendar {
	return &Calendar{loc: c.loc, now: now}
}

func (c *Calendar) Location() *time.Location { return c.loc }

func (c *Calendar) Now() time.Time {
	return c.now().In(c.loc)
}

func (c *Calendar) Today() Date {
	return DateOf(c.Now())
}

// Normalize expresses t in the civil zone.
func (c *Calendar) Normalize(t time.Time) time.Time {
	return t.In(c.loc)
}

func (c *Calendar) DateOf(t time.Time) Date {
	return DateOf(t.In(c.loc))
}

// Midnight returns 00:00 of d in the civil zone.
func (c *Calendar) Midnight(d Date) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, c.loc)
}

// ParseTimestamp parses an ISO-8601 timestamp and normalizes it to the civil
// zone. Timestamps without an offset are taken as civil wall time.
func (c *Calendar) ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidTimestamp
	}
	for _, layout := range zonedLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return c.Normalize(t), nil
		}
	}
	for _, layout := range naiveLayouts {
		t, err := time.ParseInLocation(layout, s, c.loc)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func (c *Calendar) ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), c.loc)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// FormatStorage renders t in the civil zone using StorageLayout.
func (c *Calendar) FormatStorage(t time.Time) string {
	return t.In(c.loc).Format(StorageLayout)
}

// ParseStorage is the inverse of FormatStorage.
func (c *Calendar) ParseStorage(s string) (time.Time, error) {
	t, err := time.Parse(StorageLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(c.loc), nil
}
