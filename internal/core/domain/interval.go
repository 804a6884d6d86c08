package domain

import "time"

// Interval is the half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func (iv Interval) Valid() bool {
	return iv.End.After(iv.Start)
}

// Overlaps reports whether iv and o share any instant. Intervals that only
// touch at an end point do not overlap.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.Start.Before(o.End) && iv.End.After(o.Start)
}

func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Span returns the calendar dates touched by iv in the civil zone.
func (c *Calendar) Span(iv Interval) DaySpan {
	return DaySpan{First: c.DateOf(iv.Start), Last: c.DateOf(iv.End)}
}

// NewTimeBlock normalizes start and end to the civil zone and anchors the
// block on the date of start.
func (c *Calendar) NewTimeBlock(taskID uint64, start, end time.Time) (TimeBlock, error) {
	b := TimeBlock{
		TaskID: taskID,
		Start:  c.Normalize(start),
		End:    c.Normalize(end),
	}
	if !b.Interval().Valid() {
		return TimeBlock{}, ErrInvalidInterval
	}
	b.Date = DateOf(b.Start)
	return b, nil
}

// Touches reports whether b belongs to day d: either its anchor date is d or
// its day-span covers d.
func (c *Calendar) Touches(b TimeBlock, d Date) bool {
	return b.Date == d || c.Span(b.Interval()).Contains(d)
}

// Conflicts reports whether candidate may not coexist with existing. Both are
// assumed to belong to the same task.
func (c *Calendar) Conflicts(existing, candidate TimeBlock) bool {
	sameDay := existing.Date == candidate.Date ||
		c.Span(existing.Interval()).Intersects(c.Span(candidate.Interval()))
	return sameDay && existing.Interval().Overlaps(candidate.Interval())
}

// FindConflict returns the first block in existing that conflicts with
// candidate.
func (c *Calendar) FindConflict(existing []TimeBlock, candidate TimeBlock) (TimeBlock, bool) {
	for _, b := range existing {
		if b.TaskID != candidate.TaskID {
			continue
		}
		if c.Conflicts(b, candidate) {
			return b, true
		}
	}
	return TimeBlock{}, false
}

// ClipMinutes returns the number of minutes of iv that fall within day d.
// It is zero when iv does not intersect d.
func (c *Calendar) ClipMinutes(iv Interval, d Date) float64 {
	start := iv.Start
	if dayStart := c.Midnight(d); dayStart.After(start) {
		start = dayStart
	}
	end := iv.End
	if dayEnd := c.Midnight(d.AddDays(1)); dayEnd.Before(end) {
		end = dayEnd
	}
	minutes := end.Sub(start).Minutes()
	if minutes < 0 {
		return 0
	}
	return minutes
}
