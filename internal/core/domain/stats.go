package domain

import (
	"math"
	"strconv"
)

type DayStats struct {
	Date           Date
	TotalTasks     int
	CompletedTasks int
	CompletionRate int
	TotalWorkHours float64
	AvgWorkHours   float64
}

// Stats summarizes day d. visible must already be the visible set for d;
// blocks may contain blocks of any day and are filtered with Touches.
func (c *Calendar) Stats(visible []Task, blocks []TimeBlock, d Date) DayStats {
	s := DayStats{Date: d, TotalTasks: len(visible)}
	for _, t := range visible {
		if t.Completed {
			s.CompletedTasks++
		}
	}

	var minutes float64
	for _, b := range blocks {
		if !c.Touches(b, d) {
			continue
		}
		minutes += c.ClipMinutes(b.Interval(), d)
	}
	s.TotalWorkHours = roundTenth(minutes / 60)

	if s.TotalTasks == 0 {
		return s
	}
	s.CompletionRate = int(math.RoundToEven(float64(s.CompletedTasks) / float64(s.TotalTasks) * 100))
	s.AvgWorkHours = roundTenth(s.TotalWorkHours / float64(s.TotalTasks))
	return s
}

// roundTenth rounds the exact binary value of v to one decimal, ties to even,
// so 1.25 becomes 1.2 and 0.35 (stored just below) becomes 0.3.
func roundTenth(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return v
	}
	return r
}
