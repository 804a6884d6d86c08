package domain

import "time"

// TimeBlock is an interval of work allocated to a task. Date is the anchor
// day, the calendar date of Start when the block was created.
type TimeBlock struct {
	ID     uint64
	TaskID uint64
	Start  time.Time
	End    time.Time
	Date   Date
}

func (b TimeBlock) Interval() Interval {
	return Interval{Start: b.Start, End: b.End}
}

type CreateTimeBlockInput struct {
	TaskID    uint64
	StartTime string
	EndTime   string
}
