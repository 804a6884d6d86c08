package domain

import "errors"

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrTimeBlockNotFound   = errors.New("time block not found")
	ErrInvalidTitle        = errors.New("invalid task title")
	ErrInvalidTimestamp    = errors.New("invalid timestamp")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidInterval     = errors.New("end time must be after start time")
	ErrOverlappingInterval = errors.New("overlapping interval")
)
