package validation

import (
	"errors"

	"dayplanner/internal/adapter/http/dto"
	"dayplanner/internal/core/domain"
)

var (
	ErrInvalidTaskPayload      = errors.New("invalid task payload")
	ErrInvalidTimeBlockPayload = errors.New("invalid time block payload")
)

func BuildCreateTaskTitle(req dto.CreateTaskRequest) (string, error) {
	title, err := domain.NormalizeTitle(req.Title)
	if err != nil {
		return "", ErrInvalidTaskPayload
	}
	return title, nil
}

func BuildCreateTimeBlockInput(req dto.CreateTimeBlockRequest) (domain.CreateTimeBlockInput, error) {
	if req.TaskID == 0 || req.StartTime == "" || req.EndTime == "" {
		return domain.CreateTimeBlockInput{}, ErrInvalidTimeBlockPayload
	}
	return domain.CreateTimeBlockInput{
		TaskID:    req.TaskID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}
