package service

import (
	"context"

	"dayplanner/internal/core/domain"
	"dayplanner/internal/core/ports"
)

type StatsService struct {
	calendar            *domain.Calendar
	taskRepository      ports.TaskRepository
	timeBlockRepository ports.TimeBlockRepository
}

func NewStatsService(calendar *domain.Calendar, taskRepository ports.TaskRepository, timeBlockRepository ports.TimeBlockRepository) *StatsService {
	return &StatsService{
		calendar:            calendar,
		taskRepository:      taskRepository,
		timeBlockRepository: timeBlockRepository,
	}
}

func (s *StatsService) DayStats(ctx context.Context, day domain.Date) (domain.DayStats, error) {
	tasks, blocks, err := dayView(ctx, s.calendar, s.taskRepository, s.timeBlockRepository, day)
	if err != nil {
		return domain.DayStats{}, err
	}
	return s.calendar.Stats(tasks, blocks, day), nil
}

var _ ports.StatsService = (*StatsService)(nil)
