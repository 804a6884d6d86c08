package service

import (
	"context"

	"go.uber.org/zap"

	"dayplanner/internal/core/domain"
	"dayplanner/internal/core/ports"
)

type TaskService struct {
	calendar            *domain.Calendar
	taskRepository      ports.TaskRepository
	timeBlockRepository ports.TimeBlockRepository
}

func NewTaskService(calendar *domain.Calendar, taskRepository ports.TaskRepository, timeBlockRepository ports.TimeBlockRepository) *TaskService {
	return &TaskService{
		calendar:            calendar,
		taskRepository:      taskRepository,
		timeBlockRepository: timeBlockRepository,
	}
}

func (s *TaskService) ListTasks(ctx context.Context, day domain.Date) ([]domain.Task, error) {
	tasks, _, err := dayView(ctx, s.calendar, s.taskRepository, s.timeBlockRepository, day)
	return tasks, err
}

func (s *TaskService) CreateTask(ctx context.Context, title string) (domain.Task, error) {
	title, err := domain.NormalizeTitle(title)
	if err != nil {
		return domain.Task{}, err
	}
	task, err := s.taskRepository.CreateTask(ctx, domain.Task{
		Title:     title,
		CreatedAt: s.calendar.Now(),
	})
	if err != nil {
		return domain.Task{}, err
	}
	zap.L().Debug("created task", zap.Uint64("task_id", task.ID))
	return task, nil
}

func (s *TaskService) SetCompletion(ctx context.Context, id uint64, completed bool) (domain.Task, error) {
	var task domain.Task
	task.SetCompleted(completed, s.calendar.Now())
	return s.taskRepository.SetCompletion(ctx, id, task.Completed, task.CompletedAt)
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64) error {
	return s.taskRepository.DeleteTask(ctx, id)
}

var _ ports.TaskService = (*TaskService)(nil)
