package ports

import (
	"context"
	"time"

	"dayplanner/internal/core/domain"
)

type TaskRepository interface {
	CreateTask(ctx context.Context, task domain.Task) (domain.Task, error)
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	// ListTasksForDay returns incomplete tasks and completed tasks with a
	// block touching day, ordered by id.
	ListTasksForDay(ctx context.Context, day domain.Date) ([]domain.Task, error)
	SetCompletion(ctx context.Context, id uint64, completed bool, completedAt *time.Time) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
}

type TaskService interface {
	ListTasks(ctx context.Context, day domain.Date) ([]domain.Task, error)
	CreateTask(ctx context.Context, title string) (domain.Task, error)
	SetCompletion(ctx context.Context, id uint64, completed bool) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
}
