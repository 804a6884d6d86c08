package service

import (
	"context"
	"fmt"

	"dayplanner/internal/core/domain"
	"dayplanner/internal/core/ports"
)

// dayView loads the visible tasks for day together with every block that
// touches day.
func dayView(ctx context.Context, cal *domain.Calendar, tasks ports.TaskRepository, blocks ports.TimeBlockRepository, day domain.Date) ([]domain.Task, []domain.TimeBlock, error) {
	candidates, err := tasks.ListTasksForDay(ctx, day)
	if err != nil {
		return nil, nil, fmt.Errorf("list tasks for %s: %w", day, err)
	}
	touching, err := blocks.ListTimeBlocksForDay(ctx, day)
	if err != nil {
		return nil, nil, fmt.Errorf("list time blocks for %s: %w", day, err)
	}
	return cal.VisibleTasks(candidates, touching, day), touching, nil
}
