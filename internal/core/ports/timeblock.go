package ports

import (
	"context"

	"dayplanner/internal/core/domain"
)

// ConflictCheck inspects the stored blocks that may collide with a candidate
// and returns a non-nil error to abort the insert.
type ConflictCheck func(existing []domain.TimeBlock) error

type TimeBlockRepository interface {
	// InsertTimeBlock runs check against the task's potentially colliding
	// blocks and inserts block in the same transaction.
	InsertTimeBlock(ctx context.Context, block domain.TimeBlock, check ConflictCheck) (domain.TimeBlock, error)
	ListTimeBlocks(ctx context.Context, taskID uint64, day domain.Date) ([]domain.TimeBlock, error)
	ListTimeBlocksForDay(ctx context.Context, day domain.Date) ([]domain.TimeBlock, error)
	DeleteTimeBlock(ctx context.Context, id uint64) error
}

type TimeBlockService interface {
	ListTimeBlocks(ctx context.Context, taskID uint64, day domain.Date) ([]domain.TimeBlock, error)
	CreateTimeBlock(ctx context.Context, input domain.CreateTimeBlockInput) (domain.TimeBlock, error)
	DeleteTimeBlock(ctx context.Context, id uint64) error
}

type StatsService interface {
	DayStats(ctx context.Context, day domain.Date) (domain.DayStats, error)
}
