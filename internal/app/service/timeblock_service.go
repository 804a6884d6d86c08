package service

import (
	"context"

	"go.uber.org/zap"

	"dayplanner/internal/core/domain"
	"dayplanner/internal/core/ports"
)

type TimeBlockService struct {
	calendar            *domain.Calendar
	timeBlockRepository ports.TimeBlockRepository
	locks               taskLocks
}

func NewTimeBlockService(calendar *domain.Calendar, timeBlockRepository ports.TimeBlockRepository) *TimeBlockService {
	return &TimeBlockService{
		calendar:            calendar,
		timeBlockRepository: timeBlockRepository,
	}
}

func (s *TimeBlockService) ListTimeBlocks(ctx context.Context, taskID uint64, day domain.Date) ([]domain.TimeBlock, error) {
	blocks, err := s.timeBlockRepository.ListTimeBlocks(ctx, taskID, day)
	if err != nil {
		return nil, err
	}
	touching := blocks[:0]
	for _, b := range blocks {
		if s.calendar.Touches(b, day) {
			touching = append(touching, b)
		}
	}
	return touching, nil
}

// CreateTimeBlock normalizes the input timestamps and stores the block unless
// it overlaps another block of the same task.
func (s *TimeBlockService) CreateTimeBlock(ctx context.Context, input domain.CreateTimeBlockInput) (domain.TimeBlock, error) {
	start, err := s.calendar.ParseTimestamp(input.StartTime)
	if err != nil {
		return domain.TimeBlock{}, err
	}
	end, err := s.calendar.ParseTimestamp(input.EndTime)
	if err != nil {
		return domain.TimeBlock{}, err
	}
	candidate, err := s.calendar.NewTimeBlock(input.TaskID, start, end)
	if err != nil {
		return domain.TimeBlock{}, err
	}

	unlock := s.locks.lock(input.TaskID)
	defer unlock()

	block, err := s.timeBlockRepository.InsertTimeBlock(ctx, candidate, func(existing []domain.TimeBlock) error {
		if conflict, ok := s.calendar.FindConflict(existing, candidate); ok {
			zap.L().Debug("rejected overlapping time block",
				zap.Uint64("task_id", candidate.TaskID),
				zap.Uint64("conflicting_block_id", conflict.ID),
			)
			return domain.ErrOverlappingInterval
		}
		return nil
	})
	if err != nil {
		return domain.TimeBlock{}, err
	}
	zap.L().Debug("created time block", zap.Uint64("task_id", block.TaskID), zap.Uint64("block_id", block.ID))
	return block, nil
}

func (s *TimeBlockService) DeleteTimeBlock(ctx context.Context, id uint64) error {
	return s.timeBlockRepository.DeleteTimeBlock(ctx, id)
}

var _ ports.TimeBlockService = (*TimeBlockService)(nil)
