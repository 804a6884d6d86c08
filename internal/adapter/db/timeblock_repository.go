package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"dayplanner/internal/core/domain"
	"dayplanner/internal/core/ports"
)

const (
	timeBlockColumns = `id, task_id, start_time, end_time, date`

	// Blocks of one task that share the candidate's anchor date or whose
	// day-span intersects the candidate's, and whose time range overlaps.
	selectCollidingBlocksQuery = `
SELECT ` + timeBlockColumns + `
FROM time_blocks
WHERE task_id = ?
  AND (date = ? OR (start_date <= ? AND end_date >= ?))
  AND start_time < ?
  AND end_time > ?
ORDER BY id`

	insertTimeBlockQuery = `
INSERT INTO time_blocks (task_id, start_time, end_time, date, start_date, end_date)
VALUES (?, ?, ?, ?, ?, ?)`

	listTaskTimeBlocksQuery = `
SELECT ` + timeBlockColumns + `
FROM time_blocks
WHERE task_id = ?
  AND (date = ? OR (start_date <= ? AND end_date >= ?))
ORDER BY start_time, id`

	listDayTimeBlocksQuery = `
SELECT ` + timeBlockColumns + `
FROM time_blocks
WHERE date = ? OR (start_date <= ? AND end_date >= ?)
ORDER BY start_time, id`

	deleteTimeBlockQuery = `DELETE FROM time_blocks WHERE id = ?`
)

type TimeBlockRepository struct {
	db       *sqlx.DB
	calendar *domain.Calendar
}

type timeBlockRow struct {
	ID        uint64 `db:"id"`
	TaskID    uint64 `db:"task_id"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
	Date      string `db:"date"`
}

var _ ports.TimeBlockRepository = (*TimeBlockRepository)(nil)

func NewTimeBlockRepository(db *sqlx.DB, calendar *domain.Calendar) *TimeBlockRepository {
	return &TimeBlockRepository{db: db, calendar: calendar}
}

func (r *TimeBlockRepository) InsertTimeBlock(ctx context.Context, block domain.TimeBlock, check ports.ConflictCheck) (_ domain.TimeBlock, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.TimeBlock{}, err
	}
	defer txDone(tx, &err)

	if _, err = lockTask(ctx, tx, block.TaskID); err != nil {
		return domain.TimeBlock{}, err
	}

	span := r.calendar.Span(block.Interval())
	start := r.calendar.FormatStorage(block.Start)
	end := r.calendar.FormatStorage(block.End)

	var rows []timeBlockRow
	err = tx.SelectContext(ctx, &rows, tx.Rebind(selectCollidingBlocksQuery),
		block.TaskID,
		block.Date.String(),
		span.Last.String(),
		span.First.String(),
		end,
		start,
	)
	if err != nil {
		return domain.TimeBlock{}, err
	}
	existing, err := r.mapRows(rows)
	if err != nil {
		return domain.TimeBlock{}, err
	}
	if err = check(existing); err != nil {
		return domain.TimeBlock{}, err
	}

	block.ID, err = insertID(ctx, tx, insertTimeBlockQuery,
		block.TaskID,
		start,
		end,
		block.Date.String(),
		span.First.String(),
		span.Last.String(),
	)
	if err != nil {
		return domain.TimeBlock{}, err
	}
	return block, nil
}

func (r *TimeBlockRepository) ListTimeBlocks(ctx context.Context, taskID uint64, day domain.Date) ([]domain.TimeBlock, error) {
	d := day.String()
	var rows []timeBlockRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(listTaskTimeBlocksQuery), taskID, d, d, d); err != nil {
		return nil, err
	}
	return r.mapRows(rows)
}

func (r *TimeBlockRepository) ListTimeBlocksForDay(ctx context.Context, day domain.Date) ([]domain.TimeBlock, error) {
	d := day.String()
	var rows []timeBlockRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(listDayTimeBlocksQuery), d, d, d); err != nil {
		return nil, err
	}
	return r.mapRows(rows)
}

func (r *TimeBlockRepository) DeleteTimeBlock(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(deleteTimeBlockQuery), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrTimeBlockNotFound
	}
	return nil
}

func (r *TimeBlockRepository) mapRows(rows []timeBlockRow) ([]domain.TimeBlock, error) {
	blocks := make([]domain.TimeBlock, 0, len(rows))
	for _, row := range rows {
		b, err := r.mapTimeBlockRowToDomain(row)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func (r *TimeBlockRepository) mapTimeBlockRowToDomain(row timeBlockRow) (domain.TimeBlock, error) {
	start, err := r.calendar.ParseStorage(row.StartTime)
	if err != nil {
		return domain.TimeBlock{}, err
	}
	end, err := r.calendar.ParseStorage(row.EndTime)
	if err != nil {
		return domain.TimeBlock{}, err
	}
	date, err := r.calendar.ParseDate(row.Date)
	if err != nil {
		return domain.TimeBlock{}, err
	}
	return domain.TimeBlock{
		ID:     row.ID,
		TaskID: row.TaskID,
		Start:  start,
		End:    end,
		Date:   date,
	}, nil
}
