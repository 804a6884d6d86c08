package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"dayplanner/internal/core/domain"
	"dayplanner/internal/core/ports"
)

const (
	insertTaskQuery = `INSERT INTO tasks (title, completed, completed_at, created_at) VALUES (?, ?, ?, ?)`

	selectTaskQuery = `
SELECT id, title, completed, completed_at, created_at
FROM tasks
WHERE id = ?`

	// Incomplete tasks, plus tasks owning a block anchored on or spanning
	// the day.
	listTasksForDayQuery = `
SELECT id, title, completed, completed_at, created_at
FROM tasks
WHERE completed = ?
   OR id IN (
     SELECT DISTINCT task_id
     FROM time_blocks
     WHERE date = ? OR (start_date <= ? AND end_date >= ?)
   )
ORDER BY id`

	updateCompletionQuery = `UPDATE tasks SET completed = ?, completed_at = ? WHERE id = ?`

	deleteTaskBlocksQuery = `DELETE FROM time_blocks WHERE task_id = ?`
	deleteTaskQuery       = `DELETE FROM tasks WHERE id = ?`
)

type TaskRepository struct {
	db       *sqlx.DB
	calendar *domain.Calendar
}

type taskRow struct {
	ID          uint64         `db:"id"`
	Title       string         `db:"title"`
	Completed   bool           `db:"completed"`
	CompletedAt sql.NullString `db:"completed_at"`
	CreatedAt   string         `db:"created_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB, calendar *domain.Calendar) *TaskRepository {
	return &TaskRepository{db: db, calendar: calendar}
}

func (r *TaskRepository) CreateTask(ctx context.Context, task domain.Task) (_ domain.Task, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Task{}, err
	}
	defer txDone(tx, &err)

	id, err := insertID(ctx, tx, insertTaskQuery,
		task.Title,
		task.Completed,
		r.nullTime(task.CompletedAt),
		r.calendar.FormatStorage(task.CreatedAt),
	)
	if err != nil {
		return domain.Task{}, err
	}
	task.ID = id
	task.CreatedAt = r.calendar.Normalize(task.CreatedAt)
	return task, nil
}

func (r *TaskRepository) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(selectTaskQuery), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return r.mapTaskRowToDomainTask(row)
}

func (r *TaskRepository) ListTasksForDay(ctx context.Context, day domain.Date) ([]domain.Task, error) {
	d := day.String()
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(listTasksForDayQuery), false, d, d, d); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := r.mapTaskRowToDomainTask(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r *TaskRepository) SetCompletion(ctx context.Context, id uint64, completed bool, completedAt *time.Time) (_ domain.Task, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Task{}, err
	}
	defer txDone(tx, &err)

	row, err := lockTask(ctx, tx, id)
	if err != nil {
		return domain.Task{}, err
	}
	completedAtValue := r.nullTime(completedAt)
	_, err = tx.ExecContext(ctx, tx.Rebind(updateCompletionQuery), completed, completedAtValue, id)
	if err != nil {
		return domain.Task{}, err
	}
	row.Completed = completed
	row.CompletedAt = completedAtValue
	return r.mapTaskRowToDomainTask(row)
}

// DeleteTask removes the task and all of its time blocks in one transaction.
func (r *TaskRepository) DeleteTask(ctx context.Context, id uint64) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer txDone(tx, &err)

	if _, err = lockTask(ctx, tx, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, tx.Rebind(deleteTaskBlocksQuery), id); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, tx.Rebind(deleteTaskQuery), id)
	return err
}

// lockTask reads the task row, locking it until tx ends where the dialect
// allows.
func lockTask(ctx context.Context, tx *sqlx.Tx, id uint64) (taskRow, error) {
	var row taskRow
	err := tx.GetContext(ctx, &row, tx.Rebind(selectTaskQuery+lockClause(tx.DriverName())), id)
	if errors.Is(err, sql.ErrNoRows) {
		return taskRow{}, domain.ErrTaskNotFound
	}
	return row, err
}

func (r *TaskRepository) nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: r.calendar.FormatStorage(*t), Valid: true}
}

func (r *TaskRepository) mapTaskRowToDomainTask(row taskRow) (domain.Task, error) {
	createdAt, err := r.calendar.ParseStorage(row.CreatedAt)
	if err != nil {
		return domain.Task{}, err
	}
	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		Completed: row.Completed,
		CreatedAt: createdAt,
	}

	if row.CompletedAt.Valid {
		value, err := r.calendar.ParseStorage(row.CompletedAt.String)
		if err != nil {
			return domain.Task{}, err
		}
		task.CompletedAt = &value
	}

	return task, nil
}
