package db

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Timestamps are stored as fixed width civil time text (see
// domain.StorageLayout) and dates as YYYY-MM-DD, so range predicates compare
// text on every dialect. start_date and end_date hold the block's day-span.

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	title        TEXT NOT NULL,
	completed    INTEGER NOT NULL DEFAULT 0,
	completed_at TEXT,
	created_at   TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS time_blocks (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	task_id    INTEGER NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
	start_time TEXT NOT NULL,
	end_time   TEXT NOT NULL,
	date       TEXT NOT NULL,
	start_date TEXT NOT NULL,
	end_date   TEXT NOT NULL,
	CHECK (end_time > start_time)
)`,
	`CREATE INDEX IF NOT EXISTS time_blocks_task_date ON time_blocks(task_id, date)`,
	`CREATE INDEX IF NOT EXISTS time_blocks_span ON time_blocks(start_date, end_date)`,
}

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
	id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	title        VARCHAR(200) NOT NULL,
	completed    BOOLEAN NOT NULL DEFAULT FALSE,
	completed_at VARCHAR(40) NULL,
	created_at   VARCHAR(40) NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS time_blocks (
	id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	task_id    BIGINT UNSIGNED NOT NULL,
	start_time VARCHAR(40) NOT NULL,
	end_time   VARCHAR(40) NOT NULL,
	date       CHAR(10) NOT NULL,
	start_date CHAR(10) NOT NULL,
	end_date   CHAR(10) NOT NULL,
	INDEX time_blocks_task_date (task_id, date),
	INDEX time_blocks_span (start_date, end_date),
	CONSTRAINT fk_time_blocks_task FOREIGN KEY (task_id) REFERENCES tasks(id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
	id           BIGSERIAL PRIMARY KEY,
	title        VARCHAR(200) NOT NULL,
	completed    BOOLEAN NOT NULL DEFAULT FALSE,
	completed_at TEXT,
	created_at   TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS time_blocks (
	id         BIGSERIAL PRIMARY KEY,
	task_id    BIGINT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
	start_time TEXT NOT NULL,
	end_time   TEXT NOT NULL,
	date       CHAR(10) NOT NULL,
	start_date CHAR(10) NOT NULL,
	end_date   CHAR(10) NOT NULL,
	CHECK (end_time > start_time)
)`,
	`CREATE INDEX IF NOT EXISTS time_blocks_task_date ON time_blocks(task_id, date)`,
	`CREATE INDEX IF NOT EXISTS time_blocks_span ON time_blocks(start_date, end_date)`,
}

// ApplySchema creates the tables and indexes for the dialect of db if they do
// not exist yet.
func ApplySchema(ctx context.Context, db *sqlx.DB) error {
	schema := sqliteSchema
	switch db.DriverName() {
	case "mysql":
		schema = mysqlSchema
	case "pgx":
		schema = postgresSchema
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// lockClause returns the row locking suffix for SELECT statements on
// dialects that support it. SQLite serializes writers itself.
func lockClause(driverName string) string {
	if driverName == "sqlite" {
		return ""
	}
	return " FOR UPDATE"
}
