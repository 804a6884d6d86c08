package db

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

func txDone(tx *sqlx.Tx, err *error) {
	if *err == nil {
		*err = tx.Commit()
	} else {
		*err = errors.Join(*err, tx.Rollback())
	}
}

// insertID runs an INSERT and returns the id assigned to the new row.
// PostgreSQL has no LastInsertId so the id is read back with RETURNING.
func insertID(ctx context.Context, tx *sqlx.Tx, query string, args ...any) (uint64, error) {
	if tx.DriverName() == "pgx" {
		var id uint64
		err := tx.QueryRowxContext(ctx, tx.Rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}
	res, err := tx.ExecContext(ctx, tx.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
