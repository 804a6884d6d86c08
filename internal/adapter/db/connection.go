package db

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"dayplanner/internal/config"
)

const defaultSQLiteDSN = "file:planner.db"

func init() {
	// sqlx does not know the modernc driver name.
	sqlx.BindDriver(config.DriverSQLite, sqlx.QUESTION)
}

// ConnectDB opens the database described by conf and makes sure the schema
// exists.
func ConnectDB(ctx context.Context, conf *config.Config) (*sqlx.DB, error) {
	dsn, err := buildDSN(conf)
	if err != nil {
		return nil, err
	}
	return Open(ctx, conf.DbDriver, dsn)
}

// Open connects to dsn with the named driver and applies the schema.
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	if driver == config.DriverSQLite {
		dsn = sqliteDSN(dsn)
	}
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == config.DriverSQLite {
		// A single connection keeps in-memory databases shared and
		// serializes SQLite writers.
		db.SetMaxOpenConns(1)
	}
	if err := ApplySchema(ctx, db); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

func buildDSN(conf *config.Config) (string, error) {
	switch conf.DbDriver {
	case config.DriverSQLite:
		if conf.DbDSN == "" {
			return defaultSQLiteDSN, nil
		}
		return conf.DbDSN, nil
	case config.DriverMySQL:
		if conf.DbDSN != "" {
			return conf.DbDSN, nil
		}
		params := conf.DbParams
		if params == "" {
			params = "multiStatements=true"
		}
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?%s",
			conf.DbUser,
			conf.DbPassword,
			conf.DbHost,
			conf.DbPort,
			conf.DbName,
			params,
		), nil
	case config.DriverPostgres:
		if conf.DbDSN == "" {
			return "", fmt.Errorf("DB_DSN is required for driver %q", conf.DbDriver)
		}
		return conf.DbDSN, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", conf.DbDriver)
	}
}

// sqliteDSN enables foreign keys and a busy timeout unless the DSN already
// sets pragmas.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	pragmas := url.Values{}
	pragmas.Add("_pragma", "foreign_keys(1)")
	pragmas.Add("_pragma", "busy_timeout(5000)")
	return dsn + sep + pragmas.Encode()
}
