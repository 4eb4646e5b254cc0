// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/hackathon-registry/cliparse"
)

// Driver names registered by the imported database drivers
const (
	SQLiteDriver   = "sqlite"
	PostgresDriver = "postgres"
)

func init() {
	// modernc registers as "sqlite", which sqlx does not know by default.
	sqlx.BindDriver(SQLiteDriver, sqlx.QUESTION)
}

// Open connects to the configured database and verifies the connection.
func Open(cfg cliparse.Config) (*sqlx.DB, error) {
	driver, dsn, err := driverFor(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.DatabaseType, err)
	}

	if driver == SQLiteDriver {
		// SQLite allows a single writer; serialize through one connection
		// so concurrent requests queue instead of failing with SQLITE_BUSY.
		conn.SetMaxOpenConns(1)
	}

	return conn, nil
}

func driverFor(cfg cliparse.Config) (driver, dsn string, err error) {
	switch cfg.DatabaseType {
	case cliparse.DatabaseSQLite, "":
		return SQLiteDriver, withSQLitePragmas(cfg.DatabaseURL), nil
	case cliparse.DatabasePostgres:
		return PostgresDriver, cfg.DatabaseURL, nil
	default:
		return "", "", fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
}

// withSQLitePragmas turns on foreign keys and a busy timeout for every
// connection the pool opens.
func withSQLitePragmas(dsn string) string {
	sep := "?"
	for i := 0; i < len(dsn); i++ {
		if dsn[i] == '?' {
			sep = "&"
			break
		}
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
