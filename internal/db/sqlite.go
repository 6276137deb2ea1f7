package db

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// sqlitePragmas enables foreign keys and WAL and makes every transaction
// take the write lock up front, so check-then-write sequences serialize.
const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate"

// SQLiteDSN returns the modernc.org/sqlite DSN for path.
func SQLiteDSN(path string) string {
	return filepath.Clean(path) + "?" + sqlitePragmas
}

// OpenSQLite opens the database file at path. A single connection is used;
// SQLite allows one writer at a time anyway. The caller must close the
// returned handle.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	sqlDB, err := sql.Open("sqlite", SQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = sqlDB.PingContext(ctxPing); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return sqlDB, nil
}
