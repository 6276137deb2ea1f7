package db

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"agency-ops/db/migrations"
)

// Migrate applies all PostgreSQL up migrations to the database at addr.
func Migrate(addr string) error {
	return migrateFS(migrations.Postgres, migrations.PostgresDir, addr)
}

// MigrateSQLite applies all SQLite up migrations to the database file at
// path. It opens its own connection and closes it before returning.
func MigrateSQLite(path string) error {
	return migrateFS(migrations.SQLite, migrations.SQLiteDir, "sqlite://"+SQLiteDSN(path))
}

func migrateFS(fsys fs.FS, dir, addr string) error {
	driver, err := iofs.New(fsys, dir)
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
