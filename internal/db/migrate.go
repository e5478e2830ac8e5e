package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"creative-sync/db/migrations"
)

// ErrDirtySchema is returned when an earlier migration stopped halfway and
// the schema needs manual repair.
var ErrDirtySchema = errors.New("database schema is dirty")

// Migrate brings the creative sync schema at addr up to migrations.Version.
func Migrate(addr string) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		_ = src.Close()
		return fmt.Errorf("connect migrator: %w", err)
	}
	defer mg.Close()

	current, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case dirty:
		return fmt.Errorf("%w at version %d", ErrDirtySchema, current)
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate schema to version %d: %w", migrations.Version, err)
	}
	return nil
}
