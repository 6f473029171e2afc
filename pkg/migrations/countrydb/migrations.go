// Package countrydb holds all the migrations for the country database
package countrydb

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the country database
var Migrations = migrate.NewMigrations()

// Migrate applies all pending migrations. Used on server startup so a fresh
// database file is usable immediately.
func Migrate(ctx context.Context, db *bun.DB) error {
	migrator := migrate.NewMigrator(db, Migrations)
	if err := migrator.Init(ctx); err != nil {
		return err
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		return err
	}
	return nil
}
