package countrydb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/fxatlas/countryfx/pkg/countrystore"
	mghelper "github.com/fxatlas/countryfx/pkg/dbutil/migrations"
)

const createCountriesTable = `
CREATE TABLE IF NOT EXISTS countries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL CHECK (name <> ''),
	capital TEXT,
	region TEXT,
	population INTEGER NOT NULL,
	currency_code TEXT,
	exchange_rate REAL,
	estimated_gdp REAL,
	flag_url TEXT,
	last_refreshed_at TIMESTAMP NOT NULL
)`

// One row per country name regardless of casing.
const createCountriesNameIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS idx_countries_name_nocase
ON countries (name COLLATE NOCASE)`

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating countries table...")
		if _, err := db.ExecContext(ctx, createCountriesTable); err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, createCountriesNameIndex); err != nil {
			return err
		}
		// Create indexes
		return mghelper.CreateModelIndexes(ctx, db, &countrystore.CountryDao{}, "region", "currency_code")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping countries table...")
		return mghelper.DropTables(ctx, db, &countrystore.CountryDao{})
	})
}
