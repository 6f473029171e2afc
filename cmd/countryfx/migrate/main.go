package main

import (
	"flag"
	"log"

	"github.com/fxatlas/countryfx/pkg/config"
	"github.com/fxatlas/countryfx/pkg/dbutil"
	mghelper "github.com/fxatlas/countryfx/pkg/dbutil/migrations"
	"github.com/fxatlas/countryfx/pkg/migrations/countrydb"

	"github.com/uptrace/bun/migrate"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	// Connect to database
	db, err := dbutil.ConnectDB(&cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for country database (%s)...\n", cfg.Database.Path)

	// Create migrator
	migrator := migrate.NewMigrator(db, countrydb.Migrations)

	// Run migrations with args
	err = mghelper.RunMigrations(migrator, flag.Args()...)
	if err != nil {
		mghelper.Exitf(err.Error())
	}
}
