package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"zip-league-api/config"
	"zip-league-api/migrations"
	"zip-league-api/packages/core/store"
)

func main() {
	cfg, err := config.Initialize()
	if err != nil {
		log.Fatal(err)
	}

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	// SQL migrations are PostgreSQL only; the embedded database is built from the models
	if cfg.DB.Driver == "sqlite" {
		if os.Args[1] != "migrate" {
			log.Fatalf("%s is not supported with DB_DRIVER=sqlite", os.Args[1])
		}
		if err := store.AutoMigrate(config.DB); err != nil {
			log.Fatal("Migration failed:", err)
		}
		log.Println("SQLite schema is up to date")
		return
	}

	migrator, err := migrations.NewMigrator(config.DB)
	if err != nil {
		log.Fatal(err)
	}
	for _, migration := range migrations.GetAllMigrations() {
		migrator.AddMigration(migration)
	}

	command := os.Args[1]

	switch command {
	case "migrate":
		if err := migrator.Migrate(); err != nil {
			log.Fatal("Migration failed:", err)
		}
	case "rollback":
		steps := 1
		if len(os.Args) > 2 {
			if s, err := strconv.Atoi(os.Args[2]); err == nil {
				steps = s
			}
		}
		if err := migrator.Rollback(steps); err != nil {
			log.Fatal("Rollback failed:", err)
		}
	case "status":
		if err := showStatus(migrator); err != nil {
			log.Fatal("Status failed:", err)
		}
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/migrate migrate          - Run pending migrations")
	fmt.Println("  go run ./cmd/migrate rollback [steps] - Rollback migrations (default: 1)")
	fmt.Println("  go run ./cmd/migrate status           - Show migration status")
}

func showStatus(migrator *migrations.Migrator) error {
	applied, err := migrator.Applied()
	if err != nil {
		return err
	}
	pending, err := migrator.Pending()
	if err != nil {
		return err
	}

	if len(applied) == 0 {
		fmt.Println("No migrations have been run yet.")
	} else {
		fmt.Println("Migration Status:")
		fmt.Println("Batch | Name")
		fmt.Println("------|-----")
		for _, migration := range applied {
			fmt.Printf("%-5d | %s\n", migration.Batch, migration.Name)
		}
	}

	for _, name := range pending {
		fmt.Printf("pending | %s\n", name)
	}
	return nil
}
