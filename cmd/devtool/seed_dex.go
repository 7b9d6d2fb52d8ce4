package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const defaultSeedFile = "internal/database/seeds/catalog_gen1.sql"

// runSeedDex loads catalog reference rows so a fresh local database has
// something to browse before any slots are filled.
func runSeedDex(args []string) error {
	seedFile := defaultSeedFile
	if len(args) > 0 {
		seedFile = args[0]
	}

	content, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", seedFile, err)
	}

	db, err := sql.Open("pgx", databaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	fmt.Printf("Executing %s...\n", seedFile)
	if _, err := db.Exec(string(content)); err != nil {
		return fmt.Errorf("failed to execute seed file %s: %w", seedFile, err)
	}

	fmt.Println("Catalog seed completed")
	return nil
}
