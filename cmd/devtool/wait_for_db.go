package main

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func runWaitForDB() error {
	fmt.Println("Waiting for database...")

	dbURL := databaseURL()
	maxRetries := 30
	retryInterval := 2 * time.Second

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		db, err := sql.Open("pgx", dbURL)
		if err == nil {
			err = db.Ping()
			db.Close()
			if err == nil {
				fmt.Println("Database is ready")
				return nil
			}
		}
		lastErr = err
		fmt.Printf("Database not ready (%d/%d): %v\n", i, maxRetries, err)
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", maxRetries, lastErr)
}
