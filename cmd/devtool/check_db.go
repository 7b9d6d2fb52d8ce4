package main

import (
	"fmt"
	"strings"
	"time"
)

func runCheckDB() error {
	fmt.Println("Checking Docker database status...")

	if err := runCommand("docker", "compose", "version"); err != nil {
		return fmt.Errorf("docker compose not found, install Docker Compose first")
	}

	out, err := getCommandOutput("docker", "compose", "ps", "db")
	if err == nil {
		status := strings.ToLower(out)
		if strings.Contains(status, "up") || strings.Contains(status, "running") {
			fmt.Println("Database is already running")
			return nil
		}
	}

	fmt.Println("Starting database...")
	if err := runCommandVerbose("docker", "compose", "up", "-d", "db"); err != nil {
		return fmt.Errorf("error starting database: %w", err)
	}

	dbUser := getEnv("DB_USER", "postgres")
	dbName := getEnv("DB_NAME", "dexbinder")

	maxAttempts := 30
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := runCommand("docker", "compose", "exec", "-T", "db", "pg_isready", "-U", dbUser, "-d", dbName); err == nil {
			fmt.Println("Database is ready")
			return nil
		}
		fmt.Printf("Waiting for database... (%d/%d)\n", attempt, maxAttempts)
		time.Sleep(1 * time.Second)
	}

	_ = runCommandVerbose("docker", "compose", "logs", "db")
	return fmt.Errorf("database failed to start after %d seconds", maxAttempts)
}
