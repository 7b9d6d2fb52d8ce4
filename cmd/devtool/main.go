package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "check-db":
		err = runCheckDB()
	case "wait-for-db":
		err = runWaitForDB()
	case "migrate":
		err = runMigrate(os.Args[2:])
	case "seed-dex":
		err = runSeedDex(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "devtool: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: devtool <command> [args...]")
	fmt.Println("Commands:")
	fmt.Println("  check-db         Check the Docker database service and start it if needed")
	fmt.Println("  wait-for-db      Wait for the database to accept connections")
	fmt.Println("  migrate <cmd>    Manage migrations via goose (up, down, status, create <name>)")
	fmt.Println("  seed-dex [file]  Load catalog seed SQL (default: internal/database/seeds/catalog_gen1.sql)")
}
