package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/school-helper-backend/internal/config"
	"github.com/stemsi/school-helper-backend/internal/database"
	"github.com/stemsi/school-helper-backend/internal/repository"
)

func main() {
	var timeout time.Duration
	flag.DurationVar(&timeout, "timeout", time.Minute, "Overall deadline for the command")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		return
	}

	// Load config
	cfg := config.Load()
	if !cfg.DatabaseConfigured() {
		log.Fatal("DATABASE_URL and DATABASE_NAME must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	store := database.NewMongoStore(ctx, cfg, zerolog.Nop())
	if !store.Configured() {
		log.Fatal("MongoDB client could not be created, check DATABASE_URL")
	}
	defer store.Close(context.Background())

	if err := store.Ping(ctx); err != nil {
		log.Fatalf("MongoDB unreachable: %v", err)
	}

	switch args[0] {
	case "up":
		names, err := store.EnsureIndexes(ctx, repository.Indexes)
		for _, n := range names {
			fmt.Printf("ensured %s\n", n)
		}
		if err != nil {
			log.Fatalf("Up failed: %v", err)
		}
		fmt.Println("Indexes up to date")
	case "list":
		for _, coll := range repository.Collections {
			idx, err := store.ListIndexes(ctx, coll)
			if err != nil {
				log.Fatalf("List failed: %v", err)
			}
			fmt.Printf("%s:\n", coll)
			for _, ix := range idx {
				fmt.Printf("  %v %v\n", ix["name"], ix["key"])
			}
		}
	default:
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage: migrate [flags] <command>")
	fmt.Println("Commands: up, list")
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
