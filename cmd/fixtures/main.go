package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"zip-league-api/config"
	"zip-league-api/fixtures"
	"zip-league-api/packages/core"
	"zip-league-api/packages/core/store"
)

func main() {
	cfg, err := config.Initialize()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.DB.Driver == "sqlite" {
		if err := store.AutoMigrate(config.DB); err != nil {
			log.Fatal(err)
		}
	}

	opts := core.DefaultOptions()
	opts.Skill = cfg.Rating.Skill
	opts.Decay = cfg.Rating.Decay
	module := core.NewModule(config.DB, opts)

	fixtureManager := fixtures.NewFixtures(config.DB, module.PlayerService, module.MatchService, uint64(time.Now().UnixNano()))

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	ctx := context.Background()
	command := os.Args[1]

	switch command {
	case "generate":
		if err := fixtureManager.GenerateTestData(ctx); err != nil {
			log.Fatal("Failed to generate fixtures:", err)
		}
		fmt.Println("✅ Fixtures generated successfully!")
	case "clear":
		if err := fixtureManager.ClearAllData(); err != nil {
			log.Fatal("Failed to clear fixtures:", err)
		}
		fmt.Println("✅ All fixture data cleared!")
	case "regenerate":
		fmt.Println("Clearing existing data...")
		if err := fixtureManager.ClearAllData(); err != nil {
			log.Fatal("Failed to clear fixtures:", err)
		}
		fmt.Println("Generating new fixtures...")
		if err := fixtureManager.GenerateTestData(ctx); err != nil {
			log.Fatal("Failed to generate fixtures:", err)
		}
		fmt.Println("✅ Fixtures regenerated successfully!")
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/fixtures generate    - Generate test data (10 players, 200 matches)")
	fmt.Println("  go run ./cmd/fixtures clear       - Clear all fixture data")
	fmt.Println("  go run ./cmd/fixtures regenerate  - Clear and regenerate all data")
}
