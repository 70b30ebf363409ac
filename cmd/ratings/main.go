package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"zip-league-api/config"
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

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	ctx := context.Background()
	command := os.Args[1]

	switch command {
	case "recompute":
		period := periodArg(module.RecomputeService.CurrentPeriod())
		result, err := module.RecomputeService.Recompute(ctx, period)
		if err != nil {
			log.Fatal("Recompute failed:", err)
		}
		printJSON(result)
	case "verify":
		period := periodArg(module.RecomputeService.CurrentPeriod())
		report, err := module.RecomputeService.Verify(ctx, period)
		if err != nil {
			log.Fatal("Verify failed:", err)
		}
		printJSON(report)
		if !report.Clean() {
			os.Exit(1)
		}
	case "archive":
		if len(os.Args) < 3 {
			printUsage()
			os.Exit(2)
		}
		period := periodArg(0)
		archive, err := module.ArchiveService.ArchivePeriod(ctx, period)
		if err != nil {
			log.Fatal("Archive failed:", err)
		}
		fmt.Printf("Archived period %d: %d matches, %d players\n",
			archive.Period, archive.TotalMatches, archive.TotalPlayers)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

// periodArg reads the optional period argument.
func periodArg(fallback int) int {
	if len(os.Args) < 3 {
		return fallback
	}
	period, err := strconv.Atoi(os.Args[2])
	if err != nil || period <= 0 {
		log.Fatalf("Invalid period: %s", os.Args[2])
	}
	return period
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/ratings recompute [period] - Replay a period and rewrite ratings (default: current)")
	fmt.Println("  go run ./cmd/ratings verify [period]    - Replay a period in memory and report drift")
	fmt.Println("  go run ./cmd/ratings archive <period>   - Archive a finished period")
}
