package fixtures

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"zip-league-api/packages/core/models"
	"zip-league-api/packages/core/services"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/gorm"
)

const (
	defaultPlayers = 10
	defaultMatches = 200
)

type Fixtures struct {
	db      *gorm.DB
	players *services.PlayerService
	matches *services.MatchService
	faker   *gofakeit.Faker
	now     func() time.Time
}

func NewFixtures(db *gorm.DB, players *services.PlayerService, matches *services.MatchService, seed uint64) *Fixtures {
	return &Fixtures{
		db:      db,
		players: players,
		matches: matches,
		faker:   gofakeit.New(seed),
		now:     time.Now,
	}
}

// GenerateTestData creates 10 players and 200 matches spread over the current
// period. Every match goes through match creation, so ratings and snapshots
// are real.
func (f *Fixtures) GenerateTestData(ctx context.Context) error {
	log.Println("Starting fixtures generation...")

	players, strengths, err := f.generatePlayers(ctx, defaultPlayers)
	if err != nil {
		return fmt.Errorf("failed to generate players: %w", err)
	}

	count, err := f.generateMatches(ctx, players, strengths, defaultMatches)
	if err != nil {
		return fmt.Errorf("failed to generate matches: %w", err)
	}

	log.Println("Fixtures generated successfully!")
	log.Printf("Created %d players and %d matches", len(players), count)
	return nil
}

func (f *Fixtures) generatePlayers(ctx context.Context, n int) ([]models.Player, map[uint]float64, error) {
	var players []models.Player
	strengths := make(map[uint]float64, n)
	used := make(map[string]bool, n)

	for len(players) < n {
		email := strings.ToLower(f.faker.Email())
		if used[email] {
			continue
		}
		used[email] = true

		player, err := f.players.CreatePlayer(ctx, models.CreatePlayerRequest{
			Name:  f.faker.Name(),
			Email: email,
		})
		if err != nil {
			return nil, nil, err
		}

		// most players are average, a few are much stronger or weaker
		strengths[player.ID] = f.faker.Float64Range(30, 70)
		players = append(players, *player)
	}

	log.Printf("Created %d players", len(players))
	return players, strengths, nil
}

func (f *Fixtures) generateMatches(ctx context.Context, players []models.Player, strengths map[uint]float64, n int) (int, error) {
	if len(players) < 4 {
		return 0, fmt.Errorf("need at least 4 players, have %d", len(players))
	}

	sorted := make([]models.Player, len(players))
	copy(sorted, players)
	sort.Slice(sorted, func(i, j int) bool {
		return strengths[sorted[i].ID] > strengths[sorted[j].ID]
	})
	split := len(sorted) * 2 / 3
	strong, rest := sorted[:split], sorted[split:]
	if len(rest) < 2 {
		strong, rest = sorted[:len(sorted)-2], sorted[len(sorted)-2:]
	}

	now := f.now().UTC()
	start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	days := int(now.Sub(start).Hours()/24) + 1

	for i := 0; i < n; i++ {
		// two from the strong group, two from the rest, then shuffled
		picked := append(f.pick(strong, 2), f.pick(rest, 2)...)
		f.faker.ShuffleAnySlice(picked)

		team1 := strengths[picked[0].ID] + strengths[picked[1].ID]
		team2 := strengths[picked[2].ID] + strengths[picked[3].ID]
		team1Wins := f.faker.Float64() < team1/(team1+team2)

		winnerScore := f.faker.IntRange(6, 10)
		loserScore := f.faker.IntRange(0, winnerScore-1)
		team1Score, team2Score := winnerScore, loserScore
		if !team1Wins {
			team1Score, team2Score = loserScore, winnerScore
		}

		played := start.AddDate(0, 0, i%days).Add(time.Duration(f.faker.IntRange(9, 20)) * time.Hour)
		if played.After(now) {
			played = now
		}

		_, err := f.matches.CreateMatch(ctx, models.CreateMatchRequest{
			Team1Player1ID: picked[0].ID,
			Team1Player2ID: picked[1].ID,
			Team2Player1ID: picked[2].ID,
			Team2Player2ID: picked[3].ID,
			Team1Score:     team1Score,
			Team2Score:     team2Score,
			DatePlayed:     &played,
		})
		if err != nil {
			return i, err
		}
	}

	log.Printf("Created %d matches", n)
	return n, nil
}

// pick returns k distinct players from group.
func (f *Fixtures) pick(group []models.Player, k int) []models.Player {
	shuffled := make([]models.Player, len(group))
	copy(shuffled, group)
	f.faker.ShuffleAnySlice(shuffled)
	return shuffled[:k]
}

func (f *Fixtures) ClearAllData() error {
	log.Println("Clearing all fixture data...")

	// Delete in correct order due to foreign key constraints
	tables := []interface{}{
		&models.ArchivedPlayerSnapshot{},
		&models.PeriodArchive{},
		&models.Match{},
		&models.Player{},
	}

	for _, table := range tables {
		if err := f.db.Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear table %T: %w", table, err)
		}
	}

	if f.db.Dialector.Name() == "postgres" {
		// Reset auto-increment sequences to start from 1
		sequences := []string{
			"ALTER SEQUENCE players_id_seq RESTART WITH 1",
			"ALTER SEQUENCE matches_id_seq RESTART WITH 1",
			"ALTER SEQUENCE period_archives_id_seq RESTART WITH 1",
			"ALTER SEQUENCE archived_player_snapshots_id_seq RESTART WITH 1",
		}

		for _, seq := range sequences {
			if err := f.db.Exec(seq).Error; err != nil {
				log.Printf("Could not reset sequence: %v", err)
			}
		}
	}

	log.Println("All fixture data cleared!")
	return nil
}
