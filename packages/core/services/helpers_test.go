package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"zip-league-api/packages/core/models"
	"zip-league-api/packages/core/rating"
	"zip-league-api/packages/core/store"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type testEnv struct {
	db        *gorm.DB
	repo      store.Repository
	now       time.Time
	players   *PlayerService
	matches   *MatchService
	recompute *RecomputeService
	archives  *ArchiveService
	stats     *StatsService
	history   *EloHistoryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := store.OpenSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	repo := store.NewGormRepository(db)
	skill := rating.NewSkillEngine(rating.DefaultSkillConfig())
	guard := NewPeriodGuard()

	env := &testEnv{
		db:        db,
		repo:      repo,
		now:       time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		players:   NewPlayerService(db, repo, skill, rating.DefaultDecayConfig()),
		matches:   NewMatchService(db, repo, skill, guard),
		recompute: NewRecomputeService(repo, skill, guard),
		archives:  NewArchiveService(db, repo, skill, guard),
		stats:     NewStatsService(db),
		history:   NewEloHistoryService(db),
	}
	clock := func() time.Time { return env.now }
	env.players.now = clock
	env.matches.now = clock
	env.recompute.now = clock
	env.archives.now = clock
	env.stats.now = clock
	return env
}

func (e *testEnv) createPlayers(t *testing.T, n int) []models.Player {
	t.Helper()
	players := make([]models.Player, n)
	for i := range players {
		p, err := e.players.CreatePlayer(context.Background(), models.CreatePlayerRequest{
			Name:  fmt.Sprintf("Player %d", i+1),
			Email: fmt.Sprintf("player%d@league.test", i+1),
		})
		if err != nil {
			t.Fatalf("create player: %v", err)
		}
		players[i] = *p
	}
	return players
}

func matchRequest(p []models.Player, team1Score, team2Score int, played time.Time) models.CreateMatchRequest {
	return models.CreateMatchRequest{
		Team1Player1ID: p[0].ID,
		Team1Player2ID: p[1].ID,
		Team2Player1ID: p[2].ID,
		Team2Player2ID: p[3].ID,
		Team1Score:     team1Score,
		Team2Score:     team2Score,
		DatePlayed:     &played,
	}
}

func (e *testEnv) createMatch(t *testing.T, req models.CreateMatchRequest) *models.Match {
	t.Helper()
	m, err := e.matches.CreateMatch(context.Background(), req)
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	return m
}

func (e *testEnv) player(t *testing.T, id uint) *models.Player {
	t.Helper()
	p, err := e.players.GetPlayerByID(id)
	if err != nil {
		t.Fatalf("get player %d: %v", id, err)
	}
	return p
}

func (e *testEnv) countMatches(t *testing.T) int64 {
	t.Helper()
	var n int64
	if err := e.db.Model(&models.Match{}).Count(&n).Error; err != nil {
		t.Fatalf("count matches: %v", err)
	}
	return n
}

func (e *testEnv) allPlayers(t *testing.T) []models.Player {
	t.Helper()
	players, err := e.repo.AllPlayers()
	if err != nil {
		t.Fatalf("load players: %v", err)
	}
	return players
}

// assertSameRatings fails when any rating column differs between two loads
// of the same players.
func assertSameRatings(t *testing.T, want, got []models.Player) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("%d players, want %d", len(got), len(want))
	}
	for i := range want {
		a, b := want[i], got[i]
		sameDate := (a.LastMatchDate == nil) == (b.LastMatchDate == nil) &&
			(a.LastMatchDate == nil || a.LastMatchDate.Equal(*b.LastMatchDate))
		if a.ID != b.ID || a.EloRating != b.EloRating || a.SkillMean != b.SkillMean ||
			a.SkillUncertainty != b.SkillUncertainty || a.MatchesPlayed != b.MatchesPlayed ||
			a.MatchesWon != b.MatchesWon || a.MatchesLost != b.MatchesLost || !sameDate {
			t.Fatalf("player %d changed: %+v -> %+v", a.ID, a, b)
		}
	}
}

func (e *testEnv) allMatches(t *testing.T) []models.Match {
	t.Helper()
	var matches []models.Match
	if err := e.db.Order("id ASC").Find(&matches).Error; err != nil {
		t.Fatalf("load matches: %v", err)
	}
	return matches
}

// assertSameMatches fails when any replayed column differs.
func assertSameMatches(t *testing.T, want, got []models.Match) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("%d matches, want %d", len(got), len(want))
	}
	for i := range want {
		a, b := want[i], got[i]
		if a.ID != b.ID || a.Period != b.Period || a.Result != b.Result || a.EloChange != b.EloChange ||
			a.Snapshots() != b.Snapshots() {
			t.Fatalf("match %d changed: %+v -> %+v", a.ID, a, b)
		}
	}
}

func (e *testEnv) countArchives(t *testing.T) int64 {
	t.Helper()
	var n int64
	if err := e.db.Model(&models.PeriodArchive{}).Count(&n).Error; err != nil {
		t.Fatalf("count archives: %v", err)
	}
	return n
}
