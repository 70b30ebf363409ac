package fixtures

import (
	"context"
	"testing"

	"zip-league-api/packages/core/models"
	"zip-league-api/packages/core/rating"
	"zip-league-api/packages/core/services"
	"zip-league-api/packages/core/store"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newTestFixtures(t *testing.T, seed uint64) (*Fixtures, *gorm.DB) {
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
	guard := services.NewPeriodGuard()
	players := services.NewPlayerService(db, repo, skill, rating.DefaultDecayConfig())
	matches := services.NewMatchService(db, repo, skill, guard)
	return NewFixtures(db, players, matches, seed), db
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count %T: %v", model, err)
	}
	return n
}

func TestGenerateTestData(t *testing.T) {
	f, db := newTestFixtures(t, 42)
	if err := f.GenerateTestData(context.Background()); err != nil {
		t.Fatalf("GenerateTestData: %v", err)
	}

	if n := count(t, db, &models.Player{}); n != defaultPlayers {
		t.Fatalf("players = %d, want %d", n, defaultPlayers)
	}
	if n := count(t, db, &models.Match{}); n != defaultMatches {
		t.Fatalf("matches = %d, want %d", n, defaultMatches)
	}

	var players []models.Player
	if err := db.Find(&players).Error; err != nil {
		t.Fatalf("load players: %v", err)
	}
	eloSum, played := 0, 0
	for _, p := range players {
		eloSum += p.EloRating
		played += p.MatchesPlayed
		if p.MatchesWon+p.MatchesLost != p.MatchesPlayed {
			t.Fatalf("player %d: %d won + %d lost != %d played", p.ID, p.MatchesWon, p.MatchesLost, p.MatchesPlayed)
		}
	}
	if eloSum != defaultPlayers*models.DefaultEloRating {
		t.Fatalf("elo sum = %d, ratings are not zero-sum", eloSum)
	}
	if played != 4*defaultMatches {
		t.Fatalf("participations = %d, want %d", played, 4*defaultMatches)
	}
}

func TestClearAllData(t *testing.T) {
	f, db := newTestFixtures(t, 7)
	if err := f.GenerateTestData(context.Background()); err != nil {
		t.Fatalf("GenerateTestData: %v", err)
	}
	if err := f.ClearAllData(); err != nil {
		t.Fatalf("ClearAllData: %v", err)
	}
	for _, model := range store.Models() {
		if n := count(t, db, model); n != 0 {
			t.Fatalf("%T still has %d rows", model, n)
		}
	}
}
