package services

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"zip-league-api/packages/core/models"

	"github.com/google/uuid"
)

func TestCreateMatchAppliesBothEngines(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPlayers(t, 4)
	played := time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)

	m := env.createMatch(t, matchRequest(p, 10, 5, played))

	if m.Result != models.ResultTeam1Win || m.EloChange != 16 {
		t.Fatalf("result/change = %s/%d, want team1_win/16", m.Result, m.EloChange)
	}
	if m.Period != 2025 || !m.DatePlayed.Equal(played) {
		t.Fatalf("period/date = %d/%v", m.Period, m.DatePlayed)
	}
	if m.State != models.StateCommitted {
		t.Fatalf("state = %s, want committed", m.State)
	}
	for i, s := range m.Snapshots() {
		if s.Elo != 1000 || s.SkillMean != 25 || s.SkillUncertainty != 25.0/3 {
			t.Fatalf("snapshot %d = %+v, want prior", i, s)
		}
	}
	if m.Team1Player1 == nil || m.Team2Player2 == nil {
		t.Fatalf("players not preloaded")
	}

	wantElo := []int{1016, 1016, 984, 984}
	for i := range p {
		got := env.player(t, p[i].ID)
		if got.EloRating != wantElo[i] {
			t.Fatalf("player %d elo = %d, want %d", i, got.EloRating, wantElo[i])
		}
		if got.MatchesPlayed != 1 {
			t.Fatalf("player %d played %d", i, got.MatchesPlayed)
		}
		if i < 2 && (got.MatchesWon != 1 || got.SkillMean <= 25) {
			t.Fatalf("winner %d = %+v", i, got)
		}
		if i >= 2 && (got.MatchesLost != 1 || got.SkillMean >= 25) {
			t.Fatalf("loser %d = %+v", i, got)
		}
		if got.SkillUncertainty >= 25.0/3 {
			t.Fatalf("player %d uncertainty did not shrink: %v", i, got.SkillUncertainty)
		}
		if got.LastMatchDate == nil || !got.LastMatchDate.Equal(played) {
			t.Fatalf("player %d last match = %v", i, got.LastMatchDate)
		}
	}
}

func TestCreateMatchTeam2Win(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPlayers(t, 4)

	m := env.createMatch(t, matchRequest(p, 3, 10, env.now))
	if m.Result != models.ResultTeam2Win {
		t.Fatalf("result = %s, want team2_win", m.Result)
	}
	if got := env.player(t, p[2].ID); got.EloRating != 1016 || got.MatchesWon != 1 {
		t.Fatalf("team2 player = %+v", got)
	}
}

func TestCreateMatchDefaultsDateToNow(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPlayers(t, 4)

	req := matchRequest(p, 10, 0, env.now)
	req.DatePlayed = nil
	m := env.createMatch(t, req)
	if !m.DatePlayed.Equal(env.now) {
		t.Fatalf("date played = %v, want %v", m.DatePlayed, env.now)
	}
}

func TestCreateMatchRejectsInvalidInput(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPlayers(t, 4)

	tied := matchRequest(p, 7, 7, env.now)
	dup := matchRequest(p, 10, 2, env.now)
	dup.Team2Player2ID = p[0].ID
	negative := matchRequest(p, -1, 10, env.now)
	missingID := matchRequest(p, 10, 2, env.now)
	missingID.Team1Player2ID = 0

	tests := []struct {
		name  string
		req   models.CreateMatchRequest
		field string
		is    error
	}{
		{"tied scores", tied, "team2_score", ErrTiedScores},
		{"duplicate players", dup, "players", ErrDuplicatePlayers},
		{"negative score", negative, "team1_score", nil},
		{"missing player id", missingID, "team1_player2_id", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.matches.CreateMatch(context.Background(), tt.req)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if ve.Field != tt.field {
				t.Fatalf("field = %q, want %q", ve.Field, tt.field)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Fatalf("error = %v, want %v", err, tt.is)
			}
		})
	}

	if n := env.countMatches(t); n != 0 {
		t.Fatalf("%d matches stored after rejected requests", n)
	}
}

func TestCreateMatchUnknownPlayerChangesNothing(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPlayers(t, 4)

	req := matchRequest(p, 10, 2, env.now)
	req.Team2Player2ID = 999
	_, err := env.matches.CreateMatch(context.Background(), req)
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("error = %v, want ErrPlayerNotFound", err)
	}

	if n := env.countMatches(t); n != 0 {
		t.Fatalf("%d matches stored", n)
	}
	for i := 0; i < 3; i++ {
		if got := env.player(t, p[i].ID); got.EloRating != 1000 || got.MatchesPlayed != 0 {
			t.Fatalf("player %d changed: %+v", i, got)
		}
	}
}

func TestCreateMatchIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPlayers(t, 4)

	key := uuid.New()
	req := matchRequest(p, 10, 5, env.now)
	req.IdempotencyKey = &key

	first := env.createMatch(t, req)
	second := env.createMatch(t, req)

	if first.ID != second.ID {
		t.Fatalf("retry created match %d, want %d", second.ID, first.ID)
	}
	if first.IdempotencyKey != key {
		t.Fatalf("stored key = %s, want %s", first.IdempotencyKey, key)
	}
	if n := env.countMatches(t); n != 1 {
		t.Fatalf("%d matches stored, want 1", n)
	}
	if got := env.player(t, p[0].ID); got.EloRating != 1016 || got.MatchesPlayed != 1 {
		t.Fatalf("retry changed ratings: %+v", got)
	}
}

func TestCreateMatchGeneratesDistinctKeys(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPlayers(t, 4)

	a := env.createMatch(t, matchRequest(p, 10, 5, env.now))
	b := env.createMatch(t, matchRequest(p, 10, 5, env.now))
	if a.ID == b.ID || a.IdempotencyKey == b.IdempotencyKey {
		t.Fatalf("requests without a key were merged")
	}
}

func TestCreateMatchIntoArchivedPeriod(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPlayers(t, 4)
	env.createMatch(t, matchRequest(p, 10, 5, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))

	if _, err := env.archives.ArchivePeriod(context.Background(), 2024); err != nil {
		t.Fatalf("archive: %v", err)
	}

	_, err := env.matches.CreateMatch(context.Background(), matchRequest(p, 10, 5, time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)))
	if !errors.Is(err, ErrPeriodArchived) {
		t.Fatalf("error = %v, want ErrPeriodArchived", err)
	}
}

func TestSequentialMatchesUseCurrentRatings(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPlayers(t, 4)
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	env.createMatch(t, matchRequest(p, 10, 5, day))
	second := env.createMatch(t, matchRequest(p, 10, 5, day.Add(time.Hour)))

	snaps := second.Snapshots()
	if snaps[0].Elo != 1016 || snaps[2].Elo != 984 {
		t.Fatalf("second match snapshots = %+v", snaps)
	}
	first := env.player(t, p[0].ID)
	if second.Team1Player1EloBefore+second.EloChange != first.EloRating {
		t.Fatalf("snapshot %d + change %d != live %d", second.Team1Player1EloBefore, second.EloChange, first.EloRating)
	}
}

func TestGetMatchDetail(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPlayers(t, 4)
	m := env.createMatch(t, matchRequest(p, 10, 5, env.now))

	detail, err := env.matches.GetMatchDetail(m.ID)
	if err != nil {
		t.Fatalf("GetMatchDetail: %v", err)
	}
	if math.Abs(detail.Odds.Team1WinProbability-0.5) > 1e-12 {
		t.Fatalf("team1 probability = %v, want 0.5", detail.Odds.Team1WinProbability)
	}
	if detail.Odds.AlternativeChange != 16 || detail.Odds.AlternativeWinner != models.ResultTeam2Win {
		t.Fatalf("alternative = %+v", detail.Odds)
	}

	if _, err := env.matches.GetMatchDetail(9999); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("missing match error = %v", err)
	}
}

func TestGetMatchesFilters(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPlayers(t, 5)
	others := []models.Player{p[4], p[1], p[2], p[3]}

	env.createMatch(t, matchRequest(p, 10, 5, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)))
	env.createMatch(t, matchRequest(p, 10, 5, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)))
	env.createMatch(t, matchRequest(others, 10, 5, time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)))

	playerID := p[0].ID
	page, err := env.matches.GetMatches(MatchFilters{PlayerID: &playerID, Page: 1, PerPage: 1})
	if err != nil {
		t.Fatalf("GetMatches: %v", err)
	}
	if page.Total != 2 || page.TotalPages != 2 || len(page.Data) != 1 {
		t.Fatalf("page = total %d pages %d len %d", page.Total, page.TotalPages, len(page.Data))
	}
	if !page.Data[0].DatePlayed.Equal(time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("first page is not the newest match: %v", page.Data[0].DatePlayed)
	}

	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	page, err = env.matches.GetMatches(MatchFilters{DateFrom: &from, DateTo: &to, Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("GetMatches: %v", err)
	}
	if page.Total != 1 {
		t.Fatalf("date filtered total = %d, want 1", page.Total)
	}

	recent, err := env.matches.GetRecentMatches(2)
	if err != nil {
		t.Fatalf("GetRecentMatches: %v", err)
	}
	if len(recent) != 2 || recent[0].Team1Player1ID != p[4].ID {
		t.Fatalf("recent matches not newest first")
	}
}
