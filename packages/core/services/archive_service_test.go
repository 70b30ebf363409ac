package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"zip-league-api/packages/core/models"
)

func TestArchivePeriod(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPlayers(t, 5)
	ctx := context.Background()

	env.createMatch(t, matchRequest(p, 10, 5, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))
	env.createMatch(t, matchRequest(p, 10, 8, time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC)))
	// tagged with a future period, picked up by the current one
	env.createMatch(t, matchRequest(p, 4, 10, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)))

	frozen := *env.player(t, p[0].ID)

	archive, err := env.archives.ArchivePeriod(ctx, 2024)
	if err != nil {
		t.Fatalf("ArchivePeriod: %v", err)
	}
	if archive.TotalMatches != 2 || archive.TotalPlayers != 4 || len(archive.PlayerSnapshots) != 4 {
		t.Fatalf("archive = matches %d players %d snapshots %d",
			archive.TotalMatches, archive.TotalPlayers, len(archive.PlayerSnapshots))
	}
	if !archive.ArchivedAt.Equal(env.now) {
		t.Fatalf("archived at %v, want %v", archive.ArchivedAt, env.now)
	}
	if archive.Statistics[models.StatTotalMatches] != 2 {
		t.Fatalf("statistics = %v", archive.Statistics)
	}

	for _, s := range archive.PlayerSnapshots {
		if s.PlayerID == p[4].ID {
			t.Fatalf("idle player was archived")
		}
		if s.PlayerID == p[0].ID && (s.EloRating != frozen.EloRating || s.SkillMean != frozen.SkillMean || s.MatchesPlayed != frozen.MatchesPlayed) {
			t.Fatalf("snapshot %+v does not match live ratings %+v", s, frozen)
		}
	}

	for i := range p {
		got := env.player(t, p[i].ID)
		if got.EloRating != 1000 || got.SkillMean != 25 || got.SkillUncertainty != 25.0/3 ||
			got.MatchesPlayed != 0 || got.LastMatchDate != nil {
			t.Fatalf("player %d not reset: %+v", i, got)
		}
	}

	moved, err := env.repo.MatchesForPeriod(2025)
	if err != nil {
		t.Fatalf("MatchesForPeriod: %v", err)
	}
	if len(moved) != 1 {
		t.Fatalf("%d matches in the current period, want 1", len(moved))
	}
}

func TestArchivePeriodRules(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPlayers(t, 4)
	ctx := context.Background()
	env.createMatch(t, matchRequest(p, 10, 5, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))
	env.createMatch(t, matchRequest(p, 6, 10, time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)))
	players, matches := env.allPlayers(t), env.allMatches(t)

	if _, err := env.archives.ArchivePeriod(ctx, 2025); !errors.Is(err, ErrCurrentPeriod) {
		t.Fatalf("current period error = %v", err)
	}
	if _, err := env.archives.ArchivePeriod(ctx, 2030); !errors.Is(err, ErrCurrentPeriod) {
		t.Fatalf("future period error = %v", err)
	}
	assertSameRatings(t, players, env.allPlayers(t))
	assertSameMatches(t, matches, env.allMatches(t))
	if n := env.countArchives(t); n != 0 {
		t.Fatalf("%d archives after rejected requests", n)
	}

	if _, err := env.archives.ArchivePeriod(ctx, 2024); err != nil {
		t.Fatalf("ArchivePeriod: %v", err)
	}
	// ratings earned after the reset must survive a rejected second archive
	env.createMatch(t, matchRequest(p, 10, 1, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)))
	players, matches = env.allPlayers(t), env.allMatches(t)

	if _, err := env.archives.ArchivePeriod(ctx, 2024); !errors.Is(err, ErrAlreadyArchived) {
		t.Fatalf("second archive error = %v", err)
	}
	assertSameRatings(t, players, env.allPlayers(t))
	assertSameMatches(t, matches, env.allMatches(t))
	if n := env.countArchives(t); n != 1 {
		t.Fatalf("%d archives, want 1", n)
	}
}

func TestArchiveEmptyPeriod(t *testing.T) {
	env := newTestEnv(t)
	env.createPlayers(t, 2)

	archive, err := env.archives.ArchivePeriod(context.Background(), 2023)
	if err != nil {
		t.Fatalf("ArchivePeriod: %v", err)
	}
	if archive.TotalMatches != 0 || archive.TotalPlayers != 0 {
		t.Fatalf("empty archive = %+v", archive)
	}
}

func TestGetArchiveOrdersBySkillScore(t *testing.T) {
	env := newTestEnv(t)
	p := env.createPlayers(t, 4)
	ctx := context.Background()
	env.createMatch(t, matchRequest(p, 10, 5, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))
	if _, err := env.archives.ArchivePeriod(ctx, 2024); err != nil {
		t.Fatalf("ArchivePeriod: %v", err)
	}

	archive, err := env.archives.GetArchive(2024)
	if err != nil {
		t.Fatalf("GetArchive: %v", err)
	}
	snaps := archive.PlayerSnapshots
	if len(snaps) != 4 {
		t.Fatalf("got %d snapshots", len(snaps))
	}
	for i := 1; i < len(snaps); i++ {
		if snaps[i-1].SkillScore() < snaps[i].SkillScore() {
			t.Fatalf("snapshots not ordered by skill score")
		}
	}
	// winners share a score, ties keep player id order
	if snaps[0].PlayerID != p[0].ID || snaps[1].PlayerID != p[1].ID {
		t.Fatalf("winners first: got %d, %d", snaps[0].PlayerID, snaps[1].PlayerID)
	}

	if _, err := env.archives.GetArchive(2023); !errors.Is(err, ErrArchiveNotFound) {
		t.Fatalf("missing archive error = %v", err)
	}

	all, err := env.archives.GetArchives()
	if err != nil || len(all) != 1 || all[0].Period != 2024 {
		t.Fatalf("GetArchives = %v, %v", all, err)
	}
}

func TestPeriodStatistics(t *testing.T) {
	day := func(d, h int) time.Time { return time.Date(2024, 1, d, h, 0, 0, 0, time.UTC) }
	matches := []models.Match{
		{Team1Player1ID: 1, Team1Player2ID: 2, Team2Player1ID: 3, Team2Player2ID: 4, DatePlayed: day(2, 10)},
		{Team1Player1ID: 2, Team1Player2ID: 1, Team2Player1ID: 4, Team2Player2ID: 5, DatePlayed: day(2, 11)},
		{Team1Player1ID: 3, Team1Player2ID: 4, Team2Player1ID: 1, Team2Player2ID: 5, DatePlayed: day(5, 9)},
		{Team1Player1ID: 1, Team1Player2ID: 3, Team2Player1ID: 2, Team2Player2ID: 4, DatePlayed: day(5, 12)},
		{Team1Player1ID: 1, Team1Player2ID: 2, Team2Player1ID: 3, Team2Player2ID: 4, DatePlayed: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	stats := periodStatistics(matches)

	if stats[models.StatTotalMatches] != 5 {
		t.Fatalf("total = %v", stats[models.StatTotalMatches])
	}

	byDay := stats[models.StatMatchesByDay].(map[string]int)
	if byDay["2024-01-02"] != 2 || byDay["2024-01-05"] != 2 || byDay["2024-02-01"] != 1 {
		t.Fatalf("by day = %v", byDay)
	}

	byMonth := stats[models.StatMatchesByMonth].(map[string]int)
	if byMonth["2024-01"] != 4 || byMonth["2024-02"] != 1 {
		t.Fatalf("by month = %v", byMonth)
	}

	busiest := stats[models.StatMostMatchesInDay].(map[string]interface{})
	if busiest["date"] != "2024-01-02" || busiest["count"] != 2 {
		t.Fatalf("busiest day = %v, want the earlier of the tied days", busiest)
	}

	pairs := stats[models.StatPlayerPartnerships].(map[string]int)
	if pairs["1-2"] != 3 || pairs["3-4"] != 3 || pairs["4-5"] != 1 || pairs["1-5"] != 1 {
		t.Fatalf("partnerships = %v", pairs)
	}
}

func TestPeriodStatisticsEmpty(t *testing.T) {
	stats := periodStatistics(nil)
	busiest := stats[models.StatMostMatchesInDay].(map[string]interface{})
	if busiest["date"] != nil || busiest["count"] != 0 {
		t.Fatalf("busiest day of empty period = %v", busiest)
	}
}
