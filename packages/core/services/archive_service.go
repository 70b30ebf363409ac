package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"zip-league-api/packages/core/models"
	"zip-league-api/packages/core/rating"
	"zip-league-api/packages/core/store"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ArchiveService struct {
	db    *gorm.DB
	repo  store.Repository
	skill *rating.SkillEngine
	guard *PeriodGuard
	now   func() time.Time
}

func NewArchiveService(db *gorm.DB, repo store.Repository, skill *rating.SkillEngine, guard *PeriodGuard) *ArchiveService {
	return &ArchiveService{
		db:    db,
		repo:  repo,
		skill: skill,
		guard: guard,
		now:   time.Now,
	}
}

// ArchivePeriod freezes a finished period: it records statistics and a
// snapshot of every player who played in it, resets all players, and moves
// matches tagged with a later, unarchived period into the current one.
func (s *ArchiveService) ArchivePeriod(ctx context.Context, period int) (*models.PeriodArchive, error) {
	now := s.now().UTC()
	current := models.PeriodOf(now)
	if period >= current {
		return nil, fmt.Errorf("%w: %d (current period is %d)", ErrCurrentPeriod, period, current)
	}

	release := s.guard.Exclusive()
	defer release()

	var archive *models.PeriodArchive
	err := s.repo.WithTransaction(ctx, func(tx store.Repository) error {
		if err := tx.AcquireRatingsLock(true); err != nil {
			return err
		}

		archived, err := tx.IsArchived(period)
		if err != nil {
			return err
		}
		if archived {
			return fmt.Errorf("%w: %d", ErrAlreadyArchived, period)
		}

		matches, err := tx.MatchesForPeriod(period)
		if err != nil {
			return err
		}
		players, err := tx.AllPlayersForUpdate()
		if err != nil {
			return err
		}

		participated := make(map[uint]bool)
		for i := range matches {
			for _, id := range matches[i].PlayerIDs() {
				participated[id] = true
			}
		}

		var snapshots []models.ArchivedPlayerSnapshot
		for i := range players {
			p := &players[i]
			if !participated[p.ID] {
				continue
			}
			snapshots = append(snapshots, models.ArchivedPlayerSnapshot{
				PlayerID:         p.ID,
				PlayerName:       p.Name,
				PlayerEmail:      p.Email,
				EloRating:        p.EloRating,
				SkillMean:        p.SkillMean,
				SkillUncertainty: p.SkillUncertainty,
				MatchesPlayed:    p.MatchesPlayed,
				MatchesWon:       p.MatchesWon,
				MatchesLost:      p.MatchesLost,
			})
		}

		archive = &models.PeriodArchive{
			Period:          period,
			ArchivedAt:      now,
			TotalMatches:    len(matches),
			TotalPlayers:    len(snapshots),
			Statistics:      periodStatistics(matches),
			PlayerSnapshots: snapshots,
		}

		prior := s.skill.DefaultBelief()
		for i := range players {
			players[i].ResetRatings(prior.Mean, prior.Uncertainty)
		}
		if err := tx.SavePlayers(players); err != nil {
			return err
		}

		skip, err := tx.ArchivedPeriods()
		if err != nil {
			return err
		}
		moved, err := tx.ReassignPeriods(period, current, skip)
		if err != nil {
			return err
		}
		if moved > 0 {
			log.Printf("Moved %d matches from periods after %d into %d", moved, period, current)
		}

		if err := tx.CreateArchive(archive); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return fmt.Errorf("%w: %d", ErrAlreadyArchived, period)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Archived period %d: %d players, %d matches", period, archive.TotalPlayers, archive.TotalMatches)
	return archive, nil
}

// periodStatistics summarizes a period's matches for its archive.
func periodStatistics(matches []models.Match) datatypes.JSONMap {
	byDay := make(map[string]int)
	byMonth := make(map[string]int)
	partnerships := make(map[string]int)
	var days []string

	for i := range matches {
		m := &matches[i]
		played := m.DatePlayed.UTC()

		day := played.Format("2006-01-02")
		if _, seen := byDay[day]; !seen {
			days = append(days, day)
		}
		byDay[day]++
		byMonth[played.Format("2006-01")]++

		partnerships[partnershipKey(m.Team1Player1ID, m.Team1Player2ID)]++
		partnerships[partnershipKey(m.Team2Player1ID, m.Team2Player2ID)]++
	}

	// earliest day wins a tie
	busiest := map[string]interface{}{"date": nil, "count": 0}
	best := 0
	for _, day := range days {
		if byDay[day] > best {
			best = byDay[day]
			busiest = map[string]interface{}{"date": day, "count": best}
		}
	}

	return datatypes.JSONMap{
		models.StatTotalMatches:       len(matches),
		models.StatMatchesByDay:       byDay,
		models.StatMatchesByMonth:     byMonth,
		models.StatMostMatchesInDay:   busiest,
		models.StatPlayerPartnerships: partnerships,
	}
}

func partnershipKey(a, b uint) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d-%d", a, b)
}

func (s *ArchiveService) GetArchives() ([]models.PeriodArchive, error) {
	var archives []models.PeriodArchive

	result := s.db.Order("period DESC").Find(&archives)
	if result.Error != nil {
		return nil, result.Error
	}

	return archives, nil
}

// GetArchive returns an archive with its player snapshots ordered by frozen
// skill score, best first.
func (s *ArchiveService) GetArchive(period int) (*models.PeriodArchive, error) {
	var archive models.PeriodArchive

	err := s.db.Preload("PlayerSnapshots").Where("period = ?", period).First(&archive).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArchiveNotFound
		}
		return nil, err
	}

	sort.SliceStable(archive.PlayerSnapshots, func(i, j int) bool {
		a, b := archive.PlayerSnapshots[i], archive.PlayerSnapshots[j]
		if a.SkillScore() != b.SkillScore() {
			return a.SkillScore() > b.SkillScore()
		}
		return a.PlayerID < b.PlayerID
	})

	return &archive, nil
}
