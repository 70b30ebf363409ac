package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"zip-league-api/packages/core/models"
	"zip-league-api/packages/core/rating"
	"zip-league-api/packages/core/store"
)

type RecomputeService struct {
	repo  store.Repository
	skill *rating.SkillEngine
	guard *PeriodGuard
	now   func() time.Time
}

func NewRecomputeService(repo store.Repository, skill *rating.SkillEngine, guard *PeriodGuard) *RecomputeService {
	return &RecomputeService{
		repo:  repo,
		skill: skill,
		guard: guard,
		now:   time.Now,
	}
}

type RecomputeResult struct {
	Period           int `json:"period"`
	MatchesProcessed int `json:"matches_processed"`
	PlayersReset     int `json:"players_reset"`
}

// CurrentPeriod is the period of the present instant.
func (s *RecomputeService) CurrentPeriod() int {
	return models.PeriodOf(s.now())
}

// checkReplayable rejects periods whose replay would not describe the live
// ratings: archived periods, past periods, and any period while matches are
// tagged with a later one.
func (s *RecomputeService) checkReplayable(tx store.Repository, period int) error {
	archived, err := tx.IsArchived(period)
	if err != nil {
		return err
	}
	if archived {
		return fmt.Errorf("%w: %d", ErrPeriodArchived, period)
	}

	if current := s.CurrentPeriod(); period != current {
		return fmt.Errorf("%w: %d (current period is %d)", ErrNotCurrentPeriod, period, current)
	}

	later, err := tx.CountMatchesAfter(period)
	if err != nil {
		return err
	}
	if later > 0 {
		return fmt.Errorf("%w: %d matches are tagged with a period after %d", ErrNotCurrentPeriod, later, period)
	}
	return nil
}

// Recompute resets every player and replays the period's matches in
// (date_played, id) order, rewriting match snapshots and the live ratings.
// Everything happens in one transaction; on error nothing is changed.
func (s *RecomputeService) Recompute(ctx context.Context, period int) (*RecomputeResult, error) {
	release := s.guard.Exclusive()
	defer release()

	result := &RecomputeResult{Period: period}
	err := s.repo.WithTransaction(ctx, func(tx store.Repository) error {
		if err := tx.AcquireRatingsLock(true); err != nil {
			return err
		}

		if err := s.checkReplayable(tx, period); err != nil {
			return err
		}

		players, err := tx.AllPlayersForUpdate()
		if err != nil {
			return err
		}
		matches, err := tx.MatchesForPeriod(period)
		if err != nil {
			return err
		}

		rp := newReplay(players, s.skill)
		for i := range matches {
			if err := ctx.Err(); err != nil {
				return err
			}
			m := &matches[i]
			if err := rp.apply(m, tx.UpdateReplayColumns); err != nil {
				return fmt.Errorf("replay match %d: %w", m.ID, err)
			}
		}

		if err := tx.SavePlayers(rp.players); err != nil {
			return err
		}

		result.MatchesProcessed = len(matches)
		result.PlayersReset = len(players)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Recomputed period %d: %d matches, %d players reset",
		period, result.MatchesProcessed, result.PlayersReset)
	return result, nil
}

// Verify replays the period in memory and reports every stored value that
// differs from the replay. Nothing is written.
func (s *RecomputeService) Verify(ctx context.Context, period int) (*VerifyReport, error) {
	release := s.guard.Shared()
	defer release()

	report := &VerifyReport{Period: period, CheckedAt: s.now().UTC()}
	err := s.repo.WithTransaction(ctx, func(tx store.Repository) error {
		if err := tx.AcquireRatingsLock(false); err != nil {
			return err
		}

		if err := s.checkReplayable(tx, period); err != nil {
			return err
		}

		players, err := tx.AllPlayers()
		if err != nil {
			return err
		}
		matches, err := tx.MatchesForPeriod(period)
		if err != nil {
			return err
		}

		rp := newReplay(players, s.skill)
		for i := range matches {
			stored := matches[i]
			replayed := stored
			if err := rp.apply(&replayed, nil); err != nil {
				return fmt.Errorf("replay match %d: %w", stored.ID, err)
			}
			report.Drifts = append(report.Drifts, compareMatch(&stored, &replayed)...)
		}

		for i := range players {
			report.Drifts = append(report.Drifts, comparePlayer(&players[i], rp.byID[players[i].ID])...)
		}

		report.MatchesChecked = len(matches)
		report.PlayersChecked = len(players)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}
