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

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MatchService struct {
	db    *gorm.DB
	repo  store.Repository
	skill *rating.SkillEngine
	guard *PeriodGuard
	now   func() time.Time
}

func NewMatchService(db *gorm.DB, repo store.Repository, skill *rating.SkillEngine, guard *PeriodGuard) *MatchService {
	return &MatchService{
		db:    db,
		repo:  repo,
		skill: skill,
		guard: guard,
		now:   time.Now,
	}
}

type MatchFilters struct {
	PlayerID *uint      `json:"player_id,omitempty"`
	Period   *int       `json:"period,omitempty"`
	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`
	Page     int        `json:"page"`
	PerPage  int        `json:"per_page"`
}

// CreateMatch validates, snapshots, rates and commits a new match in one
// transaction. A request carrying the idempotency key of a committed match
// returns that match and changes nothing.
func (s *MatchService) CreateMatch(ctx context.Context, req models.CreateMatchRequest) (*models.Match, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	played := s.now()
	if req.DatePlayed != nil {
		played = *req.DatePlayed
	}
	played = normalizeDate(played)

	key := uuid.New()
	if req.IdempotencyKey != nil && *req.IdempotencyKey != uuid.Nil {
		key = *req.IdempotencyKey
	}

	match := &models.Match{
		IdempotencyKey: key,
		Team1Player1ID: req.Team1Player1ID,
		Team1Player2ID: req.Team1Player2ID,
		Team2Player1ID: req.Team2Player1ID,
		Team2Player2ID: req.Team2Player2ID,
		Team1Score:     req.Team1Score,
		Team2Score:     req.Team2Score,
		DatePlayed:     played,
		Period:         models.PeriodOf(played),
	}
	if err := validateMatchShape(match); err != nil {
		return nil, err
	}

	release := s.guard.Shared()
	defer release()

	var replayed *models.Match
	err := s.repo.WithTransaction(ctx, func(tx store.Repository) error {
		if err := tx.AcquireRatingsLock(false); err != nil {
			return err
		}

		existing, err := tx.FindMatchByKey(key)
		if err == nil {
			replayed = existing
			return nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		archived, err := tx.IsArchived(match.Period)
		if err != nil {
			return err
		}
		if archived {
			return fmt.Errorf("%w: %d", ErrPeriodArchived, match.Period)
		}

		ids := match.PlayerIDs()
		sorted := ids[:]
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		locked, err := tx.FindPlayersForUpdate(sorted)
		if err != nil {
			return err
		}
		byID := make(map[uint]*models.Player, len(locked))
		for i := range locked {
			byID[locked[i].ID] = &locked[i]
		}

		return applyMatch(match, byID, s.skill, func(m *models.Match, players []models.Player) error {
			if err := tx.SavePlayers(players); err != nil {
				return err
			}
			return tx.CreateMatch(m)
		})
	})

	if errors.Is(err, store.ErrDuplicate) {
		// lost a race with a request carrying the same key
		existing, findErr := s.repo.FindMatchByKey(key)
		if findErr != nil {
			return nil, findErr
		}
		replayed, err = existing, nil
	}
	if err != nil {
		return nil, err
	}

	id := match.ID
	if replayed != nil {
		log.Printf("Match %d replayed for idempotency key %s", replayed.ID, key)
		id = replayed.ID
	} else {
		log.Printf("Match %d committed: %s, elo change %d", match.ID, match.Result, match.EloChange)
	}

	return s.GetMatchByID(id)
}

func (s *MatchService) GetMatchByID(id uint) (*models.Match, error) {
	var match models.Match
	err := s.withPlayers(s.db).First(&match, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

// GetMatchDetail returns a match with the odds computed from its snapshots.
func (s *MatchService) GetMatchDetail(id uint) (*models.MatchDetail, error) {
	match, err := s.GetMatchByID(id)
	if err != nil {
		return nil, err
	}
	return &models.MatchDetail{
		Match: *match,
		Odds:  rating.Odds(match),
	}, nil
}

func (s *MatchService) GetRecentMatches(limit int) ([]models.Match, error) {
	var matches []models.Match

	result := s.withPlayers(s.db).
		Order("date_played DESC, id DESC").
		Limit(limit).
		Find(&matches)

	if result.Error != nil {
		return nil, result.Error
	}

	return matches, nil
}

func (s *MatchService) GetMatches(filters MatchFilters) (*models.PaginatedMatchResponse, error) {
	var matches []models.Match
	var total int64

	query := s.db.Model(&models.Match{})

	if filters.PlayerID != nil {
		id := *filters.PlayerID
		query = query.Where(
			"team1_player1_id = ? OR team1_player2_id = ? OR team2_player1_id = ? OR team2_player2_id = ?",
			id, id, id, id,
		)
	}

	if filters.Period != nil {
		query = query.Where("period = ?", *filters.Period)
	}

	if filters.DateFrom != nil {
		query = query.Where("date_played >= ?", filters.DateFrom.UTC())
	}

	if filters.DateTo != nil {
		dateTo := filters.DateTo.UTC().Add(24 * time.Hour)
		query = query.Where("date_played < ?", dateTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (filters.Page - 1) * filters.PerPage

	result := s.withPlayers(query).
		Offset(offset).
		Limit(filters.PerPage).
		Order("date_played DESC, id DESC").
		Find(&matches)

	if result.Error != nil {
		return nil, result.Error
	}

	totalPages := int((total + int64(filters.PerPage) - 1) / int64(filters.PerPage))

	return &models.PaginatedMatchResponse{
		Data:       matches,
		Total:      total,
		Page:       filters.Page,
		PageSize:   filters.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *MatchService) withPlayers(q *gorm.DB) *gorm.DB {
	return q.Preload("Team1Player1").
		Preload("Team1Player2").
		Preload("Team2Player1").
		Preload("Team2Player2")
}
