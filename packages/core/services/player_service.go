package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"zip-league-api/packages/core/models"
	"zip-league-api/packages/core/rating"
	"zip-league-api/packages/core/store"

	"gorm.io/gorm"
)

type PlayerService struct {
	db      *gorm.DB
	repo    store.Repository
	skill   *rating.SkillEngine
	ranking rating.RankingConfig
	now     func() time.Time
}

func NewPlayerService(db *gorm.DB, repo store.Repository, skill *rating.SkillEngine, decay rating.DecayConfig) *PlayerService {
	return &PlayerService{
		db:      db,
		repo:    repo,
		skill:   skill,
		ranking: rating.RankingConfig{Skill: skill.Config(), Decay: decay},
		now:     time.Now,
	}
}

func (s *PlayerService) CreatePlayer(ctx context.Context, req models.CreatePlayerRequest) (*models.Player, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	prior := s.skill.DefaultBelief()
	player := &models.Player{
		Name:             req.Name,
		Email:            req.Email,
		EloRating:        models.DefaultEloRating,
		SkillMean:        prior.Mean,
		SkillUncertainty: prior.Uncertainty,
	}

	err := s.repo.WithTransaction(ctx, func(tx store.Repository) error {
		taken, err := tx.EmailExists(req.Email)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateEmail
		}
		return tx.CreatePlayer(player)
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return player, nil
}

func (s *PlayerService) GetPlayerByID(id uint) (*models.Player, error) {
	var player models.Player

	result := s.db.First(&player, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, result.Error
	}

	return &player, nil
}

// GetPlayerRanking returns one player with its read-time values and its rank
// by the given key.
func (s *PlayerService) GetPlayerRanking(id uint, key rating.RankingKey) (*models.PlayerRanking, error) {
	if _, err := s.GetPlayerByID(id); err != nil {
		return nil, err
	}
	ranked, err := s.Rankings(key, rating.Descending)
	if err != nil {
		return nil, err
	}
	for i := range ranked {
		if ranked[i].ID == id {
			return &ranked[i], nil
		}
	}
	return nil, ErrPlayerNotFound
}

// Rankings orders every player by key. Decay is applied against the current
// instant, so the result is never cached.
func (s *PlayerService) Rankings(key rating.RankingKey, order rating.Order) ([]models.PlayerRanking, error) {
	var players []models.Player
	if err := s.db.Order("id ASC").Find(&players).Error; err != nil {
		return nil, err
	}
	return rating.RankPlayers(players, key, order, s.now(), s.ranking), nil
}

func (s *PlayerService) GetRankingsPage(key rating.RankingKey, order rating.Order, page, pageSize int) (*models.PaginatedPlayersResponse, error) {
	ranked, err := s.Rankings(key, order)
	if err != nil {
		return nil, err
	}

	total := int64(len(ranked))
	start := (page - 1) * pageSize
	if start > len(ranked) {
		start = len(ranked)
	}
	end := start + pageSize
	if end > len(ranked) {
		end = len(ranked)
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PaginatedPlayersResponse{
		Data:       ranked[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// GetHistory rebuilds a player's rating progression over a period from the
// before-match snapshots. The state after each match is derived from that
// match's snapshots with the rating engines, so past periods work as well.
func (s *PlayerService) GetHistory(playerID uint, period int) (*models.PlayerHistory, error) {
	player, err := s.GetPlayerByID(playerID)
	if err != nil {
		return nil, err
	}

	var matches []models.Match
	err = s.db.Where("period = ?", period).
		Where("team1_player1_id = ? OR team1_player2_id = ? OR team2_player1_id = ? OR team2_player2_id = ?",
			playerID, playerID, playerID, playerID).
		Order("date_played ASC, id ASC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	models.SortForReplay(matches)

	history := &models.PlayerHistory{
		PlayerID: playerID,
		Period:   period,
		Points:   []models.HistoryPoint{},
		Changes:  []models.MatchRatingChange{},
	}

	if len(matches) == 0 {
		history.Points = append(history.Points, models.HistoryPoint{
			Date:             s.now().UTC(),
			IsStartingPoint:  true,
			EloRating:        player.EloRating,
			SkillMean:        player.SkillMean,
			SkillUncertainty: player.SkillUncertainty,
		})
		return history, nil
	}

	first := matches[0]
	start := first.Snapshots()[first.Slot(playerID)]
	history.Points = append(history.Points, models.HistoryPoint{
		Date:             first.DatePlayed,
		IsStartingPoint:  true,
		EloRating:        start.Elo,
		SkillMean:        start.SkillMean,
		SkillUncertainty: start.SkillUncertainty,
	})

	for i := range matches {
		m := &matches[i]
		slot := m.Slot(playerID)
		before := m.Snapshots()[slot]
		after := s.afterMatch(m, slot)
		won := m.WonBy(slot)
		matchID := m.ID

		history.Points = append(history.Points, models.HistoryPoint{
			Date:             m.DatePlayed,
			MatchID:          &matchID,
			Won:              &won,
			EloRating:        after.Elo,
			SkillMean:        after.SkillMean,
			SkillUncertainty: after.SkillUncertainty,
		})
		history.Changes = append(history.Changes, models.MatchRatingChange{
			MatchID:    m.ID,
			DatePlayed: m.DatePlayed,
			Won:        won,
			EloBefore:  before.Elo,
			EloAfter:   after.Elo,
			SkillScoreDelta: rating.ConservativeScore(after.SkillMean, after.SkillUncertainty) -
				rating.ConservativeScore(before.SkillMean, before.SkillUncertainty),
		})
	}

	return history, nil
}

// afterMatch computes a slot's rating state right after the match.
func (s *PlayerService) afterMatch(m *models.Match, slot int) models.RatingSnapshot {
	snaps := m.Snapshots()
	var elos [4]int
	var beliefs [4]rating.Belief
	for i, sn := range snaps {
		elos[i] = sn.Elo
		beliefs[i] = rating.Belief{Mean: sn.SkillMean, Uncertainty: sn.SkillUncertainty}
	}
	deltas := rating.CalculateEloUpdate(elos, m.Team1Won()).Deltas()
	posterior := s.skill.Rate(beliefs, m.Team1Won())
	return models.RatingSnapshot{
		Elo:              snaps[slot].Elo + deltas[slot],
		SkillMean:        posterior[slot].Mean,
		SkillUncertainty: posterior[slot].Uncertainty,
	}
}

func (s *PlayerService) CurrentPeriod() int {
	return models.PeriodOf(s.now())
}
