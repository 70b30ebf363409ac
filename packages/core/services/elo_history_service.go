package services

import (
	"zip-league-api/packages/core/models"

	"gorm.io/gorm"
)

type EloHistoryService struct {
	db *gorm.DB
}

func NewEloHistoryService(db *gorm.DB) *EloHistoryService {
	return &EloHistoryService{
		db: db,
	}
}

// GetRecentEloChanges lists the latest per-player ELO changes, newest match
// first. Changes are read from match snapshots; nothing else stores them.
func (s *EloHistoryService) GetRecentEloChanges(limit int) ([]models.EloChange, error) {
	var matches []models.Match

	// four changes per match
	result := s.db.Order("date_played DESC, id DESC").
		Limit((limit + 3) / 4).
		Preload("Team1Player1").
		Preload("Team1Player2").
		Preload("Team2Player1").
		Preload("Team2Player2").
		Find(&matches)

	if result.Error != nil {
		return nil, result.Error
	}

	changes := make([]models.EloChange, 0, limit)
	for i := range matches {
		m := &matches[i]
		snaps := m.Snapshots()
		players := [4]*models.Player{m.Team1Player1, m.Team1Player2, m.Team2Player1, m.Team2Player2}
		for slot, id := range m.PlayerIDs() {
			if len(changes) == limit {
				return changes, nil
			}
			delta := m.EloChange
			if !m.WonBy(slot) {
				delta = -delta
			}
			change := models.EloChange{
				PlayerID:   id,
				MatchID:    m.ID,
				DatePlayed: m.DatePlayed,
				Won:        m.WonBy(slot),
				EloBefore:  snaps[slot].Elo,
				EloAfter:   snaps[slot].Elo + delta,
				EloChange:  delta,
			}
			if players[slot] != nil {
				change.PlayerName = players[slot].Name
			}
			changes = append(changes, change)
		}
	}

	return changes, nil
}
