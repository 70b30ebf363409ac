package models

import (
	"time"

	"gorm.io/datatypes"
)

// Keys written into PeriodArchive.Statistics by the archive engine.
const (
	StatTotalMatches       = "total_matches"
	StatMatchesByDay       = "matches_by_day"
	StatMatchesByMonth     = "matches_by_month"
	StatMostMatchesInDay   = "most_matches_in_day"
	StatPlayerPartnerships = "player_partnerships"
)

type PeriodArchive struct {
	ID           uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Period       int               `gorm:"uniqueIndex;not null" json:"period"`
	ArchivedAt   time.Time         `gorm:"not null" json:"archived_at"`
	TotalMatches int               `gorm:"not null;default:0" json:"total_matches"`
	TotalPlayers int               `gorm:"not null;default:0" json:"total_players"`
	Statistics   datatypes.JSONMap `json:"statistics"`

	PlayerSnapshots []ArchivedPlayerSnapshot `gorm:"foreignKey:ArchiveID" json:"player_snapshots,omitempty"`
}

func (PeriodArchive) TableName() string {
	return "period_archives"
}

// ArchivedPlayerSnapshot freezes one player's end-of-period state.
type ArchivedPlayerSnapshot struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ArchiveID        uint      `gorm:"not null;uniqueIndex:idx_archive_player,priority:1" json:"archive_id"`
	PlayerID         uint      `gorm:"not null;uniqueIndex:idx_archive_player,priority:2" json:"player_id"`
	PlayerName       string    `gorm:"size:100;not null" json:"player_name"`
	PlayerEmail      string    `gorm:"size:255;not null" json:"player_email"`
	EloRating        int       `gorm:"not null" json:"elo_rating"`
	SkillMean        float64   `gorm:"not null" json:"skill_mean"`
	SkillUncertainty float64   `gorm:"not null" json:"skill_uncertainty"`
	MatchesPlayed    int       `gorm:"not null" json:"matches_played"`
	MatchesWon       int       `gorm:"not null" json:"matches_won"`
	MatchesLost      int       `gorm:"not null" json:"matches_lost"`
	CreatedAt        time.Time `json:"created_at"`
}

func (ArchivedPlayerSnapshot) TableName() string {
	return "archived_player_snapshots"
}

// SkillScore is the conservative score frozen at archive time. Archived
// uncertainty is not decayed.
func (s *ArchivedPlayerSnapshot) SkillScore() float64 {
	return s.SkillMean - 3*s.SkillUncertainty
}

type ArchivePeriodRequest struct {
	Period int `json:"period" binding:"required"`
}
