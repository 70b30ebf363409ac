package models

import (
	"time"
)

const DefaultEloRating = 1000

type Player struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Name             string     `gorm:"size:100;not null" json:"name"`
	Email            string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	EloRating        int        `gorm:"not null;default:1000" json:"elo_rating"`
	SkillMean        float64    `gorm:"not null;default:25" json:"skill_mean"`
	SkillUncertainty float64    `gorm:"not null;default:8.333333333333334" json:"skill_uncertainty"`
	MatchesPlayed    int        `gorm:"not null;default:0" json:"matches_played"`
	MatchesWon       int        `gorm:"not null;default:0" json:"matches_won"`
	MatchesLost      int        `gorm:"not null;default:0" json:"matches_lost"`
	LastMatchDate    *time.Time `json:"last_match_date"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (Player) TableName() string {
	return "players"
}

// WinPercentage returns the share of matches won, in percent.
func (p *Player) WinPercentage() float64 {
	if p.MatchesPlayed == 0 {
		return 0
	}
	return float64(p.MatchesWon) / float64(p.MatchesPlayed) * 100
}

// ResetRatings puts the player back to the state of a freshly created player.
func (p *Player) ResetRatings(mean, uncertainty float64) {
	p.EloRating = DefaultEloRating
	p.SkillMean = mean
	p.SkillUncertainty = uncertainty
	p.MatchesPlayed = 0
	p.MatchesWon = 0
	p.MatchesLost = 0
	p.LastMatchDate = nil
}

// PlayerRanking is a player as returned by ranking endpoints, with the
// read-time values that are never persisted.
type PlayerRanking struct {
	Player
	Rank                      int     `json:"rank"`
	EffectiveSkillUncertainty float64 `json:"effective_skill_uncertainty"`
	SkillScore                float64 `json:"skill_score"`
	WinPercentage             float64 `json:"win_percentage"`
}

type CreatePlayerRequest struct {
	Name  string `json:"name" binding:"required" validate:"required,max=100"`
	Email string `json:"email" binding:"required" validate:"required,email"`
}

type PaginatedPlayersResponse struct {
	Data       []PlayerRanking `json:"data"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}
