package models

import (
	"time"
)

// HistoryPoint is one step of a player's rating progression. History is not
// stored: it is rebuilt from the before-match snapshots of consecutive
// matches, the last point using the live player row.
type HistoryPoint struct {
	Date             time.Time `json:"date"`
	MatchID          *uint     `json:"match_id"`
	Won              *bool     `json:"won"`
	IsStartingPoint  bool      `json:"is_starting_point"`
	EloRating        int       `json:"elo_rating"`
	SkillMean        float64   `json:"skill_mean"`
	SkillUncertainty float64   `json:"skill_uncertainty"`
}

// MatchRatingChange is the change a single match caused for one player.
type MatchRatingChange struct {
	MatchID         uint      `json:"match_id"`
	DatePlayed      time.Time `json:"date_played"`
	Won             bool      `json:"won"`
	EloBefore       int       `json:"elo_before"`
	EloAfter        int       `json:"elo_after"`
	SkillScoreDelta float64   `json:"skill_score_change"`
}

type PlayerHistory struct {
	PlayerID uint                `json:"player_id"`
	Period   int                 `json:"period"`
	Points   []HistoryPoint      `json:"points"`
	Changes  []MatchRatingChange `json:"changes"`
}

// EloChange is one player's ELO movement in one match, as listed in the
// recent changes feed.
type EloChange struct {
	PlayerID   uint      `json:"player_id"`
	PlayerName string    `json:"player_name"`
	MatchID    uint      `json:"match_id"`
	DatePlayed time.Time `json:"date_played"`
	Won        bool      `json:"won"`
	EloBefore  int       `json:"elo_before"`
	EloAfter   int       `json:"elo_after"`
	EloChange  int       `json:"elo_change"`
}
