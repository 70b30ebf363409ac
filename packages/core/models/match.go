package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

type MatchResult string

const (
	ResultTeam1Win MatchResult = "team1_win"
	ResultTeam2Win MatchResult = "team2_win"
)

// MatchState tracks how far a match went through rating application.
// Only committed matches are ever stored.
type MatchState string

const (
	StateUnvalidated MatchState = "unvalidated"
	StateValidated   MatchState = "validated"
	StateSnapshotted MatchState = "snapshotted"
	StateRated       MatchState = "rated"
	StateCommitted   MatchState = "committed"
)

// RatingSnapshot is the rating state of one player right before a match.
// Skill values are raw, never decayed.
type RatingSnapshot struct {
	Elo              int     `json:"elo"`
	SkillMean        float64 `json:"skill_mean"`
	SkillUncertainty float64 `json:"skill_uncertainty"`
}

type Match struct {
	ID             uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	IdempotencyKey uuid.UUID   `gorm:"type:uuid;uniqueIndex;not null" json:"idempotency_key"`
	Team1Player1ID uint        `gorm:"not null;index" json:"team1_player1_id"`
	Team1Player2ID uint        `gorm:"not null;index" json:"team1_player2_id"`
	Team2Player1ID uint        `gorm:"not null;index" json:"team2_player1_id"`
	Team2Player2ID uint        `gorm:"not null;index" json:"team2_player2_id"`
	Team1Score     int         `gorm:"not null" json:"team1_score"`
	Team2Score     int         `gorm:"not null" json:"team2_score"`
	DatePlayed     time.Time   `gorm:"not null;index" json:"date_played"`
	Period         int         `gorm:"not null;index" json:"period"`
	Result         MatchResult `gorm:"size:10;not null" json:"result"`
	EloChange      int         `gorm:"not null;default:0" json:"elo_change"`
	State          MatchState  `gorm:"size:20;not null;default:committed" json:"state"`

	Team1Player1EloBefore              int     `gorm:"not null;default:0" json:"team1_player1_elo_before"`
	Team1Player2EloBefore              int     `gorm:"not null;default:0" json:"team1_player2_elo_before"`
	Team2Player1EloBefore              int     `gorm:"not null;default:0" json:"team2_player1_elo_before"`
	Team2Player2EloBefore              int     `gorm:"not null;default:0" json:"team2_player2_elo_before"`
	Team1Player1SkillMeanBefore        float64 `gorm:"not null" json:"team1_player1_skill_mean_before"`
	Team1Player1SkillUncertaintyBefore float64 `gorm:"not null" json:"team1_player1_skill_uncertainty_before"`
	Team1Player2SkillMeanBefore        float64 `gorm:"not null" json:"team1_player2_skill_mean_before"`
	Team1Player2SkillUncertaintyBefore float64 `gorm:"not null" json:"team1_player2_skill_uncertainty_before"`
	Team2Player1SkillMeanBefore        float64 `gorm:"not null" json:"team2_player1_skill_mean_before"`
	Team2Player1SkillUncertaintyBefore float64 `gorm:"not null" json:"team2_player1_skill_uncertainty_before"`
	Team2Player2SkillMeanBefore        float64 `gorm:"not null" json:"team2_player2_skill_mean_before"`
	Team2Player2SkillUncertaintyBefore float64 `gorm:"not null" json:"team2_player2_skill_uncertainty_before"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Team1Player1 *Player `gorm:"foreignKey:Team1Player1ID;references:ID" json:"team1_player1,omitempty"`
	Team1Player2 *Player `gorm:"foreignKey:Team1Player2ID;references:ID" json:"team1_player2,omitempty"`
	Team2Player1 *Player `gorm:"foreignKey:Team2Player1ID;references:ID" json:"team2_player1,omitempty"`
	Team2Player2 *Player `gorm:"foreignKey:Team2Player2ID;references:ID" json:"team2_player2,omitempty"`
}

func (Match) TableName() string {
	return "matches"
}

// PeriodOf returns the administrative period a match date belongs to.
func PeriodOf(t time.Time) int {
	return t.UTC().Year()
}

// ResultFromScores derives the result; ok is false for a tie.
func ResultFromScores(team1Score, team2Score int) (MatchResult, bool) {
	switch {
	case team1Score > team2Score:
		return ResultTeam1Win, true
	case team2Score > team1Score:
		return ResultTeam2Win, true
	}
	return "", false
}

func (m *Match) Team1Won() bool {
	return m.Result == ResultTeam1Win
}

// PlayerIDs returns the participants in slot order:
// team1 player1, team1 player2, team2 player1, team2 player2.
func (m *Match) PlayerIDs() [4]uint {
	return [4]uint{m.Team1Player1ID, m.Team1Player2ID, m.Team2Player1ID, m.Team2Player2ID}
}

// Slot returns the slot index of a player in the match, or -1.
func (m *Match) Slot(playerID uint) int {
	for i, id := range m.PlayerIDs() {
		if id == playerID {
			return i
		}
	}
	return -1
}

// WonBy reports whether the player in the given slot was on the winning team.
func (m *Match) WonBy(slot int) bool {
	if slot < 2 {
		return m.Team1Won()
	}
	return !m.Team1Won()
}

// Snapshots returns the before-match snapshots in slot order.
func (m *Match) Snapshots() [4]RatingSnapshot {
	return [4]RatingSnapshot{
		{Elo: m.Team1Player1EloBefore, SkillMean: m.Team1Player1SkillMeanBefore, SkillUncertainty: m.Team1Player1SkillUncertaintyBefore},
		{Elo: m.Team1Player2EloBefore, SkillMean: m.Team1Player2SkillMeanBefore, SkillUncertainty: m.Team1Player2SkillUncertaintyBefore},
		{Elo: m.Team2Player1EloBefore, SkillMean: m.Team2Player1SkillMeanBefore, SkillUncertainty: m.Team2Player1SkillUncertaintyBefore},
		{Elo: m.Team2Player2EloBefore, SkillMean: m.Team2Player2SkillMeanBefore, SkillUncertainty: m.Team2Player2SkillUncertaintyBefore},
	}
}

// SetSnapshots writes the before-match snapshots in slot order.
func (m *Match) SetSnapshots(s [4]RatingSnapshot) {
	m.Team1Player1EloBefore = s[0].Elo
	m.Team1Player1SkillMeanBefore = s[0].SkillMean
	m.Team1Player1SkillUncertaintyBefore = s[0].SkillUncertainty
	m.Team1Player2EloBefore = s[1].Elo
	m.Team1Player2SkillMeanBefore = s[1].SkillMean
	m.Team1Player2SkillUncertaintyBefore = s[1].SkillUncertainty
	m.Team2Player1EloBefore = s[2].Elo
	m.Team2Player1SkillMeanBefore = s[2].SkillMean
	m.Team2Player1SkillUncertaintyBefore = s[2].SkillUncertainty
	m.Team2Player2EloBefore = s[3].Elo
	m.Team2Player2SkillMeanBefore = s[3].SkillMean
	m.Team2Player2SkillUncertaintyBefore = s[3].SkillUncertainty
}

// SnapshotOf captures a player's current raw rating state.
func SnapshotOf(p *Player) RatingSnapshot {
	return RatingSnapshot{
		Elo:              p.EloRating,
		SkillMean:        p.SkillMean,
		SkillUncertainty: p.SkillUncertainty,
	}
}

// SortForReplay orders matches by date played, then id.
func SortForReplay(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if !a.DatePlayed.Equal(b.DatePlayed) {
			return a.DatePlayed.Before(b.DatePlayed)
		}
		return a.ID < b.ID
	})
}

// ReplayColumns are the match columns a recompute is allowed to rewrite.
var ReplayColumns = []string{
	"result", "elo_change",
	"team1_player1_elo_before", "team1_player2_elo_before",
	"team2_player1_elo_before", "team2_player2_elo_before",
	"team1_player1_skill_mean_before", "team1_player1_skill_uncertainty_before",
	"team1_player2_skill_mean_before", "team1_player2_skill_uncertainty_before",
	"team2_player1_skill_mean_before", "team2_player1_skill_uncertainty_before",
	"team2_player2_skill_mean_before", "team2_player2_skill_uncertainty_before",
}

type CreateMatchRequest struct {
	Team1Player1ID uint       `json:"team1_player1_id" binding:"required" validate:"required"`
	Team1Player2ID uint       `json:"team1_player2_id" binding:"required" validate:"required"`
	Team2Player1ID uint       `json:"team2_player1_id" binding:"required" validate:"required"`
	Team2Player2ID uint       `json:"team2_player2_id" binding:"required" validate:"required"`
	Team1Score     int        `json:"team1_score" validate:"min=0"`
	Team2Score     int        `json:"team2_score" validate:"min=0"`
	DatePlayed     *time.Time `json:"date_played,omitempty"`
	IdempotencyKey *uuid.UUID `json:"idempotency_key,omitempty"`
}

// MatchOdds is the pre-match view of a match, computed from its snapshots.
type MatchOdds struct {
	Team1AverageElo     float64     `json:"team1_avg_elo"`
	Team2AverageElo     float64     `json:"team2_avg_elo"`
	Team1WinProbability float64     `json:"team1_win_probability"`
	Team2WinProbability float64     `json:"team2_win_probability"`
	AlternativeWinner   MatchResult `json:"alt_winner"`
	AlternativeChange   int         `json:"alt_elo_change"`
}

type MatchDetail struct {
	Match Match     `json:"match"`
	Odds  MatchOdds `json:"odds"`
}

type PaginatedMatchResponse struct {
	Data       []Match `json:"data"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
	TotalPages int     `json:"totalPages"`
}
