package services

import (
	"math"
	"time"

	"zip-league-api/packages/core/models"
	"zip-league-api/packages/core/rating"
)

// replay rebuilds rating state from a match log, starting from every player
// reset to the prior.
type replay struct {
	skill   *rating.SkillEngine
	players []models.Player
	byID    map[uint]*models.Player
}

func newReplay(players []models.Player, skill *rating.SkillEngine) *replay {
	prior := skill.DefaultBelief()
	r := &replay{
		skill:   skill,
		players: make([]models.Player, len(players)),
		byID:    make(map[uint]*models.Player, len(players)),
	}
	copy(r.players, players)
	for i := range r.players {
		r.players[i].ResetRatings(prior.Mean, prior.Uncertainty)
		r.byID[r.players[i].ID] = &r.players[i]
	}
	return r
}

// apply runs one match through the same application steps as a new match,
// rewriting its snapshot fields, result and elo change in place.
func (r *replay) apply(m *models.Match, persist func(*models.Match) error) error {
	return applyMatch(m, r.byID, r.skill, func(m *models.Match, _ []models.Player) error {
		if persist == nil {
			return nil
		}
		return persist(m)
	})
}

// Drift is one stored value that differs from its replayed value.
type Drift struct {
	Kind     string      `json:"kind"`
	ID       uint        `json:"id"`
	Field    string      `json:"field"`
	Stored   interface{} `json:"stored"`
	Replayed interface{} `json:"replayed"`
}

type VerifyReport struct {
	Period         int       `json:"period"`
	CheckedAt      time.Time `json:"checked_at"`
	MatchesChecked int       `json:"matches_checked"`
	PlayersChecked int       `json:"players_checked"`
	Drifts         []Drift   `json:"drifts"`
}

func (r *VerifyReport) Clean() bool {
	return len(r.Drifts) == 0
}

const driftTolerance = 1e-9

type driftCollector struct {
	kind   string
	id     uint
	drifts []Drift
}

func (c *driftCollector) int(field string, stored, replayed int) {
	if stored != replayed {
		c.drifts = append(c.drifts, Drift{Kind: c.kind, ID: c.id, Field: field, Stored: stored, Replayed: replayed})
	}
}

func (c *driftCollector) float(field string, stored, replayed float64) {
	if math.Abs(stored-replayed) > driftTolerance {
		c.drifts = append(c.drifts, Drift{Kind: c.kind, ID: c.id, Field: field, Stored: stored, Replayed: replayed})
	}
}

func (c *driftCollector) str(field, stored, replayed string) {
	if stored != replayed {
		c.drifts = append(c.drifts, Drift{Kind: c.kind, ID: c.id, Field: field, Stored: stored, Replayed: replayed})
	}
}

func (c *driftCollector) date(field string, stored, replayed *time.Time) {
	switch {
	case stored == nil && replayed == nil:
	case stored == nil || replayed == nil || !stored.Equal(*replayed):
		c.drifts = append(c.drifts, Drift{Kind: c.kind, ID: c.id, Field: field, Stored: stored, Replayed: replayed})
	}
}

func comparePlayer(stored, replayed *models.Player) []Drift {
	c := &driftCollector{kind: "player", id: stored.ID}
	c.int("elo_rating", stored.EloRating, replayed.EloRating)
	c.float("skill_mean", stored.SkillMean, replayed.SkillMean)
	c.float("skill_uncertainty", stored.SkillUncertainty, replayed.SkillUncertainty)
	c.int("matches_played", stored.MatchesPlayed, replayed.MatchesPlayed)
	c.int("matches_won", stored.MatchesWon, replayed.MatchesWon)
	c.int("matches_lost", stored.MatchesLost, replayed.MatchesLost)
	c.date("last_match_date", stored.LastMatchDate, replayed.LastMatchDate)
	return c.drifts
}

func compareMatch(stored, replayed *models.Match) []Drift {
	c := &driftCollector{kind: "match", id: stored.ID}
	c.str("result", string(stored.Result), string(replayed.Result))
	c.int("elo_change", stored.EloChange, replayed.EloChange)
	s, r := stored.Snapshots(), replayed.Snapshots()
	prefixes := [4]string{"team1_player1", "team1_player2", "team2_player1", "team2_player2"}
	for i, p := range prefixes {
		c.int(p+"_elo_before", s[i].Elo, r[i].Elo)
		c.float(p+"_skill_mean_before", s[i].SkillMean, r[i].SkillMean)
		c.float(p+"_skill_uncertainty_before", s[i].SkillUncertainty, r[i].SkillUncertainty)
	}
	return c.drifts
}
