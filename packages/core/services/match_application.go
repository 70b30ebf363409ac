package services

import (
	"errors"
	"fmt"
	"time"

	"zip-league-api/packages/core/models"
	"zip-league-api/packages/core/rating"
)

// matchApplication walks one match through
// unvalidated -> validated -> snapshotted -> rated -> committed.
// It is used for new matches and, against replay state, by recompute.
type matchApplication struct {
	state   models.MatchState
	match   *models.Match
	players [4]*models.Player
	skill   *rating.SkillEngine
}

func newMatchApplication(match *models.Match, skill *rating.SkillEngine) *matchApplication {
	match.State = models.StateUnvalidated
	return &matchApplication{
		state: models.StateUnvalidated,
		match: match,
		skill: skill,
	}
}

func (a *matchApplication) advance(from, to models.MatchState) error {
	if a.state != from {
		return fmt.Errorf("%w: %s -> %s while %s", ErrInvalidTransition, from, to, a.state)
	}
	a.state = to
	a.match.State = to
	return nil
}

// validateMatchShape checks everything that does not need the database.
func validateMatchShape(m *models.Match) error {
	ids := m.PlayerIDs()
	fields := [4]string{"team1_player1_id", "team1_player2_id", "team2_player1_id", "team2_player2_id"}
	for i, id := range ids {
		if id == 0 {
			return invalid(fields[i], errors.New("is required"))
		}
	}
	if m.Team1Score < 0 {
		return invalid("team1_score", errors.New("must not be negative"))
	}
	if m.Team2Score < 0 {
		return invalid("team2_score", errors.New("must not be negative"))
	}
	if _, ok := models.ResultFromScores(m.Team1Score, m.Team2Score); !ok {
		return invalid("team2_score", ErrTiedScores)
	}

	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return invalid("players", ErrDuplicatePlayers)
		}
		seen[id] = true
	}
	return nil
}

// Validate checks the match and binds its four participants from players.
// The result is always derived from the scores.
func (a *matchApplication) Validate(players map[uint]*models.Player) error {
	if err := validateMatchShape(a.match); err != nil {
		return err
	}
	for i, id := range a.match.PlayerIDs() {
		p, ok := players[id]
		if !ok {
			return fmt.Errorf("%w: %d", ErrPlayerNotFound, id)
		}
		a.players[i] = p
	}
	a.match.Result, _ = models.ResultFromScores(a.match.Team1Score, a.match.Team2Score)
	return a.advance(models.StateUnvalidated, models.StateValidated)
}

// Snapshot records the participants' current raw ratings onto the match.
func (a *matchApplication) Snapshot() error {
	if err := a.advance(models.StateValidated, models.StateSnapshotted); err != nil {
		return err
	}
	var snaps [4]models.RatingSnapshot
	for i, p := range a.players {
		snaps[i] = models.SnapshotOf(p)
	}
	a.match.SetSnapshots(snaps)
	return nil
}

// Rate runs both engines on the snapshot values and updates the bound
// players in place.
func (a *matchApplication) Rate() error {
	if err := a.advance(models.StateSnapshotted, models.StateRated); err != nil {
		return err
	}

	snaps := a.match.Snapshots()
	team1Won := a.match.Team1Won()

	var elos [4]int
	var beliefs [4]rating.Belief
	for i, s := range snaps {
		elos[i] = s.Elo
		beliefs[i] = rating.Belief{Mean: s.SkillMean, Uncertainty: s.SkillUncertainty}
	}

	elo := rating.CalculateEloUpdate(elos, team1Won)
	deltas := elo.Deltas()
	posterior := a.skill.Rate(beliefs, team1Won)

	played := a.match.DatePlayed
	for i, p := range a.players {
		p.EloRating = snaps[i].Elo + deltas[i]
		p.SkillMean = posterior[i].Mean
		p.SkillUncertainty = posterior[i].Uncertainty
		p.MatchesPlayed++
		if a.match.WonBy(i) {
			p.MatchesWon++
		} else {
			p.MatchesLost++
		}
		last := played
		p.LastMatchDate = &last
	}
	a.match.EloChange = elo.Change
	return nil
}

// Commit persists the rated match through persist and marks it committed.
// Nothing is marked when persist fails.
func (a *matchApplication) Commit(persist func(*models.Match, []models.Player) error) error {
	if a.state != models.StateRated {
		return fmt.Errorf("%w: commit while %s", ErrInvalidTransition, a.state)
	}
	a.match.State = models.StateCommitted
	players := make([]models.Player, len(a.players))
	for i, p := range a.players {
		players[i] = *p
	}
	if err := persist(a.match, players); err != nil {
		a.match.State = models.StateRated
		return err
	}
	a.state = models.StateCommitted
	return nil
}

// applyMatch runs the full application on a match against players.
func applyMatch(match *models.Match, players map[uint]*models.Player, skill *rating.SkillEngine, persist func(*models.Match, []models.Player) error) error {
	app := newMatchApplication(match, skill)
	if err := app.Validate(players); err != nil {
		return err
	}
	if err := app.Snapshot(); err != nil {
		return err
	}
	if err := app.Rate(); err != nil {
		return err
	}
	return app.Commit(persist)
}

func normalizeDate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
