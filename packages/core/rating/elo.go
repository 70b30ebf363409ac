package rating

import "math"

// KFactor is the fixed ELO adjustment step.
const KFactor = 32.0

// EloUpdate is the outcome of one 2v2 match for the ELO model.
type EloUpdate struct {
	Expected   float64 // expected score of team 1
	Change     int     // magnitude stored on the match
	Team1Delta int
	Team2Delta int
}

// CalculateTeamAverageElo calculates the average ELO of a team
func CalculateTeamAverageElo(player1Elo, player2Elo int) float64 {
	return float64(player1Elo+player2Elo) / 2.0
}

// ExpectedScore is the logistic expectation of team A against team B.
func ExpectedScore(teamAAvg, teamBAvg float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (teamBAvg-teamAAvg)/400))
}

// CalculateEloUpdate computes the zero-sum update for a match from the
// pre-match ratings in slot order. Rounding is half-to-even so that
// recomputed history matches ratings stored by earlier versions.
func CalculateEloUpdate(before [4]int, team1Won bool) EloUpdate {
	team1Avg := CalculateTeamAverageElo(before[0], before[1])
	team2Avg := CalculateTeamAverageElo(before[2], before[3])
	expected := ExpectedScore(team1Avg, team2Avg)

	actual := 0.0
	if team1Won {
		actual = 1.0
	}

	delta := int(math.RoundToEven(KFactor * (actual - expected)))
	change := delta
	if change < 0 {
		change = -change
	}

	team1Delta := change
	if !team1Won {
		team1Delta = -change
	}

	return EloUpdate{
		Expected:   expected,
		Change:     change,
		Team1Delta: team1Delta,
		Team2Delta: -team1Delta,
	}
}

// Deltas spreads the update over the four slots.
func (u EloUpdate) Deltas() [4]int {
	return [4]int{u.Team1Delta, u.Team1Delta, u.Team2Delta, u.Team2Delta}
}
