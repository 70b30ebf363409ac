package rating

import "zip-league-api/packages/core/models"

// Odds rebuilds the pre-match view of a stored match from its snapshots,
// including the elo change the match would have produced with the other
// outcome.
func Odds(m *models.Match) models.MatchOdds {
	snaps := m.Snapshots()
	var elos [4]int
	for i, s := range snaps {
		elos[i] = s.Elo
	}

	team1Avg := CalculateTeamAverageElo(elos[0], elos[1])
	team2Avg := CalculateTeamAverageElo(elos[2], elos[3])
	expected := ExpectedScore(team1Avg, team2Avg)

	alt := CalculateEloUpdate(elos, !m.Team1Won())
	altWinner := models.ResultTeam1Win
	if m.Team1Won() {
		altWinner = models.ResultTeam2Win
	}

	return models.MatchOdds{
		Team1AverageElo:     team1Avg,
		Team2AverageElo:     team2Avg,
		Team1WinProbability: expected,
		Team2WinProbability: 1 - expected,
		AlternativeWinner:   altWinner,
		AlternativeChange:   alt.Change,
	}
}
