package rating

import "math"

// SkillConfig holds the constants of the Bayesian skill model. It is fixed
// when the engine is built; nothing reads it from package state.
type SkillConfig struct {
	Mean        float64 // prior mean of a new player
	Uncertainty float64 // prior standard deviation of a new player
	Beta        float64 // performance noise per player
	Tau         float64 // dynamics added before every match
	// DrawProbability only shapes the draw margin. Ties cannot be recorded,
	// but the value is kept so recomputed history matches stored history.
	DrawProbability float64
}

func DefaultSkillConfig() SkillConfig {
	return SkillConfig{
		Mean:            25.0,
		Uncertainty:     25.0 / 3,
		Beta:            4.16,
		Tau:             0.0833,
		DrawProbability: 0.1,
	}
}

// Belief is a Gaussian belief over a player's skill.
type Belief struct {
	Mean        float64 `json:"mean"`
	Uncertainty float64 `json:"uncertainty"`
}

// ConservativeScore is the value used for skill rankings.
func ConservativeScore(mean, uncertainty float64) float64 {
	return mean - 3*uncertainty
}

// SkillEngine rates 2v2 matches.
type SkillEngine struct {
	cfg SkillConfig
}

func NewSkillEngine(cfg SkillConfig) *SkillEngine {
	return &SkillEngine{cfg: cfg}
}

func (e *SkillEngine) Config() SkillConfig {
	return e.cfg
}

// DefaultBelief is the belief of a player who never played.
func (e *SkillEngine) DefaultBelief() Belief {
	return Belief{Mean: e.cfg.Mean, Uncertainty: e.cfg.Uncertainty}
}

// drawMargin for a match with the given number of players.
func (e *SkillEngine) drawMargin(size int) float64 {
	return ppf((e.cfg.DrawProbability+1)/2.0) * math.Sqrt(float64(size)) * e.cfg.Beta
}

// Rate returns the posterior beliefs, in slot order, after a match between
// team 1 (slots 0-1) and team 2 (slots 2-3).
//
// For two teams the factor graph has a single comparison factor, so message
// passing converges after one sweep and reduces to the closed form below.
func (e *SkillEngine) Rate(before [4]Belief, team1Won bool) [4]Belief {
	var variance [4]float64
	sumVariance := 0.0
	for i, b := range before {
		variance[i] = b.Uncertainty*b.Uncertainty + e.cfg.Tau*e.cfg.Tau
		sumVariance += variance[i]
	}

	c2 := sumVariance + float64(len(before))*e.cfg.Beta*e.cfg.Beta
	c := math.Sqrt(c2)

	team1Mean := before[0].Mean + before[1].Mean
	team2Mean := before[2].Mean + before[3].Mean
	winnerMean, loserMean := team1Mean, team2Mean
	if !team1Won {
		winnerMean, loserMean = team2Mean, team1Mean
	}

	t := (winnerMean - loserMean) / c
	eps := e.drawMargin(len(before)) / c
	v := vWin(t, eps)
	w := wWin(t, eps)

	var after [4]Belief
	for i, b := range before {
		sign := 1.0
		if (i < 2) != team1Won {
			sign = -1.0
		}
		// tau is added before the update, so an expected result can end
		// above the pre-match value; a played match never raises it
		uncertainty := math.Sqrt(variance[i] * (1 - variance[i]/c2*w))
		if uncertainty > b.Uncertainty {
			uncertainty = b.Uncertainty
		}
		after[i] = Belief{
			Mean:        b.Mean + sign*variance[i]/c*v,
			Uncertainty: uncertainty,
		}
	}
	return after
}
