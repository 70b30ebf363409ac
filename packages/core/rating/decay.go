package rating

import (
	"math"
	"time"
)

// DecayConfig describes how stored uncertainty relaxes toward the prior
// while a player is inactive. Decay is only ever applied at read time.
type DecayConfig struct {
	GraceDays   int     // inactivity shorter than this leaves uncertainty untouched
	DailyFactor float64 // weight kept by the stored value per day of decay
}

func DefaultDecayConfig() DecayConfig {
	return DecayConfig{GraceDays: 7, DailyFactor: 0.99}
}

// DaysInactive counts whole days since the last match.
func DaysInactive(lastMatch, now time.Time) int {
	d := now.Sub(lastMatch)
	if d < 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}

// EffectiveUncertainty blends the stored uncertainty with the prior
// uncertainty according to inactivity. A nil lastMatch means the player never
// played and keeps the stored value.
func (c DecayConfig) EffectiveUncertainty(stored, prior float64, lastMatch *time.Time, now time.Time) float64 {
	if lastMatch == nil {
		return stored
	}
	days := DaysInactive(*lastMatch, now)
	if days < c.GraceDays {
		return stored
	}
	factor := math.Pow(c.DailyFactor, float64(days-c.GraceDays+1))
	return stored*factor + prior*(1-factor)
}
