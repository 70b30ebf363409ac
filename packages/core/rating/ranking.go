package rating

import (
	"fmt"
	"sort"
	"time"

	"zip-league-api/packages/core/models"
)

type RankingKey string

const (
	RankByElo           RankingKey = "elo"
	RankBySkillScore    RankingKey = "skill_score"
	RankByWinPercentage RankingKey = "win_percentage"
)

type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// RankingConfig carries what a ranking needs to compute read-time values.
type RankingConfig struct {
	Skill SkillConfig
	Decay DecayConfig
}

func DefaultRankingConfig() RankingConfig {
	return RankingConfig{Skill: DefaultSkillConfig(), Decay: DefaultDecayConfig()}
}

// one comparator value per key; anything else is rejected by ParseRankingKey
var rankingValues = map[RankingKey]func(models.PlayerRanking) float64{
	RankByElo:           func(r models.PlayerRanking) float64 { return float64(r.EloRating) },
	RankBySkillScore:    func(r models.PlayerRanking) float64 { return r.SkillScore },
	RankByWinPercentage: func(r models.PlayerRanking) float64 { return r.WinPercentage },
}

func ParseRankingKey(s string) (RankingKey, error) {
	if s == "" {
		return RankByElo, nil
	}
	key := RankingKey(s)
	if _, ok := rankingValues[key]; !ok {
		return "", fmt.Errorf("unknown ranking key %q", s)
	}
	return key, nil
}

func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case "", Descending:
		return Descending, nil
	case Ascending:
		return Ascending, nil
	}
	return "", fmt.Errorf("unknown sort direction %q", s)
}

// Evaluate computes the read-time values of a player at the given instant.
func Evaluate(p models.Player, now time.Time, cfg RankingConfig) models.PlayerRanking {
	eff := cfg.Decay.EffectiveUncertainty(p.SkillUncertainty, cfg.Skill.Uncertainty, p.LastMatchDate, now)
	return models.PlayerRanking{
		Player:                    p,
		EffectiveSkillUncertainty: eff,
		SkillScore:                ConservativeScore(p.SkillMean, eff),
		WinPercentage:             p.WinPercentage(),
	}
}

// RankPlayers orders players by the given key. Equal values keep ascending id
// order so that the result is deterministic. Ranks start at 1.
func RankPlayers(players []models.Player, key RankingKey, order Order, now time.Time, cfg RankingConfig) []models.PlayerRanking {
	value, ok := rankingValues[key]
	if !ok {
		value = rankingValues[RankByElo]
	}

	ranked := make([]models.PlayerRanking, len(players))
	for i, p := range players {
		ranked[i] = Evaluate(p, now, cfg)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := value(ranked[i]), value(ranked[j])
		if a != b {
			if order == Ascending {
				return a < b
			}
			return a > b
		}
		return ranked[i].ID < ranked[j].ID
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
