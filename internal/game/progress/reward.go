package progress

import (
	"math"

	"github.com/manus-games/shadowcity/internal/game/catalog"
	"github.com/manus-games/shadowcity/internal/game/clock"
	"github.com/manus-games/shadowcity/internal/game/player"
	"github.com/manus-games/shadowcity/internal/game/rng"
)

// skillBonusPerLevel is the payout bonus for each effective skill level
// above 1 on a job-relevant skill.
const skillBonusPerLevel = 0.15

// Weather multipliers. At most one applies to a given job because they
// key on different weather states.
const (
	rainStaminaPenalty  = 0.8
	sunnyCharismaBoost  = 1.1
	neutralWeatherMulti = 1.0
)

// Reward is a bundle of resource deltas, pre- or post-risk.
type Reward struct {
	Money       int `json:"money"`
	XP          int `json:"xp"`
	Reputation  int `json:"reputation"`
	ShadowCoins int `json:"shadow_coins"`
}

// ComputeReward rolls a job's pre-risk yield. The base money draw is the
// only random input; every multiplier is a pure function of the job, the
// player snapshot, and the current period and weather.
//
// Algorithm: uniform base roll in the job's inclusive money range, then
// money = floor(base * time * skill * weather). XP, reputation, and
// shadow coins pass through unscaled; the risk stage scales them.
func ComputeReward(job *catalog.JobDef, p *player.Player, period clock.Period, weather clock.Weather, src rng.Source) Reward {
	base := rng.IntRange(src, job.Reward.Money.Lo, job.Reward.Money.Hi)

	timeMult := job.TimeMultiplier(string(period))

	skillMult := 1.0
	for _, id := range job.Skills {
		if above := p.EffectiveSkill(id) - 1; above > 0 {
			skillMult += above * skillBonusPerLevel
		}
	}

	weatherMult := neutralWeatherMulti
	switch {
	case weather == clock.WeatherRainy && job.RequiresSkill("stamina"):
		weatherMult = rainStaminaPenalty
	case weather == clock.WeatherSunny && job.RequiresSkill("charisma"):
		weatherMult = sunnyCharismaBoost
	}

	return Reward{
		Money:       int(math.Floor(float64(base) * timeMult * skillMult * weatherMult)),
		XP:          job.Reward.XP,
		Reputation:  job.Reward.Reputation,
		ShadowCoins: job.Reward.ShadowCoins,
	}
}
