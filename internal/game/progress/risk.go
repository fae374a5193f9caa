package progress

import (
	"fmt"
	"math"

	"github.com/manus-games/shadowcity/internal/game/catalog"
	"github.com/manus-games/shadowcity/internal/game/rng"
)

// RiskOutcome classifies how a job resolution went.
type RiskOutcome string

const (
	RiskNeutral RiskOutcome = "neutral"
	RiskFailed  RiskOutcome = "failed"
	RiskBonus   RiskOutcome = "bonus"
)

// RiskEvent is the result of one risk resolution: the outcome kind and,
// for non-neutral outcomes, a flavor message for presentation.
type RiskEvent struct {
	Outcome RiskOutcome `json:"outcome"`
	Message string      `json:"message,omitempty"`
}

// riskThresholds maps each tier to its fail and bonus cut points on a
// single uniform draw r in [0,1): r below fail is a failure, r above
// bonus is a windfall, anything between is neutral.
var riskThresholds = map[catalog.RiskLevel]struct{ fail, bonus float64 }{
	catalog.RiskLow:    {fail: 0.05, bonus: 0.95},
	catalog.RiskMedium: {fail: 0.15, bonus: 0.85},
	catalog.RiskHigh:   {fail: 0.25, bonus: 0.80},
}

var failMessages = map[catalog.RiskLevel][]string{
	catalog.RiskLow: {
		"A small mix-up cost you part of the payment.",
	},
	catalog.RiskMedium: {
		"The job dragged on and the pay came up short.",
	},
	catalog.RiskHigh: {
		"The cops showed up and you barely got away with a fraction of the take.",
		"A rival crew muscled in and walked off with most of the cut.",
		"The client vanished without paying the full fee.",
		"Things went sideways fast; you salvaged what you could.",
	},
}

var bonusMessages = map[catalog.RiskLevel][]string{
	catalog.RiskLow: {
		"A generous tip sweetened the deal.",
	},
	catalog.RiskMedium: {
		"A satisfied customer rounded your pay up.",
	},
	catalog.RiskHigh: {
		"The client was impressed and slipped you a fat tip.",
		"You stumbled on an unexpected windfall on the way out.",
		"Word of your work spread; someone paid extra for discretion.",
		"Everything clicked and the payout came in well above the going rate.",
	},
}

// ResolveRisk draws one uniform value and classifies the outcome for the
// tier. Fail and bonus outcomes pick a flavor message uniformly from the
// tier's message set; neutral outcomes carry no message.
//
// Precondition: level must be a valid risk level.
func ResolveRisk(level catalog.RiskLevel, src rng.Source) RiskEvent {
	t, ok := riskThresholds[level]
	if !ok {
		panic(fmt.Sprintf("progress: ResolveRisk called with invalid risk level %q", level))
	}
	r := src.Float64()
	switch {
	case r < t.fail:
		msgs := failMessages[level]
		return RiskEvent{Outcome: RiskFailed, Message: msgs[src.Intn(len(msgs))]}
	case r > t.bonus:
		msgs := bonusMessages[level]
		return RiskEvent{Outcome: RiskBonus, Message: msgs[src.Intn(len(msgs))]}
	default:
		return RiskEvent{Outcome: RiskNeutral}
	}
}

// Risk scaling factors applied to a pre-risk reward.
const (
	failMoneyScale  = 0.3
	failXPScale     = 0.5
	failRepScale    = 0.5
	bonusMoneyScale = 1.5
	bonusXPScale    = 1.2
)

// ApplyRisk scales a pre-risk reward by the outcome. Failures scale
// money, XP, and reputation down and suppress shadow coins entirely;
// bonuses scale money and XP up and leave reputation untouched.
//
// Postcondition: Neutral outcomes return the reward unchanged.
func ApplyRisk(r Reward, ev RiskEvent) Reward {
	switch ev.Outcome {
	case RiskFailed:
		return Reward{
			Money:       int(math.Floor(float64(r.Money) * failMoneyScale)),
			XP:          int(math.Floor(float64(r.XP) * failXPScale)),
			Reputation:  int(math.Floor(float64(r.Reputation) * failRepScale)),
			ShadowCoins: 0,
		}
	case RiskBonus:
		return Reward{
			Money:       int(math.Floor(float64(r.Money) * bonusMoneyScale)),
			XP:          int(math.Floor(float64(r.XP) * bonusXPScale)),
			Reputation:  r.Reputation,
			ShadowCoins: r.ShadowCoins,
		}
	default:
		return r
	}
}
