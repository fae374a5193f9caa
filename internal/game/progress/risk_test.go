package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manus-games/shadowcity/internal/game/catalog"
	"github.com/manus-games/shadowcity/internal/game/rng"
)

func TestResolveRiskThresholds(t *testing.T) {
	tests := []struct {
		tier catalog.RiskLevel
		roll float64
		want RiskOutcome
	}{
		{catalog.RiskLow, 0.04, RiskFailed},
		{catalog.RiskLow, 0.05, RiskNeutral},
		{catalog.RiskLow, 0.95, RiskNeutral},
		{catalog.RiskLow, 0.951, RiskBonus},
		{catalog.RiskMedium, 0.14, RiskFailed},
		{catalog.RiskMedium, 0.15, RiskNeutral},
		{catalog.RiskMedium, 0.85, RiskNeutral},
		{catalog.RiskMedium, 0.86, RiskBonus},
		{catalog.RiskHigh, 0.24, RiskFailed},
		{catalog.RiskHigh, 0.25, RiskNeutral},
		{catalog.RiskHigh, 0.80, RiskNeutral},
		{catalog.RiskHigh, 0.81, RiskBonus},
	}
	for _, tt := range tests {
		src := &stubSource{floats: []float64{tt.roll}}
		ev := ResolveRisk(tt.tier, src)
		assert.Equal(t, tt.want, ev.Outcome, "tier %s roll %g", tt.tier, tt.roll)
		if tt.want == RiskNeutral {
			assert.Empty(t, ev.Message)
		} else {
			assert.NotEmpty(t, ev.Message)
		}
	}
}

func TestResolveRiskPicksFromTierMessageSet(t *testing.T) {
	// High tier has four distinct messages per outcome; every index must
	// be reachable.
	seenFail := make(map[string]bool)
	seenBonus := make(map[string]bool)
	for i := 0; i < 4; i++ {
		ev := ResolveRisk(catalog.RiskHigh, &stubSource{floats: []float64{0.0}, ints: []int{i}})
		require.Equal(t, RiskFailed, ev.Outcome)
		seenFail[ev.Message] = true

		ev = ResolveRisk(catalog.RiskHigh, &stubSource{floats: []float64{0.99}, ints: []int{i}})
		require.Equal(t, RiskBonus, ev.Outcome)
		seenBonus[ev.Message] = true
	}
	assert.Len(t, seenFail, 4)
	assert.Len(t, seenBonus, 4)

	// Low and medium tiers carry one fixed message each.
	low := ResolveRisk(catalog.RiskLow, &stubSource{floats: []float64{0.0}})
	lowAgain := ResolveRisk(catalog.RiskLow, &stubSource{floats: []float64{0.0}, ints: []int{3}})
	assert.Equal(t, low.Message, lowAgain.Message)
}

func TestResolveRiskRejectsInvalidTier(t *testing.T) {
	assert.Panics(t, func() { ResolveRisk("extreme", &stubSource{}) })
}

func TestApplyRiskScaling(t *testing.T) {
	base := Reward{Money: 100, XP: 25, Reputation: 9, ShadowCoins: 3}

	neutral := ApplyRisk(base, RiskEvent{Outcome: RiskNeutral})
	assert.Equal(t, base, neutral)

	failed := ApplyRisk(base, RiskEvent{Outcome: RiskFailed})
	assert.Equal(t, Reward{Money: 30, XP: 12, Reputation: 4, ShadowCoins: 0}, failed)

	bonus := ApplyRisk(base, RiskEvent{Outcome: RiskBonus})
	assert.Equal(t, Reward{Money: 150, XP: 30, Reputation: 9, ShadowCoins: 3}, bonus)
}

func TestApplyRiskFloorsScaledValues(t *testing.T) {
	failed := ApplyRisk(Reward{Money: 5, XP: 5, Reputation: 1}, RiskEvent{Outcome: RiskFailed})
	assert.Equal(t, 1, failed.Money) // floor(1.5)
	assert.Equal(t, 2, failed.XP)    // floor(2.5)
	assert.Equal(t, 0, failed.Reputation)

	bonus := ApplyRisk(Reward{Money: 5, XP: 5}, RiskEvent{Outcome: RiskBonus})
	assert.Equal(t, 7, bonus.Money) // floor(7.5)
	assert.Equal(t, 6, bonus.XP)    // floor(6.0)
}

func TestResolveRiskHighTierDistribution(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 100k-draw distribution check in short mode")
	}
	const n = 100_000
	src := rng.NewSeededSource(0x5eed)

	counts := map[RiskOutcome]int{}
	for i := 0; i < n; i++ {
		counts[ResolveRisk(catalog.RiskHigh, src).Outcome]++
	}

	failRate := float64(counts[RiskFailed]) / n
	bonusRate := float64(counts[RiskBonus]) / n
	neutralRate := float64(counts[RiskNeutral]) / n

	assert.InDelta(t, 0.25, failRate, 0.01)
	assert.InDelta(t, 0.20, bonusRate, 0.01)
	assert.InDelta(t, 0.55, neutralRate, 0.01)
}
