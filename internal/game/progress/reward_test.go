package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manus-games/shadowcity/internal/game/catalog"
	"github.com/manus-games/shadowcity/internal/game/clock"
	"github.com/manus-games/shadowcity/internal/game/player"
)

// stubSource scripts the draws a test consumes. Missing floats default
// to 0.99 (no weather change, neutral risk) and missing ints to 0.
type stubSource struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *stubSource) Float64() float64 {
	if s.fi >= len(s.floats) {
		return 0.99
	}
	v := s.floats[s.fi]
	s.fi++
	return v
}

func (s *stubSource) Intn(n int) int {
	if s.ii >= len(s.ints) {
		return 0
	}
	v := s.ints[s.ii] % n
	s.ii++
	return v
}

func deliveryJob() *catalog.JobDef {
	return &catalog.JobDef{
		ID:              "delivery",
		Name:            "Package Delivery",
		Reward:          catalog.RewardSpec{Money: catalog.MoneyRange{Lo: 20, Hi: 40}, XP: 5, Reputation: 1},
		DurationMinutes: 30,
		EnergyCost:      15,
		Risk:            catalog.RiskLow,
		TimeBonus:       map[string]float64{"morning": 1.2},
	}
}

func TestComputeRewardBaseCase(t *testing.T) {
	// Base roll fixed at 30 (Intn(21) = 10), morning multiplier 1.2, no
	// skills, neutral weather: floor(30 * 1.2) = 36.
	src := &stubSource{ints: []int{10}}
	r := ComputeReward(deliveryJob(), freshPlayer(), clock.PeriodMorning, clock.WeatherCloudy, src)
	assert.Equal(t, 36, r.Money)
	assert.Equal(t, 5, r.XP)
	assert.Equal(t, 1, r.Reputation)
	assert.Equal(t, 0, r.ShadowCoins)
}

func TestComputeRewardTimeMultiplierDefaultsToOne(t *testing.T) {
	src := &stubSource{ints: []int{10}}
	r := ComputeReward(deliveryJob(), freshPlayer(), clock.PeriodNight, clock.WeatherCloudy, src)
	assert.Equal(t, 30, r.Money)
}

func TestComputeRewardSkillMultiplierSumsAdditively(t *testing.T) {
	job := deliveryJob()
	job.Skills = []string{"speed", "charisma"}
	p := freshPlayer()
	p.Skills["speed"] = 3    // +2 above base: +0.30
	p.Skills["charisma"] = 2 // +1 above base: +0.15

	// floor(30 * 1.0 * 1.45) = 43.
	src := &stubSource{ints: []int{10}}
	r := ComputeReward(job, p, clock.PeriodNight, clock.WeatherCloudy, src)
	assert.Equal(t, 43, r.Money)
}

func TestComputeRewardSkillAtBaseContributesNothing(t *testing.T) {
	job := deliveryJob()
	job.Skills = []string{"speed"}
	src := &stubSource{ints: []int{10}}
	r := ComputeReward(job, freshPlayer(), clock.PeriodNight, clock.WeatherCloudy, src)
	assert.Equal(t, 30, r.Money)
}

func TestComputeRewardCountsEquippedGear(t *testing.T) {
	job := deliveryJob()
	job.Skills = []string{"speed"}
	p := freshPlayer()
	require.NoError(t, p.AddItem(player.InventoryItem{ID: "bicycle", Type: catalog.ItemTool, Effects: map[string]float64{"speed": 1}}))
	require.NoError(t, p.Equip("bicycle"))

	// Effective speed 2: floor(30 * 1.15) = 34.
	src := &stubSource{ints: []int{10}}
	r := ComputeReward(job, p, clock.PeriodNight, clock.WeatherCloudy, src)
	assert.Equal(t, 34, r.Money)
}

func TestComputeRewardWeatherRules(t *testing.T) {
	tests := []struct {
		name    string
		skills  []string
		weather clock.Weather
		want    int
	}{
		{"rain penalizes stamina jobs", []string{"stamina"}, clock.WeatherRainy, 24},
		{"sun boosts charisma jobs", []string{"charisma"}, clock.WeatherSunny, 33},
		{"rain ignores non-stamina jobs", []string{"charisma"}, clock.WeatherRainy, 30},
		{"sun ignores non-charisma jobs", []string{"stamina"}, clock.WeatherSunny, 30},
		{"cloudy is always neutral", []string{"stamina", "charisma"}, clock.WeatherCloudy, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := deliveryJob()
			job.Skills = tt.skills
			src := &stubSource{ints: []int{10}}
			r := ComputeReward(job, freshPlayer(), clock.PeriodNight, tt.weather, src)
			assert.Equal(t, tt.want, r.Money)
		})
	}
}

func TestComputeRewardDrawsWithinRange(t *testing.T) {
	job := deliveryJob()
	src := &stubSource{ints: []int{0}}
	assert.Equal(t, 20, ComputeReward(job, freshPlayer(), clock.PeriodNight, clock.WeatherCloudy, src).Money)
	src = &stubSource{ints: []int{20}}
	assert.Equal(t, 40, ComputeReward(job, freshPlayer(), clock.PeriodNight, clock.WeatherCloudy, src).Money)
}
