package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/manus-games/shadowcity/internal/game/catalog"
	"github.com/manus-games/shadowcity/internal/game/player"
)

var testSkills = []string{"speed", "stamina", "charisma", "persuasion"}

func freshPlayer() *player.Player {
	return player.New("Nia", player.BackgroundStudent, testSkills, "downtown")
}

func TestCheckRequirementsEmptySpecAlwaysAllows(t *testing.T) {
	r := CheckRequirements(freshPlayer(), catalog.Requirements{})
	assert.True(t, r.Allowed)
	assert.Empty(t, r.Reason)
}

func TestCheckRequirementsDimensions(t *testing.T) {
	p := freshPlayer()
	p.Level = 5
	p.Reputation = 100
	p.Money = 1000
	p.Skills["speed"] = 3

	tests := []struct {
		name    string
		req     catalog.Requirements
		allowed bool
		reason  string
	}{
		{"level met", catalog.Requirements{Level: 5}, true, ""},
		{"level unmet", catalog.Requirements{Level: 6}, false, "requires level 6"},
		{"reputation unmet", catalog.Requirements{Reputation: 150}, false, "requires 150 reputation"},
		{"money unmet", catalog.Requirements{Money: 5000}, false, "requires $5000"},
		{"skill met", catalog.Requirements{Skills: map[string]float64{"speed": 3}}, true, ""},
		{"skill unmet", catalog.Requirements{Skills: map[string]float64{"speed": 4}}, false, "requires speed level 4"},
		{"all met", catalog.Requirements{Level: 2, Reputation: 50, Money: 500, Skills: map[string]float64{"speed": 2}}, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CheckRequirements(p, tt.req)
			assert.Equal(t, tt.allowed, r.Allowed)
			assert.Equal(t, tt.reason, r.Reason)
		})
	}
}

func TestCheckRequirementsFirstFailureWins(t *testing.T) {
	p := freshPlayer() // level 1, reputation 0
	req := catalog.Requirements{Level: 10, Reputation: 300}
	r := CheckRequirements(p, req)
	require.False(t, r.Allowed)
	assert.Equal(t, "requires level 10", r.Reason)
}

func TestCheckRequirementsUsesEffectiveSkill(t *testing.T) {
	p := freshPlayer()
	require.NoError(t, p.AddItem(player.InventoryItem{ID: "bicycle", Type: catalog.ItemTool, Effects: map[string]float64{"speed": 1}}))

	req := catalog.Requirements{Skills: map[string]float64{"speed": 2}}
	assert.False(t, CheckRequirements(p, req).Allowed)

	require.NoError(t, p.Equip("bicycle"))
	assert.True(t, CheckRequirements(p, req).Allowed)
}

func TestCheckJobEnergyIsCheckedLast(t *testing.T) {
	p := freshPlayer()
	p.Energy = 5
	job := &catalog.JobDef{ID: "night_shift", Requirements: catalog.Requirements{Level: 3}, EnergyCost: 20}

	r := CheckJob(p, job)
	require.False(t, r.Allowed)
	assert.Equal(t, "requires level 3", r.Reason)

	p.Level = 3
	r = CheckJob(p, job)
	require.False(t, r.Allowed)
	assert.Equal(t, "not enough energy (need 20)", r.Reason)

	p.Energy = 20
	assert.True(t, CheckJob(p, job).Allowed)
}

func TestCheckJobHasNoSideEffects(t *testing.T) {
	p := freshPlayer()
	before := *p
	CheckJob(p, &catalog.JobDef{ID: "j", EnergyCost: 200})
	assert.Equal(t, before.Energy, p.Energy)
	assert.Equal(t, before.Money, p.Money)
}

// Gate monotonicity: a player that dominates another component-wise is
// allowed everywhere the weaker player is.
func TestCheckRequirementsMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		req := catalog.Requirements{
			Level:      rapid.IntRange(0, 20).Draw(t, "reqLevel"),
			Reputation: rapid.IntRange(0, 500).Draw(t, "reqRep"),
			Money:      rapid.IntRange(0, 10000).Draw(t, "reqMoney"),
			Skills:     map[string]float64{"speed": float64(rapid.IntRange(0, 10).Draw(t, "reqSpeed"))},
		}

		weak := freshPlayer()
		weak.Level = rapid.IntRange(1, 20).Draw(t, "level")
		weak.Reputation = rapid.IntRange(0, 500).Draw(t, "rep")
		weak.Money = rapid.IntRange(0, 10000).Draw(t, "money")
		weak.Skills["speed"] = float64(rapid.IntRange(1, 10).Draw(t, "speed"))

		strong := freshPlayer()
		strong.Level = weak.Level + rapid.IntRange(0, 5).Draw(t, "dLevel")
		strong.Reputation = weak.Reputation + rapid.IntRange(0, 100).Draw(t, "dRep")
		strong.Money = weak.Money + rapid.IntRange(0, 1000).Draw(t, "dMoney")
		strong.Skills["speed"] = weak.Skills["speed"] + float64(rapid.IntRange(0, 3).Draw(t, "dSpeed"))

		if CheckRequirements(weak, req).Allowed && !CheckRequirements(strong, req).Allowed {
			t.Fatalf("gate not monotonic: weaker player allowed, stronger denied")
		}
	})
}
