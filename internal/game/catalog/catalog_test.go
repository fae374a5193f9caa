package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequirementsIsZero(t *testing.T) {
	assert.True(t, Requirements{}.IsZero())
	assert.False(t, Requirements{Level: 1}.IsZero())
	assert.False(t, Requirements{Reputation: 50}.IsZero())
	assert.False(t, Requirements{Money: 5000}.IsZero())
	assert.False(t, Requirements{Skills: map[string]float64{"speed": 2}}.IsZero())
}

func TestRiskLevelValid(t *testing.T) {
	assert.True(t, RiskLow.Valid())
	assert.True(t, RiskMedium.Valid())
	assert.True(t, RiskHigh.Valid())
	assert.False(t, RiskLevel("").Valid())
	assert.False(t, RiskLevel("extreme").Valid())
}

func TestItemTypeValid(t *testing.T) {
	for _, typ := range []ItemType{ItemEquipment, ItemConsumable, ItemTool, ItemClothing} {
		assert.True(t, typ.Valid(), "%s", typ)
	}
	assert.False(t, ItemType("weapon2").Valid())
	assert.False(t, ItemType("").Valid())
}

func TestJobTimeMultiplier(t *testing.T) {
	job := &JobDef{TimeBonus: map[string]float64{"morning": 1.3, "night": 0.8}}
	assert.InDelta(t, 1.3, job.TimeMultiplier("morning"), 1e-9)
	assert.InDelta(t, 0.8, job.TimeMultiplier("night"), 1e-9)
	assert.InDelta(t, 1.0, job.TimeMultiplier("afternoon"), 1e-9)

	var bare JobDef
	assert.InDelta(t, 1.0, bare.TimeMultiplier("morning"), 1e-9)
}

func TestJobRequiresSkill(t *testing.T) {
	job := &JobDef{Skills: []string{"speed", "stamina"}}
	assert.True(t, job.RequiresSkill("speed"))
	assert.True(t, job.RequiresSkill("stamina"))
	assert.False(t, job.RequiresSkill("charisma"))
}

func TestLocationOffers(t *testing.T) {
	loc := &LocationDef{
		Jobs:  []string{"courier", "flyer_distribution"},
		Shops: []string{"kiosk"},
	}
	assert.True(t, loc.OffersJob("courier"))
	assert.False(t, loc.OffersJob("kiosk"))
	assert.True(t, loc.OffersShop("kiosk"))
	assert.False(t, loc.OffersShop("courier"))
}
