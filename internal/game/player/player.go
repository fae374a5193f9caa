// Package player holds the mutable character state: resources, skills,
// inventory, and the invariant-preserving operations on them.
package player

import (
	"errors"
	"fmt"

	"github.com/manus-games/shadowcity/internal/game/catalog"
)

const (
	// MaxEnergy and MaxHealth bound the respective vital stats.
	MaxEnergy = 100
	MaxHealth = 100
	// InventoryCap is the maximum number of carried items.
	InventoryCap = 20
	// BaseSkillLevel is the floor every skill starts at and never drops below.
	BaseSkillLevel = 1.0
)

var (
	ErrInventoryFull  = errors.New("inventory is full")
	ErrItemNotOwned   = errors.New("item not in inventory")
	ErrItemOwned      = errors.New("item already owned")
	ErrNotEquippable  = errors.New("item cannot be equipped")
	ErrNotConsumable  = errors.New("item cannot be consumed")
	ErrUnknownSkill   = errors.New("unknown skill")
	ErrSkillMaxed     = errors.New("skill is at maximum level")
	ErrNoSkillPoints  = errors.New("not enough skill points")
	ErrNotEnoughMoney = errors.New("not enough money")
)

// InventoryItem is an owned copy of a catalog item. Effects are copied
// from the definition at purchase time so later content edits do not
// mutate existing saves.
type InventoryItem struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Type     catalog.ItemType   `json:"type"`
	Effects  map[string]float64 `json:"effects,omitempty"`
	Equipped bool               `json:"equipped"`
}

// Player is one character's full mutable state.
//
// Invariant: Energy and Health stay in [0, 100]; every skill level is
// >= BaseSkillLevel; len(Inventory) <= InventoryCap; at most one item
// per ItemType is equipped; Level >= 1 and XP < Level*100 after any
// GainXP call.
type Player struct {
	Name            string             `json:"name"`
	Background      Background         `json:"background"`
	Level           int                `json:"level"`
	XP              int                `json:"xp"`
	Money           int                `json:"money"`
	ShadowCoins     int                `json:"shadow_coins"`
	Reputation      int                `json:"reputation"`
	Energy          int                `json:"energy"`
	Health          int                `json:"health"`
	Skills          map[string]float64 `json:"skills"`
	SkillPoints     int                `json:"skill_points"`
	Inventory       []InventoryItem    `json:"inventory"`
	CurrentLocation string             `json:"current_location"`
}

// New creates a level-1 character with full vitals, background starting
// money, and every listed skill at the base level (the background's
// boosted skill at level 2).
//
// Precondition: bg must be valid; skillIDs must include the background's
// boosted skill; startLocation must be a valid location ID.
func New(name string, bg Background, skillIDs []string, startLocation string) *Player {
	if !bg.Valid() {
		panic(fmt.Sprintf("player: New called with invalid background %q", bg))
	}
	skills := make(map[string]float64, len(skillIDs))
	for _, id := range skillIDs {
		skills[id] = BaseSkillLevel
	}
	if _, ok := skills[bg.BoostedSkill()]; !ok {
		panic(fmt.Sprintf("player: skill list is missing boosted skill %q", bg.BoostedSkill()))
	}
	skills[bg.BoostedSkill()] = BaseSkillLevel + 1

	return &Player{
		Name:            name,
		Background:      bg,
		Level:           1,
		Money:           bg.StartingMoney(),
		Energy:          MaxEnergy,
		Health:          MaxHealth,
		Skills:          skills,
		CurrentLocation: startLocation,
	}
}

// XPToNextLevel returns the threshold for the next level-up.
func (p *Player) XPToNextLevel() int {
	return p.Level * 100
}

// GainXP adds xp and applies every level-up it triggers, carrying
// surplus XP across levels. Each level grants one skill point.
//
// Precondition: xp >= 0.
// Postcondition: Returns the number of levels gained; XP < Level*100.
func (p *Player) GainXP(xp int) int {
	if xp < 0 {
		panic("player: GainXP called with negative xp")
	}
	p.XP += xp
	levels := 0
	for p.XP >= p.XPToNextLevel() {
		p.XP -= p.XPToNextLevel()
		p.Level++
		p.SkillPoints++
		levels++
	}
	return levels
}

// AddEnergy adjusts energy by delta, clamping to [0, MaxEnergy].
func (p *Player) AddEnergy(delta int) {
	p.Energy = clamp(p.Energy+delta, 0, MaxEnergy)
}

// AddHealth adjusts health by delta, clamping to [0, MaxHealth].
func (p *Player) AddHealth(delta int) {
	p.Health = clamp(p.Health+delta, 0, MaxHealth)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SpendMoney deducts amount if affordable.
//
// Precondition: amount >= 0.
// Postcondition: On success money decreases by exactly amount; on
// ErrNotEnoughMoney nothing changes.
func (p *Player) SpendMoney(amount int) error {
	if amount < 0 {
		panic("player: SpendMoney called with negative amount")
	}
	if p.Money < amount {
		return ErrNotEnoughMoney
	}
	p.Money -= amount
	return nil
}

// Skill returns the base (unequipped) level of a skill.
//
// Postcondition: Returns BaseSkillLevel for unknown skill IDs.
func (p *Player) Skill(id string) float64 {
	if lvl, ok := p.Skills[id]; ok {
		return lvl
	}
	return BaseSkillLevel
}

// EffectiveSkill returns the base skill level plus additive bonuses
// from every equipped item.
func (p *Player) EffectiveSkill(id string) float64 {
	lvl := p.Skill(id)
	for _, it := range p.Inventory {
		if it.Equipped {
			lvl += it.Effects[id]
		}
	}
	return lvl
}

// AddSkillProgress adds a fractional amount to a skill, used for the
// organic practice drift after working a job.
//
// Precondition: delta >= 0.
func (p *Player) AddSkillProgress(id string, delta float64) {
	if delta < 0 {
		panic("player: AddSkillProgress called with negative delta")
	}
	if _, ok := p.Skills[id]; ok {
		p.Skills[id] += delta
	}
}

// UpgradeSkill spends skill points to raise a skill by one full level.
// The cost is the current whole level plus one.
//
// Postcondition: On success the skill rises by exactly 1.0 and points
// decrease by the cost; on error nothing changes.
func (p *Player) UpgradeSkill(id string, maxLevel int) error {
	lvl, ok := p.Skills[id]
	if !ok {
		return ErrUnknownSkill
	}
	if maxLevel > 0 && int(lvl) >= maxLevel {
		return ErrSkillMaxed
	}
	cost := int(lvl) + 1
	if p.SkillPoints < cost {
		return ErrNoSkillPoints
	}
	p.SkillPoints -= cost
	p.Skills[id] = lvl + 1
	return nil
}
