package progress

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/manus-games/shadowcity/internal/game/catalog"
	"github.com/manus-games/shadowcity/internal/game/clock"
	"github.com/manus-games/shadowcity/internal/game/player"
	"github.com/manus-games/shadowcity/internal/game/rng"
)

// staminaDrift is the passive skill growth from working a stamina job.
// It is a continuous drift, not a leveled step, and is unbounded.
const staminaDrift = 0.01

// Outcome records one job attempt for presentation. A rejected outcome
// means the gate denied the attempt and no state was mutated; the delta
// fields are only meaningful when Rejected is false.
type Outcome struct {
	JobID       string    `json:"job_id"`
	Rejected    bool      `json:"rejected,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	Money       int       `json:"money"`
	XP          int       `json:"xp"`
	Reputation  int       `json:"reputation"`
	ShadowCoins int       `json:"shadow_coins"`
	Risk        RiskEvent `json:"risk"`
	// LevelUps lists each level reached during the cascade, one entry per
	// level gained.
	LevelUps []int `json:"level_ups,omitempty"`
	Energy   int   `json:"energy"`
}

// Purchase records a completed shop transaction.
type Purchase struct {
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Equipped  bool   `json:"equipped"`
	MoneyLeft int    `json:"money_left"`
}

// TravelResult records a movement attempt. Unlocked is set when this
// trip satisfied the destination's requirement gate for the first time.
type TravelResult struct {
	LocationID string `json:"location_id"`
	Rejected   bool   `json:"rejected,omitempty"`
	Reason     string `json:"reason,omitempty"`
	Unlocked   bool   `json:"unlocked,omitempty"`
}

// Controller orchestrates the gameplay pipeline against a player entity
// and world clock. It holds no per-player state of its own, so one
// controller serves every session.
//
// Invariant: Every operation either applies fully or leaves the player
// unchanged; a gate denial never mutates state.
type Controller struct {
	reg *catalog.Registry
	src rng.Source
	log *zap.Logger
}

// NewController wires a controller over the catalog with the given
// randomness source.
//
// Precondition: reg and src must be non-nil.
func NewController(reg *catalog.Registry, src rng.Source, log *zap.Logger) *Controller {
	if reg == nil || src == nil {
		panic("progress: NewController requires a catalog and a random source")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{reg: reg, src: src, log: log}
}

// PerformJob runs the full job pipeline: gate, energy deduction, reward
// roll, risk resolution, delta application, level-up cascade, clock
// advance, and passive stamina drift.
//
// Postcondition: Returns ErrUnknownEntity for catalog misses with no
// mutation; returns a rejected Outcome for gate denials with no
// mutation; otherwise applies all deltas and advances the clock by the
// job's duration.
func (c *Controller) PerformJob(p *player.Player, clk *clock.WorldClock, jobID string) (*Outcome, error) {
	job, ok := c.reg.Job(jobID)
	if !ok {
		return nil, fmt.Errorf("%w: job %q", ErrUnknownEntity, jobID)
	}
	loc, ok := c.reg.Location(p.CurrentLocation)
	if !ok {
		return nil, fmt.Errorf("%w: location %q", ErrUnknownEntity, p.CurrentLocation)
	}
	if !loc.OffersJob(jobID) {
		return &Outcome{JobID: jobID, Rejected: true, Reason: fmt.Sprintf("%s is not available in %s", job.Name, loc.Name), Energy: p.Energy}, nil
	}
	if gate := CheckJob(p, job); !gate.Allowed {
		return &Outcome{JobID: jobID, Rejected: true, Reason: gate.Reason, Energy: p.Energy}, nil
	}

	p.AddEnergy(-job.EnergyCost)

	reward := ComputeReward(job, p, clk.Period(), clk.Weather, c.src)
	ev := ResolveRisk(job.Risk, c.src)
	applied := ApplyRisk(reward, ev)

	p.Money += applied.Money
	p.Reputation += applied.Reputation
	p.ShadowCoins += applied.ShadowCoins

	levelBefore := p.Level
	gained := p.GainXP(applied.XP)
	var levelUps []int
	for i := 1; i <= gained; i++ {
		levelUps = append(levelUps, levelBefore+i)
	}

	clk.Advance(job.DurationMinutes, c.src)

	if job.RequiresSkill("stamina") {
		p.AddSkillProgress("stamina", staminaDrift)
	}

	c.log.Info("job completed",
		zap.String("player", p.Name),
		zap.String("job", jobID),
		zap.String("outcome", string(ev.Outcome)),
		zap.Int("money", applied.Money),
		zap.Int("xp", applied.XP),
		zap.Int("levels_gained", gained),
	)

	return &Outcome{
		JobID:       jobID,
		Money:       applied.Money,
		XP:          applied.XP,
		Reputation:  applied.Reputation,
		ShadowCoins: applied.ShadowCoins,
		Risk:        ev,
		LevelUps:    levelUps,
		Energy:      p.Energy,
	}, nil
}

// BuyItem purchases an item from a shop at the player's current
// location, deducting the price and auto-equipping equippable items.
//
// Postcondition: On any error nothing is mutated.
func (c *Controller) BuyItem(p *player.Player, shopID, itemID string) (*Purchase, error) {
	loc, ok := c.reg.Location(p.CurrentLocation)
	if !ok {
		return nil, fmt.Errorf("%w: location %q", ErrUnknownEntity, p.CurrentLocation)
	}
	shop, ok := c.reg.Shop(shopID)
	if !ok {
		return nil, fmt.Errorf("%w: shop %q", ErrUnknownEntity, shopID)
	}
	if !loc.OffersShop(shopID) {
		return nil, fmt.Errorf("%w: shop %q in %s", ErrNotOffered, shopID, loc.Name)
	}
	item, ok := c.reg.Item(itemID)
	if !ok {
		return nil, fmt.Errorf("%w: item %q", ErrUnknownEntity, itemID)
	}
	found := false
	for _, id := range shop.Items {
		if id == itemID {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: item %q in shop %q", ErrNotOffered, itemID, shopID)
	}

	if p.Owns(itemID) {
		return nil, player.ErrItemOwned
	}
	if len(p.Inventory) >= player.InventoryCap {
		return nil, player.ErrInventoryFull
	}
	if err := p.SpendMoney(item.Price); err != nil {
		return nil, err
	}

	owned := player.InventoryItem{ID: item.ID, Name: item.Name, Type: item.Type, Effects: copyEffects(item.Effects)}
	if err := p.AddItem(owned); err != nil {
		return nil, err
	}
	equipped := false
	if item.Type != catalog.ItemConsumable {
		if err := p.Equip(item.ID); err == nil {
			equipped = true
		}
	}

	c.log.Info("item purchased",
		zap.String("player", p.Name),
		zap.String("item", itemID),
		zap.Int("price", item.Price),
	)

	return &Purchase{ItemID: item.ID, Name: item.Name, Price: item.Price, Equipped: equipped, MoneyLeft: p.Money}, nil
}

func copyEffects(src map[string]float64) map[string]float64 {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]float64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// UpgradeSkill spends skill points on a catalog skill, honoring its
// level cap.
func (c *Controller) UpgradeSkill(p *player.Player, skillID string) error {
	def, ok := c.reg.Skill(skillID)
	if !ok {
		return fmt.Errorf("%w: skill %q", ErrUnknownEntity, skillID)
	}
	return p.UpgradeSkill(skillID, def.MaxLevel)
}

// Travel moves the player to a location, latching its unlock when the
// requirement gate passes for the first time. The unlocked set is
// per-session state supplied by the caller.
//
// Postcondition: Once a location ID is present in unlocked, later trips
// never re-check requirements.
func (c *Controller) Travel(p *player.Player, unlocked map[string]bool, locationID string) (*TravelResult, error) {
	def, ok := c.reg.Location(locationID)
	if !ok {
		return nil, fmt.Errorf("%w: location %q", ErrUnknownEntity, locationID)
	}
	if !def.Unlocked && !unlocked[locationID] {
		if gate := CheckRequirements(p, def.Requirements); !gate.Allowed {
			return &TravelResult{LocationID: locationID, Rejected: true, Reason: gate.Reason}, nil
		}
		unlocked[locationID] = true
		p.CurrentLocation = locationID
		c.log.Info("location unlocked", zap.String("player", p.Name), zap.String("location", locationID))
		return &TravelResult{LocationID: locationID, Unlocked: true}, nil
	}
	p.CurrentLocation = locationID
	return &TravelResult{LocationID: locationID}, nil
}
