package catalog

import (
	"fmt"
	"strings"
)

// Registry provides fast lookup of catalog definitions by ID.
// Registration happens once at load time; all lookups afterwards are
// read-only.
type Registry struct {
	locations     map[string]*LocationDef
	jobs          map[string]*JobDef
	shops         map[string]*ShopDef
	items         map[string]*ItemDef
	skills        map[string]*SkillDef
	npcs          map[string]*NPCDef
	locationOrder []string
	skillOrder    []string
}

// NewRegistry returns an empty Registry.
//
// Postcondition: Returns a non-nil *Registry ready to accept registrations.
func NewRegistry() *Registry {
	return &Registry{
		locations: make(map[string]*LocationDef),
		jobs:      make(map[string]*JobDef),
		shops:     make(map[string]*ShopDef),
		items:     make(map[string]*ItemDef),
		skills:    make(map[string]*SkillDef),
		npcs:      make(map[string]*NPCDef),
	}
}

// RegisterLocation adds a LocationDef to the registry.
//
// Precondition: def must be non-nil with a non-empty ID.
// Postcondition: If called multiple times with the same ID, the last call wins.
func (r *Registry) RegisterLocation(def *LocationDef) {
	mustHaveID("RegisterLocation", def == nil, def != nil && def.ID == "")
	if _, exists := r.locations[def.ID]; !exists {
		r.locationOrder = append(r.locationOrder, def.ID)
	}
	r.locations[def.ID] = def
}

// RegisterJob adds a JobDef to the registry.
//
// Precondition: def must be non-nil with a non-empty ID.
func (r *Registry) RegisterJob(def *JobDef) {
	mustHaveID("RegisterJob", def == nil, def != nil && def.ID == "")
	r.jobs[def.ID] = def
}

// RegisterShop adds a ShopDef to the registry.
//
// Precondition: def must be non-nil with a non-empty ID.
func (r *Registry) RegisterShop(def *ShopDef) {
	mustHaveID("RegisterShop", def == nil, def != nil && def.ID == "")
	r.shops[def.ID] = def
}

// RegisterItem adds an ItemDef to the registry.
//
// Precondition: def must be non-nil with a non-empty ID.
func (r *Registry) RegisterItem(def *ItemDef) {
	mustHaveID("RegisterItem", def == nil, def != nil && def.ID == "")
	r.items[def.ID] = def
}

// RegisterSkill adds a SkillDef to the registry.
//
// Precondition: def must be non-nil with a non-empty ID.
func (r *Registry) RegisterSkill(def *SkillDef) {
	mustHaveID("RegisterSkill", def == nil, def != nil && def.ID == "")
	if _, exists := r.skills[def.ID]; !exists {
		r.skillOrder = append(r.skillOrder, def.ID)
	}
	r.skills[def.ID] = def
}

// RegisterNPC adds an NPCDef to the registry.
//
// Precondition: def must be non-nil with a non-empty ID.
func (r *Registry) RegisterNPC(def *NPCDef) {
	mustHaveID("RegisterNPC", def == nil, def != nil && def.ID == "")
	r.npcs[def.ID] = def
}

func mustHaveID(op string, isNil, emptyID bool) {
	if isNil {
		panic("catalog." + op + ": precondition violated: def must be non-nil")
	}
	if emptyID {
		panic("catalog." + op + ": precondition violated: def ID must be non-empty")
	}
}

// Location returns the LocationDef for the given ID, if registered.
func (r *Registry) Location(id string) (*LocationDef, bool) {
	l, ok := r.locations[id]
	return l, ok
}

// Job returns the JobDef for the given ID, if registered.
func (r *Registry) Job(id string) (*JobDef, bool) {
	j, ok := r.jobs[id]
	return j, ok
}

// Shop returns the ShopDef for the given ID, if registered.
func (r *Registry) Shop(id string) (*ShopDef, bool) {
	s, ok := r.shops[id]
	return s, ok
}

// Item returns the ItemDef for the given ID, if registered.
func (r *Registry) Item(id string) (*ItemDef, bool) {
	i, ok := r.items[id]
	return i, ok
}

// Skill returns the SkillDef for the given ID, if registered.
func (r *Registry) Skill(id string) (*SkillDef, bool) {
	s, ok := r.skills[id]
	return s, ok
}

// Locations returns all locations in registration order.
//
// Postcondition: Returns a freshly allocated slice; callers may not
// mutate the referenced definitions.
func (r *Registry) Locations() []*LocationDef {
	out := make([]*LocationDef, 0, len(r.locationOrder))
	for _, id := range r.locationOrder {
		out = append(out, r.locations[id])
	}
	return out
}

// Skills returns all skills in registration order.
func (r *Registry) Skills() []*SkillDef {
	out := make([]*SkillDef, 0, len(r.skillOrder))
	for _, id := range r.skillOrder {
		out = append(out, r.skills[id])
	}
	return out
}

// JobsAt returns the JobDefs offered by the given location, in the
// location's listed order.
//
// Postcondition: Returns nil when the location is unknown.
func (r *Registry) JobsAt(locationID string) []*JobDef {
	loc, ok := r.locations[locationID]
	if !ok {
		return nil
	}
	out := make([]*JobDef, 0, len(loc.Jobs))
	for _, id := range loc.Jobs {
		if j, ok := r.jobs[id]; ok {
			out = append(out, j)
		}
	}
	return out
}

// ShopsAt returns the ShopDefs offered by the given location.
func (r *Registry) ShopsAt(locationID string) []*ShopDef {
	loc, ok := r.locations[locationID]
	if !ok {
		return nil
	}
	out := make([]*ShopDef, 0, len(loc.Shops))
	for _, id := range loc.Shops {
		if s, ok := r.shops[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

// NPCsAt returns the NPCDefs stationed at the given location.
func (r *Registry) NPCsAt(locationID string) []*NPCDef {
	var out []*NPCDef
	for _, n := range r.npcs {
		if n.Location == locationID {
			out = append(out, n)
		}
	}
	return out
}

// ItemsIn returns the ItemDefs sold by the given shop, in the shop's
// listed order.
func (r *Registry) ItemsIn(shopID string) []*ItemDef {
	shop, ok := r.shops[shopID]
	if !ok {
		return nil
	}
	out := make([]*ItemDef, 0, len(shop.Items))
	for _, id := range shop.Items {
		if i, ok := r.items[id]; ok {
			out = append(out, i)
		}
	}
	return out
}

// Validate checks referential integrity across all registered
// definitions.
//
// Postcondition: Returns nil when every cross-reference resolves and
// every enum value is recognised, or an error describing all violations.
func (r *Registry) Validate() error {
	var errs []string

	for _, loc := range r.locations {
		for _, jobID := range loc.Jobs {
			if _, ok := r.jobs[jobID]; !ok {
				errs = append(errs, fmt.Sprintf("location %q references unknown job %q", loc.ID, jobID))
			}
		}
		for _, shopID := range loc.Shops {
			if _, ok := r.shops[shopID]; !ok {
				errs = append(errs, fmt.Sprintf("location %q references unknown shop %q", loc.ID, shopID))
			}
		}
		for skillID := range loc.Requirements.Skills {
			if _, ok := r.skills[skillID]; !ok {
				errs = append(errs, fmt.Sprintf("location %q requirement references unknown skill %q", loc.ID, skillID))
			}
		}
	}

	for _, job := range r.jobs {
		if !job.Risk.Valid() {
			errs = append(errs, fmt.Sprintf("job %q has invalid risk level %q", job.ID, job.Risk))
		}
		if job.Reward.Money.Lo > job.Reward.Money.Hi {
			errs = append(errs, fmt.Sprintf("job %q has inverted money range [%d, %d]", job.ID, job.Reward.Money.Lo, job.Reward.Money.Hi))
		}
		if job.EnergyCost < 0 {
			errs = append(errs, fmt.Sprintf("job %q has negative energy cost", job.ID))
		}
		if job.DurationMinutes <= 0 {
			errs = append(errs, fmt.Sprintf("job %q has non-positive duration", job.ID))
		}
		for _, skillID := range job.Skills {
			if _, ok := r.skills[skillID]; !ok {
				errs = append(errs, fmt.Sprintf("job %q references unknown skill %q", job.ID, skillID))
			}
		}
		for skillID := range job.Requirements.Skills {
			if _, ok := r.skills[skillID]; !ok {
				errs = append(errs, fmt.Sprintf("job %q requirement references unknown skill %q", job.ID, skillID))
			}
		}
	}

	for _, shop := range r.shops {
		for _, itemID := range shop.Items {
			if _, ok := r.items[itemID]; !ok {
				errs = append(errs, fmt.Sprintf("shop %q references unknown item %q", shop.ID, itemID))
			}
		}
	}

	for _, item := range r.items {
		if !item.Type.Valid() {
			errs = append(errs, fmt.Sprintf("item %q has invalid type %q", item.ID, item.Type))
		}
		if item.Price < 0 {
			errs = append(errs, fmt.Sprintf("item %q has negative price", item.ID))
		}
	}

	for _, npc := range r.npcs {
		if _, ok := r.locations[npc.Location]; !ok {
			errs = append(errs, fmt.Sprintf("npc %q references unknown location %q", npc.ID, npc.Location))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
