// Package progress implements the job-resolution pipeline: requirement
// gating, stochastic reward computation, risk perturbation, and the
// controller that orchestrates them against the player entity and clock.
package progress

import (
	"fmt"
	"sort"

	"github.com/manus-games/shadowcity/internal/game/catalog"
	"github.com/manus-games/shadowcity/internal/game/player"
)

// GateResult is the outcome of a requirement check. When denied, Reason
// carries the first failing check in a stable order for reproducible
// messaging.
type GateResult struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

func allow() GateResult {
	return GateResult{Allowed: true}
}

func deny(format string, args ...any) GateResult {
	return GateResult{Reason: fmt.Sprintf(format, args...)}
}

// CheckRequirements evaluates a requirement spec against the player.
// All present checks must pass; absent dimensions are unconstrained.
// Checks run in a fixed order (level, reputation, money, skills) and the
// first failure wins. Skill checks use effective levels, so equipped
// gear counts.
//
// Postcondition: No side effects; the same inputs always yield the same
// result.
func CheckRequirements(p *player.Player, req catalog.Requirements) GateResult {
	if req.Level > 0 && p.Level < req.Level {
		return deny("requires level %d", req.Level)
	}
	if req.Reputation > 0 && p.Reputation < req.Reputation {
		return deny("requires %d reputation", req.Reputation)
	}
	if req.Money > 0 && p.Money < req.Money {
		return deny("requires $%d", req.Money)
	}
	skillIDs := make([]string, 0, len(req.Skills))
	for id := range req.Skills {
		skillIDs = append(skillIDs, id)
	}
	sort.Strings(skillIDs)
	for _, id := range skillIDs {
		if min := req.Skills[id]; p.EffectiveSkill(id) < min {
			return deny("requires %s level %g", id, min)
		}
	}
	return allow()
}

// CheckJob evaluates a job's requirement spec plus the implicit energy
// check. Energy is checked last because it is consumed by the action
// itself rather than being part of the generic spec.
func CheckJob(p *player.Player, job *catalog.JobDef) GateResult {
	if r := CheckRequirements(p, job.Requirements); !r.Allowed {
		return r
	}
	if p.Energy < job.EnergyCost {
		return deny("not enough energy (need %d)", job.EnergyCost)
	}
	return allow()
}
