package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/manus-games/shadowcity/internal/game/player"
)

// energyPerTick is how much energy every character recovers per
// regeneration interval.
const energyPerTick = 1

// RunEnergyRegen restores energy across all live sessions on a fixed
// interval until ctx is cancelled. Characters at full energy are left
// alone; everyone else gains one point per tick, clamped at the cap,
// and receives an "energy" event.
//
// Precondition: interval must be positive.
func (m *Manager) RunEnergyRegen(ctx context.Context, interval time.Duration, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("energy regeneration started", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			log.Info("energy regeneration stopped")
			return
		case <-ticker.C:
			m.Each(func(s *Session) {
				var regenerated bool
				var energy int
				s.Do(func(state *State) {
					if state == nil || state.Player.Energy >= player.MaxEnergy {
						return
					}
					state.Player.AddEnergy(energyPerTick)
					regenerated = true
					energy = state.Player.Energy
				})
				if regenerated {
					s.Publish(Event{Type: "energy", Data: map[string]int{"energy": energy}})
				}
			})
		}
	}
}
