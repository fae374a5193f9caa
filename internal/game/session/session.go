// Package session ties a logged-in account to its live game state: the
// player entity, world clock, settings, quest log, and unlocked
// locations. Sessions are keyed by opaque tokens and guarded by a
// per-session mutex so the HTTP layer, the energy regeneration tick,
// and the autosave loop never race on the same state.
package session

import (
	"sync"

	"github.com/manus-games/shadowcity/internal/game/clock"
	"github.com/manus-games/shadowcity/internal/game/player"
)

// Settings are the per-account presentation preferences. They ride
// along in the save blob so they survive logout.
type Settings struct {
	Language string `json:"language"`
	Sound    bool   `json:"sound"`
	Music    bool   `json:"music"`
	Graphics string `json:"graphics"`
	AutoSave bool   `json:"auto_save"`
}

// DefaultSettings returns the settings applied to a new character.
func DefaultSettings() Settings {
	return Settings{Language: "en", Sound: true, Music: true, Graphics: "high", AutoSave: true}
}

// Quest is one entry in the quest log.
type Quest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Reward      int    `json:"reward,omitempty"`
	Completed   bool   `json:"completed"`
}

// State is the full serializable game state for one account. It
// round-trips through JSON exactly, which is what the save repository
// persists.
type State struct {
	Player   *player.Player    `json:"player"`
	Clock    *clock.WorldClock `json:"clock"`
	Settings Settings          `json:"settings"`
	Quests   []Quest           `json:"quests,omitempty"`
	Unlocked map[string]bool   `json:"unlocked,omitempty"`
}

// NewState builds the initial state for a freshly created character.
//
// Precondition: p and clk must be non-nil.
func NewState(p *player.Player, clk *clock.WorldClock) *State {
	if p == nil || clk == nil {
		panic("session: NewState requires a player and a clock")
	}
	return &State{
		Player:   p,
		Clock:    clk,
		Settings: DefaultSettings(),
		Unlocked: make(map[string]bool),
	}
}

// Event is a push notification for the presentation layer.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Session is one authenticated connection to the game. State is nil
// until a character has been created or loaded.
//
// Invariant: all State access goes through Do, so state mutations are
// serialized per session.
type Session struct {
	Username  string
	Token     string
	AccountID int64

	mu    sync.Mutex
	state *State

	subMu   sync.Mutex
	subs    map[int]chan Event
	nextSub int
}

// Do runs fn with exclusive access to the session's state. The state
// argument is nil when no character exists yet.
func (s *Session) Do(fn func(state *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

// Attach installs game state, replacing any previous state.
func (s *Session) Attach(state *State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

// HasCharacter reports whether game state is attached.
func (s *Session) HasCharacter() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != nil
}

// Subscribe registers an event listener. The returned cancel function
// must be called when the listener goes away; events published while a
// listener's buffer is full are dropped rather than blocking the game.
func (s *Session) Subscribe() (<-chan Event, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	if s.subs == nil {
		s.subs = make(map[int]chan Event)
	}
	id := s.nextSub
	s.nextSub++
	ch := make(chan Event, 16)
	s.subs[id] = ch
	return ch, func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
}

// Publish fans an event out to every subscriber without blocking.
func (s *Session) Publish(ev Event) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
