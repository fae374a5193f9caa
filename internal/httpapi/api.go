// Package httpapi exposes the game to the browser client: a JSON REST
// surface for accounts, character management, catalog queries, and
// gameplay actions, plus a websocket stream for push events.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/manus-games/shadowcity/internal/config"
	"github.com/manus-games/shadowcity/internal/game/catalog"
	"github.com/manus-games/shadowcity/internal/game/progress"
	"github.com/manus-games/shadowcity/internal/game/session"
	"github.com/manus-games/shadowcity/internal/storage/postgres"
)

// AccountStore is the slice of account persistence the API needs.
type AccountStore interface {
	Create(ctx context.Context, username, password string) (postgres.Account, error)
	Authenticate(ctx context.Context, username, password string) (postgres.Account, error)
}

// SaveStore persists per-account game state blobs.
type SaveStore interface {
	Upsert(ctx context.Context, accountID int64, state json.RawMessage) error
	Load(ctx context.Context, accountID int64) (postgres.SaveGame, error)
}

// API wires the HTTP surface over the game engine and storage.
type API struct {
	log      *zap.Logger
	reg      *catalog.Registry
	ctrl     *progress.Controller
	sessions *session.Manager
	accounts AccountStore
	saves    SaveStore
	game     config.GameConfig
	upgrader websocket.Upgrader
}

// NewAPI constructs the API.
//
// Precondition: all dependencies must be non-nil.
func NewAPI(log *zap.Logger, reg *catalog.Registry, ctrl *progress.Controller, sessions *session.Manager, accounts AccountStore, saves SaveStore, game config.GameConfig) *API {
	if log == nil {
		log = zap.NewNop()
	}
	return &API{
		log:      log,
		reg:      reg,
		ctrl:     ctrl,
		sessions: sessions,
		accounts: accounts,
		saves:    saves,
		game:     game,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 4 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
	}
}

// Handler returns the full route table.
func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", a.handleHealth)

	mux.HandleFunc("POST /api/register", a.handleRegister)
	mux.HandleFunc("POST /api/login", a.handleLogin)
	mux.HandleFunc("POST /api/logout", a.withSession(a.handleLogout))

	mux.HandleFunc("GET /api/catalog/locations", a.handleLocations)
	mux.HandleFunc("GET /api/catalog/locations/{id}", a.handleLocation)
	mux.HandleFunc("GET /api/catalog/skills", a.handleSkills)
	mux.HandleFunc("GET /api/catalog/backgrounds", a.handleBackgrounds)

	mux.HandleFunc("POST /api/character", a.withSession(a.handleCreateCharacter))
	mux.HandleFunc("GET /api/state", a.withSession(a.handleState))
	mux.HandleFunc("PUT /api/settings", a.withSession(a.handleSettings))
	mux.HandleFunc("POST /api/save", a.withSession(a.handleSave))

	mux.HandleFunc("POST /api/actions/job", a.withSession(a.handlePerformJob))
	mux.HandleFunc("POST /api/actions/buy", a.withSession(a.handleBuyItem))
	mux.HandleFunc("POST /api/actions/equip", a.withSession(a.handleEquip))
	mux.HandleFunc("POST /api/actions/unequip", a.withSession(a.handleUnequip))
	mux.HandleFunc("POST /api/actions/use", a.withSession(a.handleUseItem))
	mux.HandleFunc("POST /api/actions/skill", a.withSession(a.handleUpgradeSkill))
	mux.HandleFunc("POST /api/actions/travel", a.withSession(a.handleTravel))

	mux.HandleFunc("GET /ws", a.handleWS)

	return mux
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
