package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/manus-games/shadowcity/internal/game/session"
	"github.com/manus-games/shadowcity/internal/storage/postgres"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token        string `json:"token"`
	Username     string `json:"username"`
	HasCharacter bool   `json:"has_character"`
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	acct, err := a.accounts.Create(r.Context(), req.Username, req.Password)
	if err != nil {
		a.writeMappedError(w, err)
		return
	}

	sess := a.sessions.Start(acct.Username)
	sess.AccountID = acct.ID

	a.log.Info("account registered", zap.String("username", acct.Username))
	writeJSON(w, http.StatusCreated, authResponse{Token: sess.Token, Username: acct.Username})
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	acct, err := a.accounts.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		a.writeMappedError(w, err)
		return
	}

	sess := a.sessions.Start(acct.Username)
	sess.AccountID = acct.ID

	if err := a.restore(r.Context(), sess); err != nil {
		a.writeMappedError(w, err)
		return
	}

	a.log.Info("login", zap.String("username", acct.Username), zap.Bool("has_character", sess.HasCharacter()))
	writeJSON(w, http.StatusOK, authResponse{Token: sess.Token, Username: acct.Username, HasCharacter: sess.HasCharacter()})
}

func (a *API) handleLogout(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if sess.HasCharacter() {
		if err := a.persist(r.Context(), sess); err != nil {
			a.writeMappedError(w, err)
			return
		}
	}
	if err := a.sessions.End(sess.Token); err != nil {
		a.writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// restore loads the account's save blob into the session, if one exists.
func (a *API) restore(ctx context.Context, sess *session.Session) error {
	save, err := a.saves.Load(ctx, sess.AccountID)
	if err != nil {
		if errors.Is(err, postgres.ErrSaveNotFound) {
			return nil
		}
		return fmt.Errorf("loading save game: %w", err)
	}
	var state session.State
	if err := json.Unmarshal(save.State, &state); err != nil {
		return fmt.Errorf("decoding save game: %w", err)
	}
	if state.Unlocked == nil {
		state.Unlocked = make(map[string]bool)
	}
	sess.Attach(&state)
	return nil
}

// persist writes the session's current state to the save store.
func (a *API) persist(ctx context.Context, sess *session.Session) error {
	var blob []byte
	var err error
	sess.Do(func(state *session.State) {
		if state == nil {
			err = fmt.Errorf("no character to save")
			return
		}
		blob, err = json.Marshal(state)
	})
	if err != nil {
		return err
	}
	if err := a.saves.Upsert(ctx, sess.AccountID, blob); err != nil {
		return fmt.Errorf("storing save game: %w", err)
	}
	return nil
}

// autosave persists after a mutating action when the player has
// autosave enabled. Failures are logged, not surfaced: the action
// itself already succeeded.
func (a *API) autosave(ctx context.Context, sess *session.Session) {
	enabled := false
	sess.Do(func(state *session.State) {
		enabled = state != nil && state.Settings.AutoSave
	})
	if !enabled {
		return
	}
	if err := a.persist(ctx, sess); err != nil {
		a.log.Warn("autosave failed", zap.String("username", sess.Username), zap.Error(err))
	}
}
