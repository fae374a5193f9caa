package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/manus-games/shadowcity/internal/game/player"
	"github.com/manus-games/shadowcity/internal/game/progress"
	"github.com/manus-games/shadowcity/internal/game/session"
	"github.com/manus-games/shadowcity/internal/storage/postgres"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeMappedError translates domain errors into HTTP statuses:
// catalog misses are 404, exhausted or conflicting resources are 409,
// bad input is 400, and everything unexpected is 500.
func (a *API) writeMappedError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, progress.ErrUnknownEntity):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, progress.ErrNotOffered),
		errors.Is(err, player.ErrNotEnoughMoney),
		errors.Is(err, player.ErrInventoryFull),
		errors.Is(err, player.ErrItemOwned),
		errors.Is(err, player.ErrItemNotOwned),
		errors.Is(err, player.ErrNotEquippable),
		errors.Is(err, player.ErrNotConsumable),
		errors.Is(err, player.ErrNoSkillPoints),
		errors.Is(err, player.ErrSkillMaxed),
		errors.Is(err, player.ErrUnknownSkill),
		errors.Is(err, postgres.ErrAccountExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, postgres.ErrUsernameTooShort),
		errors.Is(err, postgres.ErrPasswordTooShort):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, postgres.ErrAccountNotFound),
		errors.Is(err, postgres.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid username or password")
	case errors.Is(err, session.ErrSessionNotFound):
		writeError(w, http.StatusUnauthorized, "invalid or expired session")
	default:
		a.log.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}

// bearerToken extracts the session token from the Authorization header,
// falling back to the token query parameter for websocket clients that
// cannot set headers.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return r.URL.Query().Get("token")
}

type sessionHandler func(w http.ResponseWriter, r *http.Request, sess *session.Session)

// withSession resolves the bearer token to a live session before
// calling the wrapped handler.
func (a *API) withSession(next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "missing session token")
			return
		}
		sess, err := a.sessions.Get(token)
		if err != nil {
			a.writeMappedError(w, err)
			return
		}
		next(w, r, sess)
	}
}
