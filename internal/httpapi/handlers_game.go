package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/manus-games/shadowcity/internal/game/clock"
	"github.com/manus-games/shadowcity/internal/game/player"
	"github.com/manus-games/shadowcity/internal/game/progress"
	"github.com/manus-games/shadowcity/internal/game/session"
)

// statePayload is the full game view sent to the client, combining the
// raw state with values derived from the clock.
type statePayload struct {
	Username string            `json:"username"`
	Player   *player.Player    `json:"player"`
	Clock    *clock.WorldClock `json:"clock"`
	Period   clock.Period      `json:"period"`
	Time     string            `json:"time"`
	Flavor   string            `json:"flavor"`
	Settings session.Settings  `json:"settings"`
	Quests   []session.Quest   `json:"quests,omitempty"`
	Unlocked []string          `json:"unlocked,omitempty"`
}

func buildStatePayload(username string, st *session.State) statePayload {
	unlocked := make([]string, 0, len(st.Unlocked))
	for id, ok := range st.Unlocked {
		if ok {
			unlocked = append(unlocked, id)
		}
	}
	return statePayload{
		Username: username,
		Player:   st.Player,
		Clock:    st.Clock,
		Period:   st.Clock.Period(),
		Time:     st.Clock.TimeString(),
		Flavor:   clock.FlavorText(st.Clock.Period(), st.Clock.Weather),
		Settings: st.Settings,
		Quests:   st.Quests,
		Unlocked: unlocked,
	}
}

// withCharacter runs fn under the session lock, rejecting sessions that
// have not created a character yet.
func (a *API) withCharacter(w http.ResponseWriter, sess *session.Session, fn func(st *session.State)) bool {
	ok := false
	sess.Do(func(st *session.State) {
		if st == nil {
			return
		}
		ok = true
		fn(st)
	})
	if !ok {
		writeError(w, http.StatusConflict, "create a character first")
	}
	return ok
}

type createCharacterRequest struct {
	Name       string `json:"name"`
	Background string `json:"background"`
}

func (a *API) handleCreateCharacter(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var req createCharacterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "character name must not be empty")
		return
	}
	bg := player.Background(req.Background)
	if !bg.Valid() {
		writeError(w, http.StatusBadRequest, "unknown background")
		return
	}
	if sess.HasCharacter() {
		writeError(w, http.StatusConflict, "character already exists")
		return
	}

	skillIDs := make([]string, 0, 4)
	for _, s := range a.reg.Skills() {
		skillIDs = append(skillIDs, s.ID)
	}
	start := ""
	for _, loc := range a.reg.Locations() {
		if loc.Unlocked {
			start = loc.ID
			break
		}
	}
	if start == "" {
		writeError(w, http.StatusInternalServerError, "catalog has no starting location")
		return
	}

	p := player.New(req.Name, bg, skillIDs, start)
	st := session.NewState(p, clock.New(a.game.StartHour))
	st.Settings.AutoSave = a.game.AutosaveDefault
	sess.Attach(st)

	if err := a.persist(r.Context(), sess); err != nil {
		a.writeMappedError(w, err)
		return
	}

	a.log.Info("character created",
		zap.String("username", sess.Username),
		zap.String("name", req.Name),
		zap.String("background", req.Background),
	)
	writeJSON(w, http.StatusCreated, buildStatePayload(sess.Username, st))
}

func (a *API) handleState(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var payload statePayload
	if !a.withCharacter(w, sess, func(st *session.State) {
		payload = buildStatePayload(sess.Username, st)
	}) {
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (a *API) handleSettings(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var req session.Settings
	if !decodeBody(w, r, &req) {
		return
	}
	var updated session.Settings
	if !a.withCharacter(w, sess, func(st *session.State) {
		st.Settings = req
		updated = st.Settings
	}) {
		return
	}
	a.autosave(r.Context(), sess)
	writeJSON(w, http.StatusOK, updated)
}

func (a *API) handleSave(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if !sess.HasCharacter() {
		writeError(w, http.StatusConflict, "create a character first")
		return
	}
	if err := a.persist(r.Context(), sess); err != nil {
		a.writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

type jobRequest struct {
	JobID string `json:"job_id"`
}

func (a *API) handlePerformJob(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var req jobRequest
	if !decodeBody(w, r, &req) {
		return
	}
	var (
		out *progress.Outcome
		err error
	)
	if !a.withCharacter(w, sess, func(st *session.State) {
		out, err = a.ctrl.PerformJob(st.Player, st.Clock, req.JobID)
	}) {
		return
	}
	if err != nil {
		a.writeMappedError(w, err)
		return
	}

	if !out.Rejected {
		sess.Publish(session.Event{Type: "job_result", Data: out})
		for _, lvl := range out.LevelUps {
			sess.Publish(session.Event{Type: "level_up", Data: map[string]int{"level": lvl}})
		}
		a.autosave(r.Context(), sess)
	}
	writeJSON(w, http.StatusOK, out)
}

type buyRequest struct {
	ShopID string `json:"shop_id"`
	ItemID string `json:"item_id"`
}

func (a *API) handleBuyItem(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var req buyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	var (
		got *progress.Purchase
		err error
	)
	if !a.withCharacter(w, sess, func(st *session.State) {
		got, err = a.ctrl.BuyItem(st.Player, req.ShopID, req.ItemID)
	}) {
		return
	}
	if err != nil {
		a.writeMappedError(w, err)
		return
	}

	sess.Publish(session.Event{Type: "purchase", Data: got})
	a.autosave(r.Context(), sess)
	writeJSON(w, http.StatusOK, got)
}

type itemRequest struct {
	ItemID string `json:"item_id"`
}

type inventoryResponse struct {
	Inventory []player.InventoryItem `json:"inventory"`
	Energy    int                    `json:"energy"`
	Health    int                    `json:"health"`
}

func (a *API) handleEquip(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	a.handleInventoryAction(w, r, sess, func(p *player.Player, itemID string) error {
		return p.Equip(itemID)
	})
}

func (a *API) handleUnequip(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	a.handleInventoryAction(w, r, sess, func(p *player.Player, itemID string) error {
		return p.Unequip(itemID)
	})
}

func (a *API) handleUseItem(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	a.handleInventoryAction(w, r, sess, func(p *player.Player, itemID string) error {
		return p.Consume(itemID)
	})
}

func (a *API) handleInventoryAction(w http.ResponseWriter, r *http.Request, sess *session.Session, action func(p *player.Player, itemID string) error) {
	var req itemRequest
	if !decodeBody(w, r, &req) {
		return
	}
	var (
		resp inventoryResponse
		err  error
	)
	if !a.withCharacter(w, sess, func(st *session.State) {
		if err = action(st.Player, req.ItemID); err != nil {
			return
		}
		resp = inventoryResponse{Inventory: st.Player.Inventory, Energy: st.Player.Energy, Health: st.Player.Health}
	}) {
		return
	}
	if err != nil {
		a.writeMappedError(w, err)
		return
	}
	a.autosave(r.Context(), sess)
	writeJSON(w, http.StatusOK, resp)
}

type skillRequest struct {
	SkillID string `json:"skill_id"`
}

type skillsResponse struct {
	Skills      map[string]float64 `json:"skills"`
	SkillPoints int                `json:"skill_points"`
}

func (a *API) handleUpgradeSkill(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var req skillRequest
	if !decodeBody(w, r, &req) {
		return
	}
	var (
		resp skillsResponse
		err  error
	)
	if !a.withCharacter(w, sess, func(st *session.State) {
		if err = a.ctrl.UpgradeSkill(st.Player, req.SkillID); err != nil {
			return
		}
		resp = skillsResponse{Skills: st.Player.Skills, SkillPoints: st.Player.SkillPoints}
	}) {
		return
	}
	if err != nil {
		a.writeMappedError(w, err)
		return
	}
	a.autosave(r.Context(), sess)
	writeJSON(w, http.StatusOK, resp)
}

type travelRequest struct {
	LocationID string `json:"location_id"`
}

func (a *API) handleTravel(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var req travelRequest
	if !decodeBody(w, r, &req) {
		return
	}
	var (
		res *progress.TravelResult
		err error
	)
	if !a.withCharacter(w, sess, func(st *session.State) {
		res, err = a.ctrl.Travel(st.Player, st.Unlocked, req.LocationID)
	}) {
		return
	}
	if err != nil {
		a.writeMappedError(w, err)
		return
	}

	if !res.Rejected {
		sess.Publish(session.Event{Type: "travel", Data: res})
		a.autosave(r.Context(), sess)
	}
	writeJSON(w, http.StatusOK, res)
}
