package httpapi

import (
	"net/http"

	"github.com/manus-games/shadowcity/internal/game/catalog"
	"github.com/manus-games/shadowcity/internal/game/player"
)

type locationSummary struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	Unlocked     bool                 `json:"unlocked"`
	Requirements catalog.Requirements `json:"requirements"`
}

func (a *API) handleLocations(w http.ResponseWriter, r *http.Request) {
	locs := a.reg.Locations()
	out := make([]locationSummary, 0, len(locs))
	for _, l := range locs {
		out = append(out, locationSummary{
			ID:           l.ID,
			Name:         l.Name,
			Description:  l.Description,
			Unlocked:     l.Unlocked,
			Requirements: l.Requirements,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type shopDetail struct {
	*catalog.ShopDef
	Stock []*catalog.ItemDef `json:"stock"`
}

type locationDetail struct {
	locationSummary
	Jobs  []*catalog.JobDef `json:"jobs"`
	Shops []shopDetail      `json:"shops"`
	NPCs  []*catalog.NPCDef `json:"npcs,omitempty"`
}

func (a *API) handleLocation(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	loc, ok := a.reg.Location(id)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown location")
		return
	}

	shops := a.reg.ShopsAt(id)
	shopOut := make([]shopDetail, 0, len(shops))
	for _, s := range shops {
		shopOut = append(shopOut, shopDetail{ShopDef: s, Stock: a.reg.ItemsIn(s.ID)})
	}

	writeJSON(w, http.StatusOK, locationDetail{
		locationSummary: locationSummary{
			ID:           loc.ID,
			Name:         loc.Name,
			Description:  loc.Description,
			Unlocked:     loc.Unlocked,
			Requirements: loc.Requirements,
		},
		Jobs:  a.reg.JobsAt(id),
		Shops: shopOut,
		NPCs:  a.reg.NPCsAt(id),
	})
}

func (a *API) handleSkills(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.reg.Skills())
}

type backgroundInfo struct {
	ID            string `json:"id"`
	StartingMoney int    `json:"starting_money"`
	BoostedSkill  string `json:"boosted_skill"`
}

func (a *API) handleBackgrounds(w http.ResponseWriter, r *http.Request) {
	bgs := player.Backgrounds()
	out := make([]backgroundInfo, 0, len(bgs))
	for _, bg := range bgs {
		out = append(out, backgroundInfo{
			ID:            string(bg),
			StartingMoney: bg.StartingMoney(),
			BoostedSkill:  bg.BoostedSkill(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}
