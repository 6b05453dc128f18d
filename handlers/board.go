package handlers

import (
	"net/http"
	"time"

	"github.com/arunsworld/departures/config"
	"github.com/gorilla/mux"
)

// boardView is the board snapshot plus the display settings the presentation
// layer needs alongside it. RefreshCountdown is the number of seconds until
// the server next refetches, derived from the last refresh instant; zero when
// auto-refresh is off or nothing has been fetched yet.
type boardView struct {
	Stations         interface{} `json:"stations"`
	ShowPlatform     bool        `json:"showPlatform"`
	Theme            string      `json:"theme"`
	RefreshCountdown int         `json:"refreshCountdown,omitempty"`
}

func (h handlers) registerBoardHandlers(router *mux.Router) {
	router.HandleFunc("/api/board", func(w http.ResponseWriter, r *http.Request) {
		h.writeBoard(w)
	}).Methods("GET")

	router.HandleFunc("/api/refresh", func(w http.ResponseWriter, r *http.Request) {
		h.board.Refresh(r.Context())
		h.writeBoard(w)
	}).Methods("POST")
}

func (h handlers) writeBoard(w http.ResponseWriter) {
	now := time.Now()
	snapshot := h.board.Snapshot(now)
	settings := h.store.Settings()
	updated := ""
	if !snapshot.LastUpdated.IsZero() {
		updated = snapshot.LastUpdated.Format(time.RFC3339)
	}
	writeJSON(w, response{
		Data: boardView{
			Stations:         snapshot.Stations,
			ShowPlatform:     settings.ShowPlatform,
			Theme:            settings.Theme,
			RefreshCountdown: refreshCountdown(settings, snapshot.LastUpdated, now),
		},
		Updated: updated,
	})
}

func refreshCountdown(settings config.Settings, lastUpdated, now time.Time) int {
	if !settings.AutoRefresh || lastUpdated.IsZero() {
		return 0
	}
	remaining := settings.RefreshInterval - int(now.Sub(lastUpdated).Seconds())
	if remaining < 0 {
		return 0
	}
	return remaining
}
