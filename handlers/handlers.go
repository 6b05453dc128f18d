// Package handlers exposes the dashboard over a JSON API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/arunsworld/departures"
	"github.com/arunsworld/departures/config"
	"github.com/gorilla/mux"
	"github.com/unrolled/logger"
)

// RegisterHandlers wires the API and the board page onto the router.
func RegisterHandlers(router *mux.Router, store *config.Store, board *departures.Board, client *departures.Client) {
	h := handlers{
		store:  store,
		board:  board,
		client: client,
	}

	l := logger.New()
	router.Use(l.Handler)

	h.registerIndex(router)
	h.registerBoardHandlers(router)
	h.registerSearchHandler(router)
	h.registerStationHandlers(router)
	h.registerSettingsHandler(router)
}

type handlers struct {
	store  *config.Store
	board  *departures.Board
	client *departures.Client
}

type response struct {
	Data    interface{} `json:"data"`
	Updated string      `json:"updated,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(errorResponse{Error: message})
}
