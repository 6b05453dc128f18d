package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

func (h handlers) registerSettingsHandler(router *mux.Router) {
	router.HandleFunc("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, response{Data: h.store.Settings()})
	}).Methods("GET")

	router.HandleFunc("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		// decoding over the current settings gives partial-update semantics
		settings := h.store.Settings()
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			writeError(w, "invalid settings payload", http.StatusBadRequest)
			return
		}
		if err := h.store.UpdateSettings(settings); err != nil {
			writeError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, response{Data: h.store.Settings()})
	}).Methods("PUT")
}
