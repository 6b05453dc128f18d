package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/arunsworld/departures"
	"github.com/gorilla/mux"
)

func (h handlers) registerStationHandlers(router *mux.Router) {
	router.HandleFunc("/api/stations", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, response{Data: h.store.Stations()})
	}).Methods("GET")

	router.HandleFunc("/api/stations", func(w http.ResponseWriter, r *http.Request) {
		var station departures.Station
		if err := json.NewDecoder(r.Body).Decode(&station); err != nil {
			writeError(w, "invalid station payload", http.StatusBadRequest)
			return
		}
		if station.ID == "" || station.Name == "" {
			writeError(w, "station id and name are required", http.StatusBadRequest)
			return
		}
		if station.Type == departures.SourceNationalRail && station.CRS == "" {
			writeError(w, "national rail stations require a crs code", http.StatusBadRequest)
			return
		}
		if err := h.store.AddStation(station); err != nil {
			writeError(w, err.Error(), http.StatusConflict)
			return
		}
		writeJSON(w, response{Data: h.store.Stations()})
	}).Methods("POST")

	router.HandleFunc("/api/stations/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		station, ok := h.store.Station(id)
		if !ok {
			writeError(w, "station not found", http.StatusNotFound)
			return
		}
		// decoding over the existing record gives partial-update semantics
		if err := json.NewDecoder(r.Body).Decode(&station); err != nil {
			writeError(w, "invalid station payload", http.StatusBadRequest)
			return
		}
		station.ID = id
		if err := h.store.UpdateStation(station); err != nil {
			writeError(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, response{Data: h.store.Stations()})
	}).Methods("PUT")

	router.HandleFunc("/api/stations/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		if err := h.store.RemoveStation(id); err != nil {
			writeError(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, response{Data: h.store.Stations()})
	}).Methods("DELETE")

	router.HandleFunc("/api/stations/reorder", func(w http.ResponseWriter, r *http.Request) {
		var move struct {
			From int `json:"from"`
			To   int `json:"to"`
		}
		if err := json.NewDecoder(r.Body).Decode(&move); err != nil {
			writeError(w, "invalid reorder payload", http.StatusBadRequest)
			return
		}
		if err := h.store.ReorderStations(move.From, move.To); err != nil {
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, response{Data: h.store.Stations()})
	}).Methods("POST")
}
