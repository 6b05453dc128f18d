package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h handlers) registerSearchHandler(router *mux.Router) {
	router.HandleFunc("/api/search", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		results := h.client.Search(r.Context(), query)
		writeJSON(w, response{Data: results})
	}).Methods("GET")
}
