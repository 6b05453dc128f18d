package handlers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arunsworld/departures"
	"github.com/arunsworld/departures/config"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	store := config.NewStore(filepath.Join(t.TempDir(), "dashboard.json"))
	client := departures.NewClient("", "", time.Second)
	board := departures.NewBoard(client, store)

	router := mux.NewRouter()
	RegisterHandlers(router, store, board, client)
	return router
}

func doJSON(t *testing.T, router *mux.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestBoardEndpoint(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/board", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"stations"`)
	assert.Contains(t, rec.Body.String(), `"showPlatform"`)
}

func TestBoardRefreshCountdown(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPut, "/api/settings", `{"autoRefresh": true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/board", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"refreshCountdown"`, "no countdown before the first refresh")

	rec = doJSON(t, router, http.MethodPost, "/api/refresh", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"refreshCountdown":60`)
}

func TestIndexPage(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/board")
	assert.NotContains(t, rec.Body.String(), "/api/refresh", "the server loop owns refetching")
}

func TestStationCRUD(t *testing.T) {
	router := newTestRouter(t)

	t.Run("add requires id and name", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/stations", `{"name": "No ID"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("national rail stations require a crs", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/stations", `{"id": "nr-x", "name": "X", "type": "national-rail"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("add, partial update, delete", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/stations", `{"id": "HUBVIC", "name": "Victoria", "type": "tfl", "maxMinutes": 45}`)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodPut, "/api/stations/HUBVIC", `{"minMinutes": 7}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"minMinutes":7`)
		assert.Contains(t, rec.Body.String(), `"maxMinutes":45`, "unspecified fields keep their values")

		rec = doJSON(t, router, http.MethodDelete, "/api/stations/HUBVIC", "")
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodDelete, "/api/stations/HUBVIC", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSettingsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/api/settings", `{"theme": "dark"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"theme":"dark"`)
	assert.Contains(t, rec.Body.String(), `"refreshInterval":60`, "partial update keeps defaults")
}

func TestSearchEndpointShortQuery(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/search?query=a", "")
	require.Equal(t, http.StatusOK, rec.Code)
}
