package config

import (
	"encoding/json"
	"log"
	"os"
	"sync"

	"github.com/arunsworld/departures"
	"github.com/pkg/errors"
)

// Settings are the dashboard-wide display and refresh preferences.
type Settings struct {
	AutoRefresh     bool   `json:"autoRefresh"`
	RefreshInterval int    `json:"refreshInterval"` // seconds
	ShowPlatform    bool   `json:"showPlatform"`
	Theme           string `json:"theme"`
}

// Dashboard is the persisted configuration document.
type Dashboard struct {
	Stations []departures.Station `json:"stations"`
	Settings
}

func defaultDashboard() Dashboard {
	return Dashboard{
		Stations: []departures.Station{},
		Settings: Settings{
			RefreshInterval: 60,
			ShowPlatform:    true,
			Theme:           "system",
		},
	}
}

// Store persists the dashboard document as a single JSON file. Every mutation
// is a read-modify-write that rewrites the whole document.
type Store struct {
	path string

	mu  sync.Mutex
	doc Dashboard
}

// NewStore loads the dashboard document at path, migrating stations persisted
// in older shapes. A missing file yields the default dashboard; an unreadable
// one falls back to the defaults rather than refusing to start.
func NewStore(path string) *Store {
	s := &Store{path: path, doc: defaultDashboard()}
	if err := s.load(); err != nil {
		log.Printf("ERROR loading dashboard document, falling back to defaults: %v", err)
		s.doc = defaultDashboard()
	}
	return s
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "reading dashboard document")
	}
	doc := defaultDashboard()
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, "parsing dashboard document")
	}
	if doc.RefreshInterval <= 0 {
		doc.RefreshInterval = defaultDashboard().RefreshInterval
	}
	if doc.Theme == "" {
		doc.Theme = defaultDashboard().Theme
	}
	for i := range doc.Stations {
		doc.Stations[i] = MigrateStation(doc.Stations[i])
	}
	s.doc = doc
	return nil
}

// save rewrites the full document. Callers hold s.mu.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding dashboard document")
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrap(err, "writing dashboard document")
	}
	return nil
}

// Stations returns a copy of the configured station watches. Implements
// departures.StationProvider.
func (s *Store) Stations() []departures.Station {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]departures.Station, len(s.doc.Stations))
	copy(result, s.doc.Stations)
	return result
}

// Station returns the station with the given id.
func (s *Store) Station(id string) (departures.Station, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, station := range s.doc.Stations {
		if station.ID == id {
			return station, true
		}
	}
	return departures.Station{}, false
}

// Settings returns a copy of the dashboard-wide settings.
func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Settings
}

// AddStation appends a station watch and persists the document.
func (s *Store) AddStation(station departures.Station) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.doc.Stations {
		if existing.ID == station.ID {
			return errors.Errorf("station %s is already configured", station.ID)
		}
	}
	s.doc.Stations = append(s.doc.Stations, MigrateStation(station))
	return s.save()
}

// UpdateStation replaces the station with a matching id and persists the
// document.
func (s *Store) UpdateStation(station departures.Station) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.doc.Stations {
		if existing.ID == station.ID {
			s.doc.Stations[i] = MigrateStation(station)
			return s.save()
		}
	}
	return errors.Errorf("station %s not found", station.ID)
}

// RemoveStation deletes the station with the given id and persists the
// document.
func (s *Store) RemoveStation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.doc.Stations {
		if existing.ID == id {
			s.doc.Stations = append(s.doc.Stations[:i], s.doc.Stations[i+1:]...)
			return s.save()
		}
	}
	return errors.Errorf("station %s not found", id)
}

// ReorderStations moves the station at from to position to and persists the
// document.
func (s *Store) ReorderStations(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if from < 0 || from >= len(s.doc.Stations) || to < 0 || to >= len(s.doc.Stations) {
		return errors.Errorf("reorder out of range: %d -> %d with %d stations", from, to, len(s.doc.Stations))
	}
	moved := s.doc.Stations[from]
	s.doc.Stations = append(s.doc.Stations[:from], s.doc.Stations[from+1:]...)
	s.doc.Stations = append(s.doc.Stations[:to], append([]departures.Station{moved}, s.doc.Stations[to:]...)...)
	return s.save()
}

// UpdateSettings replaces the dashboard-wide settings and persists the
// document.
func (s *Store) UpdateSettings(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if settings.RefreshInterval <= 0 {
		settings.RefreshInterval = defaultDashboard().RefreshInterval
	}
	s.doc.Settings = settings
	return s.save()
}
