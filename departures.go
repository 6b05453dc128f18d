// Package departures merges live departure data from TfL and National Rail
// into a single normalised board, filtered per user-configured station watches.
package departures

import (
	"time"
)

// Source identifies which upstream produced a record.
type Source string

const (
	SourceTfL          Source = "tfl"
	SourceNationalRail Source = "national-rail"
)

// Arrival is the common record every adapter normalises into. ExpectedDeparture
// is fixed to an absolute instant at fetch time; both upstreams only report
// relative or wall-clock times, so countdowns are re-derived from this instant
// rather than from a stale offset.
type Arrival struct {
	ID                string    `json:"id"`
	ExpectedDeparture time.Time `json:"expectedDeparture"`
	DestinationName   string    `json:"destinationName"`
	CallingPoints     []string  `json:"callingPoints,omitempty"`
	LineName          string    `json:"lineName"`
	LineID            string    `json:"lineId"`
	ModeName          string    `json:"modeName"`
	PlatformName      string    `json:"platformName,omitempty"`
	Delayed           bool      `json:"delayed,omitempty"`
	Operator          string    `json:"operator,omitempty"`
	Source            Source    `json:"source"`
}

// FilteredArrival annotates an Arrival with its live countdown, recomputed on
// every evaluation rather than only at fetch time.
type FilteredArrival struct {
	Arrival
	TimeToStation int `json:"timeToStation"` // seconds, signed
}

// Countdown renders the live countdown as a display label.
func (fa FilteredArrival) Countdown() string {
	return FormatMinutes(fa.TimeToStation)
}

// Destination is a user-configured filter target. CRS is a National Rail
// station code and may be empty.
type Destination struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	CRS  string `json:"crs,omitempty"`
}

// Station is a persisted station watch.
type Station struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Type         Source        `json:"type"`
	CRS          string        `json:"crs,omitempty"`
	Modes        []string      `json:"modes,omitempty"`
	MinMinutes   int           `json:"minMinutes"`
	MaxMinutes   int           `json:"maxMinutes"`
	Destinations []Destination `json:"destinations"`
	// DestinationFilter is the legacy free-text filter, retained for
	// backwards compatibility with older persisted documents.
	DestinationFilter string    `json:"destinationFilter,omitempty"`
	Schedule          *Schedule `json:"schedule"`
}

// FilterOptions returns the arrival filter configuration for this station.
func (s Station) FilterOptions() FilterOptions {
	return FilterOptions{
		MinMinutes:        s.MinMinutes,
		MaxMinutes:        s.MaxMinutes,
		Destinations:      s.Destinations,
		DestinationFilter: s.DestinationFilter,
	}
}

// StationSearchResult is a station found via search, before being added to
// the dashboard configuration.
type StationSearchResult struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Type  Source   `json:"type"`
	Modes []string `json:"modes"`
	CRS   string   `json:"crs,omitempty"`
}
