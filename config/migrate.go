package config

import (
	"strings"

	"github.com/arunsworld/departures"
)

// MigrateStation upgrades a station persisted in the legacy single-string
// destination filter shape to the multi-destination array shape. A
// destinations array that is already present, even if empty, is left
// untouched. All other fields pass through unchanged; the input is not
// mutated.
func MigrateStation(station departures.Station) departures.Station {
	if station.Destinations == nil {
		if trimmed := strings.TrimSpace(station.DestinationFilter); trimmed != "" {
			station.Destinations = []departures.Destination{
				{ID: "text-" + trimmed, Name: trimmed},
			}
		} else {
			station.Destinations = []departures.Destination{}
		}
	}
	if station.MaxMinutes == 0 {
		station.MaxMinutes = 60
	}
	return station
}
