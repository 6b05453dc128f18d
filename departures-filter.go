package departures

import (
	"math"
	"strings"
	"time"
)

// FilterOptions configures the arrival filter for one station watch.
// Destinations takes precedence: when non-empty, DestinationFilter is ignored
// entirely. A zero MaxMinutes means the default window of 60 minutes.
type FilterOptions struct {
	MinMinutes        int
	MaxMinutes        int
	Destinations      []Destination
	DestinationFilter string
}

// FilterArrivals computes each arrival's live countdown against now, drops
// departed, out-of-window and non-matching arrivals, and returns the rest
// annotated in input order. It is pure and cheap: callers re-run it every
// tick over the last fetched batch to keep countdowns live without
// re-fetching.
func FilterArrivals(arrivals []Arrival, opts FilterOptions, now time.Time) []FilteredArrival {
	maxMinutes := opts.MaxMinutes
	if maxMinutes <= 0 {
		maxMinutes = 60
	}
	minSeconds := opts.MinMinutes * 60
	maxSeconds := maxMinutes * 60

	result := make([]FilteredArrival, 0, len(arrivals))
	for _, arrival := range arrivals {
		timeToStation := int(math.Floor(arrival.ExpectedDeparture.Sub(now).Seconds()))
		if timeToStation < 0 {
			continue
		}
		if timeToStation < minSeconds {
			continue
		}
		if timeToStation > maxSeconds {
			continue
		}
		if !matchesDestinations(arrival, opts) {
			continue
		}
		result = append(result, FilteredArrival{
			Arrival:       arrival,
			TimeToStation: timeToStation,
		})
	}
	return result
}

func matchesDestinations(arrival Arrival, opts FilterOptions) bool {
	if len(opts.Destinations) > 0 {
		for _, destination := range opts.Destinations {
			if matchesDestination(arrival, destination) {
				return true
			}
		}
		return false
	}
	term := strings.ToLower(strings.TrimSpace(opts.DestinationFilter))
	if term == "" {
		return true
	}
	return arrivalContains(arrival, term)
}

// matchesDestination is a case-insensitive substring match of the
// destination's name or station code against the arrival's destination name
// and calling points.
func matchesDestination(arrival Arrival, destination Destination) bool {
	if name := strings.ToLower(destination.Name); name != "" && arrivalContains(arrival, name) {
		return true
	}
	if crs := strings.ToLower(destination.CRS); crs != "" && arrivalContains(arrival, crs) {
		return true
	}
	return false
}

func arrivalContains(arrival Arrival, term string) bool {
	if strings.Contains(strings.ToLower(arrival.DestinationName), term) {
		return true
	}
	for _, point := range arrival.CallingPoints {
		if strings.Contains(strings.ToLower(point), term) {
			return true
		}
	}
	return false
}
