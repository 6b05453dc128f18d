package departures

import (
	"fmt"
	"sort"
	"strings"
)

var dayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatDays renders a schedule's day set for display.
func FormatDays(days []int) string {
	if len(days) == 0 {
		return ""
	}
	if len(days) == 7 {
		return "every day"
	}
	set := make(map[int]bool, len(days))
	for _, d := range days {
		set[d] = true
	}
	if len(set) == 5 && set[1] && set[2] && set[3] && set[4] && set[5] {
		return "Mon-Fri"
	}
	if len(set) == 2 && set[0] && set[6] {
		return "Sat-Sun"
	}
	sorted := make([]int, 0, len(set))
	for d := range set {
		sorted = append(sorted, d)
	}
	sort.Ints(sorted)
	names := make([]string, 0, len(sorted))
	for _, d := range sorted {
		if d >= 0 && d < len(dayNames) {
			names = append(names, dayNames[d])
		}
	}
	return strings.Join(names, ", ")
}

var modeDisplayNames = map[string]string{
	"tube":           "Tube",
	"dlr":            "DLR",
	"overground":     "Overground",
	"elizabeth-line": "Elizabeth Line",
}

// FormatModes renders a station's modes for display. Only modes with a live
// arrivals feed are shown; everything else (buses, river services) is noise
// on a departures board.
func FormatModes(typ Source, modes []string) string {
	if typ == SourceNationalRail {
		return "National Rail"
	}
	var display []string
	for _, mode := range modes {
		for _, supported := range tflModes {
			if mode == supported {
				name := modeDisplayNames[mode]
				if name == "" {
					name = mode
				}
				display = append(display, name)
				break
			}
		}
	}
	if len(display) == 0 {
		return "TfL"
	}
	return strings.Join(display, ", ")
}

// ModesDisplay renders the station's modes for display.
func (s Station) ModesDisplay() string {
	return FormatModes(s.Type, s.Modes)
}

// ModesDisplay renders the search result's modes for display.
func (r StationSearchResult) ModesDisplay() string {
	return FormatModes(r.Type, r.Modes)
}

// FilterSummary renders the station's filter configuration as a short label
// for the card header, e.g. "to Brighton, >5 min". Returns "" when nothing
// is filtered. The schedule window is only included where space allows.
func (s Station) FilterSummary(includeSchedule bool) string {
	var parts []string

	if len(s.Destinations) > 0 {
		names := make([]string, 0, len(s.Destinations))
		for _, d := range s.Destinations {
			names = append(names, d.Name)
		}
		if len(names) <= 2 {
			parts = append(parts, "to "+strings.Join(names, ", "))
		} else {
			parts = append(parts, fmt.Sprintf("to %s +%d more", names[0], len(names)-1))
		}
	} else if trimmed := strings.TrimSpace(s.DestinationFilter); trimmed != "" {
		parts = append(parts, "to "+trimmed)
	}

	if s.MinMinutes > 0 {
		parts = append(parts, fmt.Sprintf(">%d min", s.MinMinutes))
	}

	if includeSchedule && s.Schedule != nil && s.Schedule.Enabled {
		parts = append(parts, fmt.Sprintf("%s-%s %s",
			s.Schedule.StartTime, s.Schedule.EndTime, FormatDays(s.Schedule.Days)))
	}

	return strings.Join(parts, ", ")
}
