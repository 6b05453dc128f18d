package departures

import (
	"fmt"
	"time"
)

// Schedule is a weekly visibility window for a station watch. Days uses
// 0=Sunday..6=Saturday. An empty Days set means the station is never visible;
// that is a valid configuration, not an error.
type Schedule struct {
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM"
	Days      []int  `json:"days"`
}

// DefaultSchedule is the window offered when a user first enables scheduling:
// weekday mornings.
func DefaultSchedule() Schedule {
	return Schedule{
		Enabled:   true,
		StartTime: "04:00",
		EndTime:   "12:00",
		Days:      []int{1, 2, 3, 4, 5},
	}
}

// IsStationVisible decides whether a station should be displayed at now,
// independent of any arrivals. A nil or disabled schedule is always visible.
// The time window is inclusive of its start and exclusive of its end; a window
// whose end precedes its start crosses midnight.
func IsStationVisible(schedule *Schedule, now time.Time) bool {
	if schedule == nil || !schedule.Enabled {
		return true
	}

	local := ldn.convert(now)
	if !containsDay(schedule.Days, int(local.Weekday())) {
		return false
	}

	current := local.Hour()*60 + local.Minute()
	start := minutesOfDay(schedule.StartTime)
	end := minutesOfDay(schedule.EndTime)

	if end < start {
		// overnight window
		return current >= start || current < end
	}
	return current >= start && current < end
}

// FilterVisibleStations returns the stations visible at now, preserving order.
func FilterVisibleStations(stations []Station, now time.Time) []Station {
	result := make([]Station, 0, len(stations))
	for _, station := range stations {
		if IsStationVisible(station.Schedule, now) {
			result = append(result, station)
		}
	}
	return result
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

func minutesOfDay(hhmm string) int {
	var hh, mm int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &hh, &mm); err != nil {
		return 0
	}
	return hh*60 + mm
}
