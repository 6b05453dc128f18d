package departures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDays(t *testing.T) {
	assert.Equal(t, "", FormatDays(nil))
	assert.Equal(t, "every day", FormatDays([]int{0, 1, 2, 3, 4, 5, 6}))
	assert.Equal(t, "Mon-Fri", FormatDays([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, "Sat-Sun", FormatDays([]int{0, 6}))
	assert.Equal(t, "Sun, Tue", FormatDays([]int{2, 0}))
}

func TestFormatModes(t *testing.T) {
	for _, tc := range []struct {
		name     string
		typ      Source
		modes    []string
		expected string
	}{
		{"national rail ignores modes", SourceNationalRail, []string{"tube"}, "National Rail"},
		{"single mode", SourceTfL, []string{"tube"}, "Tube"},
		{"unsupported modes are dropped", SourceTfL, []string{"tube", "bus", "dlr"}, "Tube, DLR"},
		{"elizabeth line display name", SourceTfL, []string{"elizabeth-line"}, "Elizabeth Line"},
		{"no supported modes falls back", SourceTfL, []string{"bus", "river-bus"}, "TfL"},
		{"no modes at all falls back", SourceTfL, nil, "TfL"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatModes(tc.typ, tc.modes))
		})
	}

	station := Station{Type: SourceTfL, Modes: []string{"overground"}}
	assert.Equal(t, "Overground", station.ModesDisplay())
	result := StationSearchResult{Type: SourceNationalRail}
	assert.Equal(t, "National Rail", result.ModesDisplay())
}

func TestFilterSummary(t *testing.T) {
	t.Run("no filters yields empty", func(t *testing.T) {
		assert.Equal(t, "", Station{}.FilterSummary(false))
	})

	t.Run("up to two destinations are listed", func(t *testing.T) {
		s := Station{Destinations: []Destination{{Name: "Brighton"}, {Name: "Hove"}}}
		assert.Equal(t, "to Brighton, Hove", s.FilterSummary(false))
	})

	t.Run("more than two destinations are summarised", func(t *testing.T) {
		s := Station{Destinations: []Destination{{Name: "Brighton"}, {Name: "Hove"}, {Name: "Lewes"}}}
		assert.Equal(t, "to Brighton +2 more", s.FilterSummary(false))
	})

	t.Run("legacy filter is shown when no destinations exist", func(t *testing.T) {
		s := Station{DestinationFilter: " Victoria "}
		assert.Equal(t, "to Victoria", s.FilterSummary(false))
	})

	t.Run("walk time is appended", func(t *testing.T) {
		s := Station{
			Destinations: []Destination{{Name: "Brighton"}},
			MinMinutes:   5,
		}
		assert.Equal(t, "to Brighton, >5 min", s.FilterSummary(false))
	})

	t.Run("schedule is only included on request", func(t *testing.T) {
		schedule := DefaultSchedule()
		s := Station{MinMinutes: 5, Schedule: &schedule}
		assert.Equal(t, ">5 min", s.FilterSummary(false))
		assert.Equal(t, ">5 min, 04:00-12:00 Mon-Fri", s.FilterSummary(true))
	})

	t.Run("disabled schedule is never shown", func(t *testing.T) {
		s := Station{Schedule: &Schedule{Enabled: false, StartTime: "09:00", EndTime: "17:00"}}
		assert.Equal(t, "", s.FilterSummary(true))
	})
}
