package departures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allDays = []int{0, 1, 2, 3, 4, 5, 6}

func TestIsStationVisible(t *testing.T) {
	t.Run("nil schedule is always visible", func(t *testing.T) {
		assert.True(t, IsStationVisible(nil, londonTime(t, 3, 0)))
	})

	t.Run("disabled schedule is always visible", func(t *testing.T) {
		s := &Schedule{Enabled: false, StartTime: "09:00", EndTime: "17:00", Days: allDays}
		assert.True(t, IsStationVisible(s, londonTime(t, 3, 0)))
	})

	t.Run("empty days is never visible", func(t *testing.T) {
		s := &Schedule{Enabled: true, StartTime: "00:00", EndTime: "23:59", Days: []int{}}
		assert.False(t, IsStationVisible(s, londonTime(t, 12, 0)))
	})

	t.Run("day check short-circuits the time window", func(t *testing.T) {
		// 2026-08-24 is a Monday
		s := &Schedule{Enabled: true, StartTime: "00:00", EndTime: "23:59", Days: []int{2}}
		assert.False(t, IsStationVisible(s, londonTime(t, 12, 0)))
	})

	t.Run("start inclusive, end exclusive", func(t *testing.T) {
		s := &Schedule{Enabled: true, StartTime: "09:00", EndTime: "17:00", Days: allDays}
		assert.False(t, IsStationVisible(s, londonTime(t, 8, 59)))
		assert.True(t, IsStationVisible(s, londonTime(t, 9, 0)))
		assert.True(t, IsStationVisible(s, londonTime(t, 16, 59)))
		assert.False(t, IsStationVisible(s, londonTime(t, 17, 0)))
	})

	t.Run("overnight window crosses midnight", func(t *testing.T) {
		s := &Schedule{Enabled: true, StartTime: "22:00", EndTime: "06:00", Days: allDays}
		assert.True(t, IsStationVisible(s, londonTime(t, 23, 0)))
		assert.True(t, IsStationVisible(s, londonTime(t, 5, 0)))
		assert.True(t, IsStationVisible(s, londonTime(t, 22, 0)))
		assert.False(t, IsStationVisible(s, londonTime(t, 6, 0)))
		assert.False(t, IsStationVisible(s, londonTime(t, 12, 0)))
	})
}

func TestFilterVisibleStations(t *testing.T) {
	night := &Schedule{Enabled: true, StartTime: "22:00", EndTime: "06:00", Days: allDays}
	stations := []Station{
		{ID: "a", Name: "Always"},
		{ID: "b", Name: "Nights", Schedule: night},
		{ID: "c", Name: "Also always", Schedule: &Schedule{Enabled: false}},
	}

	visible := FilterVisibleStations(stations, londonTime(t, 12, 0))
	assert.Equal(t, []string{"a", "c"}, stationIDs(visible))

	visible = FilterVisibleStations(stations, londonTime(t, 23, 0))
	assert.Equal(t, []string{"a", "b", "c"}, stationIDs(visible), "order preserved")
}

func stationIDs(stations []Station) []string {
	ids := make([]string, 0, len(stations))
	for _, s := range stations {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestDefaultSchedule(t *testing.T) {
	s := DefaultSchedule()
	assert.True(t, s.Enabled)
	assert.Equal(t, "04:00", s.StartTime)
	assert.Equal(t, "12:00", s.EndTime)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Days)
}
