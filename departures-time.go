package departures

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Both upstreams report UK local wall-clock times.
type londonConverter struct {
	loc *time.Location
}

func newLondonConverter() *londonConverter {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		panic(err)
	}
	return &londonConverter{
		loc: loc,
	}
}

func (l *londonConverter) convert(input time.Time) time.Time {
	return input.In(l.loc)
}

var ldn = newLondonConverter()

// Never is returned by TimeUntil when no usable time is known. It sorts last,
// never wins a minimum comparison and falls outside any max-minutes window.
const Never = time.Duration(math.MaxInt64)

// TimeUntil converts an "HH:MM" wall-clock string into the duration from now,
// truncated to whole seconds. A time already passed today is taken to mean
// tomorrow; a time equal to now yields zero, not a full day. Blank or
// unparseable input returns Never.
func TimeUntil(timeStr string, now time.Time) time.Duration {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return Never
	}
	var hh, mm int
	if _, err := fmt.Sscanf(timeStr, "%d:%d", &hh, &mm); err != nil {
		return Never
	}
	local := ldn.convert(now)
	target := time.Date(local.Year(), local.Month(), local.Day(), hh, mm, 0, 0, ldn.loc)
	if target.Before(local) {
		target = target.AddDate(0, 0, 1)
	}
	return target.Sub(local).Truncate(time.Second)
}

// FormatMinutes renders a countdown in whole minutes, platform-display style.
// Anything under a minute, including already departed, reads "Due"; hiding
// departed services is the filter engine's job, not the formatter's.
func FormatMinutes(seconds int) string {
	if seconds < 60 {
		return "Due"
	}
	return fmt.Sprintf("%d min", seconds/60)
}
