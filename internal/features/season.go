package features

import (
	"time"

	"github.com/Domenick1991/farecast/internal/domain"
)

const (
	SeasonNone    = 0
	SeasonPeak    = 1
	SeasonWeekend = 2
	SeasonHoliday = 3
)

type monthDay struct {
	month time.Month
	day   int
}

var nationalHolidays = []monthDay{
	{time.August, 15},
	{time.October, 2},
	{time.October, 20},
	{time.December, 25},
}

// A holiday covers the two days before it, the day itself and the day after.
var holidayOffsets = []int{-2, -1, 0, 1}

var peakSeasons = []struct{ from, to monthDay }{
	{monthDay{time.August, 10}, monthDay{time.August, 25}},
	{monthDay{time.December, 20}, monthDay{time.December, 31}},
}

// SeasonalityScore rates the departure date from 0 to 3. The first matching rule wins:
// national holiday window, then Friday to Sunday, then peak season.
func SeasonalityScore(departure time.Time) int {
	date := domain.DateOf(departure)
	switch {
	case isHolidayWindow(date):
		return SeasonHoliday
	case isWeekend(date):
		return SeasonWeekend
	case isPeakSeason(date):
		return SeasonPeak
	default:
		return SeasonNone
	}
}

func isHolidayWindow(date time.Time) bool {
	for _, h := range nationalHolidays {
		holiday := time.Date(date.Year(), h.month, h.day, 0, 0, 0, 0, time.UTC)
		for _, offset := range holidayOffsets {
			if date.Equal(holiday.AddDate(0, 0, offset)) {
				return true
			}
		}
	}
	return false
}

func isWeekend(date time.Time) bool {
	switch date.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return true
	}
	return false
}

func isPeakSeason(date time.Time) bool {
	for _, p := range peakSeasons {
		from := time.Date(date.Year(), p.from.month, p.from.day, 0, 0, 0, 0, time.UTC)
		to := time.Date(date.Year(), p.to.month, p.to.day, 0, 0, 0, 0, time.UTC)
		if !date.Before(from) && !date.After(to) {
			return true
		}
	}
	return false
}
