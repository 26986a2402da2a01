package features

import (
	"time"

	"github.com/Domenick1991/farecast/internal/domain"
)

type BookingWindow string

const (
	WindowLastMinute    BookingWindow = "Last_Minute"
	WindowOneWeekOut    BookingWindow = "One_Week_Out"
	WindowTwoWeeksOut   BookingWindow = "Two_Weeks_Out"
	WindowOneMonthOut   BookingWindow = "One_Month_Out"
	WindowMoreThanMonth BookingWindow = "More_Than_Month"
)

var BookingWindows = []BookingWindow{
	WindowLastMinute,
	WindowOneWeekOut,
	WindowTwoWeeksOut,
	WindowOneMonthOut,
	WindowMoreThanMonth,
}

func BookingWindowFor(daysLeft int) BookingWindow {
	switch {
	case daysLeft <= 2:
		return WindowLastMinute
	case daysLeft <= 7:
		return WindowOneWeekOut
	case daysLeft <= 15:
		return WindowTwoWeeksOut
	case daysLeft <= 30:
		return WindowOneMonthOut
	default:
		return WindowMoreThanMonth
	}
}

// DaysLeft counts calendar days from today to departure. Clock time is ignored on both sides.
func DaysLeft(departure, today time.Time) int {
	return int(domain.DateOf(departure).Sub(domain.DateOf(today)).Hours() / 24)
}
