package service

import (
	"fmt"
	"time"

	"github.com/sangkips/salesledger/internal/domain/enum"
)

// RevenueWindow is the inclusive date range a revenue period is computed over
type RevenueWindow struct {
	Period enum.RevenuePeriod
	Start  time.Time
	End    time.Time
}

// DeriveWindow returns the window of one period for a base range.
// Every window starts at start; only the end differs:
//
//	daily    end (the caller's range, unchanged)
//	weekly   start + 6 days
//	monthly  last day of start's month
//	annual   December 31 of start's year
//
// The clock time of start is kept on derived ends. Each window depends only
// on (start, end), never on another period's window.
func DeriveWindow(period enum.RevenuePeriod, start, end time.Time) (RevenueWindow, error) {
	w := RevenueWindow{Period: period, Start: start}

	switch period {
	case enum.RevenuePeriodDaily:
		w.End = end
	case enum.RevenuePeriodWeekly:
		w.End = start.AddDate(0, 0, 6)
	case enum.RevenuePeriodMonthly:
		w.End = endOfMonth(start)
	case enum.RevenuePeriodAnnual:
		w.End = endOfYear(start)
	default:
		return RevenueWindow{}, fmt.Errorf("unknown revenue period %v", period)
	}

	return w, nil
}

// DeriveWindows returns the windows of every period in reporting order
func DeriveWindows(start, end time.Time) []RevenueWindow {
	periods := enum.RevenuePeriods()
	windows := make([]RevenueWindow, len(periods))
	for i, p := range periods {
		// periods come from the enum itself, so derivation cannot fail
		windows[i], _ = DeriveWindow(p, start, end)
	}
	return windows
}

// endOfMonth is the first day of the following month minus one day.
// time.Date normalizes month 13 to January of the next year.
func endOfMonth(t time.Time) time.Time {
	firstOfNext := time.Date(t.Year(), t.Month()+1, 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	return firstOfNext.AddDate(0, 0, -1)
}

// endOfYear is January 1 of the following year minus one day
func endOfYear(t time.Time) time.Time {
	firstOfNext := time.Date(t.Year()+1, time.January, 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	return firstOfNext.AddDate(0, 0, -1)
}
