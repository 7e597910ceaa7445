package domain

import "time"

// Period is a rolling classification window used to scope aggregation.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// Periods lists the valid periods in presentation order.
func Periods() []Period {
	return []Period{PeriodWeek, PeriodMonth, PeriodAll}
}

// Valid reports whether p is a recognized period.
func (p Period) Valid() bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodAll:
		return true
	default:
		return false
	}
}

// StartOfWeek returns the Monday of the week containing ref, at midnight in
// ref's location. Weeks start Monday per ISO convention, not Sunday.
func StartOfWeek(ref time.Time) time.Time {
	back := (int(ref.Weekday()) + 6) % 7 // Mon=0 .. Sun=6
	y, m, d := ref.AddDate(0, 0, -back).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ref.Location())
}

// StartOfMonth returns the first day of ref's month, at midnight in ref's
// location.
func StartOfMonth(ref time.Time) time.Time {
	y, m, _ := ref.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, ref.Location())
}

// InPeriod reports whether a run date falls inside the period window
// relative to ref. Week and month windows are open-ended forward: a run
// dated after ref still counts as long as it is on or after the window
// start. An unparseable date only matches the all-time period.
func InPeriod(runDate string, p Period, ref time.Time) bool {
	switch p {
	case PeriodWeek:
		t, err := time.ParseInLocation(DateLayout, runDate, ref.Location())
		return err == nil && !t.Before(StartOfWeek(ref))
	case PeriodMonth:
		t, err := time.ParseInLocation(DateLayout, runDate, ref.Location())
		return err == nil && !t.Before(StartOfMonth(ref))
	default:
		return true
	}
}
