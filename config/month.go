package config

import "time"

// Month is one calendar month of the scan window.
type Month struct {
	Year  int
	Month int
}

// Label renders the month the way the spreadsheet template names its
// columns, e.g. "Mar 2026".
func (m Month) Label() string {
	return m.time().Format("Jan 2006")
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	// day 0 of the next month is the last day of this one
	return time.Date(m.Year, time.Month(m.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Prev returns the calendar month immediately before m.
func (m Month) Prev() Month {
	t := m.time().AddDate(0, -1, 0)
	return Month{Year: t.Year(), Month: int(t.Month())}
}

// Next returns the calendar month immediately after m.
func (m Month) Next() Month {
	t := m.time().AddDate(0, 1, 0)
	return Month{Year: t.Year(), Month: int(t.Month())}
}

func (m Month) time() time.Time {
	return time.Date(m.Year, time.Month(m.Month), 1, 0, 0, 0, 0, time.UTC)
}
