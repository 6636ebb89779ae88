package models

// DayPrice is one parsed calendar cell: an award offer for a single day.
// Tax is empty when the cell carried no tax token.
type DayPrice struct {
	Day    int    `json:"day"`
	Points int    `json:"points"`
	Tax    string `json:"tax,omitempty"`
}

// MonthKey identifies one calendar month of the scan window.
type MonthKey struct {
	Year  int
	Month int
}

// MonthCache holds the raw per-month records for one route direction.
// It is populated once during pass 1 and read-only during pass 2.
type MonthCache map[MonthKey][]DayPrice

// RouteResult is the reduced outcome of one route direction.
// MonthDays maps a month label ("Mar 2026") to the days priced exactly at
// AbsMin. When HasMin is false the route had no availability within its
// threshold: every day list is empty and AbsMin/Tax are meaningless.
type RouteResult struct {
	MonthDays map[string][]int
	AbsMin    int
	HasMin    bool
	Tax       string
}

// AirportResult pairs both route directions for one origin airport.
// Direction D (ToDest) is airport→destination, R (FromDest) the reverse.
type AirportResult struct {
	Airport  string
	Index    int // original position in the airports slice — preserves output order
	ToDest   RouteResult
	FromDest RouteResult
	Err      error
}
