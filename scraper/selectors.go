package scraper

// Selector ladders for the award calendar page.
// The Auro web components render with unstable class names, so each
// lookup probes several fallbacks in order.
var (
	// Containers that indicate the calendar (or a results grid) rendered.
	loadSelectors = []string{
		`[class*='calendar']`,
		`[class*='Calendar']`,
		`[class*='flight-result']`,
		`[class*='flightResult']`,
		`[class*='availability']`,
		`[class*='Availability']`,
		`[role='grid']`,
		`table`,
	}

	// Day-cell candidates, skipping disabled/empty/adjacent-month cells.
	cellSelectors = []string{
		`[class*='calendar-day']:not([class*='disabled']):not([class*='empty'])`,
		`[class*='CalendarDay']:not([class*='disabled']):not([class*='outside'])`,
		`[class*='day-cell']:not([class*='disabled']):not([class*='empty'])`,
		`[role='gridcell']:not([class*='disabled']):not([class*='empty'])`,
		`td:not([class*='disabled']):not([class*='empty']):not([class*='outside'])`,
	}
)
