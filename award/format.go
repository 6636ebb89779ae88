package award

import "fmt"

// FormatPoints renders an award price the way the calendar shows it:
// "5k" when evenly divisible by 1000, otherwise one decimal digit
// ("4.5k").
func FormatPoints(points int) string {
	if points%1000 == 0 {
		return fmt.Sprintf("%dk", points/1000)
	}
	return fmt.Sprintf("%.1fk", float64(points)/1000)
}
