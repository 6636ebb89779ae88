package award

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// CompressDays renders a set of day numbers in compact range notation:
// {1,2,3,7,9,10} → "1-3,7,9-10". Duplicates collapse, output is
// ascending, and an empty set renders as "".
func CompressDays(days []int) string {
	if len(days) == 0 {
		return ""
	}

	uniq := make([]int, 0, len(days))
	seen := make(map[int]bool, len(days))
	for _, d := range days {
		if !seen[d] {
			seen[d] = true
			uniq = append(uniq, d)
		}
	}
	sort.Ints(uniq)

	var parts []string
	start, prev := uniq[0], uniq[0]
	flush := func() {
		if start == prev {
			parts = append(parts, strconv.Itoa(start))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", start, prev))
		}
	}
	for _, d := range uniq[1:] {
		if d == prev+1 {
			prev = d
			continue
		}
		flush()
		start, prev = d, d
	}
	flush()

	return strings.Join(parts, ",")
}

// ExpandDays is the inverse of CompressDays: "1-3,7" → [1 2 3 7].
// An empty string expands to no days.
func ExpandDays(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var days []int
	for _, part := range strings.Split(s, ",") {
		lo, hi, ok := strings.Cut(part, "-")
		first, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("bad day range %q: %w", part, err)
		}
		last := first
		if ok {
			if last, err = strconv.Atoi(hi); err != nil {
				return nil, fmt.Errorf("bad day range %q: %w", part, err)
			}
		}
		if last < first {
			return nil, fmt.Errorf("bad day range %q: descending", part)
		}
		for d := first; d <= last; d++ {
			days = append(days, d)
		}
	}
	return days, nil
}
