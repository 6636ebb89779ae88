package award

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressDays(t *testing.T) {
	tests := []struct {
		name string
		days []int
		want string
	}{
		{"empty", nil, ""},
		{"singleton", []int{5}, "5"},
		{"single run", []int{1, 2, 3}, "1-3"},
		{"mixed runs", []int{1, 2, 3, 7, 9, 10}, "1-3,7,9-10"},
		{"unsorted input", []int{10, 1, 9, 3, 2, 7}, "1-3,7,9-10"},
		{"duplicates collapse", []int{5, 5, 6, 6, 6}, "5-6"},
		{"full month", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31}, "1-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompressDays(tt.days))
		})
	}
}

func TestCompressExpandRoundTrip(t *testing.T) {
	sets := [][]int{
		nil,
		{5},
		{1, 2, 3},
		{1, 2, 3, 7, 9, 10},
		{2, 4, 6, 8, 10},
		{1, 31},
	}
	for _, days := range sets {
		expanded, err := ExpandDays(CompressDays(days))
		require.NoError(t, err)
		assert.Equal(t, days, expanded)
	}
}

func TestExpandDaysRejectsGarbage(t *testing.T) {
	for _, s := range []string{"x", "1-", "-3", "5-2", "1,,3"} {
		_, err := ExpandDays(s)
		assert.Error(t, err, "input %q", s)
	}
}
