package award

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rennewman-going/alaska-award-scraper/config"
	"github.com/rennewman-going/alaska-award-scraper/models"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.DayPrice
		ok   bool
	}{
		{
			name: "points and tax",
			text: "9\n20k +$6",
			want: models.DayPrice{Day: 9, Points: 20000, Tax: "$6"},
			ok:   true,
		},
		{
			name: "fractional points",
			text: "1\n4.5k +$19",
			want: models.DayPrice{Day: 1, Points: 4500, Tax: "$19"},
			ok:   true,
		},
		{
			name: "no tax",
			text: "14\n7.5k",
			want: models.DayPrice{Day: 14, Points: 7500},
			ok:   true,
		},
		{
			name: "tax with decimals and space",
			text: "28\n12k + $5.60",
			want: models.DayPrice{Day: 28, Points: 12000, Tax: "$5.60"},
			ok:   true,
		},
		{
			name: "uppercase K",
			text: "3\n5K +$11",
			want: models.DayPrice{Day: 3, Points: 5000, Tax: "$11"},
			ok:   true,
		},
		{
			name: "surrounding whitespace",
			text: "  2\n4.5k +$19  ",
			want: models.DayPrice{Day: 2, Points: 4500, Tax: "$19"},
			ok:   true,
		},
		{name: "day only, no offer", text: "12"},
		{name: "sold out text", text: "Sold out"},
		{name: "no leading day", text: "from 4.5k +$19"},
		{name: "empty", text: ""},
		{name: "whitespace only", text: "   \n "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCell(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseMonthDiscardsStrayDays(t *testing.T) {
	april := config.Month{Year: 2026, Month: 4}

	// Day 31 does not exist in April: a stray cell from the adjacent
	// month rendered in the same grid must be dropped.
	got := ParseMonth([]string{
		"30\n7.5k +$6",
		"31\n7.5k +$6",
		"0\n7.5k +$6",
		"Sold out",
		"15\n4.5k +$19",
	}, april)

	assert.Equal(t, []models.DayPrice{
		{Day: 30, Points: 7500, Tax: "$6"},
		{Day: 15, Points: 4500, Tax: "$19"},
	}, got)
}

func TestParseMonthEmpty(t *testing.T) {
	march := config.Month{Year: 2026, Month: 3}
	assert.Empty(t, ParseMonth(nil, march))
	assert.Empty(t, ParseMonth([]string{"closed", "—"}, march))
}
