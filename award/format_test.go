package award

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPoints(t *testing.T) {
	tests := []struct {
		points int
		want   string
	}{
		{5000, "5k"},
		{4500, "4.5k"},
		{7500, "7.5k"},
		{12000, "12k"},
		{500, "0.5k"},
		{0, "0k"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPoints(tt.points), "points %d", tt.points)
	}
}
