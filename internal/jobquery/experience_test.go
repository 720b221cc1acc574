package jobquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeExperience(t *testing.T) {
	tests := []struct {
		raw      string
		maxYears int
		want     string
	}{
		{"0-5 years", 0, "0-5 years"},     // known label wins
		{"5-10 years", 2, "5-10 years"},   // label wins over the numeric hint
		{"", 5, "0-5 years"},              // derived from max
		{"3 to 7 yrs", 7, "5-10 years"},   // free-form falls back to max
		{"", 12, "10-15 years"},
		{"", 30, "15+ years"},
	}

	for _, tt := range tests {
		got := NormalizeExperience(tt.raw, tt.maxYears)
		assert.Equal(t, tt.want, got, "raw=%q max=%d", tt.raw, tt.maxYears)
		assert.True(t, KnownExperienceBracket(got), "normalized value must be canonical")
	}
}
