package lateness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeductedDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		minutes  int
		expected float64
	}{
		{0, 0},
		{359, 0},
		{360, 0.5},
		{599, 0.5},
		{600, 1.0},
		{839, 1.0},
		{840, 1.5},
		{1000, 1.5},
		{1080, 2.0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DeductedDays(tt.minutes), "minutes=%d", tt.minutes)
	}
}

func TestResetDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		today    time.Time
		expected time.Time
	}{
		{
			"before june resets to january",
			time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"june first resets to june",
			time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"after june resets to june",
			time.Date(2026, time.October, 2, 8, 30, 0, 0, time.UTC),
			time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"may thirty first still january",
			time.Date(2026, time.May, 31, 23, 59, 0, 0, time.UTC),
			time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResetDate(tt.today))
		})
	}
}
