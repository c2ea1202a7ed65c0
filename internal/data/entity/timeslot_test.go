package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyOccupancy_Bands(t *testing.T) {
	tests := []struct {
		name    string
		current int
		max     int
		want    OccupancyBand
	}{
		{"critical at 90", 9, 10, OccupancyCritical},
		{"critical above 90", 10, 10, OccupancyCritical},
		{"high at 70", 7, 10, OccupancyHigh},
		{"high below 90", 89, 100, OccupancyHigh},
		{"medium at 50", 5, 10, OccupancyMedium},
		{"medium below 70", 69, 100, OccupancyMedium},
		{"low at 40", 4, 10, OccupancyLow},
		{"low when empty", 0, 10, OccupancyLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyOccupancy(tt.current, tt.max))
		})
	}
}

func TestClassifyOccupancy_ZeroCapacity(t *testing.T) {
	assert.Equal(t, OccupancyLow, ClassifyOccupancy(0, 0))
	assert.Equal(t, OccupancyLow, ClassifyOccupancy(5, 0))
}

func TestOccupancyPercent(t *testing.T) {
	assert.Equal(t, 0, OccupancyPercent(3, 0))
	assert.Equal(t, 50, OccupancyPercent(5, 10))
	assert.Equal(t, 67, OccupancyPercent(2, 3))

	// overbooked slots are reported as-is, not clamped
	assert.Equal(t, 120, OccupancyPercent(12, 10))
}
