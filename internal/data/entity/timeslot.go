package entity

import "math"

// MaxSlotCapacity is the ceiling accepted when a slot is created.
// Capacity edits only enforce the lower bound.
const MaxSlotCapacity = 100

type OccupancyBand string

const (
	OccupancyLow      OccupancyBand = "low"
	OccupancyMedium   OccupancyBand = "medium"
	OccupancyHigh     OccupancyBand = "high"
	OccupancyCritical OccupancyBand = "critical"
)

// TimeSlot is one bookable time-of-day unit within a day.
// CurrentBookings is a manually maintained count; it is not coupled to the
// booking collection and may exceed MaxCapacity.
type TimeSlot struct {
	ID              int64  `json:"id"`
	Time            string `json:"time"` // "HH:MM", zero-padded
	MaxCapacity     int    `json:"max_capacity"`
	CurrentBookings int    `json:"current_bookings"`
	Room            string `json:"room"`
	Instructor      string `json:"instructor"`
	ClassType       string `json:"class_type"`
}

// OccupancyPercent returns the rounded occupancy percentage, 0 for an
// empty or zero-capacity slot.
func (s TimeSlot) OccupancyPercent() int {
	return OccupancyPercent(s.CurrentBookings, s.MaxCapacity)
}

func (s TimeSlot) Band() OccupancyBand {
	return ClassifyOccupancy(s.CurrentBookings, s.MaxCapacity)
}

func OccupancyPercent(current, max int) int {
	if max <= 0 {
		return 0
	}
	return int(math.Round(float64(current) / float64(max) * 100))
}

// ClassifyOccupancy maps a current/max ratio to a four-tier band.
// Thresholds are inclusive on the lower edge: >=90% critical, >=70% high,
// >=50% medium, else low.
func ClassifyOccupancy(current, max int) OccupancyBand {
	if max <= 0 {
		return OccupancyLow
	}
	ratio := float64(current) / float64(max) * 100

	switch {
	case ratio >= 90:
		return OccupancyCritical
	case ratio >= 70:
		return OccupancyHigh
	case ratio >= 50:
		return OccupancyMedium
	default:
		return OccupancyLow
	}
}
