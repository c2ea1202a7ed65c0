package entity

import (
	"math"
	"sort"
)

// DaySchedule owns the ordered slot sequence of one day of the studio week.
// Slots stay sorted ascending by their "HH:MM" string; the format is
// zero-padded and fixed-width, so lexicographic order is time order.
type DaySchedule struct {
	Day   string     `json:"day"`  // "Segunda", "Terça", ...
	Date  string     `json:"date"` // "2006-01-02"
	Slots []TimeSlot `json:"slots"`
}

// AddSlot inserts a slot and restores time order.
func (d *DaySchedule) AddSlot(slot TimeSlot) {
	d.Slots = append(d.Slots, slot)
	sort.SliceStable(d.Slots, func(i, j int) bool {
		return d.Slots[i].Time < d.Slots[j].Time
	})
}

// RemoveSlot removes the slot with the given id. Order is preserved, so no
// re-sort is needed. Returns false when the id is not present.
func (d *DaySchedule) RemoveSlot(slotID int64) bool {
	for i, slot := range d.Slots {
		if slot.ID == slotID {
			d.Slots = append(d.Slots[:i], d.Slots[i+1:]...)
			return true
		}
	}
	return false
}

// WeekSchedule is the fixed six-day studio week.
type WeekSchedule struct {
	Days []DaySchedule `json:"days"`
}

func (w *WeekSchedule) Day(label string) (*DaySchedule, bool) {
	for i := range w.Days {
		if w.Days[i].Day == label {
			return &w.Days[i], true
		}
	}
	return nil, false
}

// NextSlotID allocates the next slot identifier: strictly greater than every
// existing id across the whole week, seeded at 1 for an empty week.
func (w *WeekSchedule) NextSlotID() int64 {
	var max int64
	for _, day := range w.Days {
		for _, slot := range day.Slots {
			if slot.ID > max {
				max = slot.ID
			}
		}
	}
	return max + 1
}

func (w *WeekSchedule) TotalCapacity() int {
	total := 0
	for _, day := range w.Days {
		for _, slot := range day.Slots {
			total += slot.MaxCapacity
		}
	}
	return total
}

func (w *WeekSchedule) TotalBookings() int {
	total := 0
	for _, day := range w.Days {
		for _, slot := range day.Slots {
			total += slot.CurrentBookings
		}
	}
	return total
}

// AverageOccupancy returns round(totalBookings/totalCapacity*100), or 0 when
// the week holds no capacity.
func (w *WeekSchedule) AverageOccupancy() int {
	capacity := w.TotalCapacity()
	if capacity == 0 {
		return 0
	}
	return int(math.Round(float64(w.TotalBookings()) / float64(capacity) * 100))
}
