package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWeek() WeekSchedule {
	return WeekSchedule{
		Days: []DaySchedule{
			{
				Day:  "Segunda",
				Date: "2026-08-24",
				Slots: []TimeSlot{
					{ID: 1, Time: "07:00", MaxCapacity: 6, CurrentBookings: 5},
					{ID: 2, Time: "09:00", MaxCapacity: 8, CurrentBookings: 4},
				},
			},
			{
				Day:  "Terça",
				Date: "2026-08-25",
				Slots: []TimeSlot{
					{ID: 3, Time: "08:00", MaxCapacity: 6, CurrentBookings: 3},
				},
			},
		},
	}
}

func TestDaySchedule_AddSlotKeepsTimeOrder(t *testing.T) {
	week := testWeek()
	day, ok := week.Day("Segunda")
	require.True(t, ok)

	day.AddSlot(TimeSlot{ID: 4, Time: "08:00", MaxCapacity: 5})

	times := make([]string, 0, len(day.Slots))
	for _, slot := range day.Slots {
		times = append(times, slot.Time)
	}
	assert.Equal(t, []string{"07:00", "08:00", "09:00"}, times)
}

func TestDaySchedule_RemoveSlot(t *testing.T) {
	week := testWeek()
	day, _ := week.Day("Segunda")

	assert.True(t, day.RemoveSlot(1))
	assert.Len(t, day.Slots, 1)
	assert.Equal(t, int64(2), day.Slots[0].ID)

	// removing an unknown id is reported, state unchanged
	assert.False(t, day.RemoveSlot(99))
	assert.Len(t, day.Slots, 1)
}

func TestWeekSchedule_NextSlotID(t *testing.T) {
	week := testWeek()
	assert.Equal(t, int64(4), week.NextSlotID())

	// allocation is global across days, not per day
	day, _ := week.Day("Terça")
	day.AddSlot(TimeSlot{ID: 7, Time: "10:00", MaxCapacity: 4})
	assert.Equal(t, int64(8), week.NextSlotID())

	empty := WeekSchedule{}
	assert.Equal(t, int64(1), empty.NextSlotID())
}

func TestWeekSchedule_Totals(t *testing.T) {
	week := testWeek()
	assert.Equal(t, 20, week.TotalCapacity())
	assert.Equal(t, 12, week.TotalBookings())
	assert.Equal(t, 60, week.AverageOccupancy())
}

func TestWeekSchedule_AverageOccupancyEmptyWeek(t *testing.T) {
	empty := WeekSchedule{}
	assert.Equal(t, 0, empty.AverageOccupancy())

	noCapacity := WeekSchedule{Days: []DaySchedule{{Day: "Segunda"}}}
	assert.Equal(t, 0, noCapacity.AverageOccupancy())
}

func TestWeekSchedule_AddSlotNeverRaisesOccupancy(t *testing.T) {
	week := testWeek()
	before := week.AverageOccupancy()
	capBefore := week.TotalCapacity()
	bookingsBefore := week.TotalBookings()

	day, _ := week.Day("Segunda")
	slot := TimeSlot{ID: week.NextSlotID(), Time: "20:00", MaxCapacity: 5, Room: "Sala 1", Instructor: "Sarah Costa Silva", ClassType: "Pilates Solo"}
	day.AddSlot(slot)

	assert.Equal(t, capBefore+5, week.TotalCapacity())
	assert.Equal(t, bookingsBefore, week.TotalBookings())
	assert.LessOrEqual(t, week.AverageOccupancy(), before)
}
