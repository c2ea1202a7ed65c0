package repository

import (
	"context"
	"sort"
	"testing"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newWeekRepo() WeekRepository {
	return NewWeekRepository(SampleWeek(), zap.NewNop())
}

func TestWeekRepository_AddSlotToSampleWeek(t *testing.T) {
	ctx := context.Background()
	repo := newWeekRepo()

	capBefore, bookingsBefore, avgBefore, err := repo.Totals(ctx)
	require.NoError(t, err)

	slot, err := repo.AddSlot(ctx, "Segunda", entity.TimeSlot{
		Time:        "20:00",
		MaxCapacity: 5,
		Room:        "Sala 1",
		Instructor:  "Sarah Costa Silva",
		ClassType:   "Pilates Solo",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(13), slot.ID, "id is allocated past every slot in the week")

	week, err := repo.GetWeek(ctx)
	require.NoError(t, err)
	monday, ok := week.Day("Segunda")
	require.True(t, ok)

	assert.True(t, sort.SliceIsSorted(monday.Slots, func(i, j int) bool {
		return monday.Slots[i].Time < monday.Slots[j].Time
	}), "monday stays ordered by time")

	capAfter, bookingsAfter, avgAfter, err := repo.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, capBefore+5, capAfter)
	assert.Equal(t, bookingsBefore, bookingsAfter)
	assert.LessOrEqual(t, avgAfter, avgBefore, "adding empty capacity never raises occupancy")
}

func TestWeekRepository_AddSlotUnknownDay(t *testing.T) {
	repo := newWeekRepo()

	_, err := repo.AddSlot(context.Background(), "Domingo", entity.TimeSlot{Time: "09:00", MaxCapacity: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestWeekRepository_UpdateSlotCapacity(t *testing.T) {
	ctx := context.Background()
	repo := newWeekRepo()

	slot, err := repo.UpdateSlotCapacity(ctx, 1, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, slot.MaxCapacity)
	assert.Equal(t, 5, slot.CurrentBookings, "booking count untouched by capacity edit")

	_, err = repo.UpdateSlotCapacity(ctx, 999, 9)
	require.Error(t, err)
}

func TestWeekRepository_RemoveSlot(t *testing.T) {
	ctx := context.Background()
	repo := newWeekRepo()

	require.NoError(t, repo.RemoveSlot(ctx, "Sábado", 12))

	week, err := repo.GetWeek(ctx)
	require.NoError(t, err)
	saturday, _ := week.Day("Sábado")
	assert.Empty(t, saturday.Slots)

	assert.Error(t, repo.RemoveSlot(ctx, "Sábado", 12))
	assert.Error(t, repo.RemoveSlot(ctx, "Domingo", 1))
}

func TestWeekRepository_GetWeekReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := newWeekRepo()

	week, err := repo.GetWeek(ctx)
	require.NoError(t, err)
	week.Days[0].Slots[0].MaxCapacity = 999

	fresh, err := repo.GetWeek(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, 999, fresh.Days[0].Slots[0].MaxCapacity)
}
