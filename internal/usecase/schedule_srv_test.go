package usecase

import (
	"context"
	"testing"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/repository"
	"github.com/waysterMelo/sarah-pilates-sub001/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newScheduleTestService() ScheduleService {
	log := zap.NewNop()
	return NewScheduleService(repository.NewWeekRepository(repository.SampleWeek(), log), log)
}

func TestScheduleAddSlotAllocatesNextID(t *testing.T) {
	srv := newScheduleTestService()

	slot, err := srv.AddSlot(context.Background(), "Segunda", &request.CreateSlotRequest{
		Time:        "20:00",
		MaxCapacity: 5,
		Room:        "Sala 2",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(13), slot.ID)
	assert.Equal(t, 0, slot.CurrentBookings)
	assert.Equal(t, "low", slot.OccupancyBand)
}

func TestScheduleAddSlotCapacityBounds(t *testing.T) {
	srv := newScheduleTestService()
	ctx := context.Background()

	_, err := srv.AddSlot(ctx, "Segunda", &request.CreateSlotRequest{Time: "20:00", MaxCapacity: 0})
	assert.Error(t, err)

	_, err = srv.AddSlot(ctx, "Segunda", &request.CreateSlotRequest{Time: "20:00", MaxCapacity: 101})
	assert.Error(t, err)

	_, err = srv.AddSlot(ctx, "Segunda", &request.CreateSlotRequest{Time: "20:00", MaxCapacity: 100})
	assert.NoError(t, err)
}

func TestScheduleAddSlotRejectsBadTime(t *testing.T) {
	srv := newScheduleTestService()

	_, err := srv.AddSlot(context.Background(), "Segunda", &request.CreateSlotRequest{
		Time:        "8h30",
		MaxCapacity: 5,
	})
	assert.Error(t, err)
}

func TestScheduleAddSlotUnknownDay(t *testing.T) {
	srv := newScheduleTestService()

	_, err := srv.AddSlot(context.Background(), "Domingo", &request.CreateSlotRequest{
		Time:        "09:00",
		MaxCapacity: 5,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

// Capacity edits only enforce the lower bound: shrinking below the current
// booking count is allowed and pushes the occupancy above 100%.
func TestScheduleUpdateCapacityAsymmetricBounds(t *testing.T) {
	srv := newScheduleTestService()
	ctx := context.Background()

	_, err := srv.UpdateSlotCapacity(ctx, 1, &request.UpdateCapacityRequest{MaxCapacity: 0})
	assert.Error(t, err)

	slot, err := srv.UpdateSlotCapacity(ctx, 1, &request.UpdateCapacityRequest{MaxCapacity: 150})
	require.NoError(t, err)
	assert.Equal(t, 150, slot.MaxCapacity)

	slot, err = srv.UpdateSlotCapacity(ctx, 1, &request.UpdateCapacityRequest{MaxCapacity: 4})
	require.NoError(t, err)
	assert.Equal(t, 5, slot.CurrentBookings)
	assert.Equal(t, 125, slot.OccupancyPercent)
	assert.Equal(t, "critical", slot.OccupancyBand)
}

func TestScheduleDeleteSlot(t *testing.T) {
	srv := newScheduleTestService()
	ctx := context.Background()

	require.NoError(t, srv.DeleteSlot(ctx, "Sábado", 12))

	week, err := srv.GetWeek(ctx)
	require.NoError(t, err)
	assert.Empty(t, week.Days[5].Slots)

	assert.Error(t, srv.DeleteSlot(ctx, "Sábado", 12))
}

func TestScheduleStats(t *testing.T) {
	srv := newScheduleTestService()

	stats, err := srv.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 92, stats.TotalCapacity)
	assert.Equal(t, 60, stats.TotalBookings)
	assert.Equal(t, 65, stats.AverageOccupancy)
}
