package repository

import (
	"context"
	"testing"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingRepo(seed []entity.Booking) BookingRepository {
	return NewBookingRepository(seed, zap.NewNop())
}

func TestBookingRepository_CreateAllocatesMaxPlusOne(t *testing.T) {
	repo := newBookingRepo([]entity.Booking{
		{ID: 1, StudentName: "A"},
		{ID: 2, StudentName: "B"},
		{ID: 5, StudentName: "C"},
	})

	booking := entity.Booking{StudentID: 1, Date: "2026-09-01"}
	require.NoError(t, repo.Create(context.Background(), &booking))
	assert.Equal(t, int64(6), booking.ID)
	assert.False(t, booking.CreatedAt.IsZero())
}

func TestBookingRepository_CreateInEmptyCollection(t *testing.T) {
	repo := newBookingRepo(nil)

	booking := entity.Booking{StudentID: 1}
	require.NoError(t, repo.Create(context.Background(), &booking))
	assert.Equal(t, int64(1), booking.ID)
}

func TestBookingRepository_FindByIDReturnsNilWhenMissing(t *testing.T) {
	repo := newBookingRepo(SampleBookings())

	found, err := repo.FindByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestBookingRepository_UpdatePreservesCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := newBookingRepo(SampleBookings())

	original, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, original)

	changed := original.Clone()
	changed.Notes = "remarcado"
	changed.CreatedAt = changed.CreatedAt.AddDate(1, 0, 0)
	require.NoError(t, repo.Update(ctx, &changed))

	reloaded, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "remarcado", reloaded.Notes)
	assert.Equal(t, original.CreatedAt, reloaded.CreatedAt)
}

func TestBookingRepository_SetStatusIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newBookingRepo(SampleBookings())

	before, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, entity.BookingStatusConfirmed, before.Status)

	after, err := repo.SetStatus(ctx, 1, entity.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, *before, *after)
}

func TestBookingRepository_ListFilters(t *testing.T) {
	ctx := context.Background()
	repo := newBookingRepo(SampleBookings())

	scheduled, err := repo.List(ctx, BookingFilter{Status: entity.BookingStatusScheduled})
	require.NoError(t, err)
	assert.Len(t, scheduled, 2)

	byName, err := repo.List(ctx, BookingFilter{Search: "maria"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Maria Oliveira", byName[0].StudentName)

	byDate, err := repo.List(ctx, BookingFilter{Date: "2026-08-24"})
	require.NoError(t, err)
	assert.Len(t, byDate, 1)
}

func TestBookingRepository_FindBetweenInclusive(t *testing.T) {
	ctx := context.Background()
	repo := newBookingRepo(SampleBookings())

	found, err := repo.FindBetween(ctx, "2026-08-24", "2026-08-25")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	all, err := repo.FindBetween(ctx, "2026-08-24", "2026-08-28")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestBookingRepository_DeleteThenReuseHighestID(t *testing.T) {
	ctx := context.Background()
	repo := newBookingRepo(SampleBookings())

	require.NoError(t, repo.Delete(ctx, 3))

	booking := entity.Booking{StudentID: 9}
	require.NoError(t, repo.Create(ctx, &booking))
	// max of remaining {1,2} is 2
	assert.Equal(t, int64(3), booking.ID)
}

func TestBookingRepository_ReturnedRecordsDoNotAliasStore(t *testing.T) {
	ctx := context.Background()
	repo := newBookingRepo(SampleBookings())

	first, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	first.AddEquipment("Faixa")

	reloaded, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.NotContains(t, reloaded.Equipment, "Faixa")
}
