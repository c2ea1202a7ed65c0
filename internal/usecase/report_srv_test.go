package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/entity"
	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEvolutionRepo struct {
	nextSessions []time.Time
	err          error
}

func (f *fakeEvolutionRepo) Create(_ context.Context, _ *entity.Evolution) error { return nil }
func (f *fakeEvolutionRepo) FindByID(_ context.Context, _ int64) (*entity.Evolution, error) {
	return nil, nil
}
func (f *fakeEvolutionRepo) FindByStudentID(_ context.Context, _ int64) ([]*entity.Evolution, error) {
	return nil, nil
}
func (f *fakeEvolutionRepo) List(_ context.Context, _, _ int) ([]*entity.Evolution, error) {
	return nil, nil
}
func (f *fakeEvolutionRepo) Count(_ context.Context) (int64, error) { return 0, nil }
func (f *fakeEvolutionRepo) CountNextSessionBetween(_ context.Context, from, to time.Time) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var count int64
	for _, session := range f.nextSessions {
		if !session.Before(from) && !session.After(to) {
			count++
		}
	}
	return count, nil
}
func (f *fakeEvolutionRepo) Update(_ context.Context, _ *entity.Evolution) error { return nil }
func (f *fakeEvolutionRepo) Delete(_ context.Context, _ int64) error             { return nil }

// failingBookingRepo wraps the real in-memory store and fails the calls the
// test names.
type failingBookingRepo struct {
	repository.BookingRepository
	failByDate bool
}

func (f *failingBookingRepo) FindByDate(ctx context.Context, date string) ([]*entity.Booking, error) {
	if f.failByDate {
		return nil, errors.New("store unavailable")
	}
	return f.BookingRepository.FindByDate(ctx, date)
}

func newReportTestService(bookings repository.BookingRepository, evolutions repository.EvolutionRepository) *reportService {
	log := zap.NewNop()

	repo := &repository.Repository{
		Booking:   bookings,
		Evolution: evolutions,
		Week:      repository.NewWeekRepository(repository.SampleWeek(), log),
	}

	srv := NewReportService(repo, log).(*reportService)
	srv.now = func() time.Time {
		return time.Date(2026, 8, 24, 10, 0, 0, 0, time.Local)
	}
	return srv
}

func TestDashboardSplitsTodayAndUpcoming(t *testing.T) {
	bookings := repository.NewBookingRepository(repository.SampleBookings(), zap.NewNop())
	srv := newReportTestService(bookings, &fakeEvolutionRepo{})

	resp, err := srv.Dashboard(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Today, 1)
	assert.Equal(t, "Maria Oliveira", resp.Today[0].StudentName)
	assert.Equal(t, "Confirmado", resp.Today[0].StatusLabel)

	require.Len(t, resp.Upcoming, 2)
}

func TestDashboardPanelFailureIsIsolated(t *testing.T) {
	bookings := &failingBookingRepo{
		BookingRepository: repository.NewBookingRepository(repository.SampleBookings(), zap.NewNop()),
		failByDate:        true,
	}
	srv := newReportTestService(bookings, &fakeEvolutionRepo{})

	resp, err := srv.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Empty(t, resp.Today)
	require.Len(t, resp.Upcoming, 2)
}

func TestSummaryFoldsBookingsAndSchedule(t *testing.T) {
	bookings := repository.NewBookingRepository(repository.SampleBookings(), zap.NewNop())
	srv := newReportTestService(bookings, &fakeEvolutionRepo{nextSessions: []time.Time{
		time.Date(2026, 8, 26, 0, 0, 0, 0, time.Local),
		time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local),
	}})

	summary, err := srv.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), summary.TotalBookings)
	assert.Equal(t, int64(1), summary.PendingPayments)
	assert.Equal(t, int64(3), summary.BookingsThisMonth)
	assert.Equal(t, int64(5), summary.SessionsNext7Days) // 3 bookings + 2 next sessions
	assert.Equal(t, 92, summary.TotalCapacity)
	assert.Equal(t, 60, summary.TotalSlotBookings)
	assert.Equal(t, 65, summary.AverageOccupancy)
}

// A next session dated today is stored at midnight, which sorts before the
// wall-clock now. The window's lower bound must be start of day for today
// to stay inside the inclusive range.
func TestSummaryCountsNextSessionDatedToday(t *testing.T) {
	bookings := repository.NewBookingRepository(nil, zap.NewNop())
	srv := newReportTestService(bookings, &fakeEvolutionRepo{nextSessions: []time.Time{
		time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local), // today
		time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local), // seventh day out
		time.Date(2026, 8, 23, 0, 0, 0, 0, time.Local), // yesterday, excluded
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local),  // past the window, excluded
	}})

	summary, err := srv.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.SessionsNext7Days)
}

func TestSummarySurvivesEvolutionCountFailure(t *testing.T) {
	bookings := repository.NewBookingRepository(repository.SampleBookings(), zap.NewNop())
	srv := newReportTestService(bookings, &fakeEvolutionRepo{err: errors.New("db down")})

	summary, err := srv.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), summary.SessionsNext7Days)
}

func TestSummaryEmptyStore(t *testing.T) {
	bookings := repository.NewBookingRepository(nil, zap.NewNop())
	srv := newReportTestService(bookings, &fakeEvolutionRepo{})

	summary, err := srv.Summary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.TotalBookings)
	assert.Zero(t, summary.PendingPayments)
}
