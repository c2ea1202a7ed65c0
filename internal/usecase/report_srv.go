package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/entity"
	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/repository"
	"github.com/waysterMelo/sarah-pilates-sub001/internal/dto/response"

	"go.uber.org/zap"
)

type ReportService interface {
	Dashboard(ctx context.Context) (*response.DashboardResponse, error)
	Summary(ctx context.Context) (*response.ReportSummaryResponse, error)
}

type reportService struct {
	bookings   repository.BookingRepository
	evolutions repository.EvolutionRepository
	week       repository.WeekRepository
	now        func() time.Time
	log        *zap.Logger
}

func NewReportService(repo *repository.Repository, log *zap.Logger) ReportService {
	return &reportService{
		bookings:   repo.Booking,
		evolutions: repo.Evolution,
		week:       repo.Week,
		now:        time.Now,
		log:        log.With(zap.String("service", "report")),
	}
}

// Dashboard fetches both panels concurrently. Each fetch fails on its own:
// the error is logged and the panel comes back empty while the other panel
// still renders.
func (s *reportService) Dashboard(ctx context.Context) (*response.DashboardResponse, error) {
	today := s.now().Format("2006-01-02")
	tomorrow := s.now().AddDate(0, 0, 1).Format("2006-01-02")
	weekOut := s.now().AddDate(0, 0, 7).Format("2006-01-02")

	resp := &response.DashboardResponse{
		Today:    []response.SessionSummary{},
		Upcoming: []response.SessionSummary{},
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		bookings, err := s.bookings.FindByDate(ctx, today)
		if err != nil {
			s.log.Error("Dashboard today fetch failed", zap.Error(err), zap.String("date", today))
			return
		}
		resp.Today = summarize(bookings)
	}()

	go func() {
		defer wg.Done()
		bookings, err := s.bookings.FindBetween(ctx, tomorrow, weekOut)
		if err != nil {
			s.log.Error("Dashboard upcoming fetch failed", zap.Error(err),
				zap.String("from", tomorrow), zap.String("to", weekOut))
			return
		}
		resp.Upcoming = summarize(bookings)
	}()

	wg.Wait()
	return resp, nil
}

func (s *reportService) Summary(ctx context.Context) (*response.ReportSummaryResponse, error) {
	all, err := s.bookings.List(ctx, repository.BookingFilter{})
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	summary := &response.ReportSummaryResponse{
		TotalBookings: int64(len(all)),
	}

	monthFrom := monthStart.Format("2006-01-02")
	monthTo := monthEnd.Format("2006-01-02")
	today := now.Format("2006-01-02")
	weekOut := now.AddDate(0, 0, 7).Format("2006-01-02")

	for _, booking := range all {
		if booking.PaymentStatus == entity.PaymentPending {
			summary.PendingPayments++
		}
		if booking.Date >= monthFrom && booking.Date <= monthTo {
			summary.BookingsThisMonth++
		}
		if booking.Date >= today && booking.Date <= weekOut {
			summary.SessionsNext7Days++
		}
	}

	// next_session is a date; the lower bound must be today's midnight or a
	// session dated today sorts before the wall-clock now and drops out of
	// the inclusive window.
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	nextSessions, err := s.evolutions.CountNextSessionBetween(ctx, dayStart, dayStart.AddDate(0, 0, 7))
	if err != nil {
		// The evolution count enriches the seven-day figure; the booking
		// half of the summary still stands without it.
		s.log.Error("Next-session count failed", zap.Error(err))
	} else {
		summary.SessionsNext7Days += nextSessions
	}

	capacity, bookings, average, err := s.week.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("schedule totals: %w", err)
	}
	summary.TotalCapacity = capacity
	summary.TotalSlotBookings = bookings
	summary.AverageOccupancy = average

	return summary, nil
}

func summarize(bookings []*entity.Booking) []response.SessionSummary {
	result := make([]response.SessionSummary, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, response.BookingToSummary(booking))
	}
	return result
}
