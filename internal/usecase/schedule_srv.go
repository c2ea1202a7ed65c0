package usecase

import (
	"context"
	"fmt"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/entity"
	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/repository"
	"github.com/waysterMelo/sarah-pilates-sub001/internal/dto/request"
	"github.com/waysterMelo/sarah-pilates-sub001/internal/dto/response"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/utils"

	"go.uber.org/zap"
)

type ScheduleService interface {
	GetWeek(ctx context.Context) (*response.WeekResponse, error)
	AddSlot(ctx context.Context, day string, req *request.CreateSlotRequest) (*response.SlotResponse, error)
	UpdateSlotCapacity(ctx context.Context, slotID int64, req *request.UpdateCapacityRequest) (*response.SlotResponse, error)
	DeleteSlot(ctx context.Context, day string, slotID int64) error
	Stats(ctx context.Context) (*response.ScheduleStatsResponse, error)
}

type scheduleService struct {
	week repository.WeekRepository
	log  *zap.Logger
}

func NewScheduleService(week repository.WeekRepository, log *zap.Logger) ScheduleService {
	return &scheduleService{
		week: week,
		log:  log.With(zap.String("service", "schedule")),
	}
}

func (s *scheduleService) GetWeek(ctx context.Context) (*response.WeekResponse, error) {
	week, err := s.week.GetWeek(ctx)
	if err != nil {
		return nil, fmt.Errorf("get week: %w", err)
	}
	return response.WeekToResponse(week), nil
}

func (s *scheduleService) AddSlot(ctx context.Context, day string, req *request.CreateSlotRequest) (*response.SlotResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add slot validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	slot := entity.TimeSlot{
		Time:        req.Time,
		MaxCapacity: req.MaxCapacity,
		Room:        req.Room,
		Instructor:  req.Instructor,
		ClassType:   req.ClassType,
	}

	created, err := s.week.AddSlot(ctx, day, slot)
	if err != nil {
		return nil, fmt.Errorf("add slot: %w", err)
	}

	resp := response.SlotToResponse(created)
	return &resp, nil
}

func (s *scheduleService) UpdateSlotCapacity(ctx context.Context, slotID int64, req *request.UpdateCapacityRequest) (*response.SlotResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update capacity validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	updated, err := s.week.UpdateSlotCapacity(ctx, slotID, req.MaxCapacity)
	if err != nil {
		return nil, fmt.Errorf("update slot capacity: %w", err)
	}

	s.log.Info("Slot capacity updated",
		zap.Int64("slot_id", slotID),
		zap.Int("max_capacity", req.MaxCapacity),
	)

	resp := response.SlotToResponse(updated)
	return &resp, nil
}

func (s *scheduleService) DeleteSlot(ctx context.Context, day string, slotID int64) error {
	if err := s.week.RemoveSlot(ctx, day, slotID); err != nil {
		return fmt.Errorf("remove slot: %w", err)
	}
	return nil
}

func (s *scheduleService) Stats(ctx context.Context) (*response.ScheduleStatsResponse, error) {
	capacity, bookings, average, err := s.week.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("schedule totals: %w", err)
	}

	return &response.ScheduleStatsResponse{
		TotalCapacity:    capacity,
		TotalBookings:    bookings,
		AverageOccupancy: average,
	}, nil
}
