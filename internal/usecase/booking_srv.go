package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/entity"
	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/repository"
	"github.com/waysterMelo/sarah-pilates-sub001/internal/dto/request"
	"github.com/waysterMelo/sarah-pilates-sub001/internal/dto/response"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	Create(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error)
	GetByID(ctx context.Context, id int64) (*response.BookingResponse, error)
	List(ctx context.Context, req *request.ListRequest, date string) ([]response.BookingResponse, error)
	Update(ctx context.Context, id int64, req *request.BookingRequest) (*response.BookingResponse, error)
	Delete(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, req *request.SetStatusRequest) (*response.BookingResponse, error)
	SetPaymentStatus(ctx context.Context, id int64, req *request.SetPaymentStatusRequest) (*response.BookingResponse, error)
	AddEquipment(ctx context.Context, id int64, req *request.EquipmentRequest) (*response.BookingResponse, error)
	RemoveEquipment(ctx context.Context, id int64, item string) (*response.BookingResponse, error)
}

type bookingService struct {
	bookings    repository.BookingRepository
	students    repository.StudentRepository
	instructors repository.InstructorRepository
	log         *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		bookings:    repo.Booking,
		students:    repo.Student,
		instructors: repo.Instructor,
		log:         log.With(zap.String("service", "booking")),
	}
}

// validateBookingFields accumulates all violations in one map: the struct
// tags first, then the start/end ordering rule, which is cross-field and
// cannot be expressed as a tag on string times.
func validateBookingFields(req *request.BookingRequest) map[string]string {
	errs := utils.ValidateStruct(req)

	if req.StartTime != "" && req.EndTime != "" && req.StartTime >= req.EndTime {
		if errs == nil {
			errs = make(map[string]string)
		}
		errs["EndTime"] = "Must be after start time"
	}

	return errs
}

func (s *bookingService) Create(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
	if errs := validateBookingFields(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.bookingFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	booking.Status = entity.BookingStatusScheduled
	booking.CreatedAt = time.Now()

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetByID(ctx context.Context, id int64) (*response.BookingResponse, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %d not found", id)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) List(ctx context.Context, req *request.ListRequest, date string) ([]response.BookingResponse, error) {
	filter := repository.BookingFilter{
		Search: req.Search,
		Date:   date,
	}

	if req.Status != "" {
		status, ok := entity.ParseBookingStatus(req.Status)
		if !ok {
			return nil, fmt.Errorf("invalid booking status %q", req.Status)
		}
		filter.Status = status
	}

	bookings, err := s.bookings.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	result := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, response.BookingToResponse(booking))
	}

	return result, nil
}

func (s *bookingService) Update(ctx context.Context, id int64, req *request.BookingRequest) (*response.BookingResponse, error) {
	if errs := validateBookingFields(req); len(errs) > 0 {
		s.log.Warn("Update booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("booking %d not found", id)
	}

	booking, err := s.bookingFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	booking.ID = id
	booking.Status = existing.Status

	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	updated, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload booking: %w", err)
	}

	resp := response.BookingToResponse(updated)
	return &resp, nil
}

func (s *bookingService) Delete(ctx context.Context, id int64) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}

func (s *bookingService) SetStatus(ctx context.Context, id int64, req *request.SetStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	status, ok := entity.ParseBookingStatus(req.Status)
	if !ok {
		return nil, fmt.Errorf("invalid booking status %q", req.Status)
	}

	booking, err := s.bookings.SetStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("set booking status: %w", err)
	}

	s.log.Info("Booking status set",
		zap.Int64("booking_id", id),
		zap.String("status", string(status)),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) SetPaymentStatus(ctx context.Context, id int64, req *request.SetPaymentStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	status := entity.PaymentStatus(req.PaymentStatus)
	if !status.Valid() {
		return nil, fmt.Errorf("invalid payment status %q", req.PaymentStatus)
	}

	booking, err := s.bookings.SetPaymentStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("set payment status: %w", err)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) AddEquipment(ctx context.Context, id int64, req *request.EquipmentRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.bookings.AddEquipment(ctx, id, req.Item)
	if err != nil {
		return nil, fmt.Errorf("add equipment: %w", err)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) RemoveEquipment(ctx context.Context, id int64, item string) (*response.BookingResponse, error) {
	booking, err := s.bookings.RemoveEquipment(ctx, id, item)
	if err != nil {
		return nil, fmt.Errorf("remove equipment: %w", err)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// bookingFromRequest resolves both parties and snapshots their names onto
// the record. Historical bookings keep the names current at creation time.
func (s *bookingService) bookingFromRequest(ctx context.Context, req *request.BookingRequest) (*entity.Booking, error) {
	student, err := s.students.FindByID(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("find student: %w", err)
	}
	if student == nil {
		return nil, fmt.Errorf("student %d not found", req.StudentID)
	}

	instructor, err := s.instructors.FindByID(ctx, req.InstructorID)
	if err != nil {
		return nil, fmt.Errorf("find instructor: %w", err)
	}
	if instructor == nil {
		return nil, fmt.Errorf("instructor %d not found", req.InstructorID)
	}

	paymentStatus := entity.PaymentStatus(req.PaymentStatus)
	if req.PaymentStatus == "" {
		paymentStatus = entity.PaymentPending
	}

	return &entity.Booking{
		StudentID:      student.ID,
		StudentName:    student.Name,
		InstructorID:   instructor.ID,
		InstructorName: instructor.Name,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		ClassType:      req.ClassType,
		Notes:          req.Notes,
		Room:           req.Room,
		Equipment:      cloneEquipment(req.Equipment),
		Price:          req.Price,
		PaymentStatus:  paymentStatus,
	}, nil
}

// cloneEquipment normalizes the incoming list through the same set
// semantics equipment mutations use: trimmed, no blanks, no duplicates.
func cloneEquipment(items []string) []string {
	var holder entity.Booking
	for _, item := range items {
		holder.AddEquipment(item)
	}
	return holder.Equipment
}
