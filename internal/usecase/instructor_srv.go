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

type InstructorService interface {
	Create(ctx context.Context, req *request.InstructorRequest) (*response.InstructorResponse, error)
	GetByID(ctx context.Context, id int64) (*response.InstructorResponse, error)
	List(ctx context.Context, req *request.ListRequest) (*response.PaginatedResponse[response.InstructorResponse], error)
	Update(ctx context.Context, id int64, req *request.InstructorRequest) (*response.InstructorResponse, error)
	Delete(ctx context.Context, id int64) error
}

type instructorService struct {
	instructors repository.InstructorRepository
	log         *zap.Logger
}

func NewInstructorService(instructors repository.InstructorRepository, log *zap.Logger) InstructorService {
	return &instructorService{
		instructors: instructors,
		log:         log.With(zap.String("service", "instructor")),
	}
}

func (s *instructorService) Create(ctx context.Context, req *request.InstructorRequest) (*response.InstructorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create instructor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	instructor, err := instructorFromRequest(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	instructor.CreatedAt = now
	instructor.UpdatedAt = now

	if err := s.instructors.Create(ctx, instructor); err != nil {
		return nil, fmt.Errorf("create instructor: %w", err)
	}

	s.log.Info("Instructor created", zap.Int64("instructor_id", instructor.ID), zap.String("name", instructor.Name))

	resp := response.InstructorToResponse(instructor)
	return &resp, nil
}

func (s *instructorService) GetByID(ctx context.Context, id int64) (*response.InstructorResponse, error) {
	instructor, err := s.instructors.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find instructor: %w", err)
	}
	if instructor == nil {
		return nil, fmt.Errorf("instructor %d not found", id)
	}

	resp := response.InstructorToResponse(instructor)
	return &resp, nil
}

func (s *instructorService) List(ctx context.Context, req *request.ListRequest) (*response.PaginatedResponse[response.InstructorResponse], error) {
	status := entity.InstructorStatus(req.Status)
	if req.Status != "" && !status.Valid() {
		return nil, fmt.Errorf("invalid instructor status %q", req.Status)
	}

	instructors, err := s.instructors.List(ctx, req.Search, status, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}

	total, err := s.instructors.Count(ctx, req.Search, status)
	if err != nil {
		return nil, fmt.Errorf("count instructors: %w", err)
	}

	data := make([]response.InstructorResponse, 0, len(instructors))
	for _, instructor := range instructors {
		data = append(data, response.InstructorToResponse(instructor))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *instructorService) Update(ctx context.Context, id int64, req *request.InstructorRequest) (*response.InstructorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update instructor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.instructors.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find instructor: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("instructor %d not found", id)
	}

	instructor, err := instructorFromRequest(req)
	if err != nil {
		return nil, err
	}

	instructor.ID = id
	instructor.CreatedAt = existing.CreatedAt
	instructor.UpdatedAt = time.Now()

	if err := s.instructors.Update(ctx, instructor); err != nil {
		return nil, fmt.Errorf("update instructor: %w", err)
	}

	resp := response.InstructorToResponse(instructor)
	return &resp, nil
}

func (s *instructorService) Delete(ctx context.Context, id int64) error {
	if err := s.instructors.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete instructor: %w", err)
	}
	return nil
}

func instructorFromRequest(req *request.InstructorRequest) (*entity.Instructor, error) {
	status := entity.InstructorStatus(req.Status)
	if req.Status == "" {
		status = entity.InstructorActive
	}

	instructor := &entity.Instructor{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		CREF:        req.CREF,
		Specialties: req.Specialties,
		Status:      status,
	}

	if req.HireDate != "" {
		hireDate, err := time.ParseInLocation("2006-01-02", req.HireDate, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid hire date %q: %w", req.HireDate, err)
		}
		instructor.HireDate = &hireDate
	}

	return instructor, nil
}
