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

type StudentService interface {
	Create(ctx context.Context, req *request.StudentRequest) (*response.StudentResponse, error)
	GetByID(ctx context.Context, id int64) (*response.StudentResponse, error)
	List(ctx context.Context, req *request.ListRequest) (*response.PaginatedResponse[response.StudentResponse], error)
	Update(ctx context.Context, id int64, req *request.StudentRequest) (*response.StudentResponse, error)
	Delete(ctx context.Context, id int64) error
}

type studentService struct {
	students repository.StudentRepository
	log      *zap.Logger
}

func NewStudentService(students repository.StudentRepository, log *zap.Logger) StudentService {
	return &studentService{
		students: students,
		log:      log.With(zap.String("service", "student")),
	}
}

func (s *studentService) Create(ctx context.Context, req *request.StudentRequest) (*response.StudentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create student validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.students.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check student email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	student, err := studentFromRequest(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	student.CreatedAt = now
	student.UpdatedAt = now

	if err := s.students.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}

	s.log.Info("Student created", zap.Int64("student_id", student.ID), zap.String("name", student.Name))

	resp := response.StudentToResponse(student)
	return &resp, nil
}

func (s *studentService) GetByID(ctx context.Context, id int64) (*response.StudentResponse, error) {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find student: %w", err)
	}
	if student == nil {
		return nil, fmt.Errorf("student %d not found", id)
	}

	resp := response.StudentToResponse(student)
	return &resp, nil
}

func (s *studentService) List(ctx context.Context, req *request.ListRequest) (*response.PaginatedResponse[response.StudentResponse], error) {
	status := entity.StudentStatus(req.Status)
	if req.Status != "" && !status.Valid() {
		return nil, fmt.Errorf("invalid student status %q", req.Status)
	}

	students, err := s.students.List(ctx, req.Search, status, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	total, err := s.students.Count(ctx, req.Search, status)
	if err != nil {
		return nil, fmt.Errorf("count students: %w", err)
	}

	data := make([]response.StudentResponse, 0, len(students))
	for _, student := range students {
		data = append(data, response.StudentToResponse(student))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *studentService) Update(ctx context.Context, id int64, req *request.StudentRequest) (*response.StudentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update student validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.students.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find student: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("student %d not found", id)
	}

	student, err := studentFromRequest(req)
	if err != nil {
		return nil, err
	}

	student.ID = id
	student.CreatedAt = existing.CreatedAt
	student.UpdatedAt = time.Now()

	if err := s.students.Update(ctx, student); err != nil {
		return nil, fmt.Errorf("update student: %w", err)
	}

	resp := response.StudentToResponse(student)
	return &resp, nil
}

func (s *studentService) Delete(ctx context.Context, id int64) error {
	if err := s.students.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}

func studentFromRequest(req *request.StudentRequest) (*entity.Student, error) {
	status := entity.StudentStatus(req.Status)
	if req.Status == "" {
		status = entity.StudentActive
	}

	student := &entity.Student{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Status:       status,
		Plan:         req.Plan,
		MedicalNotes: req.MedicalNotes,
	}

	if req.BirthDate != "" {
		birthDate, err := time.ParseInLocation("2006-01-02", req.BirthDate, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid birth date %q: %w", req.BirthDate, err)
		}
		student.BirthDate = &birthDate
	}

	return student, nil
}
