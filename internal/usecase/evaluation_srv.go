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

type EvaluationService interface {
	Create(ctx context.Context, req *request.EvaluationRequest) (*response.EvaluationResponse, error)
	GetByID(ctx context.Context, id int64) (*response.EvaluationResponse, error)
	ListByStudent(ctx context.Context, studentID int64) ([]response.EvaluationResponse, error)
	List(ctx context.Context, req *request.ListRequest) (*response.PaginatedResponse[response.EvaluationResponse], error)
	Update(ctx context.Context, id int64, req *request.EvaluationRequest) (*response.EvaluationResponse, error)
	Delete(ctx context.Context, id int64) error
}

type evaluationService struct {
	evaluations repository.EvaluationRepository
	students    repository.StudentRepository
	log         *zap.Logger
}

func NewEvaluationService(repo *repository.Repository, log *zap.Logger) EvaluationService {
	return &evaluationService{
		evaluations: repo.Evaluation,
		students:    repo.Student,
		log:         log.With(zap.String("service", "evaluation")),
	}
}

func (s *evaluationService) Create(ctx context.Context, req *request.EvaluationRequest) (*response.EvaluationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create evaluation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	student, err := s.students.FindByID(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("find student: %w", err)
	}
	if student == nil {
		return nil, fmt.Errorf("student %d not found", req.StudentID)
	}

	evaluation, err := evaluationFromRequest(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	evaluation.CreatedAt = now
	evaluation.UpdatedAt = now

	if err := s.evaluations.Create(ctx, evaluation); err != nil {
		return nil, fmt.Errorf("create evaluation: %w", err)
	}

	s.log.Info("Evaluation created",
		zap.Int64("evaluation_id", evaluation.ID),
		zap.Int64("student_id", evaluation.StudentID),
		zap.Float64("bmi", evaluation.BMI()),
	)

	resp := response.EvaluationToResponse(evaluation)
	return &resp, nil
}

func (s *evaluationService) GetByID(ctx context.Context, id int64) (*response.EvaluationResponse, error) {
	evaluation, err := s.evaluations.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find evaluation: %w", err)
	}
	if evaluation == nil {
		return nil, fmt.Errorf("evaluation %d not found", id)
	}

	resp := response.EvaluationToResponse(evaluation)
	return &resp, nil
}

func (s *evaluationService) ListByStudent(ctx context.Context, studentID int64) ([]response.EvaluationResponse, error) {
	evaluations, err := s.evaluations.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list evaluations for student %d: %w", studentID, err)
	}

	result := make([]response.EvaluationResponse, 0, len(evaluations))
	for _, evaluation := range evaluations {
		result = append(result, response.EvaluationToResponse(evaluation))
	}

	return result, nil
}

func (s *evaluationService) List(ctx context.Context, req *request.ListRequest) (*response.PaginatedResponse[response.EvaluationResponse], error) {
	evaluations, err := s.evaluations.List(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}

	total, err := s.evaluations.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count evaluations: %w", err)
	}

	data := make([]response.EvaluationResponse, 0, len(evaluations))
	for _, evaluation := range evaluations {
		data = append(data, response.EvaluationToResponse(evaluation))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *evaluationService) Update(ctx context.Context, id int64, req *request.EvaluationRequest) (*response.EvaluationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update evaluation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.evaluations.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find evaluation: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("evaluation %d not found", id)
	}

	evaluation, err := evaluationFromRequest(req)
	if err != nil {
		return nil, err
	}

	evaluation.ID = id
	evaluation.CreatedAt = existing.CreatedAt
	evaluation.UpdatedAt = time.Now()

	if err := s.evaluations.Update(ctx, evaluation); err != nil {
		return nil, fmt.Errorf("update evaluation: %w", err)
	}

	resp := response.EvaluationToResponse(evaluation)
	return &resp, nil
}

func (s *evaluationService) Delete(ctx context.Context, id int64) error {
	if err := s.evaluations.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete evaluation: %w", err)
	}
	return nil
}

func evaluationFromRequest(req *request.EvaluationRequest) (*entity.Evaluation, error) {
	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid evaluation date %q: %w", req.Date, err)
	}

	return &entity.Evaluation{
		StudentID:    req.StudentID,
		Date:         date,
		WeightKg:     req.WeightKg,
		HeightM:      req.HeightM,
		Flexibility:  req.Flexibility,
		Strength:     req.Strength,
		Balance:      req.Balance,
		Observations: req.Observations,
	}, nil
}
