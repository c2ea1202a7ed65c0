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

type EvolutionService interface {
	Create(ctx context.Context, req *request.EvolutionRequest) (*response.EvolutionResponse, error)
	GetByID(ctx context.Context, id int64) (*response.EvolutionResponse, error)
	ListByStudent(ctx context.Context, studentID int64) ([]response.EvolutionResponse, error)
	List(ctx context.Context, req *request.ListRequest) (*response.PaginatedResponse[response.EvolutionResponse], error)
	Update(ctx context.Context, id int64, req *request.EvolutionRequest) (*response.EvolutionResponse, error)
	Delete(ctx context.Context, id int64) error
}

type evolutionService struct {
	evolutions repository.EvolutionRepository
	students   repository.StudentRepository
	log        *zap.Logger
}

func NewEvolutionService(repo *repository.Repository, log *zap.Logger) EvolutionService {
	return &evolutionService{
		evolutions: repo.Evolution,
		students:   repo.Student,
		log:        log.With(zap.String("service", "evolution")),
	}
}

func (s *evolutionService) Create(ctx context.Context, req *request.EvolutionRequest) (*response.EvolutionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create evolution validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	student, err := s.students.FindByID(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("find student: %w", err)
	}
	if student == nil {
		return nil, fmt.Errorf("student %d not found", req.StudentID)
	}

	evolution, err := evolutionFromRequest(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	evolution.CreatedAt = now
	evolution.UpdatedAt = now

	if err := s.evolutions.Create(ctx, evolution); err != nil {
		return nil, fmt.Errorf("create evolution: %w", err)
	}

	s.log.Info("Evolution created",
		zap.Int64("evolution_id", evolution.ID),
		zap.Int64("student_id", evolution.StudentID),
	)

	resp := response.EvolutionToResponse(evolution)
	return &resp, nil
}

func (s *evolutionService) GetByID(ctx context.Context, id int64) (*response.EvolutionResponse, error) {
	evolution, err := s.evolutions.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find evolution: %w", err)
	}
	if evolution == nil {
		return nil, fmt.Errorf("evolution %d not found", id)
	}

	resp := response.EvolutionToResponse(evolution)
	return &resp, nil
}

func (s *evolutionService) ListByStudent(ctx context.Context, studentID int64) ([]response.EvolutionResponse, error) {
	evolutions, err := s.evolutions.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list evolutions for student %d: %w", studentID, err)
	}

	result := make([]response.EvolutionResponse, 0, len(evolutions))
	for _, evolution := range evolutions {
		result = append(result, response.EvolutionToResponse(evolution))
	}

	return result, nil
}

func (s *evolutionService) List(ctx context.Context, req *request.ListRequest) (*response.PaginatedResponse[response.EvolutionResponse], error) {
	evolutions, err := s.evolutions.List(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list evolutions: %w", err)
	}

	total, err := s.evolutions.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count evolutions: %w", err)
	}

	data := make([]response.EvolutionResponse, 0, len(evolutions))
	for _, evolution := range evolutions {
		data = append(data, response.EvolutionToResponse(evolution))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *evolutionService) Update(ctx context.Context, id int64, req *request.EvolutionRequest) (*response.EvolutionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update evolution validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.evolutions.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find evolution: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("evolution %d not found", id)
	}

	evolution, err := evolutionFromRequest(req)
	if err != nil {
		return nil, err
	}

	evolution.ID = id
	evolution.CreatedAt = existing.CreatedAt
	evolution.UpdatedAt = time.Now()

	if err := s.evolutions.Update(ctx, evolution); err != nil {
		return nil, fmt.Errorf("update evolution: %w", err)
	}

	resp := response.EvolutionToResponse(evolution)
	return &resp, nil
}

func (s *evolutionService) Delete(ctx context.Context, id int64) error {
	if err := s.evolutions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete evolution: %w", err)
	}
	return nil
}

func evolutionFromRequest(req *request.EvolutionRequest) (*entity.Evolution, error) {
	sessionDate, err := time.ParseInLocation("2006-01-02", req.SessionDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid session date %q: %w", req.SessionDate, err)
	}

	evolution := &entity.Evolution{
		StudentID:   req.StudentID,
		SessionDate: sessionDate,
		Focus:       req.Focus,
		Progress:    req.Progress,
		PainLevel:   req.PainLevel,
	}

	if req.NextSession != "" {
		nextSession, err := time.ParseInLocation("2006-01-02", req.NextSession, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid next session date %q: %w", req.NextSession, err)
		}
		evolution.NextSession = &nextSession
	}

	return evolution, nil
}
