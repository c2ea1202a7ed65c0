package usecase

import (
	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/repository"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	Student    StudentService
	Instructor InstructorService
	Schedule   ScheduleService
	Booking    BookingService
	Evaluation EvaluationService
	Evolution  EvolutionService
	Report     ReportService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:       NewAuthService(repo.User, config, log),
		Student:    NewStudentService(repo.Student, log),
		Instructor: NewInstructorService(repo.Instructor, log),
		Schedule:   NewScheduleService(repo.Week, log),
		Booking:    NewBookingService(repo, log),
		Evaluation: NewEvaluationService(repo, log),
		Evolution:  NewEvolutionService(repo, log),
		Report:     NewReportService(repo, log),
	}
}
