package repository

import (
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/database"

	"go.uber.org/zap"
)

// Repository groups every data source. Students, instructors, evaluations,
// evolutions and users live in Postgres; the studio week and the booking
// collection are process-owned in-memory stores seeded with the sample data.
type Repository struct {
	User       UserRepository
	Student    StudentRepository
	Instructor InstructorRepository
	Evaluation EvaluationRepository
	Evolution  EvolutionRepository
	Week       WeekRepository
	Booking    BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Student:    NewStudentRepository(db, log),
		Instructor: NewInstructorRepository(db, log),
		Evaluation: NewEvaluationRepository(db, log),
		Evolution:  NewEvolutionRepository(db, log),
		Week:       NewWeekRepository(SampleWeek(), log),
		Booking:    NewBookingRepository(SampleBookings(), log),
	}
}
