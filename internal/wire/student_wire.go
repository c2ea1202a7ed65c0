package wire

import (
	"github.com/waysterMelo/sarah-pilates-sub001/internal/adaptor"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/middleware"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStudent(
	r chi.Router,
	studentHandler *adaptor.StudentHandler,
	evaluationHandler *adaptor.EvaluationHandler,
	evolutionHandler *adaptor.EvolutionHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/students", func(r chi.Router) {
		r.Use(middleware.AuthToken(config.JWT.Secret, log))

		r.Post("/", studentHandler.CreateStudent)
		r.Get("/", studentHandler.ListStudents)
		r.Get("/{id}", studentHandler.GetStudent)
		r.Put("/{id}", studentHandler.UpdateStudent)
		r.Delete("/{id}", studentHandler.DeleteStudent)

		// Per-student history panels
		r.Get("/{id}/evaluations", evaluationHandler.ListStudentEvaluations)
		r.Get("/{id}/evolutions", evolutionHandler.ListStudentEvolutions)
	})
}
