package wire

import (
	"github.com/waysterMelo/sarah-pilates-sub001/internal/adaptor"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/middleware"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEvaluation(
	r chi.Router,
	evaluationHandler *adaptor.EvaluationHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/evaluations", func(r chi.Router) {
		r.Use(middleware.AuthToken(config.JWT.Secret, log))

		r.Post("/", evaluationHandler.CreateEvaluation)
		r.Get("/", evaluationHandler.ListEvaluations)
		r.Get("/{id}", evaluationHandler.GetEvaluation)
		r.Put("/{id}", evaluationHandler.UpdateEvaluation)
		r.Delete("/{id}", evaluationHandler.DeleteEvaluation)
	})
}
