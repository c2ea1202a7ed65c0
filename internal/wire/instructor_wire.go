package wire

import (
	"github.com/waysterMelo/sarah-pilates-sub001/internal/adaptor"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/middleware"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireInstructor(
	r chi.Router,
	instructorHandler *adaptor.InstructorHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/instructors", func(r chi.Router) {
		r.Use(middleware.AuthToken(config.JWT.Secret, log))

		r.Get("/", instructorHandler.ListInstructors)
		r.Get("/{id}", instructorHandler.GetInstructor)

		// Roster changes are admin-only.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Admin(log))

			r.Post("/", instructorHandler.CreateInstructor)
			r.Put("/{id}", instructorHandler.UpdateInstructor)
			r.Delete("/{id}", instructorHandler.DeleteInstructor)
		})
	})
}
