package wire

import (
	"github.com/waysterMelo/sarah-pilates-sub001/internal/adaptor"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/middleware"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSchedule(
	r chi.Router,
	scheduleHandler *adaptor.ScheduleHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/schedule", func(r chi.Router) {
		r.Use(middleware.AuthToken(config.JWT.Secret, log))

		r.Get("/", scheduleHandler.GetWeek)
		r.Get("/stats", scheduleHandler.GetStats)
		r.Post("/{day}/slots", scheduleHandler.AddSlot)
		r.Put("/slots/{id}/capacity", scheduleHandler.UpdateSlotCapacity)
		r.Delete("/{day}/slots/{id}", scheduleHandler.DeleteSlot)
	})
}
