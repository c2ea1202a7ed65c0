package wire

import (
	"github.com/waysterMelo/sarah-pilates-sub001/internal/adaptor"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/middleware"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReport(
	r chi.Router,
	reportHandler *adaptor.ReportHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthToken(config.JWT.Secret, log))

		r.Get("/api/dashboard", reportHandler.GetDashboard)
		r.Get("/api/reports/summary", reportHandler.GetSummary)
	})
}
