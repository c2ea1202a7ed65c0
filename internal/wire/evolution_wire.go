package wire

import (
	"github.com/waysterMelo/sarah-pilates-sub001/internal/adaptor"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/middleware"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEvolution(
	r chi.Router,
	evolutionHandler *adaptor.EvolutionHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/evolutions", func(r chi.Router) {
		r.Use(middleware.AuthToken(config.JWT.Secret, log))

		r.Post("/", evolutionHandler.CreateEvolution)
		r.Get("/", evolutionHandler.ListEvolutions)
		r.Get("/{id}", evolutionHandler.GetEvolution)
		r.Put("/{id}", evolutionHandler.UpdateEvolution)
		r.Delete("/{id}", evolutionHandler.DeleteEvolution)
	})
}
