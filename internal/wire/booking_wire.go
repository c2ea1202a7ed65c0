package wire

import (
	"github.com/waysterMelo/sarah-pilates-sub001/internal/adaptor"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/middleware"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(middleware.AuthToken(config.JWT.Secret, log))

		r.Post("/", bookingHandler.CreateBooking)
		r.Get("/", bookingHandler.ListBookings)
		r.Get("/{id}", bookingHandler.GetBooking)
		r.Put("/{id}", bookingHandler.UpdateBooking)
		r.Delete("/{id}", bookingHandler.DeleteBooking)

		r.Put("/{id}/status", bookingHandler.SetStatus)
		r.Put("/{id}/payment", bookingHandler.SetPaymentStatus)

		r.Post("/{id}/equipment", bookingHandler.AddEquipment)
		r.Delete("/{id}/equipment/{item}", bookingHandler.RemoveEquipment)
	})
}
