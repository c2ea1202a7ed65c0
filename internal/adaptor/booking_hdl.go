package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/dto/request"
	"github.com/waysterMelo/sarah-pilates-sub001/internal/usecase"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetBooking handles GET /api/bookings/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, chi.URLParam(r, "id"), "booking ID")
	if !ok {
		return
	}

	booking, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ListBookings handles GET /api/bookings with optional status, date and
// search filters.
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.List(r.Context(), listRequestFromQuery(r), r.URL.Query().Get("date"))
	if err != nil {
		handleServiceError(h.log, w, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// UpdateBooking handles PUT /api/bookings/{id}
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, chi.URLParam(r, "id"), "booking ID")
	if !ok {
		return
	}

	var req request.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// DeleteBooking handles DELETE /api/bookings/{id}?confirm=true
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, chi.URLParam(r, "id"), "booking ID")
	if !ok {
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		utils.ResponseBadRequest(w, "Deletion requires confirm=true", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// SetStatus handles PUT /api/bookings/{id}/status
func (h *BookingHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, chi.URLParam(r, "id"), "booking ID")
	if !ok {
		return
	}

	var req request.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.SetStatus(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "set booking status")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// SetPaymentStatus handles PUT /api/bookings/{id}/payment
func (h *BookingHandler) SetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, chi.URLParam(r, "id"), "booking ID")
	if !ok {
		return
	}

	var req request.SetPaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.SetPaymentStatus(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "set payment status")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// AddEquipment handles POST /api/bookings/{id}/equipment
func (h *BookingHandler) AddEquipment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, chi.URLParam(r, "id"), "booking ID")
	if !ok {
		return
	}

	var req request.EquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.AddEquipment(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "add equipment")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// RemoveEquipment handles DELETE /api/bookings/{id}/equipment/{item}
func (h *BookingHandler) RemoveEquipment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, chi.URLParam(r, "id"), "booking ID")
	if !ok {
		return
	}

	item := chi.URLParam(r, "item")
	if item == "" {
		utils.ResponseBadRequest(w, "Equipment item is required", nil)
		return
	}

	booking, err := h.service.RemoveEquipment(r.Context(), id, item)
	if err != nil {
		handleServiceError(h.log, w, err, "remove equipment")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}
