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

type ScheduleHandler struct {
	service usecase.ScheduleService
	log     *zap.Logger
}

func NewScheduleHandler(service usecase.ScheduleService, log *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		service: service,
		log:     log.With(zap.String("handler", "schedule")),
	}
}

// GetWeek handles GET /api/schedule
func (h *ScheduleHandler) GetWeek(w http.ResponseWriter, r *http.Request) {
	week, err := h.service.GetWeek(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get week")
		return
	}

	utils.ResponseSuccess(w, "success", week)
}

// AddSlot handles POST /api/schedule/{day}/slots
func (h *ScheduleHandler) AddSlot(w http.ResponseWriter, r *http.Request) {
	day := chi.URLParam(r, "day")
	if day == "" {
		utils.ResponseBadRequest(w, "Day is required", nil)
		return
	}

	var req request.CreateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	slot, err := h.service.AddSlot(r.Context(), day, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "add slot")
		return
	}

	utils.ResponseCreated(w, "success", slot)
}

// UpdateSlotCapacity handles PUT /api/schedule/slots/{id}/capacity
func (h *ScheduleHandler) UpdateSlotCapacity(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, chi.URLParam(r, "id"), "slot ID")
	if !ok {
		return
	}

	var req request.UpdateCapacityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	slot, err := h.service.UpdateSlotCapacity(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update slot capacity")
		return
	}

	utils.ResponseSuccess(w, "success", slot)
}

// DeleteSlot handles DELETE /api/schedule/{day}/slots/{id}
func (h *ScheduleHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	day := chi.URLParam(r, "day")
	if day == "" {
		utils.ResponseBadRequest(w, "Day is required", nil)
		return
	}

	id, ok := parseIDParam(w, chi.URLParam(r, "id"), "slot ID")
	if !ok {
		return
	}

	if err := h.service.DeleteSlot(r.Context(), day, id); err != nil {
		handleServiceError(h.log, w, err, "delete slot")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetStats handles GET /api/schedule/stats
func (h *ScheduleHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get schedule stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}
