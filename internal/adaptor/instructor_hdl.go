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

type InstructorHandler struct {
	service usecase.InstructorService
	log     *zap.Logger
}

func NewInstructorHandler(service usecase.InstructorService, log *zap.Logger) *InstructorHandler {
	return &InstructorHandler{
		service: service,
		log:     log.With(zap.String("handler", "instructor")),
	}
}

// CreateInstructor handles POST /api/instructors
func (h *InstructorHandler) CreateInstructor(w http.ResponseWriter, r *http.Request) {
	var req request.InstructorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	instructor, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create instructor")
		return
	}

	utils.ResponseCreated(w, "success", instructor)
}

// GetInstructor handles GET /api/instructors/{id}
func (h *InstructorHandler) GetInstructor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, chi.URLParam(r, "id"), "instructor ID")
	if !ok {
		return
	}

	instructor, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get instructor")
		return
	}

	utils.ResponseSuccess(w, "success", instructor)
}

// ListInstructors handles GET /api/instructors
func (h *InstructorHandler) ListInstructors(w http.ResponseWriter, r *http.Request) {
	instructors, err := h.service.List(r.Context(), listRequestFromQuery(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list instructors")
		return
	}

	utils.ResponseSuccess(w, "success", instructors)
}

// UpdateInstructor handles PUT /api/instructors/{id}
func (h *InstructorHandler) UpdateInstructor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, chi.URLParam(r, "id"), "instructor ID")
	if !ok {
		return
	}

	var req request.InstructorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	instructor, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update instructor")
		return
	}

	utils.ResponseSuccess(w, "success", instructor)
}

// DeleteInstructor handles DELETE /api/instructors/{id}?confirm=true
func (h *InstructorHandler) DeleteInstructor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, chi.URLParam(r, "id"), "instructor ID")
	if !ok {
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		utils.ResponseBadRequest(w, "Deletion requires confirm=true", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete instructor")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
