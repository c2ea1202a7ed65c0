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

type EvolutionHandler struct {
	service usecase.EvolutionService
	log     *zap.Logger
}

func NewEvolutionHandler(service usecase.EvolutionService, log *zap.Logger) *EvolutionHandler {
	return &EvolutionHandler{
		service: service,
		log:     log.With(zap.String("handler", "evolution")),
	}
}

// CreateEvolution handles POST /api/evolutions
func (h *EvolutionHandler) CreateEvolution(w http.ResponseWriter, r *http.Request) {
	var req request.EvolutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	evolution, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create evolution")
		return
	}

	utils.ResponseCreated(w, "success", evolution)
}

// GetEvolution handles GET /api/evolutions/{id}
func (h *EvolutionHandler) GetEvolution(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, chi.URLParam(r, "id"), "evolution ID")
	if !ok {
		return
	}

	evolution, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get evolution")
		return
	}

	utils.ResponseSuccess(w, "success", evolution)
}

// ListEvolutions handles GET /api/evolutions
func (h *EvolutionHandler) ListEvolutions(w http.ResponseWriter, r *http.Request) {
	evolutions, err := h.service.List(r.Context(), listRequestFromQuery(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list evolutions")
		return
	}

	utils.ResponseSuccess(w, "success", evolutions)
}

// ListStudentEvolutions handles GET /api/students/{id}/evolutions
func (h *EvolutionHandler) ListStudentEvolutions(w http.ResponseWriter, r *http.Request) {
	studentID, ok := parseIDParam(w, chi.URLParam(r, "id"), "student ID")
	if !ok {
		return
	}

	evolutions, err := h.service.ListByStudent(r.Context(), studentID)
	if err != nil {
		handleServiceError(h.log, w, err, "list student evolutions")
		return
	}

	utils.ResponseSuccess(w, "success", evolutions)
}

// UpdateEvolution handles PUT /api/evolutions/{id}
func (h *EvolutionHandler) UpdateEvolution(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, chi.URLParam(r, "id"), "evolution ID")
	if !ok {
		return
	}

	var req request.EvolutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	evolution, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update evolution")
		return
	}

	utils.ResponseSuccess(w, "success", evolution)
}

// DeleteEvolution handles DELETE /api/evolutions/{id}?confirm=true
func (h *EvolutionHandler) DeleteEvolution(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, chi.URLParam(r, "id"), "evolution ID")
	if !ok {
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		utils.ResponseBadRequest(w, "Deletion requires confirm=true", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete evolution")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
