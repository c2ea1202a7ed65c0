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

type EvaluationHandler struct {
	service usecase.EvaluationService
	log     *zap.Logger
}

func NewEvaluationHandler(service usecase.EvaluationService, log *zap.Logger) *EvaluationHandler {
	return &EvaluationHandler{
		service: service,
		log:     log.With(zap.String("handler", "evaluation")),
	}
}

// CreateEvaluation handles POST /api/evaluations
func (h *EvaluationHandler) CreateEvaluation(w http.ResponseWriter, r *http.Request) {
	var req request.EvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	evaluation, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create evaluation")
		return
	}

	utils.ResponseCreated(w, "success", evaluation)
}

// GetEvaluation handles GET /api/evaluations/{id}
func (h *EvaluationHandler) GetEvaluation(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, chi.URLParam(r, "id"), "evaluation ID")
	if !ok {
		return
	}

	evaluation, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get evaluation")
		return
	}

	utils.ResponseSuccess(w, "success", evaluation)
}

// ListEvaluations handles GET /api/evaluations
func (h *EvaluationHandler) ListEvaluations(w http.ResponseWriter, r *http.Request) {
	evaluations, err := h.service.List(r.Context(), listRequestFromQuery(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list evaluations")
		return
	}

	utils.ResponseSuccess(w, "success", evaluations)
}

// ListStudentEvaluations handles GET /api/students/{id}/evaluations
func (h *EvaluationHandler) ListStudentEvaluations(w http.ResponseWriter, r *http.Request) {
	studentID, ok := parseIDParam(w, chi.URLParam(r, "id"), "student ID")
	if !ok {
		return
	}

	evaluations, err := h.service.ListByStudent(r.Context(), studentID)
	if err != nil {
		handleServiceError(h.log, w, err, "list student evaluations")
		return
	}

	utils.ResponseSuccess(w, "success", evaluations)
}

// UpdateEvaluation handles PUT /api/evaluations/{id}
func (h *EvaluationHandler) UpdateEvaluation(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, chi.URLParam(r, "id"), "evaluation ID")
	if !ok {
		return
	}

	var req request.EvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	evaluation, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update evaluation")
		return
	}

	utils.ResponseSuccess(w, "success", evaluation)
}

// DeleteEvaluation handles DELETE /api/evaluations/{id}?confirm=true
func (h *EvaluationHandler) DeleteEvaluation(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, chi.URLParam(r, "id"), "evaluation ID")
	if !ok {
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		utils.ResponseBadRequest(w, "Deletion requires confirm=true", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete evaluation")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
