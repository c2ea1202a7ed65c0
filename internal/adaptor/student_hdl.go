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

type StudentHandler struct {
	service usecase.StudentService
	log     *zap.Logger
}

func NewStudentHandler(service usecase.StudentService, log *zap.Logger) *StudentHandler {
	return &StudentHandler{
		service: service,
		log:     log.With(zap.String("handler", "student")),
	}
}

// CreateStudent handles POST /api/students
func (h *StudentHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req request.StudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	student, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create student")
		return
	}

	utils.ResponseCreated(w, "success", student)
}

// GetStudent handles GET /api/students/{id}
func (h *StudentHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, chi.URLParam(r, "id"), "student ID")
	if !ok {
		return
	}

	student, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get student")
		return
	}

	utils.ResponseSuccess(w, "success", student)
}

// ListStudents handles GET /api/students
func (h *StudentHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.service.List(r.Context(), listRequestFromQuery(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list students")
		return
	}

	utils.ResponseSuccess(w, "success", students)
}

// UpdateStudent handles PUT /api/students/{id}
func (h *StudentHandler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, chi.URLParam(r, "id"), "student ID")
	if !ok {
		return
	}

	var req request.StudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	student, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update student")
		return
	}

	utils.ResponseSuccess(w, "success", student)
}

// DeleteStudent handles DELETE /api/students/{id}?confirm=true.
// The confirm flag is the double-check gate; without it nothing is touched.
func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, chi.URLParam(r, "id"), "student ID")
	if !ok {
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		utils.ResponseBadRequest(w, "Deletion requires confirm=true", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete student")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
