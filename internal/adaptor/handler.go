package adaptor

import (
	"net/http"
	"strings"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/dto/request"
	"github.com/waysterMelo/sarah-pilates-sub001/internal/usecase"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth       *AuthHandler
	Student    *StudentHandler
	Instructor *InstructorHandler
	Schedule   *ScheduleHandler
	Booking    *BookingHandler
	Evaluation *EvaluationHandler
	Evolution  *EvolutionHandler
	Report     *ReportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		Student:    NewStudentHandler(service.Student, log),
		Instructor: NewInstructorHandler(service.Instructor, log),
		Schedule:   NewScheduleHandler(service.Schedule, log),
		Booking:    NewBookingHandler(service.Booking, log),
		Evaluation: NewEvaluationHandler(service.Evaluation, log),
		Evolution:  NewEvolutionHandler(service.Evolution, log),
		Report:     NewReportHandler(service.Report, log),
	}
}

// handleServiceError maps service errors onto HTTP responses by message
// shape: "not found" is 404, validation and "invalid" are 400, anything
// else is a logged 500.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "already registered"):
		log.Warn(operation+" failed - duplicate",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// parseIDParam reads a numeric {id}-style route parameter, writing the 400
// itself on failure.
func parseIDParam(w http.ResponseWriter, raw, name string) (int64, bool) {
	id, err := utils.ParseID(raw)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid "+name, nil)
		return 0, false
	}
	return id, true
}

// listRequestFromQuery reads the shared list-screen query parameters.
func listRequestFromQuery(r *http.Request) *request.ListRequest {
	query := r.URL.Query()
	return &request.ListRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
		Search:  query.Get("search"),
		Status:  query.Get("status"),
	}
}
