package response

import (
	"time"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/entity"
)

type EvolutionResponse struct {
	ID          int64     `json:"id"`
	StudentID   int64     `json:"student_id"`
	SessionDate string    `json:"session_date"`
	Focus       string    `json:"focus"`
	Progress    string    `json:"progress"`
	PainLevel   int       `json:"pain_level"`
	NextSession string    `json:"next_session,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func EvolutionToResponse(evolution *entity.Evolution) EvolutionResponse {
	resp := EvolutionResponse{
		ID:          evolution.ID,
		StudentID:   evolution.StudentID,
		SessionDate: evolution.SessionDate.Format("2006-01-02"),
		Focus:       evolution.Focus,
		Progress:    evolution.Progress,
		PainLevel:   evolution.PainLevel,
		CreatedAt:   evolution.CreatedAt,
	}
	if evolution.NextSession != nil {
		resp.NextSession = evolution.NextSession.Format("2006-01-02")
	}
	return resp
}
