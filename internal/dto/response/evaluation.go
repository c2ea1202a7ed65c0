package response

import (
	"time"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/entity"
)

type EvaluationResponse struct {
	ID           int64     `json:"id"`
	StudentID    int64     `json:"student_id"`
	Date         string    `json:"date"`
	WeightKg     float64   `json:"weight_kg"`
	HeightM      float64   `json:"height_m"`
	BMI          float64   `json:"bmi"`
	Flexibility  int       `json:"flexibility"`
	Strength     int       `json:"strength"`
	Balance      int       `json:"balance"`
	Observations string    `json:"observations"`
	CreatedAt    time.Time `json:"created_at"`
}

func EvaluationToResponse(evaluation *entity.Evaluation) EvaluationResponse {
	return EvaluationResponse{
		ID:           evaluation.ID,
		StudentID:    evaluation.StudentID,
		Date:         evaluation.Date.Format("2006-01-02"),
		WeightKg:     evaluation.WeightKg,
		HeightM:      evaluation.HeightM,
		BMI:          evaluation.BMI(),
		Flexibility:  evaluation.Flexibility,
		Strength:     evaluation.Strength,
		Balance:      evaluation.Balance,
		Observations: evaluation.Observations,
		CreatedAt:    evaluation.CreatedAt,
	}
}
