package request

type EvolutionRequest struct {
	StudentID   int64  `json:"student_id" validate:"required"`
	SessionDate string `json:"session_date" validate:"required,datetime=2006-01-02"`
	Focus       string `json:"focus"`
	Progress    string `json:"progress"`
	PainLevel   int    `json:"pain_level" validate:"gte=0,lte=10"`
	NextSession string `json:"next_session" validate:"omitempty,datetime=2006-01-02"`
}
