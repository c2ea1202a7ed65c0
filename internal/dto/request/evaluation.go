package request

type EvaluationRequest struct {
	StudentID    int64   `json:"student_id" validate:"required"`
	Date         string  `json:"date" validate:"required,datetime=2006-01-02"`
	WeightKg     float64 `json:"weight_kg" validate:"required,gt=0"`
	HeightM      float64 `json:"height_m" validate:"required,gt=0"`
	Flexibility  int     `json:"flexibility" validate:"required,gte=1,lte=10"`
	Strength     int     `json:"strength" validate:"required,gte=1,lte=10"`
	Balance      int     `json:"balance" validate:"required,gte=1,lte=10"`
	Observations string  `json:"observations"`
}
