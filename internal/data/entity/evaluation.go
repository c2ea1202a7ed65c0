package entity

import (
	"math"
	"time"
)

// Evaluation is one physical-evaluation form filled for a student.
// Scores are on a 1-10 scale.
type Evaluation struct {
	Base
	StudentID    int64     `db:"student_id"`
	Date         time.Time `db:"date"`
	WeightKg     float64   `db:"weight_kg"`
	HeightM      float64   `db:"height_m"`
	Flexibility  int       `db:"flexibility"`
	Strength     int       `db:"strength"`
	Balance      int       `db:"balance"`
	Observations string    `db:"observations"`
}

// BMI returns weight/height² rounded to one decimal, 0 when height is unset.
func (e Evaluation) BMI() float64 {
	return ComputeBMI(e.WeightKg, e.HeightM)
}

func ComputeBMI(weightKg, heightM float64) float64 {
	if heightM <= 0 {
		return 0
	}
	return math.Round(weightKg/(heightM*heightM)*10) / 10
}
