package response

import (
	"time"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/entity"
)

type StudentResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	BirthDate    string    `json:"birth_date,omitempty"`
	Address      string    `json:"address"`
	Status       string    `json:"status"`
	Plan         string    `json:"plan"`
	MedicalNotes string    `json:"medical_notes"`
	CreatedAt    time.Time `json:"created_at"`
}

func StudentToResponse(student *entity.Student) StudentResponse {
	resp := StudentResponse{
		ID:           student.ID,
		Name:         student.Name,
		Email:        student.Email,
		Phone:        student.Phone,
		Address:      student.Address,
		Status:       string(student.Status),
		Plan:         student.Plan,
		MedicalNotes: student.MedicalNotes,
		CreatedAt:    student.CreatedAt,
	}
	if student.BirthDate != nil {
		resp.BirthDate = student.BirthDate.Format("2006-01-02")
	}
	return resp
}
