package response

import (
	"time"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/entity"
)

type InstructorResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CREF        string    `json:"cref"`
	Specialties []string  `json:"specialties"`
	Status      string    `json:"status"`
	HireDate    string    `json:"hire_date,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func InstructorToResponse(instructor *entity.Instructor) InstructorResponse {
	resp := InstructorResponse{
		ID:          instructor.ID,
		Name:        instructor.Name,
		Email:       instructor.Email,
		Phone:       instructor.Phone,
		CREF:        instructor.CREF,
		Specialties: instructor.Specialties,
		Status:      string(instructor.Status),
		CreatedAt:   instructor.CreatedAt,
	}
	if resp.Specialties == nil {
		resp.Specialties = []string{}
	}
	if instructor.HireDate != nil {
		resp.HireDate = instructor.HireDate.Format("2006-01-02")
	}
	return resp
}
