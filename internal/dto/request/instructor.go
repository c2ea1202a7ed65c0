package request

type InstructorRequest struct {
	Name        string   `json:"name" validate:"required,min=2"`
	Email       string   `json:"email" validate:"required,email"`
	Phone       string   `json:"phone"`
	CREF        string   `json:"cref"`
	Specialties []string `json:"specialties"`
	Status      string   `json:"status" validate:"omitempty,oneof=Ativo Inativo Férias"`
	HireDate    string   `json:"hire_date" validate:"omitempty,datetime=2006-01-02"`
}
