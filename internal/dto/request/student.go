package request

type StudentRequest struct {
	Name         string `json:"name" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
	BirthDate    string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Address      string `json:"address"`
	Status       string `json:"status" validate:"omitempty,oneof=Ativo Inativo Suspenso"`
	Plan         string `json:"plan"`
	MedicalNotes string `json:"medical_notes"`
}
