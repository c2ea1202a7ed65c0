package entity

import "time"

type InstructorStatus string

const (
	InstructorActive   InstructorStatus = "Ativo"
	InstructorInactive InstructorStatus = "Inativo"
	InstructorVacation InstructorStatus = "Férias"
)

func (s InstructorStatus) Valid() bool {
	switch s {
	case InstructorActive, InstructorInactive, InstructorVacation:
		return true
	}
	return false
}

type Instructor struct {
	Base
	Name        string           `db:"name"`
	Email       string           `db:"email"`
	Phone       string           `db:"phone"`
	CREF        string           `db:"cref"` // professional registration
	Specialties []string         `db:"specialties"`
	Status      InstructorStatus `db:"status"`
	HireDate    *time.Time       `db:"hire_date"`
}
