package entity

import "time"

type StudentStatus string

const (
	StudentActive    StudentStatus = "Ativo"
	StudentInactive  StudentStatus = "Inativo"
	StudentSuspended StudentStatus = "Suspenso"
)

func (s StudentStatus) Valid() bool {
	switch s {
	case StudentActive, StudentInactive, StudentSuspended:
		return true
	}
	return false
}

type Student struct {
	Base
	Name         string        `db:"name"`
	Email        string        `db:"email"`
	Phone        string        `db:"phone"`
	BirthDate    *time.Time    `db:"birth_date"`
	Address      string        `db:"address"`
	Status       StudentStatus `db:"status"`
	Plan         string        `db:"plan"` // "Mensal", "Trimestral", ...
	MedicalNotes string        `db:"medical_notes"`
}
