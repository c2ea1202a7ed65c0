package entity

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleReception UserRole = "reception"
)

type User struct {
	Base
	Name     string   `db:"name"`
	Email    string   `db:"email"`
	Password string   `db:"password"` // bcrypt hash
	Role     UserRole `db:"role"`
}
