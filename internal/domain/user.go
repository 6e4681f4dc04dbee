package domain

import "time"

// User roles recognized by the role middleware.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
)

// User represents an identity record
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	CPF          string    `json:"cpf" db:"cpf"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
