package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string // nombre visible; con él se atribuyen los movimientos
	Role         string // admin, user
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
