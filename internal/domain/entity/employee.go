package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para Employee.
const (
	RoleAdmin     = "admin"
	RoleEncargado = "encargado"
	RoleAsesor    = "asesor"
)

// ValidRole indica si el rol es uno de los reconocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEncargado, RoleAsesor:
		return true
	}
	return false
}

// Employee representa a un empleado (usuario del sistema) asignado opcionalmente a un módulo.
type Employee struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash
	Role         string
	ModuleID     string // vacío = sin módulo asignado
	BaseSalary   decimal.Decimal
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
