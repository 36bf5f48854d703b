package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest alta de empleado (password en texto, se hashea en el caso de uso).
type CreateEmployeeRequest struct {
	Username   string          `json:"username" validate:"required,min=3,max=60"`
	Password   string          `json:"password" validate:"required,min=8"`
	Role       string          `json:"role" validate:"required,oneof=admin encargado asesor"`
	ModuleID   string          `json:"module_id" validate:"omitempty,uuid"`
	BaseSalary decimal.Decimal `json:"base_salary" validate:"gte=0"`
}

// UpdateEmployeeRequest cambios parciales de un empleado.
type UpdateEmployeeRequest struct {
	Role       *string          `json:"role" validate:"omitempty,oneof=admin encargado asesor"`
	ModuleID   *string          `json:"module_id" validate:"omitempty"`
	BaseSalary *decimal.Decimal `json:"base_salary" validate:"omitempty,gte=0"`
	Active     *bool            `json:"active"`
	Password   *string          `json:"password" validate:"omitempty,min=8"`
}

// EmployeeResponse salida de un empleado (sin password).
type EmployeeResponse struct {
	ID         string          `json:"id"`
	Username   string          `json:"username"`
	Role       string          `json:"role"`
	ModuleID   string          `json:"module_id,omitempty"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"created_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT y datos del empleado.
type LoginResponse struct {
	Token    string           `json:"token"`
	Employee EmployeeResponse `json:"employee"`
}

// CreateModuleRequest alta de módulo (tienda).
type CreateModuleRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// ModuleResponse salida de un módulo.
type ModuleResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
