package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckInRequest entrada del día con el turno declarado.
type CheckInRequest struct {
	Shift string `json:"shift" validate:"required,max=30"`
}

// AttendanceQuery filtros del registro de asistencia.
type AttendanceQuery struct {
	DateRangeQuery
	ModuleID   string `query:"module_id" validate:"omitempty,uuid"`
	EmployeeID string `query:"employee_id" validate:"omitempty,uuid"`
}

// AttendanceResponse registro de asistencia de un día.
type AttendanceResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	Username    string          `json:"username"`
	ModuleID    string          `json:"module_id,omitempty"`
	Shift       string          `json:"shift"`
	Date        string          `json:"date"`
	CheckIn     time.Time       `json:"check_in"`
	CheckOut    *time.Time      `json:"check_out,omitempty"`
	WorkedHours decimal.Decimal `json:"worked_hours"`
}
