package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance entrada y salida de un empleado en un día. Una por empleado y fecha.
type Attendance struct {
	ID         string
	EmployeeID string
	Username   string
	ModuleID   string // vacío si el empleado no tiene módulo
	Shift      string // turno declarado al entrar
	Date       time.Time
	CheckIn    time.Time
	CheckOut   *time.Time
}

// WorkedHours horas entre entrada y salida a 2 decimales; cero mientras no haya salida.
func (a *Attendance) WorkedHours() decimal.Decimal {
	if a.CheckOut == nil || a.CheckOut.Before(a.CheckIn) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(a.CheckOut.Sub(a.CheckIn).Hours()).Round(2)
}
