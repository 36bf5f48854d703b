// Package payroll reglas puras de nómina: grupo del empleado, total a pagar y ciclo semanal.
package payroll

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Group grupo de nómina por la inicial del username ("A" o "C"). ok=false si no pertenece.
func Group(username string) (string, bool) {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(username))
	switch unicode.ToUpper(r) {
	case 'A':
		return entity.PayrollGroupA, true
	case 'C':
		return entity.PayrollGroupC, true
	}
	return "", false
}

// Amounts componentes del total a pagar.
type Amounts struct {
	BaseSalary         decimal.Decimal
	Commissions        decimal.Decimal
	OvertimePay        decimal.Decimal
	PendingCommissions decimal.Decimal
	Sanctions          decimal.Decimal
}

// TotalPayable sueldo base + comisiones + horas extra + pendientes - sanciones, a 2 decimales.
func TotalPayable(a Amounts) decimal.Decimal {
	return a.BaseSalary.
		Add(a.Commissions).
		Add(a.OvertimePay).
		Add(a.PendingCommissions).
		Sub(a.Sanctions).
		Round(2)
}

// PayDayOffset días después del domingo en que se paga el ciclo.
const PayDayOffset = 3

// Cycle ventana semanal lunes-domingo de cálculo de comisiones.
type Cycle struct {
	Start  time.Time
	End    time.Time
	PayDay time.Time
}

// CycleFor devuelve el ciclo que contiene la fecha (en su zona horaria).
func CycleFor(ref time.Time) Cycle {
	day := Date(ref)
	offset := (int(day.Weekday()) + 6) % 7 // lunes = 0
	start := day.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 6)
	return Cycle{Start: start, End: end, PayDay: end.AddDate(0, 0, PayDayOffset)}
}

// Date trunca a la fecha calendario conservando la zona horaria.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
