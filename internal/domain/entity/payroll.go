package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un periodo de nómina.
const (
	PayrollStatusOpen   = "abierta"
	PayrollStatusClosed = "cerrada"
)

// Grupos de nómina derivados de la inicial del username.
const (
	PayrollGroupA = "A"
	PayrollGroupC = "C"
)

// DateRange rango de fechas inclusivo.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Valid indica que el inicio no es posterior al fin.
func (r DateRange) Valid() bool {
	return !r.Start.After(r.End)
}

// PayrollPeriod periodo de nómina con rango global y sub-rangos opcionales por grupo.
type PayrollPeriod struct {
	ID        string
	Start     time.Time
	End       time.Time
	GroupA    *DateRange
	GroupC    *DateRange
	Active    bool
	Status    string
	CreatedAt time.Time
	ClosedAt  *time.Time
}

// Range rango global del periodo.
func (p *PayrollPeriod) Range() DateRange {
	return DateRange{Start: p.Start, End: p.End}
}

// RangeFor rango efectivo del grupo; si no tiene sub-rango usa el global.
func (p *PayrollPeriod) RangeFor(group string) DateRange {
	switch group {
	case PayrollGroupA:
		if p.GroupA != nil {
			return *p.GroupA
		}
	case PayrollGroupC:
		if p.GroupC != nil {
			return *p.GroupC
		}
	}
	return p.Range()
}

// IsOpen indica si el periodo admite cambios.
func (p *PayrollPeriod) IsOpen() bool {
	return p.Active && p.Status == PayrollStatusOpen
}

// PayrollEmployeeRecord campos ajustables de nómina por (empleado, periodo).
type PayrollEmployeeRecord struct {
	ID                 string
	PeriodID           string
	EmployeeID         string
	OvertimeHours      decimal.Decimal
	OvertimeRate       decimal.Decimal
	OvertimePay        decimal.Decimal
	Sanctions          decimal.Decimal
	PendingCommissions decimal.Decimal
	UpdatedAt          time.Time
}

// RecomputeOvertime pago de horas extra = horas × precio.
func (r *PayrollEmployeeRecord) RecomputeOvertime() {
	r.OvertimePay = r.OvertimeHours.Mul(r.OvertimeRate)
}
