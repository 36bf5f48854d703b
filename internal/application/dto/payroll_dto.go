package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRangeDTO rango de fechas en cuerpos JSON.
type DateRangeDTO struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02"`
	End   string `json:"end" validate:"required,datetime=2006-01-02"`
}

// OpenPeriodRequest apertura de periodo de nómina.
type OpenPeriodRequest struct {
	Start  string        `json:"start" validate:"required,datetime=2006-01-02"`
	End    string        `json:"end" validate:"required,datetime=2006-01-02"`
	GroupA *DateRangeDTO `json:"group_a" validate:"omitempty"`
	GroupC *DateRangeDTO `json:"group_c" validate:"omitempty"`
}

// GroupRangesRequest sub-rangos por grupo.
type GroupRangesRequest struct {
	GroupA *DateRangeDTO `json:"group_a" validate:"omitempty"`
	GroupC *DateRangeDTO `json:"group_c" validate:"omitempty"`
}

// PayrollPeriodResponse salida de un periodo.
type PayrollPeriodResponse struct {
	ID       string       `json:"id"`
	Start    string       `json:"start"`
	End      string       `json:"end"`
	GroupA   DateRangeDTO `json:"group_a"`
	GroupC   DateRangeDTO `json:"group_c"`
	Active   bool         `json:"active"`
	Status   string       `json:"status"`
	ClosedAt *time.Time   `json:"closed_at,omitempty"`
}

// SummaryQuery sobre-escrituras opcionales de rango por grupo.
type SummaryQuery struct {
	PeriodID string `query:"period_id" validate:"omitempty,uuid"`
	StartA   string `query:"start_a" validate:"omitempty,datetime=2006-01-02"`
	EndA     string `query:"end_a" validate:"omitempty,datetime=2006-01-02"`
	StartC   string `query:"start_c" validate:"omitempty,datetime=2006-01-02"`
	EndC     string `query:"end_c" validate:"omitempty,datetime=2006-01-02"`
}

// PayrollLine renglón de nómina de un empleado.
type PayrollLine struct {
	EmployeeID         string          `json:"employee_id"`
	Username           string          `json:"username"`
	Group              string          `json:"group,omitempty"`
	Start              string          `json:"start"`
	End                string          `json:"end"`
	BaseSalary         decimal.Decimal `json:"base_salary"`
	Commissions        decimal.Decimal `json:"commissions"`
	OvertimeHours      decimal.Decimal `json:"overtime_hours"`
	OvertimeRate       decimal.Decimal `json:"overtime_rate"`
	OvertimePay        decimal.Decimal `json:"overtime_pay"`
	PendingCommissions decimal.Decimal `json:"pending_commissions"`
	Sanctions          decimal.Decimal `json:"sanctions"`
	TotalPayable       decimal.Decimal `json:"total_payable"`
}

// PayrollSummaryResponse nómina del periodo.
type PayrollSummaryResponse struct {
	PeriodID string        `json:"period_id"`
	Lines    []PayrollLine `json:"lines"`
}

// PayrollDetailResponse nómina individual con desglose de comisiones.
type PayrollDetailResponse struct {
	PeriodID string                   `json:"period_id"`
	Line     PayrollLine              `json:"line"`
	Totals   CommissionTotalsResponse `json:"commission_breakdown"`
}

// UpdatePayrollRequest actualización parcial de campos de nómina.
type UpdatePayrollRequest struct {
	PeriodID           string           `json:"period_id" validate:"omitempty,uuid"`
	OvertimeHours      *decimal.Decimal `json:"overtime_hours" validate:"omitempty,gte=0"`
	OvertimeRate       *decimal.Decimal `json:"overtime_rate" validate:"omitempty,gte=0"`
	Sanctions          *decimal.Decimal `json:"sanctions" validate:"omitempty,gte=0"`
	PendingCommissions *decimal.Decimal `json:"pending_commissions" validate:"omitempty,gte=0"`
}

// PayrollRecordResponse registro de campos ajustables.
type PayrollRecordResponse struct {
	PeriodID           string          `json:"period_id"`
	EmployeeID         string          `json:"employee_id"`
	OvertimeHours      decimal.Decimal `json:"overtime_hours"`
	OvertimeRate       decimal.Decimal `json:"overtime_rate"`
	OvertimePay        decimal.Decimal `json:"overtime_pay"`
	Sanctions          decimal.Decimal `json:"sanctions"`
	PendingCommissions decimal.Decimal `json:"pending_commissions"`
}
