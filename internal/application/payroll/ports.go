package payroll

import (
	"context"

	"github.com/jhoicas/Nomina-api/internal/application/dto"
	domcommission "github.com/jhoicas/Nomina-api/internal/domain/commission"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// TxRunner ejecuta fn dentro de una transacción con periodos y registros atados a ella.
type TxRunner interface {
	RunPayroll(ctx context.Context, fn func(
		periods repository.PayrollPeriodRepository,
		records repository.PayrollRecordRepository,
	) error) error
}

// CommissionSource agregador de comisiones (individual y masivo).
type CommissionSource interface {
	AggregateCommissions(ctx context.Context, employeeID string, r entity.DateRange) (domcommission.Totals, error)
	AggregateForAllEmployees(ctx context.Context, r entity.DateRange) (map[string]domcommission.Totals, error)
}

// Sheet documento tabular de nómina listo para exportar.
type Sheet struct {
	Title   string
	Headers []string
	Lines   []dto.PayrollLine
}

// SpreadsheetWriter genera el libro .xlsx de la nómina.
type SpreadsheetWriter interface {
	WritePayroll(sheet Sheet) ([]byte, error)
}

// PDFRenderer genera la nómina en PDF.
type PDFRenderer interface {
	RenderPayroll(sheet Sheet) ([]byte, error)
}

// LineAmounts montos del renglón en el orden de ExportHeaders, sin la columna de empleado.
func LineAmounts(l dto.PayrollLine) []decimal.Decimal {
	return []decimal.Decimal{
		l.BaseSalary, l.OvertimeHours, l.OvertimeRate, l.OvertimePay,
		l.Commissions, l.PendingCommissions, l.Sanctions, l.TotalPayable,
	}
}
