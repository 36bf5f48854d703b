package payroll

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Nomina-api/internal/application/access"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/domain"
	domcommission "github.com/jhoicas/Nomina-api/internal/domain/commission"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	dompayroll "github.com/jhoicas/Nomina-api/internal/domain/payroll"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Overrides rangos explícitos por grupo que sustituyen a los del periodo.
type Overrides struct {
	GroupA *entity.DateRange
	GroupC *entity.DateRange
}

func (o Overrides) rangeFor(p *entity.PayrollPeriod, group string) entity.DateRange {
	switch group {
	case entity.PayrollGroupA:
		if o.GroupA != nil {
			return *o.GroupA
		}
	case entity.PayrollGroupC:
		if o.GroupC != nil {
			return *o.GroupC
		}
	}
	return p.RangeFor(group)
}

// ComputationUseCase nómina por empleado y del periodo completo.
type ComputationUseCase struct {
	periods     *PeriodManager
	records     repository.PayrollRecordRepository
	employees   repository.EmployeeRepository
	commissions CommissionSource
	xlsx        SpreadsheetWriter
	pdf         PDFRenderer
}

// NewComputationUseCase construye el caso de uso.
func NewComputationUseCase(
	periods *PeriodManager,
	records repository.PayrollRecordRepository,
	employees repository.EmployeeRepository,
	commissions CommissionSource,
	xlsx SpreadsheetWriter,
	pdf PDFRenderer,
) *ComputationUseCase {
	return &ComputationUseCase{
		periods:     periods,
		records:     records,
		employees:   employees,
		commissions: commissions,
		xlsx:        xlsx,
		pdf:         pdf,
	}
}

// ComputeSummary nómina de todos los empleados activos de los grupos A y C.
// Solo lectura: no modifica ventas, chips ni registros de nómina.
func (uc *ComputationUseCase) ComputeSummary(ctx context.Context, actor access.Actor, periodID string, ov Overrides) (*dto.PayrollSummaryResponse, error) {
	if err := access.Require(actor, access.ViewPayroll); err != nil {
		return nil, err
	}
	p, err := uc.periods.Resolve(ctx, periodID)
	if err != nil {
		return nil, err
	}
	lines, err := uc.summaryLines(ctx, p, ov)
	if err != nil {
		return nil, err
	}
	return &dto.PayrollSummaryResponse{PeriodID: p.ID, Lines: lines}, nil
}

func (uc *ComputationUseCase) summaryLines(ctx context.Context, p *entity.PayrollPeriod, ov Overrides) ([]dto.PayrollLine, error) {
	employees, err := uc.employees.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar empleados: %w", err)
	}
	records, err := uc.records.ListByPeriod(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("registros de nómina: %w", err)
	}
	byEmployee := make(map[string]*entity.PayrollEmployeeRecord, len(records))
	for _, r := range records {
		byEmployee[r.EmployeeID] = r
	}

	// una agregación masiva por grupo; equivalente a la individual por empleado
	totals := map[string]map[string]domcommission.Totals{}
	for _, g := range []string{entity.PayrollGroupA, entity.PayrollGroupC} {
		all, err := uc.commissions.AggregateForAllEmployees(ctx, ov.rangeFor(p, g))
		if err != nil {
			return nil, err
		}
		totals[g] = all
	}

	lines := make([]dto.PayrollLine, 0, len(employees))
	for _, e := range employees {
		group, ok := dompayroll.Group(e.Username)
		if !ok {
			continue
		}
		r := ov.rangeFor(p, group)
		lines = append(lines, buildLine(e, group, r, totals[group][e.ID].Grand(), byEmployee[e.ID]))
	}
	return lines, nil
}

// EmployeeDetail nómina individual con desglose. Cualquier empleado es consultable,
// pertenezca o no a un grupo; sin grupo se usa el rango global del periodo.
func (uc *ComputationUseCase) EmployeeDetail(ctx context.Context, actor access.Actor, employeeID, periodID string, override *entity.DateRange) (*dto.PayrollDetailResponse, error) {
	if employeeID != actor.EmployeeID {
		if err := access.Require(actor, access.ViewPayroll); err != nil {
			return nil, err
		}
	}
	p, err := uc.periods.Resolve(ctx, periodID)
	if err != nil {
		return nil, err
	}
	e, err := uc.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.NotFound("empleado")
	}
	group, _ := dompayroll.Group(e.Username)
	r := p.RangeFor(group)
	if override != nil {
		if !override.Valid() {
			return nil, domain.Invalid("rango de fechas inválido")
		}
		r = *override
	}
	t, err := uc.commissions.AggregateCommissions(ctx, e.ID, r)
	if err != nil {
		return nil, err
	}
	rec, err := uc.records.Get(ctx, p.ID, e.ID)
	if err != nil {
		return nil, err
	}
	return &dto.PayrollDetailResponse{
		PeriodID: p.ID,
		Line:     buildLine(e, group, r, t.Grand(), rec),
		Totals: dto.CommissionTotalsResponse{
			EmployeeID:  e.ID,
			Start:       r.Start.Format(dto.DateLayout),
			End:         r.End.Format(dto.DateLayout),
			Accessories: t.Accessories,
			Phones:      t.Phones,
			Chips:       t.Chips,
			Grand:       t.Grand(),
		},
	}, nil
}

// MySummary nómina del propio empleado en el periodo activo.
func (uc *ComputationUseCase) MySummary(ctx context.Context, actor access.Actor) (*dto.PayrollDetailResponse, error) {
	return uc.EmployeeDetail(ctx, actor, actor.EmployeeID, "", nil)
}

// UpdateFields actualización parcial de horas extra, precio, sanciones y pendientes.
// Crea el registro si no existe y recalcula el pago de horas extra.
func (uc *ComputationUseCase) UpdateFields(ctx context.Context, actor access.Actor, employeeID string, in dto.UpdatePayrollRequest) (*dto.PayrollRecordResponse, error) {
	if err := access.Require(actor, access.ManagePayroll); err != nil {
		return nil, err
	}
	for _, v := range []*decimal.Decimal{in.OvertimeHours, in.OvertimeRate, in.Sanctions, in.PendingCommissions} {
		if v != nil && v.IsNegative() {
			return nil, domain.Invalid("los campos de nómina no admiten valores negativos")
		}
	}
	e, err := uc.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.NotFound("empleado")
	}
	// el bloqueo del periodo serializa las ediciones: cada una lee el registro ya actualizado
	var rec *entity.PayrollEmployeeRecord
	err = uc.periods.WithOpenPeriod(ctx, in.PeriodID, func(p *entity.PayrollPeriod, _ repository.PayrollPeriodRepository, records repository.PayrollRecordRepository) error {
		cur, err := records.Get(ctx, p.ID, e.ID)
		if err != nil {
			return err
		}
		if cur == nil {
			cur = &entity.PayrollEmployeeRecord{ID: uuid.New().String(), PeriodID: p.ID, EmployeeID: e.ID}
		}
		if in.OvertimeHours != nil {
			cur.OvertimeHours = *in.OvertimeHours
		}
		if in.OvertimeRate != nil {
			cur.OvertimeRate = *in.OvertimeRate
		}
		if in.Sanctions != nil {
			cur.Sanctions = *in.Sanctions
		}
		if in.PendingCommissions != nil {
			cur.PendingCommissions = *in.PendingCommissions
		}
		cur.RecomputeOvertime()
		cur.UpdatedAt = time.Now()
		rec = cur
		return records.Upsert(ctx, cur)
	})
	if err != nil {
		return nil, err
	}
	return &dto.PayrollRecordResponse{
		PeriodID:           rec.PeriodID,
		EmployeeID:         rec.EmployeeID,
		OvertimeHours:      rec.OvertimeHours,
		OvertimeRate:       rec.OvertimeRate,
		OvertimePay:        rec.OvertimePay,
		Sanctions:          rec.Sanctions,
		PendingCommissions: rec.PendingCommissions,
	}, nil
}

// Formatos de exportación.
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// ExportHeaders columnas del archivo de nómina.
var ExportHeaders = []string{
	"Empleado", "Sueldo base", "Horas extra", "Precio hora extra", "Pago horas extra",
	"Comisiones", "Comisiones pendientes", "Sanciones", "Total a pagar",
}

// Export genera el archivo de nómina con los mismos renglones que ComputeSummary.
func (uc *ComputationUseCase) Export(ctx context.Context, actor access.Actor, periodID, format string) (*dto.FileResponse, error) {
	if err := access.Require(actor, access.ViewPayroll); err != nil {
		return nil, err
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatXLSX
	}
	if format != FormatXLSX && format != FormatPDF {
		return nil, domain.Invalid("formato %q no soportado (xlsx o pdf)", format)
	}
	p, err := uc.periods.Resolve(ctx, periodID)
	if err != nil {
		return nil, err
	}
	lines, err := uc.summaryLines(ctx, p, Overrides{})
	if err != nil {
		return nil, err
	}
	sheet := Sheet{
		Title:   fmt.Sprintf("Nómina %s a %s", p.Start.Format(dto.DateLayout), p.End.Format(dto.DateLayout)),
		Headers: ExportHeaders,
		Lines:   lines,
	}
	name := fmt.Sprintf("nomina_%s_%s.%s", p.Start.Format(dto.DateLayout), p.End.Format(dto.DateLayout), format)

	if format == FormatPDF {
		content, err := uc.pdf.RenderPayroll(sheet)
		if err != nil {
			return nil, fmt.Errorf("generar PDF de nómina: %w", err)
		}
		return &dto.FileResponse{Filename: name, ContentType: "application/pdf", Content: content}, nil
	}
	content, err := uc.xlsx.WritePayroll(sheet)
	if err != nil {
		return nil, fmt.Errorf("generar xlsx de nómina: %w", err)
	}
	return &dto.FileResponse{
		Filename:    name,
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     content,
	}, nil
}

func buildLine(e *entity.Employee, group string, r entity.DateRange, commissions decimal.Decimal, rec *entity.PayrollEmployeeRecord) dto.PayrollLine {
	if rec == nil {
		rec = &entity.PayrollEmployeeRecord{}
	}
	total := dompayroll.TotalPayable(dompayroll.Amounts{
		BaseSalary:         e.BaseSalary,
		Commissions:        commissions,
		OvertimePay:        rec.OvertimePay,
		PendingCommissions: rec.PendingCommissions,
		Sanctions:          rec.Sanctions,
	})
	return dto.PayrollLine{
		EmployeeID:         e.ID,
		Username:           e.Username,
		Group:              group,
		Start:              r.Start.Format(dto.DateLayout),
		End:                r.End.Format(dto.DateLayout),
		BaseSalary:         e.BaseSalary,
		Commissions:        commissions.Round(2),
		OvertimeHours:      rec.OvertimeHours,
		OvertimeRate:       rec.OvertimeRate,
		OvertimePay:        rec.OvertimePay.Round(2),
		PendingCommissions: rec.PendingCommissions,
		Sanctions:          rec.Sanctions,
		TotalPayable:       total,
	}
}
