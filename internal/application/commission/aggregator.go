package commission

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Nomina-api/internal/application/access"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/domain"
	domcommission "github.com/jhoicas/Nomina-api/internal/domain/commission"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/payroll"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
)

// Aggregator calcula comisiones de empleados en un rango de fechas.
// La versión individual y la masiva comparten fuente de datos y acumulador.
type Aggregator struct {
	sales     repository.SaleRepository
	chips     repository.ChipSaleRepository
	employees repository.EmployeeRepository
	rules     RuleSource
	loc       *time.Location
}

// NewAggregator construye el agregador. loc es la zona horaria de negocio.
func NewAggregator(sales repository.SaleRepository, chips repository.ChipSaleRepository, employees repository.EmployeeRepository, rules RuleSource, loc *time.Location) *Aggregator {
	if loc == nil {
		loc = time.UTC
	}
	return &Aggregator{sales: sales, chips: chips, employees: employees, rules: rules, loc: loc}
}

type sourceRows struct {
	rules *domcommission.RuleSet
	sales []*entity.Sale
	chips []*entity.ChipSale
}

// load trae ventas no canceladas y chips validados del rango. employeeID vacío = todos.
func (a *Aggregator) load(ctx context.Context, employeeID string, r entity.DateRange) (*sourceRows, error) {
	if !r.Valid() {
		return nil, domain.Invalid("rango de fechas inválido: inicio posterior al fin")
	}
	rs, err := a.rules.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := a.sales.List(ctx, repository.SaleFilter{EmployeeID: employeeID, From: r.Start, To: r.End})
	if err != nil {
		return nil, fmt.Errorf("consultar ventas: %w", err)
	}
	chips, err := a.chips.List(ctx, repository.ChipFilter{EmployeeID: employeeID, From: r.Start, To: r.End, ValidatedOnly: true})
	if err != nil {
		return nil, fmt.Errorf("consultar chips: %w", err)
	}
	return &sourceRows{rules: rs, sales: sales, chips: chips}, nil
}

// AggregateCommissions totales de comisión de un empleado en [start, end].
func (a *Aggregator) AggregateCommissions(ctx context.Context, employeeID string, r entity.DateRange) (domcommission.Totals, error) {
	rows, err := a.load(ctx, employeeID, r)
	if err != nil {
		return domcommission.Totals{}, err
	}
	totals := domcommission.Accumulate(rows.rules, rows.sales, rows.chips)
	return totals[employeeID].Rounded(), nil
}

// AggregateForAllEmployees totales por empleado en [start, end]. Incluye a todos los empleados
// activos (en cero si no vendieron) y a cualquier empleado con ventas en el rango.
func (a *Aggregator) AggregateForAllEmployees(ctx context.Context, r entity.DateRange) (map[string]domcommission.Totals, error) {
	rows, err := a.load(ctx, "", r)
	if err != nil {
		return nil, err
	}
	totals := domcommission.Accumulate(rows.rules, rows.sales, rows.chips)
	active, err := a.employees.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar empleados: %w", err)
	}
	out := make(map[string]domcommission.Totals, len(active))
	for _, e := range active {
		out[e.ID] = domcommission.Totals{}.Rounded()
	}
	for id, t := range totals {
		out[id] = t.Rounded()
	}
	return out, nil
}

// EmployeeTotals versión para la API: valida permisos y el empleado.
func (a *Aggregator) EmployeeTotals(ctx context.Context, actor access.Actor, employeeID string, r entity.DateRange) (*dto.CommissionTotalsResponse, error) {
	if err := a.canView(actor, employeeID); err != nil {
		return nil, err
	}
	emp, err := a.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.NotFound("empleado")
	}
	t, err := a.AggregateCommissions(ctx, employeeID, r)
	if err != nil {
		return nil, err
	}
	out := toTotalsResponse(employeeID, r, t)
	return &out, nil
}

// AllTotals totales de todos los empleados (solo quien puede ver comisiones ajenas).
func (a *Aggregator) AllTotals(ctx context.Context, actor access.Actor, r entity.DateRange) ([]dto.CommissionTotalsResponse, error) {
	if err := access.Require(actor, access.ViewAllCommissions); err != nil {
		return nil, err
	}
	all, err := a.AggregateForAllEmployees(ctx, r)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CommissionTotalsResponse, 0, len(all))
	for id, t := range all {
		out = append(out, toTotalsResponse(id, r, t))
	}
	return out, nil
}

// Cycle reporte del ciclo semanal (lunes a domingo) con detalle por venta.
// Sin employeeID se usa el propio actor; sin rango, la semana actual.
func (a *Aggregator) Cycle(ctx context.Context, actor access.Actor, employeeID string, custom *entity.DateRange) (*dto.CycleResponse, error) {
	if employeeID == "" {
		employeeID = actor.EmployeeID
	}
	if err := a.canView(actor, employeeID); err != nil {
		return nil, err
	}
	cycle := payroll.CycleFor(time.Now().In(a.loc))
	r := entity.DateRange{Start: cycle.Start, End: cycle.End}
	if custom != nil {
		if err := access.Require(actor, access.CustomCycleRange); err != nil {
			return nil, err
		}
		r = *custom
		cycle.PayDay = r.End.AddDate(0, 0, payroll.PayDayOffset)
	}
	rows, err := a.load(ctx, employeeID, r)
	if err != nil {
		return nil, err
	}

	out := &dto.CycleResponse{
		EmployeeID: employeeID,
		Start:      r.Start.Format(dto.DateLayout),
		End:        r.End.Format(dto.DateLayout),
		PayDay:     cycle.PayDay.Format(dto.DateLayout),
	}
	var totals domcommission.Totals
	for _, s := range rows.sales {
		c := totals.AddSale(rows.rules, s)
		if !c.IsPositive() {
			continue
		}
		line := dto.CommissionLine{
			ID:         s.ID,
			Date:       s.Date.Format(dto.DateLayout),
			Product:    s.Product,
			Quantity:   s.Quantity,
			SaleType:   s.SaleType,
			Commission: c.Round(2),
		}
		if s.ProductType == entity.ProductTypePhone {
			out.Phones = append(out.Phones, line)
		} else {
			out.Accessories = append(out.Accessories, line)
		}
	}
	for _, c := range rows.chips {
		amount := totals.AddChip(c)
		if !amount.IsPositive() {
			continue
		}
		out.Chips = append(out.Chips, dto.CommissionLine{
			ID:         c.ID,
			Date:       c.Date.Format(dto.DateLayout),
			Product:    c.ChipType,
			Quantity:   1,
			Commission: amount.Round(2),
		})
	}
	out.Totals = toTotalsResponse(employeeID, r, totals.Rounded())
	return out, nil
}

func (a *Aggregator) canView(actor access.Actor, employeeID string) error {
	if employeeID == actor.EmployeeID {
		return nil
	}
	return access.Require(actor, access.ViewAllCommissions)
}

func toTotalsResponse(employeeID string, r entity.DateRange, t domcommission.Totals) dto.CommissionTotalsResponse {
	return dto.CommissionTotalsResponse{
		EmployeeID:  employeeID,
		Start:       r.Start.Format(dto.DateLayout),
		End:         r.End.Format(dto.DateLayout),
		Accessories: t.Accessories,
		Phones:      t.Phones,
		Chips:       t.Chips,
		Grand:       t.Grand(),
	}
}
