package payroll_test

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Nomina-api/internal/application/payroll"
	domcommission "github.com/jhoicas/Nomina-api/internal/domain/commission"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ── Periodos en memoria con transacción simulada ─────────────────────────────

type memPeriods struct {
	rows []*entity.PayrollPeriod
	// failCreate fuerza error al crear para verificar el rollback
	failCreate error
	// beforeLock simula un cambio concurrente justo antes de bloquear la fila
	beforeLock func()
}

func (m *memPeriods) Create(_ context.Context, p *entity.PayrollPeriod) error {
	if m.failCreate != nil {
		return m.failCreate
	}
	cp := *p
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *memPeriods) GetByID(_ context.Context, id string) (*entity.PayrollPeriod, error) {
	for _, p := range m.rows {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memPeriods) GetForUpdate(ctx context.Context, id string) (*entity.PayrollPeriod, error) {
	if m.beforeLock != nil {
		m.beforeLock()
		m.beforeLock = nil
	}
	return m.GetByID(ctx, id)
}

func (m *memPeriods) GetActive(_ context.Context) (*entity.PayrollPeriod, error) {
	for _, p := range m.rows {
		if p.Active {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memPeriods) CloseActive(_ context.Context, at time.Time) (int, error) {
	n := 0
	for _, p := range m.rows {
		if p.Active {
			p.Active = false
			p.Status = entity.PayrollStatusClosed
			p.ClosedAt = &at
			n++
		}
	}
	return n, nil
}

func (m *memPeriods) Close(_ context.Context, id string, at time.Time) (bool, error) {
	for _, p := range m.rows {
		if p.ID == id && p.Active {
			p.Active = false
			p.Status = entity.PayrollStatusClosed
			p.ClosedAt = &at
			return true, nil
		}
	}
	return false, nil
}

func (m *memPeriods) UpdateRanges(_ context.Context, p *entity.PayrollPeriod) error {
	for i, row := range m.rows {
		if row.ID == p.ID {
			cp := *p
			m.rows[i] = &cp
		}
	}
	return nil
}

func (m *memPeriods) List(_ context.Context) ([]*entity.PayrollPeriod, error) {
	return m.rows, nil
}

func (m *memPeriods) activeCount() int {
	n := 0
	for _, p := range m.rows {
		if p.Active {
			n++
		}
	}
	return n
}

type memTx struct {
	periods *memPeriods
	records *memRecords
}

func (t memTx) RunPayroll(ctx context.Context, fn func(repository.PayrollPeriodRepository, repository.PayrollRecordRepository) error) error {
	snapshot := make([]entity.PayrollPeriod, len(t.periods.rows))
	for i, p := range t.periods.rows {
		snapshot[i] = *p
	}
	var records repository.PayrollRecordRepository
	if t.records != nil {
		records = t.records
	}
	if err := fn(t.periods, records); err != nil {
		rows := make([]*entity.PayrollPeriod, len(snapshot))
		for i := range snapshot {
			p := snapshot[i]
			rows[i] = &p
		}
		t.periods.rows = rows
		return err
	}
	return nil
}

// ── Registros y empleados ────────────────────────────────────────────────────

type memRecords struct {
	rows map[string]*entity.PayrollEmployeeRecord
}

func key(periodID, employeeID string) string { return periodID + "/" + employeeID }

func (m *memRecords) Get(_ context.Context, periodID, employeeID string) (*entity.PayrollEmployeeRecord, error) {
	r, ok := m.rows[key(periodID, employeeID)]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *memRecords) ListByPeriod(_ context.Context, periodID string) ([]*entity.PayrollEmployeeRecord, error) {
	var out []*entity.PayrollEmployeeRecord
	for _, r := range m.rows {
		if r.PeriodID == periodID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRecords) Upsert(_ context.Context, r *entity.PayrollEmployeeRecord) error {
	cp := *r
	m.rows[key(r.PeriodID, r.EmployeeID)] = &cp
	return nil
}

type memEmployees struct {
	rows []*entity.Employee
}

func (m *memEmployees) Create(_ context.Context, e *entity.Employee) error {
	m.rows = append(m.rows, e)
	return nil
}

func (m *memEmployees) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	for _, e := range m.rows {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (m *memEmployees) GetByUsername(_ context.Context, username string) (*entity.Employee, error) {
	for _, e := range m.rows {
		if e.Username == username {
			return e, nil
		}
	}
	return nil, nil
}

func (m *memEmployees) Update(context.Context, *entity.Employee) error { return nil }

func (m *memEmployees) ListActive(context.Context) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range m.rows {
		if e.Active {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (m *memEmployees) List(ctx context.Context, _, _ int) ([]*entity.Employee, error) {
	return m.ListActive(ctx)
}

// ── Comisiones fijas por empleado y rango ────────────────────────────────────

type fixedCommissions struct {
	// byRange[inicio][empleado] = comisión total
	byRange map[string]map[string]decimal.Decimal
	calls   []entity.DateRange
}

func (f *fixedCommissions) totals(employeeID string, r entity.DateRange) domcommission.Totals {
	return domcommission.Totals{Accessories: f.byRange[r.Start.Format("2006-01-02")][employeeID]}
}

func (f *fixedCommissions) AggregateCommissions(_ context.Context, employeeID string, r entity.DateRange) (domcommission.Totals, error) {
	f.calls = append(f.calls, r)
	return f.totals(employeeID, r), nil
}

func (f *fixedCommissions) AggregateForAllEmployees(_ context.Context, r entity.DateRange) (map[string]domcommission.Totals, error) {
	f.calls = append(f.calls, r)
	out := map[string]domcommission.Totals{}
	for id := range f.byRange[r.Start.Format("2006-01-02")] {
		out[id] = f.totals(id, r)
	}
	return out, nil
}

// ── Exportadores que capturan la hoja ────────────────────────────────────────

type captureWriter struct {
	sheet payroll.Sheet
}

func (c *captureWriter) WritePayroll(s payroll.Sheet) ([]byte, error) {
	c.sheet = s
	return []byte("xlsx"), nil
}

func (c *captureWriter) RenderPayroll(s payroll.Sheet) ([]byte, error) {
	c.sheet = s
	return []byte("%PDF"), nil
}

var (
	_ repository.PayrollPeriodRepository = (*memPeriods)(nil)
	_ repository.PayrollRecordRepository = (*memRecords)(nil)
	_ repository.EmployeeRepository      = (*memEmployees)(nil)
	_ payroll.TxRunner                   = memTx{}
	_ payroll.CommissionSource           = (*fixedCommissions)(nil)
)
