package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
)

var (
	_ repository.PayrollPeriodRepository = (*PayrollPeriodRepo)(nil)
	_ repository.PayrollRecordRepository = (*PayrollRecordRepo)(nil)
)

// PayrollPeriodRepo periodos de nómina sobre PostgreSQL (usable con pool o tx).
type PayrollPeriodRepo struct {
	q Querier
}

// NewPayrollPeriodRepository construye el adaptador.
func NewPayrollPeriodRepository(q Querier) *PayrollPeriodRepo {
	return &PayrollPeriodRepo{q: q}
}

const periodColumns = `id, start_date, end_date, group_a_start, group_a_end, group_c_start, group_c_end,
	active, status, created_at, closed_at`

// Create persiste un periodo. Un segundo periodo activo viola ux_payroll_periods_active.
func (r *PayrollPeriodRepo) Create(ctx context.Context, p *entity.PayrollPeriod) error {
	aStart, aEnd := splitRange(p.GroupA)
	cStart, cEnd := splitRange(p.GroupC)
	query := `INSERT INTO payroll_periods (` + periodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Start, p.End, aStart, aEnd, cStart, cEnd, p.Active, p.Status, p.CreatedAt, p.ClosedAt,
	)
	if err != nil {
		return wrapWrite("insert payroll period", err)
	}
	return nil
}

// GetByID obtiene un periodo por ID.
func (r *PayrollPeriodRepo) GetByID(ctx context.Context, id string) (*entity.PayrollPeriod, error) {
	return r.findOne(ctx, `SELECT `+periodColumns+` FROM payroll_periods WHERE id = $1`, id)
}

// GetForUpdate lee el periodo con SELECT ... FOR UPDATE. Solo tiene efecto dentro de una tx:
// un Close concurrente espera a que la transacción termine.
func (r *PayrollPeriodRepo) GetForUpdate(ctx context.Context, id string) (*entity.PayrollPeriod, error) {
	return r.findOne(ctx, `SELECT `+periodColumns+` FROM payroll_periods WHERE id = $1 FOR UPDATE`, id)
}

// GetActive periodo activo; nil si no hay.
func (r *PayrollPeriodRepo) GetActive(ctx context.Context) (*entity.PayrollPeriod, error) {
	return r.findOne(ctx, `SELECT `+periodColumns+` FROM payroll_periods WHERE active LIMIT 1`)
}

// CloseActive cierra todos los periodos activos.
func (r *PayrollPeriodRepo) CloseActive(ctx context.Context, at time.Time) (int, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE payroll_periods SET active = FALSE, status = $1, closed_at = $2 WHERE active`,
		entity.PayrollStatusClosed, at)
	if err != nil {
		return 0, fmt.Errorf("close active periods: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}

// Close cierra el periodo si seguía abierto.
func (r *PayrollPeriodRepo) Close(ctx context.Context, id string, at time.Time) (bool, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE payroll_periods SET active = FALSE, status = $2, closed_at = $3
		WHERE id = $1 AND status <> $2`, id, entity.PayrollStatusClosed, at)
	if err != nil {
		return false, fmt.Errorf("close period: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// UpdateRanges guarda los sub-rangos por grupo.
func (r *PayrollPeriodRepo) UpdateRanges(ctx context.Context, p *entity.PayrollPeriod) error {
	aStart, aEnd := splitRange(p.GroupA)
	cStart, cEnd := splitRange(p.GroupC)
	_, err := r.q.Exec(ctx, `
		UPDATE payroll_periods
		SET group_a_start = $2, group_a_end = $3, group_c_start = $4, group_c_end = $5
		WHERE id = $1`, p.ID, aStart, aEnd, cStart, cEnd)
	if err != nil {
		return fmt.Errorf("update period ranges: %w", err)
	}
	return nil
}

// List periodos del más reciente al más antiguo.
func (r *PayrollPeriodRepo) List(ctx context.Context) ([]*entity.PayrollPeriod, error) {
	rows, err := r.q.Query(ctx, `SELECT `+periodColumns+` FROM payroll_periods ORDER BY start_date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list periods: %w", err)
	}
	defer rows.Close()
	var list []*entity.PayrollPeriod
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("scan period: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *PayrollPeriodRepo) findOne(ctx context.Context, query string, args ...any) (*entity.PayrollPeriod, error) {
	p, err := scanPeriod(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get period: %w", err)
	}
	return p, nil
}

func scanPeriod(row pgx.Row) (*entity.PayrollPeriod, error) {
	var p entity.PayrollPeriod
	var aStart, aEnd, cStart, cEnd *time.Time
	if err := row.Scan(
		&p.ID, &p.Start, &p.End, &aStart, &aEnd, &cStart, &cEnd, &p.Active, &p.Status, &p.CreatedAt, &p.ClosedAt,
	); err != nil {
		return nil, err
	}
	p.Start, p.End = dateOnly(p.Start), dateOnly(p.End)
	p.GroupA = joinRange(aStart, aEnd)
	p.GroupC = joinRange(cStart, cEnd)
	return &p, nil
}

func splitRange(r *entity.DateRange) (*time.Time, *time.Time) {
	if r == nil {
		return nil, nil
	}
	s, e := r.Start, r.End
	return &s, &e
}

func joinRange(start, end *time.Time) *entity.DateRange {
	if start == nil || end == nil {
		return nil
	}
	return &entity.DateRange{Start: dateOnly(*start), End: dateOnly(*end)}
}

// PayrollRecordRepo campos ajustables por (periodo, empleado).
type PayrollRecordRepo struct {
	q Querier
}

// NewPayrollRecordRepository construye el adaptador.
func NewPayrollRecordRepository(q Querier) *PayrollRecordRepo {
	return &PayrollRecordRepo{q: q}
}

const recordColumns = `id, period_id, employee_id, overtime_hours, overtime_rate, overtime_pay, sanctions,
	pending_commissions, updated_at`

// Get registro del empleado en el periodo; nil si aún no se ha editado.
func (r *PayrollRecordRepo) Get(ctx context.Context, periodID, employeeID string) (*entity.PayrollEmployeeRecord, error) {
	rec, err := scanRecord(r.q.QueryRow(ctx,
		`SELECT `+recordColumns+` FROM payroll_employee_records WHERE period_id = $1 AND employee_id = $2`,
		periodID, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payroll record: %w", err)
	}
	return rec, nil
}

// ListByPeriod registros del periodo.
func (r *PayrollRecordRepo) ListByPeriod(ctx context.Context, periodID string) ([]*entity.PayrollEmployeeRecord, error) {
	rows, err := r.q.Query(ctx, `SELECT `+recordColumns+` FROM payroll_employee_records WHERE period_id = $1`, periodID)
	if err != nil {
		return nil, fmt.Errorf("list payroll records: %w", err)
	}
	defer rows.Close()
	var list []*entity.PayrollEmployeeRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payroll record: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// Upsert crea el registro la primera vez que se edita y lo reemplaza después.
func (r *PayrollRecordRepo) Upsert(ctx context.Context, rec *entity.PayrollEmployeeRecord) error {
	query := `
		INSERT INTO payroll_employee_records (` + recordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (period_id, employee_id) DO UPDATE SET
			overtime_hours = EXCLUDED.overtime_hours, overtime_rate = EXCLUDED.overtime_rate,
			overtime_pay = EXCLUDED.overtime_pay, sanctions = EXCLUDED.sanctions,
			pending_commissions = EXCLUDED.pending_commissions, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.PeriodID, rec.EmployeeID, rec.OvertimeHours, rec.OvertimeRate, rec.OvertimePay,
		rec.Sanctions, rec.PendingCommissions, rec.UpdatedAt,
	)
	if err != nil {
		return wrapWrite("upsert payroll record", err)
	}
	return nil
}

func scanRecord(row pgx.Row) (*entity.PayrollEmployeeRecord, error) {
	var rec entity.PayrollEmployeeRecord
	if err := row.Scan(
		&rec.ID, &rec.PeriodID, &rec.EmployeeID, &rec.OvertimeHours, &rec.OvertimeRate, &rec.OvertimePay,
		&rec.Sanctions, &rec.PendingCommissions, &rec.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &rec, nil
}
