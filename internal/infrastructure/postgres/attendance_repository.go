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

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

// AttendanceRepo asistencia sobre PostgreSQL.
type AttendanceRepo struct {
	q Querier
}

// NewAttendanceRepository construye el adaptador.
func NewAttendanceRepository(q Querier) *AttendanceRepo {
	return &AttendanceRepo{q: q}
}

const attendanceColumns = `id, employee_id, username, module_id, shift, date, check_in, check_out`

// Create registra la entrada. UNIQUE (employee_id, date) impide una segunda del mismo día.
func (r *AttendanceRepo) Create(ctx context.Context, a *entity.Attendance) error {
	_, err := r.q.Exec(ctx, `INSERT INTO attendance (`+attendanceColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.EmployeeID, a.Username, nullString(a.ModuleID), a.Shift, a.Date, a.CheckIn, a.CheckOut,
	)
	if err != nil {
		return wrapWrite("insert attendance", err)
	}
	return nil
}

// GetByDay registro del empleado en la fecha; nil si no hay.
func (r *AttendanceRepo) GetByDay(ctx context.Context, employeeID string, day time.Time) (*entity.Attendance, error) {
	a, err := scanAttendance(r.q.QueryRow(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE employee_id = $1 AND date = $2`, employeeID, day))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attendance: %w", err)
	}
	return a, nil
}

// SetCheckOut fija la salida solo una vez.
func (r *AttendanceRepo) SetCheckOut(ctx context.Context, id string, at time.Time) (bool, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE attendance SET check_out = $2 WHERE id = $1 AND check_out IS NULL`, id, at)
	if err != nil {
		return false, fmt.Errorf("check out: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// List asistencias filtradas, por fecha y usuario.
func (r *AttendanceRepo) List(ctx context.Context, f repository.AttendanceFilter) ([]*entity.Attendance, error) {
	var w whereBuilder
	if f.ModuleID != "" {
		w.add("module_id = ?", f.ModuleID)
	}
	if f.EmployeeID != "" {
		w.add("employee_id = ?", f.EmployeeID)
	}
	if !f.From.IsZero() {
		w.add("date >= ?", f.From)
	}
	if !f.To.IsZero() {
		w.add("date <= ?", f.To)
	}
	rows, err := r.q.Query(ctx, `SELECT `+attendanceColumns+` FROM attendance`+w.sql()+` ORDER BY date, username`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()
	var list []*entity.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func scanAttendance(row pgx.Row) (*entity.Attendance, error) {
	var a entity.Attendance
	var moduleID *string
	if err := row.Scan(&a.ID, &a.EmployeeID, &a.Username, &moduleID, &a.Shift, &a.Date, &a.CheckIn, &a.CheckOut); err != nil {
		return nil, err
	}
	a.ModuleID = derefString(moduleID)
	a.Date = dateOnly(a.Date)
	return &a, nil
}
