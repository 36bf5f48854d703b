package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, username, password_hash, role, module_id, base_salary, active, created_at, updated_at`

// Create persiste un nuevo empleado. Username repetido -> domain.ErrDuplicate.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Username, e.PasswordHash, e.Role, nullString(e.ModuleID), e.BaseSalary, e.Active,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return wrapWrite("insert employee", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	return r.findOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
}

// GetByUsername obtiene un empleado por username (para login).
func (r *EmployeeRepo) GetByUsername(ctx context.Context, username string) (*entity.Employee, error) {
	return r.findOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE username = $1`, username)
}

// Update actualiza rol, módulo, sueldo, estado y password.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees
		SET role = $2, module_id = $3, base_salary = $4, active = $5, password_hash = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Role, nullString(e.ModuleID), e.BaseSalary, e.Active, e.PasswordHash, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// ListActive empleados activos ordenados por username.
func (r *EmployeeRepo) ListActive(ctx context.Context) ([]*entity.Employee, error) {
	return r.findMany(ctx, `SELECT `+employeeColumns+` FROM employees WHERE active ORDER BY username`)
}

// List todos los empleados con paginación.
func (r *EmployeeRepo) List(ctx context.Context, limit, offset int) ([]*entity.Employee, error) {
	return r.findMany(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY username LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *EmployeeRepo) findOne(ctx context.Context, query string, args ...any) (*entity.Employee, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

func (r *EmployeeRepo) findMany(ctx context.Context, query string, args ...any) ([]*entity.Employee, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	var moduleID *string
	if err := row.Scan(
		&e.ID, &e.Username, &e.PasswordHash, &e.Role, &moduleID, &e.BaseSalary, &e.Active,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	e.ModuleID = derefString(moduleID)
	return &e, nil
}
