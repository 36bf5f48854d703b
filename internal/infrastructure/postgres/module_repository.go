package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
)

var _ repository.ModuleRepository = (*ModuleRepo)(nil)

// ModuleRepo implementación del puerto ModuleRepository sobre PostgreSQL.
type ModuleRepo struct {
	q Querier
}

// NewModuleRepository construye el adaptador de persistencia para módulos.
func NewModuleRepository(q Querier) *ModuleRepo {
	return &ModuleRepo{q: q}
}

// Create persiste un nuevo módulo.
func (r *ModuleRepo) Create(ctx context.Context, m *entity.Module) error {
	query := `INSERT INTO modules (id, name, active, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := r.q.Exec(ctx, query, m.ID, m.Name, m.Active, m.CreatedAt); err != nil {
		return wrapWrite("insert module", err)
	}
	return nil
}

// GetByID obtiene un módulo por ID.
func (r *ModuleRepo) GetByID(ctx context.Context, id string) (*entity.Module, error) {
	var m entity.Module
	err := r.q.QueryRow(ctx, `SELECT id, name, active, created_at FROM modules WHERE id = $1`, id).
		Scan(&m.ID, &m.Name, &m.Active, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get module: %w", err)
	}
	return &m, nil
}

// List todos los módulos por nombre.
func (r *ModuleRepo) List(ctx context.Context) ([]*entity.Module, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, active, created_at FROM modules ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	defer rows.Close()
	var list []*entity.Module
	for rows.Next() {
		var m entity.Module
		if err := rows.Scan(&m.ID, &m.Name, &m.Active, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan module: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
