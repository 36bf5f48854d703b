package repository

import (
	"context"

	"github.com/jhoicas/Nomina-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	GetByUsername(ctx context.Context, username string) (*entity.Employee, error)
	Update(ctx context.Context, e *entity.Employee) error
	// ListActive empleados activos ordenados por username.
	ListActive(ctx context.Context) ([]*entity.Employee, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Employee, error)
}
