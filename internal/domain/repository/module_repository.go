package repository

import (
	"context"

	"github.com/jhoicas/Nomina-api/internal/domain/entity"
)

// ModuleRepository define el puerto de persistencia para Module.
type ModuleRepository interface {
	Create(ctx context.Context, m *entity.Module) error
	GetByID(ctx context.Context, id string) (*entity.Module, error)
	List(ctx context.Context) ([]*entity.Module, error)
}
