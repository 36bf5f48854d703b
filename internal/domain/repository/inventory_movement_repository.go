package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Nomina-api/internal/domain/entity"
)

// MovementFilter filtros del kardex.
type MovementFilter struct {
	Product  string
	ModuleID string // origen o destino
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// InventoryMovementRepository kardex (solo inserción y consulta).
type InventoryMovementRepository interface {
	Create(ctx context.Context, m *entity.InventoryMovement) error
	List(ctx context.Context, f MovementFilter) ([]*entity.InventoryMovement, error)
}
