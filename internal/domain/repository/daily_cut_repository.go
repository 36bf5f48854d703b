package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Nomina-api/internal/domain/entity"
)

// DailyCutFilter filtros de cortes; campos vacíos no filtran.
type DailyCutFilter struct {
	ModuleID string
	From     time.Time
	To       time.Time
}

// DailyCutRepository cortes de caja cerrados.
type DailyCutRepository interface {
	// Create un segundo corte del mismo módulo y día devuelve domain.ErrDuplicate.
	Create(ctx context.Context, c *entity.DailyCut) error
	List(ctx context.Context, f DailyCutFilter) ([]*entity.DailyCut, error)
}
