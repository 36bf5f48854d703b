package repository

import (
	"context"

	"github.com/jhoicas/Nomina-api/internal/domain/entity"
)

// TransferFilter filtros de listado de traspasos.
type TransferFilter struct {
	Status      string
	ModuleID    string // origen o destino
	VisibleOnly bool
}

// TransferRepository define el puerto de persistencia para Transfer.
type TransferRepository interface {
	Create(ctx context.Context, t *entity.Transfer) error
	GetByID(ctx context.Context, id string) (*entity.Transfer, error)
	// Resolve pasa de pendiente al estado de t. false = el traspaso ya no estaba pendiente.
	Resolve(ctx context.Context, t *entity.Transfer) (bool, error)
	Hide(ctx context.Context, id string) error
	List(ctx context.Context, f TransferFilter) ([]*entity.Transfer, error)
}
