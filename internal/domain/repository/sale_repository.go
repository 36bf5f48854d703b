package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Nomina-api/internal/domain/entity"
)

// SaleFilter filtros de listado. EmployeeID/ModuleID vacíos = todos.
type SaleFilter struct {
	EmployeeID       string
	ModuleID         string
	From             time.Time
	To               time.Time
	IncludeCancelled bool
}

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(ctx context.Context, s *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// Cancel marca cancelada solo si no lo estaba. false = ya estaba cancelada.
	Cancel(ctx context.Context, id string) (bool, error)
	// List ventas en el rango inclusivo [From, To] por fecha de negocio.
	List(ctx context.Context, f SaleFilter) ([]*entity.Sale, error)
}

// ChipFilter filtros de listado de chips.
type ChipFilter struct {
	EmployeeID    string
	ModuleID      string
	From          time.Time
	To            time.Time
	ValidatedOnly bool
	Pending       bool // no validados y sin rechazo
	Rejected      bool // con motivo de rechazo y no validados
}

// ChipSaleRepository define el puerto de persistencia para ChipSale.
type ChipSaleRepository interface {
	Create(ctx context.Context, c *entity.ChipSale) error
	GetByID(ctx context.Context, id string) (*entity.ChipSale, error)
	// MarkValidated fija la comisión solo si el chip seguía pendiente. false = validado o rechazado.
	MarkValidated(ctx context.Context, c *entity.ChipSale) (bool, error)
	// SetRejection fija o limpia (nil) el motivo de un chip no validado. false = el estado cambió.
	SetRejection(ctx context.Context, id string, reason *string) (bool, error)
	List(ctx context.Context, f ChipFilter) ([]*entity.ChipSale, error)
}
