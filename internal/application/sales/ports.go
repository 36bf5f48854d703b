package sales

import (
	"context"
	"time"

	domcommission "github.com/jhoicas/Nomina-api/internal/domain/commission"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// TxRunner ejecuta fn en una transacción con inventario, ventas y kardex atados a ella.
type TxRunner interface {
	RunSales(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		saleRepo repository.SaleRepository,
		movRepo repository.InventoryMovementRepository,
	) error) error
}

// RuleSource instantánea de las reglas de comisión.
type RuleSource interface {
	Snapshot(ctx context.Context) (*domcommission.RuleSet, error)
}

// TicketItem renglón del ticket.
type TicketItem struct {
	Product   string          `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// Ticket comprobante de venta que se envía al cliente.
type Ticket struct {
	Folio         string          `json:"folio"`
	CustomerEmail string          `json:"customer_email"`
	Seller        string          `json:"seller"`
	ModuleID      string          `json:"module_id"`
	PaymentMethod string          `json:"payment_method"`
	Items         []TicketItem    `json:"items"`
	Total         decimal.Decimal `json:"total"`
	IssuedAt      time.Time       `json:"issued_at"`
}

// Notifier envío del ticket. Es de mejor esfuerzo: un error no revierte la venta.
type Notifier interface {
	NotifySale(ctx context.Context, t Ticket) error
}
