package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta.
type SaleItemRequest struct {
	Product   string           `json:"product" validate:"required"`
	Quantity  int              `json:"quantity" validate:"required,min=1"`
	UnitPrice *decimal.Decimal `json:"unit_price" validate:"omitempty,gte=0"` // vacío = precio del inventario
	SaleType  string           `json:"sale_type" validate:"omitempty,max=60"`
}

// CreateSaleRequest venta de una o varias líneas con un solo método de pago.
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=efectivo tarjeta"`
	CustomerEmail string            `json:"customer_email" validate:"omitempty,email"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	ModuleID      string          `json:"module_id"`
	Product       string          `json:"product"`
	ProductType   string          `json:"product_type"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Total         decimal.Decimal `json:"total"`
	SaleType      string          `json:"sale_type,omitempty"`
	PaymentMethod string          `json:"payment_method"`
	Cancelled     bool            `json:"cancelled"`
	Date          string          `json:"date"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SaleListQuery filtros de ventas.
type SaleListQuery struct {
	DateRangeQuery
	ModuleID         string `query:"module_id" validate:"omitempty,uuid"`
	EmployeeID       string `query:"employee_id" validate:"omitempty,uuid"`
	IncludeCancelled bool   `query:"include_cancelled"`
}

// DailyCutResponse corte diario del módulo por método de pago.
type DailyCutResponse struct {
	ModuleID string          `json:"module_id"`
	Date     string          `json:"date"`
	Cash     decimal.Decimal `json:"cash_total"`
	Card     decimal.Decimal `json:"card_total"`
	Total    decimal.Decimal `json:"total"`
	Sales    int             `json:"sales"`
}

// CreateChipSaleRequest registro de venta de chip.
type CreateChipSaleRequest struct {
	ChipType       string          `json:"chip_type" validate:"required,max=60"`
	PhoneNumber    string          `json:"phone_number" validate:"required,numeric,min=8,max=15"`
	RechargeAmount decimal.Decimal `json:"recharge_amount" validate:"gte=0"`
}

// ValidateChipRequest validación; Commission solo para chips de activación.
type ValidateChipRequest struct {
	Commission *decimal.Decimal `json:"commission" validate:"omitempty,gte=0"`
}

// RejectChipRequest motivo de rechazo.
type RejectChipRequest struct {
	Reason string `json:"reason" validate:"required,max=300"`
}

// ChipSaleResponse salida de una venta de chip.
type ChipSaleResponse struct {
	ID              string           `json:"id"`
	EmployeeID      string           `json:"employee_id"`
	ModuleID        string           `json:"module_id,omitempty"`
	ChipType        string           `json:"chip_type"`
	PhoneNumber     string           `json:"phone_number"`
	RechargeAmount  decimal.Decimal  `json:"recharge_amount"`
	Validated       bool             `json:"validated"`
	Commission      *decimal.Decimal `json:"commission,omitempty"`
	RejectionReason *string          `json:"rejection_reason,omitempty"`
	Date            string           `json:"date"`
}

// CloseCutRequest adicionales que el encargado captura al cerrar el corte del día.
type CloseCutRequest struct {
	ExtraRecharges decimal.Decimal `json:"extra_recharges" validate:"gte=0"`
	ExtraTransport decimal.Decimal `json:"extra_transport" validate:"gte=0"`
	ExtraOther     decimal.Decimal `json:"extra_other" validate:"gte=0"`
}

// CutQuery filtros del historial de cortes.
type CutQuery struct {
	DateRangeQuery
	ModuleID string `query:"module_id" validate:"omitempty,uuid"`
}

// CutResponse corte de caja cerrado.
type CutResponse struct {
	ID             string          `json:"id"`
	ModuleID       string          `json:"module_id"`
	Date           string          `json:"date"`
	CashTotal      decimal.Decimal `json:"cash_total"`
	CardTotal      decimal.Decimal `json:"card_total"`
	SystemTotal    decimal.Decimal `json:"system_total"`
	ExtraRecharges decimal.Decimal `json:"extra_recharges"`
	ExtraTransport decimal.Decimal `json:"extra_transport"`
	ExtraOther     decimal.Decimal `json:"extra_other"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
	ClosedBy       string          `json:"closed_by"`
	CreatedAt      time.Time       `json:"created_at"`
}
