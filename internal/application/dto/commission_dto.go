package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionRuleRequest alta o edición de regla por producto.
type CommissionRuleRequest struct {
	Product string          `json:"product" validate:"required,max=200"`
	Amount  decimal.Decimal `json:"amount" validate:"gte=0"`
}

// CommissionRuleResponse salida de una regla.
type CommissionRuleResponse struct {
	ID        string          `json:"id"`
	Product   string          `json:"product"`
	Amount    decimal.Decimal `json:"amount"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ChipTierDTO rango de recarga de un tipo de chip.
type ChipTierDTO struct {
	Min    decimal.Decimal `json:"min" validate:"gte=0"`
	Max    decimal.Decimal `json:"max" validate:"gte=0"`
	Amount decimal.Decimal `json:"amount" validate:"gte=0"`
}

// ChipTableRequest reemplaza la tabla completa de un tipo de chip.
type ChipTableRequest struct {
	Tiers []ChipTierDTO `json:"tiers" validate:"dive"`
}

// ChipTableResponse tabla de rangos de un tipo de chip.
type ChipTableResponse struct {
	ChipType string        `json:"chip_type"`
	Tiers    []ChipTierDTO `json:"tiers"`
}

// SaleTypeBonusRequest bono para un tipo de venta.
type SaleTypeBonusRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"gte=0"`
}

// SaleTypeBonusResponse bono configurado.
type SaleTypeBonusResponse struct {
	SaleType string          `json:"sale_type"`
	Amount   decimal.Decimal `json:"amount"`
}

// CommissionTotalsResponse totales de comisión de un empleado en un rango.
type CommissionTotalsResponse struct {
	EmployeeID  string          `json:"employee_id"`
	Start       string          `json:"start"`
	End         string          `json:"end"`
	Accessories decimal.Decimal `json:"accessories_total"`
	Phones      decimal.Decimal `json:"phones_total"`
	Chips       decimal.Decimal `json:"chips_total"`
	Grand       decimal.Decimal `json:"grand_total"`
}

// CommissionLine detalle de una venta con su comisión.
type CommissionLine struct {
	ID         string          `json:"id"`
	Date       string          `json:"date"`
	Product    string          `json:"product"`
	Quantity   int             `json:"quantity"`
	SaleType   string          `json:"sale_type,omitempty"`
	Commission decimal.Decimal `json:"commission"`
}

// CycleResponse reporte del ciclo semanal (lunes a domingo).
type CycleResponse struct {
	EmployeeID  string                   `json:"employee_id"`
	Start       string                   `json:"start"`
	End         string                   `json:"end"`
	PayDay      string                   `json:"pay_day"`
	Accessories []CommissionLine         `json:"accessories"`
	Phones      []CommissionLine         `json:"phones"`
	Chips       []CommissionLine         `json:"chips"`
	Totals      CommissionTotalsResponse `json:"totals"`
}
