package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionRule comisión fija por unidad vendida de un producto.
type CommissionRule struct {
	ID        string
	Product   string
	Amount    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChipCommissionTier rango [Min, Max] de recarga con su comisión para un tipo de chip.
type ChipCommissionTier struct {
	ID       string
	ChipType string
	Min      decimal.Decimal
	Max      decimal.Decimal
	Amount   decimal.Decimal
}

// Covers indica si la recarga cae dentro del rango (inclusivo).
func (t *ChipCommissionTier) Covers(recharge decimal.Decimal) bool {
	return recharge.GreaterThanOrEqual(t.Min) && recharge.LessThanOrEqual(t.Max)
}

// SaleTypeBonus bono fijo por tipo de venta, aplicable solo a teléfonos.
type SaleTypeBonus struct {
	SaleType string
	Amount   decimal.Decimal
}
