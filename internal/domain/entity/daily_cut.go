package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyCut corte de caja cerrado por el encargado. Uno por módulo y día.
// Los totales del sistema salen de las ventas; los adicionales los captura el encargado.
type DailyCut struct {
	ID             string
	ModuleID       string
	Date           time.Time
	CashTotal      decimal.Decimal
	CardTotal      decimal.Decimal
	SystemTotal    decimal.Decimal
	ExtraRecharges decimal.Decimal
	ExtraTransport decimal.Decimal
	ExtraOther     decimal.Decimal
	GrandTotal     decimal.Decimal
	ClosedBy       string
	CreatedAt      time.Time
}

// ExtrasTotal suma de los adicionales capturados.
func (c *DailyCut) ExtrasTotal() decimal.Decimal {
	return c.ExtraRecharges.Add(c.ExtraTransport).Add(c.ExtraOther)
}
