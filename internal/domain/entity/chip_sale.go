package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de chip conocidos. Se admiten códigos adicionales configurados en la tabla de comisiones.
const (
	ChipTypeAzul        = "Chip Azul"
	ChipTypeATO         = "Chip ATO"
	ChipTypePortability = "Portabilidad"
	ChipTypeFree        = "Chip Cero/Libre"
	ChipTypePreactivado = "Chip Preactivado"
	ChipTypeActivation  = "Activacion"
)

// ChipSale venta de chip (SIM/recarga). La comisión se resuelve una sola vez al validar.
type ChipSale struct {
	ID              string
	EmployeeID      string
	ModuleID        string
	ChipType        string
	PhoneNumber     string
	RechargeAmount  decimal.Decimal
	Validated       bool
	Commission      *decimal.Decimal
	RejectionReason *string
	ValidatedBy     *string
	ValidatedAt     *time.Time
	Date            time.Time
	CreatedAt       time.Time
}

// Counts indica si la venta aporta a nómina: validada y con comisión positiva.
func (c *ChipSale) Counts() bool {
	return c.Validated && c.Commission != nil && c.Commission.IsPositive()
}
