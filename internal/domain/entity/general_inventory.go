package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GeneralInventoryItem existencia del almacén general, sin módulo. De aquí se surte a los módulos.
type GeneralInventoryItem struct {
	ID          string
	Product     string // único
	Key         string
	Price       decimal.Decimal
	ProductType string
	Quantity    int
	UpdatedAt   time.Time
}
