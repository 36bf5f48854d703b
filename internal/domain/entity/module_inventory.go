package entity

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de producto. La clasificación usa siempre este campo explícito.
const (
	ProductTypeAccessory = "accesorio"
	ProductTypePhone     = "telefono"
)

// Límites de las columnas de existencia (INTEGER) y precio (NUMERIC(12,2)).
const MaxStockQuantity = math.MaxInt32

var MaxPrice = decimal.RequireFromString("9999999999.99")

// ValidProductType indica si el tipo de producto es reconocido.
func ValidProductType(t string) bool {
	return t == ProductTypeAccessory || t == ProductTypePhone
}

// ModuleInventory existencia de un producto en un módulo. Único por (módulo, producto).
type ModuleInventory struct {
	ID          string
	ModuleID    string
	Product     string
	Key         string // clave
	Price       decimal.Decimal
	ProductType string
	Quantity    int
	UpdatedAt   time.Time
}
