package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago.
const (
	PaymentCash = "efectivo"
	PaymentCard = "tarjeta"
)

// Tipos de venta (plan de pago) con bono configurado por defecto.
const (
	SaleTypeCash     = "Contado"
	SaleTypePaguitos = "Paguitos"
	SaleTypePajoy    = "Pajoy"
)

// Sale venta de accesorio o teléfono. Nunca se borra: solo se cancela.
type Sale struct {
	ID               string
	EmployeeID       string
	ModuleID         string
	Product          string
	ProductType      string
	Quantity         int
	UnitPrice        decimal.Decimal
	SaleType         string
	PaymentMethod    string
	Cancelled        bool
	CommissionRuleID *string
	CustomerEmail    string
	Date             time.Time // fecha de negocio (sin hora)
	CreatedAt        time.Time
}

// Total importe de la línea.
func (s *Sale) Total() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
