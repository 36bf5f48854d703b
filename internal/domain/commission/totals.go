package commission

import (
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Totals comisiones por categoría.
type Totals struct {
	Accessories decimal.Decimal
	Phones      decimal.Decimal
	Chips       decimal.Decimal
}

// Grand total general.
func (t Totals) Grand() decimal.Decimal {
	return t.Accessories.Add(t.Phones).Add(t.Chips)
}

// Rounded redondea cada categoría a 2 decimales (frontera de reporte).
func (t Totals) Rounded() Totals {
	return Totals{
		Accessories: t.Accessories.Round(2),
		Phones:      t.Phones.Round(2),
		Chips:       t.Chips.Round(2),
	}
}

// AddSale acumula una venta. Las canceladas no aportan.
func (t *Totals) AddSale(rs *RuleSet, s *entity.Sale) decimal.Decimal {
	if s.Cancelled {
		return decimal.Zero
	}
	c := rs.SaleCommission(s)
	if s.ProductType == entity.ProductTypePhone {
		t.Phones = t.Phones.Add(c)
	} else {
		t.Accessories = t.Accessories.Add(c)
	}
	return c
}

// AddChip acumula la comisión almacenada de un chip validado con comisión positiva.
func (t *Totals) AddChip(c *entity.ChipSale) decimal.Decimal {
	if !c.Counts() {
		return decimal.Zero
	}
	t.Chips = t.Chips.Add(*c.Commission)
	return *c.Commission
}

// Accumulate agrupa por empleado. Es la única implementación del cálculo:
// la versión individual y la masiva la usan por igual.
func Accumulate(rs *RuleSet, sales []*entity.Sale, chips []*entity.ChipSale) map[string]Totals {
	out := make(map[string]Totals)
	for _, s := range sales {
		t := out[s.EmployeeID]
		t.AddSale(rs, s)
		out[s.EmployeeID] = t
	}
	for _, c := range chips {
		t := out[c.EmployeeID]
		t.AddChip(c)
		out[c.EmployeeID] = t
	}
	return out
}
