// Package commission contiene las reglas de comisión (servicio de dominio, sin I/O).
package commission

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/pkg/textnorm"
	"github.com/shopspring/decimal"
)

// RuleSet instantánea inmutable de las tablas de comisión.
type RuleSet struct {
	products map[string]*entity.CommissionRule
	chips    map[string][]entity.ChipCommissionTier
	bonuses  map[string]decimal.Decimal
}

// NewRuleSet construye la instantánea. Los rangos de chip se ordenan por mínimo.
func NewRuleSet(rules []*entity.CommissionRule, tiers []*entity.ChipCommissionTier, bonuses []*entity.SaleTypeBonus) *RuleSet {
	rs := &RuleSet{
		products: make(map[string]*entity.CommissionRule, len(rules)),
		chips:    make(map[string][]entity.ChipCommissionTier),
		bonuses:  make(map[string]decimal.Decimal, len(bonuses)),
	}
	for _, r := range rules {
		rs.products[textnorm.Key(r.Product)] = r
	}
	for _, t := range tiers {
		k := strings.TrimSpace(t.ChipType)
		rs.chips[k] = append(rs.chips[k], *t)
	}
	for k := range rs.chips {
		ts := rs.chips[k]
		sort.SliceStable(ts, func(i, j int) bool { return ts[i].Min.LessThan(ts[j].Min) })
	}
	for _, b := range bonuses {
		rs.bonuses[strings.TrimSpace(b.SaleType)] = b.Amount
	}
	return rs
}

// ProductRule regla del producto tras normalizar el nombre; nil si no existe.
func (rs *RuleSet) ProductRule(product string) *entity.CommissionRule {
	return rs.products[textnorm.Key(product)]
}

// ProductCommission comisión por unidad del producto. ok=false si no hay regla (se trata como 0).
func (rs *RuleSet) ProductCommission(product string) (decimal.Decimal, bool) {
	if r := rs.ProductRule(product); r != nil {
		return r.Amount, true
	}
	return decimal.Zero, false
}

// ChipCommission resuelve la comisión de un chip por su tabla de rangos.
// La recarga se trunca a entero antes de buscar el rango.
func (rs *RuleSet) ChipCommission(chipType string, recharge decimal.Decimal) (decimal.Decimal, error) {
	chipType = strings.TrimSpace(chipType)
	if chipType == entity.ChipTypeActivation {
		return decimal.Zero, domain.Invalid("el chip de tipo %s requiere comisión manual", entity.ChipTypeActivation)
	}
	if recharge.IsNegative() {
		return decimal.Zero, domain.Invalid("monto de recarga negativo")
	}
	tiers, ok := rs.chips[chipType]
	if !ok || len(tiers) == 0 {
		return decimal.Zero, fmt.Errorf("%w para el tipo de chip %q", domain.ErrCommissionConfig, chipType)
	}
	amount := recharge.Truncate(0)
	for i := range tiers {
		if tiers[i].Covers(amount) {
			return tiers[i].Amount, nil
		}
	}
	return decimal.Zero, fmt.Errorf("%w: recarga %s fuera de rango para %q", domain.ErrCommissionConfig, amount, chipType)
}

// SaleTypeBonus bono por tipo de venta; 0 si no está configurado.
func (rs *RuleSet) SaleTypeBonus(saleType string) decimal.Decimal {
	return rs.bonuses[strings.TrimSpace(saleType)]
}

// SaleCommission comisión de una venta: regla × cantidad, más el bono del tipo de venta
// si el producto es teléfono. El bono no depende de que exista regla del producto.
func (rs *RuleSet) SaleCommission(s *entity.Sale) decimal.Decimal {
	unit, _ := rs.ProductCommission(s.Product)
	line := unit.Mul(decimal.NewFromInt(int64(s.Quantity)))
	if s.ProductType == entity.ProductTypePhone {
		line = line.Add(rs.SaleTypeBonus(s.SaleType))
	}
	return line
}

// ValidateTiers verifica que los rangos de un tipo de chip sean coherentes y no se traslapen.
func ValidateTiers(tiers []*entity.ChipCommissionTier) error {
	sorted := make([]*entity.ChipCommissionTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Min.LessThan(sorted[j].Min) })
	for i, t := range sorted {
		if t.Min.IsNegative() || t.Amount.IsNegative() {
			return domain.Invalid("rango %s-%s: valores negativos", t.Min, t.Max)
		}
		if t.Min.GreaterThan(t.Max) {
			return domain.Invalid("rango %s-%s: mínimo mayor que máximo", t.Min, t.Max)
		}
		if i > 0 && !t.Min.GreaterThan(sorted[i-1].Max) {
			return domain.Invalid("rangos traslapados: %s-%s y %s-%s", sorted[i-1].Min, sorted[i-1].Max, t.Min, t.Max)
		}
	}
	return nil
}
