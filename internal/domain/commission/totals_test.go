package commission_test

import (
	"testing"

	"github.com/jhoicas/Nomina-api/internal/domain/commission"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func chip(employee string, validated bool, amount *decimal.Decimal) *entity.ChipSale {
	return &entity.ChipSale{EmployeeID: employee, Validated: validated, Commission: amount}
}

func TestAccumulate_ExcludesCancelledAndUnvalidated(t *testing.T) {
	rs := defaultRuleSet()
	ten := d("10")
	zero := d("0")
	sales := []*entity.Sale{
		{EmployeeID: "e1", Product: "Funda Silicón", ProductType: entity.ProductTypeAccessory, Quantity: 2},
		{EmployeeID: "e1", Product: "Funda Silicón", ProductType: entity.ProductTypeAccessory, Quantity: 5, Cancelled: true},
		{EmployeeID: "e1", Product: "Samsung A15", ProductType: entity.ProductTypePhone, Quantity: 1, SaleType: entity.SaleTypePajoy},
		{EmployeeID: "e2", Product: "Samsung A15", ProductType: entity.ProductTypePhone, Quantity: 1, SaleType: entity.SaleTypeCash},
	}
	chips := []*entity.ChipSale{
		chip("e1", true, &ten),
		chip("e1", false, &ten),
		chip("e1", true, &zero),
		chip("e2", true, nil),
	}

	got := commission.Accumulate(rs, sales, chips)

	assert.Equal(t, "10", got["e1"].Accessories.String())
	assert.Equal(t, "150", got["e1"].Phones.String())
	assert.Equal(t, "10", got["e1"].Chips.String())
	assert.Equal(t, "170", got["e1"].Grand().String())
	assert.Equal(t, "60", got["e2"].Grand().String())
}

func TestAccumulate_Empty(t *testing.T) {
	got := commission.Accumulate(defaultRuleSet(), nil, nil)
	assert.Empty(t, got)
	var zero commission.Totals
	assert.True(t, zero.Grand().IsZero())
}

func TestTotals_Rounded(t *testing.T) {
	tt := commission.Totals{Accessories: d("1.005"), Phones: d("2.344"), Chips: d("0")}
	r := tt.Rounded()
	assert.Equal(t, "1.01", r.Accessories.StringFixed(2))
	assert.Equal(t, "2.34", r.Phones.StringFixed(2))
}
