package commission_test

import (
	"testing"

	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/commission"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func tier(chip, min, max, amount string) *entity.ChipCommissionTier {
	return &entity.ChipCommissionTier{ChipType: chip, Min: d(min), Max: d(max), Amount: d(amount)}
}

func defaultRuleSet() *commission.RuleSet {
	rules := []*entity.CommissionRule{
		{ID: "r1", Product: "Funda Silicón", Amount: d("5")},
		{ID: "r2", Product: "Samsung A15", Amount: d("50")},
	}
	tiers := []*entity.ChipCommissionTier{
		// desordenados a propósito
		tier(entity.ChipTypeAzul, "100", "1000", "15"),
		tier(entity.ChipTypeAzul, "0", "49", "5"),
		tier(entity.ChipTypeAzul, "50", "99", "10"),
		tier(entity.ChipTypePortability, "0", "500", "50"),
	}
	bonuses := []*entity.SaleTypeBonus{
		{SaleType: entity.SaleTypeCash, Amount: d("10")},
		{SaleType: entity.SaleTypePaguitos, Amount: d("110")},
		{SaleType: entity.SaleTypePajoy, Amount: d("100")},
	}
	return commission.NewRuleSet(rules, tiers, bonuses)
}

// ── Reglas por producto ──────────────────────────────────────────────────────

func TestProductCommission_NormalizedLookup(t *testing.T) {
	rs := defaultRuleSet()

	amount, ok := rs.ProductCommission("  funda silicón ")
	require.True(t, ok)
	assert.Equal(t, "5", amount.String())

	amount, ok = rs.ProductCommission("FUNDA SILICÓN")
	require.True(t, ok)
	assert.Equal(t, "5", amount.String())

	amount, ok = rs.ProductCommission("Funda genérica")
	assert.False(t, ok)
	assert.True(t, amount.IsZero())
}

// ── Rangos de chip ───────────────────────────────────────────────────────────

func TestChipCommission_Tiers(t *testing.T) {
	rs := defaultRuleSet()
	cases := []struct {
		recharge string
		want     string
	}{
		{"0", "5"},
		{"49", "5"},
		{"50", "10"},
		{"75", "10"},
		{"99", "10"},
		{"100", "15"},
		{"1000", "15"},
		{"99.90", "10"}, // se trunca a 99
	}
	for _, tc := range cases {
		got, err := rs.ChipCommission(entity.ChipTypeAzul, d(tc.recharge))
		require.NoError(t, err, tc.recharge)
		assert.Equal(t, tc.want, got.String(), "recarga %s", tc.recharge)
	}
}

func TestChipCommission_OutOfRangeIsConfigurationError(t *testing.T) {
	rs := defaultRuleSet()

	_, err := rs.ChipCommission(entity.ChipTypeAzul, d("1001"))
	assert.ErrorIs(t, err, domain.ErrCommissionConfig)

	_, err = rs.ChipCommission("Chip Marciano", d("50"))
	assert.ErrorIs(t, err, domain.ErrCommissionConfig)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestChipCommission_ActivationRequiresManual(t *testing.T) {
	rs := defaultRuleSet()
	_, err := rs.ChipCommission(entity.ChipTypeActivation, d("100"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChipCommission_NegativeRecharge(t *testing.T) {
	rs := defaultRuleSet()
	_, err := rs.ChipCommission(entity.ChipTypeAzul, d("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Comisión por venta ───────────────────────────────────────────────────────

func TestSaleCommission_PhoneWithoutRuleStillGetsBonus(t *testing.T) {
	rs := defaultRuleSet()
	s := &entity.Sale{Product: "Teléfono sin regla", ProductType: entity.ProductTypePhone, Quantity: 3, SaleType: entity.SaleTypeCash}
	assert.Equal(t, "10", rs.SaleCommission(s).String())
}

func TestSaleCommission_PhoneBonusIsAdditive(t *testing.T) {
	rs := defaultRuleSet()
	s := &entity.Sale{Product: "samsung a15", ProductType: entity.ProductTypePhone, Quantity: 2, SaleType: entity.SaleTypePaguitos}
	// 50*2 + 110
	assert.Equal(t, "210", rs.SaleCommission(s).String())
}

func TestSaleCommission_AccessoryIgnoresBonus(t *testing.T) {
	rs := defaultRuleSet()
	s := &entity.Sale{Product: "Funda Silicón", ProductType: entity.ProductTypeAccessory, Quantity: 4, SaleType: entity.SaleTypeCash}
	assert.Equal(t, "20", rs.SaleCommission(s).String())
}

func TestSaleCommission_UnknownSaleTypeHasNoBonus(t *testing.T) {
	rs := defaultRuleSet()
	s := &entity.Sale{Product: "Samsung A15", ProductType: entity.ProductTypePhone, Quantity: 1, SaleType: "Crédito"}
	assert.Equal(t, "50", rs.SaleCommission(s).String())
}

// ── Validación de tablas ─────────────────────────────────────────────────────

func TestValidateTiers(t *testing.T) {
	ok := []*entity.ChipCommissionTier{tier("X", "51", "100", "10"), tier("X", "0", "50", "5")}
	assert.NoError(t, commission.ValidateTiers(ok))

	overlap := []*entity.ChipCommissionTier{tier("X", "0", "50", "5"), tier("X", "50", "100", "10")}
	assert.ErrorIs(t, commission.ValidateTiers(overlap), domain.ErrInvalidInput)

	inverted := []*entity.ChipCommissionTier{tier("X", "10", "5", "5")}
	assert.ErrorIs(t, commission.ValidateTiers(inverted), domain.ErrInvalidInput)
}
