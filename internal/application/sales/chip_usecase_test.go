package sales_test

import (
	"context"
	"sync"
	"testing"

	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/application/sales"
	"github.com/jhoicas/Nomina-api/internal/domain"
	domcommission "github.com/jhoicas/Nomina-api/internal/domain/commission"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newChipUseCase(rows ...*entity.ChipSale) (*sales.ChipUseCase, *memChips) {
	tiers := []*entity.ChipCommissionTier{
		{ChipType: entity.ChipTypeAzul, Min: dec("0"), Max: dec("49"), Amount: dec("10")},
		{ChipType: entity.ChipTypeAzul, Min: dec("50"), Max: dec("99"), Amount: dec("20")},
		{ChipType: entity.ChipTypeAzul, Min: dec("100"), Max: dec("500"), Amount: dec("35")},
	}
	chips := newMemChips(rows...)
	return sales.NewChipUseCase(chips, staticRules{domcommission.NewRuleSet(nil, tiers, nil)}, nil), chips
}

func pendingChip(id, chipType, recharge string) *entity.ChipSale {
	return &entity.ChipSale{ID: id, EmployeeID: "e-1", ChipType: chipType, PhoneNumber: "5512345678", RechargeAmount: dec(recharge)}
}

func TestRegisterChipSale(t *testing.T) {
	uc, chips := newChipUseCase()

	out, err := uc.RegisterChipSale(context.Background(), asesor, dto.CreateChipSaleRequest{
		ChipType: " Chip Azul ", PhoneNumber: "5512345678", RechargeAmount: dec("100"),
	})
	require.NoError(t, err)
	assert.False(t, out.Validated)
	assert.Equal(t, entity.ChipTypeAzul, out.ChipType)
	assert.Len(t, chips.rows, 1)

	_, err = uc.RegisterChipSale(context.Background(), asesor, dto.CreateChipSaleRequest{
		ChipType: entity.ChipTypeAzul, PhoneNumber: "5512345678", RechargeAmount: dec("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── ValidateChip ─────────────────────────────────────────────────────────────

func TestValidateChip_UsesTierTable(t *testing.T) {
	uc, _ := newChipUseCase(pendingChip("c-1", entity.ChipTypeAzul, "49.90"))

	out, err := uc.ValidateChip(context.Background(), admin, "c-1", nil)
	require.NoError(t, err)
	assert.True(t, out.Validated)
	require.NotNil(t, out.Commission)
	assert.True(t, out.Commission.Equal(dec("10")), "la recarga se trunca antes de buscar el rango")
}

func TestValidateChip_SecondValidationKeepsCommission(t *testing.T) {
	uc, chips := newChipUseCase(pendingChip("c-1", entity.ChipTypeActivation, "0"))
	ctx := context.Background()

	manual := dec("45")
	_, err := uc.ValidateChip(ctx, admin, "c-1", &manual)
	require.NoError(t, err)

	other := dec("90")
	_, err = uc.ValidateChip(ctx, admin, "c-1", &other)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.True(t, chips.rows["c-1"].Commission.Equal(manual))
}

func TestValidateChip_ConcurrentValidationsFixOneCommission(t *testing.T) {
	uc, chips := newChipUseCase(pendingChip("c-1", entity.ChipTypeAzul, "120"))

	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.ValidateChip(context.Background(), admin, "c-1", nil); err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.True(t, chips.rows["c-1"].Commission.Equal(dec("35")))
}

func TestValidateChip_Errors(t *testing.T) {
	uc, _ := newChipUseCase(
		pendingChip("act", entity.ChipTypeActivation, "0"),
		pendingChip("azul", entity.ChipTypeAzul, "900"),
		pendingChip("raro", "Chip Dorado", "50"),
	)
	ctx := context.Background()

	_, err := uc.ValidateChip(ctx, admin, "act", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "activación sin comisión manual")

	manual := dec("5")
	_, err = uc.ValidateChip(ctx, admin, "azul", &manual)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "comisión manual fuera de activación")

	_, err = uc.ValidateChip(ctx, admin, "azul", nil)
	assert.ErrorIs(t, err, domain.ErrCommissionConfig, "recarga fuera de rango")

	_, err = uc.ValidateChip(ctx, admin, "raro", nil)
	assert.ErrorIs(t, err, domain.ErrCommissionConfig, "tipo sin tabla")

	_, err = uc.ValidateChip(ctx, encargado, "act", &manual)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.ValidateChip(ctx, admin, "no-existe", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Rechazo ──────────────────────────────────────────────────────────────────

func TestRejectAndRevert(t *testing.T) {
	uc, _ := newChipUseCase(pendingChip("c-1", entity.ChipTypeAzul, "60"))
	ctx := context.Background()

	_, err := uc.RejectChip(ctx, admin, "c-1", "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.RejectChip(ctx, admin, "c-1", "número duplicado")
	require.NoError(t, err)
	require.NotNil(t, out.RejectionReason)

	rejected, err := uc.ListRejected(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, rejected, 1)

	_, err = uc.ValidateChip(ctx, admin, "c-1", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidState, "un chip rechazado no se valida")

	_, err = uc.RevertRejection(ctx, admin, "c-1")
	require.NoError(t, err)
	pending, err := uc.ListPending(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	_, err = uc.RevertRejection(ctx, admin, "c-1")
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = uc.ValidateChip(ctx, admin, "c-1", nil)
	require.NoError(t, err)
	_, err = uc.RejectChip(ctx, admin, "c-1", "tarde")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestValidateChip_RejectedMeanwhileIsNotValidated(t *testing.T) {
	uc, chips := newChipUseCase(pendingChip("c-1", entity.ChipTypeAzul, "60"))
	reason := "número duplicado"
	chips.afterGet = func(c *entity.ChipSale) { c.RejectionReason = &reason }

	_, err := uc.ValidateChip(context.Background(), admin, "c-1", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.False(t, chips.rows["c-1"].Validated)
	assert.Nil(t, chips.rows["c-1"].Commission)
}

func TestRejectChip_ValidatedMeanwhileReportsState(t *testing.T) {
	uc, chips := newChipUseCase(pendingChip("c-1", entity.ChipTypeAzul, "60"))
	chips.afterGet = func(c *entity.ChipSale) { c.Validated = true }

	_, err := uc.RejectChip(context.Background(), admin, "c-1", "tarde")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Nil(t, chips.rows["c-1"].RejectionReason)
}

func TestRevertRejection_RevertedMeanwhileReportsState(t *testing.T) {
	reason := "número duplicado"
	c := pendingChip("c-1", entity.ChipTypeAzul, "60")
	c.RejectionReason = &reason
	uc, chips := newChipUseCase(c)
	chips.afterGet = func(c *entity.ChipSale) { c.RejectionReason = nil }

	_, err := uc.RevertRejection(context.Background(), admin, "c-1")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}
