package inventory_test

import (
	"context"
	"testing"

	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/application/inventory"
	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) generalUC() *inventory.GeneralInventoryUseCase {
	return inventory.NewGeneralInventoryUseCase(f.tx, f.general, f.modules)
}

// ── Almacén general ──────────────────────────────────────────────────────────

func TestGeneral_OnlyAdmin(t *testing.T) {
	f := newFixture()
	uc := f.generalUC()
	ctx := context.Background()

	_, err := uc.ListGeneral(ctx, encCentro)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.MoveToModule(ctx, encCentro, dto.MoveToModuleRequest{Product: "Audífonos BT", ModuleID: "m-centro", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	items, err := uc.ListGeneral(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	names, err := uc.ProductNames(ctx, admin)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Cargador USB-C", "Audífonos BT"}, names)
}

func TestCreateGeneral_RecordsAdjustmentWithoutModule(t *testing.T) {
	f := newFixture()
	uc := f.generalUC()
	ctx := context.Background()

	out, err := uc.CreateGeneral(ctx, admin, dto.InventoryItemRequest{
		Product: " Mica 9H ", Key: "MI-9", Price: decimal.RequireFromString("49.999"),
		ProductType: entity.ProductTypeAccessory, Quantity: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, "Mica 9H", out.Product)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(50)), "precio a 2 decimales")

	require.Len(t, f.movs.rows, 1)
	mv := f.movs.rows[0]
	assert.Equal(t, entity.MovementAdjustment, mv.Type)
	assert.Equal(t, 30, mv.Quantity)
	assert.Nil(t, mv.OriginModuleID)
	assert.Nil(t, mv.DestinationModuleID)

	_, err = uc.CreateGeneral(ctx, admin, dto.InventoryItemRequest{Product: "Mica 9H", ProductType: entity.ProductTypeAccessory})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, f.movs.rows, 1)

	_, err = uc.CreateGeneral(ctx, admin, dto.InventoryItemRequest{Product: "Funda", ProductType: entity.ProductTypeAccessory, Quantity: entity.MaxStockQuantity + 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateGeneral_PartialAndDelta(t *testing.T) {
	f := newFixture()
	uc := f.generalUC()
	ctx := context.Background()

	qty := 12
	out, err := uc.UpdateGeneral(ctx, admin, "Cargador USB-C", dto.GeneralItemUpdate{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, 12, out.Quantity)
	assert.Equal(t, "CG-01", out.Key, "los campos ausentes se conservan")

	require.Len(t, f.movs.rows, 1)
	assert.Equal(t, 8, f.movs.rows[0].Quantity)

	price := decimal.NewFromInt(-1)
	_, err = uc.UpdateGeneral(ctx, admin, "Cargador USB-C", dto.GeneralItemUpdate{Price: &price})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateGeneral(ctx, admin, "No existe", dto.GeneralItemUpdate{Quantity: &qty})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteGeneral(t *testing.T) {
	f := newFixture()
	uc := f.generalUC()
	ctx := context.Background()

	require.NoError(t, uc.DeleteGeneral(ctx, admin, "Audífonos BT"))
	_, err := uc.GetGeneral(ctx, admin, "Audífonos BT")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.DeleteGeneral(ctx, admin, "Audífonos BT"), domain.ErrNotFound)
}

// ── Asignación a módulos ─────────────────────────────────────────────────────

func TestMoveToModule_AddsToExistingItem(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	out, err := f.generalUC().MoveToModule(ctx, admin, dto.MoveToModuleRequest{Product: "Cargador USB-C", ModuleID: "m-centro", Quantity: 6})
	require.NoError(t, err)
	assert.Equal(t, 16, out.Quantity)
	assert.Equal(t, 16, f.inv.qty("m-centro", "Cargador USB-C"))
	assert.Equal(t, 14, f.general.rows["Cargador USB-C"].Quantity)

	require.Len(t, f.movs.rows, 1)
	mv := f.movs.rows[0]
	assert.Equal(t, entity.MovementAssignment, mv.Type)
	assert.Nil(t, mv.OriginModuleID, "sale del almacén general")
	require.NotNil(t, mv.DestinationModuleID)
	assert.Equal(t, "m-centro", *mv.DestinationModuleID)
}

func TestMoveToModule_CreatesItemWithWarehouseMetadata(t *testing.T) {
	f := newFixture()

	out, err := f.generalUC().MoveToModule(context.Background(), admin, dto.MoveToModuleRequest{Product: "Audífonos BT", ModuleID: "m-norte", Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, "AU-07", out.Key)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(350)))
	assert.Equal(t, 5, out.Quantity)
	assert.Equal(t, 0, f.general.rows["Audífonos BT"].Quantity)
}

func TestMoveToModule_Errors(t *testing.T) {
	f := newFixture()
	uc := f.generalUC()
	ctx := context.Background()

	_, err := uc.MoveToModule(ctx, admin, dto.MoveToModuleRequest{Product: "Audífonos BT", ModuleID: "m-norte", Quantity: 6})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 5, f.general.rows["Audífonos BT"].Quantity, "sin cambios tras el error")
	assert.Equal(t, -1, f.inv.qty("m-norte", "Audífonos BT"))
	assert.Empty(t, f.movs.rows)

	_, err = uc.MoveToModule(ctx, admin, dto.MoveToModuleRequest{Product: "Audífonos BT", ModuleID: "m-sur", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.MoveToModule(ctx, admin, dto.MoveToModuleRequest{Product: "No existe", ModuleID: "m-norte", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.MoveToModule(ctx, admin, dto.MoveToModuleRequest{Product: "Audífonos BT", ModuleID: "m-norte", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
