package inventory_test

import (
	"context"
	"testing"

	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/application/inventory"
	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) inventoryUC() *inventory.InventoryUseCase {
	return inventory.NewInventoryUseCase(f.tx, f.inv, f.movs, f.modules)
}

// ── Inventario del módulo ────────────────────────────────────────────────────

func TestListInventory_Scope(t *testing.T) {
	f := newFixture()
	uc := f.inventoryUC()
	ctx := context.Background()

	items, err := uc.ListInventory(ctx, asesor, "")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = uc.ListInventory(ctx, encNorte, "m-centro")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.ListInventory(ctx, admin, "m-sur")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	items, err = uc.ListInventory(ctx, admin, "m-centro")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestUpsertItem_RecordsAdjustment(t *testing.T) {
	f := newFixture()
	uc := f.inventoryUC()
	ctx := context.Background()

	out, err := uc.UpsertItem(ctx, encCentro, "", dto.InventoryItemRequest{
		Product: "Cargador USB-C", Key: "CG-01", Price: decimal.NewFromInt(210),
		ProductType: entity.ProductTypeAccessory, Quantity: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, "i-1", out.ID, "conserva la fila existente")
	assert.Equal(t, 7, f.inv.qty("m-centro", "Cargador USB-C"))

	require.Len(t, f.movs.rows, 1)
	mv := f.movs.rows[0]
	assert.Equal(t, entity.MovementAdjustment, mv.Type)
	assert.Equal(t, 3, mv.Quantity)
	require.NotNil(t, mv.OriginModuleID, "una baja sale del módulo")
	assert.Nil(t, mv.DestinationModuleID)

	_, err = uc.UpsertItem(ctx, encCentro, "", dto.InventoryItemRequest{Product: "Mica", ProductType: "otro", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpsertItem(ctx, asesor, "", dto.InventoryItemRequest{Product: "Mica", ProductType: entity.ProductTypeAccessory, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListMovements_EncargadoSeesOwnModule(t *testing.T) {
	f := newFixture()
	uc := f.inventoryUC()
	ctx := context.Background()

	_, err := uc.ListMovements(ctx, encNorte, repository.MovementFilter{ModuleID: "m-centro"})
	require.NoError(t, err)
	assert.Equal(t, "m-norte", f.movs.last.ModuleID)
	assert.Equal(t, 50, f.movs.last.Limit)

	_, err = uc.ListMovements(ctx, asesor, repository.MovementFilter{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ── Carga masiva ─────────────────────────────────────────────────────────────

func uploadRows() []inventory.UploadRow {
	return []inventory.UploadRow{
		{Row: 2, Key: "CG-01", Description: "Cargador USB-C", Quantity: "5", Price: "199", ProductType: "Accesorio"},
		{Row: 3, Key: "MG-52", Description: "Moto G52", Quantity: "2.0", Price: "$3,499.00", ProductType: "Teléfono"},
		{Row: 4, Key: "X", Description: "", Quantity: "1", Price: "10", ProductType: "accesorio"},
		{Row: 5, Key: "Y", Description: "Funda", Quantity: "1.5", Price: "10", ProductType: "accesorio"},
		{Row: 6, Key: "Z", Description: "Audífonos", Quantity: "3", Price: "abc", ProductType: "accesorio"},
		{Row: 7, Key: "W", Description: "Mica", Quantity: "3", Price: "20", ProductType: ""},
		{Row: 8, Key: "CG-02", Description: "cargador usb-c", Quantity: "1", Price: "199", ProductType: "accesorio"},
	}
}

func TestPreviewUpload_JudgesEveryRow(t *testing.T) {
	f := newFixture()

	out, err := f.inventoryUC().PreviewUpload(context.Background(), admin, uploadRows())
	require.NoError(t, err)

	assert.False(t, out.Committed)
	assert.Equal(t, 2, out.Valid)
	assert.Equal(t, 5, out.Invalid)
	assert.Equal(t, entity.ProductTypePhone, out.Rows[1].ProductType)
	assert.True(t, out.Rows[1].Price.Equal(decimal.RequireFromString("3499")))
	assert.Contains(t, out.Rows[6].Errors[0], "repetido")
	assert.Equal(t, 10, f.inv.qty("m-centro", "Cargador USB-C"), "la vista previa no escribe")
}

func TestCommitUpload_MatchesPreviewAndAddsStock(t *testing.T) {
	f := newFixture()
	uc := f.inventoryUC()
	ctx := context.Background()

	preview, err := uc.PreviewUpload(ctx, admin, uploadRows())
	require.NoError(t, err)
	commit, err := uc.CommitUpload(ctx, admin, "m-centro", uploadRows())
	require.NoError(t, err)

	require.Len(t, commit.Rows, len(preview.Rows))
	for i := range preview.Rows {
		assert.Equal(t, preview.Rows[i].Valid, commit.Rows[i].Valid, "renglón %d", preview.Rows[i].Row)
		assert.Equal(t, preview.Rows[i].Errors, commit.Rows[i].Errors)
	}
	assert.True(t, commit.Committed)

	assert.Equal(t, 15, f.inv.qty("m-centro", "Cargador USB-C"))
	assert.Equal(t, 2, f.inv.qty("m-centro", "Moto G52"))
	assert.Len(t, f.movs.rows, 2)
	for _, mv := range f.movs.rows {
		assert.Equal(t, entity.MovementUpload, mv.Type)
	}
}

func TestPreviewUpload_RejectsOutOfRangeValues(t *testing.T) {
	f := newFixture()
	rows := []inventory.UploadRow{
		{Row: 2, Description: "Funda", Quantity: "18446744073709551615", Price: "10", ProductType: "accesorio"},
		{Row: 3, Description: "Mica", Quantity: "3000000000", Price: "10", ProductType: "accesorio"},
		{Row: 4, Description: "Cable", Quantity: "2147483647", Price: "10", ProductType: "accesorio"},
		{Row: 5, Description: "Moto G52", Quantity: "1", Price: "10000000000", ProductType: "telefono"},
		{Row: 6, Description: "Moto G53", Quantity: "1", Price: "9999999999.99", ProductType: "telefono"},
	}

	out, err := f.inventoryUC().PreviewUpload(context.Background(), admin, rows)
	require.NoError(t, err)

	assert.False(t, out.Rows[0].Valid)
	assert.Equal(t, 0, out.Rows[0].Quantity, "no se reporta una cantidad desbordada")
	assert.Contains(t, out.Rows[0].Errors[0], "fuera de rango")
	assert.False(t, out.Rows[1].Valid, "rebasa INTEGER")
	assert.True(t, out.Rows[2].Valid, "el máximo de la columna es válido")
	assert.Equal(t, entity.MaxStockQuantity, out.Rows[2].Quantity)
	assert.False(t, out.Rows[3].Valid, "rebasa NUMERIC(12,2)")
	assert.True(t, out.Rows[4].Valid)
}

func TestCommitUpload_ResultingStockOverflowIsRowError(t *testing.T) {
	f := newFixture()
	f.inv.rows["m-centro|Cargador USB-C"].Quantity = entity.MaxStockQuantity - 5
	rows := []inventory.UploadRow{
		{Row: 2, Key: "CG-01", Description: "Cargador USB-C", Quantity: "6", Price: "199", ProductType: "accesorio"},
		{Row: 3, Key: "MG-52", Description: "Moto G52", Quantity: "2", Price: "3499", ProductType: "telefono"},
	}

	out, err := f.inventoryUC().CommitUpload(context.Background(), admin, "m-centro", rows)
	require.NoError(t, err, "el lote no se aborta")

	assert.Equal(t, 1, out.Valid)
	assert.Equal(t, 1, out.Invalid)
	assert.False(t, out.Rows[0].Valid)
	assert.Contains(t, out.Rows[0].Errors[0], "excede el máximo")
	assert.Equal(t, entity.MaxStockQuantity-5, f.inv.qty("m-centro", "Cargador USB-C"))
	assert.Equal(t, 2, f.inv.qty("m-centro", "Moto G52"))
	require.Len(t, f.movs.rows, 1)
	assert.Equal(t, "Moto G52", f.movs.rows[0].Product)
}

func TestCommitUpload_RequiresCapability(t *testing.T) {
	f := newFixture()
	_, err := f.inventoryUC().CommitUpload(context.Background(), encCentro, "", uploadRows())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

