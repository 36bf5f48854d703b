package inventory

import (
	"context"

	"github.com/jhoicas/Nomina-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad de traspasos, ajustes y cargas masivas.
type TxRunner interface {
	RunInventory(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		movRepo repository.InventoryMovementRepository,
		transferRepo repository.TransferRepository,
	) error) error
	// RunGeneral movimientos del almacén general hacia los módulos.
	RunGeneral(ctx context.Context, fn func(
		general repository.GeneralInventoryRepository,
		invRepo repository.InventoryRepository,
		movRepo repository.InventoryMovementRepository,
	) error) error
}

// UploadRow renglón crudo leído de la hoja de carga masiva; todos los campos llegan como texto.
type UploadRow struct {
	Row         int
	Key         string
	Description string
	Quantity    string
	Price       string
	ProductType string
}
