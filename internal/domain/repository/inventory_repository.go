package repository

import (
	"context"

	"github.com/jhoicas/Nomina-api/internal/domain/entity"
)

// InventoryRepository inventario por módulo. Las operaciones de cantidad son atómicas
// a nivel de fila y se usan dentro de transacciones.
type InventoryRepository interface {
	Get(ctx context.Context, moduleID, product string) (*entity.ModuleInventory, error)
	ListByModule(ctx context.Context, moduleID string) ([]*entity.ModuleInventory, error)
	// Upsert crea o reemplaza cantidad, clave, precio y tipo del producto en el módulo.
	Upsert(ctx context.Context, item *entity.ModuleInventory) error
	// Decrement resta qty solo si hay existencia suficiente. false = insuficiente o inexistente.
	Decrement(ctx context.Context, moduleID, product string, qty int) (bool, error)
	// Increment suma qty; si la fila no existe la crea con los metadatos de item.
	Increment(ctx context.Context, item *entity.ModuleInventory, qty int) error
}
