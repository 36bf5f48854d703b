package repository

import (
	"context"

	"github.com/jhoicas/Nomina-api/internal/domain/entity"
)

// GeneralInventoryRepository almacén general, un renglón por producto.
type GeneralInventoryRepository interface {
	// Get producto por nombre exacto; nil si no existe.
	Get(ctx context.Context, product string) (*entity.GeneralInventoryItem, error)
	List(ctx context.Context) ([]*entity.GeneralInventoryItem, error)
	// Create alta; un producto repetido devuelve domain.ErrDuplicate.
	Create(ctx context.Context, it *entity.GeneralInventoryItem) error
	// Update reemplaza clave, precio, tipo y cantidad.
	Update(ctx context.Context, it *entity.GeneralInventoryItem) error
	// Decrement resta qty solo si alcanza. false = insuficiente o inexistente.
	Decrement(ctx context.Context, product string, qty int) (bool, error)
	// Delete false si el producto no existía.
	Delete(ctx context.Context, product string) (bool, error)
}
