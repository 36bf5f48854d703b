package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo inventario por módulo sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `id, module_id, product, key, price, product_type, quantity, updated_at`

// Get existencia del producto en el módulo; nil si no existe.
func (r *InventoryRepo) Get(ctx context.Context, moduleID, product string) (*entity.ModuleInventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM module_inventory WHERE module_id = $1 AND product = $2`
	it, err := scanInventory(r.q.QueryRow(ctx, query, moduleID, product))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return it, nil
}

// ListByModule existencias del módulo ordenadas por producto.
func (r *InventoryRepo) ListByModule(ctx context.Context, moduleID string) ([]*entity.ModuleInventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM module_inventory WHERE module_id = $1 ORDER BY product`
	rows, err := r.q.Query(ctx, query, moduleID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.ModuleInventory
	for rows.Next() {
		it, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// Upsert crea o reemplaza la fila (módulo, producto).
func (r *InventoryRepo) Upsert(ctx context.Context, it *entity.ModuleInventory) error {
	query := `
		INSERT INTO module_inventory (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (module_id, product) DO UPDATE SET
			key = EXCLUDED.key, price = EXCLUDED.price, product_type = EXCLUDED.product_type,
			quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		it.ID, it.ModuleID, it.Product, it.Key, it.Price, it.ProductType, it.Quantity, it.UpdatedAt,
	)
	if err != nil {
		return wrapWrite("upsert inventory", err)
	}
	return nil
}

// Decrement resta qty con un UPDATE condicional; false si la existencia no alcanza o no hay fila.
func (r *InventoryRepo) Decrement(ctx context.Context, moduleID, product string, qty int) (bool, error) {
	query := `
		UPDATE module_inventory SET quantity = quantity - $3, updated_at = now()
		WHERE module_id = $1 AND product = $2 AND quantity >= $3`
	cmd, err := r.q.Exec(ctx, query, moduleID, product, qty)
	if err != nil {
		return false, fmt.Errorf("decrement inventory: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// Increment suma qty; si la fila no existe la crea con los metadatos de it.
func (r *InventoryRepo) Increment(ctx context.Context, it *entity.ModuleInventory, qty int) error {
	query := `
		INSERT INTO module_inventory (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (module_id, product) DO UPDATE SET
			quantity = module_inventory.quantity + EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(ctx, query, it.ID, it.ModuleID, it.Product, it.Key, it.Price, it.ProductType, qty)
	if err != nil {
		return wrapWrite("increment inventory", err)
	}
	return nil
}

func scanInventory(row pgx.Row) (*entity.ModuleInventory, error) {
	var it entity.ModuleInventory
	if err := row.Scan(&it.ID, &it.ModuleID, &it.Product, &it.Key, &it.Price, &it.ProductType, &it.Quantity, &it.UpdatedAt); err != nil {
		return nil, err
	}
	return &it, nil
}
