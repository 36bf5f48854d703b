package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
)

var _ repository.GeneralInventoryRepository = (*GeneralInventoryRepo)(nil)

// GeneralInventoryRepo almacén general sobre PostgreSQL (usable con pool o tx).
type GeneralInventoryRepo struct {
	q Querier
}

// NewGeneralInventoryRepository construye el adaptador.
func NewGeneralInventoryRepository(q Querier) *GeneralInventoryRepo {
	return &GeneralInventoryRepo{q: q}
}

const generalColumns = `id, product, key, price, product_type, quantity, updated_at`

// Get producto del almacén; nil si no existe.
func (r *GeneralInventoryRepo) Get(ctx context.Context, product string) (*entity.GeneralInventoryItem, error) {
	it, err := scanGeneral(r.q.QueryRow(ctx, `SELECT `+generalColumns+` FROM general_inventory WHERE product = $1`, product))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get general inventory: %w", err)
	}
	return it, nil
}

// List existencias del almacén ordenadas por producto.
func (r *GeneralInventoryRepo) List(ctx context.Context) ([]*entity.GeneralInventoryItem, error) {
	rows, err := r.q.Query(ctx, `SELECT `+generalColumns+` FROM general_inventory ORDER BY product`)
	if err != nil {
		return nil, fmt.Errorf("list general inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.GeneralInventoryItem
	for rows.Next() {
		it, err := scanGeneral(rows)
		if err != nil {
			return nil, fmt.Errorf("scan general inventory: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// Create alta de producto; el nombre es único.
func (r *GeneralInventoryRepo) Create(ctx context.Context, it *entity.GeneralInventoryItem) error {
	_, err := r.q.Exec(ctx, `INSERT INTO general_inventory (`+generalColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		it.ID, it.Product, it.Key, it.Price, it.ProductType, it.Quantity, it.UpdatedAt,
	)
	if err != nil {
		return wrapWrite("insert general inventory", err)
	}
	return nil
}

// Update reemplaza los datos del producto.
func (r *GeneralInventoryRepo) Update(ctx context.Context, it *entity.GeneralInventoryItem) error {
	_, err := r.q.Exec(ctx, `
		UPDATE general_inventory SET key = $2, price = $3, product_type = $4, quantity = $5, updated_at = $6
		WHERE id = $1`, it.ID, it.Key, it.Price, it.ProductType, it.Quantity, it.UpdatedAt)
	if err != nil {
		return wrapWrite("update general inventory", err)
	}
	return nil
}

// Decrement UPDATE condicional: nunca deja existencia negativa.
func (r *GeneralInventoryRepo) Decrement(ctx context.Context, product string, qty int) (bool, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE general_inventory SET quantity = quantity - $2, updated_at = now()
		WHERE product = $1 AND quantity >= $2`, product, qty)
	if err != nil {
		return false, fmt.Errorf("decrement general inventory: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// Delete baja del producto.
func (r *GeneralInventoryRepo) Delete(ctx context.Context, product string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM general_inventory WHERE product = $1`, product)
	if err != nil {
		return false, fmt.Errorf("delete general inventory: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

func scanGeneral(row pgx.Row) (*entity.GeneralInventoryItem, error) {
	var it entity.GeneralInventoryItem
	if err := row.Scan(&it.ID, &it.Product, &it.Key, &it.Price, &it.ProductType, &it.Quantity, &it.UpdatedAt); err != nil {
		return nil, err
	}
	return &it, nil
}
