package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo kardex sobre PostgreSQL (usable con pool o tx).
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste un renglón de kardex.
func (r *InventoryMovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_movements (id, product, product_type, quantity, type, origin_module_id,
			destination_module_id, reference_id, employee_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Product, m.ProductType, m.Quantity, m.Type, m.OriginModuleID,
		m.DestinationModuleID, m.ReferenceID, nullString(m.EmployeeID), m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create inventory movement: %w", err)
	}
	return nil
}

// List movimientos filtrados, del más reciente al más antiguo.
func (r *InventoryMovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.InventoryMovement, error) {
	var w whereBuilder
	if f.Product != "" {
		w.add("product ILIKE ?", "%"+f.Product+"%")
	}
	if f.ModuleID != "" {
		w.add("(origin_module_id = ? OR destination_module_id = ?)", f.ModuleID)
	}
	if f.From != nil {
		w.add("created_at >= ?", *f.From)
	}
	if f.To != nil {
		w.add("created_at < ?", f.To.AddDate(0, 0, 1))
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, product, product_type, quantity, type, origin_module_id, destination_module_id,
			reference_id, employee_id, created_at
		FROM inventory_movements` + w.sql() +
		` ORDER BY created_at DESC LIMIT ` + w.next(limit) + ` OFFSET ` + w.next(f.Offset)

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		var employeeID *string
		if err := rows.Scan(
			&m.ID, &m.Product, &m.ProductType, &m.Quantity, &m.Type, &m.OriginModuleID,
			&m.DestinationModuleID, &m.ReferenceID, &employeeID, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.EmployeeID = derefString(employeeID)
		list = append(list, &m)
	}
	return list, rows.Err()
}
