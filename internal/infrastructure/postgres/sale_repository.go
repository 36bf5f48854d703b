package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo ventas de accesorios y teléfonos sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, employee_id, module_id, product, product_type, quantity, unit_price, sale_type,
	payment_method, cancelled, commission_rule_id, customer_email, date, created_at`

// Create persiste una venta.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.EmployeeID, s.ModuleID, s.Product, s.ProductType, s.Quantity, s.UnitPrice, s.SaleType,
		s.PaymentMethod, s.Cancelled, s.CommissionRuleID, s.CustomerEmail, s.Date, s.CreatedAt,
	)
	if err != nil {
		return wrapWrite("insert sale", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// Cancel marca la venta cancelada solo si no lo estaba.
func (r *SaleRepo) Cancel(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE sales SET cancelled = TRUE WHERE id = $1 AND NOT cancelled`, id)
	if err != nil {
		return false, fmt.Errorf("cancel sale: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// List ventas del rango inclusivo por fecha de negocio.
func (r *SaleRepo) List(ctx context.Context, f repository.SaleFilter) ([]*entity.Sale, error) {
	var w whereBuilder
	w.add("date >= ?", f.From)
	w.add("date <= ?", f.To)
	if f.EmployeeID != "" {
		w.add("employee_id = ?", f.EmployeeID)
	}
	if f.ModuleID != "" {
		w.add("module_id = ?", f.ModuleID)
	}
	if !f.IncludeCancelled {
		w.raw("NOT cancelled")
	}
	rows, err := r.q.Query(ctx, `SELECT `+saleColumns+` FROM sales`+w.sql()+` ORDER BY date, created_at`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	if err := row.Scan(
		&s.ID, &s.EmployeeID, &s.ModuleID, &s.Product, &s.ProductType, &s.Quantity, &s.UnitPrice, &s.SaleType,
		&s.PaymentMethod, &s.Cancelled, &s.CommissionRuleID, &s.CustomerEmail, &s.Date, &s.CreatedAt,
	); err != nil {
		return nil, err
	}
	s.Date = dateOnly(s.Date)
	return &s, nil
}
