package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
)

var _ repository.ChipSaleRepository = (*ChipSaleRepo)(nil)

// ChipSaleRepo ventas de chips sobre PostgreSQL.
type ChipSaleRepo struct {
	q Querier
}

// NewChipSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewChipSaleRepository(q Querier) *ChipSaleRepo {
	return &ChipSaleRepo{q: q}
}

const chipColumns = `id, employee_id, module_id, chip_type, phone_number, recharge_amount, validated,
	commission, rejection_reason, validated_by, validated_at, date, created_at`

// Create persiste una venta de chip pendiente.
func (r *ChipSaleRepo) Create(ctx context.Context, c *entity.ChipSale) error {
	query := `INSERT INTO chip_sales (` + chipColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.EmployeeID, nullString(c.ModuleID), c.ChipType, c.PhoneNumber, c.RechargeAmount, c.Validated,
		c.Commission, c.RejectionReason, c.ValidatedBy, c.ValidatedAt, c.Date, c.CreatedAt,
	)
	if err != nil {
		return wrapWrite("insert chip sale", err)
	}
	return nil
}

// GetByID obtiene una venta de chip por ID.
func (r *ChipSaleRepo) GetByID(ctx context.Context, id string) (*entity.ChipSale, error) {
	c, err := scanChip(r.q.QueryRow(ctx, `SELECT `+chipColumns+` FROM chip_sales WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chip sale: %w", err)
	}
	return c, nil
}

// MarkValidated fija comisión y validador solo si el chip seguía pendiente (ni validado ni rechazado).
func (r *ChipSaleRepo) MarkValidated(ctx context.Context, c *entity.ChipSale) (bool, error) {
	query := `
		UPDATE chip_sales SET validated = TRUE, commission = $2, validated_by = $3, validated_at = $4
		WHERE id = $1 AND NOT validated AND rejection_reason IS NULL`
	cmd, err := r.q.Exec(ctx, query, c.ID, c.Commission, c.ValidatedBy, c.ValidatedAt)
	if err != nil {
		return false, fmt.Errorf("validate chip sale: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// SetRejection fija o limpia (nil) el motivo de rechazo de un chip no validado.
// Limpiar exige que el chip siga rechazado. false = el chip cambió de estado.
func (r *ChipSaleRepo) SetRejection(ctx context.Context, id string, reason *string) (bool, error) {
	query := `UPDATE chip_sales SET rejection_reason = $2 WHERE id = $1 AND NOT validated`
	if reason == nil {
		query += ` AND rejection_reason IS NOT NULL`
	}
	cmd, err := r.q.Exec(ctx, query, id, reason)
	if err != nil {
		return false, fmt.Errorf("reject chip sale: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// List ventas de chip filtradas. Sin rango de fechas no filtra por fecha.
func (r *ChipSaleRepo) List(ctx context.Context, f repository.ChipFilter) ([]*entity.ChipSale, error) {
	var w whereBuilder
	if !f.From.IsZero() {
		w.add("date >= ?", f.From)
	}
	if !f.To.IsZero() {
		w.add("date <= ?", f.To)
	}
	if f.EmployeeID != "" {
		w.add("employee_id = ?", f.EmployeeID)
	}
	if f.ModuleID != "" {
		w.add("module_id = ?", f.ModuleID)
	}
	if f.ValidatedOnly {
		w.raw("validated")
	}
	if f.Pending {
		w.raw("NOT validated AND rejection_reason IS NULL")
	}
	if f.Rejected {
		w.raw("NOT validated AND rejection_reason IS NOT NULL")
	}
	rows, err := r.q.Query(ctx, `SELECT `+chipColumns+` FROM chip_sales`+w.sql()+` ORDER BY date, created_at`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list chip sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.ChipSale
	for rows.Next() {
		c, err := scanChip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chip sale: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanChip(row pgx.Row) (*entity.ChipSale, error) {
	var c entity.ChipSale
	var moduleID *string
	if err := row.Scan(
		&c.ID, &c.EmployeeID, &moduleID, &c.ChipType, &c.PhoneNumber, &c.RechargeAmount, &c.Validated,
		&c.Commission, &c.RejectionReason, &c.ValidatedBy, &c.ValidatedAt, &c.Date, &c.CreatedAt,
	); err != nil {
		return nil, err
	}
	c.ModuleID = derefString(moduleID)
	c.Date = dateOnly(c.Date)
	return &c, nil
}
