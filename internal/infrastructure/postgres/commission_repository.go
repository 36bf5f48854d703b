package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
)

var (
	_ repository.CommissionRuleRepository = (*CommissionRuleRepo)(nil)
	_ repository.ChipTierRepository       = (*ChipTierRepo)(nil)
	_ repository.SaleTypeBonusRepository  = (*SaleTypeBonusRepo)(nil)
)

// CommissionRuleRepo reglas de comisión por producto.
type CommissionRuleRepo struct {
	q Querier
}

// NewCommissionRuleRepository construye el adaptador.
func NewCommissionRuleRepository(q Querier) *CommissionRuleRepo {
	return &CommissionRuleRepo{q: q}
}

// Create persiste una regla. El índice único sobre lower(trim(product)) -> domain.ErrDuplicate.
func (r *CommissionRuleRepo) Create(ctx context.Context, rule *entity.CommissionRule) error {
	query := `INSERT INTO commission_rules (id, product, amount, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.q.Exec(ctx, query, rule.ID, rule.Product, rule.Amount, rule.CreatedAt, rule.UpdatedAt); err != nil {
		return wrapWrite("insert commission rule", err)
	}
	return nil
}

// GetByID obtiene una regla por ID.
func (r *CommissionRuleRepo) GetByID(ctx context.Context, id string) (*entity.CommissionRule, error) {
	var rule entity.CommissionRule
	err := r.q.QueryRow(ctx, `SELECT id, product, amount, created_at, updated_at FROM commission_rules WHERE id = $1`, id).
		Scan(&rule.ID, &rule.Product, &rule.Amount, &rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get commission rule: %w", err)
	}
	return &rule, nil
}

// Update cambia producto y monto.
func (r *CommissionRuleRepo) Update(ctx context.Context, rule *entity.CommissionRule) error {
	query := `UPDATE commission_rules SET product = $2, amount = $3, updated_at = $4 WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, rule.ID, rule.Product, rule.Amount, rule.UpdatedAt); err != nil {
		return wrapWrite("update commission rule", err)
	}
	return nil
}

// Delete elimina la regla; las ventas que la referenciaban quedan con NULL.
func (r *CommissionRuleRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM commission_rules WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete commission rule: %w", err)
	}
	return nil
}

// List todas las reglas por producto.
func (r *CommissionRuleRepo) List(ctx context.Context) ([]*entity.CommissionRule, error) {
	rows, err := r.q.Query(ctx, `SELECT id, product, amount, created_at, updated_at FROM commission_rules ORDER BY product`)
	if err != nil {
		return nil, fmt.Errorf("list commission rules: %w", err)
	}
	defer rows.Close()
	var list []*entity.CommissionRule
	for rows.Next() {
		var rule entity.CommissionRule
		if err := rows.Scan(&rule.ID, &rule.Product, &rule.Amount, &rule.CreatedAt, &rule.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan commission rule: %w", err)
		}
		list = append(list, &rule)
	}
	return list, rows.Err()
}

// ChipTierRepo tablas de rangos de recarga por tipo de chip.
type ChipTierRepo struct {
	q Querier
}

// NewChipTierRepository construye el adaptador.
func NewChipTierRepository(q Querier) *ChipTierRepo {
	return &ChipTierRepo{q: q}
}

// List todos los rangos ordenados por tipo y mínimo.
func (r *ChipTierRepo) List(ctx context.Context) ([]*entity.ChipCommissionTier, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, chip_type, min_amount, max_amount, amount
		FROM chip_commission_tiers ORDER BY chip_type, min_amount`)
	if err != nil {
		return nil, fmt.Errorf("list chip tiers: %w", err)
	}
	defer rows.Close()
	var list []*entity.ChipCommissionTier
	for rows.Next() {
		var t entity.ChipCommissionTier
		if err := rows.Scan(&t.ID, &t.ChipType, &t.Min, &t.Max, &t.Amount); err != nil {
			return nil, fmt.Errorf("scan chip tier: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Replace sustituye la tabla completa del tipo de chip en una sola transacción
// (savepoint si el Querier ya es una tx).
func (r *ChipTierRepo) Replace(ctx context.Context, chipType string, tiers []*entity.ChipCommissionTier) error {
	return pgx.BeginFunc(ctx, r.q, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM chip_commission_tiers WHERE chip_type = $1`, chipType); err != nil {
			return fmt.Errorf("delete chip tiers: %w", err)
		}
		for _, t := range tiers {
			_, err := tx.Exec(ctx, `
				INSERT INTO chip_commission_tiers (id, chip_type, min_amount, max_amount, amount)
				VALUES ($1, $2, $3, $4, $5)`, t.ID, chipType, t.Min, t.Max, t.Amount)
			if err != nil {
				return fmt.Errorf("insert chip tier: %w", err)
			}
		}
		return nil
	})
}

// SaleTypeBonusRepo bonos por tipo de venta.
type SaleTypeBonusRepo struct {
	q Querier
}

// NewSaleTypeBonusRepository construye el adaptador.
func NewSaleTypeBonusRepository(q Querier) *SaleTypeBonusRepo {
	return &SaleTypeBonusRepo{q: q}
}

// List todos los bonos.
func (r *SaleTypeBonusRepo) List(ctx context.Context) ([]*entity.SaleTypeBonus, error) {
	rows, err := r.q.Query(ctx, `SELECT sale_type, amount FROM sale_type_bonuses ORDER BY sale_type`)
	if err != nil {
		return nil, fmt.Errorf("list bonuses: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleTypeBonus
	for rows.Next() {
		var b entity.SaleTypeBonus
		if err := rows.Scan(&b.SaleType, &b.Amount); err != nil {
			return nil, fmt.Errorf("scan bonus: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Upsert crea o reemplaza el bono del tipo de venta.
func (r *SaleTypeBonusRepo) Upsert(ctx context.Context, b *entity.SaleTypeBonus) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sale_type_bonuses (sale_type, amount) VALUES ($1, $2)
		ON CONFLICT (sale_type) DO UPDATE SET amount = EXCLUDED.amount`, b.SaleType, b.Amount)
	if err != nil {
		return fmt.Errorf("upsert bonus: %w", err)
	}
	return nil
}

// Delete elimina el bono del tipo de venta.
func (r *SaleTypeBonusRepo) Delete(ctx context.Context, saleType string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sale_type_bonuses WHERE sale_type = $1`, saleType); err != nil {
		return fmt.Errorf("delete bonus: %w", err)
	}
	return nil
}
