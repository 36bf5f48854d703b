package repository

import (
	"context"

	"github.com/jhoicas/Nomina-api/internal/domain/entity"
)

// CommissionRuleRepository reglas por producto.
type CommissionRuleRepository interface {
	Create(ctx context.Context, r *entity.CommissionRule) error
	GetByID(ctx context.Context, id string) (*entity.CommissionRule, error)
	Update(ctx context.Context, r *entity.CommissionRule) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.CommissionRule, error)
}

// ChipTierRepository tablas de rangos por tipo de chip.
type ChipTierRepository interface {
	List(ctx context.Context) ([]*entity.ChipCommissionTier, error)
	// Replace sustituye todos los rangos del tipo de chip (vacío = elimina la tabla).
	Replace(ctx context.Context, chipType string, tiers []*entity.ChipCommissionTier) error
}

// SaleTypeBonusRepository bonos por tipo de venta.
type SaleTypeBonusRepository interface {
	List(ctx context.Context) ([]*entity.SaleTypeBonus, error)
	Upsert(ctx context.Context, b *entity.SaleTypeBonus) error
	Delete(ctx context.Context, saleType string) error
}
