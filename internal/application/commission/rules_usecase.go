package commission

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Nomina-api/internal/application/access"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/domain"
	domcommission "github.com/jhoicas/Nomina-api/internal/domain/commission"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
	"github.com/jhoicas/Nomina-api/pkg/textnorm"
)

// RuleSource entrega la instantánea vigente de las tablas de comisión.
type RuleSource interface {
	Snapshot(ctx context.Context) (*domcommission.RuleSet, error)
}

// RulesUseCase administración de reglas por producto, tablas de chips y bonos por tipo de venta.
type RulesUseCase struct {
	rules   repository.CommissionRuleRepository
	tiers   repository.ChipTierRepository
	bonuses repository.SaleTypeBonusRepository
}

// NewRulesUseCase construye el caso de uso.
func NewRulesUseCase(rules repository.CommissionRuleRepository, tiers repository.ChipTierRepository, bonuses repository.SaleTypeBonusRepository) *RulesUseCase {
	return &RulesUseCase{rules: rules, tiers: tiers, bonuses: bonuses}
}

var _ RuleSource = (*RulesUseCase)(nil)

// Snapshot carga las tres tablas y arma el RuleSet.
func (uc *RulesUseCase) Snapshot(ctx context.Context) (*domcommission.RuleSet, error) {
	rules, err := uc.rules.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar reglas: %w", err)
	}
	tiers, err := uc.tiers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar tablas de chips: %w", err)
	}
	bonuses, err := uc.bonuses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar bonos: %w", err)
	}
	return domcommission.NewRuleSet(rules, tiers, bonuses), nil
}

// ListRules lista las reglas por producto.
func (uc *RulesUseCase) ListRules(ctx context.Context) ([]dto.CommissionRuleResponse, error) {
	list, err := uc.rules.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CommissionRuleResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRuleResponse(r))
	}
	return out, nil
}

// CreateRule crea una regla. El nombre normalizado debe ser único.
func (uc *RulesUseCase) CreateRule(ctx context.Context, actor access.Actor, in dto.CommissionRuleRequest) (*dto.CommissionRuleResponse, error) {
	if err := access.Require(actor, access.ManageRules); err != nil {
		return nil, err
	}
	product := strings.TrimSpace(in.Product)
	if product == "" || in.Amount.IsNegative() {
		return nil, domain.Invalid("producto y monto no negativo son obligatorios")
	}
	if err := uc.ensureUnique(ctx, product, ""); err != nil {
		return nil, err
	}
	now := time.Now()
	r := &entity.CommissionRule{
		ID:        uuid.New().String(),
		Product:   product,
		Amount:    in.Amount,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.rules.Create(ctx, r); err != nil {
		return nil, err
	}
	out := toRuleResponse(r)
	return &out, nil
}

// UpdateRule cambia producto y/o monto de una regla existente.
func (uc *RulesUseCase) UpdateRule(ctx context.Context, actor access.Actor, id string, in dto.CommissionRuleRequest) (*dto.CommissionRuleResponse, error) {
	if err := access.Require(actor, access.ManageRules); err != nil {
		return nil, err
	}
	r, err := uc.rules.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.NotFound("regla de comisión")
	}
	product := strings.TrimSpace(in.Product)
	if product == "" || in.Amount.IsNegative() {
		return nil, domain.Invalid("producto y monto no negativo son obligatorios")
	}
	if err := uc.ensureUnique(ctx, product, id); err != nil {
		return nil, err
	}
	r.Product = product
	r.Amount = in.Amount
	r.UpdatedAt = time.Now()
	if err := uc.rules.Update(ctx, r); err != nil {
		return nil, err
	}
	out := toRuleResponse(r)
	return &out, nil
}

// DeleteRule elimina una regla.
func (uc *RulesUseCase) DeleteRule(ctx context.Context, actor access.Actor, id string) error {
	if err := access.Require(actor, access.ManageRules); err != nil {
		return err
	}
	r, err := uc.rules.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.NotFound("regla de comisión")
	}
	return uc.rules.Delete(ctx, id)
}

func (uc *RulesUseCase) ensureUnique(ctx context.Context, product, exceptID string) error {
	list, err := uc.rules.List(ctx)
	if err != nil {
		return err
	}
	key := textnorm.Key(product)
	for _, r := range list {
		if r.ID != exceptID && textnorm.Key(r.Product) == key {
			return fmt.Errorf("%w: ya existe una regla para %q", domain.ErrDuplicate, r.Product)
		}
	}
	return nil
}

// ListChipTables tablas de rangos agrupadas por tipo de chip.
func (uc *RulesUseCase) ListChipTables(ctx context.Context) ([]dto.ChipTableResponse, error) {
	tiers, err := uc.tiers.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []dto.ChipTableResponse
	idx := map[string]int{}
	for _, t := range tiers {
		i, ok := idx[t.ChipType]
		if !ok {
			i = len(out)
			idx[t.ChipType] = i
			out = append(out, dto.ChipTableResponse{ChipType: t.ChipType})
		}
		out[i].Tiers = append(out[i].Tiers, dto.ChipTierDTO{Min: t.Min, Max: t.Max, Amount: t.Amount})
	}
	return out, nil
}

// ReplaceChipTable sustituye la tabla de un tipo de chip. Activacion no admite tabla.
func (uc *RulesUseCase) ReplaceChipTable(ctx context.Context, actor access.Actor, chipType string, in dto.ChipTableRequest) (*dto.ChipTableResponse, error) {
	if err := access.Require(actor, access.ManageRules); err != nil {
		return nil, err
	}
	chipType = strings.TrimSpace(chipType)
	if chipType == "" {
		return nil, domain.Invalid("tipo de chip obligatorio")
	}
	if chipType == entity.ChipTypeActivation && len(in.Tiers) > 0 {
		return nil, domain.Invalid("%s usa comisión manual, no tabla", entity.ChipTypeActivation)
	}
	tiers := make([]*entity.ChipCommissionTier, 0, len(in.Tiers))
	for _, t := range in.Tiers {
		tiers = append(tiers, &entity.ChipCommissionTier{
			ID:       uuid.New().String(),
			ChipType: chipType,
			Min:      t.Min,
			Max:      t.Max,
			Amount:   t.Amount,
		})
	}
	if err := domcommission.ValidateTiers(tiers); err != nil {
		return nil, err
	}
	if err := uc.tiers.Replace(ctx, chipType, tiers); err != nil {
		return nil, err
	}
	return &dto.ChipTableResponse{ChipType: chipType, Tiers: in.Tiers}, nil
}

// ListBonuses bonos por tipo de venta.
func (uc *RulesUseCase) ListBonuses(ctx context.Context) ([]dto.SaleTypeBonusResponse, error) {
	list, err := uc.bonuses.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleTypeBonusResponse, 0, len(list))
	for _, b := range list {
		out = append(out, dto.SaleTypeBonusResponse{SaleType: b.SaleType, Amount: b.Amount})
	}
	return out, nil
}

// SetBonus crea o actualiza el bono de un tipo de venta.
func (uc *RulesUseCase) SetBonus(ctx context.Context, actor access.Actor, saleType string, in dto.SaleTypeBonusRequest) (*dto.SaleTypeBonusResponse, error) {
	if err := access.Require(actor, access.ManageRules); err != nil {
		return nil, err
	}
	saleType = strings.TrimSpace(saleType)
	if saleType == "" || in.Amount.IsNegative() {
		return nil, domain.Invalid("tipo de venta y monto no negativo son obligatorios")
	}
	b := &entity.SaleTypeBonus{SaleType: saleType, Amount: in.Amount}
	if err := uc.bonuses.Upsert(ctx, b); err != nil {
		return nil, err
	}
	return &dto.SaleTypeBonusResponse{SaleType: b.SaleType, Amount: b.Amount}, nil
}

// DeleteBonus elimina el bono de un tipo de venta.
func (uc *RulesUseCase) DeleteBonus(ctx context.Context, actor access.Actor, saleType string) error {
	if err := access.Require(actor, access.ManageRules); err != nil {
		return err
	}
	return uc.bonuses.Delete(ctx, strings.TrimSpace(saleType))
}

func toRuleResponse(r *entity.CommissionRule) dto.CommissionRuleResponse {
	return dto.CommissionRuleResponse{ID: r.ID, Product: r.Product, Amount: r.Amount, UpdatedAt: r.UpdatedAt}
}
