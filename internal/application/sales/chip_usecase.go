package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Nomina-api/internal/application/access"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/payroll"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ChipUseCase registro y validación de ventas de chips.
type ChipUseCase struct {
	chips repository.ChipSaleRepository
	rules RuleSource
	loc   *time.Location
	now   func() time.Time
}

// NewChipUseCase construye el caso de uso.
func NewChipUseCase(chips repository.ChipSaleRepository, rules RuleSource, loc *time.Location) *ChipUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &ChipUseCase{chips: chips, rules: rules, loc: loc, now: time.Now}
}

// RegisterChipSale registra el chip como pendiente de validación.
func (uc *ChipUseCase) RegisterChipSale(ctx context.Context, actor access.Actor, in dto.CreateChipSaleRequest) (*dto.ChipSaleResponse, error) {
	if err := access.Require(actor, access.RegisterChip); err != nil {
		return nil, err
	}
	chipType := strings.TrimSpace(in.ChipType)
	if chipType == "" {
		return nil, domain.Invalid("tipo de chip obligatorio")
	}
	phone := strings.TrimSpace(in.PhoneNumber)
	if phone == "" {
		return nil, domain.Invalid("número telefónico obligatorio")
	}
	if in.RechargeAmount.IsNegative() {
		return nil, domain.Invalid("monto de recarga negativo")
	}
	now := uc.now().In(uc.loc)
	c := &entity.ChipSale{
		ID:             uuid.New().String(),
		EmployeeID:     actor.EmployeeID,
		ModuleID:       actor.ModuleID,
		ChipType:       chipType,
		PhoneNumber:    phone,
		RechargeAmount: in.RechargeAmount,
		Date:           payroll.Date(now),
		CreatedAt:      now,
	}
	if err := uc.chips.Create(ctx, c); err != nil {
		return nil, err
	}
	out := ToChipResponse(c)
	return &out, nil
}

// ValidateChip fija la comisión del chip una sola vez. Los chips de activación
// requieren comisión manual; el resto la toma de la tabla de rangos.
func (uc *ChipUseCase) ValidateChip(ctx context.Context, actor access.Actor, id string, manual *decimal.Decimal) (*dto.ChipSaleResponse, error) {
	if err := access.Require(actor, access.ValidateChips); err != nil {
		return nil, err
	}
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Validated {
		return nil, fmt.Errorf("%w: el chip ya fue validado", domain.ErrInvalidState)
	}
	if c.RejectionReason != nil {
		return nil, fmt.Errorf("%w: el chip está rechazado, revierta el rechazo antes de validar", domain.ErrInvalidState)
	}

	var amount decimal.Decimal
	if c.ChipType == entity.ChipTypeActivation {
		if manual == nil {
			return nil, domain.Invalid("el chip de tipo %s requiere comisión manual", entity.ChipTypeActivation)
		}
		if manual.IsNegative() {
			return nil, domain.Invalid("comisión negativa")
		}
		amount = *manual
	} else {
		if manual != nil {
			return nil, domain.Invalid("la comisión manual solo aplica a chips de tipo %s", entity.ChipTypeActivation)
		}
		rs, err := uc.rules.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		if amount, err = rs.ChipCommission(c.ChipType, c.RechargeAmount); err != nil {
			return nil, err
		}
	}

	at := uc.now()
	by := actor.EmployeeID
	c.Validated = true
	c.Commission = &amount
	c.ValidatedBy = &by
	c.ValidatedAt = &at
	ok, err := uc.chips.MarkValidated(ctx, c)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: el chip ya fue validado o rechazado", domain.ErrInvalidState)
	}
	log.Info().Str("chip", c.ID).Str("comision", amount.String()).Str("por", actor.Username).Msg("chip validado")
	out := ToChipResponse(c)
	return &out, nil
}

// RejectChip marca el chip pendiente como rechazado con su motivo.
func (uc *ChipUseCase) RejectChip(ctx context.Context, actor access.Actor, id, reason string) (*dto.ChipSaleResponse, error) {
	if err := access.Require(actor, access.ValidateChips); err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.Invalid("motivo de rechazo obligatorio")
	}
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Validated {
		return nil, fmt.Errorf("%w: el chip ya fue validado", domain.ErrInvalidState)
	}
	ok, err := uc.chips.SetRejection(ctx, c.ID, &reason)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: el chip ya fue validado", domain.ErrInvalidState)
	}
	c.RejectionReason = &reason
	out := ToChipResponse(c)
	return &out, nil
}

// RevertRejection devuelve un chip rechazado a pendiente.
func (uc *ChipUseCase) RevertRejection(ctx context.Context, actor access.Actor, id string) (*dto.ChipSaleResponse, error) {
	if err := access.Require(actor, access.ValidateChips); err != nil {
		return nil, err
	}
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Validated || c.RejectionReason == nil {
		return nil, fmt.Errorf("%w: el chip no está rechazado", domain.ErrInvalidState)
	}
	ok, err := uc.chips.SetRejection(ctx, c.ID, nil)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: el chip no está rechazado", domain.ErrInvalidState)
	}
	c.RejectionReason = nil
	out := ToChipResponse(c)
	return &out, nil
}

// ListPending chips sin validar ni rechazar.
func (uc *ChipUseCase) ListPending(ctx context.Context, actor access.Actor) ([]dto.ChipSaleResponse, error) {
	return uc.list(ctx, actor, repository.ChipFilter{Pending: true})
}

// ListRejected chips rechazados sin validar.
func (uc *ChipUseCase) ListRejected(ctx context.Context, actor access.Actor) ([]dto.ChipSaleResponse, error) {
	return uc.list(ctx, actor, repository.ChipFilter{Rejected: true})
}

func (uc *ChipUseCase) list(ctx context.Context, actor access.Actor, f repository.ChipFilter) ([]dto.ChipSaleResponse, error) {
	if err := access.Require(actor, access.ValidateChips); err != nil {
		return nil, err
	}
	list, err := uc.chips.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChipSaleResponse, 0, len(list))
	for _, c := range list {
		out = append(out, ToChipResponse(c))
	}
	return out, nil
}

func (uc *ChipUseCase) get(ctx context.Context, id string) (*entity.ChipSale, error) {
	c, err := uc.chips.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound("venta de chip")
	}
	return c, nil
}

// ToChipResponse mapea la venta de chip a su DTO.
func ToChipResponse(c *entity.ChipSale) dto.ChipSaleResponse {
	return dto.ChipSaleResponse{
		ID:              c.ID,
		EmployeeID:      c.EmployeeID,
		ModuleID:        c.ModuleID,
		ChipType:        c.ChipType,
		PhoneNumber:     c.PhoneNumber,
		RechargeAmount:  c.RechargeAmount,
		Validated:       c.Validated,
		Commission:      c.Commission,
		RejectionReason: c.RejectionReason,
		Date:            c.Date.Format(dto.DateLayout),
	}
}
