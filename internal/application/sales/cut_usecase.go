package sales

import (
	"context"
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

// CutUseCase cierre y consulta de cortes de caja.
// Los totales del sistema se recalculan de las ventas al cerrar; el cliente solo envía los adicionales.
type CutUseCase struct {
	sales *SaleUseCase
	cuts  repository.DailyCutRepository
	loc   *time.Location
	now   func() time.Time
}

// NewCutUseCase construye el caso de uso.
func NewCutUseCase(sales *SaleUseCase, cuts repository.DailyCutRepository, loc *time.Location) *CutUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &CutUseCase{sales: sales, cuts: cuts, loc: loc, now: time.Now}
}

// CloseCut guarda el corte de hoy del módulo del encargado. Un segundo cierre del día es ErrDuplicate.
func (uc *CutUseCase) CloseCut(ctx context.Context, actor access.Actor, in dto.CloseCutRequest) (*dto.CutResponse, error) {
	if err := access.Require(actor, access.CloseDailyCut); err != nil {
		return nil, err
	}
	if actor.ModuleID == "" {
		return nil, domain.Invalid("el encargado no tiene módulo asignado")
	}
	extras := map[string]decimal.Decimal{"recargas": in.ExtraRecharges, "pasajes": in.ExtraTransport, "otros": in.ExtraOther}
	for name, v := range extras {
		if v.IsNegative() {
			return nil, domain.Invalid("el adicional de %s no puede ser negativo", name)
		}
		if v.Round(2).GreaterThan(entity.MaxPrice) {
			return nil, domain.Invalid("el adicional de %s está fuera de rango", name)
		}
	}

	now := uc.now().In(uc.loc)
	day := payroll.Date(now)
	totals, err := uc.sales.DailyCut(ctx, actor, actor.ModuleID, day)
	if err != nil {
		return nil, err
	}
	c := &entity.DailyCut{
		ID:             uuid.New().String(),
		ModuleID:       actor.ModuleID,
		Date:           day,
		CashTotal:      totals.Cash,
		CardTotal:      totals.Card,
		SystemTotal:    totals.Total,
		ExtraRecharges: in.ExtraRecharges.Round(2),
		ExtraTransport: in.ExtraTransport.Round(2),
		ExtraOther:     in.ExtraOther.Round(2),
		ClosedBy:       actor.EmployeeID,
		CreatedAt:      now,
	}
	c.GrandTotal = c.SystemTotal.Add(c.ExtrasTotal())
	if err := uc.cuts.Create(ctx, c); err != nil {
		return nil, err
	}
	log.Info().Str("modulo", c.ModuleID).Str("total", c.GrandTotal.StringFixed(2)).Msg("corte de caja cerrado")
	return toCutResponse(c), nil
}

// ListCuts historial de cortes. Sin módulo, quien opera cualquier módulo ve todos.
func (uc *CutUseCase) ListCuts(ctx context.Context, actor access.Actor, f repository.DailyCutFilter) ([]dto.CutResponse, error) {
	if err := access.Require(actor, access.ViewDailyCuts); err != nil {
		return nil, err
	}
	if f.ModuleID != "" || !access.Can(actor.Role, access.AnyModule) {
		moduleID, err := access.Scope(actor, f.ModuleID)
		if err != nil {
			return nil, err
		}
		f.ModuleID = moduleID
	}
	list, err := uc.cuts.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CutResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCutResponse(c))
	}
	return out, nil
}

func toCutResponse(c *entity.DailyCut) *dto.CutResponse {
	return &dto.CutResponse{
		ID:             c.ID,
		ModuleID:       c.ModuleID,
		Date:           c.Date.Format(dto.DateLayout),
		CashTotal:      c.CashTotal,
		CardTotal:      c.CardTotal,
		SystemTotal:    c.SystemTotal,
		ExtraRecharges: c.ExtraRecharges,
		ExtraTransport: c.ExtraTransport,
		ExtraOther:     c.ExtraOther,
		GrandTotal:     c.GrandTotal,
		ClosedBy:       c.ClosedBy,
		CreatedAt:      c.CreatedAt,
	}
}
