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

// SaleUseCase punto de venta: registro, cancelación, consulta y corte diario.
type SaleUseCase struct {
	tx       TxRunner
	sales    repository.SaleRepository
	inv      repository.InventoryRepository
	rules    RuleSource
	notifier Notifier
	loc      *time.Location
	now      func() time.Time
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(tx TxRunner, sales repository.SaleRepository, inv repository.InventoryRepository, rules RuleSource, notifier Notifier, loc *time.Location) *SaleUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &SaleUseCase{tx: tx, sales: sales, inv: inv, rules: rules, notifier: notifier, loc: loc, now: time.Now}
}

// RegisterSale registra una venta de una o varias líneas del módulo del vendedor.
// Por línea: decremento condicional de inventario, alta de la venta y renglón de kardex,
// todo en una sola transacción. El ticket se envía después del commit.
func (uc *SaleUseCase) RegisterSale(ctx context.Context, actor access.Actor, in dto.CreateSaleRequest) ([]dto.SaleResponse, error) {
	if err := access.Require(actor, access.RegisterSale); err != nil {
		return nil, err
	}
	if err := access.RequireModule(actor); err != nil {
		return nil, err
	}
	if in.PaymentMethod != entity.PaymentCash && in.PaymentMethod != entity.PaymentCard {
		return nil, domain.Invalid("método de pago %q inválido", in.PaymentMethod)
	}
	if len(in.Items) == 0 {
		return nil, domain.Invalid("la venta no tiene productos")
	}
	for i, it := range in.Items {
		if strings.TrimSpace(it.Product) == "" || it.Quantity <= 0 {
			return nil, domain.Invalid("renglón %d: producto y cantidad positiva son obligatorios", i+1)
		}
		if it.UnitPrice != nil && it.UnitPrice.IsNegative() {
			return nil, domain.Invalid("renglón %d: precio negativo", i+1)
		}
	}
	rs, err := uc.rules.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now().In(uc.loc)
	today := payroll.Date(now)
	created := make([]*entity.Sale, 0, len(in.Items))

	err = uc.tx.RunSales(ctx, func(invRepo repository.InventoryRepository, saleRepo repository.SaleRepository, movRepo repository.InventoryMovementRepository) error {
		for _, it := range in.Items {
			product := strings.TrimSpace(it.Product)
			item, err := invRepo.Get(ctx, actor.ModuleID, product)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.NotFound(fmt.Sprintf("producto %q en el inventario del módulo", product))
			}
			ok, err := invRepo.Decrement(ctx, actor.ModuleID, item.Product, it.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %s (solicitado %d)", domain.ErrInsufficientStock, item.Product, it.Quantity)
			}
			price := item.Price
			if it.UnitPrice != nil {
				price = *it.UnitPrice
			}
			s := &entity.Sale{
				ID:            uuid.New().String(),
				EmployeeID:    actor.EmployeeID,
				ModuleID:      actor.ModuleID,
				Product:       item.Product,
				ProductType:   item.ProductType,
				Quantity:      it.Quantity,
				UnitPrice:     price,
				SaleType:      strings.TrimSpace(it.SaleType),
				PaymentMethod: in.PaymentMethod,
				CustomerEmail: strings.TrimSpace(in.CustomerEmail),
				Date:          today,
				CreatedAt:     now,
			}
			if rule := rs.ProductRule(item.Product); rule != nil {
				id := rule.ID
				s.CommissionRuleID = &id
			}
			if err := saleRepo.Create(ctx, s); err != nil {
				return err
			}
			origin := actor.ModuleID
			if err := movRepo.Create(ctx, &entity.InventoryMovement{
				ID:             uuid.New().String(),
				Product:        item.Product,
				ProductType:    item.ProductType,
				Quantity:       it.Quantity,
				Type:           entity.MovementSale,
				OriginModuleID: &origin,
				ReferenceID:    s.ID,
				EmployeeID:     actor.EmployeeID,
				CreatedAt:      now,
			}); err != nil {
				return err
			}
			created = append(created, s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if email := strings.TrimSpace(in.CustomerEmail); email != "" && uc.notifier != nil {
		if err := uc.notifier.NotifySale(ctx, buildTicket(actor, email, created, now)); err != nil {
			log.Warn().Err(err).Str("venta", created[0].ID).Msg("no se pudo enviar el ticket")
		}
	}

	out := make([]dto.SaleResponse, 0, len(created))
	for _, s := range created {
		out = append(out, ToSaleResponse(s))
	}
	return out, nil
}

// CancelSale cancela la venta y reintegra el inventario. Admin, o encargado del mismo módulo.
func (uc *SaleUseCase) CancelSale(ctx context.Context, actor access.Actor, saleID string) (*dto.SaleResponse, error) {
	if err := access.Require(actor, access.CancelSale); err != nil {
		return nil, err
	}
	s, err := uc.sales.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.NotFound("venta")
	}
	if s.ModuleID != actor.ModuleID && !access.Can(actor.Role, access.AnyModule) {
		return nil, fmt.Errorf("%w: la venta pertenece a otro módulo", domain.ErrForbidden)
	}
	if s.Cancelled {
		return nil, fmt.Errorf("%w: la venta ya fue cancelada", domain.ErrInvalidState)
	}

	now := uc.now()
	err = uc.tx.RunSales(ctx, func(invRepo repository.InventoryRepository, saleRepo repository.SaleRepository, movRepo repository.InventoryMovementRepository) error {
		ok, err := saleRepo.Cancel(ctx, s.ID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: la venta ya fue cancelada", domain.ErrInvalidState)
		}
		meta := &entity.ModuleInventory{
			ID:          uuid.New().String(),
			ModuleID:    s.ModuleID,
			Product:     s.Product,
			Price:       s.UnitPrice,
			ProductType: s.ProductType,
		}
		if err := invRepo.Increment(ctx, meta, s.Quantity); err != nil {
			return err
		}
		dest := s.ModuleID
		return movRepo.Create(ctx, &entity.InventoryMovement{
			ID:                  uuid.New().String(),
			Product:             s.Product,
			ProductType:         s.ProductType,
			Quantity:            s.Quantity,
			Type:                entity.MovementCancellation,
			DestinationModuleID: &dest,
			ReferenceID:         s.ID,
			EmployeeID:          actor.EmployeeID,
			CreatedAt:           now,
		})
	})
	if err != nil {
		return nil, err
	}
	s.Cancelled = true
	log.Info().Str("venta", s.ID).Str("por", actor.Username).Msg("venta cancelada")
	out := ToSaleResponse(s)
	return &out, nil
}

// ListSales ventas del rango (por defecto hoy). Asesor: solo las propias; encargado: su módulo.
func (uc *SaleUseCase) ListSales(ctx context.Context, actor access.Actor, f repository.SaleFilter) ([]dto.SaleResponse, error) {
	if f.From.IsZero() || f.To.IsZero() {
		today := payroll.Date(uc.now().In(uc.loc))
		f.From, f.To = today, today
	}
	switch {
	case access.Can(actor.Role, access.ViewAllSales):
	case access.Can(actor.Role, access.ViewModuleSales):
		f.ModuleID = actor.ModuleID
	default:
		f.EmployeeID = actor.EmployeeID
	}
	list, err := uc.sales.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToSaleResponse(s))
	}
	return out, nil
}

// DailyCut totales del día por método de pago (ventas no canceladas), a 2 decimales.
func (uc *SaleUseCase) DailyCut(ctx context.Context, actor access.Actor, moduleID string, day time.Time) (*dto.DailyCutResponse, error) {
	moduleID, err := access.Scope(actor, moduleID)
	if err != nil {
		return nil, err
	}
	if day.IsZero() {
		day = uc.now().In(uc.loc)
	}
	day = payroll.Date(day)
	list, err := uc.sales.List(ctx, repository.SaleFilter{ModuleID: moduleID, From: day, To: day})
	if err != nil {
		return nil, err
	}
	cash, card := decimal.Zero, decimal.Zero
	for _, s := range list {
		switch s.PaymentMethod {
		case entity.PaymentCard:
			card = card.Add(s.Total())
		default:
			cash = cash.Add(s.Total())
		}
	}
	return &dto.DailyCutResponse{
		ModuleID: moduleID,
		Date:     day.Format(dto.DateLayout),
		Cash:     cash.Round(2),
		Card:     card.Round(2),
		Total:    cash.Add(card).Round(2),
		Sales:    len(list),
	}, nil
}

func buildTicket(actor access.Actor, email string, sales []*entity.Sale, at time.Time) Ticket {
	t := Ticket{
		Folio:         sales[0].ID,
		CustomerEmail: email,
		Seller:        actor.Username,
		ModuleID:      actor.ModuleID,
		PaymentMethod: sales[0].PaymentMethod,
		IssuedAt:      at,
		Total:         decimal.Zero,
	}
	for _, s := range sales {
		line := s.Total()
		t.Items = append(t.Items, TicketItem{Product: s.Product, Quantity: s.Quantity, UnitPrice: s.UnitPrice, Total: line})
		t.Total = t.Total.Add(line)
	}
	return t
}

// ToSaleResponse mapea la venta a su DTO.
func ToSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:            s.ID,
		EmployeeID:    s.EmployeeID,
		ModuleID:      s.ModuleID,
		Product:       s.Product,
		ProductType:   s.ProductType,
		Quantity:      s.Quantity,
		UnitPrice:     s.UnitPrice,
		Total:         s.Total().Round(2),
		SaleType:      s.SaleType,
		PaymentMethod: s.PaymentMethod,
		Cancelled:     s.Cancelled,
		Date:          s.Date.Format(dto.DateLayout),
		CreatedAt:     s.CreatedAt,
	}
}
