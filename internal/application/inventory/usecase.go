package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Nomina-api/internal/application/access"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
	"github.com/rs/zerolog/log"
)

// InventoryUseCase inventario por módulo: consulta, ajustes, kardex y carga masiva.
type InventoryUseCase struct {
	txRunner TxRunner
	inv      repository.InventoryRepository
	movs     repository.InventoryMovementRepository
	modules  repository.ModuleRepository
	now      func() time.Time
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	txRunner TxRunner,
	inv repository.InventoryRepository,
	movs repository.InventoryMovementRepository,
	modules repository.ModuleRepository,
) *InventoryUseCase {
	return &InventoryUseCase{txRunner: txRunner, inv: inv, movs: movs, modules: modules, now: time.Now}
}

// ListInventory existencias del módulo. Solo el admin consulta módulos ajenos.
func (uc *InventoryUseCase) ListInventory(ctx context.Context, actor access.Actor, moduleID string) ([]dto.InventoryItemResponse, error) {
	moduleID, err := uc.scopeModule(ctx, actor, moduleID)
	if err != nil {
		return nil, err
	}
	items, err := uc.inv.ListByModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ToItemResponse(it))
	}
	return out, nil
}

// UpsertItem alta o ajuste manual de un producto. La diferencia de cantidad queda en kardex como AJUSTE.
func (uc *InventoryUseCase) UpsertItem(ctx context.Context, actor access.Actor, moduleID string, in dto.InventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if err := access.Require(actor, access.ManageInventory); err != nil {
		return nil, err
	}
	moduleID, err := uc.scopeModule(ctx, actor, moduleID)
	if err != nil {
		return nil, err
	}
	product := strings.TrimSpace(in.Product)
	if product == "" {
		return nil, domain.Invalid("producto obligatorio")
	}
	if in.Quantity < 0 || in.Quantity > entity.MaxStockQuantity {
		return nil, domain.Invalid("cantidad fuera de rango")
	}
	if in.Price.IsNegative() || in.Price.Round(2).GreaterThan(entity.MaxPrice) {
		return nil, domain.Invalid("precio fuera de rango")
	}
	if !entity.ValidProductType(in.ProductType) {
		return nil, domain.Invalid("tipo de producto %q inválido", in.ProductType)
	}

	now := uc.now()
	item := &entity.ModuleInventory{
		ID:          uuid.New().String(),
		ModuleID:    moduleID,
		Product:     product,
		Key:         strings.TrimSpace(in.Key),
		Price:       in.Price,
		ProductType: in.ProductType,
		Quantity:    in.Quantity,
		UpdatedAt:   now,
	}
	err = uc.txRunner.RunInventory(ctx, func(invRepo repository.InventoryRepository, movRepo repository.InventoryMovementRepository, _ repository.TransferRepository) error {
		prev, err := invRepo.Get(ctx, moduleID, product)
		if err != nil {
			return err
		}
		before := 0
		if prev != nil {
			item.ID = prev.ID
			before = prev.Quantity
		}
		if err := invRepo.Upsert(ctx, item); err != nil {
			return err
		}
		delta := item.Quantity - before
		if delta == 0 {
			return nil
		}
		mv := movementInput{Type: entity.MovementAdjustment, Product: product, ProductType: item.ProductType, ReferenceID: item.ID, EmployeeID: actor.EmployeeID}
		if delta > 0 {
			mv.Quantity, mv.Destination = delta, moduleID
		} else {
			mv.Quantity, mv.Origin = -delta, moduleID
		}
		return registerMovement(ctx, movRepo, mv, now)
	})
	if err != nil {
		return nil, err
	}
	out := ToItemResponse(item)
	return &out, nil
}

// ListMovements consulta del kardex. El encargado solo ve movimientos de su módulo.
func (uc *InventoryUseCase) ListMovements(ctx context.Context, actor access.Actor, f repository.MovementFilter) ([]dto.MovementResponse, error) {
	if err := access.Require(actor, access.ViewKardex); err != nil {
		return nil, err
	}
	if !access.Can(actor.Role, access.AnyModule) {
		f.ModuleID = actor.ModuleID
	}
	if f.Limit <= 0 {
		f.Limit = 50
	}
	list, err := uc.movs.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MovementResponse{
			ID:                  m.ID,
			Product:             m.Product,
			ProductType:         m.ProductType,
			Quantity:            m.Quantity,
			Type:                m.Type,
			OriginModuleID:      m.OriginModuleID,
			DestinationModuleID: m.DestinationModuleID,
			ReferenceID:         m.ReferenceID,
			EmployeeID:          m.EmployeeID,
			CreatedAt:           m.CreatedAt,
		})
	}
	return out, nil
}

// scopeModule resuelve el módulo objetivo con access.Scope y verifica que exista.
func (uc *InventoryUseCase) scopeModule(ctx context.Context, actor access.Actor, moduleID string) (string, error) {
	moduleID, err := access.Scope(actor, moduleID)
	if err != nil {
		return "", err
	}
	m, err := uc.modules.GetByID(ctx, moduleID)
	if err != nil {
		return "", err
	}
	if m == nil {
		return "", domain.NotFound("módulo")
	}
	return moduleID, nil
}

// ToItemResponse mapea la existencia a su DTO.
func ToItemResponse(it *entity.ModuleInventory) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:          it.ID,
		ModuleID:    it.ModuleID,
		Product:     it.Product,
		Key:         it.Key,
		Price:       it.Price,
		ProductType: it.ProductType,
		Quantity:    it.Quantity,
		UpdatedAt:   it.UpdatedAt,
	}
}

func logUpload(moduleID, by string, valid, invalid int) {
	log.Info().Str("modulo", moduleID).Str("por", by).Int("validos", valid).Int("invalidos", invalid).Msg("carga de inventario aplicada")
}
