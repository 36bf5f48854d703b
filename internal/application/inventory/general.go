package inventory

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
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// GeneralInventoryUseCase almacén general: existencias sin módulo y su asignación a los módulos.
// Los ajustes quedan en kardex sin módulo; las asignaciones como ASIGNACION con destino.
type GeneralInventoryUseCase struct {
	txRunner TxRunner
	general  repository.GeneralInventoryRepository
	modules  repository.ModuleRepository
	now      func() time.Time
}

// NewGeneralInventoryUseCase construye el caso de uso.
func NewGeneralInventoryUseCase(txRunner TxRunner, general repository.GeneralInventoryRepository, modules repository.ModuleRepository) *GeneralInventoryUseCase {
	return &GeneralInventoryUseCase{txRunner: txRunner, general: general, modules: modules, now: time.Now}
}

func (uc *GeneralInventoryUseCase) ListGeneral(ctx context.Context, actor access.Actor) ([]dto.GeneralItemResponse, error) {
	if err := access.Require(actor, access.ManageGeneralInventory); err != nil {
		return nil, err
	}
	items, err := uc.general.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GeneralItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toGeneralResponse(it))
	}
	return out, nil
}

// ProductNames nombres del almacén para el selector de asignación.
func (uc *GeneralInventoryUseCase) ProductNames(ctx context.Context, actor access.Actor) ([]string, error) {
	if err := access.Require(actor, access.ManageGeneralInventory); err != nil {
		return nil, err
	}
	items, err := uc.general.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Product)
	}
	return names, nil
}

func (uc *GeneralInventoryUseCase) GetGeneral(ctx context.Context, actor access.Actor, product string) (*dto.GeneralItemResponse, error) {
	if err := access.Require(actor, access.ManageGeneralInventory); err != nil {
		return nil, err
	}
	it, err := uc.general.Get(ctx, strings.TrimSpace(product))
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.NotFound("producto")
	}
	out := toGeneralResponse(it)
	return &out, nil
}

// CreateGeneral alta de un producto; la cantidad inicial entra al kardex como AJUSTE.
func (uc *GeneralInventoryUseCase) CreateGeneral(ctx context.Context, actor access.Actor, in dto.InventoryItemRequest) (*dto.GeneralItemResponse, error) {
	if err := access.Require(actor, access.ManageGeneralInventory); err != nil {
		return nil, err
	}
	product := strings.TrimSpace(in.Product)
	if product == "" {
		return nil, domain.Invalid("producto obligatorio")
	}
	if err := checkStockValues(in.Quantity, in.Price, in.ProductType); err != nil {
		return nil, err
	}
	now := uc.now()
	item := &entity.GeneralInventoryItem{
		ID:          uuid.New().String(),
		Product:     product,
		Key:         strings.TrimSpace(in.Key),
		Price:       in.Price.Round(2),
		ProductType: in.ProductType,
		Quantity:    in.Quantity,
		UpdatedAt:   now,
	}
	err := uc.txRunner.RunGeneral(ctx, func(general repository.GeneralInventoryRepository, _ repository.InventoryRepository, movRepo repository.InventoryMovementRepository) error {
		if err := general.Create(ctx, item); err != nil {
			return err
		}
		if item.Quantity == 0 {
			return nil
		}
		return registerMovement(ctx, movRepo, movementInput{
			Type: entity.MovementAdjustment, Product: product, ProductType: item.ProductType,
			Quantity: item.Quantity, ReferenceID: item.ID, EmployeeID: actor.EmployeeID,
		}, now)
	})
	if err != nil {
		return nil, err
	}
	out := toGeneralResponse(item)
	return &out, nil
}

// UpdateGeneral ajuste parcial; la diferencia de cantidad va al kardex sin módulo.
func (uc *GeneralInventoryUseCase) UpdateGeneral(ctx context.Context, actor access.Actor, product string, in dto.GeneralItemUpdate) (*dto.GeneralItemResponse, error) {
	if err := access.Require(actor, access.ManageGeneralInventory); err != nil {
		return nil, err
	}
	product = strings.TrimSpace(product)
	var item *entity.GeneralInventoryItem
	err := uc.txRunner.RunGeneral(ctx, func(general repository.GeneralInventoryRepository, _ repository.InventoryRepository, movRepo repository.InventoryMovementRepository) error {
		prev, err := general.Get(ctx, product)
		if err != nil {
			return err
		}
		if prev == nil {
			return domain.NotFound("producto")
		}
		next := *prev
		if in.Key != nil {
			next.Key = strings.TrimSpace(*in.Key)
		}
		if in.Price != nil {
			next.Price = in.Price.Round(2)
		}
		if in.ProductType != nil {
			next.ProductType = *in.ProductType
		}
		if in.Quantity != nil {
			next.Quantity = *in.Quantity
		}
		if err := checkStockValues(next.Quantity, next.Price, next.ProductType); err != nil {
			return err
		}
		now := uc.now()
		next.UpdatedAt = now
		if err := general.Update(ctx, &next); err != nil {
			return err
		}
		item = &next
		delta := next.Quantity - prev.Quantity
		if delta == 0 {
			return nil
		}
		if delta < 0 {
			delta = -delta
		}
		return registerMovement(ctx, movRepo, movementInput{
			Type: entity.MovementAdjustment, Product: product, ProductType: next.ProductType,
			Quantity: delta, ReferenceID: next.ID, EmployeeID: actor.EmployeeID,
		}, now)
	})
	if err != nil {
		return nil, err
	}
	out := toGeneralResponse(item)
	return &out, nil
}

func (uc *GeneralInventoryUseCase) DeleteGeneral(ctx context.Context, actor access.Actor, product string) error {
	if err := access.Require(actor, access.ManageGeneralInventory); err != nil {
		return err
	}
	ok, err := uc.general.Delete(ctx, strings.TrimSpace(product))
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("producto")
	}
	log.Info().Str("producto", product).Str("por", actor.EmployeeID).Msg("producto eliminado del almacén general")
	return nil
}

// MoveToModule resta del almacén y suma al módulo en una sola transacción.
// Si el módulo no tenía el producto se crea con la clave, precio y tipo del almacén.
func (uc *GeneralInventoryUseCase) MoveToModule(ctx context.Context, actor access.Actor, in dto.MoveToModuleRequest) (*dto.InventoryItemResponse, error) {
	if err := access.Require(actor, access.ManageGeneralInventory); err != nil {
		return nil, err
	}
	product := strings.TrimSpace(in.Product)
	if product == "" {
		return nil, domain.Invalid("producto obligatorio")
	}
	if in.Quantity <= 0 || in.Quantity > entity.MaxStockQuantity {
		return nil, domain.Invalid("cantidad fuera de rango")
	}
	m, err := uc.modules.GetByID(ctx, in.ModuleID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.NotFound("módulo")
	}

	now := uc.now()
	var moved *entity.ModuleInventory
	err = uc.txRunner.RunGeneral(ctx, func(general repository.GeneralInventoryRepository, invRepo repository.InventoryRepository, movRepo repository.InventoryMovementRepository) error {
		src, err := general.Get(ctx, product)
		if err != nil {
			return err
		}
		if src == nil {
			return domain.NotFound("producto")
		}
		ok, err := general.Decrement(ctx, product, in.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s (almacén general tiene %d)", domain.ErrInsufficientStock, product, src.Quantity)
		}
		item := &entity.ModuleInventory{
			ID:          uuid.New().String(),
			ModuleID:    in.ModuleID,
			Product:     product,
			Key:         src.Key,
			Price:       src.Price,
			ProductType: src.ProductType,
			UpdatedAt:   now,
		}
		if err := invRepo.Increment(ctx, item, in.Quantity); err != nil {
			return err
		}
		after, err := invRepo.Get(ctx, in.ModuleID, product)
		if err != nil {
			return err
		}
		if after == nil {
			return domain.NotFound("producto")
		}
		moved = after
		return registerMovement(ctx, movRepo, movementInput{
			Type: entity.MovementAssignment, Product: product, ProductType: src.ProductType,
			Quantity: in.Quantity, Destination: in.ModuleID, ReferenceID: src.ID, EmployeeID: actor.EmployeeID,
		}, now)
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("producto", product).Str("modulo", in.ModuleID).Int("cantidad", in.Quantity).Msg("asignación desde almacén general")
	out := ToItemResponse(moved)
	return &out, nil
}

func checkStockValues(qty int, price decimal.Decimal, productType string) error {
	if qty < 0 || qty > entity.MaxStockQuantity {
		return domain.Invalid("cantidad fuera de rango")
	}
	if price.IsNegative() || price.Round(2).GreaterThan(entity.MaxPrice) {
		return domain.Invalid("precio fuera de rango")
	}
	if !entity.ValidProductType(productType) {
		return domain.Invalid("tipo de producto %q inválido", productType)
	}
	return nil
}

func toGeneralResponse(it *entity.GeneralInventoryItem) dto.GeneralItemResponse {
	return dto.GeneralItemResponse{
		ID:          it.ID,
		Product:     it.Product,
		Key:         it.Key,
		Price:       it.Price,
		ProductType: it.ProductType,
		Quantity:    it.Quantity,
		UpdatedAt:   it.UpdatedAt,
	}
}
