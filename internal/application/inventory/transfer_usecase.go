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
)

// TransferUseCase flujo de traspasos entre módulos: solicitud (encargado) y resolución (admin).
type TransferUseCase struct {
	txRunner  TxRunner
	transfers repository.TransferRepository
	inv       repository.InventoryRepository
	modules   repository.ModuleRepository
	now       func() time.Time
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	txRunner TxRunner,
	transfers repository.TransferRepository,
	inv repository.InventoryRepository,
	modules repository.ModuleRepository,
) *TransferUseCase {
	return &TransferUseCase{txRunner: txRunner, transfers: transfers, inv: inv, modules: modules, now: time.Now}
}

// CreateTransfer solicita mover cantidad del módulo del encargado a otro módulo.
// Producto, clave, precio y tipo se copian del inventario de origen al momento de la solicitud.
func (uc *TransferUseCase) CreateTransfer(ctx context.Context, actor access.Actor, in dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	if err := access.Require(actor, access.CreateTransfer); err != nil {
		return nil, err
	}
	if err := access.RequireModule(actor); err != nil {
		return nil, err
	}
	product := strings.TrimSpace(in.Product)
	if product == "" || in.Quantity <= 0 {
		return nil, domain.Invalid("producto y cantidad positiva son obligatorios")
	}
	if in.DestinationModuleID == actor.ModuleID {
		return nil, domain.Invalid("el módulo destino debe ser distinto al de origen")
	}
	dest, err := uc.modules.GetByID(ctx, in.DestinationModuleID)
	if err != nil {
		return nil, err
	}
	if dest == nil {
		return nil, domain.NotFound("módulo destino")
	}
	src, err := uc.inv.Get(ctx, actor.ModuleID, product)
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, domain.NotFound(fmt.Sprintf("producto %q en el inventario del módulo", product))
	}
	if src.Quantity < in.Quantity {
		return nil, fmt.Errorf("%w: %s (disponible %d, solicitado %d)", domain.ErrInsufficientStock, src.Product, src.Quantity, in.Quantity)
	}

	t := &entity.Transfer{
		ID:                  uuid.New().String(),
		Product:             src.Product,
		Key:                 src.Key,
		Price:               src.Price,
		ProductType:         src.ProductType,
		Quantity:            in.Quantity,
		OriginModuleID:      actor.ModuleID,
		DestinationModuleID: dest.ID,
		Status:              entity.TransferPending,
		RequestedBy:         actor.EmployeeID,
		Visible:             true,
		CreatedAt:           uc.now(),
	}
	if err := uc.transfers.Create(ctx, t); err != nil {
		return nil, err
	}
	out := ToTransferResponse(t)
	return &out, nil
}

// ResolveTransfer aprueba o rechaza un traspaso pendiente. Al aprobar, el folio es obligatorio
// y la existencia de origen se vuelve a verificar con un decremento condicional; si ya no alcanza,
// falla con ErrInsufficientStock y nada cambia. Al rechazar no se toca el inventario.
func (uc *TransferUseCase) ResolveTransfer(ctx context.Context, actor access.Actor, transferID string, in dto.ResolveTransferRequest) (*dto.TransferResponse, error) {
	if err := access.Require(actor, access.ResolveTransfer); err != nil {
		return nil, err
	}
	approve := in.Decision == entity.TransferApproved
	if !approve && in.Decision != entity.TransferRejected {
		return nil, domain.Invalid("decisión %q inválida", in.Decision)
	}
	folio := strings.TrimSpace(in.Folio)
	if approve && folio == "" {
		return nil, domain.Invalid("el folio es obligatorio para aprobar")
	}
	t, err := uc.transfers.GetByID(ctx, transferID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NotFound("traspaso")
	}
	if t.Status != entity.TransferPending {
		return nil, fmt.Errorf("%w: el traspaso ya fue %s", domain.ErrInvalidState, t.Status)
	}

	now := uc.now()
	by := actor.EmployeeID
	resolved := *t
	resolved.Status = in.Decision
	resolved.ApprovedBy = &by
	resolved.Folio = folio
	resolved.ResolvedAt = &now

	err = uc.txRunner.RunInventory(ctx, func(invRepo repository.InventoryRepository, movRepo repository.InventoryMovementRepository, transferRepo repository.TransferRepository) error {
		ok, err := transferRepo.Resolve(ctx, &resolved)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: el traspaso ya no está pendiente", domain.ErrInvalidState)
		}
		if !approve {
			return nil
		}
		ok, err = invRepo.Decrement(ctx, t.OriginModuleID, t.Product, t.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: el origen ya no tiene %d de %s", domain.ErrInsufficientStock, t.Quantity, t.Product)
		}
		if err := invRepo.Increment(ctx, &entity.ModuleInventory{
			ID:          uuid.New().String(),
			ModuleID:    t.DestinationModuleID,
			Product:     t.Product,
			Key:         t.Key,
			Price:       t.Price,
			ProductType: t.ProductType,
			UpdatedAt:   now,
		}, t.Quantity); err != nil {
			return err
		}
		return registerMovement(ctx, movRepo, movementInput{
			Type:        entity.MovementTransfer,
			Product:     t.Product,
			ProductType: t.ProductType,
			Quantity:    t.Quantity,
			Origin:      t.OriginModuleID,
			Destination: t.DestinationModuleID,
			ReferenceID: t.ID,
			EmployeeID:  actor.EmployeeID,
		}, now)
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("traspaso", t.ID).Str("estado", resolved.Status).Str("folio", folio).Msg("traspaso resuelto")
	out := ToTransferResponse(&resolved)
	return &out, nil
}

// ListTransfers admin: todos (solo visibles salvo q.All); encargado: los de su módulo.
func (uc *TransferUseCase) ListTransfers(ctx context.Context, actor access.Actor, q dto.TransferQuery) ([]dto.TransferResponse, error) {
	if err := access.Require(actor, access.ViewTransfers); err != nil {
		return nil, err
	}
	f := repository.TransferFilter{Status: q.Status, VisibleOnly: !q.All}
	if !access.Can(actor.Role, access.AnyModule) {
		if err := access.RequireModule(actor); err != nil {
			return nil, err
		}
		f.ModuleID = actor.ModuleID
	}
	list, err := uc.transfers.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		out = append(out, ToTransferResponse(t))
	}
	return out, nil
}

// HideTransfer retira el traspaso del tablero sin cambiar su estado.
func (uc *TransferUseCase) HideTransfer(ctx context.Context, actor access.Actor, transferID string) error {
	if err := access.Require(actor, access.ResolveTransfer); err != nil {
		return err
	}
	t, err := uc.transfers.GetByID(ctx, transferID)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.NotFound("traspaso")
	}
	return uc.transfers.Hide(ctx, t.ID)
}

// ToTransferResponse mapea el traspaso a su DTO.
func ToTransferResponse(t *entity.Transfer) dto.TransferResponse {
	return dto.TransferResponse{
		ID:                  t.ID,
		Product:             t.Product,
		Key:                 t.Key,
		Price:               t.Price,
		ProductType:         t.ProductType,
		Quantity:            t.Quantity,
		OriginModuleID:      t.OriginModuleID,
		DestinationModuleID: t.DestinationModuleID,
		Status:              t.Status,
		RequestedBy:         t.RequestedBy,
		ApprovedBy:          t.ApprovedBy,
		Folio:               t.Folio,
		CreatedAt:           t.CreatedAt,
		ResolvedAt:          t.ResolvedAt,
	}
}
