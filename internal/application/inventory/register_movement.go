package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
)

// movementInput datos de un renglón de kardex. Origin/Destination vacíos = sin módulo en ese sentido.
type movementInput struct {
	Type        string
	Product     string
	ProductType string
	Quantity    int
	Origin      string
	Destination string
	ReferenceID string
	EmployeeID  string
}

// registerMovement guarda el renglón de kardex con el repositorio de la transacción en curso.
func registerMovement(ctx context.Context, movRepo repository.InventoryMovementRepository, in movementInput, now time.Time) error {
	m := &entity.InventoryMovement{
		ID:          uuid.New().String(),
		Product:     in.Product,
		ProductType: in.ProductType,
		Quantity:    in.Quantity,
		Type:        in.Type,
		ReferenceID: in.ReferenceID,
		EmployeeID:  in.EmployeeID,
		CreatedAt:   now,
	}
	if in.Origin != "" {
		o := in.Origin
		m.OriginModuleID = &o
	}
	if in.Destination != "" {
		d := in.Destination
		m.DestinationModuleID = &d
	}
	return movRepo.Create(ctx, m)
}
