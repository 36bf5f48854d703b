package entity

import "time"

// Tipos de movimiento del kardex.
const (
	MovementSale         = "VENTA"
	MovementCancellation = "CANCELACION"
	MovementTransfer     = "TRASPASO"
	MovementUpload       = "CARGA"
	MovementAdjustment   = "AJUSTE"
	// MovementAssignment salida del almacén general hacia un módulo.
	MovementAssignment = "ASIGNACION"
)

// InventoryMovement registro del kardex. Cantidad siempre positiva; el sentido lo dan origen/destino.
// En ASIGNACION y en los ajustes del almacén general el lado sin módulo es el almacén.
type InventoryMovement struct {
	ID                  string
	Product             string
	ProductType         string
	Quantity            int
	Type                string
	OriginModuleID      *string
	DestinationModuleID *string
	ReferenceID         string
	EmployeeID          string
	CreatedAt           time.Time
}
