package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un traspaso. pendiente -> {aprobado, rechazado} es la única transición.
const (
	TransferPending  = "pendiente"
	TransferApproved = "aprobado"
	TransferRejected = "rechazado"
)

// Transfer solicitud de traspaso de inventario entre módulos.
// Producto, clave, precio y tipo se copian al momento de la solicitud.
type Transfer struct {
	ID                  string
	Product             string
	Key                 string
	Price               decimal.Decimal
	ProductType         string
	Quantity            int
	OriginModuleID      string
	DestinationModuleID string
	Status              string
	RequestedBy         string
	ApprovedBy          *string
	Folio               string
	Visible             bool
	CreatedAt           time.Time
	ResolvedAt          *time.Time
}
