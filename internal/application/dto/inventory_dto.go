package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItemRequest alta o ajuste de un producto en el inventario del módulo.
type InventoryItemRequest struct {
	Product     string          `json:"product" validate:"required,max=200"`
	Key         string          `json:"key" validate:"omitempty,max=60"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
	ProductType string          `json:"product_type" validate:"required,oneof=accesorio telefono"`
	Quantity    int             `json:"quantity" validate:"min=0"`
}

// InventoryItemResponse existencia de un producto en un módulo.
type InventoryItemResponse struct {
	ID          string          `json:"id"`
	ModuleID    string          `json:"module_id"`
	Product     string          `json:"product"`
	Key         string          `json:"key"`
	Price       decimal.Decimal `json:"price"`
	ProductType string          `json:"product_type"`
	Quantity    int             `json:"quantity"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// UploadRowResult juicio de validación de un renglón de la carga masiva.
type UploadRowResult struct {
	Row         int             `json:"row"`
	Key         string          `json:"key"`
	Product     string          `json:"product"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	ProductType string          `json:"product_type"`
	Valid       bool            `json:"valid"`
	Errors      []string        `json:"errors,omitempty"`
}

// UploadResponse resultado de vista previa o aplicación de la carga.
type UploadResponse struct {
	ModuleID  string            `json:"module_id,omitempty"`
	Committed bool              `json:"committed"`
	Valid     int               `json:"valid"`
	Invalid   int               `json:"invalid"`
	Rows      []UploadRowResult `json:"rows"`
}

// MovementQuery filtros del kardex.
type MovementQuery struct {
	PageRequest
	DateRangeQuery
	Product  string `query:"product"`
	ModuleID string `query:"module_id" validate:"omitempty,uuid"`
}

// MovementResponse renglón del kardex.
type MovementResponse struct {
	ID                  string    `json:"id"`
	Product             string    `json:"product"`
	ProductType         string    `json:"product_type"`
	Quantity            int       `json:"quantity"`
	Type                string    `json:"type"`
	OriginModuleID      *string   `json:"origin_module_id,omitempty"`
	DestinationModuleID *string   `json:"destination_module_id,omitempty"`
	ReferenceID         string    `json:"reference_id"`
	EmployeeID          string    `json:"employee_id"`
	CreatedAt           time.Time `json:"created_at"`
}

// CreateTransferRequest solicitud de traspaso hacia otro módulo.
type CreateTransferRequest struct {
	Product             string `json:"product" validate:"required"`
	Quantity            int    `json:"quantity" validate:"required,min=1"`
	DestinationModuleID string `json:"destination_module_id" validate:"required,uuid"`
}

// ResolveTransferRequest aprobación o rechazo de un traspaso.
type ResolveTransferRequest struct {
	Decision string `json:"decision" validate:"required,oneof=aprobado rechazado"`
	Folio    string `json:"folio" validate:"omitempty,max=60"`
}

// TransferQuery filtros de traspasos.
type TransferQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=pendiente aprobado rechazado"`
	All    bool   `query:"all"` // incluir ocultos
}

// TransferResponse salida de un traspaso.
type TransferResponse struct {
	ID                  string          `json:"id"`
	Product             string          `json:"product"`
	Key                 string          `json:"key"`
	Price               decimal.Decimal `json:"price"`
	ProductType         string          `json:"product_type"`
	Quantity            int             `json:"quantity"`
	OriginModuleID      string          `json:"origin_module_id"`
	DestinationModuleID string          `json:"destination_module_id"`
	Status              string          `json:"status"`
	RequestedBy         string          `json:"requested_by"`
	ApprovedBy          *string         `json:"approved_by,omitempty"`
	Folio               string          `json:"folio,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	ResolvedAt          *time.Time      `json:"resolved_at,omitempty"`
}

// GeneralItemUpdate ajuste de un producto del almacén general. Campos nil no cambian.
type GeneralItemUpdate struct {
	Key         *string          `json:"key" validate:"omitempty,max=60"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
	ProductType *string          `json:"product_type" validate:"omitempty,oneof=accesorio telefono"`
	Quantity    *int             `json:"quantity" validate:"omitempty,min=0"`
}

// GeneralItemResponse existencia del almacén general.
type GeneralItemResponse struct {
	ID          string          `json:"id"`
	Product     string          `json:"product"`
	Key         string          `json:"key"`
	Price       decimal.Decimal `json:"price"`
	ProductType string          `json:"product_type"`
	Quantity    int             `json:"quantity"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// MoveToModuleRequest asignación de piezas del almacén general a un módulo.
type MoveToModuleRequest struct {
	Product  string `json:"product" validate:"required"`
	ModuleID string `json:"module_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}
