package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/application/inventory"
)

// GeneralInventoryHandler almacén general y asignación a módulos.
type GeneralInventoryHandler struct {
	uc *inventory.GeneralInventoryUseCase
}

// NewGeneralInventoryHandler construye el handler.
func NewGeneralInventoryHandler(uc *inventory.GeneralInventoryUseCase) *GeneralInventoryHandler {
	return &GeneralInventoryHandler{uc: uc}
}

// List godoc
// @Summary      Existencias del almacén general
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.GeneralItemResponse
// @Router       /api/inventory/general [get]
func (h *GeneralInventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListGeneral(c.UserContext(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Names godoc
// @Summary      Nombres de producto del almacén general
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/inventory/general/names [get]
func (h *GeneralInventoryHandler) Names(c *fiber.Ctx) error {
	out, err := h.uc.ProductNames(c.UserContext(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Producto del almacén general
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product  path  string  true  "Nombre del producto"
// @Success      200  {object}  dto.GeneralItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/general/{product} [get]
func (h *GeneralInventoryHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetGeneral(c.UserContext(), GetActor(c), c.Params("product"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Alta en el almacén general
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InventoryItemRequest  true  "Producto"
// @Success      201  {object}  dto.GeneralItemResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/general [post]
func (h *GeneralInventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.InventoryItemRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.CreateGeneral(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Ajuste de un producto del almacén general
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        product  path  string                 true  "Nombre del producto"
// @Param        body     body  dto.GeneralItemUpdate  true  "Campos a cambiar"
// @Success      200  {object}  dto.GeneralItemResponse
// @Router       /api/inventory/general/{product} [put]
func (h *GeneralInventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.GeneralItemUpdate
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UpdateGeneral(c.UserContext(), GetActor(c), c.Params("product"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Baja de un producto del almacén general
// @Tags         inventory
// @Security     Bearer
// @Param        product  path  string  true  "Nombre del producto"
// @Success      204
// @Router       /api/inventory/general/{product} [delete]
func (h *GeneralInventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteGeneral(c.UserContext(), GetActor(c), c.Params("product")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Move godoc
// @Summary      Asignar piezas del almacén general a un módulo
// @Description  Resta del almacén y suma al módulo en una sola transacción; queda en kardex como ASIGNACION.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MoveToModuleRequest  true  "Producto, módulo y cantidad"
// @Success      200  {object}  dto.InventoryItemResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/general/move [post]
func (h *GeneralInventoryHandler) Move(c *fiber.Ctx) error {
	var in dto.MoveToModuleRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.MoveToModule(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
