package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/application/sales"
)

// ChipHandler ventas de chips y su validación.
type ChipHandler struct {
	uc *sales.ChipUseCase
}

// NewChipHandler construye el handler.
func NewChipHandler(uc *sales.ChipUseCase) *ChipHandler {
	return &ChipHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar venta de chip
// @Tags         chips
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateChipSaleRequest  true  "Tipo, número y recarga"
// @Success      201   {object}  dto.ChipSaleResponse
// @Router       /api/chips [post]
func (h *ChipHandler) Register(c *fiber.Ctx) error {
	var in dto.CreateChipSaleRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.RegisterChipSale(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPending godoc
// @Summary      Chips pendientes de validar
// @Tags         chips
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ChipSaleResponse
// @Router       /api/chips/pending [get]
func (h *ChipHandler) ListPending(c *fiber.Ctx) error {
	out, err := h.uc.ListPending(c.UserContext(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListRejected godoc
// @Summary      Chips rechazados
// @Tags         chips
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ChipSaleResponse
// @Router       /api/chips/rejected [get]
func (h *ChipHandler) ListRejected(c *fiber.Ctx) error {
	out, err := h.uc.ListRejected(c.UserContext(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Validate godoc
// @Summary      Validar chip
// @Description  Calcula la comisión con la tabla por escalones; commission manual solo aplica a Activacion.
// @Tags         chips
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true   "ID del chip"
// @Param        body  body  dto.ValidateChipRequest  false  "Comisión manual"
// @Success      200   {object}  dto.ChipSaleResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/chips/{id}/validate [post]
func (h *ChipHandler) Validate(c *fiber.Ctx) error {
	var in dto.ValidateChipRequest
	if len(c.Body()) > 0 {
		if err := parseBody(c, &in); err != nil {
			return respondError(c, err)
		}
	}
	out, err := h.uc.ValidateChip(c.UserContext(), GetActor(c), c.Params("id"), in.Commission)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar chip
// @Tags         chips
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del chip"
// @Param        body  body  dto.RejectChipRequest  true  "Motivo"
// @Success      200   {object}  dto.ChipSaleResponse
// @Router       /api/chips/{id}/reject [post]
func (h *ChipHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectChipRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.RejectChip(c.UserContext(), GetActor(c), c.Params("id"), in.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Revert godoc
// @Summary      Revertir rechazo
// @Description  El chip vuelve a pendiente.
// @Tags         chips
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del chip"
// @Success      200  {object}  dto.ChipSaleResponse
// @Router       /api/chips/{id}/revert [post]
func (h *ChipHandler) Revert(c *fiber.Ctx) error {
	out, err := h.uc.RevertRejection(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
