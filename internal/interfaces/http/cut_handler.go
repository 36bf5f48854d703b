package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/application/sales"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
)

// CutHandler cortes de caja cerrados.
type CutHandler struct {
	uc *sales.CutUseCase
}

// NewCutHandler construye el handler.
func NewCutHandler(uc *sales.CutUseCase) *CutHandler {
	return &CutHandler{uc: uc}
}

// Close godoc
// @Summary      Cerrar el corte de caja del día
// @Description  Los totales salen de las ventas del módulo; el encargado captura los adicionales. Un corte por módulo y día.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CloseCutRequest  true  "Adicionales"
// @Success      201  {object}  dto.CutResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/cuts [post]
func (h *CutHandler) Close(c *fiber.Ctx) error {
	var in dto.CloseCutRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.CloseCut(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Historial de cortes
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        start      query  string  false  "Inicio AAAA-MM-DD"
// @Param        end        query  string  false  "Fin AAAA-MM-DD"
// @Param        module_id  query  string  false  "Módulo"
// @Success      200  {array}  dto.CutResponse
// @Router       /api/sales/cuts [get]
func (h *CutHandler) List(c *fiber.Ctx) error {
	var q dto.CutQuery
	if err := parseQuery(c, &q); err != nil {
		return respondError(c, err)
	}
	r, err := optionalRange(q.Start, q.End)
	if err != nil {
		return respondError(c, err)
	}
	f := repository.DailyCutFilter{ModuleID: q.ModuleID}
	if r != nil {
		f.From, f.To = r.Start, r.End
	}
	out, err := h.uc.ListCuts(c.UserContext(), GetActor(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
