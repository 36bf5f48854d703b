package http

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/application/inventory"
	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
)

// UploadReader convierte el archivo subido en renglones de carga.
type UploadReader func(io.Reader) ([]inventory.UploadRow, error)

// InventoryHandler inventario por módulo, carga masiva y kardex.
type InventoryHandler struct {
	uc     *inventory.InventoryUseCase
	reader UploadReader
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.InventoryUseCase, reader UploadReader) *InventoryHandler {
	return &InventoryHandler{uc: uc, reader: reader}
}

// List godoc
// @Summary      Inventario de un módulo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        moduleId  path  string  true  "ID del módulo"
// @Success      200  {array}  dto.InventoryItemResponse
// @Router       /api/inventory/modules/{moduleId} [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListInventory(c.UserContext(), GetActor(c), c.Params("moduleId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Upsert godoc
// @Summary      Alta o ajuste de un producto en el módulo
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        moduleId  path  string                    true  "ID del módulo"
// @Param        body      body  dto.InventoryItemRequest  true  "Producto"
// @Success      200  {object}  dto.InventoryItemResponse
// @Router       /api/inventory/modules/{moduleId} [put]
func (h *InventoryHandler) Upsert(c *fiber.Ctx) error {
	var in dto.InventoryItemRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UpsertItem(c.UserContext(), GetActor(c), c.Params("moduleId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PreviewUpload godoc
// @Summary      Vista previa de carga masiva
// @Description  Valida cada renglón del xlsx sin tocar el inventario.
// @Tags         inventory
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Hoja de cálculo (.xlsx)"
// @Success      200  {object}  dto.UploadResponse
// @Router       /api/inventory/upload/preview [post]
func (h *InventoryHandler) PreviewUpload(c *fiber.Ctx) error {
	rows, err := h.readUpload(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.PreviewUpload(c.UserContext(), GetActor(c), rows)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CommitUpload godoc
// @Summary      Aplicar carga masiva
// @Description  Suma las cantidades válidas al módulo indicado; los renglones inválidos se reportan y se omiten.
// @Tags         inventory
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file       formData  file    true  "Hoja de cálculo (.xlsx)"
// @Param        module_id  formData  string  true  "Módulo destino"
// @Success      200  {object}  dto.UploadResponse
// @Router       /api/inventory/upload/commit [post]
func (h *InventoryHandler) CommitUpload(c *fiber.Ctx) error {
	rows, err := h.readUpload(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.CommitUpload(c.UserContext(), GetActor(c), c.FormValue("module_id"), rows)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *InventoryHandler) readUpload(c *fiber.Ctx) ([]inventory.UploadRow, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, domain.Invalid("archivo obligatorio en el campo file")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, domain.Invalid("no se pudo abrir el archivo: %v", err)
	}
	defer f.Close()
	return h.reader(f)
}

// Movements godoc
// @Summary      Kardex de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product    query  string  false  "Producto"
// @Param        module_id  query  string  false  "Módulo (origen o destino)"
// @Param        start      query  string  false  "Inicio AAAA-MM-DD"
// @Param        end        query  string  false  "Fin AAAA-MM-DD"
// @Param        limit      query  int     false  "Límite"  default(50)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	var q dto.MovementQuery
	if err := parseQuery(c, &q); err != nil {
		return respondError(c, err)
	}
	r, err := optionalRange(q.Start, q.End)
	if err != nil {
		return respondError(c, err)
	}
	q.DefaultPage()
	f := repository.MovementFilter{Product: q.Product, ModuleID: q.ModuleID, Limit: q.Limit, Offset: q.Offset}
	if r != nil {
		f.From, f.To = &r.Start, &r.End
	}
	out, err := h.uc.ListMovements(c.UserContext(), GetActor(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
