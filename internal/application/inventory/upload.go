package inventory

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/Nomina-api/internal/application/access"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
	"github.com/jhoicas/Nomina-api/pkg/textnorm"
	"github.com/shopspring/decimal"
)

// sinónimos aceptados en la columna de tipo, ya normalizados con textnorm.Fold.
var productTypeAliases = map[string]string{
	"accesorio":  entity.ProductTypeAccessory,
	"accesorios": entity.ProductTypeAccessory,
	"acc":        entity.ProductTypeAccessory,
	"telefono":   entity.ProductTypePhone,
	"telefonos":  entity.ProductTypePhone,
	"celular":    entity.ProductTypePhone,
	"equipo":     entity.ProductTypePhone,
}

// judgeRows valida todos los renglones. Es el único juicio de validación: la vista previa y la
// aplicación lo usan igual, así que ambas clasifican cada renglón de la misma forma.
func judgeRows(rows []UploadRow) []dto.UploadRowResult {
	out := make([]dto.UploadRowResult, 0, len(rows))
	seen := make(map[string]int, len(rows))
	for _, r := range rows {
		res := dto.UploadRowResult{
			Row:     r.Row,
			Key:     strings.TrimSpace(r.Key),
			Product: strings.TrimSpace(r.Description),
			Price:   decimal.Zero,
		}
		if res.Product == "" {
			res.Errors = append(res.Errors, "descripción vacía")
		} else if first, dup := seen[textnorm.Key(res.Product)]; dup {
			res.Errors = append(res.Errors, "producto repetido en el renglón "+strconv.Itoa(first))
		} else {
			seen[textnorm.Key(res.Product)] = r.Row
		}

		qty, err := parseQuantity(r.Quantity)
		if err != "" {
			res.Errors = append(res.Errors, err)
		}
		res.Quantity = qty

		if p := strings.TrimSpace(r.Price); p != "" {
			price, perr := decimal.NewFromString(strings.NewReplacer("$", "", ",", "").Replace(p))
			price = price.Round(2)
			switch {
			case perr != nil:
				res.Errors = append(res.Errors, "precio inválido: "+p)
			case price.IsNegative():
				res.Errors = append(res.Errors, "precio negativo")
			case price.GreaterThan(entity.MaxPrice):
				res.Errors = append(res.Errors, "precio fuera de rango: "+p)
			default:
				res.Price = price
			}
		}

		if t, ok := productTypeAliases[textnorm.Fold(r.ProductType)]; ok {
			res.ProductType = t
		} else if strings.TrimSpace(r.ProductType) == "" {
			res.Errors = append(res.Errors, "tipo de producto vacío")
		} else {
			res.Errors = append(res.Errors, "tipo de producto desconocido: "+r.ProductType)
		}

		res.Valid = len(res.Errors) == 0
		out = append(out, res)
	}
	return out
}

// parseQuantity acepta enteros y números con decimales en cero ("3.0" de Excel).
func parseQuantity(s string) (int, string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, "cantidad vacía"
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, "cantidad inválida: " + s
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, "cantidad no entera: " + s
	}
	if d.IsNegative() {
		return 0, "cantidad negativa"
	}
	if d.GreaterThan(decimal.NewFromInt(entity.MaxStockQuantity)) {
		return 0, "cantidad fuera de rango: " + s
	}
	return int(d.IntPart()), ""
}

func summarize(moduleID string, committed bool, rows []dto.UploadRowResult) *dto.UploadResponse {
	resp := &dto.UploadResponse{ModuleID: moduleID, Committed: committed, Rows: rows}
	for _, r := range rows {
		if r.Valid {
			resp.Valid++
		} else {
			resp.Invalid++
		}
	}
	return resp
}

// PreviewUpload clasifica los renglones sin tocar el inventario.
func (uc *InventoryUseCase) PreviewUpload(ctx context.Context, actor access.Actor, rows []UploadRow) (*dto.UploadResponse, error) {
	if err := access.Require(actor, access.UploadInventory); err != nil {
		return nil, err
	}
	return summarize("", false, judgeRows(rows)), nil
}

// CommitUpload aplica los renglones válidos al módulo en una sola transacción: suma la cantidad
// a la existencia y actualiza clave, precio y tipo. Los inválidos se reportan y se omiten, igual
// que un renglón cuya suma con la existencia actual rebasaría MaxStockQuantity.
func (uc *InventoryUseCase) CommitUpload(ctx context.Context, actor access.Actor, moduleID string, rows []UploadRow) (*dto.UploadResponse, error) {
	if err := access.Require(actor, access.UploadInventory); err != nil {
		return nil, err
	}
	moduleID, err := uc.scopeModule(ctx, actor, moduleID)
	if err != nil {
		return nil, err
	}
	judged := judgeRows(rows)
	now := uc.now()
	err = uc.txRunner.RunInventory(ctx, func(invRepo repository.InventoryRepository, movRepo repository.InventoryMovementRepository, _ repository.TransferRepository) error {
		for i := range judged {
			r := &judged[i]
			if !r.Valid {
				continue
			}
			item := &entity.ModuleInventory{
				ID:          uuid.New().String(),
				ModuleID:    moduleID,
				Product:     r.Product,
				Key:         r.Key,
				Price:       r.Price,
				ProductType: r.ProductType,
				Quantity:    r.Quantity,
				UpdatedAt:   now,
			}
			prev, err := invRepo.Get(ctx, moduleID, r.Product)
			if err != nil {
				return err
			}
			if prev != nil {
				if prev.Quantity > entity.MaxStockQuantity-r.Quantity {
					r.Errors = append(r.Errors, "la existencia resultante excede el máximo ("+strconv.Itoa(prev.Quantity)+" en el módulo)")
					r.Valid = false
					continue
				}
				item.ID = prev.ID
				item.Product = prev.Product
				item.Quantity += prev.Quantity
			}
			if err := invRepo.Upsert(ctx, item); err != nil {
				return err
			}
			if r.Quantity == 0 {
				continue
			}
			if err := registerMovement(ctx, movRepo, movementInput{
				Type:        entity.MovementUpload,
				Product:     item.Product,
				ProductType: item.ProductType,
				Quantity:    r.Quantity,
				Destination: moduleID,
				ReferenceID: item.ID,
				EmployeeID:  actor.EmployeeID,
			}, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := summarize(moduleID, true, judged)
	logUpload(moduleID, actor.Username, resp.Valid, resp.Invalid)
	return resp, nil
}
