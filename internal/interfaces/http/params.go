package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/application/payroll"
	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
)

// optionalRange nil si no se envió ningún extremo; ambos o ninguno.
func optionalRange(start, end string) (*entity.DateRange, error) {
	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, domain.Invalid("el rango requiere start y end")
	}
	r, err := payroll.ParseRange(start, end)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func requiredRange(c *fiber.Ctx) (entity.DateRange, error) {
	var q dto.DateRangeQuery
	if err := parseQuery(c, &q); err != nil {
		return entity.DateRange{}, err
	}
	if q.Start == "" || q.End == "" {
		return entity.DateRange{}, domain.Invalid("start y end son obligatorios")
	}
	return payroll.ParseRange(q.Start, q.End)
}
