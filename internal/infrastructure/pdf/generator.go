// Package pdf genera el ticket de venta y la nómina en PDF con Maroto v2.
//
// Layout del ticket (A5):
//
//	┌──────────────────────────────────────────┐
//	│  TICKET DE VENTA        Folio + Fecha    │
//	│  Vendedor / Módulo / Forma de pago       │
//	│  ──────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Total │
//	│  ──────────────────────────────────────  │
//	│  TOTAL                                   │
//	│  QR con el folio + leyenda               │
//	└──────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Nomina-api/internal/application/payroll"
)

var _ payroll.PDFRenderer = (*MarotoGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoGenerator genera tickets y nóminas en PDF. No guarda estado.
type MarotoGenerator struct {
	// Company nombre comercial impreso en los encabezados.
	Company string
}

// NewMarotoGenerator construye el generador.
func NewMarotoGenerator(company string) *MarotoGenerator {
	return &MarotoGenerator{Company: company}
}

func (g *MarotoGenerator) newDocument(title string, size pagesize.Type, orient orientation.Type) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(size).
		WithOrientation(orient).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.Company, true).
		Build()
	return maroto.New(cfg)
}

func render(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney "$" con separador de miles y dos decimales.
// Ej: 1250.5 → "$1,250.50", -30 → "-$30.00"
func formatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	n := len(intPart)
	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return sign + "$" + b.String() + "." + frac
}
