package pdf

import (
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Nomina-api/internal/application/payroll"
)

// payrollNameCols ancho de la columna de empleado en el grid de 12; cada monto ocupa 1.
const payrollNameCols = 2

// RenderPayroll tabla de nómina en A4 horizontal con renglón de totales.
func (g *MarotoGenerator) RenderPayroll(sheet payroll.Sheet) ([]byte, error) {
	m := g.newDocument(sheet.Title, pagesize.A4, orientation.Horizontal)

	m.AddRows(row.New(12).Add(col.New(12).Add(
		text.New(nonEmpty(g.Company, "Nómina"), props.Text{Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1}),
		text.New(sheet.Title, props.Text{Size: 9, Top: 7, Color: colorGray}),
	)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(payrollHeaderRow(sheet.Headers))

	var totals []decimal.Decimal
	for _, l := range sheet.Lines {
		amounts := payroll.LineAmounts(l)
		if totals == nil {
			totals = make([]decimal.Decimal, len(amounts))
		}
		for i, a := range amounts {
			totals[i] = totals[i].Add(a)
		}
		m.AddRows(payrollRow(l.Username, amounts, false))
	}
	if totals != nil {
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(payrollRow("Total", totals, true))
	}
	return render(m)
}

func payrollHeaderRow(headers []string) core.Row {
	r := row.New(10)
	for i, h := range headers {
		size := 1
		if i == 0 {
			size = payrollNameCols
		}
		r.Add(col.New(size).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: align.Center, Color: colorPrimary, Top: 1,
		})))
	}
	return r
}

func payrollRow(name string, amounts []decimal.Decimal, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	r := row.New(6).Add(col.New(payrollNameCols).Add(text.New(name, props.Text{Size: 8, Style: style, Top: 1})))
	for i, a := range amounts {
		v := formatMoney(a)
		if i == 1 { // horas extra
			v = a.StringFixed(2)
		}
		r.Add(col.New(1).Add(text.New(v, props.Text{Size: 7, Style: style, Align: align.Right, Top: 1, Right: 1})))
	}
	return r
}
