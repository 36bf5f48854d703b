package pdf

import (
	"strconv"

	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/Nomina-api/internal/application/sales"
)

// RenderTicket genera el ticket de la venta que se adjunta al correo del cliente.
func (g *MarotoGenerator) RenderTicket(t sales.Ticket) ([]byte, error) {
	m := g.newDocument("Ticket "+t.Folio, pagesize.A5, orientation.Vertical)

	m.AddRows(ticketHeaderRow(g.Company, t))
	m.AddRows(ticketInfoRow(t))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(ticketTableHeader())
	m.AddRows(ticketItemRows(t.Items)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(ticketTotalRow(t))
	m.AddRows(line.NewRow(3))
	m.AddRows(ticketFooterRow(t))

	return render(m)
}

func ticketHeaderRow(company string, t sales.Ticket) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(nonEmpty(company, "Ticket de venta"), props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("TICKET DE VENTA", props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(t.Folio, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1}),
			text.New(t.IssuedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

func ticketInfoRow(t sales.Ticket) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Vendedor: "+nonEmpty(t.Seller, "-")+"   |   Forma de pago: "+nonEmpty(t.PaymentMethod, "-"),
			props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}

func ticketTableHeader() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Importe", 3, align.Right),
	)
}

func ticketItemRows(items []sales.TicketItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(strconv.Itoa(it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(text.New(it.Product, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatMoney(it.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(formatMoney(it.Total), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func ticketTotalRow(t sales.Ticket) core.Row {
	return row.New(10).Add(
		col.New(7),
		col.New(2).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New(formatMoney(t.Total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// ticketFooterRow QR con el folio para localizar la venta en caja.
func ticketFooterRow(t sales.Ticket) core.Row {
	return row.New(30).Add(
		col.New(4).Add(code.NewQr(t.Folio, props.Rect{Percent: 90, Center: true})),
		col.New(8).Add(
			text.New("Presente este ticket para cambios o garantías.", props.Text{
				Size: 8, Top: 6, Left: 3, Color: colorGray,
			}),
			text.New("Gracias por su compra", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 16, Left: 3, Color: colorPrimary,
			}),
		),
	)
}
