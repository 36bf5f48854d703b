package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/application/payroll"
	"github.com/jhoicas/Nomina-api/internal/application/sales"
	"github.com/jhoicas/Nomina-api/internal/infrastructure/pdf"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTicket(t *testing.T) {
	g := pdf.NewMarotoGenerator("Celulares Centro")
	content, err := g.RenderTicket(sales.Ticket{
		Folio:         "V-20260310-0001",
		CustomerEmail: "cliente@correo.com",
		Seller:        "ana",
		PaymentMethod: "efectivo",
		Items: []sales.TicketItem{{
			Product: "Funda iPhone 13", Quantity: 2,
			UnitPrice: decimal.RequireFromString("150.50"), Total: decimal.RequireFromString("301"),
		}},
		Total:    decimal.RequireFromString("301"),
		IssuedAt: time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")), "debe ser un PDF")
}

func TestRenderPayroll(t *testing.T) {
	g := pdf.NewMarotoGenerator("Celulares Centro")
	content, err := g.RenderPayroll(payroll.Sheet{
		Title:   "Nómina 2026-03-01 a 2026-03-15",
		Headers: payroll.ExportHeaders,
		Lines: []dto.PayrollLine{
			{Username: "ana", BaseSalary: decimal.NewFromInt(1500), TotalPayable: decimal.NewFromInt(1620)},
			{Username: "carlos", BaseSalary: decimal.NewFromInt(1500), TotalPayable: decimal.NewFromInt(1480)},
		},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}

func TestRenderPayroll_EmptySheet(t *testing.T) {
	content, err := pdf.NewMarotoGenerator("").RenderPayroll(payroll.Sheet{Title: "vacía", Headers: payroll.ExportHeaders})
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}
