package spreadsheet

import (
	"fmt"

	"github.com/jhoicas/Nomina-api/internal/application/payroll"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var _ payroll.SpreadsheetWriter = (*Writer)(nil)

const payrollSheet = "Nómina"

// Writer genera el libro .xlsx de nómina.
type Writer struct{}

// NewWriter construye el generador.
func NewWriter() *Writer { return &Writer{} }

// WritePayroll título en A1, encabezados en el renglón 3, un renglón por empleado y totales al final.
func (w *Writer) WritePayroll(sheet payroll.Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), payrollSheet); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("estilo: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("estilo: %w", err)
	}

	if err := f.SetCellValue(payrollSheet, "A1", sheet.Title); err != nil {
		return nil, err
	}
	_ = f.SetCellStyle(payrollSheet, "A1", "A1", bold)

	headers := make([]any, len(sheet.Headers))
	for i, h := range sheet.Headers {
		headers[i] = h
	}
	if err := f.SetSheetRow(payrollSheet, "A3", &headers); err != nil {
		return nil, fmt.Errorf("encabezados: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(sheet.Headers))
	_ = f.SetCellStyle(payrollSheet, "A3", lastCol+"3", bold)

	totals := make([]decimal.Decimal, len(sheet.Headers)-1)
	row := 4
	for _, l := range sheet.Lines {
		amounts := payroll.LineAmounts(l)
		values := []any{l.Username}
		for i, a := range amounts {
			values = append(values, a.InexactFloat64())
			if i < len(totals) {
				totals[i] = totals[i].Add(a)
			}
		}
		if err := f.SetSheetRow(payrollSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return nil, fmt.Errorf("renglón %d: %w", row, err)
		}
		row++
	}

	values := []any{"Total"}
	for _, t := range totals {
		values = append(values, t.InexactFloat64())
	}
	if err := f.SetSheetRow(payrollSheet, fmt.Sprintf("A%d", row), &values); err != nil {
		return nil, fmt.Errorf("totales: %w", err)
	}
	_ = f.SetCellStyle(payrollSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), bold)
	_ = f.SetCellStyle(payrollSheet, "B4", fmt.Sprintf("%s%d", lastCol, row), money)
	_ = f.SetColWidth(payrollSheet, "A", lastCol, 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("escribir xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
