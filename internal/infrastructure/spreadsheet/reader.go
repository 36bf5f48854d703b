// Package spreadsheet lee la hoja de carga masiva de inventario y genera el libro de nómina con excelize.
package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/Nomina-api/internal/application/inventory"
	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/pkg/textnorm"
	"github.com/xuri/excelize/v2"
)

type column int

const (
	colKey column = iota
	colDescription
	colQuantity
	colPrice
	colProductType
)

// headerSynonyms encabezados aceptados, ya normalizados con textnorm.Fold.
var headerSynonyms = map[string]column{
	"clave":        colKey,
	"key":          colKey,
	"codigo":       colKey,
	"sku":          colKey,
	"descripcion":  colDescription,
	"producto":     colDescription,
	"description":  colDescription,
	"nombre":       colDescription,
	"cantidad":     colQuantity,
	"qty":          colQuantity,
	"existencia":   colQuantity,
	"piezas":       colQuantity,
	"precio":       colPrice,
	"price":        colPrice,
	"tipo":         colProductType,
	"tipoproducto": colProductType,
	"type":         colProductType,
}

// maxHeaderScan renglones revisados buscando el encabezado (hay hojas con título arriba).
const maxHeaderScan = 10

// ReadInventory lee la primera hoja del libro y devuelve los renglones crudos como texto.
// Row es el número de renglón en la hoja (base 1) para que los errores apunten a la celda real.
func ReadInventory(r io.Reader) ([]inventory.UploadRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, domain.Invalid("el archivo no es un libro de Excel válido")
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.Invalid("el libro no tiene hojas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheets[0], err)
	}

	headerIdx, cols := findHeader(rows)
	if headerIdx < 0 {
		return nil, domain.Invalid("no se encontró el encabezado (se requiere al menos la columna descripción)")
	}

	var out []inventory.UploadRow
	for i := headerIdx + 1; i < len(rows); i++ {
		raw := rows[i]
		if blank(raw) {
			continue
		}
		out = append(out, inventory.UploadRow{
			Row:         i + 1,
			Key:         cell(raw, cols, colKey),
			Description: cell(raw, cols, colDescription),
			Quantity:    cell(raw, cols, colQuantity),
			Price:       cell(raw, cols, colPrice),
			ProductType: cell(raw, cols, colProductType),
		})
	}
	return out, nil
}

// findHeader primer renglón que contiene la columna descripción; devuelve su índice y el mapa columna -> posición.
func findHeader(rows [][]string) (int, map[column]int) {
	for i := 0; i < len(rows) && i < maxHeaderScan; i++ {
		cols := make(map[column]int)
		for j, h := range rows[i] {
			c, ok := headerSynonyms[textnorm.Fold(h)]
			if !ok {
				continue
			}
			if _, seen := cols[c]; !seen {
				cols[c] = j
			}
		}
		if _, ok := cols[colDescription]; ok {
			return i, cols
		}
	}
	return -1, nil
}

func cell(raw []string, cols map[column]int, c column) string {
	j, ok := cols[c]
	if !ok || j >= len(raw) {
		return ""
	}
	return strings.TrimSpace(raw[j])
}

func blank(raw []string) bool {
	for _, v := range raw {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
