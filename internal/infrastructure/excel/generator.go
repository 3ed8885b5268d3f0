// Package excel implementa los reportes xlsx de pedidos usando excelize.
//
// Las dos rutinas son transformaciones puras sobre el set de pedidos ya
// filtrado por el caller:
//
//   - SummaryWorkbook: hoja "Summary" con conteos por fecha × unidad y dos
//     filas de totales, más una hoja por unidad con conteos por miembro.
//   - FoodPivotWorkbook: hoja "Food Orders" (pivote unidad × ítem de menú,
//     con totales por fila y columna) y hoja "Total" por ítem.
package excel

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/lunch-orders/internal/application/report"
	"github.com/tu-usuario/lunch-orders/internal/domain/entity"
	"github.com/tu-usuario/lunch-orders/pkg/catalog"
)

var _ report.WorkbookGenerator = (*Generator)(nil)

// dateFormat formato de las etiquetas de fecha en la hoja Summary ("March 05").
const dateFormat = "January 02"

// maxSheetName límite de longitud de nombre de hoja del formato xlsx.
const maxSheetName = 31

// legacyAdminDoc unidad heredada que se muestra como "Admin" en el pivote.
const legacyAdminDoc = "IT/Admin/Managers"

// Generator implementa report.WorkbookGenerator con excelize.
type Generator struct {
	unitPrice decimal.Decimal
}

// NewGenerator construye el generador con el precio fijo por pedido.
func NewGenerator(unitPrice decimal.Decimal) *Generator {
	return &Generator{unitPrice: unitPrice}
}

// SummaryWorkbook arma el workbook resumen. Con entrada vacía devuelve solo la
// hoja "Summary" vacía (salida temprana, sin hojas por unidad).
func (g *Generator) SummaryWorkbook(orders []*entity.Order, dir catalog.Directory) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return nil, fmt.Errorf("rename summary sheet: %w", err)
	}
	if len(orders) == 0 {
		return writeBuffer(f)
	}

	// Conteos por etiqueta de fecha × unidad. La etiqueta colapsa el año, igual
	// que el reporte original; el orden de filas sale de (mes, día).
	type monthDay struct {
		month time.Month
		day   int
	}
	counts := make(map[string]map[string]int)
	labelDate := make(map[string]monthDay)
	unitSet := make(map[string]bool)
	for _, o := range orders {
		label := o.Date.Format(dateFormat)
		if counts[label] == nil {
			counts[label] = make(map[string]int)
			labelDate[label] = monthDay{o.Date.Month(), o.Date.Day()}
		}
		counts[label][o.Doc]++
		unitSet[o.Doc] = true
	}

	units := sortedKeys(unitSet)
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		a, b := labelDate[labels[i]], labelDate[labels[j]]
		if a.month != b.month {
			return a.month < b.month
		}
		return a.day < b.day
	})

	w := &sheetWriter{f: f, sheet: "Summary"}
	header := []interface{}{"formatted_date"}
	for _, u := range units {
		header = append(header, u)
	}
	w.appendRow(header)

	colTotals := make(map[string]int)
	for _, label := range labels {
		row := []interface{}{label}
		for _, u := range units {
			c := counts[label][u]
			colTotals[u] += c
			row = append(row, c)
		}
		w.appendRow(row)
	}

	totalRow := []interface{}{"Total Orders"}
	priceRow := []interface{}{"Total Price (Rs)"}
	for _, u := range units {
		totalRow = append(totalRow, colTotals[u])
		priceRow = append(priceRow, g.priceFor(colTotals[u]))
	}
	w.appendRow(totalRow)
	w.appendRow(priceRow)
	if w.err != nil {
		return nil, fmt.Errorf("write summary sheet: %w", w.err)
	}

	// Hojas por unidad, en el orden del directorio. Unidades sin pedidos
	// conservan la hoja con solo el encabezado.
	for _, unit := range dir.Units {
		if err := g.writeUnitSheet(f, unit.Name, orders); err != nil {
			return nil, err
		}
	}

	return writeBuffer(f)
}

// writeUnitSheet hoja de una unidad: conteo de pedidos por miembro.
func (g *Generator) writeUnitSheet(f *excelize.File, unitName string, orders []*entity.Order) error {
	title := truncateSheetName(unitName)
	if _, err := f.NewSheet(title); err != nil {
		return fmt.Errorf("new sheet %q: %w", title, err)
	}

	w := &sheetWriter{f: f, sheet: title}
	w.appendRow([]interface{}{"Member", "Order Count", "Total Price (Rs)"})

	memberCounts := make(map[string]int)
	for _, o := range orders {
		if o.Doc == unitName {
			memberCounts[o.Member]++
		}
	}
	for _, member := range sortedKeys(memberCounts) {
		c := memberCounts[member]
		w.appendRow([]interface{}{member, c, g.priceFor(c)})
	}
	if w.err != nil {
		return fmt.Errorf("write sheet %q: %w", title, w.err)
	}
	return nil
}

// FoodPivotWorkbook arma el pivote unidad × ítem de menú. Con entrada vacía
// devuelve solo la hoja "Food Orders" vacía.
func (g *Generator) FoodPivotWorkbook(orders []*entity.Order, menu catalog.MenuCatalog) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", "Food Orders"); err != nil {
		return nil, fmt.Errorf("rename pivot sheet: %w", err)
	}
	if len(orders) == 0 {
		return writeBuffer(f)
	}

	// Columnas: unión ordenada del catálogo canónico y los ítems observados
	// (ítems fuera de catálogo aparecen como columnas extra).
	itemSet := make(map[string]bool)
	for _, it := range menu.AllItems() {
		itemSet[it] = true
	}
	for _, o := range orders {
		itemSet[o.Menu] = true
	}
	items := sortedKeys(itemSet)

	// Conteos por etiqueta de unidad (con el mapeo heredado) × ítem.
	counts := make(map[string]map[string]int)
	for _, o := range orders {
		label := docLabel(o.Doc)
		if counts[label] == nil {
			counts[label] = make(map[string]int)
		}
		counts[label][o.Menu]++
	}
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	w := &sheetWriter{f: f, sheet: "Food Orders"}
	header := []interface{}{"DOC"}
	for _, it := range items {
		header = append(header, it)
	}
	header = append(header, "Total per DOC")
	w.appendRow(header)

	itemTotals := make(map[string]int)
	grandTotal := 0
	for _, label := range labels {
		row := []interface{}{label}
		rowTotal := 0
		for _, it := range items {
			c := counts[label][it]
			itemTotals[it] += c
			rowTotal += c
			row = append(row, c)
		}
		grandTotal += rowTotal
		row = append(row, rowTotal)
		w.appendRow(row)
	}

	// La fila Grand Total suma cada columna, incluida "Total per DOC": la
	// última celda es el total general de pedidos.
	grandRow := []interface{}{"Grand Total"}
	for _, it := range items {
		grandRow = append(grandRow, itemTotals[it])
	}
	grandRow = append(grandRow, grandTotal)
	w.appendRow(grandRow)
	if w.err != nil {
		return nil, fmt.Errorf("write pivot sheet: %w", w.err)
	}

	// Hoja Total: un renglón por ítem en el mismo orden, más el total general.
	if _, err := f.NewSheet("Total"); err != nil {
		return nil, fmt.Errorf("new sheet Total: %w", err)
	}
	wt := &sheetWriter{f: f, sheet: "Total"}
	wt.appendRow([]interface{}{"Menu Item", "Total Orders"})
	for _, it := range items {
		wt.appendRow([]interface{}{it, itemTotals[it]})
	}
	wt.appendRow([]interface{}{"Grand Total", grandTotal})
	if wt.err != nil {
		return nil, fmt.Errorf("write sheet Total: %w", wt.err)
	}

	return writeBuffer(f)
}

// priceFor count × precio unitario; celda entera cuando el resultado lo es.
func (g *Generator) priceFor(count int) interface{} {
	total := g.unitPrice.Mul(decimal.NewFromInt(int64(count)))
	if total.IsInteger() {
		return total.IntPart()
	}
	v, _ := total.Float64()
	return v
}

// docLabel normalización de nombre de unidad solo para despliegue:
// la unidad heredada "IT/Admin/Managers" se muestra como "Admin".
func docLabel(doc string) string {
	if doc == legacyAdminDoc {
		return "Admin"
	}
	return doc
}

// truncateSheetName recorta al máximo del formato (31). Nombres truncados
// duplicados quedan sin resolver; excelize lo reporta y el error se propaga.
func truncateSheetName(name string) string {
	r := []rune(name)
	if len(r) > maxSheetName {
		return string(r[:maxSheetName])
	}
	return name
}

// sheetWriter escribe filas consecutivas en una hoja recordando el primer error.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
	err   error
}

func (w *sheetWriter) appendRow(values []interface{}) {
	if w.err != nil {
		return
	}
	w.row++
	w.err = w.f.SetSheetRow(w.sheet, fmt.Sprintf("A%d", w.row), &values)
}

func writeBuffer(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
