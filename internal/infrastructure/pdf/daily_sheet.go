// Package pdf implementa la hoja de entrega diaria en PDF: la lista de pedidos
// filtrados, tabulada para entregarla al proveedor, con conteo y precio total
// al pie. Maroto v2, página A4.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/lunch-orders/internal/application/report"
	"github.com/tu-usuario/lunch-orders/internal/domain/entity"
)

var _ report.DailySheetGenerator = (*DailySheetGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// DailySheetGenerator implementa report.DailySheetGenerator usando Maroto v2.
type DailySheetGenerator struct {
	unitPrice decimal.Decimal
}

// NewDailySheetGenerator construye el generador con el precio fijo por pedido.
func NewDailySheetGenerator(unitPrice decimal.Decimal) *DailySheetGenerator {
	return &DailySheetGenerator{unitPrice: unitPrice}
}

// DailySheetPDF genera el PDF y devuelve sus bytes.
func (g *DailySheetGenerator) DailySheetPDF(orders []*entity.Order) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lunch Orders", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(len(orders)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range orderRows(orders) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(len(orders)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título y conteo de pedidos.
func headerRow(count int) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Lunch Orders — Daily Sheet", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Orders: %d", count), props.Text{
				Size: 10, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de pedidos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Date", 2, align.Left),
		h("DOC", 2, align.Left),
		h("Member", 3, align.Left),
		h("Vendor", 2, align.Left),
		h("Menu", 3, align.Left),
	)
}

// orderRows: una fila por pedido, en el orden (date, id) que entrega el almacén.
func orderRows(orders []*entity.Order) []core.Row {
	result := make([]core.Row, 0, len(orders))
	for _, o := range orders {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(o.Date.Format("2006-01-02"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(o.Doc, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(o.Member, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(o.Vendor, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(o.Menu, props.Text{Size: 8, Top: 1, Left: 1})),
		))
	}
	return result
}

// totalsRow: conteo total y precio total (conteo × precio unitario).
func (g *DailySheetGenerator) totalsRow(count int) core.Row {
	total := g.unitPrice.Mul(decimal.NewFromInt(int64(count)))
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(
			text.New("Total Orders:", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 2,
			}),
		),
		col.New(3).Add(
			text.New(fmt.Sprintf("%d  (Rs %s)", count, total.String()), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Top: 2,
				Color: colorPrimary,
			}),
		),
	)
}
