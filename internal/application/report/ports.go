package report

import (
	"github.com/tu-usuario/lunch-orders/internal/domain/entity"
	"github.com/tu-usuario/lunch-orders/pkg/catalog"
)

// WorkbookGenerator puerto de generación de workbooks xlsx. Las implementaciones
// son transformaciones puras (pedidos + catálogo → bytes), sin I/O propio; todo
// fallo es un error de serialización propagado sin cambios.
type WorkbookGenerator interface {
	// SummaryWorkbook hoja "Summary" (conteos por fecha × unidad con filas de
	// totales) más una hoja por unidad del directorio con conteos por miembro.
	SummaryWorkbook(orders []*entity.Order, dir catalog.Directory) ([]byte, error)
	// FoodPivotWorkbook hoja "Food Orders" (pivote unidad × ítem de menú) y
	// hoja "Total" con los totales por ítem.
	FoodPivotWorkbook(orders []*entity.Order, menu catalog.MenuCatalog) ([]byte, error)
}

// DailySheetGenerator puerto del PDF de entrega diaria para el proveedor.
// El precio unitario lo lleva cada implementación desde la configuración.
type DailySheetGenerator interface {
	DailySheetPDF(orders []*entity.Order) ([]byte, error)
}
