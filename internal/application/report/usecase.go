package report

import (
	"github.com/tu-usuario/lunch-orders/internal/application/usecase"
	"github.com/tu-usuario/lunch-orders/internal/domain/repository"
	"github.com/tu-usuario/lunch-orders/pkg/catalog"
)

// ExportUseCase saca del almacén los pedidos filtrados por fecha y los entrega
// a los generadores. La generación en sí no toca el almacén.
type ExportUseCase struct {
	repo      repository.OrderRepository
	workbooks WorkbookGenerator
	daily     DailySheetGenerator
	cat       catalog.Catalog
}

// NewExportUseCase construye el caso de uso de exportación.
func NewExportUseCase(
	repo repository.OrderRepository,
	workbooks WorkbookGenerator,
	daily DailySheetGenerator,
	cat catalog.Catalog,
) *ExportUseCase {
	return &ExportUseCase{repo: repo, workbooks: workbooks, daily: daily, cat: cat}
}

// SummaryExcel workbook resumen (fecha × unidad + hojas por unidad) del rango dado.
func (uc *ExportUseCase) SummaryExcel(start, end string) ([]byte, error) {
	filter, err := usecase.ParseFilter(start, end)
	if err != nil {
		return nil, err
	}
	orders, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	return uc.workbooks.SummaryWorkbook(orders, uc.cat.Directory)
}

// FoodExcel workbook pivote de ítems de comida del rango dado.
func (uc *ExportUseCase) FoodExcel(start, end string) ([]byte, error) {
	filter, err := usecase.ParseFilter(start, end)
	if err != nil {
		return nil, err
	}
	orders, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	return uc.workbooks.FoodPivotWorkbook(orders, uc.cat.Menu)
}

// DailyPDF hoja de entrega en PDF con los pedidos del rango dado.
func (uc *ExportUseCase) DailyPDF(start, end string) ([]byte, error) {
	filter, err := usecase.ParseFilter(start, end)
	if err != nil {
		return nil, err
	}
	orders, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	return uc.daily.DailySheetPDF(orders)
}
