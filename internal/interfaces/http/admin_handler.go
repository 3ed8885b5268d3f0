package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/lunch-orders/internal/application/dto"
	"github.com/tu-usuario/lunch-orders/internal/application/report"
	"github.com/tu-usuario/lunch-orders/internal/application/usecase"
	"github.com/tu-usuario/lunch-orders/internal/domain"
)

// MIME type fijo de los exports xlsx.
const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AdminHandler operaciones protegidas: borrado, limpieza y exports.
type AdminHandler struct {
	orders  *usecase.OrderUseCase
	exports *report.ExportUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(orders *usecase.OrderUseCase, exports *report.ExportUseCase) *AdminHandler {
	return &AdminHandler{orders: orders, exports: exports}
}

// Delete godoc
// @Summary      Eliminar un pedido por id
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del pedido"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/orders/{id} [delete]
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	// Id inexistente no es error: el borrado es idempotente.
	if err := h.orders.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// Clear godoc
// @Summary      Eliminar todos los pedidos
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/admin/orders [delete]
func (h *AdminHandler) Clear(c *fiber.Ctx) error {
	if err := h.orders.Clear(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// ExportSummary godoc
// @Summary      Export xlsx: resumen por fecha/unidad
// @Tags         admin
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {file}  binary
// @Router       /api/admin/export-excel [get]
func (h *AdminHandler) ExportSummary(c *fiber.Ctx) error {
	data, err := h.exports.SummaryExcel(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return exportError(c, err)
	}
	return sendAttachment(c, data, xlsxMIME, "lunch_orders_summary.xlsx")
}

// ExportFood godoc
// @Summary      Export xlsx: pivote de ítems de comida
// @Tags         admin
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {file}  binary
// @Router       /api/admin/export-food-excel [get]
func (h *AdminHandler) ExportFood(c *fiber.Ctx) error {
	data, err := h.exports.FoodExcel(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return exportError(c, err)
	}
	return sendAttachment(c, data, xlsxMIME, "lunch_food_orders.xlsx")
}

// ExportDailyPDF godoc
// @Summary      Export PDF: hoja de entrega diaria
// @Tags         admin
// @Security     Bearer
// @Produce      application/pdf
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {file}  binary
// @Router       /api/admin/export-pdf [get]
func (h *AdminHandler) ExportDailyPDF(c *fiber.Ctx) error {
	data, err := h.exports.DailyPDF(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return exportError(c, err)
	}
	return sendAttachment(c, data, "application/pdf", "lunch_orders_daily.pdf")
}

func exportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func sendAttachment(c *fiber.Ctx, data []byte, mime, filename string) error {
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
