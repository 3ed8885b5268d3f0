package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/lunch-orders/internal/application/dto"
	"github.com/tu-usuario/lunch-orders/pkg/catalog"
)

// CatalogHandler expone el directorio y los menús para el formulario de pedido.
type CatalogHandler struct {
	resp dto.CatalogResponse
}

// NewCatalogHandler construye el handler. La respuesta se arma una sola vez:
// el catálogo es inmutable durante la vida del proceso.
func NewCatalogHandler(cat catalog.Catalog) *CatalogHandler {
	teams := make(map[string]map[string][]string, len(cat.Directory.Units))
	for _, u := range cat.Directory.Units {
		leaders := make(map[string][]string, len(u.Leaders))
		for _, l := range u.Leaders {
			leaders[l.Name] = l.Members
		}
		teams[u.Name] = leaders
	}
	return &CatalogHandler{resp: dto.CatalogResponse{
		Teams:       teams,
		UnitOrder:   cat.Directory.UnitNames(),
		VendorMenus: cat.Menu.ItemsByVendor(),
	}}
}

// Get godoc
// @Summary      Directorio de equipos y menús por proveedor
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.resp)
}
