package dto

// DateLayout formato de fecha en la API (solo fecha, sin hora).
const DateLayout = "2006-01-02"

// PlaceOrderRequest alta/actualización de un pedido. Los seis campos son
// requeridos; el caso de uso descarta en silencio los envíos incompletos.
type PlaceOrderRequest struct {
	Doc    string `json:"doc"`
	Leader string `json:"leader"`
	Member string `json:"member"`
	Vendor string `json:"vendor"`
	Menu   string `json:"menu"`
	Date   string `json:"date"` // YYYY-MM-DD
}

// OrderResponse un pedido en respuestas.
type OrderResponse struct {
	ID     int64  `json:"id"`
	Doc    string `json:"doc"`
	Leader string `json:"leader"`
	Member string `json:"member"`
	Vendor string `json:"vendor"`
	Menu   string `json:"menu"`
	Date   string `json:"date"` // YYYY-MM-DD
}

// OrderListResponse listado de pedidos con total.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

// CatalogResponse directorio y menús para poblar el formulario de pedido.
type CatalogResponse struct {
	Teams       map[string]map[string][]string `json:"teams"`        // unidad -> líder -> miembros
	UnitOrder   []string                       `json:"unit_order"`   // orden de declaración de las unidades
	VendorMenus map[string][]string            `json:"vendor_menus"` // proveedor -> ítems
}
