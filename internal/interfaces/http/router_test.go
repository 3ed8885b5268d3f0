package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/tu-usuario/lunch-orders/internal/application/auth"
	"github.com/tu-usuario/lunch-orders/internal/application/report"
	"github.com/tu-usuario/lunch-orders/internal/application/usecase"
	"github.com/tu-usuario/lunch-orders/internal/domain/entity"
	"github.com/tu-usuario/lunch-orders/internal/domain/repository"
	infraexcel "github.com/tu-usuario/lunch-orders/internal/infrastructure/excel"
	infrapdf "github.com/tu-usuario/lunch-orders/internal/infrastructure/pdf"
	apphttp "github.com/tu-usuario/lunch-orders/internal/interfaces/http"
	"github.com/tu-usuario/lunch-orders/pkg/catalog"
	"github.com/tu-usuario/lunch-orders/pkg/config"
	"github.com/tu-usuario/lunch-orders/pkg/logger"
)

// memOrderRepo repositorio en memoria con semántica de upsert por (member, date).
type memOrderRepo struct {
	orders []*entity.Order
	nextID int64
}

func (m *memOrderRepo) Init() error { return nil }

func (m *memOrderRepo) Upsert(order *entity.Order) error {
	for _, o := range m.orders {
		if o.Member == order.Member && o.Date.Equal(order.Date) {
			o.Doc, o.Leader, o.Vendor, o.Menu = order.Doc, order.Leader, order.Vendor, order.Menu
			return nil
		}
	}
	m.nextID++
	clone := *order
	clone.ID = m.nextID
	m.orders = append(m.orders, &clone)
	return nil
}

func (m *memOrderRepo) List(filter repository.OrderFilter) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range m.orders {
		if filter.Start != nil && o.Date.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && o.Date.After(*filter.End) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (m *memOrderRepo) Delete(id int64) error {
	for i, o := range m.orders {
		if o.ID == id {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memOrderRepo) Clear() error {
	m.orders = nil
	return nil
}

// buildAPI arma la aplicación completa contra el repositorio en memoria.
func buildAPI(t *testing.T) (*fiber.App, *memOrderRepo) {
	t.Helper()
	repo := &memOrderRepo{}
	cat := catalog.Default()
	price := decimal.NewFromInt(85)

	orderUC := usecase.NewOrderUseCase(repo, logger.Nop())
	exportUC := report.NewExportUseCase(
		repo,
		infraexcel.NewGenerator(price),
		infrapdf.NewDailySheetGenerator(price),
		cat,
	)
	authUC := appauth.NewAdminAuthUseCase(
		config.AdminConfig{Username: "admin", Password: "1234"},
		config.JWTConfig{Secret: testJWTSecret, Expiration: testExpMin, Issuer: testIssuer},
	)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		OrderUC:   orderUC,
		ExportUC:  exportUC,
		AuthUC:    authUC,
		Catalog:   cat,
		JWTSecret: testJWTSecret,
	})
	return app, repo
}

func doJSON(t *testing.T, app *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func adminToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/admin/login",
		`{"username":"admin","password":"1234"}`, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body["token"])
	return body["token"]
}

const orderJSON = `{"doc":"Suyogya","leader":"Suyogya","member":"Ranju Maharjan","vendor":"Vendor 1","menu":"Momo Veg","date":"2024-01-01"}`

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestPlaceOrder_YListado(t *testing.T) {
	app, _ := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/orders", orderJSON, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/orders", "", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Total  int `json:"total"`
		Orders []struct {
			Member string `json:"member"`
			Date   string `json:"date"`
		} `json:"orders"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Ranju Maharjan", out.Orders[0].Member)
	assert.Equal(t, "2024-01-01", out.Orders[0].Date)
}

func TestPlaceOrder_IncompletoSeDescarta(t *testing.T) {
	app, repo := buildAPI(t)

	incompleto := `{"doc":"Suyogya","leader":"Suyogya","member":"","vendor":"Vendor 1","menu":"Momo Veg","date":"2024-01-01"}`
	resp := doJSON(t, app, http.MethodPost, "/api/orders", incompleto, "")
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode,
		"política heredada: envío incompleto se descarta en silencio")
	assert.Empty(t, repo.orders)
}

func TestListOrders_FechaInvalida(t *testing.T) {
	app, _ := buildAPI(t)

	resp := doJSON(t, app, http.MethodGet, "/api/orders?start_date=ayer", "", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCatalog_DevuelveDirectorioYMenus(t *testing.T) {
	app, _ := buildAPI(t)

	resp := doJSON(t, app, http.MethodGet, "/api/catalog", "", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		UnitOrder   []string            `json:"unit_order"`
		VendorMenus map[string][]string `json:"vendor_menus"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Suyogya", out.UnitOrder[0])
	assert.Contains(t, out.VendorMenus, "Vendor 1")
}

// ──────────────────────────────────────────────────────────────────────────────
// Administración
// ──────────────────────────────────────────────────────────────────────────────

func TestAdmin_RutasProtegidasSinToken(t *testing.T) {
	app, _ := buildAPI(t)

	for _, path := range []string{
		"/api/admin/export-excel",
		"/api/admin/export-food-excel",
		"/api/admin/export-pdf",
	} {
		resp := doJSON(t, app, http.MethodGet, path, "", "")
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}

	resp := doJSON(t, app, http.MethodDelete, "/api/admin/orders", "", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdmin_LoginInvalido(t *testing.T) {
	app, _ := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/admin/login",
		`{"username":"admin","password":"mala"}`, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdmin_DeleteYClear(t *testing.T) {
	app, repo := buildAPI(t)
	token := adminToken(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/orders", orderJSON, "")
	resp.Body.Close()
	require.Len(t, repo.orders, 1)
	id := repo.orders[0].ID

	resp = doJSON(t, app, http.MethodDelete, "/api/admin/orders/"+strconv.FormatInt(id, 10), "", token)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, repo.orders)

	// Borrar un id inexistente sigue siendo 200: operación idempotente.
	resp = doJSON(t, app, http.MethodDelete, "/api/admin/orders/999", "", token)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/orders", orderJSON, "")
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodDelete, "/api/admin/orders", "", token)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, repo.orders)
}

func TestAdmin_ExportExcel(t *testing.T) {
	app, _ := buildAPI(t)
	token := adminToken(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/orders", orderJSON, "")
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/admin/export-excel", "", token)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "lunch_orders_summary.xlsx")
}

func TestAdmin_ExportPDF(t *testing.T) {
	app, _ := buildAPI(t)
	token := adminToken(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/admin/export-pdf", "", token)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "lunch_orders_daily.pdf")
}
