package http

import (
	"github.com/gofiber/fiber/v2"
	appauth "github.com/tu-usuario/lunch-orders/internal/application/auth"
	"github.com/tu-usuario/lunch-orders/internal/application/report"
	"github.com/tu-usuario/lunch-orders/internal/application/usecase"
	"github.com/tu-usuario/lunch-orders/pkg/catalog"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrderUC   *usecase.OrderUseCase
	ExportUC  *report.ExportUseCase
	AuthUC    *appauth.AdminAuthUseCase
	Catalog   catalog.Catalog
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Pedidos y catálogo (público: equipo interno de confianza)
	orderHandler := NewOrderHandler(deps.OrderUC)
	api.Get("/orders", orderHandler.List)
	api.Post("/orders", orderHandler.Place)

	catalogHandler := NewCatalogHandler(deps.Catalog)
	api.Get("/catalog", catalogHandler.Get)

	// Auth de administrador (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	admin := api.Group("/admin")
	admin.Post("/login", authHandler.Login)
	admin.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token con rol admin)
	protected := admin.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(appauth.RoleAdmin))

	adminHandler := NewAdminHandler(deps.OrderUC, deps.ExportUC)
	protected.Delete("/orders/:id", adminHandler.Delete)
	protected.Delete("/orders", adminHandler.Clear)
	protected.Get("/export-excel", adminHandler.ExportSummary)
	protected.Get("/export-food-excel", adminHandler.ExportFood)
	protected.Get("/export-pdf", adminHandler.ExportDailyPDF)
}
