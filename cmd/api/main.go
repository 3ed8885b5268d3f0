package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appauth "github.com/tu-usuario/lunch-orders/internal/application/auth"
	"github.com/tu-usuario/lunch-orders/internal/application/report"
	"github.com/tu-usuario/lunch-orders/internal/application/usecase"
	infraexcel "github.com/tu-usuario/lunch-orders/internal/infrastructure/excel"
	infrapdf "github.com/tu-usuario/lunch-orders/internal/infrastructure/pdf"
	"github.com/tu-usuario/lunch-orders/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/lunch-orders/internal/interfaces/http"
	"github.com/tu-usuario/lunch-orders/pkg/catalog"
	"github.com/tu-usuario/lunch-orders/pkg/config"
	"github.com/tu-usuario/lunch-orders/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	cat, err := catalog.Load(cfg.Order.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	orderRepo := postgres.NewOrderRepository(pool)
	// Esquema idempotente en cada arranque, como el init_db original.
	if err := orderRepo.Init(); err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema")
	}

	orderUC := usecase.NewOrderUseCase(orderRepo, log)
	workbooks := infraexcel.NewGenerator(cfg.Order.UnitPrice)
	dailyPDF := infrapdf.NewDailySheetGenerator(cfg.Order.UnitPrice)
	exportUC := report.NewExportUseCase(orderRepo, workbooks, dailyPDF, cat)
	authUC := appauth.NewAdminAuthUseCase(cfg.Admin, cfg.JWT)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los exports pesan más que un JSON
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Lunch Orders API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrderUC:   orderUC,
		ExportUC:  exportUC,
		AuthUC:    authUC,
		Catalog:   cat,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
