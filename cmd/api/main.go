package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/warehouse-api/internal/application/analytics"
	"github.com/tu-usuario/warehouse-api/internal/application/inventory"
	"github.com/tu-usuario/warehouse-api/internal/application/purchasing"
	"github.com/tu-usuario/warehouse-api/internal/application/usecase"
	"github.com/tu-usuario/warehouse-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/warehouse-api/internal/interfaces/http"
	"github.com/tu-usuario/warehouse-api/pkg/config"
	"github.com/tu-usuario/warehouse-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	purchaseUC := purchasing.NewPurchaseUseCase(txRunner, purchaseRepo, productRepo, supplierRepo)
	transferUC := inventory.NewTransferUseCase(txRunner, transferRepo, productRepo, locationRepo, movementRepo)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:  categoryUC,
		ProductUC:   productUC,
		SupplierUC:  supplierUC,
		LocationUC:  locationUC,
		PurchaseUC:  purchaseUC,
		TransferUC:  transferUC,
		DashboardUC: dashboardUC,
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

	log.Info().Msg("servidor detenido")
}
