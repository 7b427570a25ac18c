package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/application/stock"
	"github.com/jhoicas/estoque-api/internal/infrastructure/gcs"
	"github.com/jhoicas/estoque-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/estoque-api/internal/interfaces/http"
	"github.com/jhoicas/estoque-api/pkg/config"
	"github.com/jhoicas/estoque-api/pkg/logger"
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

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	recorder := stock.NewMovementRecorder(movementRepo, log)
	alertRaiser := stock.NewAlertRaiser(alertRepo, log)
	stockUC := stock.NewStockUseCase(productRepo, recorder, alertRaiser, log)
	historyUC := stock.NewHistoryUseCase(movementRepo, alertRepo)
	scanner := stock.NewLowStockScanner(productRepo, alertRaiser, log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Blob storage opcional: sin bucket configurado no se registra la ruta de subida.
	var imageStorage *gcs.ImageStorage
	if cfg.Storage.Bucket != "" {
		imageStorage, err = gcs.NewImageStorage(ctx, cfg.Storage.Bucket, cfg.Storage.CredentialsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión al bucket de imágenes")
		}
		defer imageStorage.Close()
	} else {
		log.Warn().Msg("STORAGE_BUCKET no configurado; subida de imágenes deshabilitada")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC:      stockUC,
		HistoryUC:    historyUC,
		Scanner:      scanner,
		AuthUC:       authUC,
		ImageStorage: imageStorage,
		JWTSecret:    cfg.JWT.Secret,
	})

	// Escaneo periódico de stock bajo (además del binario cmd/stockmonitor
	// para triggers externos tipo cron).
	scanCtx, stopScan := context.WithCancel(ctx)
	defer stopScan()
	if cfg.Scanner.Enabled {
		interval := time.Duration(cfg.Scanner.IntervalMinutes) * time.Minute
		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					scanner.Scan()
				case <-scanCtx.Done():
					return
				}
			}
		}()
		log.Info().Int("interval_minutes", cfg.Scanner.IntervalMinutes).Msg("escaneo periódico habilitado")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stopScan()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
