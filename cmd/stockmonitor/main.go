package main

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/application/stock"
	"github.com/jhoicas/estoque-api/internal/infrastructure/postgres"
	"github.com/jhoicas/estoque-api/pkg/config"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

// Binario de una sola pasada para triggers externos (cron, timer de la
// plataforma): ejecuta el escaneo de stock bajo y termina.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	alertRaiser := stock.NewAlertRaiser(alertRepo, log)
	scanner := stock.NewLowStockScanner(productRepo, alertRaiser, log)

	scanner.Scan()
}
