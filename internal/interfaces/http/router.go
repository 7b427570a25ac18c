package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/application/stock"
	"github.com/jhoicas/estoque-api/internal/infrastructure/gcs"
)

// RouterDeps dependencias para el router.
// ImageStorage puede ser nil (subida de imágenes deshabilitada).
type RouterDeps struct {
	StockUC      *stock.StockUseCase
	HistoryUC    *stock.HistoryUseCase
	Scanner      *stock.LowStockScanner
	AuthUC       *auth.AuthUseCase
	ImageStorage *gcs.ImageStorage
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.StockUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/adjust", productHandler.AdjustQuantity)

	// Movements y alerts (protegido)
	historyHandler := NewHistoryHandler(deps.HistoryUC, deps.Scanner)
	protected.Get("/movements", historyHandler.ListMovements)
	alerts := protected.Group("/alerts")
	alerts.Get("/", historyHandler.ListAlerts)
	alerts.Post("/scan", historyHandler.RunScan)

	// Uploads (protegido; solo si hay bucket configurado)
	if deps.ImageStorage != nil {
		uploadHandler := NewUploadHandler(deps.ImageStorage)
		protected.Post("/uploads/image", uploadHandler.UploadImage)
	}
}
