package stock

import (
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

// LowStockScanner recorre TODOS los productos (sin filtrar por usuario: es
// un job de sistema, no una consulta interactiva) y levanta una alerta por
// cada uno que esté en o por debajo de su mínimo. No consulta ni toca el
// historial de movimientos.
type LowStockScanner struct {
	productRepo repository.ProductRepository
	alerts      *AlertRaiser
	log         *logger.Logger
}

// NewLowStockScanner construye el escáner.
func NewLowStockScanner(productRepo repository.ProductRepository, alerts *AlertRaiser, log *logger.Logger) *LowStockScanner {
	return &LowStockScanner{productRepo: productRepo, alerts: alerts, log: log}
}

// Scan ejecuta una pasada completa. El fallo al alertar un producto se
// loguea y no aborta el resto del escaneo: cada intento es independiente.
func (s *LowStockScanner) Scan() {
	products, err := s.productRepo.ListAll()
	if err != nil {
		s.log.Error().Err(err).Msg("escaneo de stock bajo: no se pudieron listar productos")
		return
	}

	raised := 0
	for _, p := range products {
		if !p.BelowMinimum() {
			continue
		}
		if err := s.alerts.Raise(p); err != nil {
			// Ya logueado por el raiser; seguimos con el resto.
			continue
		}
		raised++
	}
	s.log.Info().
		Int("products", len(products)).
		Int("alerts", raised).
		Msg("escaneo de stock bajo completado")
}
