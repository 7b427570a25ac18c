package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

// AlertRaiser genera alertas cuando un producto queda en o por debajo de su
// mínimo. Igual que el recorder, es una escritura advisory: el fallo se
// loguea y se traga. No hay chequeo de idempotencia; alertas consecutivas
// idénticas son válidas.
type AlertRaiser struct {
	repo repository.AlertRepository
	log  *logger.Logger
}

// NewAlertRaiser construye el raiser.
func NewAlertRaiser(repo repository.AlertRepository, log *logger.Logger) *AlertRaiser {
	return &AlertRaiser{repo: repo, log: log}
}

// Raise persiste una foto del producto con estado "open".
// Retorna el error solo para que el escáner pueda contarlo; los callers de
// mutación lo ignoran.
func (a *AlertRaiser) Raise(p *entity.Product) error {
	alert := &entity.Alert{
		ID:              uuid.New().String(),
		ProductID:       p.ID,
		ProductName:     p.Name,
		Category:        p.Category,
		Quantity:        p.CurrentQuantity,
		MinimumQuantity: p.MinimumQuantity,
		Status:          entity.AlertStatusOpen,
		CreatedAt:       time.Now(),
	}
	if err := a.repo.Create(alert); err != nil {
		a.log.Warn().Err(err).
			Str("product_id", p.ID).
			Int("quantity", p.CurrentQuantity).
			Msg("no se pudo crear la alerta de stock bajo")
		return err
	}
	return nil
}
