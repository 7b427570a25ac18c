package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

// MovementRecorder registra movimientos inmutables cada vez que cambia el
// stock. Escritura advisory: si la persistencia falla, se loguea y se traga
// el error; la mutación primaria del producto nunca depende de este registro.
type MovementRecorder struct {
	repo repository.MovementRepository
	log  *logger.Logger
}

// NewMovementRecorder construye el recorder.
func NewMovementRecorder(repo repository.MovementRepository, log *logger.Logger) *MovementRecorder {
	return &MovementRecorder{repo: repo, log: log}
}

// Record construye y persiste un movimiento con ID y timestamp frescos.
// No lee movimientos previos ni valida saldo acumulado. No reporta el fallo
// al caller; solo queda en el log.
func (r *MovementRecorder) Record(productID, kind string, quantity int, actingUser string) {
	mov := &entity.Movement{
		ID:         uuid.New().String(),
		ProductID:  productID,
		Kind:       kind,
		Quantity:   quantity,
		ActingUser: actingUser,
		CreatedAt:  time.Now(),
	}
	if err := r.repo.Create(mov); err != nil {
		r.log.Warn().Err(err).
			Str("product_id", productID).
			Str("kind", kind).
			Msg("no se pudo registrar el movimiento de stock")
	}
}
