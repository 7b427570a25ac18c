package stock

import (
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// HistoryUseCase consultas de solo lectura sobre los logs del sistema:
// movimientos y alertas. No están acotadas por usuario.
type HistoryUseCase struct {
	movementRepo repository.MovementRepository
	alertRepo    repository.AlertRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(movementRepo repository.MovementRepository, alertRepo repository.AlertRepository) *HistoryUseCase {
	return &HistoryUseCase{movementRepo: movementRepo, alertRepo: alertRepo}
}

// ListMovements devuelve el historial completo de movimientos, más reciente primero.
func (uc *HistoryUseCase) ListMovements() (*dto.MovementListResponse, error) {
	list, err := uc.movementRepo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:         m.ID,
			ProductID:  m.ProductID,
			Kind:       m.Kind,
			Quantity:   m.Quantity,
			ActingUser: m.ActingUser,
			CreatedAt:  m.CreatedAt,
		})
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

// ListAlerts devuelve todas las alertas, más reciente primero.
func (uc *HistoryUseCase) ListAlerts() (*dto.AlertListResponse, error) {
	list, err := uc.alertRepo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.AlertResponse, 0, len(list))
	for _, a := range list {
		items = append(items, dto.AlertResponse{
			ID:              a.ID,
			ProductID:       a.ProductID,
			ProductName:     a.ProductName,
			Category:        a.Category,
			Quantity:        a.Quantity,
			MinimumQuantity: a.MinimumQuantity,
			Status:          a.Status,
			CreatedAt:       a.CreatedAt,
		})
	}
	return &dto.AlertListResponse{Items: items, Total: len(items)}, nil
}
