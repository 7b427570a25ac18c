package repository

import "github.com/jhoicas/estoque-api/internal/domain/entity"

// AlertRepository define el puerto de persistencia para Alert.
// Log append-only: no hay Update ni Delete.
type AlertRepository interface {
	Create(alert *entity.Alert) error
	ListAll() ([]*entity.Alert, error)
}
