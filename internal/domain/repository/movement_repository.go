package repository

import "github.com/jhoicas/estoque-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para Movement.
// Log append-only: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	ListAll() ([]*entity.Movement, error)
}
