package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación del puerto AlertRepository sobre PostgreSQL.
// Tabla append-only: solo INSERT y SELECT.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de persistencia para alertas.
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// Create persiste una alerta.
func (r *AlertRepo) Create(alert *entity.Alert) error {
	query := `
		INSERT INTO alerts (id, product_id, product_name, category, quantity, minimum_quantity, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.ProductID, alert.ProductName, alert.Category,
		alert.Quantity, alert.MinimumQuantity, alert.Status, alert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// ListAll devuelve todas las alertas, más reciente primero.
func (r *AlertRepo) ListAll() ([]*entity.Alert, error) {
	query := `
		SELECT id, product_id, product_name, category, quantity, minimum_quantity, status, created_at
		FROM alerts ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Alert
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(&a.ID, &a.ProductID, &a.ProductName, &a.Category,
			&a.Quantity, &a.MinimumQuantity, &a.Status, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
