package dto

import "time"

// MovementResponse salida de un movimiento de stock.
type MovementResponse struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	Kind       string    `json:"kind"`
	Quantity   int       `json:"quantity"`
	ActingUser string    `json:"acting_user"`
	CreatedAt  time.Time `json:"created_at"`
}

// MovementListResponse historial de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
