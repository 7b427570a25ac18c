package dto

import "time"

// AlertResponse salida de una alerta de stock bajo.
type AlertResponse struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	ProductName     string    `json:"product_name"`
	Category        string    `json:"category"`
	Quantity        int       `json:"quantity"`
	MinimumQuantity int       `json:"minimum_quantity"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// AlertListResponse listado de alertas, más reciente primero.
type AlertListResponse struct {
	Items []AlertResponse `json:"items"`
	Total int             `json:"total"`
}
