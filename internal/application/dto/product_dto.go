package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// ID y Category son opcionales: se genera un UUID y se asigna la categoría
// por defecto si faltan. OwningUser nunca viene en el body; sale del token.
type CreateProductRequest struct {
	ID              string          `json:"id"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Category        string          `json:"category"`
	CurrentQuantity int             `json:"current_quantity"`
	MinimumQuantity int             `json:"minimum_quantity"`
	Price           decimal.Decimal `json:"price"`
	ImageURL        string          `json:"image_url"`
}

// AdjustQuantityRequest entrada para ajustar la cantidad de un producto.
// Delta es puntero para distinguir "ausente" de cero: un body sin delta (o
// con delta no numérico, que falla el parseo) es entrada inválida.
type AdjustQuantityRequest struct {
	Category string `json:"category"`
	Delta    *int   `json:"delta"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              string          `json:"id"`
	Category        string          `json:"category"`
	Name            string          `json:"name"`
	CurrentQuantity int             `json:"current_quantity"`
	MinimumQuantity int             `json:"minimum_quantity"`
	Price           decimal.Decimal `json:"price"`
	ImageURL        string          `json:"image_url,omitempty"`
	OwningUser      string          `json:"owning_user"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos del usuario autenticado.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
