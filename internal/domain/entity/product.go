package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCategory categoría asignada cuando el cliente no envía una.
// La categoría es además la clave de partición: un producto se direcciona
// siempre por el par (ID, Category).
const DefaultCategory = "Geral"

// Product representa un ítem de inventario con seguimiento de cantidad y
// umbral mínimo. Pertenece a exactamente un usuario (OwningUser) a efectos
// de autorización.
type Product struct {
	ID              string
	Category        string // clave de partición; default "Geral"
	Name            string
	CurrentQuantity int // puede quedar negativo; no hay piso en cero
	MinimumQuantity int
	Price           decimal.Decimal // precio de venta (opcional)
	ImageURL        string          // URL opaca en el blob storage (opcional)
	OwningUser      string          // se fija en la creación y nunca se reescribe
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsOwnedBy indica si el usuario es el dueño del producto.
// Delete y AdjustQuantity lo usan como rechazo; List como filtro.
func (p *Product) IsOwnedBy(username string) bool {
	return p.OwningUser == username
}

// BelowMinimum indica si la cantidad actual está en o por debajo del mínimo.
func (p *Product) BelowMinimum() bool {
	return p.CurrentQuantity <= p.MinimumQuantity
}
