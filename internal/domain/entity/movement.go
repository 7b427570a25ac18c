package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementKindCreate   = "create"
	MovementKindDelete   = "delete"
	MovementKindIncrease = "increase"
	MovementKindDecrease = "decrease"
)

// Movement registro inmutable de un evento que afecta la cantidad de un
// producto. Referencia al producto solo por ID (borrar el producto no borra
// sus movimientos). Nunca se actualiza ni se elimina.
type Movement struct {
	ID         string
	ProductID  string
	Kind       string // create, delete, increase, decrease
	Quantity   int    // magnitud del cambio, siempre >= 0
	ActingUser string
	CreatedAt  time.Time
}
