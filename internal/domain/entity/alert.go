package entity

import "time"

// AlertStatusOpen único estado que se produce hoy; no existe workflow de
// resolución de alertas.
const AlertStatusOpen = "open"

// Alert foto puntual de un producto en o por debajo de su mínimo. Pueden
// existir varias alertas para el mismo producto si cruza el umbral varias
// veces: no hay deduplicación.
type Alert struct {
	ID              string
	ProductID       string
	ProductName     string
	Category        string
	Quantity        int // cantidad al momento de la alerta
	MinimumQuantity int // mínimo al momento de la alerta
	Status          string
	CreatedAt       time.Time
}
