package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem es una línea de orden: producto referenciado y cantidad (≥ 1).
// Tipo valor, embebido en Order; no es direccionable por sí solo.
type OrderItem struct {
	ProductID int
	Quantity  int
}

// Order representa una orden confirmada. Inmutable una vez creada: no hay
// rutas de actualización ni borrado en el contrato.
// Total = Σ precio(item.ProductID) × item.Quantity con los precios vigentes
// al momento de la creación.
type Order struct {
	ID        string // UUID asignado al crear
	UserID    int
	Items     []OrderItem
	Total     decimal.Decimal
	CreatedAt time.Time
}
