package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo de prueba.
// Es de solo lectura por la API: se siembra al arranque y solo el flujo de
// órdenes modifica Stock (reserva atómica al crear una orden).
type Product struct {
	ID    int
	Name  string
	Price decimal.Decimal // precio de venta, nunca negativo
	Stock int             // unidades disponibles, nunca negativo
}

// InStock indica si el producto tiene al menos una unidad disponible.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
