package repository

import "github.com/jhoicas/sample-api/internal/domain/entity"

// OrderStore define el puerto de almacenamiento para Order (DIP).
// Las órdenes son inmutables: solo alta y lectura.
type OrderStore interface {
	Create(order *entity.Order) error
	// GetByID hace búsqueda exacta (sensible a mayúsculas) por el UUID.
	GetByID(id string) (*entity.Order, error)
	// List devuelve todas las órdenes en orden de creación.
	List() ([]*entity.Order, error)
	// Reset vacía el store (aislamiento entre tests).
	Reset()
}
