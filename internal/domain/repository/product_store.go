package repository

import "github.com/jhoicas/sample-api/internal/domain/entity"

// ProductStore define el puerto de almacenamiento para Product (DIP).
// El catálogo es de solo lectura para la API; la única mutación permitida es
// la reserva de stock durante la creación de una orden.
type ProductStore interface {
	GetByID(id int) (*entity.Product, error)
	// List devuelve todos los productos en orden de inserción.
	List() ([]*entity.Product, error)
	// DecrementStock aplica todas las deducciones (productID → cantidad) o
	// ninguna: si alguna dejaría el stock negativo retorna
	// domain.ErrInsufficientStock sin tocar ningún producto.
	DecrementStock(deductions map[int]int) error
	// Reset reemplaza el contenido por la semilla dada (aislamiento entre tests).
	Reset(seed []*entity.Product)
}
