package memory

import (
	"sync"

	"github.com/jhoicas/sample-api/internal/domain"
	"github.com/jhoicas/sample-api/internal/domain/entity"
	"github.com/jhoicas/sample-api/internal/domain/repository"
)

var _ repository.ProductStore = (*ProductRepo)(nil)

// ProductRepo implementación en memoria del puerto ProductStore.
// El catálogo se siembra al construir; solo DecrementStock lo muta.
type ProductRepo struct {
	mu       sync.RWMutex
	products []*entity.Product
}

// NewProductRepository construye el store con la semilla inicial.
func NewProductRepository(seed []*entity.Product) *ProductRepo {
	r := &ProductRepo{}
	r.Reset(seed)
	return r
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve copias de todos los productos en orden de inserción.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// DecrementStock aplica todas las deducciones o ninguna. Verifica primero
// contra el stock actual bajo el lock de escritura: si alguna deducción
// dejaría stock negativo, retorna sin modificar nada.
func (r *ProductRepo) DecrementStock(deductions map[int]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	targets := make(map[int]*entity.Product, len(deductions))
	for id, qty := range deductions {
		p := r.findLocked(id)
		if p == nil {
			return domain.ErrProductNotFound
		}
		if p.Stock < qty {
			return domain.ErrInsufficientStock
		}
		targets[id] = p
	}
	for id, qty := range deductions {
		targets[id].Stock -= qty
	}
	return nil
}

// Reset reemplaza el catálogo por la semilla dada.
func (r *ProductRepo) Reset(seed []*entity.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = make([]*entity.Product, 0, len(seed))
	for _, p := range seed {
		cp := *p
		r.products = append(r.products, &cp)
	}
}

// findLocked busca por ID sin copiar; el llamador debe tener el lock.
func (r *ProductRepo) findLocked(id int) *entity.Product {
	for _, p := range r.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}
