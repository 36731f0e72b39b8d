package memory

import (
	"sync"

	"github.com/jhoicas/sample-api/internal/domain/entity"
	"github.com/jhoicas/sample-api/internal/domain/repository"
)

var _ repository.OrderStore = (*OrderRepo)(nil)

// OrderRepo implementación en memoria del puerto OrderStore.
// Las órdenes se guardan en orden de creación y nunca se mutan.
type OrderRepo struct {
	mu     sync.RWMutex
	orders []*entity.Order
}

// NewOrderRepository construye el store vacío.
func NewOrderRepository() *OrderRepo {
	return &OrderRepo{}
}

// Create agrega la orden al final.
func (r *OrderRepo) Create(order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := cloneOrder(order)
	r.orders = append(r.orders, cp)
	return nil
}

// GetByID hace búsqueda exacta por UUID; (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return cloneOrder(o), nil
		}
	}
	return nil, nil
}

// List devuelve copias de todas las órdenes en orden de creación.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

// Reset vacía el store.
func (r *OrderRepo) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = nil
}

// cloneOrder copia la orden incluyendo el slice de items, para que ningún
// llamador pueda mutar lo almacenado.
func cloneOrder(o *entity.Order) *entity.Order {
	cp := *o
	cp.Items = append([]entity.OrderItem(nil), o.Items...)
	return &cp
}
