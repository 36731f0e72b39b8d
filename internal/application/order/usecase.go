package order

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sample-api/internal/application/dto"
	"github.com/jhoicas/sample-api/internal/domain"
	"github.com/jhoicas/sample-api/internal/domain/entity"
	"github.com/jhoicas/sample-api/internal/domain/repository"
)

// OrderUseCase núcleo transaccional del fixture: valida la orden contra los
// stores de usuarios y productos, reserva stock y persiste la orden.
//
// La secuencia verificación-y-commit de Create se serializa con un único
// mutex: dos órdenes concurrentes nunca pueden pasar ambas la verificación de
// stock contra la misma unidad y después descontarla dos veces. El bloqueo se
// suelta en toda salida, incluidas las fallas de validación, y ninguna falla
// deja mutación parcial observable.
type OrderUseCase struct {
	users    repository.UserStore
	products repository.ProductStore
	orders   repository.OrderStore

	mu sync.Mutex

	// inyectables en tests
	now   func() time.Time
	newID func() string
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(users repository.UserStore, products repository.ProductStore, orders repository.OrderStore) *OrderUseCase {
	return &OrderUseCase{
		users:    users,
		products: products,
		orders:   orders,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Create valida y persiste una orden nueva. Toda falla de regla de negocio
// (items vacíos, usuario o producto inexistente, cantidad < 1, stock
// insuficiente) se reporta como error de dominio con el detalle del contrato
// y no produce ningún cambio de estado.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.WithDetail(domain.ErrEmptyOrder, "Order must contain at least one item")
	}
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return nil, domain.WithDetail(domain.ErrInvalidInput,
				fmt.Sprintf("Quantity for product %d must be at least 1", it.ProductID))
		}
	}

	// Desde aquí hasta el commit nadie más puede verificar ni descontar stock.
	uc.mu.Lock()
	defer uc.mu.Unlock()

	user, err := uc.users.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.WithDetail(domain.ErrUserNotFound, "User not found")
	}

	// Verificación de stock acumulada: si la orden repite un producto, la suma
	// de sus cantidades tampoco puede exceder el stock disponible.
	total := decimal.Zero
	deductions := make(map[int]int, len(in.Items))
	for _, it := range in.Items {
		product, err := uc.products.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.WithDetail(domain.ErrProductNotFound,
				fmt.Sprintf("Product %d not found", it.ProductID))
		}
		deductions[it.ProductID] += it.Quantity
		if deductions[it.ProductID] > product.Stock {
			return nil, domain.WithDetail(domain.ErrInsufficientStock,
				fmt.Sprintf("Not enough stock for product %d. Requested: %d, Available: %d",
					it.ProductID, deductions[it.ProductID], product.Stock))
		}
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, entity.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	ord := &entity.Order{
		ID:        uc.newID(),
		UserID:    in.UserID,
		Items:     items,
		Total:     total.Round(2),
		CreatedAt: uc.now(),
	}

	// Commit: descuento de stock e inserción de la orden bajo el mismo lock,
	// así ningún observador ve una cosa sin la otra.
	if err := uc.products.DecrementStock(deductions); err != nil {
		return nil, err
	}
	if err := uc.orders.Create(ord); err != nil {
		return nil, err
	}
	return toOrderResponse(ord), nil
}

// GetByID obtiene una orden por su UUID exacto; (nil, nil) si no existe.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	ord, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, nil
	}
	return toOrderResponse(ord), nil
}

// List devuelve todas las órdenes en orden de creación, sin filtros.
func (uc *OrderUseCase) List() ([]dto.OrderResponse, error) {
	orders, err := uc.orders.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemDTO{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return &dto.OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Items:     items,
		Total:     o.Total.InexactFloat64(),
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
	}
}
