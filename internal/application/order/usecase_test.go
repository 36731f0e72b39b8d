package order_test

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sample-api/internal/application/dto"
	"github.com/jhoicas/sample-api/internal/application/order"
	"github.com/jhoicas/sample-api/internal/domain"
	"github.com/jhoicas/sample-api/internal/domain/entity"
	"github.com/jhoicas/sample-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	users    *memory.UserRepo
	products *memory.ProductRepo
	orders   *memory.OrderRepo
	uc       *order.OrderUseCase
}

// newFixture construye el caso de uso con los stores sembrados del fixture.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:    memory.NewUserRepository(memory.SeedUsers()),
		products: memory.NewProductRepository(memory.SeedProducts()),
		orders:   memory.NewOrderRepository(),
	}
	f.uc = order.NewOrderUseCase(f.users, f.products, f.orders)
	return f
}

// stockOf devuelve el stock actual del producto.
func (f *fixture) stockOf(t *testing.T, productID int) int {
	t.Helper()
	p, err := f.products.GetByID(productID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — camino feliz
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_CalculaTotalConPreciosVigentes(t *testing.T) {
	f := newFixture(t)

	// 2 × Laptop (999.99) + 3 × Headphones (79.99) = 2239.95
	out, err := f.uc.Create(dto.CreateOrderRequest{
		UserID: 1,
		Items: []dto.OrderItemDTO{
			{ProductID: 1, Quantity: 2},
			{ProductID: 3, Quantity: 3},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.InDelta(t, 2239.95, out.Total, 0.001,
		"el total debe ser la suma de precio × cantidad por item")
	assert.Equal(t, 1, out.UserID)
	assert.Len(t, out.Items, 2)
	assert.NotEmpty(t, out.ID, "la orden debe recibir un UUID")
	assert.NotEmpty(t, out.CreatedAt)
}

func TestCreate_DescuentaStockExactamente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(dto.CreateOrderRequest{
		UserID: 2,
		Items:  []dto.OrderItemDTO{{ProductID: 2, Quantity: 7}},
	})
	require.NoError(t, err)

	assert.Equal(t, 93, f.stockOf(t, 2),
		"el stock debe bajar exactamente la cantidad ordenada (100 - 7)")
}

func TestCreate_LasOrdenesSeListanEnOrdenDeCreacion(t *testing.T) {
	f := newFixture(t)

	first, err := f.uc.Create(dto.CreateOrderRequest{
		UserID: 1, Items: []dto.OrderItemDTO{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)
	second, err := f.uc.Create(dto.CreateOrderRequest{
		UserID: 2, Items: []dto.OrderItemDTO{{ProductID: 2, Quantity: 1}},
	})
	require.NoError(t, err)

	list, err := f.uc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — validaciones (todo-o-nada)
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ItemsVacios_Rechaza(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(dto.CreateOrderRequest{UserID: 1, Items: nil})
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestCreate_UsuarioInexistente_Rechaza(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(dto.CreateOrderRequest{
		UserID: 999,
		Items:  []dto.OrderItemDTO{{ProductID: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Equal(t, "User not found", domain.Detail(err, ""))
}

func TestCreate_ProductoInexistente_Rechaza(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(dto.CreateOrderRequest{
		UserID: 1,
		Items:  []dto.OrderItemDTO{{ProductID: 999, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Equal(t, "Product 999 not found", domain.Detail(err, ""))
}

func TestCreate_CantidadMenorAUno_Rechaza(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(dto.CreateOrderRequest{
		UserID: 1,
		Items:  []dto.OrderItemDTO{{ProductID: 1, Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_StockInsuficiente_NoDejaEstadoParcial(t *testing.T) {
	f := newFixture(t)

	// El primer item es satisfacible; el segundo excede el stock. Nada debe
	// cambiar: ni stocks ni lista de órdenes.
	_, err := f.uc.Create(dto.CreateOrderRequest{
		UserID: 1,
		Items: []dto.OrderItemDTO{
			{ProductID: 1, Quantity: 10},
			{ProductID: 3, Quantity: 500},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t,
		"Not enough stock for product 3. Requested: 500, Available: 200",
		domain.Detail(err, ""))

	assert.Equal(t, 50, f.stockOf(t, 1), "ningún stock debe cambiar tras la falla")
	assert.Equal(t, 200, f.stockOf(t, 3))
	list, err := f.uc.List()
	require.NoError(t, err)
	assert.Empty(t, list, "la orden fallida no debe persistirse")
}

func TestCreate_ProductoRepetido_VerificaStockAcumulado(t *testing.T) {
	f := newFixture(t)

	// Dos líneas de 30 sobre un stock de 50: cada una cabe por separado pero
	// la suma no. La verificación acumulada debe rechazar la orden completa.
	_, err := f.uc.Create(dto.CreateOrderRequest{
		UserID: 1,
		Items: []dto.OrderItemDTO{
			{ProductID: 1, Quantity: 30},
			{ProductID: 1, Quantity: 30},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 50, f.stockOf(t, 1))
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia — sin sobreventa
// ──────────────────────────────────────────────────────────────────────────────

// TestCreate_ConcurrenciaNoSobrevende lanza 40 órdenes simultáneas de 2
// unidades sobre un stock de 50: solo 25 pueden tener éxito y el stock final
// debe ser exactamente cero, nunca negativo.
func TestCreate_ConcurrenciaNoSobrevende(t *testing.T) {
	f := newFixture(t)

	const (
		workers  = 40
		perOrder = 2
	)

	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Create(dto.CreateOrderRequest{
				UserID: 1,
				Items:  []dto.OrderItemDTO{{ProductID: 1, Quantity: perOrder}},
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		}
	}

	assert.Equal(t, 25, succeeded, "50 unidades / 2 por orden = 25 órdenes")
	assert.Equal(t, 0, f.stockOf(t, 1), "el stock nunca debe quedar negativo")

	list, err := f.uc.List()
	require.NoError(t, err)
	assert.Len(t, list, succeeded, "cada éxito persiste exactamente una orden")
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_BusquedaExactaPorUUID(t *testing.T) {
	f := newFixture(t)

	created, err := f.uc.Create(dto.CreateOrderRequest{
		UserID: 1, Items: []dto.OrderItemDTO{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	got, err := f.uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Total, got.Total)
}

func TestGetByID_UUIDInexistente_DevuelveNil(t *testing.T) {
	f := newFixture(t)
	got, err := f.uc.GetByID("123e4567-e89b-12d3-a456-426614174000")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// TestCreate_TotalRedondeadoADosDecimales verifica el redondeo del total
// usando un catálogo con precio de tres decimales.
func TestCreate_TotalRedondeadoADosDecimales(t *testing.T) {
	users := memory.NewUserRepository(memory.SeedUsers())
	products := memory.NewProductRepository([]*entity.Product{
		{ID: 1, Name: "Widget", Price: decimal.NewFromFloat(0.333), Stock: 10},
	})
	uc := order.NewOrderUseCase(users, products, memory.NewOrderRepository())

	out, err := uc.Create(dto.CreateOrderRequest{
		UserID: 1,
		Items:  []dto.OrderItemDTO{{ProductID: 1, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.67, out.Total, 0.0001, "0.666 debe redondear a 0.67")
}
