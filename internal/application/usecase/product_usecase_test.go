package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sample-api/internal/application/dto"
	"github.com/jhoicas/sample-api/internal/application/usecase"
	"github.com/jhoicas/sample-api/internal/domain/entity"
	"github.com/jhoicas/sample-api/internal/infrastructure/memory"
)

func newProductUC(t *testing.T) (*usecase.ProductUseCase, *memory.ProductRepo) {
	t.Helper()
	repo := memory.NewProductRepository(memory.SeedProducts())
	return usecase.NewProductUseCase(repo), repo
}

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestProductList_SinFiltros_DevuelveTodoElCatalogo(t *testing.T) {
	uc, _ := newProductUC(t)

	out, err := uc.List(dto.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Laptop", out[0].Name, "el orden de inserción se preserva")
}

func TestProductList_FiltraPorRangoDePrecio(t *testing.T) {
	uc, _ := newProductUC(t)

	out, err := uc.List(dto.ProductFilter{
		MinPrice: floatPtr(100),
		MaxPrice: floatPtr(600),
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Smartphone", out[0].Name)
}

func TestProductList_MinPriceInclusive(t *testing.T) {
	uc, _ := newProductUC(t)

	out, err := uc.List(dto.ProductFilter{MinPrice: floatPtr(999.99)})
	require.NoError(t, err)
	require.Len(t, out, 1, "el límite del rango es inclusivo")
	assert.Equal(t, 1, out[0].ID)
}

func TestProductList_InStockDistingueAgotados(t *testing.T) {
	repo := memory.NewProductRepository([]*entity.Product{
		{ID: 1, Name: "Disponible", Stock: 3},
		{ID: 2, Name: "Agotado", Stock: 0},
	})
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.List(dto.ProductFilter{InStock: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Disponible", out[0].Name)

	out, err = uc.List(dto.ProductFilter{InStock: boolPtr(false)})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Agotado", out[0].Name)
}

func TestProductGetByID_ConvierteElPrecioANumero(t *testing.T) {
	uc, _ := newProductUC(t)

	out, err := uc.GetByID(1)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.InDelta(t, 999.99, out.Price, 0.0001)
	assert.Equal(t, 50, out.Stock)
}
