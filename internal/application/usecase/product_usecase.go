package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sample-api/internal/application/dto"
	"github.com/jhoicas/sample-api/internal/domain/entity"
	"github.com/jhoicas/sample-api/internal/domain/repository"
)

// ProductUseCase casos de uso de lectura para el catálogo.
// El contrato no define alta ni modificación de productos; el stock solo
// cambia a través del flujo de órdenes.
type ProductUseCase struct {
	repo repository.ProductStore
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductStore) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista el catálogo aplicando los predicados suministrados
// (min_price, max_price, in_stock) en orden estable de inserción.
// GET /products no pagina.
func (uc *ProductUseCase) List(filter dto.ProductFilter) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	if filter.MinPrice != nil {
		min := decimal.NewFromFloat(*filter.MinPrice)
		products = filterSeq(products, func(p *entity.Product) bool {
			return p.Price.GreaterThanOrEqual(min)
		})
	}
	if filter.MaxPrice != nil {
		max := decimal.NewFromFloat(*filter.MaxPrice)
		products = filterSeq(products, func(p *entity.Product) bool {
			return p.Price.LessThanOrEqual(max)
		})
	}
	if filter.InStock != nil {
		products = filterSeq(products, func(p *entity.Product) bool {
			return p.InStock() == *filter.InStock
		})
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price.InexactFloat64(),
		Stock: p.Stock,
	}
}
