package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sample-api/internal/application/dto"
	"github.com/jhoicas/sample-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product (solo lectura).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List GET /products — filtros opcionales min_price, max_price, in_stock.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var filter dto.ProductFilter
	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "Invalid number for 'min_price'"})
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "Invalid number for 'max_price'"})
		}
		filter.MaxPrice = &v
	}
	if raw := c.Query("in_stock"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "Invalid boolean value for 'in_stock'"})
		}
		filter.InStock = &v
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /products/{product_id}.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("product_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "Invalid product ID"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Detail: "Product not found"})
	}
	return c.JSON(out)
}
