package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sample-api/internal/application/dto"
	"github.com/jhoicas/sample-api/internal/application/order"
	"github.com/jhoicas/sample-api/internal/domain"
)

// OrderHandler maneja las peticiones HTTP para Order. Todas las rutas de
// órdenes exigen Bearer (se aplica en el router).
type OrderHandler struct {
	uc *order.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *order.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create POST /orders. Toda falla de regla de negocio — usuario o producto
// inexistente, cantidad inválida, stock insuficiente, items vacíos — es 400
// con el detalle del caso; el 404 queda reservado para lookups por ID.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "Invalid request body"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyOrder),
			errors.Is(err, domain.ErrInvalidInput),
			errors.Is(err, domain.ErrUserNotFound),
			errors.Is(err, domain.ErrProductNotFound),
			errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: domain.Detail(err, "Invalid order")})
		default:
			return internalError(c, err)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /orders — todas las órdenes, sin filtros, en orden de creación.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /orders/{order_id} — búsqueda exacta por UUID.
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("order_id"))
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Detail: "Order not found"})
	}
	return c.JSON(out)
}
