package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sample-api/internal/application/dto"
	"github.com/jhoicas/sample-api/internal/application/usecase"
	"github.com/jhoicas/sample-api/internal/domain"
)

// UserHandler maneja las peticiones HTTP para User.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List GET /users — filtro opcional `active`, paginación skip/limit.
func (h *UserHandler) List(c *fiber.Ctx) error {
	var filter dto.UserFilter
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "Invalid boolean value for 'active'"})
		}
		filter.Active = &active
	}
	page := dto.PageQuery{Skip: 0, Limit: 10}
	if raw := c.Query("skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "Invalid integer value for 'skip'"})
		}
		page.Skip = v
	}
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "Invalid integer value for 'limit'"})
		}
		page.Limit = v
	}
	out, err := h.uc.List(filter, page)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /users/{user_id}.
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("user_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "Invalid user ID"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Detail: "User not found"})
	}
	return c.JSON(out)
}

// Create POST /users — requiere X-API-Key (se aplica en el router).
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "Invalid request body"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken),
			errors.Is(err, domain.ErrInvalidEmail),
			errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: domain.Detail(err, "Invalid input")})
		default:
			return internalError(c, err)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /users/{user_id} — requiere Bearer (se aplica en el router).
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("user_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "Invalid user ID"})
	}
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "Invalid request body"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidEmail), errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: domain.Detail(err, "Invalid input")})
		default:
			return internalError(c, err)
		}
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Detail: "User not found"})
	}
	return c.JSON(out)
}

// Delete DELETE /users/{user_id} — requiere Bearer (se aplica en el router).
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("user_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "Invalid user ID"})
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Detail: "User not found"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "User deleted"})
}
