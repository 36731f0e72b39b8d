package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sample-api/internal/application/dto"
	"github.com/jhoicas/sample-api/pkg/config"
)

// ErrorHandler endpoints de falla simulada. Todas las respuestas son
// deterministas: mismo endpoint, misma respuesta, en cada llamada. No hay
// aleatoriedad ni estado entre llamadas.
type ErrorHandler struct {
	cfg config.SimConfig
}

// NewErrorHandler construye el handler con los parámetros de simulación.
func NewErrorHandler(cfg config.SimConfig) *ErrorHandler {
	return &ErrorHandler{cfg: cfg}
}

// Timeout GET /error/timeout — suspende la respuesta el retardo configurado y
// después responde 200. Si el cliente aborta antes, no responde nada.
func (h *ErrorHandler) Timeout(c *fiber.Ctx) error {
	timer := time.NewTimer(h.cfg.TimeoutDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-c.Context().Done():
		return nil
	}
	return c.JSON(dto.MessageResponse{Message: "This response took a long time"})
}

// ServerError GET /error/500 — siempre 500, sin efectos secundarios.
func (h *ErrorHandler) ServerError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: "Simulated server error"})
}

// RateLimit GET /error/rate-limit — siempre 429 con header Retry-After. No es un
// rate limiter real: no lleva cuenta de nada, dispara en cada llamada.
func (h *ErrorHandler) RateLimit(c *fiber.Ctx) error {
	c.Set("Retry-After", h.cfg.RetryAfter)
	return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Detail: "Rate limit exceeded"})
}
