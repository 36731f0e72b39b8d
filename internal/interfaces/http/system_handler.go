package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sample-api/internal/application/dto"
)

// SystemHandler rutas triviales: raíz de bienvenida y health check.
type SystemHandler struct {
	version string
}

// NewSystemHandler construye el handler con la versión reportada en /health.
func NewSystemHandler(version string) *SystemHandler {
	return &SystemHandler{version: version}
}

// Root GET / — mensaje estático de bienvenida.
func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Message: "Welcome to the Sample API"})
}

// Health GET /health — estado calculado en el momento de la llamada.
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   h.version,
	})
}
