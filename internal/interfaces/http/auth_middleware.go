package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sample-api/internal/application/dto"
)

// Middlewares de autenticación del fixture. Validan presencia y forma de la
// credencial contra un valor de prueba configurado; no emiten ni verifican
// credenciales reales.

// RequireAPIKey exige el header X-API-Key con el valor configurado.
func RequireAPIKey(apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("X-API-Key") != apiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Detail: "Invalid API key"})
		}
		return c.Next()
	}
}

// RequireBearer exige el header Authorization con formato "Bearer <token>" y
// el token de prueba configurado.
func RequireBearer(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Detail: "Invalid authentication"})
		}
		if strings.TrimPrefix(authHeader, "Bearer ") != token {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Detail: "Invalid token"})
		}
		return c.Next()
	}
}
