package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sample-api/internal/application/dto"
	"github.com/jhoicas/sample-api/internal/application/order"
	"github.com/jhoicas/sample-api/internal/application/usecase"
	"github.com/jhoicas/sample-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC    *usecase.UserUseCase
	ProductUC *usecase.ProductUseCase
	OrderUC   *order.OrderUseCase
	Auth      config.AuthConfig
	Sim       config.SimConfig
	Version   string
}

// Router registra las rutas del contrato. La seguridad se declara por ruta:
// POST /users exige X-API-Key; PUT/DELETE /users/{id} y todo /orders exigen
// Bearer; el resto es público.
func Router(app *fiber.App, deps RouterDeps) {
	apiKey := RequireAPIKey(deps.Auth.APIKey)
	bearer := RequireBearer(deps.Auth.BearerToken)

	systemHandler := NewSystemHandler(deps.Version)
	app.Get("/", systemHandler.Root)
	app.Get("/health", systemHandler.Health)

	userHandler := NewUserHandler(deps.UserUC)
	app.Get("/users", userHandler.List)
	app.Post("/users", apiKey, userHandler.Create)
	app.Get("/users/:user_id", userHandler.GetByID)
	app.Put("/users/:user_id", bearer, userHandler.Update)
	app.Delete("/users/:user_id", bearer, userHandler.Delete)

	productHandler := NewProductHandler(deps.ProductUC)
	app.Get("/products", productHandler.List)
	app.Get("/products/:product_id", productHandler.GetByID)

	orderHandler := NewOrderHandler(deps.OrderUC)
	app.Get("/orders", bearer, orderHandler.List)
	app.Post("/orders", bearer, orderHandler.Create)
	app.Get("/orders/:order_id", bearer, orderHandler.GetByID)

	errorHandler := NewErrorHandler(deps.Sim)
	app.Get("/error/timeout", errorHandler.Timeout)
	app.Get("/error/500", errorHandler.ServerError)
	app.Get("/error/rate-limit", errorHandler.RateLimit)
}

// internalError responde 500 con el cuerpo {detail} del contrato. Solo un
// defecto de programación debería llegar aquí: ninguna regla de negocio del
// contrato produce errores internos.
func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: err.Error()})
}
