package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/sample-api/internal/application/order"
	"github.com/jhoicas/sample-api/internal/application/usecase"
	"github.com/jhoicas/sample-api/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/sample-api/internal/interfaces/http"
	"github.com/jhoicas/sample-api/pkg/config"
	"github.com/jhoicas/sample-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Stores en memoria sembrados con el fixture. Todo el estado vive en el
	// proceso; no hay persistencia más allá de su vida.
	userRepo := memory.NewUserRepository(memory.SeedUsers())
	productRepo := memory.NewProductRepository(memory.SeedProducts())
	orderRepo := memory.NewOrderRepository()

	userUC := usecase.NewUserUseCase(userRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	orderUC := order.NewOrderUseCase(userRepo, productRepo, orderRepo)

	app := fiber.New(fiber.Config{
		AppName:     cfg.App.Name,
		IdleTimeout: time.Second * 60,
		// ReadTimeout/WriteTimeout quedan sin acotar: /error/timeout debe
		// poder suspender la respuesta el retardo configurado completo.
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/openapi.json",
		Path:     "docs",
		Title:    "Sample API",
	}))
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		return c.SendFile("./docs/openapi.json")
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC:    userUC,
		ProductUC: productUC,
		OrderUC:   orderUC,
		Auth:      cfg.Auth,
		Sim:       cfg.Sim,
		Version:   cfg.App.Version,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
