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

	"github.com/jhoicas/picking-api/internal/app"
	httpRouter "github.com/jhoicas/picking-api/internal/interfaces/http"
	"github.com/jhoicas/picking-api/pkg/config"
	"github.com/jhoicas/picking-api/pkg/logger"
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
		Strs("backends", cfg.Pipeline.Backends).
		Msg("iniciando aplicación")

	generateUC := app.BuildGenerator(cfg, log)

	fiberApp := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		// Una corrida completa (planillas grandes + render de PDF) puede
		// tardar; el timeout de escritura debe cubrirla.
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Minute * 5,
		IdleTimeout:  time.Second * 60,
	})
	fiberApp.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	fiberApp.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Picking API",
	}))

	fiberApp.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(fiberApp, httpRouter.RouterDeps{
		Generate:      generateUC,
		DefaultOutDir: cfg.Pipeline.OutputDir,
	})

	go func() {
		if err := fiberApp.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := fiberApp.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
