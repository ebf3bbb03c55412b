package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Generate      Generator
	DefaultOutDir string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	picking := api.Group("/picking")
	pickingHandler := NewPickingHandler(deps.Generate, deps.DefaultOutDir)
	picking.Post("/render", pickingHandler.Render)
}
