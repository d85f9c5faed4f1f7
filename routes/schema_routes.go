package routes

import (
	"github.com/gofiber/fiber/v2"

	"simata/controllers"
)

func SchemaRoutes(app *fiber.App) {
	g := app.Group("/api/schemas")
	g.Get("/", controllers.ListSchemas)
	g.Get("/:name", controllers.GetSchema)
}
