package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"simata/controllers"
)

func SystemRoutes(app *fiber.App, deps Dependencies) {
	sc := controllers.NewSystemController(deps.Config, deps.Store)

	app.Get("/", sc.Root)
	app.Get("/test", sc.TestDatabase)
	app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	app.Get("/swagger/*", fiberSwagger.WrapHandler)
}
