package routes

import (
	"github.com/gofiber/fiber/v2"

	"simata/controllers"
)

func DocumentRoutes(app *fiber.App, deps Dependencies) {
	dc := controllers.NewDocumentController(deps.Store, deps.Logger, deps.Config.Schema.Strict)
	ec := controllers.NewExportController(deps.Store)

	api := app.Group("/api")
	api.Get("/collections", dc.ListCollections)
	api.Post("/create", dc.Create)
	api.Get("/list/:collection", dc.List)
	api.Get("/export/:collection", ec.ExportExcel)
}
