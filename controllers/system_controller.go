package controllers

import (
	"github.com/gofiber/fiber/v2"

	"simata/config"
	"simata/models"
	"simata/repository"
)

// SystemController melayani banner dan diagnosa database.
type SystemController struct {
	Config *config.Config
	Store  *repository.Handle
}

func NewSystemController(cfg *config.Config, store *repository.Handle) *SystemController {
	return &SystemController{Config: cfg, Store: store}
}

// Root godoc
//
//	@Summary		Liveness banner
//	@Description	Banner statis, tidak bergantung pada database
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	models.Banner
//	@Router			/ [get]
func (sc *SystemController) Root(c *fiber.Ctx) error {
	return c.JSON(models.Banner{
		Name:    sc.Config.App.Name,
		Version: sc.Config.App.Version,
		Message: "Backend berjalan",
	})
}

// TestDatabase godoc
//
//	@Summary		Database diagnostics
//	@Description	Status database best-effort; endpoint ini tidak pernah gagal
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	repository.Diagnostics
//	@Router			/test [get]
func (sc *SystemController) TestDatabase(c *fiber.Ctx) error {
	d := sc.Store.Probe(c.UserContext(), repository.Target{
		URLSet: sc.Config.Database.URL != "",
		Name:   sc.Config.Database.Name,
	})
	return c.JSON(d)
}
