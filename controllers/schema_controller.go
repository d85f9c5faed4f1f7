package controllers

import (
	"github.com/gofiber/fiber/v2"

	"simata/schemas"
)

// ListSchemas godoc
//
//	@Summary		Schema catalog
//	@Description	Bentuk record AssetCategory, Location, Department, Asset (referensi, tidak ditegakkan kecuali mode strict)
//	@Tags			Schema
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Router			/api/schemas [get]
func ListSchemas(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"schemas": schemas.Catalog()})
}

// GetSchema godoc
//
//	@Summary		Schema by collection
//	@Tags			Schema
//	@Produce		json
//	@Param			name	path		string	true	"Nama koleksi atau tipe"
//	@Success		200		{object}	schemas.Schema
//	@Failure		404		{object}	models.ErrorResponse
//	@Router			/api/schemas/{name} [get]
func GetSchema(c *fiber.Ctx) error {
	s, ok := schemas.Lookup(c.Params("name"))
	if !ok {
		return fail(c, fiber.StatusNotFound, "Skema tidak ditemukan", nil)
	}
	return c.JSON(s)
}
