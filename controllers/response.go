package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"simata/models"
	"simata/schemas"
)

// fail menulis respons error; pesan asli error dikirim apa adanya di "detail".
func fail(c *fiber.Ctx, status int, message string, err error) error {
	body := models.ErrorResponse{Message: message}
	if err != nil {
		body.Detail = err.Error()
	}
	return c.Status(status).JSON(body)
}

// failValidation maps validator and schema errors to a per-field map.
func failValidation(c *fiber.Ctx, message string, err error) error {
	body := models.ErrorResponse{Message: message, Detail: err.Error()}

	var ve validator.ValidationErrors
	var se *schemas.ValidationError
	switch {
	case errors.As(err, &ve):
		body.Errors = make(map[string]string, len(ve))
		for _, fe := range ve {
			body.Errors[fe.Field()] = fe.Tag()
		}
	case errors.As(err, &se):
		body.Errors = se.Fields
	}
	return c.Status(fiber.StatusBadRequest).JSON(body)
}

// ErrorHandler adalah fiber.Config.ErrorHandler: error yang lolos dari handler
// (404 route, body terlalu besar, panic yang di-recover) dijadikan JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return fail(c, code, utils.StatusMessage(code), err)
}
