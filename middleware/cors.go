package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware membuka akses dari origin mana pun, semua method dan header,
// dengan credentials. Origin dipantulkan karena browser menolak "*" bersama
// credentials.
func CorsMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOriginsFunc: func(string) bool { return true },
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS,HEAD",
		AllowCredentials: true,
	})
}
