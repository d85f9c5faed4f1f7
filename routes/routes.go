package routes

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"simata/config"
	"simata/controllers"
	"simata/metrics"
	"simata/middleware"
	"simata/repository"
)

// Dependencies adalah objek proses yang dibagikan ke semua handler.
type Dependencies struct {
	Config  *config.Config
	Store   *repository.Handle
	Logger  *zap.Logger
	Metrics *metrics.Metrics
}

// NewApp membangun aplikasi Fiber lengkap dengan middleware dan semua route.
func NewApp(deps Dependencies) *fiber.App {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}

	app := fiber.New(fiber.Config{
		AppName:               deps.Config.App.Name,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          controllers.ErrorHandler,
		UnescapePath:          true,
		DisableStartupMessage: true,
	})

	// Urutan penting: metrics membaca status final setelah logger menyelesaikan error.
	app.Use(middleware.RequestID())
	app.Use(middleware.MetricsMiddleware(deps.Metrics))
	app.Use(middleware.LoggerMiddleware(deps.Logger))
	app.Use(middleware.RecoveryMiddleware())
	app.Use(middleware.CorsMiddleware())

	SetupRoutes(app, deps)
	return app
}

func SetupRoutes(app *fiber.App, deps Dependencies) {
	SystemRoutes(app, deps)
	DocumentRoutes(app, deps)
	SchemaRoutes(app)
}
