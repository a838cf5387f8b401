package router

import (
	"confgive/handler"
	"confgive/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.elastic.co/apm/module/apmfiber"
)

// SetupRoutes setup router api
func SetupRoutes(app *fiber.App) {
	// Middleware
	api := app.Group("/api", logger.New())
	api.Use(apmfiber.Middleware())
	api.Use(middleware.TrackMetrics())

	api.Get("/", handler.Hello)
	api.Get("/health", handler.Health)

	give := api.Group("/give")
	give.Post("/session", handler.CreateGiveSession)
	give.Post("/ready", handler.EvaluateReadiness)
	give.Post("/pay", handler.Pay)
	give.Get("/status/:token", handler.StatusPage)

	admin := api.Group("/admin", middleware.Protected())
	admin.Get("/attempts", handler.GetAttempts)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
