package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the Fiber application with middleware and routes.
func NewApp(sessionHandler *SessionHandler, countryHandler *CountryHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	setupRoutes(app, sessionHandler, countryHandler)
	return app
}

func setupRoutes(app *fiber.App, sessionHandler *SessionHandler, countryHandler *CountryHandler) {
	api := app.Group("/api/v1")

	api.Get("/options", countryHandler.GetOptions)
	api.Get("/status", sessionHandler.GetStatus)

	// Session routes
	api.Post("/sessions", sessionHandler.OpenSession)
	sessionRoutes := api.Group("/sessions/:id")
	sessionRoutes.Get("/", sessionHandler.GetSession)
	sessionRoutes.Delete("/", sessionHandler.CloseSession)
	sessionRoutes.Post("/events", sessionHandler.PostEvent)
	sessionRoutes.Get("/details", countryHandler.GetDetails)
}
