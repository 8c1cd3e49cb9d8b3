// Package server assembles the Fiber application: middleware chain, error
// handling and routes.
package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"github.com/rajivgeraev/listings-api/internal/config"
	"github.com/rajivgeraev/listings-api/internal/db"
	"github.com/rajivgeraev/listings-api/internal/middleware"
	"github.com/rajivgeraev/listings-api/internal/services/health"
	"github.com/rajivgeraev/listings-api/internal/services/listing"
	"github.com/rajivgeraev/listings-api/internal/summary"
)

// New builds the application around the given store and summary generator
func New(cfg *config.Config, store *db.Store, generator summary.Generator) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Property Listings API",
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.IsDevelopment(),
	}))
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowCredentials: false,
	}))

	api := app.Group("/api")

	listing.NewListingService(store, generator).SetupRoutes(api)
	health.NewHealthService(store).SetupRoutes(api)

	return app
}
