package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/log"

	"github.com/rajivgeraev/listings-api/internal/config"
	"github.com/rajivgeraev/listings-api/internal/db"
	"github.com/rajivgeraev/listings-api/internal/server"
	"github.com/rajivgeraev/listings-api/internal/summary"
)

func main() {
	cfg := config.LoadConfig()

	store := db.NewStore()
	if cfg.SeedSampleData {
		if err := db.SeedSampleListings(store, time.Now()); err != nil {
			log.Fatalf("seed sample listings: %v", err)
		}
		log.Infof("Sample listings loaded: %d", store.Count())
	}

	app := server.New(cfg, store, summary.NewCannedGenerator(nil))

	if cfg.IsDevelopment() {
		logRoutes(app)
	}

	go func() {
		log.Infof("Property Listings API listening on %s", cfg.Addr())
		if err := app.Listen(cfg.Addr()); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	log.Info("Shutting down...")
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		log.Errorf("shutdown: %v", err)
	}
	log.Info("Shutdown complete")
}

// logRoutes prints the registered endpoints
func logRoutes(app *fiber.App) {
	log.Info("Endpoints:")
	for _, route := range app.GetRoutes(true) {
		if route.Method == fiber.MethodHead {
			continue
		}
		log.Infof("%-7s %s", route.Method, route.Path)
	}
}
