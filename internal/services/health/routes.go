package health

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes registers the health check on the /api group
func (s *HealthService) SetupRoutes(api fiber.Router) {
	api.Get("/health", s.Check)
}
