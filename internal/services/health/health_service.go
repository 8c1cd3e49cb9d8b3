package health

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/listings-api/internal/models"
)

// Counter reports how many listings are stored
type Counter interface {
	Count() int
}

// HealthService serves the health check
type HealthService struct {
	counter Counter
	now     func() time.Time
}

// NewHealthService creates a HealthService
func NewHealthService(counter Counter) *HealthService {
	return &HealthService{counter: counter, now: time.Now}
}

// Check always reports healthy along with the current listing count
func (s *HealthService) Check(c fiber.Ctx) error {
	return c.JSON(models.Health{
		Status:        "healthy",
		Timestamp:     s.now(),
		ListingsCount: s.counter.Count(),
	})
}
