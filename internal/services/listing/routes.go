package listing

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes registers the listing routes on the /api group
func (s *ListingService) SetupRoutes(api fiber.Router) {
	api.Get("/listings", s.GetListings)
	api.Post("/listings", s.CreateListing)
	api.Get("/listings/:id", s.GetListing)

	// Mock summary generation, see summary.CannedGenerator
	api.Post("/listings/:id/summary", s.GenerateSummary)
}
