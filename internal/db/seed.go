package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rajivgeraev/listings-api/internal/models"
)

// sampleListings are loaded on startup so the API has data to show
var sampleListings = []models.Listing{
	{
		Title:       "Modern Downtown Apartment",
		Price:       350000,
		Location:    "Downtown Seattle, WA",
		Description: "Beautiful 2-bedroom apartment with city views, modern amenities, and walking distance to shops and restaurants.",
	},
	{
		Title:       "Cozy Suburban House",
		Price:       480000,
		Location:    "Bellevue, WA",
		Description: "Charming 3-bedroom house with large backyard, perfect for families. Updated kitchen and bathrooms.",
	},
	{
		Title:       "Luxury Waterfront Condo",
		Price:       750000,
		Location:    "Lake Washington, WA",
		Description: "Stunning waterfront condominium with panoramic lake views, high-end finishes, and resort-style amenities.",
	},
}

// SeedSampleListings inserts the three sample listings with fresh ids
func SeedSampleListings(s *Store, now time.Time) error {
	for _, sample := range sampleListings {
		l := sample
		l.ID = uuid.NewString()
		l.CreatedAt = now

		if _, err := s.Create(l); err != nil {
			return fmt.Errorf("seed %q: %w", l.Title, err)
		}
	}
	return nil
}
