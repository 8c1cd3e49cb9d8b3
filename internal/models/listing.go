package models

import (
	"strings"
	"time"
)

// Listing represents a property listing
type Listing struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Matches reports whether query occurs in the title, location or description
// of the listing. The comparison is case-insensitive.
func (l Listing) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(l.Title), q) ||
		strings.Contains(strings.ToLower(l.Location), q) ||
		strings.Contains(strings.ToLower(l.Description), q)
}

// Summary is the response of the summary generation endpoint
type Summary struct {
	ListingID   string    `json:"listing_id"`
	Summary     []string  `json:"summary"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Health is the response of the health check endpoint
type Health struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	ListingsCount int       `json:"listings_count"`
}
