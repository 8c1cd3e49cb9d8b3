package listing

import (
	"github.com/rajivgeraev/listings-api/internal/models"
)

// Store is the listing storage used by ListingService
type Store interface {
	Create(l models.Listing) (models.Listing, error)
	Get(id string) (models.Listing, error)
	Search(query string) []models.Listing
}
