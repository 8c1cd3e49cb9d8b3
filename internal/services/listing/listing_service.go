package listing

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/log"
	"github.com/google/uuid"

	"github.com/rajivgeraev/listings-api/internal/db"
	"github.com/rajivgeraev/listings-api/internal/models"
	"github.com/rajivgeraev/listings-api/internal/summary"
)

// ListingService serves the listing endpoints
type ListingService struct {
	store     Store
	generator summary.Generator
	now       func() time.Time
}

// NewListingService creates a ListingService backed by the given store and
// summary generator
func NewListingService(store Store, generator summary.Generator) *ListingService {
	return &ListingService{
		store:     store,
		generator: generator,
		now:       time.Now,
	}
}

// GetListings returns all listings, or only those matching ?search=
func (s *ListingService) GetListings(c fiber.Ctx) error {
	listings := s.store.Search(c.Query("search"))
	return c.JSON(listings)
}

// CreateListing validates the payload and stores a new listing
func (s *ListingService) CreateListing(c fiber.Ctx) error {
	var payload map[string]any
	if err := c.Bind().Body(&payload); err != nil {
		log.Debugf("decode create listing body: %v", err)
		return models.NewValidationError("Invalid JSON body")
	}

	input, err := parseCreateListing(payload)
	if err != nil {
		return err
	}

	listing, err := s.store.Create(models.Listing{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Price:       input.Price,
		Location:    input.Location,
		Description: input.Description,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return fmt.Errorf("store listing: %w", err)
	}

	log.Infof("listing %s created: %q", listing.ID, listing.Title)
	return c.Status(fiber.StatusCreated).JSON(listing)
}

// GetListing returns a single listing by id
func (s *ListingService) GetListing(c fiber.Ctx) error {
	listing, err := s.lookup(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(listing)
}

// GenerateSummary returns generated highlights for a listing
func (s *ListingService) GenerateSummary(c fiber.Ctx) error {
	listing, err := s.lookup(c.Params("id"))
	if err != nil {
		return err
	}

	lines, err := s.generator.Generate(c.Context(), listing)
	if err != nil {
		return fmt.Errorf("generate summary for %s: %w", listing.ID, err)
	}

	return c.JSON(models.Summary{
		ListingID:   listing.ID,
		Summary:     lines,
		GeneratedAt: s.now(),
	})
}

func (s *ListingService) lookup(id string) (models.Listing, error) {
	listing, err := s.store.Get(id)
	if errors.Is(err, db.ErrNotFound) {
		return models.Listing{}, models.ErrListingNotFound
	}
	if err != nil {
		return models.Listing{}, fmt.Errorf("get listing %s: %w", id, err)
	}
	return listing, nil
}
