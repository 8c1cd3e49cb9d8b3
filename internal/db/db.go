package db

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rajivgeraev/listings-api/internal/models"
)

var (
	// ErrNotFound is returned when no listing has the requested id
	ErrNotFound = errors.New("listing not found")
	// ErrDuplicateID is returned when a listing with the same id is already stored
	ErrDuplicateID = errors.New("listing id already exists")
	// ErrEmptyID is returned when a listing without an id is passed to Create
	ErrEmptyID = errors.New("listing id is empty")
)

// Store keeps listings in memory, keyed by id. Listings are returned in the
// order they were inserted. A Store is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	listings map[string]models.Listing
	order    []string
}

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{
		listings: make(map[string]models.Listing),
	}
}

// Create stores a new listing. Ids are never reused, so a second Create with
// the same id fails and leaves the stored record untouched.
func (s *Store) Create(l models.Listing) (models.Listing, error) {
	if l.ID == "" {
		return models.Listing{}, ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.listings[l.ID]; exists {
		return models.Listing{}, fmt.Errorf("create %s: %w", l.ID, ErrDuplicateID)
	}

	s.listings[l.ID] = l
	s.order = append(s.order, l.ID)
	return l, nil
}

// Get returns the listing with the given id
func (s *Store) Get(id string) (models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.listings[id]
	if !ok {
		return models.Listing{}, ErrNotFound
	}
	return l, nil
}

// List returns all listings in insertion order
func (s *Store) List() []models.Listing {
	return s.filter(nil)
}

// Search returns the listings matching query in insertion order. An empty
// query matches every listing.
func (s *Store) Search(query string) []models.Listing {
	if query == "" {
		return s.List()
	}
	return s.filter(func(l models.Listing) bool {
		return l.Matches(query)
	})
}

// Count returns the number of stored listings
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listings)
}

// filter copies the listings accepted by keep. The result is never nil so it
// encodes as [] rather than null.
func (s *Store) filter(keep func(models.Listing) bool) []models.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Listing, 0, len(s.order))
	for _, id := range s.order {
		l := s.listings[id]
		if keep == nil || keep(l) {
			result = append(result, l)
		}
	}
	return result
}
