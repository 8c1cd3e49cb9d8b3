// Package summary produces short highlights for a listing.
package summary

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/rajivgeraev/listings-api/internal/models"
)

// Generator produces summary lines for a listing. A real inference backend
// can replace CannedGenerator without touching the HTTP handlers.
type Generator interface {
	Generate(ctx context.Context, listing models.Listing) ([]string, error)
}

// cannedSummaries are the stand-in responses until a model backend is wired
var cannedSummaries = [][]string{
	{
		"Prime location with excellent walkability and transit access",
		"Modern amenities and updated fixtures throughout the property",
		"Competitive pricing for the local market and property type",
	},
	{
		"Spacious layout perfect for families or professionals",
		"Well-maintained property with recent renovations",
		"Great investment opportunity in a growing neighborhood",
	},
	{
		"Stunning views and premium finishes justify the price point",
		"Low maintenance lifestyle with community amenities included",
		"Excellent resale potential in this desirable area",
	},
}

// CannedGenerator picks one of the canned summaries uniformly at random
type CannedGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewCannedGenerator creates a CannedGenerator. A nil rnd seeds a new source
// from the current time.
func NewCannedGenerator(rnd *rand.Rand) *CannedGenerator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &CannedGenerator{rnd: rnd}
}

// Generate returns a copy of one canned summary
func (g *CannedGenerator) Generate(ctx context.Context, _ models.Listing) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	idx := g.rnd.Intn(len(cannedSummaries))
	g.mu.Unlock()

	lines := make([]string, len(cannedSummaries[idx]))
	copy(lines, cannedSummaries[idx])
	return lines, nil
}

// CannedSummaries returns copies of every canned summary
func CannedSummaries() [][]string {
	out := make([][]string, len(cannedSummaries))
	for i, lines := range cannedSummaries {
		out[i] = append([]string(nil), lines...)
	}
	return out
}
