package summary

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajivgeraev/listings-api/internal/models"
)

func TestCannedGeneratorReturnsCannedSet(t *testing.T) {
	g := NewCannedGenerator(nil)

	for i := 0; i < 50; i++ {
		lines, err := g.Generate(context.Background(), models.Listing{ID: "x"})
		require.NoError(t, err)
		require.Len(t, lines, 3)
		assert.Contains(t, CannedSummaries(), lines)
	}
}

func TestCannedGeneratorIsDeterministicWithSeed(t *testing.T) {
	a := NewCannedGenerator(rand.New(rand.NewSource(42)))
	b := NewCannedGenerator(rand.New(rand.NewSource(42)))

	for i := 0; i < 10; i++ {
		la, err := a.Generate(context.Background(), models.Listing{})
		require.NoError(t, err)
		lb, err := b.Generate(context.Background(), models.Listing{})
		require.NoError(t, err)
		assert.Equal(t, la, lb)
	}
}

func TestCannedGeneratorCoversAllSets(t *testing.T) {
	g := NewCannedGenerator(rand.New(rand.NewSource(7)))
	seen := map[string]bool{}

	for i := 0; i < 200; i++ {
		lines, err := g.Generate(context.Background(), models.Listing{})
		require.NoError(t, err)
		seen[lines[0]] = true
	}
	assert.Len(t, seen, len(cannedSummaries))
}

func TestCannedGeneratorResultIsACopy(t *testing.T) {
	g := NewCannedGenerator(rand.New(rand.NewSource(1)))

	lines, err := g.Generate(context.Background(), models.Listing{})
	require.NoError(t, err)
	lines[0] = "tampered"

	for _, set := range cannedSummaries {
		assert.NotEqual(t, "tampered", set[0])
	}
}

func TestCannedGeneratorHonoursCancelledContext(t *testing.T) {
	g := NewCannedGenerator(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx, models.Listing{})
	assert.ErrorIs(t, err, context.Canceled)
}
