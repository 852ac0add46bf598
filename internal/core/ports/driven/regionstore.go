package driven

import (
	"context"

	"github.com/yvynation/zonepack/internal/core/domain"
)

// RegionStore is the registry of every analyzable region in a session.
// Purely in-memory; regions live only for the session's duration.
type RegionStore interface {
	// Add registers a region, preserving registration order.
	Add(ctx context.Context, region domain.Region) error

	// Get retrieves a region by id.
	Get(ctx context.Context, id string) (*domain.Region, error)

	// Remove deregisters a region by id.
	Remove(ctx context.Context, id string) error

	// List returns all regions in registration order.
	List(ctx context.Context) ([]domain.Region, error)

	// ActiveTerritory returns the territory region, or domain.ErrNotFound
	// when no territory is active.
	ActiveTerritory(ctx context.Context) (*domain.Region, error)
}
