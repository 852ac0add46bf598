package driving

import (
	"context"

	"github.com/paulmach/orb"

	"github.com/yvynation/zonepack/internal/core/domain"
)

// RegionService manages the session's analyzable regions: hand-drawn
// polygons, the active territory, and derived buffer rings.
type RegionService interface {
	// RegisterDrawn records a drawn polygon in draw order. An empty
	// name defaults to "Drawn Polygon {n}".
	RegisterDrawn(ctx context.Context, name string, geometry orb.Geometry) (*domain.Region, error)

	// SelectTerritory activates a named territory, replacing any
	// previously active one. The replaced territory's artifacts become
	// orphaned and are excluded from future exports.
	SelectTerritory(ctx context.Context, name string, geometry orb.Geometry) (*domain.Region, error)

	// CreateBuffer derives an external buffer ring from an existing
	// region. Fails with domain.ErrInvalidDistance before any geometry
	// operation when distanceKm <= 0, with domain.ErrRegionNotFound for
	// an unknown source, and propagates engine failures; the registry is
	// left unmodified on every failure path.
	CreateBuffer(ctx context.Context, sourceID string, distanceKm float64) (*domain.Region, error)

	// List returns all regions in registration order.
	List(ctx context.Context) ([]domain.Region, error)
}
