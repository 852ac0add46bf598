package driven

import (
	"context"

	"github.com/paulmach/orb"
)

// GeometryEngine performs the geodesic ring construction behind external
// buffers. Implementations may compute locally or delegate to a remote
// geo-computation backend, so calls take a context and may block.
type GeometryEngine interface {
	// Ring repairs the source geometry if needed, dilates it by the
	// given distance using true great-circle geometry, and returns the
	// donut-shaped ring strictly outside the source boundary
	// (dilated minus source).
	//
	// The distance precondition (> 0) is the caller's responsibility;
	// engines may assume a positive distance. Failures to produce a
	// valid ring wrap domain.ErrGeometryOperation.
	Ring(ctx context.Context, source orb.Geometry, distanceKm float64) (orb.Geometry, error)
}
