// Package geodesic implements ring construction on the sphere, without
// delegating to a remote geometry backend. Dilation offsets the source
// boundary along great-circle bearings, so the buffer distance is a true
// geodesic distance rather than a planar approximation.
package geodesic

import (
	"context"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/yvynation/zonepack/internal/core/domain"
	"github.com/yvynation/zonepack/internal/core/ports/driven"
)

// Ensure Engine implements the interface.
var _ driven.GeometryEngine = (*Engine)(nil)

const (
	// arcStepDeg is the bearing increment used to fill the circular arc
	// at convex vertices of the offset curve.
	arcStepDeg = 12.0

	// densifyMeters is the maximum segment length before intermediate
	// points are inserted, keeping the offset curve faithful on long
	// edges.
	densifyMeters = 25000.0
)

// Engine is the local implementation of driven.GeometryEngine.
// It is pure: identical inputs always yield an identical ring.
type Engine struct{}

// New creates a new local geodesic engine.
func New() *Engine {
	return &Engine{}
}

// Ring builds the external buffer ring for the source geometry: the
// source is repaired, dilated by distanceKm along great-circle bearings,
// and the source itself is subtracted. By construction the ring does not
// overlap the source and ring plus source cover the dilated area.
//
// The subtraction covers both sides of the source boundary: the zone
// outside the exterior carries the source exterior as a hole, and each
// interior hole of the source contributes its own band polygon (the part
// of the hole cavity within distanceKm of the hole boundary; the whole
// cavity when it is narrower than twice the distance).
func (e *Engine) Ring(_ context.Context, source orb.Geometry, distanceKm float64) (orb.Geometry, error) {
	polygons, err := repair(source)
	if err != nil {
		return nil, err
	}

	distanceM := distanceKm * 1000

	var rings orb.MultiPolygon
	for _, polygon := range polygons {
		exterior := densify(polygon[0])
		offset := offsetRing(exterior, distanceM)

		hole := make(orb.Ring, len(polygon[0]))
		copy(hole, polygon[0])
		hole.Reverse()

		rings = append(rings, orb.Polygon{offset, hole})

		for _, interior := range polygon[1:] {
			rings = append(rings, holeBand(interior, distanceM))
		}
	}

	if len(rings) == 1 {
		return rings[0], nil
	}
	return rings, nil
}

// holeBand returns the ring area inside one interior hole of the source:
// the strip of the cavity within distanceM of the hole boundary. The
// interior ring arrives clockwise from repair.
func holeBand(interior orb.Ring, distanceM float64) orb.Polygon {
	boundary := make(orb.Ring, len(interior))
	copy(boundary, interior)
	boundary.Reverse()

	inner := offsetRingInward(densify(interior), distanceM)
	if inner.Orientation() != orb.CW {
		// The inward offset collapsed: the cavity is narrower than
		// twice the distance, so all of it belongs to the ring.
		return orb.Polygon{boundary}
	}
	return orb.Polygon{boundary, inner}
}

// repair normalizes the source into valid polygons: closed rings with
// consecutive duplicates removed, exteriors wound counter-clockwise and
// holes clockwise (RFC 7946). Inputs the repair cannot make valid fail
// with domain.ErrGeometryOperation.
func repair(source orb.Geometry) (orb.MultiPolygon, error) {
	var polygons orb.MultiPolygon
	switch g := source.(type) {
	case orb.Polygon:
		polygons = orb.MultiPolygon{g}
	case orb.MultiPolygon:
		polygons = g
	case orb.Ring:
		polygons = orb.MultiPolygon{{g}}
	default:
		return nil, fmt.Errorf("%w: unsupported geometry type %s", domain.ErrGeometryOperation, source.GeoJSONType())
	}
	if len(polygons) == 0 {
		return nil, fmt.Errorf("%w: empty geometry", domain.ErrGeometryOperation)
	}

	repaired := make(orb.MultiPolygon, 0, len(polygons))
	for _, polygon := range polygons {
		if len(polygon) == 0 {
			return nil, fmt.Errorf("%w: polygon without rings", domain.ErrGeometryOperation)
		}
		fixed := make(orb.Polygon, 0, len(polygon))
		for i, ring := range polygon {
			clean, err := repairRing(ring)
			if err != nil {
				return nil, err
			}
			exterior := i == 0
			if exterior && clean.Orientation() == orb.CW {
				clean.Reverse()
			}
			if !exterior && clean.Orientation() == orb.CCW {
				clean.Reverse()
			}
			fixed = append(fixed, clean)
		}
		repaired = append(repaired, fixed)
	}
	return repaired, nil
}

func repairRing(ring orb.Ring) (orb.Ring, error) {
	clean := make(orb.Ring, 0, len(ring))
	for _, point := range ring {
		if len(clean) > 0 && clean[len(clean)-1] == point {
			continue
		}
		clean = append(clean, point)
	}
	// Close the ring, dropping a duplicated closing point first.
	if len(clean) > 1 && clean[0] == clean[len(clean)-1] {
		clean = clean[:len(clean)-1]
	}
	if len(clean) < 3 {
		return nil, fmt.Errorf("%w: degenerate ring with %d distinct points", domain.ErrGeometryOperation, len(clean))
	}
	clean = append(clean, clean[0])
	return clean, nil
}

// densify inserts intermediate points on segments longer than
// densifyMeters so the offset follows long edges closely.
func densify(ring orb.Ring) orb.Ring {
	out := make(orb.Ring, 0, len(ring))
	for i := 0; i < len(ring)-1; i++ {
		a, b := ring[i], ring[i+1]
		out = append(out, a)
		length := geo.Distance(a, b)
		if length <= densifyMeters {
			continue
		}
		steps := int(math.Ceil(length / densifyMeters))
		for s := 1; s < steps; s++ {
			f := float64(s) / float64(steps)
			out = append(out, orb.Point{
				a[0] + (b[0]-a[0])*f,
				a[1] + (b[1]-a[1])*f,
			})
		}
	}
	out = append(out, out[0])
	return out
}

// offsetRing walks the exterior ring and emits the outward offset curve
// at the given distance. For a counter-clockwise ring the outward normal
// is 90 degrees right of the direction of travel; convex corners are
// filled with great-circle arcs at arcStepDeg resolution.
//
// Corner treatment is approximate: at concave vertices the two adjacent
// offset segments cross each other locally instead of being clipped, so
// the emitted ring can self-touch within roughly one offset distance of
// such a vertex. Containment over the ring area is unaffected outside
// that corner tolerance.
func offsetRing(ring orb.Ring, distanceM float64) orb.Ring {
	n := len(ring) - 1 // closing point excluded
	var out orb.Ring
	for i := 0; i < n; i++ {
		prev := ring[(i-1+n)%n]
		curr := ring[i]
		next := ring[(i+1)%n]

		bearingIn := norm360(geo.Bearing(prev, curr) + 90)
		bearingOut := norm360(geo.Bearing(curr, next) + 90)

		out = append(out, geo.PointAtBearingAndDistance(curr, bearingIn, distanceM))

		// Clockwise sweep from the incoming to the outgoing normal.
		sweep := norm360(bearingOut - bearingIn)
		if sweep > 0 && sweep < 180 {
			for a := arcStepDeg; a < sweep; a += arcStepDeg {
				out = append(out, geo.PointAtBearingAndDistance(curr, norm360(bearingIn+a), distanceM))
			}
		}

		out = append(out, geo.PointAtBearingAndDistance(curr, bearingOut, distanceM))
	}
	out = append(out, out[0])
	if out.Orientation() == orb.CW {
		out.Reverse()
	}
	return out
}

// offsetRingInward walks a clockwise hole boundary and emits the curve
// offset into the cavity. Corners turning into the cavity are mitered,
// with the miter length capped at twice the distance so near-degenerate
// corners stay bounded. A collapsed cavity flips the result's winding,
// which callers use to detect that the whole cavity is covered.
func offsetRingInward(ring orb.Ring, distanceM float64) orb.Ring {
	n := len(ring) - 1
	var out orb.Ring
	for i := 0; i < n; i++ {
		prev := ring[(i-1+n)%n]
		curr := ring[i]
		next := ring[(i+1)%n]

		bearingIn := norm360(geo.Bearing(prev, curr) + 90)
		bearingOut := norm360(geo.Bearing(curr, next) + 90)

		sweep := norm360(bearingOut - bearingIn)
		if sweep > 0 && sweep < 180 {
			miter := distanceM / math.Cos(sweep/2*math.Pi/180)
			if limit := 2 * distanceM; miter > limit || miter < 0 {
				miter = limit
			}
			out = append(out, geo.PointAtBearingAndDistance(curr, norm360(bearingIn+sweep/2), miter))
			continue
		}

		out = append(out, geo.PointAtBearingAndDistance(curr, bearingIn, distanceM))
		out = append(out, geo.PointAtBearingAndDistance(curr, bearingOut, distanceM))
	}
	out = append(out, out[0])
	return out
}

func norm360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
