package domain

import (
	"strconv"
	"time"

	"github.com/paulmach/orb"
)

// RegionKind classifies how a region entered the session.
type RegionKind string

const (
	// KindDrawn is a polygon drawn by hand on the map.
	KindDrawn RegionKind = "drawn"

	// KindTerritory is a named indigenous territory selected from the
	// reference dataset. At most one territory is active per session.
	KindTerritory RegionKind = "territory"

	// KindBuffer is a ring zone derived from another region by geodesic
	// dilation. Buffers are selectable for analysis exactly like drawn
	// polygons.
	KindBuffer RegionKind = "buffer"
)

// Valid reports whether the kind is one of the known variants.
func (k RegionKind) Valid() bool {
	switch k {
	case KindDrawn, KindTerritory, KindBuffer:
		return true
	}
	return false
}

// Region represents one analyzable area within a session.
// It is the tagged-union replacement for the property-flag dictionaries
// the original session state carried.
type Region struct {
	// ID is the unique identifier, assigned at registration and never
	// reused within a session.
	ID string

	// Kind tags the variant: drawn, territory, or buffer.
	Kind RegionKind

	// Name is the display string. May contain spaces, slashes and
	// non-ASCII characters; it is sanitized only at archive time.
	Name string

	// Geometry is a polygon or multipolygon in WGS84 (lon, lat).
	Geometry orb.Geometry

	// SourceRegionID links a buffer back to the region it was derived
	// from. Empty for drawn and territory regions.
	SourceRegionID string

	// BufferDistanceKm is the dilation distance. Zero for drawn and
	// territory regions.
	BufferDistanceKm float64

	// CreatedAt is when the region was registered.
	CreatedAt time.Time
}

// DisplayName returns the region name, falling back to the id when the
// name is empty.
func (r *Region) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

// Analyzable reports whether the region belongs in the polygons bucket
// of an export. Buffers behave like drawn polygons downstream; only the
// active territory is packaged separately.
func (r *Region) Analyzable() bool {
	return r.Kind == KindDrawn || r.Kind == KindBuffer
}

// BufferName builds the display name for a buffer derived from the named
// source at the given distance, e.g. "External Buffer 5km - Yanomami
// Territory". The distance is formatted with the fewest digits that
// round-trip (5 -> "5", 2.5 -> "2.5").
func BufferName(distanceKm float64, sourceName string) string {
	return "External Buffer " + strconv.FormatFloat(distanceKm, 'f', -1, 64) + "km - " + sourceName
}
