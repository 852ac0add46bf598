package zipexport

import (
	"encoding/json"

	"github.com/paulmach/orb/geojson"

	"github.com/yvynation/zonepack/internal/core/domain"
)

// encodeGeometries renders all session regions as one WGS84
// FeatureCollection, in registration order. Buffer features carry their
// derivation in the properties.
func encodeGeometries(regions []domain.RegionArtifacts) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, ra := range regions {
		region := ra.Region

		feature := geojson.NewFeature(region.Geometry)
		feature.Properties = geojson.Properties{
			"name": region.Name,
			"kind": string(region.Kind),
		}
		if region.Kind == domain.KindBuffer {
			feature.Properties["buffer_distance_km"] = region.BufferDistanceKm
			feature.Properties["source_region"] = region.SourceRegionID
		}
		fc.Append(feature)
	}

	return json.MarshalIndent(fc, "", "  ")
}
