package driving

import (
	"context"

	"github.com/yvynation/zonepack/internal/core/domain"
)

// ResultService captures analysis artifacts produced against regions.
type ResultService interface {
	// Record upserts the artifact for (region, analysis kind, year key).
	// A repeat write with the same key overwrites the previous artifact.
	Record(ctx context.Context, regionID string, key domain.ArtifactKey, table domain.Table, figures []domain.Figure) error

	// ForRegion returns the artifacts recorded for one region.
	ForRegion(ctx context.Context, regionID string) (map[domain.ArtifactKey]domain.Artifact, error)
}
