package driven

import (
	"context"

	"github.com/yvynation/zonepack/internal/core/domain"
)

// ResultStore captures analysis artifacts per (region, analysis kind,
// year key). Writes with the same key overwrite in place, so repeated
// analysis of the same region and year never grows memory unboundedly.
type ResultStore interface {
	// Put upserts an artifact under its key.
	Put(ctx context.Context, artifact domain.Artifact) error

	// ForRegion returns all artifacts recorded for a region, keyed by
	// (analysis kind, year key). Empty map when none exist.
	ForRegion(ctx context.Context, regionID string) (map[domain.ArtifactKey]domain.Artifact, error)

	// All returns every recorded artifact grouped by region id.
	All(ctx context.Context) (map[string]map[domain.ArtifactKey]domain.Artifact, error)
}
