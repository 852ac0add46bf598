package driving

import (
	"context"

	"github.com/yvynation/zonepack/internal/core/domain"
)

// AnalysisService runs a land-cover analysis for a region and records
// the resulting artifact.
type AnalysisService interface {
	// Analyze fetches the class histogram for (region, dataset, years),
	// converts it to an area table and records the artifact. Rerunning
	// with the same key replaces the previous artifact.
	Analyze(ctx context.Context, regionID, dataset string, years domain.YearKey) (*domain.Artifact, error)
}
