package driven

import (
	"context"

	"github.com/paulmach/orb"

	"github.com/yvynation/zonepack/internal/core/domain"
)

// AnalyticsBackend is the boundary to the Earth-observation backend that
// computes raster class histograms server-side. The raster analytics
// themselves are outside this system; only the histogram contract is
// consumed here.
type AnalyticsBackend interface {
	// ClassHistogram returns pixel counts per land-cover class id for
	// the geometry, dataset and year key. Comparison year keys select a
	// change histogram (e.g. loss between the two years).
	ClassHistogram(ctx context.Context, geometry orb.Geometry, dataset string, years domain.YearKey) (map[int]int64, error)
}
