package services

import (
	"context"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yvynation/zonepack/internal/adapters/driven/storage/memory"
	"github.com/yvynation/zonepack/internal/core/domain"
)

// stubBackend serves a fixed histogram and records the requested key.
type stubBackend struct {
	histogram map[int]int64
	err       error
	dataset   string
	years     domain.YearKey
}

func (b *stubBackend) ClassHistogram(_ context.Context, _ orb.Geometry, dataset string, years domain.YearKey) (map[int]int64, error) {
	b.dataset = dataset
	b.years = years
	if b.err != nil {
		return nil, b.err
	}
	return b.histogram, nil
}

func TestAnalysisService_Analyze(t *testing.T) {
	regions := memory.NewRegionStore()
	results := NewResultService(regions, memory.NewResultStore())
	backend := &stubBackend{histogram: map[int]int64{3: 9000, 15: 1000}}
	service := NewAnalysisService(regions, results, backend)
	ctx := context.Background()

	regionService := NewRegionService(testSession(), regions, geodesicStub())
	drawn, err := regionService.RegisterDrawn(ctx, "", testGeometry())
	require.NoError(t, err)

	artifact, err := service.Analyze(ctx, drawn.ID, "mapbiomas", domain.Year(2023))
	require.NoError(t, err)

	assert.Equal(t, "mapbiomas", backend.dataset)
	assert.Equal(t, domain.Year(2023), backend.years)
	require.Len(t, artifact.Table, 2)
	assert.Equal(t, "Forest Formation", artifact.Table[0].ClassName)
	assert.InDelta(t, 810.0, artifact.Table[0].AreaHa, 1e-9)
	assert.InDelta(t, 90.0, artifact.Table[0].Percentage, 1e-9)

	recorded, err := results.ForRegion(ctx, drawn.ID)
	require.NoError(t, err)
	assert.Len(t, recorded, 1)
}

func TestAnalysisService_Analyze_UnknownRegion(t *testing.T) {
	regions := memory.NewRegionStore()
	results := NewResultService(regions, memory.NewResultStore())
	service := NewAnalysisService(regions, results, &stubBackend{})

	_, err := service.Analyze(context.Background(), "missing", "mapbiomas", domain.Year(2023))
	assert.ErrorIs(t, err, domain.ErrRegionNotFound)
}

func TestAnalysisService_Analyze_BackendFailure(t *testing.T) {
	regions := memory.NewRegionStore()
	results := memory.NewResultStore()
	backend := &stubBackend{err: domain.ErrNotFound}
	service := NewAnalysisService(regions, NewResultService(regions, results), backend)
	ctx := context.Background()

	regionService := NewRegionService(testSession(), regions, geodesicStub())
	drawn, err := regionService.RegisterDrawn(ctx, "", testGeometry())
	require.NoError(t, err)

	_, err = service.Analyze(ctx, drawn.ID, "mapbiomas", domain.Year(2023))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Nothing is recorded on failure.
	recorded, err := results.ForRegion(ctx, drawn.ID)
	require.NoError(t, err)
	assert.Empty(t, recorded)
}

func TestAnalysisService_Analyze_InvalidInput(t *testing.T) {
	regions := memory.NewRegionStore()
	service := NewAnalysisService(regions, NewResultService(regions, memory.NewResultStore()), &stubBackend{})

	_, err := service.Analyze(context.Background(), "id", "", domain.Year(2023))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = service.Analyze(context.Background(), "id", "mapbiomas", domain.YearKey{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
