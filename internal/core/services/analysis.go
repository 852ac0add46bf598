package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yvynation/zonepack/internal/classify"
	"github.com/yvynation/zonepack/internal/core/domain"
	"github.com/yvynation/zonepack/internal/core/ports/driven"
	"github.com/yvynation/zonepack/internal/core/ports/driving"
	"github.com/yvynation/zonepack/internal/logger"
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// AnalysisService turns backend class histograms into recorded artifacts.
type AnalysisService struct {
	regions driven.RegionStore
	results driving.ResultService
	backend driven.AnalyticsBackend
}

// NewAnalysisService creates a new analysis service for one session.
func NewAnalysisService(regions driven.RegionStore, results driving.ResultService, backend driven.AnalyticsBackend) *AnalysisService {
	return &AnalysisService{
		regions: regions,
		results: results,
		backend: backend,
	}
}

// Analyze fetches the histogram, converts pixel counts to hectares and
// class labels, and records the artifact against the region.
func (s *AnalysisService) Analyze(ctx context.Context, regionID, dataset string, years domain.YearKey) (*domain.Artifact, error) {
	if dataset == "" || years.Start == 0 {
		return nil, domain.ErrInvalidInput
	}

	region, err := s.regions.Get(ctx, regionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRegionNotFound, regionID)
		}
		return nil, err
	}

	logger.Section("Analysis")
	logger.Debug("Region %q, dataset %s, years %s", region.Name, dataset, years)

	histogram, err := s.backend.ClassHistogram(ctx, region.Geometry, dataset, years)
	if err != nil {
		return nil, fmt.Errorf("histogram %s %s for %q: %w", dataset, years, region.Name, err)
	}

	table := classify.FromHistogram(dataset, histogram)
	key := domain.ArtifactKey{AnalysisKind: dataset, Years: years}
	if err := s.results.Record(ctx, region.ID, key, table, nil); err != nil {
		return nil, err
	}

	logger.Info("Analyzed %q: %s %s, %d classes", region.Name, dataset, years, len(table))
	return &domain.Artifact{RegionID: region.ID, Key: key, Table: table}, nil
}
