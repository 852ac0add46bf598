package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yvynation/zonepack/internal/core/domain"
	"github.com/yvynation/zonepack/internal/core/ports/driven"
	"github.com/yvynation/zonepack/internal/core/ports/driving"
	"github.com/yvynation/zonepack/internal/logger"
)

// Ensure ResultService implements the interface.
var _ driving.ResultService = (*ResultService)(nil)

// ResultService captures analysis artifacts against registered regions.
type ResultService struct {
	regions driven.RegionStore
	results driven.ResultStore
}

// NewResultService creates a new result service for one session.
func NewResultService(regions driven.RegionStore, results driven.ResultStore) *ResultService {
	return &ResultService{
		regions: regions,
		results: results,
	}
}

// Record upserts the artifact for (region, analysis kind, year key).
func (s *ResultService) Record(ctx context.Context, regionID string, key domain.ArtifactKey, table domain.Table, figures []domain.Figure) error {
	if key.AnalysisKind == "" || key.Years.Start == 0 {
		return domain.ErrInvalidInput
	}
	if _, err := s.regions.Get(ctx, regionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: %s", domain.ErrRegionNotFound, regionID)
		}
		return err
	}

	artifact := domain.Artifact{
		RegionID: regionID,
		Key:      key,
		Table:    table,
		Figures:  figures,
	}
	if err := s.results.Put(ctx, artifact); err != nil {
		return err
	}
	logger.Debug("Recorded %s %s for region %s (%d rows, %d figures)",
		key.AnalysisKind, key.Years, regionID, len(table), len(figures))
	return nil
}

// ForRegion returns the artifacts recorded for one region.
func (s *ResultService) ForRegion(ctx context.Context, regionID string) (map[domain.ArtifactKey]domain.Artifact, error) {
	return s.results.ForRegion(ctx, regionID)
}
