package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/yvynation/zonepack/internal/core/domain"
	"github.com/yvynation/zonepack/internal/core/ports/driven"
	"github.com/yvynation/zonepack/internal/core/ports/driving"
	"github.com/yvynation/zonepack/internal/logger"
)

// Ensure RegionService implements the interface.
var _ driving.RegionService = (*RegionService)(nil)

// RegionService manages the session's region registry: drawn polygons,
// the active territory, and derived buffer rings.
type RegionService struct {
	session domain.SessionContext
	regions driven.RegionStore
	engine  driven.GeometryEngine
	now     func() time.Time
	newID   func() string
}

// NewRegionService creates a new region service for one session.
func NewRegionService(session domain.SessionContext, regions driven.RegionStore, engine driven.GeometryEngine) *RegionService {
	return &RegionService{
		session: session,
		regions: regions,
		engine:  engine,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// RegisterDrawn records a drawn polygon in draw order.
func (s *RegionService) RegisterDrawn(ctx context.Context, name string, geometry orb.Geometry) (*domain.Region, error) {
	if geometry == nil {
		return nil, domain.ErrInvalidInput
	}
	if name == "" {
		count, err := s.countKind(ctx, domain.KindDrawn)
		if err != nil {
			return nil, err
		}
		name = fmt.Sprintf("Drawn Polygon %d", count+1)
	}

	region := domain.Region{
		ID:        s.newID(),
		Kind:      domain.KindDrawn,
		Name:      name,
		Geometry:  geometry,
		CreatedAt: s.now(),
	}
	if err := s.regions.Add(ctx, region); err != nil {
		return nil, err
	}
	logger.Debug("Registered drawn region %q (%s)", region.Name, region.ID)
	return &region, nil
}

// SelectTerritory activates a territory, replacing any previous one.
// Artifacts of the replaced territory stay in the result store but are
// orphaned: exports only walk the registry.
func (s *RegionService) SelectTerritory(ctx context.Context, name string, geometry orb.Geometry) (*domain.Region, error) {
	if name == "" || geometry == nil {
		return nil, domain.ErrInvalidInput
	}

	if previous, err := s.regions.ActiveTerritory(ctx); err == nil {
		if err := s.regions.Remove(ctx, previous.ID); err != nil {
			return nil, fmt.Errorf("replace territory %q: %w", previous.Name, err)
		}
		logger.Info("Territory %q replaced by %q", previous.Name, name)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	region := domain.Region{
		ID:        s.newID(),
		Kind:      domain.KindTerritory,
		Name:      name,
		Geometry:  geometry,
		CreatedAt: s.now(),
	}
	if err := s.regions.Add(ctx, region); err != nil {
		return nil, err
	}
	return &region, nil
}

// CreateBuffer derives an external buffer ring from an existing region.
// The distance guard runs before any geometry operation, and no failure
// path leaves a partial region behind.
func (s *RegionService) CreateBuffer(ctx context.Context, sourceID string, distanceKm float64) (*domain.Region, error) {
	if distanceKm <= 0 {
		return nil, fmt.Errorf("%w: got %vkm", domain.ErrInvalidDistance, distanceKm)
	}

	source, err := s.regions.Get(ctx, sourceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRegionNotFound, sourceID)
		}
		return nil, err
	}

	logger.Section("Buffer Creation")
	logger.Debug("Source: %q, distance: %vkm", source.Name, distanceKm)

	ring, err := s.engine.Ring(ctx, source.Geometry, distanceKm)
	if err != nil {
		return nil, fmt.Errorf("buffer %q: %w", source.Name, err)
	}

	region := domain.Region{
		ID:               s.newID(),
		Kind:             domain.KindBuffer,
		Name:             domain.BufferName(distanceKm, source.DisplayName()),
		Geometry:         ring,
		SourceRegionID:   source.ID,
		BufferDistanceKm: distanceKm,
		CreatedAt:        s.now(),
	}
	if err := s.regions.Add(ctx, region); err != nil {
		return nil, err
	}
	logger.Info("Created %q", region.Name)
	return &region, nil
}

// List returns all regions in registration order.
func (s *RegionService) List(ctx context.Context) ([]domain.Region, error) {
	return s.regions.List(ctx)
}

func (s *RegionService) countKind(ctx context.Context, kind domain.RegionKind) (int, error) {
	regions, err := s.regions.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, region := range regions {
		if region.Kind == kind {
			count++
		}
	}
	return count, nil
}
