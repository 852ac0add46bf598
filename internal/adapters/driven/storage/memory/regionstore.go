package memory

import (
	"context"
	"sync"

	"github.com/yvynation/zonepack/internal/core/domain"
	"github.com/yvynation/zonepack/internal/core/ports/driven"
)

// Ensure RegionStore implements the interface.
var _ driven.RegionStore = (*RegionStore)(nil)

// RegionStore is an in-memory implementation of driven.RegionStore.
// Registration order is preserved; removed ids are never reused because
// ids are assigned by the caller from a UUID source.
type RegionStore struct {
	mu      sync.RWMutex
	regions map[string]domain.Region
	order   []string
}

// NewRegionStore creates a new in-memory region store.
func NewRegionStore() *RegionStore {
	return &RegionStore{
		regions: make(map[string]domain.Region),
	}
}

// Add registers a region, preserving registration order.
func (s *RegionStore) Add(_ context.Context, region domain.Region) error {
	if region.ID == "" || !region.Kind.Valid() {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.regions[region.ID]; !ok {
		s.order = append(s.order, region.ID)
	}
	s.regions[region.ID] = region
	return nil
}

// Get retrieves a region by id.
func (s *RegionStore) Get(_ context.Context, id string) (*domain.Region, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	region, ok := s.regions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &region, nil
}

// Remove deregisters a region by id.
func (s *RegionStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.regions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.regions, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns all regions in registration order.
func (s *RegionStore) List(_ context.Context) ([]domain.Region, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Region, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.regions[id])
	}
	return result, nil
}

// ActiveTerritory returns the territory region, if one is active.
func (s *RegionStore) ActiveTerritory(_ context.Context) (*domain.Region, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		region := s.regions[id]
		if region.Kind == domain.KindTerritory {
			return &region, nil
		}
	}
	return nil, domain.ErrNotFound
}
