package memory

import (
	"context"
	"sync"

	"github.com/yvynation/zonepack/internal/core/domain"
	"github.com/yvynation/zonepack/internal/core/ports/driven"
)

// Ensure ResultStore implements the interface.
var _ driven.ResultStore = (*ResultStore)(nil)

// ResultStore is an in-memory implementation of driven.ResultStore.
// Bounded by the number of distinct (region, analysis kind, year key)
// tuples actually produced: a repeat write replaces, never appends.
type ResultStore struct {
	mu        sync.RWMutex
	artifacts map[string]map[domain.ArtifactKey]domain.Artifact
}

// NewResultStore creates a new in-memory result store.
func NewResultStore() *ResultStore {
	return &ResultStore{
		artifacts: make(map[string]map[domain.ArtifactKey]domain.Artifact),
	}
}

// Put upserts an artifact under its key.
func (s *ResultStore) Put(_ context.Context, artifact domain.Artifact) error {
	if artifact.RegionID == "" || artifact.Key.AnalysisKind == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	byKey, ok := s.artifacts[artifact.RegionID]
	if !ok {
		byKey = make(map[domain.ArtifactKey]domain.Artifact)
		s.artifacts[artifact.RegionID] = byKey
	}
	byKey[artifact.Key] = artifact
	return nil
}

// ForRegion returns all artifacts recorded for a region.
func (s *ResultStore) ForRegion(_ context.Context, regionID string) (map[domain.ArtifactKey]domain.Artifact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make(map[domain.ArtifactKey]domain.Artifact, len(s.artifacts[regionID]))
	for key, artifact := range s.artifacts[regionID] {
		result[key] = artifact
	}
	return result, nil
}

// All returns every recorded artifact grouped by region id.
func (s *ResultStore) All(_ context.Context) (map[string]map[domain.ArtifactKey]domain.Artifact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make(map[string]map[domain.ArtifactKey]domain.Artifact, len(s.artifacts))
	for regionID, byKey := range s.artifacts {
		inner := make(map[domain.ArtifactKey]domain.Artifact, len(byKey))
		for key, artifact := range byKey {
			inner[key] = artifact
		}
		result[regionID] = inner
	}
	return result, nil
}
