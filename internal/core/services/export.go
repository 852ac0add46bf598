package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/yvynation/zonepack/internal/core/domain"
	"github.com/yvynation/zonepack/internal/core/ports/driven"
	"github.com/yvynation/zonepack/internal/core/ports/driving"
	"github.com/yvynation/zonepack/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// defaultExportName names the archive when no territory is active.
const defaultExportName = "analysis"

// ExportService packages the session into one downloadable archive.
type ExportService struct {
	session domain.SessionContext
	regions driven.RegionStore
	results driven.ResultStore
	archive driven.ArchiveWriter
	now     func() time.Time
}

// NewExportService creates a new export service for one session.
func NewExportService(session domain.SessionContext, regions driven.RegionStore, results driven.ResultStore, archive driven.ArchiveWriter) *ExportService {
	return &ExportService{
		session: session,
		regions: regions,
		results: results,
		archive: archive,
		now:     time.Now,
	}
}

// Export snapshots the registry and result store and builds the archive.
// The snapshot is read-only: registry and store survive failures and the
// caller may retry.
func (s *ExportService) Export(ctx context.Context) (*driving.Export, error) {
	logger.Section("Export")

	regions, err := s.regions.List(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := s.now().UTC().Truncate(time.Second)
	bundle := domain.ExportBundle{
		Metadata: domain.SessionMetadata{
			ExportTimestamp: timestamp,
			RegionCount:     len(regions),
		},
	}

	territoryName := defaultExportName
	kinds := make(map[string]struct{})
	years := make(map[string]struct{})

	for _, region := range regions {
		artifacts, err := s.results.ForRegion(ctx, region.ID)
		if err != nil {
			return nil, err
		}

		ra := domain.RegionArtifacts{Region: region}
		for _, artifact := range artifacts {
			ra.Artifacts = append(ra.Artifacts, artifact)
			kinds[artifact.Key.AnalysisKind] = struct{}{}
			years[artifact.Key.Years.String()] = struct{}{}
		}
		sort.Slice(ra.Artifacts, func(i, j int) bool {
			return ra.Artifacts[i].Key.Less(ra.Artifacts[j].Key)
		})
		bundle.Regions = append(bundle.Regions, ra)

		if region.Kind == domain.KindTerritory {
			bundle.Metadata.HasTerritory = true
			territoryName = region.Name
		}
	}

	bundle.Metadata.DataSources = sortedKeys(kinds)
	bundle.Metadata.Years = sortedKeys(years)

	logger.Debug("Snapshot: %d regions, %d data sources", len(regions), len(bundle.Metadata.DataSources))

	data, err := s.archive.Build(ctx, bundle)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("yvynation_export_%s_%s.zip",
		domain.SanitizeName(territoryName), timestamp.Format("20060102_150405"))
	logger.Info("Export ready: %s (%d bytes)", filename, len(data))

	return &driving.Export{Filename: filename, Data: data}, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
