// Package zipexport serializes one session snapshot into a zip archive.
//
// The layout mirrors what users download from the dashboard:
//
//	metadata.json
//	geometries.geojson
//	polygons/polygon_{n}/{kind}_data.csv, {kind}_figure{n}.png
//	territory/{name}/{kind or comparison}_*.csv, *.png
//
// Entry order and timestamps are fixed, so identical snapshots produce
// byte-identical archives.
package zipexport

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/yvynation/zonepack/internal/core/domain"
	"github.com/yvynation/zonepack/internal/core/ports/driven"
	"github.com/yvynation/zonepack/internal/logger"
)

// Ensure Writer implements the interface.
var _ driven.ArchiveWriter = (*Writer)(nil)

// Writer is the zip implementation of driven.ArchiveWriter.
type Writer struct{}

// NewWriter creates a new zip archive writer.
func NewWriter() *Writer {
	return &Writer{}
}

type entry struct {
	path string
	data []byte
}

// Build emits the archive for the bundle. Artifacts that fail to encode
// are skipped with a warning recorded in metadata.json; the build never
// truncates an otherwise-successful archive silently.
func (w *Writer) Build(_ context.Context, bundle domain.ExportBundle) ([]byte, error) {
	entries, warnings := planArtifacts(bundle)

	geojsonData, err := encodeGeometries(bundle.Regions)
	if err != nil {
		return nil, fmt.Errorf("%w: geometries: %v", domain.ErrArchiveWrite, err)
	}

	metadata := bundle.Metadata
	metadata.ExportWarnings = append([]string{}, warnings...)
	metadataData, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: metadata: %v", domain.ErrArchiveWrite, err)
	}

	ordered := make([]entry, 0, len(entries)+2)
	ordered = append(ordered,
		entry{path: "metadata.json", data: metadataData},
		entry{path: "geometries.geojson", data: geojsonData},
	)
	ordered = append(ordered, entries...)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range ordered {
		header := &zip.FileHeader{
			Name:     e.path,
			Method:   zip.Deflate,
			Modified: metadata.ExportTimestamp,
		}
		f, err := zw.CreateHeader(header)
		if err != nil {
			return nil, fmt.Errorf("%w: create %s: %v", domain.ErrArchiveWrite, e.path, err)
		}
		if _, err := f.Write(e.data); err != nil {
			return nil, fmt.Errorf("%w: write %s: %v", domain.ErrArchiveWrite, e.path, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: close container: %v", domain.ErrArchiveWrite, err)
	}

	logger.Info("Archive built: %d entries, %d warnings", len(ordered), len(warnings))
	return buf.Bytes(), nil
}

// planArtifacts lays out every artifact file in deterministic order:
// regions in registration order, artifacts within a region ordered by
// (analysis kind, year key). A region with no artifacts produces no
// folder; an artifact that fails to encode is dropped whole, with a
// warning, so a folder never holds a table without its figures' context.
func planArtifacts(bundle domain.ExportBundle) ([]entry, []string) {
	var entries []entry
	var warnings []string

	polygonIndex := 0
	for _, ra := range bundle.Regions {
		region := ra.Region

		var folder string
		switch {
		case region.Analyzable():
			polygonIndex++
			folder = fmt.Sprintf("polygons/polygon_%d", polygonIndex)
		case region.Kind == domain.KindTerritory:
			folder = "territory/" + domain.SanitizeName(region.Name)
		default:
			continue
		}

		if len(ra.Artifacts) == 0 {
			continue
		}

		sorted := make([]domain.Artifact, len(ra.Artifacts))
		copy(sorted, ra.Artifacts)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key.Less(sorted[j].Key) })

		kindCounts := make(map[string]int)
		for _, artifact := range sorted {
			kindCounts[artifact.Key.AnalysisKind]++
		}

		for _, artifact := range sorted {
			base := artifactBase(region, artifact.Key, kindCounts[artifact.Key.AnalysisKind] > 1)
			planned, err := encodeArtifact(folder, base, artifact)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf(
					"skipped %s %s for region %q: %v",
					artifact.Key.AnalysisKind, artifact.Key.Years, region.DisplayName(), err))
				logger.Warn("Skipping artifact %s/%s: %v", folder, base, err)
				continue
			}
			entries = append(entries, planned...)
		}
	}

	return entries, warnings
}

// artifactBase names one artifact's files within its folder. Territory
// comparisons expose both years; otherwise the year key is folded in
// only when one analysis kind carries several year keys in the same
// folder, keeping the plain "{kind}_data.csv" shape for the common case.
func artifactBase(region domain.Region, key domain.ArtifactKey, ambiguous bool) string {
	if region.Kind == domain.KindTerritory && key.Years.IsComparison() {
		return fmt.Sprintf("%s_comparison_%d_%d", key.AnalysisKind, key.Years.Start, key.Years.End)
	}
	if ambiguous {
		return key.AnalysisKind + "_" + key.Years.String()
	}
	return key.AnalysisKind
}

// encodeArtifact renders one artifact's files. Any failure discards the
// whole artifact so the archive never carries a partial one.
func encodeArtifact(folder, base string, artifact domain.Artifact) ([]entry, error) {
	table, err := encodeTable(artifact.Table)
	if err != nil {
		return nil, err
	}

	planned := []entry{{path: folder + "/" + base + "_data.csv", data: table}}

	for i, figure := range artifact.Figures {
		if err := validatePNG(figure.PNG); err != nil {
			return nil, fmt.Errorf("figure %d: %w", i+1, err)
		}
		planned = append(planned, entry{
			path: fmt.Sprintf("%s/%s_figure%d.png", folder, base, i+1),
			data: figure.PNG,
		})
	}

	return planned, nil
}
