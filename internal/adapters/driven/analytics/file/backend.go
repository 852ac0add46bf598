// Package file provides a file-backed analytics backend. Class
// histograms are computed offline (server-side raster reduction over the
// region geometry) and dropped into a directory as JSON files named
// {dataset}_{yearkey}.json (e.g. mapbiomas_2023.json or
// hansen_2020_2023.json), mapping class id to pixel count:
//
//	{"3": 9000000, "15": 2400000}
//
// The backend serves whatever histograms are present; geometry is not
// re-evaluated locally.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/paulmach/orb"

	"github.com/yvynation/zonepack/internal/core/domain"
	"github.com/yvynation/zonepack/internal/core/ports/driven"
)

// Ensure Backend implements the interface.
var _ driven.AnalyticsBackend = (*Backend)(nil)

// Backend reads precomputed class histograms from a directory.
type Backend struct {
	dir string
}

// New creates a backend reading histograms from dir.
func New(dir string) *Backend {
	return &Backend{dir: dir}
}

// ClassHistogram loads the histogram for (dataset, years). The geometry
// argument is accepted for interface compatibility; the offline job has
// already reduced over it.
func (b *Backend) ClassHistogram(ctx context.Context, _ orb.Geometry, dataset string, years domain.YearKey) (map[int]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(b.dir, fmt.Sprintf("%s_%s.json", dataset, years))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no histogram for %s %s", domain.ErrNotFound, dataset, years)
		}
		return nil, fmt.Errorf("read histogram %s: %w", path, err)
	}

	var raw map[string]int64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: malformed histogram %s: %v", domain.ErrInvalidInput, path, err)
	}

	histogram := make(map[int]int64, len(raw))
	for key, count := range raw {
		classID, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%w: histogram %s: class id %q", domain.ErrInvalidInput, path, key)
		}
		if count < 0 {
			return nil, fmt.Errorf("%w: histogram %s: negative count for class %d", domain.ErrInvalidInput, path, classID)
		}
		histogram[classID] = count
	}
	return histogram, nil
}
