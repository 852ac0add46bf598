package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pelletier/go-toml/v2"

	"github.com/yvynation/zonepack/internal/core/domain"
)

// Manifest describes one pipeline session: the regions to define, the
// analyses to attach and where precomputed histograms live. Relative
// paths are resolved against the manifest's directory.
type Manifest struct {
	Territory  *TerritoryEntry  `toml:"territory"`
	Polygons   []PolygonEntry   `toml:"polygons"`
	Buffers    []BufferEntry    `toml:"buffers"`
	Analyses   []AnalysisEntry  `toml:"analyses"`
	Histograms string           `toml:"histograms"`
	Geometry   GeometrySettings `toml:"geometry"`

	dir string
}

// TerritoryEntry selects the active territory for the session.
type TerritoryEntry struct {
	Name     string `toml:"name"`
	Geometry string `toml:"geometry"`
}

// PolygonEntry registers a drawn polygon.
type PolygonEntry struct {
	Name     string `toml:"name"`
	Geometry string `toml:"geometry"`
}

// BufferEntry derives an external buffer ring. Source references the
// territory (the literal "territory"), a polygon by name, or an earlier
// buffer by its alias. As sets the alias later entries use to reference
// this buffer.
type BufferEntry struct {
	Source     string  `toml:"source"`
	DistanceKm float64 `toml:"distance_km"`
	As         string  `toml:"as"`
}

// AnalysisEntry attaches a land-cover analysis to a region. EndYear
// turns the entry into a comparison over [Year, EndYear].
type AnalysisEntry struct {
	Region  string `toml:"region"`
	Dataset string `toml:"dataset"`
	Year    int    `toml:"year"`
	EndYear int    `toml:"end_year"`
}

// GeometrySettings selects the buffer geometry engine. With an empty
// BackendURL rings are computed locally.
type GeometrySettings struct {
	BackendURL string `toml:"backend_url"`
}

// YearKey converts the entry's year fields to a domain year key.
func (a AnalysisEntry) YearKey() domain.YearKey {
	if a.EndYear != 0 {
		return domain.YearSpan(a.Year, a.EndYear)
	}
	return domain.Year(a.Year)
}

// LoadManifest reads and validates a session manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: parse manifest: %v", domain.ErrInvalidInput, err)
	}
	m.dir = filepath.Dir(path)

	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if m.Territory != nil && (m.Territory.Name == "" || m.Territory.Geometry == "") {
		return fmt.Errorf("%w: territory requires name and geometry", domain.ErrInvalidInput)
	}
	for i, polygon := range m.Polygons {
		if polygon.Geometry == "" {
			return fmt.Errorf("%w: polygon %d requires geometry", domain.ErrInvalidInput, i+1)
		}
	}
	for i, buffer := range m.Buffers {
		if buffer.Source == "" {
			return fmt.Errorf("%w: buffer %d requires source", domain.ErrInvalidInput, i+1)
		}
	}
	for i, analysis := range m.Analyses {
		if analysis.Region == "" || analysis.Dataset == "" || analysis.Year == 0 {
			return fmt.Errorf("%w: analysis %d requires region, dataset and year", domain.ErrInvalidInput, i+1)
		}
	}
	return nil
}

// path resolves a manifest-relative path.
func (m *Manifest) path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.dir, p)
}

// histogramDir returns the histogram directory, defaulting to the
// manifest's own directory.
func (m *Manifest) histogramDir() string {
	if m.Histograms == "" {
		return m.dir
	}
	return m.path(m.Histograms)
}

// loadGeometry reads a GeoJSON file holding a feature collection, a
// single feature or a bare geometry. For collections the first feature's
// geometry is used.
func loadGeometry(path string) (orb.Geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read geometry: %w", err)
	}

	if fc, err := geojson.UnmarshalFeatureCollection(data); err == nil {
		if len(fc.Features) == 0 {
			return nil, fmt.Errorf("%w: %s has no features", domain.ErrInvalidInput, path)
		}
		return fc.Features[0].Geometry, nil
	}
	if feature, err := geojson.UnmarshalFeature(data); err == nil {
		return feature.Geometry, nil
	}
	geometry, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not valid GeoJSON: %v", domain.ErrInvalidInput, path, err)
	}
	return geometry.Geometry(), nil
}
