package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yvynation/zonepack/internal/core/domain"
)

const squareGeoJSON = `{
  "type": "Feature",
  "properties": {"name": "test"},
  "geometry": {
    "type": "Polygon",
    "coordinates": [[[-60, -3], [-59.9, -3], [-59.9, -2.9], [-60, -2.9], [-60, -3]]]
  }
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "session.toml", `
histograms = "histograms"

[territory]
name = "Yanomami Territory"
geometry = "territory.geojson"

[[polygons]]
name = "Aldeia Norte"
geometry = "polygon1.geojson"

[[buffers]]
source = "territory"
distance_km = 5.0
as = "ring"

[[analyses]]
region = "ring"
dataset = "mapbiomas"
year = 2023

[[analyses]]
region = "territory"
dataset = "hansen"
year = 2020
end_year = 2023
`)

	manifest, err := LoadManifest(path)
	require.NoError(t, err)

	require.NotNil(t, manifest.Territory)
	assert.Equal(t, "Yanomami Territory", manifest.Territory.Name)
	require.Len(t, manifest.Polygons, 1)
	require.Len(t, manifest.Buffers, 1)
	assert.Equal(t, 5.0, manifest.Buffers[0].DistanceKm)
	assert.Equal(t, "ring", manifest.Buffers[0].As)

	require.Len(t, manifest.Analyses, 2)
	assert.Equal(t, domain.Year(2023), manifest.Analyses[0].YearKey())
	assert.Equal(t, domain.YearSpan(2020, 2023), manifest.Analyses[1].YearKey())

	// Relative paths resolve against the manifest directory.
	assert.Equal(t, filepath.Join(dir, "territory.geojson"), manifest.path(manifest.Territory.Geometry))
	assert.Equal(t, filepath.Join(dir, "histograms"), manifest.histogramDir())
}

func TestLoadManifest_HistogramDirDefaultsToManifestDir(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "session.toml", `
[[polygons]]
name = "p"
geometry = "p.geojson"
`)

	manifest, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, dir, manifest.histogramDir())
}

func TestLoadManifest_Missing(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadManifest_InvalidTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "session.toml", "territory = [broken")

	_, err := LoadManifest(path)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoadManifest_Validation(t *testing.T) {
	cases := map[string]string{
		"territory without geometry": "[territory]\nname = \"T\"\n",
		"polygon without geometry":   "[[polygons]]\nname = \"p\"\n",
		"buffer without source":      "[[buffers]]\ndistance_km = 5.0\n",
		"analysis without year":      "[[analyses]]\nregion = \"territory\"\ndataset = \"mapbiomas\"\n",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "session.toml", content)

			_, err := LoadManifest(path)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestLoadGeometry_Feature(t *testing.T) {
	path := writeFile(t, t.TempDir(), "region.geojson", squareGeoJSON)

	geometry, err := loadGeometry(path)
	require.NoError(t, err)

	polygon, ok := geometry.(orb.Polygon)
	require.True(t, ok)
	assert.Len(t, polygon[0], 5)
}

func TestLoadGeometry_FeatureCollection(t *testing.T) {
	content := `{"type": "FeatureCollection", "features": [` + squareGeoJSON + `]}`
	path := writeFile(t, t.TempDir(), "region.geojson", content)

	geometry, err := loadGeometry(path)
	require.NoError(t, err)
	_, ok := geometry.(orb.Polygon)
	assert.True(t, ok)
}

func TestLoadGeometry_BareGeometry(t *testing.T) {
	content := `{"type": "Polygon", "coordinates": [[[-60, -3], [-59.9, -3], [-59.9, -2.9], [-60, -3]]]}`
	path := writeFile(t, t.TempDir(), "region.geojson", content)

	geometry, err := loadGeometry(path)
	require.NoError(t, err)
	_, ok := geometry.(orb.Polygon)
	assert.True(t, ok)
}

func TestLoadGeometry_EmptyCollection(t *testing.T) {
	path := writeFile(t, t.TempDir(), "region.geojson", `{"type": "FeatureCollection", "features": []}`)

	_, err := loadGeometry(path)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoadGeometry_NotGeoJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "region.geojson", "not geojson")

	_, err := loadGeometry(path)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
