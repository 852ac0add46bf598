package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	analyticsfile "github.com/yvynation/zonepack/internal/adapters/driven/analytics/file"
	"github.com/yvynation/zonepack/internal/adapters/driven/archive/zipexport"
	configfile "github.com/yvynation/zonepack/internal/adapters/driven/config/file"
	"github.com/yvynation/zonepack/internal/adapters/driven/geometry/geodesic"
	"github.com/yvynation/zonepack/internal/adapters/driven/geometry/remote"
	"github.com/yvynation/zonepack/internal/adapters/driven/storage/memory"
	"github.com/yvynation/zonepack/internal/core/domain"
	"github.com/yvynation/zonepack/internal/core/ports/driven"
	"github.com/yvynation/zonepack/internal/core/services"
	"github.com/yvynation/zonepack/internal/logger"
)

var (
	runManifest string
	runOut      string
	runWatch    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a pipeline session from a manifest",
	Long: `Builds an in-memory session from a TOML manifest: registers the
territory, drawn polygons and buffer rings, attaches land-cover
analyses from precomputed histograms, and writes the export archive.

With --watch the session is rebuilt whenever the manifest changes.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runManifest, "session", "s", "", "path to the session manifest (required)")
	runCmd.Flags().StringVarP(&runOut, "out", "o", ".", "directory to write the export archive to")
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "rebuild when the manifest changes")
	_ = runCmd.MarkFlagRequired("session")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	if runWatch {
		return watchManifest(cmd, runManifest, runOut)
	}
	return runSession(cmd, runManifest, runOut)
}

// runSession executes one full pipeline pass: manifest to archive.
func runSession(cmd *cobra.Command, manifestPath, outDir string) error {
	manifest, err := LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	session := domain.SessionContext{ID: uuid.NewString(), StartedAt: time.Now()}
	config := openConfig()

	regions := memory.NewRegionStore()
	results := memory.NewResultStore()

	regionService := services.NewRegionService(session, regions, newEngine(manifest, config))
	resultService := services.NewResultService(regions, results)
	analysisService := services.NewAnalysisService(regions, resultService,
		analyticsfile.New(manifest.histogramDir()))
	exportService := services.NewExportService(session, regions, results, zipexport.NewWriter())

	// Region names and buffer aliases resolve to ids for later entries.
	byName := make(map[string]string)

	if manifest.Territory != nil {
		geometry, err := loadGeometry(manifest.path(manifest.Territory.Geometry))
		if err != nil {
			return fmt.Errorf("territory %q: %w", manifest.Territory.Name, err)
		}
		territory, err := regionService.SelectTerritory(ctx, manifest.Territory.Name, geometry)
		if err != nil {
			return err
		}
		byName["territory"] = territory.ID
		byName[territory.Name] = territory.ID
	}

	for _, entry := range manifest.Polygons {
		geometry, err := loadGeometry(manifest.path(entry.Geometry))
		if err != nil {
			return fmt.Errorf("polygon %q: %w", entry.Name, err)
		}
		polygon, err := regionService.RegisterDrawn(ctx, entry.Name, geometry)
		if err != nil {
			return err
		}
		byName[polygon.Name] = polygon.ID
	}

	for _, entry := range manifest.Buffers {
		sourceID, ok := byName[entry.Source]
		if !ok {
			return fmt.Errorf("%w: buffer source %q", domain.ErrRegionNotFound, entry.Source)
		}
		buffer, err := regionService.CreateBuffer(ctx, sourceID, entry.DistanceKm)
		if err != nil {
			return err
		}
		byName[buffer.Name] = buffer.ID
		if entry.As != "" {
			byName[entry.As] = buffer.ID
		}
	}

	for _, entry := range manifest.Analyses {
		regionID, ok := byName[entry.Region]
		if !ok {
			return fmt.Errorf("%w: analysis region %q", domain.ErrRegionNotFound, entry.Region)
		}
		if _, err := analysisService.Analyze(ctx, regionID, entry.Dataset, entry.YearKey()); err != nil {
			return err
		}
	}

	export, err := exportService.Export(ctx)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	outPath := filepath.Join(outDir, export.Filename)
	if err := os.WriteFile(outPath, export.Data, 0o644); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}

	cmd.Printf("Exported %s (%d bytes)\n", outPath, len(export.Data))
	return nil
}

// openConfig loads the user config for defaults the manifest leaves
// unset. A missing or unreadable config is not fatal.
func openConfig() driven.ConfigStore {
	store, err := configfile.NewConfigStore("")
	if err != nil {
		logger.Warn("Config unavailable: %v", err)
		return nil
	}
	return store
}

// newEngine picks the geometry engine: remote when the manifest or user
// config names a backend, local geodesic otherwise.
func newEngine(manifest *Manifest, config driven.ConfigStore) driven.GeometryEngine {
	url := manifest.Geometry.BackendURL
	if url == "" && config != nil {
		url = config.GetString("geometry.backend_url")
	}
	if url != "" {
		return remote.New(url)
	}
	return geodesic.New()
}
