package driving

import "context"

// Export is one packaged session export.
type Export struct {
	// Filename follows the pattern
	// yvynation_export_{territory_or_default}_{YYYYMMDD_HHMMSS}.zip.
	Filename string

	// Data is the complete archive.
	Data []byte
}

// ExportService packages the session's regions and artifacts into one
// downloadable archive. Building is a read-only snapshot operation; the
// registry and result store survive any export failure and the caller
// may retry.
type ExportService interface {
	// Export builds the archive for the session as it stands.
	Export(ctx context.Context) (*Export, error)
}
