package driven

import (
	"context"

	"github.com/yvynation/zonepack/internal/core/domain"
)

// ArchiveWriter serializes one session snapshot into a downloadable
// archive held entirely in memory. Implementations never touch disk;
// persisting or streaming the bytes is the caller's responsibility.
type ArchiveWriter interface {
	// Build emits the archive for the bundle. Individual artifacts that
	// fail to encode are skipped with a warning recorded in the emitted
	// metadata; a container-level failure wraps domain.ErrArchiveWrite.
	// Identical bundles produce byte-identical archives.
	Build(ctx context.Context, bundle domain.ExportBundle) ([]byte, error)
}
