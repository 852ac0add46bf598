package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Buffer Errors.

	// ErrInvalidDistance indicates a buffer distance of zero or less.
	// Rejected before any geometry operation runs.
	ErrInvalidDistance = errors.New("buffer distance must be positive")

	// ErrRegionNotFound indicates a buffer was requested against an
	// unknown source region id.
	ErrRegionNotFound = errors.New("region not found")

	// ErrGeometryOperation indicates the geometry backend could not
	// produce a valid ring: degenerate input it cannot repair, or a
	// backend error or timeout.
	ErrGeometryOperation = errors.New("geometry operation failed")

	// Export Errors.

	// ErrArtifactSerialization indicates a single artifact could not be
	// encoded into the archive. Recovered inside the archive build; the
	// artifact is skipped and a warning recorded.
	ErrArtifactSerialization = errors.New("artifact serialization failed")

	// ErrArchiveWrite indicates the archive container itself could not
	// be built or closed. Fatal to the export attempt, not the session.
	ErrArchiveWrite = errors.New("archive write failed")
)
