package domain

import "time"

// SessionContext identifies one interactive session. It replaces the
// original's ambient global session state: constructed once and passed
// explicitly into every service that needs it.
type SessionContext struct {
	// ID is the unique session identifier.
	ID string

	// StartedAt is when the session began.
	StartedAt time.Time
}

// SessionMetadata is the export-time snapshot written to metadata.json.
type SessionMetadata struct {
	// ExportTimestamp is the moment the export was requested (ISO 8601
	// in the archive).
	ExportTimestamp time.Time `json:"export_timestamp"`

	// RegionCount is the number of regions in the registry.
	RegionCount int `json:"region_count"`

	// DataSources lists the analysis kinds present, sorted.
	DataSources []string `json:"data_sources"`

	// Years lists the year keys present, sorted.
	Years []string `json:"years"`

	// HasTerritory reports whether a territory is active.
	HasTerritory bool `json:"has_territory"`

	// ExportWarnings records non-fatal artifact skips.
	ExportWarnings []string `json:"export_warnings"`
}

// RegionArtifacts pairs a region with its artifacts in deterministic
// (analysis kind, year key) order.
type RegionArtifacts struct {
	Region    Region
	Artifacts []Artifact
}

// ExportBundle is the read-only snapshot of one session handed to the
// archive writer: metadata plus every region in registration order with
// its ordered artifacts.
type ExportBundle struct {
	Metadata SessionMetadata
	Regions  []RegionArtifacts
}
