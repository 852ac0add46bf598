// Package domain defines the core business entities for zonepack.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Region: An analyzable area (drawn polygon, territory, or buffer ring)
//   - Artifact: The tabular and visual output of one analysis run
//   - SessionContext: The identity of one interactive session
//   - ExportBundle: The snapshot handed to the archive writer
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It imports only the Go standard
// library and the orb geometry vocabulary (orb types are the project-wide
// representation of WGS84 geometries). All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, github.com/paulmach/orb
//   - Cannot Import: Any internal/ package, any adapter dependency
package domain
