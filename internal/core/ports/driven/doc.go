// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - RegionStore: Region registry bookkeeping (in-memory per session)
//   - ResultStore: Analysis artifact capture (in-memory per session)
//   - GeometryEngine: Geodesic ring construction for external buffers
//   - ArchiveWriter: Serializes a session snapshot into one archive
//
// # Optional Interfaces
//
//   - AnalyticsBackend: Class-histogram computation. The Earth-observation
//     backend is an external collaborator; without it, analyses can still
//     be ingested from pre-computed histograms.
//   - ConfigStore: Application configuration. Without it, built-in
//     defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package and orb geometry types
//   - Cannot Import: Any adapter package
package driven
