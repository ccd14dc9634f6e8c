// Package models provides shared data models and types for exgen.
//
// This package contains the enums and value types that are used across
// the template registry, the emission engine and the scaffold operations.
//
// # Artifact Kinds
//
// Every generated filesystem object belongs to one [ArtifactKind]:
//   - StructureFolder: one of the five top-level project folders
//   - BootstrapFile: the root index.js server entry point
//   - RouteAggregator: routes/app.js
//   - ModelFile: models/<EntityName>.js
//
// # Backend Variants
//
// Persistence-related artifacts are rendered for one [BackendVariant]:
//
//	v, err := models.ParseBackendVariant("MongoDB")
//	if err == nil {
//	    fmt.Println(v.Label()) // "MongoDB"
//	}
//
// # Questions
//
// [Question] describes one choice collected from the user, either a single
// choice from a list of [Option] values or validated free text.
package models
