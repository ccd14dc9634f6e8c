package models

import (
	"fmt"
	"strings"
)

// ArtifactKind identifies which template and path rules apply to an artifact.
type ArtifactKind int

const (
	// StructureFolder is one of the top-level project folders.
	StructureFolder ArtifactKind = iota + 1
	// BootstrapFile is the root server entry point (index.js).
	BootstrapFile
	// RouteAggregator is the router that mounts every route file (routes/app.js).
	RouteAggregator
	// ModelFile is a persistence model named after an entity (models/<Entity>.js).
	ModelFile
)

var artifactKindNames = map[ArtifactKind]string{
	StructureFolder: "structure-folder",
	BootstrapFile:   "bootstrap-file",
	RouteAggregator: "route-aggregator",
	ModelFile:       "model-file",
}

// String returns the kebab-case name of the kind.
func (k ArtifactKind) String() string {
	if name, ok := artifactKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("artifact-kind(%d)", int(k))
}

// IsValid reports whether k is a known artifact kind.
func (k ArtifactKind) IsValid() bool {
	_, ok := artifactKindNames[k]
	return ok
}

// IsFile reports whether the artifact is a regular file rather than a folder.
func (k ArtifactKind) IsFile() bool {
	return k.IsValid() && k != StructureFolder
}

// BackendVariant selects the persistence technology for persistence-related
// artifacts. The zero value NoVariant means "not applicable".
type BackendVariant string

const (
	// NoVariant is used for artifacts whose content does not depend on the backend.
	NoVariant BackendVariant = ""
	// DocumentStore renders MongoDB / mongoose flavoured code.
	DocumentStore BackendVariant = "mongodb"
	// RelationalStore renders MySQL / sequelize flavoured code.
	RelationalStore BackendVariant = "mysql"
)

// ValidBackendVariants returns all selectable variants in display order.
func ValidBackendVariants() []BackendVariant {
	return []BackendVariant{DocumentStore, RelationalStore}
}

// IsValid reports whether v is a selectable variant. NoVariant is not.
func (v BackendVariant) IsValid() bool {
	return v == DocumentStore || v == RelationalStore
}

// Label returns the human readable database name.
func (v BackendVariant) Label() string {
	switch v {
	case DocumentStore:
		return "MongoDB"
	case RelationalStore:
		return "MySQL"
	default:
		return "none"
	}
}

// String returns the wire name ("mongodb", "mysql").
func (v BackendVariant) String() string {
	return string(v)
}

// ParseBackendVariant accepts a wire name or a label, case-insensitively.
func ParseBackendVariant(s string) (BackendVariant, error) {
	needle := strings.TrimSpace(s)
	for _, v := range ValidBackendVariants() {
		if strings.EqualFold(needle, string(v)) || strings.EqualFold(needle, v.Label()) {
			return v, nil
		}
	}
	return NoVariant, fmt.Errorf("unknown backend %q: must be one of: mongodb, mysql", s)
}
