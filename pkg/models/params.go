package models

import "maps"

// Well-known parameter names.
const (
	// ParamEntityName names the entity a model file declares (e.g. "User").
	ParamEntityName = "entityName"
	// ParamFolder names the structural folder a StructureFolder request creates.
	ParamFolder = "folder"
)

// Parameters maps parameter names to user supplied string values.
type Parameters map[string]string

// Get returns the value for key, or "" when absent.
func (p Parameters) Get(key string) string {
	if p == nil {
		return ""
	}
	return p[key]
}

// Clone returns an independent copy of p. A nil map clones to an empty one.
func (p Parameters) Clone() Parameters {
	out := make(Parameters, len(p))
	maps.Copy(out, p)
	return out
}
