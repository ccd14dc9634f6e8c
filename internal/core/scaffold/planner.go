package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/exgen-dev/exgen/internal/defs"
	"github.com/exgen-dev/exgen/internal/template"
	"github.com/exgen-dev/exgen/pkg/models"
)

// PlanPath returns the absolute path of the artifact under baseDir.
// It never touches the filesystem.
func PlanPath(baseDir string, kind models.ArtifactKind, params models.Parameters) (string, error) {
	var rel string
	switch kind {
	case models.StructureFolder:
		folder := params.Get(models.ParamFolder)
		if !defs.IsStructureFolder(folder) {
			return "", fmt.Errorf("%w: %s %q is not a structural folder",
				template.ErrInvalidParameter, models.ParamFolder, folder)
		}
		rel = folder
	case models.BootstrapFile:
		rel = defs.BootstrapJS
	case models.RouteAggregator:
		rel = filepath.Join(defs.RoutesDir, defs.RouteAggregatorJS)
	case models.ModelFile:
		name := params.Get(models.ParamEntityName)
		if err := template.ValidateEntityName(name); err != nil {
			return "", err
		}
		rel = filepath.Join(defs.ModelsDir, template.NormalizeEntityName(name)+defs.ModelExt)
	default:
		return "", fmt.Errorf("%w: %s", template.ErrUnknownKind, kind)
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("resolve base directory: %w", err)
	}
	return containedPath(absBase, rel)
}

// containedPath joins rel onto absBase and rejects results outside absBase.
func containedPath(absBase, rel string) (string, error) {
	cleaned := filepath.Clean(rel)
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("%w: absolute path %q", ErrPathTraversal, rel)
	}

	target := filepath.Join(absBase, cleaned)
	inside, err := filepath.Rel(absBase, target)
	if err != nil || inside == "." || inside == ".." ||
		strings.HasPrefix(inside, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q escapes %s", ErrPathTraversal, rel, absBase)
	}
	return target, nil
}
