package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/exgen-dev/exgen/internal/defs"
	"github.com/exgen-dev/exgen/pkg/models"
)

// requiredFolders maps an artifact kind to the structural folder that must
// already exist before it can be emitted.
var requiredFolders = map[models.ArtifactKind]string{
	models.RouteAggregator: defs.RoutesDir,
	models.ModelFile:       defs.ModelsDir,
}

// CheckPreconditions verifies the folder required by kind exists under
// baseDir. It returns a *MissingDependencyError when the folder is absent
// or not a directory. It never creates anything.
func CheckPreconditions(kind models.ArtifactKind, baseDir string) error {
	folder, ok := requiredFolders[kind]
	if !ok {
		return nil
	}

	info, err := os.Stat(filepath.Join(baseDir, folder))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &MissingDependencyError{Folder: folder, BaseDir: baseDir}
		}
		return fmt.Errorf("check %s folder: %w", folder, err)
	}
	if !info.IsDir() {
		return &MissingDependencyError{Folder: folder, BaseDir: baseDir}
	}
	return nil
}
