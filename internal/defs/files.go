// Package defs holds the well-known folder names, file names and
// permissions of a generated project.
package defs

import "io/fs"

// Structural folders created by "new", in creation order.
const (
	ControllersDir = "controllers"
	RoutesDir      = "routes"
	ModelsDir      = "models"
	ServicesDir    = "services"
	MiddlewareDir  = "middleware"
)

// StructureFolders returns the structural folders in creation order.
func StructureFolders() []string {
	return []string{ControllersDir, RoutesDir, ModelsDir, ServicesDir, MiddlewareDir}
}

// IsStructureFolder reports whether name is one of the structural folders.
func IsStructureFolder(name string) bool {
	for _, f := range StructureFolders() {
		if f == name {
			return true
		}
	}
	return false
}

// Generated file names.
const (
	// BootstrapJS is the server entry point at the project root.
	BootstrapJS = "index.js"

	// RouteAggregatorJS is the router file under routes/.
	RouteAggregatorJS = "app.js"

	// ModelExt is appended to the entity name to form a model file name.
	ModelExt = ".js"

	// ConfigFile is the optional per-project configuration file.
	ConfigFile = ".exgen.yaml"
)

// Permissions for generated artifacts.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
)

// ServerPort is the fixed listening port written into the server bootstrap.
const ServerPort = 4000

// NodePackages returns the npm packages the generated project depends on,
// in install order.
func NodePackages() []string {
	return []string{"express", "cors", "mysql2", "sequelize", "mongoose"}
}
