package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"sync"

	"github.com/exgen-dev/exgen/internal/defs"
	"github.com/exgen-dev/exgen/pkg/models"
)

// Template names relative to the template filesystem root.
const (
	placeholderTemplate = "bootstrap/placeholder.js.tmpl"
	serverTemplate      = "bootstrap/server.js.tmpl"
	routeTemplate       = "routes/app.js.tmpl"
)

// TemplateData is the data passed to every template.
type TemplateData struct {
	Port       int
	Connection string
	EntityName string
}

// Entry describes one (kind, variant) template family.
type Entry struct {
	Kind     models.ArtifactKind
	Variant  models.BackendVariant
	Template string
}

// Registry maps (kind, variant, params) to generated file content.
type Registry struct {
	renderer Renderer
}

// NewRegistry creates a Registry reading templates from fsys.
func NewRegistry(fsys fs.FS) *Registry {
	return &Registry{renderer: NewRenderer(fsys)}
}

var (
	defaultRegistry     *Registry
	defaultRegistryErr  error
	defaultRegistryOnce sync.Once
)

// NewDefaultRegistry returns a Registry over the embedded template tree.
func NewDefaultRegistry() (*Registry, error) {
	defaultRegistryOnce.Do(func() {
		fsys, err := EmbeddedTemplates()
		if err != nil {
			defaultRegistryErr = fmt.Errorf("load embedded templates: %w", err)
			return
		}
		defaultRegistry = NewRegistry(fsys)
	})
	return defaultRegistry, defaultRegistryErr
}

// ResolveTemplate resolves content with the default registry.
func ResolveTemplate(kind models.ArtifactKind, variant models.BackendVariant, params models.Parameters) ([]byte, error) {
	reg, err := NewDefaultRegistry()
	if err != nil {
		return nil, err
	}
	return reg.Resolve(kind, variant, params)
}

// List returns the known template families in display order.
func (r *Registry) List() []Entry {
	return []Entry{
		{Kind: models.BootstrapFile, Variant: models.NoVariant, Template: placeholderTemplate},
		{Kind: models.BootstrapFile, Variant: models.DocumentStore, Template: serverTemplate + " + " + connectionTemplate(models.DocumentStore)},
		{Kind: models.BootstrapFile, Variant: models.RelationalStore, Template: serverTemplate + " + " + connectionTemplate(models.RelationalStore)},
		{Kind: models.RouteAggregator, Variant: models.NoVariant, Template: routeTemplate},
		{Kind: models.ModelFile, Variant: models.DocumentStore, Template: modelTemplate(models.DocumentStore)},
		{Kind: models.ModelFile, Variant: models.RelationalStore, Template: modelTemplate(models.RelationalStore)},
	}
}

// Resolve returns the content for the artifact. The result depends only on
// its arguments. StructureFolder has no content and returns ErrNoTemplate.
func (r *Registry) Resolve(kind models.ArtifactKind, variant models.BackendVariant, params models.Parameters) ([]byte, error) {
	if err := ValidateParameters(kind, variant, params); err != nil {
		return nil, err
	}

	switch kind {
	case models.StructureFolder:
		return nil, fmt.Errorf("%w: %s", ErrNoTemplate, kind)

	case models.BootstrapFile:
		if variant == models.NoVariant {
			return r.renderer.Render(placeholderTemplate, TemplateData{})
		}
		conn, err := r.renderer.Render(connectionTemplate(variant), TemplateData{})
		if err != nil {
			return nil, err
		}
		return r.renderer.Render(serverTemplate, TemplateData{
			Port:       defs.ServerPort,
			Connection: string(bytes.TrimSpace(conn)),
		})

	case models.RouteAggregator:
		return r.renderer.Render(routeTemplate, TemplateData{})

	case models.ModelFile:
		return r.renderer.Render(modelTemplate(variant), TemplateData{
			EntityName: EntityName(params),
		})
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
}

func connectionTemplate(v models.BackendVariant) string {
	return "bootstrap/connection/" + v.String() + ".js.tmpl"
}

func modelTemplate(v models.BackendVariant) string {
	return "models/" + v.String() + ".js.tmpl"
}
