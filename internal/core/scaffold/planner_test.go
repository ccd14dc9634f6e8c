package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/exgen-dev/exgen/internal/template"
	"github.com/exgen-dev/exgen/pkg/models"
)

func TestPlanPath(t *testing.T) {
	base := t.TempDir()

	tests := []struct {
		name   string
		kind   models.ArtifactKind
		params models.Parameters
		want   string
	}{
		{"folder", models.StructureFolder, models.Parameters{models.ParamFolder: "middleware"}, "middleware"},
		{"bootstrap", models.BootstrapFile, nil, "index.js"},
		{"route_aggregator", models.RouteAggregator, nil, filepath.Join("routes", "app.js")},
		{"model", models.ModelFile, models.Parameters{models.ParamEntityName: "User"}, filepath.Join("models", "User.js")},
		{"model_trimmed", models.ModelFile, models.Parameters{models.ParamEntityName: " Order\n"}, filepath.Join("models", "Order.js")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlanPath(base, tt.kind, tt.params)
			if err != nil {
				t.Fatalf("PlanPath error: %v", err)
			}
			want := filepath.Join(base, tt.want)
			if got != want {
				t.Errorf("PlanPath = %q, want %q", got, want)
			}
		})
	}
}

func TestPlanPathRelativeBaseIsAbsolute(t *testing.T) {
	got, err := PlanPath(".", models.BootstrapFile, nil)
	if err != nil {
		t.Fatalf("PlanPath error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("PlanPath = %q, want absolute path", got)
	}
}

func TestPlanPathFilesystemRoot(t *testing.T) {
	root := filepath.VolumeName(os.TempDir()) + string(filepath.Separator)

	tests := []struct {
		name   string
		kind   models.ArtifactKind
		params models.Parameters
		want   string
	}{
		{"folder", models.StructureFolder, models.Parameters{models.ParamFolder: "routes"}, "routes"},
		{"bootstrap", models.BootstrapFile, nil, "index.js"},
		{"model", models.ModelFile, models.Parameters{models.ParamEntityName: "User"}, filepath.Join("models", "User.js")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlanPath(root, tt.kind, tt.params)
			if err != nil {
				t.Fatalf("PlanPath(%q) error: %v", root, err)
			}
			if want := filepath.Join(root, tt.want); got != want {
				t.Errorf("PlanPath = %q, want %q", got, want)
			}
		})
	}
}

func TestPlanPathInvalidParameters(t *testing.T) {
	base := t.TempDir()

	tests := []struct {
		name   string
		kind   models.ArtifactKind
		params models.Parameters
	}{
		{"unknown_folder", models.StructureFolder, models.Parameters{models.ParamFolder: "node_modules"}},
		{"empty_folder", models.StructureFolder, nil},
		{"empty_entity", models.ModelFile, models.Parameters{models.ParamEntityName: ""}},
		{"traversing_entity", models.ModelFile, models.Parameters{models.ParamEntityName: "../../evil"}},
		{"separator_entity", models.ModelFile, models.Parameters{models.ParamEntityName: "a/b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanPath(base, tt.kind, tt.params)
			if !errors.Is(err, template.ErrInvalidParameter) {
				t.Errorf("PlanPath error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestContainedPath(t *testing.T) {
	base := t.TempDir()

	tests := []struct {
		name    string
		rel     string
		wantErr bool
	}{
		{"simple", "index.js", false},
		{"nested", filepath.Join("models", "User.js"), false},
		{"parent", filepath.Join("..", "escape.js"), true},
		{"nested_parent", filepath.Join("models", "..", "..", "escape.js"), true},
		{"absolute", filepath.Join(base, "index.js"), true},
		{"base_itself", ".", true},
		{"dotdot_prefixed_name", "..index.js", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := containedPath(base, tt.rel)
			if tt.wantErr {
				if !errors.Is(err, ErrPathTraversal) {
					t.Errorf("containedPath(%q) = %v, want ErrPathTraversal", tt.rel, err)
				}
				return
			}
			if err != nil {
				t.Errorf("containedPath(%q) unexpected error: %v", tt.rel, err)
			}
		})
	}
}
