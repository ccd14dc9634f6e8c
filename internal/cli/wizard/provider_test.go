package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/exgen-dev/exgen/pkg/models"
)

func backendQuestion() models.Question {
	return models.Question{
		Key:  "backend",
		Kind: models.SingleChoice,
		Options: []models.Option{
			{Label: "MongoDB", Value: "mongodb"},
			{Label: "MySQL", Value: "mysql"},
		},
		Required: true,
	}
}

func nameQuestion() models.Question {
	return models.Question{
		Key:      "entityName",
		Kind:     models.FreeText,
		Required: true,
		Validate: func(s string) error {
			if s == "class" {
				return errors.New("reserved")
			}
			return nil
		},
	}
}

func TestProviderPresets(t *testing.T) {
	tests := []struct {
		name    string
		presets map[string]string
		want    map[string]string
	}{
		{
			name:    "wire_names",
			presets: map[string]string{"backend": "mysql", "entityName": "User"},
			want:    map[string]string{"backend": "mysql", "entityName": "User"},
		},
		{
			name:    "label_case_insensitive",
			presets: map[string]string{"backend": "MongoDB", "entityName": "  Order "},
			want:    map[string]string{"backend": "mongodb", "entityName": "Order"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProvider(tt.presets, false)

			got, err := p.Ask(context.Background(), []models.Question{backendQuestion(), nameQuestion()})
			if err != nil {
				t.Fatalf("Ask error: %v", err)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("answer[%s] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestProviderInvalidPreset(t *testing.T) {
	tests := []struct {
		name    string
		presets map[string]string
	}{
		{"unknown_backend", map[string]string{"backend": "postgres", "entityName": "User"}},
		{"rejected_name", map[string]string{"backend": "mysql", "entityName": "class"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProvider(tt.presets, true)
			p.prompt = func(context.Context, models.Question) (string, error) {
				t.Fatal("prompted despite a preset")
				return "", nil
			}

			_, err := p.Ask(context.Background(), []models.Question{backendQuestion(), nameQuestion()})
			if !errors.Is(err, ErrInvalidAnswer) {
				t.Errorf("error = %v, want ErrInvalidAnswer", err)
			}
		})
	}
}

func TestProviderHeadlessMissingAnswer(t *testing.T) {
	p := NewProvider(map[string]string{"backend": "mysql"}, false)

	_, err := p.Ask(context.Background(), []models.Question{backendQuestion(), nameQuestion()})
	if !errors.Is(err, ErrMissingAnswer) {
		t.Errorf("error = %v, want ErrMissingAnswer", err)
	}
}

func TestProviderHeadlessDefault(t *testing.T) {
	q := backendQuestion()
	q.Default = "mysql"
	opt := models.Question{Key: "note", Kind: models.FreeText}

	got, err := NewProvider(nil, false).Ask(context.Background(), []models.Question{q, opt})
	if err != nil {
		t.Fatalf("Ask error: %v", err)
	}
	if got["backend"] != "mysql" {
		t.Errorf("backend = %q, want default mysql", got["backend"])
	}
	if v, ok := got["note"]; !ok || v != "" {
		t.Errorf("optional answer = %q (present %v), want empty", v, ok)
	}
}

func TestProviderInteractive(t *testing.T) {
	p := NewProvider(map[string]string{"backend": "mongodb"}, true)
	var asked []string
	p.prompt = func(_ context.Context, q models.Question) (string, error) {
		asked = append(asked, q.Key)
		return "Invoice", nil
	}

	got, err := p.Ask(context.Background(), []models.Question{backendQuestion(), nameQuestion()})
	if err != nil {
		t.Fatalf("Ask error: %v", err)
	}
	if len(asked) != 1 || asked[0] != "entityName" {
		t.Errorf("prompted for %v, want only entityName", asked)
	}
	if got["entityName"] != "Invoice" || got["backend"] != "mongodb" {
		t.Errorf("answers = %v", got)
	}
}

func TestProviderCancelled(t *testing.T) {
	p := NewProvider(nil, true)
	p.prompt = func(context.Context, models.Question) (string, error) {
		return "", ErrCancelled
	}

	_, err := p.Ask(context.Background(), []models.Question{backendQuestion()})
	if !errors.Is(err, ErrCancelled) {
		t.Errorf("error = %v, want ErrCancelled", err)
	}
}

func TestProviderContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProvider(map[string]string{"backend": "mysql"}, false).Ask(ctx, []models.Question{backendQuestion()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestNewWizardTheme(t *testing.T) {
	if newWizardTheme() == nil {
		t.Fatal("newWizardTheme returned nil")
	}
}
