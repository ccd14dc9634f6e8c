package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/exgen-dev/exgen/pkg/models"
)

// promptFunc asks a single question and returns the raw answer.
type promptFunc func(ctx context.Context, q models.Question) (string, error)

// Provider answers questions from presets first, then by prompting when
// interactive, then from question defaults. It satisfies
// project.ChoiceProvider.
type Provider struct {
	presets     map[string]string
	interactive bool
	prompt      promptFunc
}

// NewProvider creates a Provider. presets maps question keys to answers
// given up front (flags or config); empty values are ignored.
func NewProvider(presets map[string]string, interactive bool) *Provider {
	return &Provider{
		presets:     presets,
		interactive: interactive,
		prompt:      runForm,
	}
}

// Ask resolves every question in order. A failing preset is an error
// rather than a reason to prompt, so headless and interactive runs agree.
func (p *Provider) Ask(ctx context.Context, questions []models.Question) (map[string]string, error) {
	answers := make(map[string]string, len(questions))

	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if preset := strings.TrimSpace(p.presets[q.Key]); preset != "" {
			v, err := checkAnswer(q, preset)
			if err != nil {
				return nil, fmt.Errorf("%w for %s: %v", ErrInvalidAnswer, q.Key, err)
			}
			answers[q.Key] = v
			continue
		}

		if p.interactive {
			raw, err := p.prompt(ctx, q)
			if err != nil {
				return nil, err
			}
			v, err := checkAnswer(q, raw)
			if err != nil {
				return nil, fmt.Errorf("%w for %s: %v", ErrInvalidAnswer, q.Key, err)
			}
			answers[q.Key] = v
			continue
		}

		if q.Default != "" {
			v, err := checkAnswer(q, q.Default)
			if err != nil {
				return nil, fmt.Errorf("%w for %s: %v", ErrInvalidAnswer, q.Key, err)
			}
			answers[q.Key] = v
			continue
		}

		if q.Required {
			return nil, fmt.Errorf("%w: %s is required in non-interactive mode", ErrMissingAnswer, q.Key)
		}
		answers[q.Key] = ""
	}

	return answers, nil
}

// checkAnswer validates an answer and returns its canonical form. Choice
// answers match an option value or label, case-insensitively.
func checkAnswer(q models.Question, answer string) (string, error) {
	v := strings.TrimSpace(answer)

	switch q.Kind {
	case models.SingleChoice:
		for _, o := range q.Options {
			if strings.EqualFold(v, o.Value) || strings.EqualFold(v, o.Label) {
				return o.Value, nil
			}
		}
		return "", fmt.Errorf("%q is not one of %s", v, optionValues(q))
	default:
		if v == "" && q.Required {
			return "", errors.New("a value is required")
		}
		if q.Validate != nil && v != "" {
			if err := q.Validate(v); err != nil {
				return "", err
			}
		}
		return v, nil
	}
}

func optionValues(q models.Question) string {
	vals := make([]string, len(q.Options))
	for i, o := range q.Options {
		vals[i] = o.Value
	}
	return strings.Join(vals, ", ")
}

// runForm runs one huh form per question. Validation errors are shown in
// place and the user is asked again until the answer passes.
func runForm(ctx context.Context, q models.Question) (string, error) {
	var value string
	var field huh.Field

	switch q.Kind {
	case models.SingleChoice:
		field = buildSelectField(q, &value)
	default:
		field = buildInputField(q, &value)
	}

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(newWizardTheme()).
		WithAccessible(false)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("wizard error: %w", err)
	}
	if strings.TrimSpace(value) == "" {
		return q.Default, nil
	}
	return value, nil
}

// buildSelectField creates a huh.Select for a single-choice question.
func buildSelectField(q models.Question, value *string) *huh.Select[string] {
	*value = q.Default

	opts := make([]huh.Option[string], len(q.Options))
	for i, o := range q.Options {
		opts[i] = huh.NewOption(o.Label, o.Value)
	}

	return huh.NewSelect[string]().
		Title(q.Prompt).
		Description(q.Description).
		Options(opts...).
		Value(value)
}

// buildInputField creates a huh.Input for a free-text question.
func buildInputField(q models.Question, value *string) *huh.Input {
	inp := huh.NewInput().
		Title(q.Prompt).
		Description(q.Description).
		Value(value)

	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	return inp.Validate(func(val string) error {
		v := strings.TrimSpace(val)
		if v == "" && q.Default != "" {
			v = q.Default
		}
		if v == "" && q.Required {
			return errors.New("this field is required")
		}
		if q.Validate != nil && v != "" {
			return q.Validate(v)
		}
		return nil
	})
}
