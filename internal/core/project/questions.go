package project

import (
	"github.com/exgen-dev/exgen/internal/template"
	"github.com/exgen-dev/exgen/pkg/models"
)

// Question keys asked by the operations.
const (
	QuestionBackend    = "backend"
	QuestionEntityName = models.ParamEntityName
)

// BackendQuestion asks which database the generated code targets.
func BackendQuestion() models.Question {
	opts := make([]models.Option, 0, len(models.ValidBackendVariants()))
	for _, v := range models.ValidBackendVariants() {
		opts = append(opts, models.Option{Label: v.Label(), Value: v.String()})
	}
	return models.Question{
		Key:         QuestionBackend,
		Prompt:      "Which database do you want to use?",
		Description: "Selects the connection code and model flavour.",
		Kind:        models.SingleChoice,
		Options:     opts,
		Required:    true,
	}
}

// EntityNameQuestion asks for the name of the model entity.
func EntityNameQuestion() models.Question {
	return models.Question{
		Key:         QuestionEntityName,
		Prompt:      "What is the name of your entity?",
		Description: "Used as the model identifier and file name, e.g. User.",
		Kind:        models.FreeText,
		Required:    true,
		Validate:    template.ValidateEntityName,
	}
}
