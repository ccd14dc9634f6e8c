package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/exgen-dev/exgen/internal/template"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their YAML path instead of the Go field name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.Split(f.Tag.Get("yaml"), ",")[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("entityname", func(fl validator.FieldLevel) bool {
		return template.ValidateEntityName(fl.Field().String()) == nil
	})
	return v
}

// errorMessages maps validation tags to friendly messages.
var errorMessages = map[string]string{
	"required":   "required field is empty",
	"oneof":      "must be one of: %s",
	"entityname": "must be a JavaScript identifier (letters, digits, _ or $; not starting with a digit)",
}

func parseMessage(e validator.FieldError) string {
	if msg, ok := errorMessages[e.Tag()]; ok {
		if strings.Contains(msg, "%s") {
			return fmt.Sprintf(msg, strings.ReplaceAll(e.Param(), " ", ", "))
		}
		return msg
	}
	return fmt.Sprintf("is invalid: %s", e.Tag())
}

// Validate checks cfg and returns *ValidationErrors, which matches
// ErrInvalidConfig, when any field is invalid.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	out := &ValidationErrors{}
	for _, e := range fieldErrs {
		out.Errors = append(out.Errors, ValidationError{
			Field:   fieldPath(e.Namespace()),
			Message: parseMessage(e),
			Value:   e.Value(),
		})
	}
	return out
}

// fieldPath drops the root struct name: "Config.log.level" -> "log.level".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
