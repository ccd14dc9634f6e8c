package template

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/exgen-dev/exgen/internal/defs"
	"github.com/exgen-dev/exgen/pkg/models"
)

// jsReservedWords cannot be used as a generated binding name.
var jsReservedWords = map[string]bool{
	"await": true, "break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "else": true, "enum": true, "export": true,
	"extends": true, "false": true, "finally": true, "for": true,
	"function": true, "if": true, "import": true, "in": true,
	"instanceof": true, "let": true, "new": true, "null": true,
	"return": true, "static": true, "super": true, "switch": true,
	"this": true, "throw": true, "true": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true, "yield": true,
}

// reservedBindings are names already bound in every generated model file,
// either by the templates or by the CommonJS module wrapper.
var reservedBindings = map[string]bool{
	"Sequelize": true, "DataTypes": true, "sequelize": true, "mongoose": true,
	"require": true, "module": true, "exports": true,
	"__filename": true, "__dirname": true,
}

// NormalizeEntityName trims surrounding space and applies Unicode NFC so
// that the generated identifier and file name agree byte for byte.
func NormalizeEntityName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// EntityName returns the normalized entity name parameter.
func EntityName(params models.Parameters) string {
	return NormalizeEntityName(params.Get(models.ParamEntityName))
}

// ValidateEntityName checks that name is usable both as a JavaScript
// identifier and as a file name under models/.
func ValidateEntityName(name string) error {
	n := NormalizeEntityName(name)
	if n == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidParameter, models.ParamEntityName)
	}
	for i, r := range n {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return fmt.Errorf("%w: %s %q is not a valid identifier (character %q)",
				ErrInvalidParameter, models.ParamEntityName, n, r)
		}
	}
	if jsReservedWords[n] {
		return fmt.Errorf("%w: %s %q is a reserved word", ErrInvalidParameter, models.ParamEntityName, n)
	}
	if reservedBindings[n] {
		return fmt.Errorf("%w: %s %q is already declared in the generated module", ErrInvalidParameter, models.ParamEntityName, n)
	}
	return nil
}

// ValidateParameters checks kind, variant and params without rendering.
// It performs no I/O.
func ValidateParameters(kind models.ArtifactKind, variant models.BackendVariant, params models.Parameters) error {
	if !kind.IsValid() {
		return fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	if variant != models.NoVariant && !variant.IsValid() {
		return fmt.Errorf("%w: backend %q", ErrInvalidParameter, string(variant))
	}

	switch kind {
	case models.StructureFolder:
		folder := params.Get(models.ParamFolder)
		if !defs.IsStructureFolder(folder) {
			return fmt.Errorf("%w: %s %q is not a structural folder", ErrInvalidParameter, models.ParamFolder, folder)
		}
	case models.ModelFile:
		if variant == models.NoVariant {
			return fmt.Errorf("%w: backend is required for %s", ErrInvalidParameter, kind)
		}
		if err := ValidateEntityName(params.Get(models.ParamEntityName)); err != nil {
			return err
		}
	}
	return nil
}
