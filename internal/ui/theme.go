package ui

import "os"

// Colors is the palette used by spinners and rendered output.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme carries color settings for terminal output.
type Theme struct {
	NoColor bool
	Colors  Colors
}

// NewTheme returns the default theme. NO_COLOR in the environment or
// noColor disables colors.
func NewTheme(noColor bool) *Theme {
	return &Theme{
		NoColor: noColor || os.Getenv("NO_COLOR") != "",
		Colors: Colors{
			Primary:   "#E8734A",
			Secondary: "#A78BFA",
			Success:   "#10B981",
			Warning:   "#F59E0B",
			Error:     "#EF4444",
			Muted:     "#9CA3AF",
		},
	}
}
