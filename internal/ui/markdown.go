package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// markdownWidth is the word-wrap column for rendered markdown.
const markdownWidth = 80

// RenderMarkdown renders md for the terminal. Headless output uses the
// plain "notty" style so no escape sequences end up in logs or pipes.
func RenderMarkdown(md string, headless bool) (string, error) {
	style := glamour.WithAutoStyle()
	if headless {
		style = glamour.WithStandardStyle("notty")
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(markdownWidth))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
