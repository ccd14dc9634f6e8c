package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
)

func TestHeadlessManagerForce(t *testing.T) {
	hm := NewHeadlessManager()

	hm.ForceHeadless(true)
	if !hm.IsHeadless() || hm.IsInteractive() {
		t.Error("ForceHeadless(true) should make the manager headless")
	}

	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("ForceHeadless(false) should make the manager interactive")
	}
}

func TestHeadlessSpinner(t *testing.T) {
	var buf bytes.Buffer
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)

	s := NewSpinner(NewTheme(false), hm, &buf, "Installing dependencies...")
	s.Stop()

	got := buf.String()
	want := "Installing dependencies...\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestNoColorUsesHeadlessSpinner(t *testing.T) {
	var buf bytes.Buffer
	hm := NewHeadlessManager()
	hm.ForceHeadless(false)
	theme := NewTheme(true)

	s := NewSpinner(theme, hm, &buf, "Working")
	defer s.Stop()

	if _, ok := s.(*headlessSpinner); !ok {
		t.Errorf("spinner type = %T, want *headlessSpinner", s)
	}
}

func TestSpinnerModelUpdate(t *testing.T) {
	m := newSpinnerModel(NewTheme(true), "Installing")

	if !strings.Contains(m.View(), "Installing") {
		t.Errorf("View() = %q, want title", m.View())
	}

	next, _ := m.Update(spinner.TickMsg{})
	m = next.(spinnerModel)

	next, cmd := m.Update(spinnerStopMsg{})
	m = next.(spinnerModel)
	if !m.done || cmd == nil {
		t.Error("stop message should finish the model with a quit command")
	}
	if m.View() != "" {
		t.Errorf("View() after stop = %q, want empty", m.View())
	}
}

func TestNewThemeNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !NewTheme(false).NoColor {
		t.Error("NO_COLOR should disable colors")
	}
}

func TestRenderMarkdownHeadless(t *testing.T) {
	out, err := RenderMarkdown("# Next steps\n\n1. Run `exgen server`\n", true)
	if err != nil {
		t.Fatalf("RenderMarkdown error: %v", err)
	}
	if !strings.Contains(out, "Next steps") || !strings.Contains(out, "exgen server") {
		t.Errorf("rendered output missing content:\n%s", out)
	}
}
