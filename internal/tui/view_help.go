package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Help")
	b.WriteString(a.center(title))
	b.WriteString("\n\n")

	// Queries
	queries := []string{
		"  Enter          Ask Consultant (step-by-step guide)",
		"  Ctrl+E         Explain Concept",
		"  Ctrl+S         Analyze FSD & Prepare Solution",
		"  Enter (file)   Load the document path",
		"  Ctrl+X         Clear the loaded document",
		"  Tab            Next field",
		"",
		"  A loaded document is used instead of pasted text.",
	}

	queriesBox := styleBox.Copy().
		Width(60).
		Render(strings.Join(queries, "\n"))
	b.WriteString(a.center(queriesBox))
	b.WriteString("\n\n")

	// Solution shortcuts
	shortcutsTitle := styleSubtitle.Render("Solution view")
	b.WriteString(a.center(shortcutsTitle))
	b.WriteString("\n\n")

	shortcuts := []string{
		"  r              Read aloud",
		"  p              Play / stop audio",
		"  s              Save as markdown",
		"  c              Copy to clipboard",
		"  b, Esc         Back to queries",
		"  Up/Down        Scroll",
	}

	shortcutsBox := styleBox.Copy().
		Width(60).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(a.center(shortcutsBox))
	b.WriteString("\n\n")

	// Instructions
	instructions := styleStatusBar.Render("[Esc] Back  [Ctrl+C] Quit")
	b.WriteString(a.center(instructions))

	return a.centerVertically(b.String())
}
