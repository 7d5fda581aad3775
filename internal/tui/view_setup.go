package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const apiKeyURL = "https://aistudio.google.com/apikey"

func (a *App) renderSetup() string {
	var b strings.Builder

	// Header
	header := styleLogo.Render(logo)
	b.WriteString(a.center(header))
	b.WriteString("\n\n")

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorWhite).
		Bold(true).
		Render("Enter your Gemini API key:")
	b.WriteString(a.center(title))
	b.WriteString("\n\n")

	link := styleSubtitle.Render("Get one at: " + apiKeyURL)
	b.WriteString(a.center(link))
	b.WriteString("\n\n")

	// Input
	inputBox := styleBox.Copy().
		Width(60).
		BorderForeground(colorSecondary).
		Render(a.state.apiKeyInput.View())
	b.WriteString(a.center(inputBox))
	b.WriteString("\n\n")

	if a.state.setupError != nil {
		errLine := lipgloss.NewStyle().Foreground(colorError).Render(truncate(a.state.setupError.Error(), 70))
		b.WriteString(a.center(errLine))
		b.WriteString("\n\n")
	}

	if path := a.state.config.Path(); path != "" {
		b.WriteString(a.center(styleSubtitle.Render("Saved to " + path)))
		b.WriteString("\n\n")
	}

	// Instructions
	instructions := styleStatusBar.Render("[Enter] Continue  [Esc] Skip")
	b.WriteString(a.center(instructions))

	return a.centerVertically(b.String())
}
