package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/config"
)

func (a *App) renderThinking() string {
	msg := lipgloss.NewStyle().
		Foreground(colorSecondary).
		Bold(true).
		Render("Consultant is thinking...")
	model := styleSubtitle.Render("  " + config.DisplayName(a.state.config.Models.Full))
	return a.state.spinner.View() + " " + msg + model
}

func (a *App) renderGenerating() string {
	return a.state.spinner.View() + " " + styleSubtitle.Render("Generating...")
}
