package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/format"
)

// truncate shortens text to maxLen runes, adding "..." if truncated
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#06B6D4")
	colorSuccess   = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorWhite     = lipgloss.Color("#F9FAFB")

	// Logo style
	styleLogo = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Subtitle
	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Section label above an input
	styleLabel = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	// Box
	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Status bar
	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleSpinner = lipgloss.NewStyle().
			Foreground(colorSecondary)

	styleLink = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Underline(true)

	// Answer text
	answerTheme = format.Theme{
		Heading:   lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		Paragraph: lipgloss.NewStyle().Foreground(colorWhite),
		Bullet:    lipgloss.NewStyle().Foreground(colorSecondary),
		Emphasis:  lipgloss.NewStyle().Foreground(colorWhite).Bold(true),
	}
)

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}

// center places s horizontally in the window.
func (a *App) center(s string) string {
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, s)
}

// contentWidth is the width of boxes on every view.
func (a *App) contentWidth() int {
	w := min(76, a.width-4)
	if w < 20 {
		w = 20
	}
	return w
}
