package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/config"
)

const logo = `
 ███████╗██╗ ██████╗ ██████╗
 ██╔════╝██║██╔════╝██╔═══██╗
 █████╗  ██║██║     ██║   ██║
 ██╔══╝  ██║██║     ██║   ██║
 ██║     ██║╚██████╗╚██████╔╝
 ╚═╝     ╚═╝ ╚═════╝ ╚═════╝
`

// logoMinHeight is the window height below which the logo is hidden.
const logoMinHeight = 42

func (a *App) renderMain() string {
	var b strings.Builder
	w := a.contentWidth()
	loading := a.state.machine.AnswerLoading()

	if a.height >= logoMinHeight {
		b.WriteString(a.center(styleLogo.Render(logo)))
		b.WriteString("\n")
	}
	b.WriteString(a.center(styleSubtitle.Render("SAP FICO Implementation Assistant")))
	b.WriteString("\n\n")

	// Query
	b.WriteString(a.center(a.label("Implementation query", w)))
	b.WriteString("\n")
	b.WriteString(a.center(a.inputBox(a.state.input.View(), fieldQuery, w)))
	b.WriteString("\n")
	b.WriteString(a.center(a.actions(w, loading, "[Enter] Ask Consultant", "[Ctrl+E] Explain Concept")))
	b.WriteString("\n\n")

	// FSD
	b.WriteString(a.center(a.label("Functional specification (FSD)", w)))
	b.WriteString("\n")
	b.WriteString(a.center(a.inputBox(a.state.fsdInput.View(), fieldFSD, w)))
	b.WriteString("\n")
	b.WriteString(a.center(a.label("Select document", w)))
	b.WriteString("\n")
	b.WriteString(a.center(a.inputBox(a.state.fileInput.View(), fieldFile, w)))
	b.WriteString("\n")
	if a.state.document != nil {
		b.WriteString(a.center(a.renderDocumentInfo(w)))
		b.WriteString("\n")
	}
	b.WriteString(a.center(a.actions(w, loading, "[Ctrl+S] Analyze FSD & Prepare Solution", "[Ctrl+X] Clear file")))
	b.WriteString("\n\n")

	if loading {
		b.WriteString(a.center(a.renderThinking()))
		b.WriteString("\n\n")
	}

	if err := a.state.machine.Err(); err != nil {
		b.WriteString(a.center(a.renderErrorBox(err, w)))
		b.WriteString("\n\n")
	}

	b.WriteString(a.center(a.renderStatusLine()))

	return a.centerVertically(b.String())
}

func (a *App) label(text string, w int) string {
	return lipgloss.NewStyle().Width(w).Render(styleLabel.Render(text))
}

func (a *App) inputBox(content string, f field, w int) string {
	style := styleBox.Copy().Width(w)
	if a.state.focus == f {
		style = style.BorderForeground(colorSecondary)
	}
	return style.Render(content)
}

// actions renders key hints; they are dimmed while a request is running.
func (a *App) actions(w int, disabled bool, hints ...string) string {
	style := lipgloss.NewStyle().Foreground(colorSecondary)
	if disabled {
		style = styleStatusBar
	}
	return lipgloss.NewStyle().Width(w).Render(style.Render(strings.Join(hints, "  ")))
}

func (a *App) renderStatusLine() string {
	var provider string
	switch {
	case a.client == nil:
		provider = lipgloss.NewStyle().Foreground(colorError).Render("no API key")
	case a.state.providerError != nil:
		provider = lipgloss.NewStyle().Foreground(colorError).Render("offline")
	case a.state.providerReady:
		provider = lipgloss.NewStyle().Foreground(colorSuccess).Render(config.DisplayName(a.state.config.Models.Full))
	default:
		provider = styleStatusBar.Render("connecting...")
	}
	return provider + styleStatusBar.Render("  [Tab] Next field  [F1] Help  [F2] Settings  [Esc] Quit")
}
