package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/format"
)

// refreshSolution re-renders the answer into the viewport, e.g. after a resize.
func (a *App) refreshSolution() {
	if len(a.state.blocks) == 0 && len(a.state.machine.Sources()) == 0 {
		return
	}
	a.state.viewport.SetContent(a.solutionContent(a.state.viewport.Width - 2))
}

func (a *App) solutionContent(width int) string {
	var b strings.Builder
	b.WriteString(format.Render(a.state.blocks, width, answerTheme))

	sources := a.state.machine.Sources()
	if len(sources) > 0 {
		b.WriteString("\n\n")
		b.WriteString(styleLabel.Render("Sources:"))
		for i, src := range sources {
			fmt.Fprintf(&b, "\n%s %s\n   %s",
				styleSubtitle.Render(fmt.Sprintf("%d.", i+1)),
				src.Title,
				styleLink.Render(truncate(src.URI, width-3)))
		}
	}
	return b.String()
}

func (a *App) renderSolution() string {
	var b strings.Builder
	w := a.contentWidth()
	m := a.state.machine

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Solution")
	b.WriteString(a.center(title))
	b.WriteString("\n")

	resultBox := styleBox.Copy().
		Width(w).
		BorderForeground(colorPrimary).
		Render(a.state.viewport.View())
	b.WriteString(a.center(resultBox))
	b.WriteString("\n")

	// Audio
	switch {
	case m.SpeechLoading():
		b.WriteString(a.center(a.renderGenerating()))
		b.WriteString("\n")
	case m.Artifact() != nil:
		b.WriteString(a.center(a.renderAudioLine(w)))
		b.WriteString("\n")
	}

	if err := m.Err(); err != nil {
		b.WriteString(a.center(a.renderErrorBox(err, w)))
		b.WriteString("\n")
	}

	switch {
	case a.state.exportError != nil:
		b.WriteString(a.center(lipgloss.NewStyle().Foreground(colorError).Render(truncate("Export failed: "+a.state.exportError.Error(), w))))
		b.WriteString("\n")
	case a.state.notice != "":
		b.WriteString(a.center(lipgloss.NewStyle().Foreground(colorSuccess).Render(truncate(a.state.notice, w))))
		b.WriteString("\n")
	}

	// Status bar
	var hints []string
	switch {
	case m.SpeechLoading():
		hints = append(hints, "[r] Generating...")
	case m.CanSpeak():
		hints = append(hints, "[r] Read Aloud")
	}
	if m.Artifact() != nil && a.state.player != nil {
		hints = append(hints, "[p] Play/Stop")
	}
	hints = append(hints, "[s] Save", "[c] Copy", "[b] Back", "[↑/↓] Scroll")
	if pct := a.state.viewport.ScrollPercent(); a.state.viewport.TotalLineCount() > a.state.viewport.Height {
		hints = append(hints, fmt.Sprintf("%3.f%%", pct*100))
	}
	b.WriteString(a.center(styleStatusBar.Render(strings.Join(hints, "  "))))

	return b.String()
}

func (a *App) renderAudioLine(w int) string {
	artifact := a.state.machine.Artifact()
	state := "Audio ready"
	if a.state.player.Playing() {
		state = "Playing"
	}
	line := lipgloss.NewStyle().Foreground(colorSuccess).Render("♪ "+state) + "  " +
		styleLink.Render(truncate(artifact.URL(), w-20))
	if a.state.player == nil && a.state.playerError != nil {
		line += "\n" + styleSubtitle.Render(truncate(a.state.playerError.Error(), w))
	}
	return line
}
