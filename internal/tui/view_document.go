package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderDocumentInfo describes the loaded FSD file. Its content takes
// precedence over pasted text.
func (a *App) renderDocumentInfo(w int) string {
	doc := a.state.document
	meta := doc.Metadata

	name := lipgloss.NewStyle().Foreground(colorSuccess).Bold(true).Render(truncate(meta.Name, 40))
	stats := styleSubtitle.Render(fmt.Sprintf("  %s  %d words  ~%d tokens",
		meta.FileSizeHuman(), meta.WordCount, estimateTokens(doc.Content)))

	lines := name + stats
	if doc.Preview != "" {
		lines += "\n" + styleSubtitle.Render(truncate(doc.Preview, w*2))
	}
	if limit := contextLimit(a.state.config.Models.Full); estimateTokens(doc.Content) > limit {
		lines += "\n" + lipgloss.NewStyle().Foreground(colorError).
			Render(fmt.Sprintf("Document exceeds the model context (%d tokens)", limit))
	}

	return styleBox.Copy().
		Width(w).
		BorderForeground(colorSuccess).
		Render(lines)
}
