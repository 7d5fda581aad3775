package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/assistant"
)

func (a *App) renderErrorBox(err error, w int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(colorError).Bold(true).Render(assistant.Message(err)))

	if suggestions := suggestionsFor(err); len(suggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(styleSubtitle.Render(strings.Join(suggestions, "\n")))
	}

	return styleBox.Copy().
		Width(w).
		BorderForeground(colorError).
		Render(b.String())
}

// suggestionsFor returns hints based on the error type
func suggestionsFor(err error) []string {
	errLower := strings.ToLower(err.Error())

	switch assistant.Classify(err) {
	case assistant.KindConfiguration:
		return []string{
			"Set API_KEY or add api_key to ~/.config/fico/config.yaml",
			"Or press [F2] then [k] to enter a key",
		}
	case assistant.KindOffTopic:
		return []string{"Try naming a FICO module, transaction code or process"}
	case assistant.KindTransport:
		switch {
		case strings.Contains(errLower, "401") || strings.Contains(errLower, "403") || strings.Contains(errLower, "api key"):
			return []string{"Check that your API key is valid"}
		case strings.Contains(errLower, "429") || strings.Contains(errLower, "quota") || strings.Contains(errLower, "rate"):
			return []string{"You've hit the API rate limit", "Wait a moment and try again"}
		case strings.Contains(errLower, "deadline") || strings.Contains(errLower, "timeout"):
			return []string{"The request timed out; raise request_timeout in the config"}
		case strings.Contains(errLower, "connection") || strings.Contains(errLower, "dial"):
			return []string{"Check your internet connection"}
		}
	}

	if strings.Contains(errLower, "not found") || strings.Contains(errLower, "no such file") {
		return []string{"Check the file path is correct"}
	}
	return nil
}
