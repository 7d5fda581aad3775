package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/config"
)

func (a *App) renderSettings() string {
	var b strings.Builder
	cfg := a.state.config

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Settings")
	b.WriteString(a.center(title))
	b.WriteString("\n\n")

	player := "none found"
	if a.state.player != nil {
		player = "system player"
		if cfg.Audio.Player != "" {
			player = cfg.Audio.Player
		}
	}

	configLines := []string{
		fmt.Sprintf("  API Key:       %s", maskKey(cfg.APIKey)),
		"",
		fmt.Sprintf("  Full model:    %s", config.DisplayName(cfg.Models.Full)),
		fmt.Sprintf("  Lite model:    %s", config.DisplayName(cfg.Models.Lite)),
		fmt.Sprintf("  Topic check:   %s", config.DisplayName(cfg.Models.Gate)),
		fmt.Sprintf("  Speech model:  %s", config.DisplayName(cfg.Models.Speech)),
		fmt.Sprintf("  Voice:         %s", cfg.Voice),
		"",
		fmt.Sprintf("  Timeout:       %s", cfg.RequestTimeout),
		fmt.Sprintf("  Verdict cache: %s", cacheTTL(cfg)),
		fmt.Sprintf("  Audio player:  %s (autoplay %t)", player, cfg.Audio.Autoplay),
		fmt.Sprintf("  Export dir:    %s", exportDir(cfg)),
	}
	if path := cfg.Path(); path != "" {
		configLines = append(configLines, "", "  Config: "+truncate(path, 42))
	}

	configBox := styleBox.Copy().
		Width(56).
		Render(strings.Join(configLines, "\n"))
	b.WriteString(a.center(configBox))
	b.WriteString("\n\n")

	// Actions
	b.WriteString(a.center(styleStatusBar.Render("[k] Update API key  [Esc] Back")))

	return a.centerVertically(b.String())
}

func maskKey(k string) string {
	switch {
	case k == "":
		return "Not set"
	case len(k) > 8:
		return k[:4] + "****" + k[len(k)-4:]
	default:
		return "****"
	}
}

func cacheTTL(cfg *config.Config) string {
	if cfg.Gate.CacheTTL <= 0 {
		return "off"
	}
	return cfg.Gate.CacheTTL.String()
}

func exportDir(cfg *config.Config) string {
	if cfg.ExportDir == "" {
		return "working directory"
	}
	return truncate(cfg.ExportDir, 38)
}
