package tui

import "strings"

// estimateTokens returns approximate token count (~4 chars per token)
func estimateTokens(text string) int {
	return (len(text) + 3) / 4
}

// contextLimit returns the input window of a model
func contextLimit(model string) int {
	model = strings.ToLower(model)

	if strings.Contains(model, "tts") {
		return 8000
	}
	if strings.Contains(model, "gemini-2") || strings.Contains(model, "gemini-1.5") {
		return 1048576
	}

	return 32000
}
