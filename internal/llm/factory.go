package llm

import (
	"context"

	"go.uber.org/zap"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/config"
)

// NewClient creates the Gemini client from config. It returns
// ErrMissingAPIKey when no credential is configured so callers can keep
// running and report the problem when a request is made.
func NewClient(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Client, error) {
	if !cfg.HasAPIKey() {
		return nil, ErrMissingAPIKey
	}
	return NewGeminiProvider(ctx, GeminiOptions{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Models.Lite,
		Logger:  logger,
	})
}
