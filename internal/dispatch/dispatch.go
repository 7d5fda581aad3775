// Package dispatch sends answer requests to the generation API and extracts
// the answer text and its cited sources.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/llm"
)

// ErrDispatch wraps every failure of the answer call.
var ErrDispatch = errors.New("dispatch failed")

// Answer is returned whole or not at all.
type Answer struct {
	Text    string       `json:"text"`
	Sources []llm.Source `json:"sources"`
}

// Models maps tiers to concrete model names.
type Models struct {
	Full string
	Lite string
}

func (m Models) name(t Tier) string {
	if t == TierLite {
		return m.Lite
	}
	return m.Full
}

type Dispatcher struct {
	client llm.Client
	models Models
	logger *zap.Logger
}

// New creates a dispatcher. client may be nil when no credential is
// configured; Dispatch then fails with llm.ErrMissingAPIKey.
func New(client llm.Client, models Models, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		client: client,
		models: models,
		logger: logger.Named("dispatch"),
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (*Answer, error) {
	if d.client == nil {
		return nil, llm.ErrMissingAPIKey
	}

	model := d.models.name(req.Model)
	llmReq := llm.NewRequest(model, req.SystemInstruction, req.Content)
	llmReq.Search = req.UseRetrieval

	start := time.Now()
	resp, err := d.client.Generate(ctx, llmReq)
	if err != nil {
		d.logger.Error("answer request failed",
			zap.Stringer("intent", req.Intent),
			zap.String("model", model),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrDispatch, err)
	}

	answer := &Answer{
		Text:    resp.Text,
		Sources: resp.Sources(),
	}

	d.logger.Info("answer received",
		zap.Stringer("intent", req.Intent),
		zap.String("model", model),
		zap.Int("chars", len(answer.Text)),
		zap.Int("sources", len(answer.Sources)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return answer, nil
}
