// Package assistant runs one user action end to end: input validation, the
// topic gate, the answer request, and read-aloud synthesis.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/audio"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/config"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/dispatch"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/format"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/gate"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/llm"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/logging"
)

type Service struct {
	client     llm.Client
	gate       *gate.Gate
	dispatcher *dispatch.Dispatcher

	speechModel string
	voice       string

	logger *zap.Logger
}

// New wires the gate and dispatcher from cfg. client may be nil when no
// credential is configured: every request then fails with
// llm.ErrMissingAPIKey and no network I/O happens.
func New(client llm.Client, cfg *config.Config, logger *zap.Logger) *Service {
	logger = logging.OrNop(logger)
	return &Service{
		client: client,
		gate: gate.New(client, gate.Options{
			Model:    cfg.Models.Gate,
			CacheTTL: cfg.Gate.CacheTTL,
			Logger:   logger,
		}),
		dispatcher: dispatch.New(client, dispatch.Models{
			Full: cfg.Models.Full,
			Lite: cfg.Models.Lite,
		}, logger),
		speechModel: cfg.Models.Speech,
		voice:       cfg.Voice,
		logger:      logger.Named("assistant"),
	}
}

// Configured reports whether a credential is available.
func (s *Service) Configured() bool {
	return s.client != nil
}

// Ask answers a step-guidance or concept query.
func (s *Service) Ask(ctx context.Context, intent dispatch.Intent, query string) (*dispatch.Answer, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if intent == dispatch.IntentFSD {
		return s.AnalyzeFSD(ctx, "", query)
	}
	return s.run(ctx, intent, query, ErrOffTopic)
}

// AnalyzeFSD analyzes requirement text. Loaded file content takes precedence
// over pasted text.
func (s *Service) AnalyzeFSD(ctx context.Context, fileText, pasted string) (*dispatch.Answer, error) {
	content := fileText
	if content == "" {
		content = pasted
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyDocument
	}
	return s.run(ctx, dispatch.IntentFSD, content, ErrOffTopicDocument)
}

func (s *Service) run(ctx context.Context, intent dispatch.Intent, input string, rejected error) (*dispatch.Answer, error) {
	if !s.Configured() {
		return nil, llm.ErrMissingAPIKey
	}

	ok, err := s.gate.IsOnTopic(ctx, input)
	if err != nil {
		s.logger.Error("topic validation failed", zap.Stringer("intent", intent), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrGate, err)
	}
	if !ok {
		s.logger.Info("input rejected by topic gate", zap.Stringer("intent", intent))
		return nil, rejected
	}

	return s.dispatcher.Dispatch(ctx, dispatch.NewRequest(intent, input))
}

// Speak synthesizes text and returns it as a WAV file. List markers and
// emphasis markup are stripped so they are not read out.
func (s *Service) Speak(ctx context.Context, text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoText
	}
	if !s.Configured() {
		return nil, llm.ErrMissingAPIKey
	}
	spoken := format.PlainText(format.Format(text))

	req := llm.NewRequest(s.speechModel, "", spoken)
	req.Modalities = []llm.Modality{llm.ModalityAudio}
	req.Voice = s.voice

	resp, err := s.client.Generate(ctx, req)
	if err != nil {
		s.logger.Error("speech request failed", zap.String("model", s.speechModel), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrSpeech, err)
	}

	data, ok := resp.InlineAudio()
	if !ok {
		return nil, audio.ErrNoAudioData
	}

	f := audio.FormatFromMIME(data.MIMEType)
	s.logger.Debug("speech received",
		zap.String("mime", data.MIMEType),
		zap.Int("bytes", len(data.Data)),
		zap.Float64("seconds", f.Duration(len(data.Data))),
	)
	return audio.EncodeWAV(data.Data, f), nil
}
