// Package gate decides whether a query is about SAP FICO before a full
// answer is requested.
package gate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/llm"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/prompts"
)

// acceptToken is the only classifier answer treated as on-topic.
const acceptToken = "YES"

type Gate struct {
	client      llm.Client
	model       string
	instruction string
	verdicts    *cache.Cache
	logger      *zap.Logger
}

type Options struct {
	Model string
	// CacheTTL keeps verdicts for repeated queries. Zero disables caching.
	CacheTTL time.Duration
	Logger   *zap.Logger
}

func New(client llm.Client, opts Options) *Gate {
	g := &Gate{
		client:      client,
		model:       opts.Model,
		instruction: prompts.TopicValidation(),
		logger:      zap.NewNop(),
	}
	if opts.Logger != nil {
		g.logger = opts.Logger.Named("gate")
	}
	if opts.CacheTTL > 0 {
		// No janitor: expired entries are dropped lazily on Get.
		g.verdicts = cache.New(opts.CacheTTL, 0)
	}
	return g
}

// IsOnTopic sends query to a zero-temperature classification call. Only an
// exact "YES" (after trimming and upper-casing) counts; transport errors are
// returned as errors, never as a negative verdict.
func (g *Gate) IsOnTopic(ctx context.Context, query string) (bool, error) {
	if g.client == nil {
		return false, llm.ErrMissingAPIKey
	}

	key := strings.TrimSpace(query)
	if g.verdicts != nil {
		if v, ok := g.verdicts.Get(key); ok {
			return v.(bool), nil
		}
	}

	req := llm.NewRequest(g.model, g.instruction, query)
	req.Temperature = llm.Float32(0)

	resp, err := g.client.Generate(ctx, req)
	if err != nil {
		return false, fmt.Errorf("topic validation: %w", err)
	}

	ok := Accepts(resp.Text)
	g.logger.Debug("topic verdict",
		zap.Bool("accepted", ok),
		zap.String("answer", truncate(resp.Text, 40)),
	)

	if g.verdicts != nil {
		g.verdicts.SetDefault(key, ok)
	}
	return ok, nil
}

// Accepts reports whether a classifier answer means "on topic".
func Accepts(answer string) bool {
	return strings.ToUpper(strings.TrimSpace(answer)) == acceptToken
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
