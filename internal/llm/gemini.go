package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiProvider talks to the Gemini API through the genai SDK. One instance
// lives for the whole process and is passed to the components that need it.
type GeminiProvider struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

type GeminiOptions struct {
	APIKey string
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string
	// Model is used by Ping and by requests that leave Model empty.
	Model      string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

func NewGeminiProvider(ctx context.Context, opts GeminiOptions) (*GeminiProvider, error) {
	if opts.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	cc := &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}
	if opts.HTTPClient != nil {
		cc.HTTPClient = opts.HTTPClient
	} else {
		cc.HTTPClient = &http.Client{Timeout: 5 * time.Minute}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &GeminiProvider{
		client: client,
		model:  opts.Model,
		logger: logger.Named("gemini"),
	}, nil
}

func (g *GeminiProvider) Name() string {
	return "gemini"
}

func (g *GeminiProvider) Ping(ctx context.Context) error {
	if _, err := g.client.Models.Get(ctx, g.model, nil); err != nil {
		return fmt.Errorf("cannot reach Gemini API: %w", err)
	}
	return nil
}

func (g *GeminiProvider) Generate(ctx context.Context, req *Request) (*Response, error) {
	model := req.Model
	if model == "" {
		model = g.model
	}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{genai.NewContentFromText(req.Content, genai.RoleUser)},
		buildConfig(req),
	)
	if err != nil {
		g.logger.Warn("generateContent failed",
			zap.String("model", model),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	g.logger.Debug("generateContent",
		zap.String("model", model),
		zap.Bool("search", req.Search),
		zap.Int("candidates", len(resp.Candidates)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return fromGenAI(resp), nil
}

func buildConfig(req *Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}

	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.Temperature != nil {
		cfg.Temperature = genai.Ptr(*req.Temperature)
	}
	if req.Search {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	for _, m := range req.Modalities {
		cfg.ResponseModalities = append(cfg.ResponseModalities, string(m))
	}
	if req.Voice != "" {
		cfg.SpeechConfig = &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: req.Voice},
			},
		}
	}

	return cfg
}

func fromGenAI(resp *genai.GenerateContentResponse) *Response {
	out := &Response{}
	if resp == nil {
		return out
	}

	for _, c := range resp.Candidates {
		if c == nil {
			continue
		}
		var cand Candidate
		if c.Content != nil {
			for _, p := range c.Content.Parts {
				if p == nil || p.Thought {
					continue
				}
				part := Part{Text: p.Text}
				if p.InlineData != nil {
					part.InlineData = &InlineData{
						MIMEType: p.InlineData.MIMEType,
						Data:     p.InlineData.Data,
					}
				}
				cand.Parts = append(cand.Parts, part)
			}
		}
		if gm := c.GroundingMetadata; gm != nil {
			cand.Grounding = &GroundingMetadata{}
			for _, chunk := range gm.GroundingChunks {
				if chunk == nil {
					continue
				}
				var gc GroundingChunk
				if chunk.Web != nil {
					gc.Web = &WebSource{URI: chunk.Web.URI, Title: chunk.Web.Title}
				}
				cand.Grounding.Chunks = append(cand.Grounding.Chunks, gc)
			}
		}
		out.Candidates = append(out.Candidates, cand)
	}

	out.Text = textOf(out)
	return out
}

// textOf concatenates the text parts of the first candidate.
func textOf(r *Response) string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var text string
	for _, p := range r.Candidates[0].Parts {
		text += p.Text
	}
	return text
}
