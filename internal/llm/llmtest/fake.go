// Package llmtest provides a scriptable llm.Client for tests.
package llmtest

import (
	"context"
	"sync"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/llm"
)

// Fake records every request and answers with the function set in Respond.
type Fake struct {
	mu       sync.Mutex
	requests []llm.Request

	Respond func(req *llm.Request) (*llm.Response, error)
	PingErr error
}

func (f *Fake) Name() string { return "fake" }

func (f *Fake) Ping(ctx context.Context) error { return f.PingErr }

func (f *Fake) Generate(ctx context.Context, req *llm.Request) (*llm.Response, error) {
	f.mu.Lock()
	f.requests = append(f.requests, *req)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.Respond == nil {
		return Text(""), nil
	}
	return f.Respond(req)
}

// Requests returns a copy of the recorded requests.
func (f *Fake) Requests() []llm.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]llm.Request, len(f.requests))
	copy(out, f.requests)
	return out
}

// Calls returns how many requests went to model.
func (f *Fake) Calls(model string) int {
	n := 0
	for _, r := range f.Requests() {
		if r.Model == model {
			n++
		}
	}
	return n
}

// Text builds a single-candidate text response.
func Text(s string) *llm.Response {
	return &llm.Response{
		Text:       s,
		Candidates: []llm.Candidate{{Parts: []llm.Part{{Text: s}}}},
	}
}

// Grounded builds a text response with web citations.
func Grounded(s string, sources ...llm.Source) *llm.Response {
	resp := Text(s)
	gm := &llm.GroundingMetadata{}
	for _, src := range sources {
		gm.Chunks = append(gm.Chunks, llm.GroundingChunk{Web: &llm.WebSource{URI: src.URI, Title: src.Title}})
	}
	resp.Candidates[0].Grounding = gm
	return resp
}

// Audio builds a speech response carrying pcm as inline data.
func Audio(pcm []byte) *llm.Response {
	return &llm.Response{Candidates: []llm.Candidate{{Parts: []llm.Part{{
		InlineData: &llm.InlineData{MIMEType: "audio/L16;codec=pcm;rate=24000", Data: pcm},
	}}}}}
}
