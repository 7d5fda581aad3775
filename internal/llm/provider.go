package llm

import (
	"context"
	"errors"
)

// ErrMissingAPIKey is returned before any network I/O when no credential is configured.
var ErrMissingAPIKey = errors.New("the Gemini API key is missing")

// Client is the generation API boundary used by the gate, dispatcher and speech calls.
type Client interface {
	// Name returns the backend name
	Name() string

	// Generate sends one generateContent request and returns the parsed response
	Generate(ctx context.Context, req *Request) (*Response, error)

	// Ping checks that the backend is reachable with the configured credential
	Ping(ctx context.Context) error
}

// Modality selects the kind of output the model should return.
type Modality string

const (
	ModalityText  Modality = "TEXT"
	ModalityAudio Modality = "AUDIO"
)

// Request is built per call and never persisted.
type Request struct {
	Model             string
	SystemInstruction string
	Content           string

	// Temperature is left to the model default when nil.
	Temperature *float32

	// Search attaches the web search grounding tool.
	Search bool

	// Modalities and Voice are only set for speech synthesis.
	Modalities []Modality
	Voice      string
}

// Response mirrors the subset of the API response the app reads. Optional
// parts of the payload stay nil when absent.
type Response struct {
	Text       string
	Candidates []Candidate
}

type Candidate struct {
	Parts     []Part
	Grounding *GroundingMetadata
}

type Part struct {
	Text       string
	InlineData *InlineData
}

// InlineData carries binary output. Data is already base64-decoded.
type InlineData struct {
	MIMEType string
	Data     []byte
}

type GroundingMetadata struct {
	Chunks []GroundingChunk
}

type GroundingChunk struct {
	Web *WebSource
}

type WebSource struct {
	URI   string
	Title string
}

// Source is a citation shown under an answer.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Sources returns the web citations of the first candidate, in API order,
// skipping chunks without both a URI and a title. A response without
// grounding metadata yields an empty, non-nil slice.
func (r *Response) Sources() []Source {
	sources := []Source{}
	if r == nil || len(r.Candidates) == 0 || r.Candidates[0].Grounding == nil {
		return sources
	}
	for _, chunk := range r.Candidates[0].Grounding.Chunks {
		if chunk.Web == nil || chunk.Web.URI == "" || chunk.Web.Title == "" {
			continue
		}
		sources = append(sources, Source{URI: chunk.Web.URI, Title: chunk.Web.Title})
	}
	return sources
}

// InlineAudio returns the inline payload of the first part of the first
// candidate, where the speech endpoint puts its PCM data.
func (r *Response) InlineAudio() (*InlineData, bool) {
	if r == nil || len(r.Candidates) == 0 {
		return nil, false
	}
	parts := r.Candidates[0].Parts
	if len(parts) == 0 || parts[0].InlineData == nil || len(parts[0].InlineData.Data) == 0 {
		return nil, false
	}
	return parts[0].InlineData, true
}

// NewRequest creates a plain text request
func NewRequest(model, systemInstruction, content string) *Request {
	return &Request{
		Model:             model,
		SystemInstruction: systemInstruction,
		Content:           content,
	}
}

// Float32 is a helper for Request.Temperature.
func Float32(v float32) *float32 {
	return &v
}
