package server

import (
	"github.com/Raviisinghh-stack/Fico-implementation/internal/format"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/llm"
)

type queryRequest struct {
	// Intent is "steps", "concept" or "fsd".
	Intent string `json:"intent"`
	Query  string `json:"query"`
	// Document is loaded FSD text; it wins over Query for the fsd intent.
	Document string `json:"document,omitempty"`
}

type answerResponse struct {
	Text    string         `json:"text"`
	Blocks  []format.Block `json:"blocks"`
	Sources []llm.Source   `json:"sources"`
}

type formatRequest struct {
	Text string `json:"text"`
}

type formatResponse struct {
	Blocks   []format.Block `json:"blocks"`
	Markdown string         `json:"markdown"`
}

type speechRequest struct {
	Text string `json:"text"`
}

type speechResponse struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Size int    `json:"size"`
}

type healthResponse struct {
	Status     string `json:"status"`
	Configured bool   `json:"configured"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
