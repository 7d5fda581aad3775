package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/assistant"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/audio"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/config"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/dispatch"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/document"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/format"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/session"
)

// field is the focused input on the main view.
type field int

const (
	fieldQuery field = iota
	fieldFSD
	fieldFile
	fieldCount
)

type state struct {
	// Config
	config     *config.Config
	needsSetup bool

	// Setup
	apiKeyInput textinput.Model
	setupError  error

	// Main view inputs
	focus     field
	input     textinput.Model
	fsdInput  textarea.Model
	fileInput textinput.Model

	// Loaded FSD file; cleared on read failure
	document *document.Document

	// Session
	machine *session.Machine
	service *assistant.Service
	blocks  []format.Block

	// What the current answer was asked about, for exports
	subject       string
	subjectIntent dispatch.Intent
	notice        string
	exportError   error

	// In-flight requests
	cancelAnswer context.CancelFunc
	cancelSpeech context.CancelFunc

	// Widgets
	spinner  spinner.Model
	viewport viewport.Model

	// Audio
	player      *audio.Player
	playerError error

	// Provider
	providerReady bool
	providerError error
}

func newState() *state {
	input := textinput.New()
	input.Placeholder = "e.g. How to configure a new Company Code"
	input.CharLimit = 500
	input.Width = 60

	fsd := textarea.New()
	fsd.Placeholder = "Paste FSD requirements here..."
	fsd.CharLimit = 0
	fsd.ShowLineNumbers = false
	fsd.SetWidth(64)
	fsd.SetHeight(5)

	file := textinput.New()
	file.Placeholder = "Path to a .txt, .md or .csv document"
	file.CharLimit = 1024
	file.Width = 60

	apiKey := textinput.New()
	apiKey.Placeholder = "Paste your Gemini API key here..."
	apiKey.EchoMode = textinput.EchoPassword
	apiKey.CharLimit = 200
	apiKey.Width = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleSpinner

	return &state{
		input:       input,
		fsdInput:    fsd,
		fileInput:   file,
		apiKeyInput: apiKey,
		machine:     session.New(),
		spinner:     sp,
		viewport:    viewport.New(70, 20),
	}
}

// fileText returns the loaded document content, if any.
func (s *state) fileText() string {
	if s.document == nil {
		return ""
	}
	return s.document.Content
}
