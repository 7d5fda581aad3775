// Package session holds the two-view state of one user session. It is not
// safe for concurrent use: the UI event loop owns it and applies request
// results through tickets so that late results are discarded.
package session

import (
	"errors"
	"strings"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/assistant"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/audio"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/dispatch"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/llm"
)

// ErrBusy is returned when the same action is already in flight.
var ErrBusy = errors.New("request already in progress")

type View int

const (
	ViewMain View = iota
	ViewSolution
)

func (v View) String() string {
	if v == ViewSolution {
		return "solution"
	}
	return "main"
}

// Ticket identifies one started request. Zero is never issued.
type Ticket uint64

type Machine struct {
	view    View
	text    string
	sources []llm.Source
	err     error

	answerLoading bool
	speechLoading bool
	artifact      *audio.Artifact

	answerTicket Ticket
	speechTicket Ticket
	next         Ticket
}

func New() *Machine {
	return &Machine{view: ViewMain}
}

func (m *Machine) View() View            { return m.view }
func (m *Machine) Text() string          { return m.text }
func (m *Machine) Sources() []llm.Source { return m.sources }
func (m *Machine) Err() error            { return m.err }
func (m *Machine) AnswerLoading() bool   { return m.answerLoading }
func (m *Machine) SpeechLoading() bool   { return m.speechLoading }

// Artifact returns the current audio artifact, or nil.
func (m *Machine) Artifact() *audio.Artifact { return m.artifact }

// CanSpeak reports whether the read-aloud action is enabled.
func (m *Machine) CanSpeak() bool {
	return m.view == ViewSolution && !m.speechLoading && strings.TrimSpace(m.text) != ""
}

func (m *Machine) issue() Ticket {
	m.next++
	return m.next
}

// SetError records a failure raised before any request was started.
func (m *Machine) SetError(err error) {
	m.err = err
}

// ClearError drops the current error, e.g. after a file loads successfully.
func (m *Machine) ClearError() {
	m.err = nil
}

// BeginAnswer starts an answer request.
func (m *Machine) BeginAnswer() (Ticket, error) {
	if m.answerLoading {
		return 0, ErrBusy
	}
	m.err = nil
	m.answerLoading = true
	m.answerTicket = m.issue()
	return m.answerTicket, nil
}

// CompleteAnswer moves to the solution view. It reports false and changes
// nothing when t is stale.
func (m *Machine) CompleteAnswer(t Ticket, answer *dispatch.Answer) bool {
	if !m.answerLoading || t != m.answerTicket || answer == nil {
		return false
	}
	m.answerLoading = false
	m.answerTicket = 0

	m.releaseArtifact()
	m.text = answer.Text
	m.sources = answer.Sources
	m.view = ViewSolution
	return true
}

// FailAnswer records err and leaves the view unchanged.
func (m *Machine) FailAnswer(t Ticket, err error) bool {
	if !m.answerLoading || t != m.answerTicket {
		return false
	}
	m.answerLoading = false
	m.answerTicket = 0
	m.err = err
	return true
}

// BeginSpeech starts a read-aloud request for the current answer. The
// previous artifact is released.
func (m *Machine) BeginSpeech() (Ticket, error) {
	if m.speechLoading {
		return 0, ErrBusy
	}
	if m.view != ViewSolution || strings.TrimSpace(m.text) == "" {
		m.err = assistant.ErrNoText
		return 0, assistant.ErrNoText
	}
	m.err = nil
	m.releaseArtifact()
	m.speechLoading = true
	m.speechTicket = m.issue()
	return m.speechTicket, nil
}

// CompleteSpeech stores the artifact. A stale artifact is released at once.
func (m *Machine) CompleteSpeech(t Ticket, a *audio.Artifact) bool {
	if !m.speechLoading || t != m.speechTicket {
		_ = a.Release()
		return false
	}
	m.speechLoading = false
	m.speechTicket = 0
	m.artifact = a
	return true
}

func (m *Machine) FailSpeech(t Ticket, err error) bool {
	if !m.speechLoading || t != m.speechTicket {
		return false
	}
	m.speechLoading = false
	m.speechTicket = 0
	m.err = err
	return true
}

// Back returns to the main view and drops everything tied to the last
// answer. Requests still in flight become stale.
func (m *Machine) Back() {
	m.view = ViewMain
	m.text = ""
	m.sources = nil
	m.err = nil
	m.releaseArtifact()

	m.answerLoading = false
	m.speechLoading = false
	m.answerTicket = 0
	m.speechTicket = 0
}

// Close releases held resources.
func (m *Machine) Close() {
	m.releaseArtifact()
}

func (m *Machine) releaseArtifact() {
	if m.artifact != nil {
		_ = m.artifact.Release()
		m.artifact = nil
	}
}
