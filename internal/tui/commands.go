package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/audio"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/dispatch"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/document"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/session"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/writer"
)

type setupCompleteMsg struct{}
type setupErrorMsg struct{ error }
type providerReadyMsg struct{}
type providerErrorMsg struct{ error }

type answerMsg struct {
	ticket session.Ticket
	answer *dispatch.Answer
	err    error
}

type speechMsg struct {
	ticket   session.Ticket
	artifact *audio.Artifact
	err      error
}

type exportMsg struct {
	path   string
	copied bool
	err    error
}

type fileLoadedMsg struct {
	path string
	doc  *document.Document
	err  error
}

func (a *App) testProvider() tea.Cmd {
	client := a.client
	return func() tea.Msg {
		if client == nil {
			return providerErrorMsg{errMissingKey}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := client.Ping(ctx); err != nil {
			return providerErrorMsg{err}
		}

		return providerReadyMsg{}
	}
}

func (a *App) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), a.state.config.RequestTimeout)
}

func (a *App) askCmd(t session.Ticket, intent dispatch.Intent, query string) tea.Cmd {
	ctx, cancel := a.requestContext()
	a.state.cancelAnswer = cancel
	svc := a.state.service
	return func() tea.Msg {
		defer cancel()
		answer, err := svc.Ask(ctx, intent, query)
		return answerMsg{ticket: t, answer: answer, err: err}
	}
}

func (a *App) analyzeCmd(t session.Ticket, fileText, pasted string) tea.Cmd {
	ctx, cancel := a.requestContext()
	a.state.cancelAnswer = cancel
	svc := a.state.service
	return func() tea.Msg {
		defer cancel()
		answer, err := svc.AnalyzeFSD(ctx, fileText, pasted)
		return answerMsg{ticket: t, answer: answer, err: err}
	}
}

func (a *App) speakCmd(t session.Ticket, text string) tea.Cmd {
	ctx, cancel := a.requestContext()
	a.state.cancelSpeech = cancel
	svc := a.state.service
	dir := a.state.config.Audio.Dir
	logger := a.logger
	return func() tea.Msg {
		defer cancel()
		wav, err := svc.Speak(ctx, text)
		if err != nil {
			return speechMsg{ticket: t, err: err}
		}
		artifact, err := audio.NewFileArtifact(dir, wav)
		if err != nil {
			logger.Error("store audio", zap.Error(err))
			return speechMsg{ticket: t, err: err}
		}
		return speechMsg{ticket: t, artifact: artifact}
	}
}

func loadFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := document.Load(path)
		return fileLoadedMsg{path: path, doc: doc, err: err}
	}
}

// cancelInFlight aborts outstanding requests. Their results still arrive
// and are dropped as stale.
func (a *App) cancelInFlight() {
	if a.state.cancelAnswer != nil {
		a.state.cancelAnswer()
		a.state.cancelAnswer = nil
	}
	if a.state.cancelSpeech != nil {
		a.state.cancelSpeech()
		a.state.cancelSpeech = nil
	}
}

func (a *App) currentExport() writer.Export {
	m := a.state.machine
	return writer.Export{
		Title:   a.state.subject,
		Intent:  a.state.subjectIntent,
		Answer:  &dispatch.Answer{Text: m.Text(), Sources: m.Sources()},
		Created: time.Now(),
	}
}

func (a *App) saveCmd() tea.Cmd {
	e := a.currentExport()
	dir := a.state.config.ExportDir
	return func() tea.Msg {
		path, err := writer.Save(dir, e)
		return exportMsg{path: path, err: err}
	}
}

func (a *App) copyCmd() tea.Cmd {
	e := a.currentExport()
	return func() tea.Msg {
		return exportMsg{copied: true, err: writer.Copy(e)}
	}
}
