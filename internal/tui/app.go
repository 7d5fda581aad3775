package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/assistant"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/audio"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/config"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/dispatch"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/format"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/llm"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/logging"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/session"
)

var errMissingKey = llm.ErrMissingAPIKey

type view int

const (
	viewSession view = iota
	viewSetup
	viewSettings
	viewHelp
)

// Options configures the terminal UI.
type Options struct {
	Config *config.Config
	// Client is nil when no API key is configured.
	Client llm.Client
	Logger *zap.Logger
	// Connect builds a client after the API key is entered. Defaults to llm.NewClient.
	Connect func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (llm.Client, error)
	// Player plays read-aloud audio. Resolved from config when nil.
	Player *audio.Player
}

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool

	client  llm.Client
	logger  *zap.Logger
	connect func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (llm.Client, error)
}

func NewApp(opts Options) *App {
	s := newState()

	s.config = opts.Config
	if s.config == nil {
		s.config = config.DefaultConfig()
	}
	logger := logging.OrNop(opts.Logger)

	s.needsSetup = opts.Client == nil
	s.service = assistant.New(opts.Client, s.config, logger)

	s.player = opts.Player
	if s.player == nil {
		s.player, s.playerError = audio.NewPlayer(s.config.Audio.Player)
	}

	connect := opts.Connect
	if connect == nil {
		connect = llm.NewClient
	}

	return &App{
		view:    viewSession,
		state:   s,
		client:  opts.Client,
		logger:  logger.Named("tui"),
		connect: connect,
	}
}

func (a *App) Init() tea.Cmd {
	if a.state.needsSetup {
		a.view = viewSetup
		return tea.Batch(tea.WindowSize(), a.state.apiKeyInput.Focus(), textinput.Blink)
	}

	return tea.Batch(
		tea.WindowSize(),
		a.setFocus(fieldQuery),
		textinput.Blink,
		a.testProvider(),
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if handled {
			return a, tea.Batch(cmds...)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()

	case setupCompleteMsg:
		return a, a.finishConnect()

	case setupErrorMsg:
		a.state.setupError = msg.error
		return a, nil

	case providerReadyMsg:
		a.state.providerReady = true
		a.state.providerError = nil
		return a, nil

	case providerErrorMsg:
		a.state.providerReady = false
		a.state.providerError = msg.error
		return a, nil

	case answerMsg:
		a.applyAnswer(msg)
		return a, nil

	case speechMsg:
		a.applySpeech(msg)
		return a, nil

	case fileLoadedMsg:
		a.applyFile(msg)
		return a, nil

	case exportMsg:
		a.applyExport(msg)
		return a, nil

	case spinner.TickMsg:
		m := a.state.machine
		if !m.AnswerLoading() && !m.SpeechLoading() {
			return a, nil
		}
		var cmd tea.Cmd
		a.state.spinner, cmd = a.state.spinner.Update(msg)
		return a, cmd
	}

	// Update text inputs based on view
	switch {
	case a.view == viewSetup:
		var cmd tea.Cmd
		a.state.apiKeyInput, cmd = a.state.apiKeyInput.Update(msg)
		cmds = append(cmds, cmd)
	case a.view == viewSession && a.state.machine.View() == session.ViewMain:
		cmds = append(cmds, a.updateFocused(msg))
	case a.view == viewSession && a.state.machine.View() == session.ViewSolution:
		var cmd tea.Cmd
		a.state.viewport, cmd = a.state.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.state.focus {
	case fieldQuery:
		a.state.input, cmd = a.state.input.Update(msg)
	case fieldFSD:
		a.state.fsdInput, cmd = a.state.fsdInput.Update(msg)
	case fieldFile:
		a.state.fileInput, cmd = a.state.fileInput.Update(msg)
	}
	return cmd
}

// handleKey reports whether the key was consumed and must not reach the
// focused input.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return a.quit(), true
	}

	switch a.view {
	case viewSetup:
		return a.handleSetupKey(msg)
	case viewHelp:
		if key.Matches(msg, keys.Quit) || key.Matches(msg, keys.Help) {
			a.view = viewSession
		}
		return nil, true
	case viewSettings:
		switch {
		case key.Matches(msg, keys.Quit), key.Matches(msg, keys.Settings):
			a.view = viewSession
		case msg.String() == "k":
			a.view = viewSetup
			a.state.setupError = nil
			a.state.apiKeyInput.Reset()
			return a.state.apiKeyInput.Focus(), true
		}
		return nil, true
	}

	switch {
	case key.Matches(msg, keys.Help):
		a.view = viewHelp
		return nil, true
	case key.Matches(msg, keys.Settings):
		a.view = viewSettings
		return nil, true
	}

	if a.state.machine.View() == session.ViewSolution {
		return a.handleSolutionKey(msg)
	}
	return a.handleMainKey(msg)
}

func (a *App) handleMainKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Quit):
		return a.quit(), true

	case key.Matches(msg, keys.Tab):
		return a.setFocus((a.state.focus + 1) % fieldCount), true

	case key.Matches(msg, keys.ShiftTab):
		return a.setFocus((a.state.focus + fieldCount - 1) % fieldCount), true

	case key.Matches(msg, keys.Explain):
		return a.submitQuery(dispatch.IntentConcept), true

	case key.Matches(msg, keys.Analyze):
		return a.submitFSD(), true

	case key.Matches(msg, keys.ClearFile):
		a.clearFile()
		return nil, true

	case key.Matches(msg, keys.Enter):
		switch a.state.focus {
		case fieldQuery:
			return a.submitQuery(dispatch.IntentSteps), true
		case fieldFile:
			return a.loadFile(), true
		}
	}
	return nil, false
}

func (a *App) handleSolutionKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Back):
		return a.back(), true
	case key.Matches(msg, keys.ReadAloud):
		return a.readAloud(), true
	case key.Matches(msg, keys.Play):
		a.togglePlayback()
		return nil, true
	case key.Matches(msg, keys.Save):
		return a.saveCmd(), true
	case key.Matches(msg, keys.Copy):
		return a.copyCmd(), true
	}
	// Scrolling is handled by the viewport.
	return nil, false
}

func (a *App) handleSetupKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Quit):
		// Skip setup; requests will report the missing key.
		a.state.needsSetup = false
		a.view = viewSession
		return a.setFocus(fieldQuery), true
	case key.Matches(msg, keys.Enter):
		apiKey := strings.TrimSpace(a.state.apiKeyInput.Value())
		if apiKey == "" {
			a.state.setupError = errMissingKey
			return nil, true
		}
		a.state.config.APIKey = apiKey
		return a.finishSetup(), true
	}
	return nil, false
}

func (a *App) finishSetup() tea.Cmd {
	cfg := a.state.config
	return func() tea.Msg {
		if err := cfg.Save(); err != nil {
			return setupErrorMsg{err}
		}
		return setupCompleteMsg{}
	}
}

// finishConnect rebuilds the client and service with the new key.
func (a *App) finishConnect() tea.Cmd {
	client, err := a.connect(context.Background(), a.state.config, a.logger)
	if err != nil {
		a.state.setupError = err
		return nil
	}

	a.client = client
	a.state.service = assistant.New(client, a.state.config, a.logger)
	a.state.needsSetup = false
	a.state.setupError = nil
	a.state.apiKeyInput.Reset()
	a.view = viewSession

	return tea.Batch(a.setFocus(fieldQuery), a.testProvider())
}

func (a *App) setFocus(f field) tea.Cmd {
	a.state.focus = f
	a.state.input.Blur()
	a.state.fsdInput.Blur()
	a.state.fileInput.Blur()

	switch f {
	case fieldFSD:
		return a.state.fsdInput.Focus()
	case fieldFile:
		return a.state.fileInput.Focus()
	default:
		return a.state.input.Focus()
	}
}

func (a *App) submitQuery(intent dispatch.Intent) tea.Cmd {
	m := a.state.machine
	if m.AnswerLoading() {
		return nil
	}
	query := a.state.input.Value()
	if strings.TrimSpace(query) == "" {
		m.SetError(assistant.ErrEmptyQuery)
		return nil
	}

	t, err := m.BeginAnswer()
	if err != nil {
		return nil
	}
	a.state.subject, a.state.subjectIntent = strings.TrimSpace(query), intent
	a.logger.Debug("submit query", zap.Stringer("intent", intent))
	return tea.Batch(a.state.spinner.Tick, a.askCmd(t, intent, query))
}

func (a *App) submitFSD() tea.Cmd {
	m := a.state.machine
	if m.AnswerLoading() {
		return nil
	}
	fileText := a.state.fileText()
	pasted := a.state.fsdInput.Value()
	content := fileText
	if content == "" {
		content = pasted
	}
	if strings.TrimSpace(content) == "" {
		m.SetError(assistant.ErrEmptyDocument)
		return nil
	}

	t, err := m.BeginAnswer()
	if err != nil {
		return nil
	}
	a.state.subject, a.state.subjectIntent = "FSD analysis", dispatch.IntentFSD
	if a.state.document != nil && fileText != "" {
		a.state.subject = "FSD analysis " + a.state.document.Metadata.Name
	}
	a.logger.Debug("submit fsd", zap.Bool("file", fileText != ""))
	return tea.Batch(a.state.spinner.Tick, a.analyzeCmd(t, fileText, pasted))
}

func (a *App) loadFile() tea.Cmd {
	path := strings.TrimSpace(a.state.fileInput.Value())
	if path == "" {
		return nil
	}
	return loadFileCmd(path)
}

func (a *App) clearFile() {
	a.state.document = nil
	a.state.fileInput.Reset()
}

func (a *App) applyAnswer(msg answerMsg) {
	m := a.state.machine
	if msg.err != nil {
		if m.FailAnswer(msg.ticket, msg.err) {
			a.state.cancelAnswer = nil
			a.logError("answer failed", msg.err)
		}
		return
	}
	if !m.CompleteAnswer(msg.ticket, msg.answer) {
		a.logger.Debug("discarding stale answer")
		return
	}
	a.state.cancelAnswer = nil
	a.state.player.Stop()
	a.clearNotice()
	a.state.blocks = format.Format(m.Text())
	a.refreshSolution()
	a.state.viewport.GotoTop()
}

func (a *App) applySpeech(msg speechMsg) {
	m := a.state.machine
	if msg.err != nil {
		if m.FailSpeech(msg.ticket, msg.err) {
			a.state.cancelSpeech = nil
			a.logError("speech failed", msg.err)
		}
		return
	}
	if !m.CompleteSpeech(msg.ticket, msg.artifact) {
		a.logger.Debug("discarding stale audio")
		return
	}
	a.state.cancelSpeech = nil
	if a.state.config.Audio.Autoplay && a.state.player != nil {
		if err := a.state.player.Play(msg.artifact); err != nil {
			a.state.playerError = err
		}
	}
}

func (a *App) applyFile(msg fileLoadedMsg) {
	if msg.err != nil {
		a.state.document = nil
		a.state.machine.SetError(msg.err)
		a.logger.Warn("load document", zap.String("path", msg.path), zap.Error(msg.err))
		return
	}
	a.state.document = msg.doc
	a.state.machine.ClearError()
}

func (a *App) applyExport(msg exportMsg) {
	a.clearNotice()
	if msg.err != nil {
		a.state.exportError = msg.err
		a.logger.Warn("export solution", zap.Error(msg.err))
		return
	}
	if msg.copied {
		a.state.notice = "Copied to clipboard"
		return
	}
	a.state.notice = "Saved to " + msg.path
	a.logger.Info("saved solution", zap.String("path", msg.path))
}

func (a *App) clearNotice() {
	a.state.notice = ""
	a.state.exportError = nil
}

func (a *App) readAloud() tea.Cmd {
	m := a.state.machine
	if !m.CanSpeak() {
		return nil
	}
	a.state.player.Stop()
	t, err := m.BeginSpeech()
	if err != nil {
		return nil
	}
	return tea.Batch(a.state.spinner.Tick, a.speakCmd(t, m.Text()))
}

func (a *App) togglePlayback() {
	artifact := a.state.machine.Artifact()
	if artifact == nil || a.state.player == nil {
		return
	}
	if a.state.player.Playing() {
		a.state.player.Stop()
		return
	}
	if err := a.state.player.Play(artifact); err != nil {
		a.state.playerError = err
	}
}

func (a *App) back() tea.Cmd {
	a.cancelInFlight()
	a.state.player.Stop()
	a.state.machine.Back()
	a.clearNotice()
	a.state.blocks = nil
	a.state.viewport.SetContent("")
	return a.setFocus(fieldQuery)
}

func (a *App) quit() tea.Cmd {
	a.cancelInFlight()
	a.state.player.Stop()
	a.state.machine.Close()
	a.quitting = true
	return tea.Quit
}

func (a *App) logError(msg string, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	a.logger.Warn(msg, zap.Stringer("kind", assistant.Classify(err)), zap.Error(err))
}

func (a *App) resize() {
	w := a.contentWidth()
	a.state.input.Width = w - 6
	a.state.fileInput.Width = w - 6
	a.state.fsdInput.SetWidth(w - 4)
	a.state.apiKeyInput.Width = min(50, w-6)

	a.state.viewport.Width = w
	a.state.viewport.Height = max(5, a.height-10)
	a.refreshSolution()
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewSetup:
		return a.renderSetup()
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	}

	if a.state.machine.View() == session.ViewSolution {
		return a.renderSolution()
	}
	return a.renderMain()
}
