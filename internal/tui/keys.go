package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Settings key.Binding
	Enter    key.Binding
	Tab      key.Binding
	ShiftTab key.Binding

	// Main view
	Explain   key.Binding
	Analyze   key.Binding
	ClearFile key.Binding

	// Solution view
	ReadAloud key.Binding
	Play      key.Binding
	Save      key.Binding
	Copy      key.Binding
	Back      key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("F1", "help"),
	),
	Settings: key.NewBinding(
		key.WithKeys("f2"),
		key.WithHelp("F2", "settings"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "ask consultant"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Explain: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "explain concept"),
	),
	Analyze: key.NewBinding(
		key.WithKeys("ctrl+s", "alt+enter"),
		key.WithHelp("ctrl+s", "analyze FSD"),
	),
	ClearFile: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "clear file"),
	),
	ReadAloud: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "read aloud"),
	),
	Play: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "play/stop"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save as markdown"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy to clipboard"),
	),
	Back: key.NewBinding(
		key.WithKeys("b", "esc", "backspace"),
		key.WithHelp("b", "back to queries"),
	),
}
