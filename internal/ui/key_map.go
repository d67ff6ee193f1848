package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	left      key.Binding
	right     key.Binding
	up        key.Binding
	down      key.Binding
	prevMonth key.Binding
	nextMonth key.Binding
	today     key.Binding
	enter     key.Binding
	back      key.Binding
	toggle    key.Binding
	remove    key.Binding
	theme     key.Binding
	help      key.Binding
	quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		prevMonth: key.NewBinding(key.WithKeys("[", "p"), key.WithHelp("[", "prev month")),
		nextMonth: key.NewBinding(key.WithKeys("]", "n"), key.WithHelp("]", "next month")),
		today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open day")),
		back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		toggle:    key.NewBinding(key.WithKeys("x", " "), key.WithHelp("x", "toggle done")),
		remove:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		theme:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cycle theme")),
		help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.enter, k.today, k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.left, k.right, k.up, k.down},
		{k.prevMonth, k.nextMonth, k.today, k.enter},
		{k.toggle, k.remove, k.back},
		{k.theme, k.help, k.quit},
	}
}
