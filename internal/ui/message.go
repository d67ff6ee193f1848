package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/falcon/internal/store"
)

var _ tea.Msg = themeAppliedMsg{}

// themeAppliedMsg carries a theme published by the store.
type themeAppliedMsg store.ThemeApplied

// errMsg reports a failed store operation.
type errMsg struct{ err error }
