// Package ui implements the interactive month calendar using bubbletea's Elm architecture.
//
// The TUI has two views:
//  1. [CalendarView] : a 6×7 month grid with per-day task counts and period progress
//  2. [DayView] : the tasks due on the selected day, which can be toggled or deleted
//
// The [Model] reads every frame from the shared [store.Store] and writes through its mutation
// operations. Theme changes published by the store arrive through a channel, mirroring the
// store's listener, and rebuild the lipgloss [Palette].
//
// Keyboard navigation uses vim-style bindings (h/j/k/l, enter, esc, x, d, q) with contextual help
// displayed via charmbracelet/bubbles/help.
package ui
