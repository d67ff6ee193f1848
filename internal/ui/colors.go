package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/falcon/internal/models"
)

// struct Palette is a stylesheet of named [lipgloss.Style] fields derived from a theme palette
type Palette struct {
	title    lipgloss.Style
	header   lipgloss.Style
	day      lipgloss.Style
	outside  lipgloss.Style
	today    lipgloss.Style
	selected lipgloss.Style
	busy     lipgloss.Style
	muted    lipgloss.Style
	ok       lipgloss.Style
	err      lipgloss.Style
	frame    lipgloss.Style
}

// NewPalette maps the theme slots onto TUI styles.
func NewPalette(p models.Palette) *Palette {
	return &Palette{
		title:    NewBold(p.Accent).MarginBottom(1),
		header:   NewBold(p.Muted),
		day:      NewStyle(p.Text),
		outside:  NewStyle(p.Muted).Faint(true),
		today:    NewBold(p.Accent).Underline(true),
		selected: NewBold(p.Text).Background(lipgloss.Color(p.AccentSoft)),
		busy:     NewStyle(p.Accent),
		muted:    NewEm(p.Muted),
		ok:       NewBold(p.Accent),
		err:      NewBold("#FF0000"),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Border)).
			Padding(0, 1),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
