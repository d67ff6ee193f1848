package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/falcon/internal/calendar"
	"github.com/desertthunder/falcon/internal/models"
	"github.com/desertthunder/falcon/internal/store"
	"github.com/desertthunder/falcon/internal/views"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	CalendarView ViewState = iota
	DayView
)

const (
	defaultWidth  = 64
	defaultHeight = 20
	previewLimit  = 3
)

// Model represents the TUI application state.
type Model struct {
	store       *store.Store
	now         func() time.Time
	view        ViewState
	cursor      time.Time
	width       int
	height      int
	dayList     list.Model
	theme       models.Theme
	styles      *Palette
	themes      chan store.ThemeApplied
	unsubscribe func()
	err         error
	help        help.Model
	keys        keyMap
}

// NewModel creates a TUI model over a hydrated store. A nil now defaults to [time.Now].
//
// The model subscribes to theme changes; call [Model.Close] once the program exits.
func NewModel(s *store.Store, now func() time.Time) *Model {
	if now == nil {
		now = time.Now
	}

	m := &Model{
		store:  s,
		now:    now,
		view:   CalendarView,
		cursor: calendar.StartOfDay(now()),
		themes: make(chan store.ThemeApplied, 1),
		help:   help.New(),
		keys:   newKeyMap(),
	}
	m.applyTheme(store.DefaultThemes()[0])
	if theme, ok := s.ActiveTheme(); ok {
		m.applyTheme(theme)
	}
	m.unsubscribe = s.Subscribe(m.offerTheme)
	return m
}

// offerTheme leaves a as the only pending theme, replacing one the model has not read yet.
func (m *Model) offerTheme(a store.ThemeApplied) {
	for {
		select {
		case m.themes <- a:
			return
		default:
		}
		select {
		case <-m.themes:
		default:
		}
	}
}

// Close stops listening for theme changes.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Cursor returns the selected day.
func (m *Model) Cursor() time.Time {
	return m.cursor
}

// Init starts waiting for theme notifications.
func (m *Model) Init() tea.Cmd {
	return m.waitForTheme()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.view == DayView {
			m.dayList.SetSize(m.listSize())
		}
		return m, nil

	case themeAppliedMsg:
		m.applyTheme(msg.Theme)
		return m, m.waitForTheme()

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}
		switch m.view {
		case CalendarView:
			return m.handleCalendarKeys(msg)
		case DayView:
			return m.handleDayKeys(msg)
		}
	}

	if m.view == DayView {
		var cmd tea.Cmd
		m.dayList, cmd = m.dayList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return m.styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case DayView:
		return m.renderDay()
	default:
		return m.renderCalendar()
	}
}

func (m *Model) handleCalendarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.left):
		m.cursor = m.cursor.AddDate(0, 0, -1)
	case key.Matches(msg, m.keys.right):
		m.cursor = m.cursor.AddDate(0, 0, 1)
	case key.Matches(msg, m.keys.up):
		m.cursor = m.cursor.AddDate(0, 0, -7)
	case key.Matches(msg, m.keys.down):
		m.cursor = m.cursor.AddDate(0, 0, 7)
	case key.Matches(msg, m.keys.prevMonth):
		m.cursor = calendar.AddMonths(m.cursor, -1)
	case key.Matches(msg, m.keys.nextMonth):
		m.cursor = calendar.AddMonths(m.cursor, 1)
	case key.Matches(msg, m.keys.today):
		m.cursor = calendar.StartOfDay(m.now())
	case key.Matches(msg, m.keys.enter):
		m.openDay()
	case key.Matches(msg, m.keys.theme):
		return m, m.cycleTheme()
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) handleDayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.back):
		m.view = CalendarView
		return m, nil
	case key.Matches(msg, m.keys.toggle):
		if item, ok := m.dayList.SelectedItem().(taskItem); ok {
			if err := m.store.ToggleTaskCompletion(item.task.ID); err != nil {
				return m, reportErr(err)
			}
			return m, m.refreshDay()
		}
		return m, nil
	case key.Matches(msg, m.keys.remove):
		if item, ok := m.dayList.SelectedItem().(taskItem); ok {
			if err := m.store.DeleteTask(item.task.ID); err != nil {
				return m, reportErr(err)
			}
			return m, m.refreshDay()
		}
		return m, nil
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.dayList, cmd = m.dayList.Update(msg)
	return m, cmd
}

func reportErr(err error) tea.Cmd {
	return func() tea.Msg { return errMsg{err: err} }
}

func (m *Model) waitForTheme() tea.Cmd {
	return func() tea.Msg {
		return themeAppliedMsg(<-m.themes)
	}
}

func (m *Model) applyTheme(theme models.Theme) {
	m.theme = theme
	m.styles = NewPalette(theme.Palette)
}

// cycleTheme activates the theme after the current one.
func (m *Model) cycleTheme() tea.Cmd {
	themes := m.store.Themes()
	if len(themes) == 0 {
		return nil
	}
	current, _ := m.store.ActiveTheme()
	next := themes[0]
	for i, t := range themes {
		if t.ID == current.ID {
			next = themes[(i+1)%len(themes)]
			break
		}
	}
	if err := m.store.SetActiveThemeID(next.ID); err != nil {
		return reportErr(err)
	}
	return nil
}

func (m *Model) listSize() (int, int) {
	w, h := m.width-4, m.height-6
	if m.width == 0 {
		w = defaultWidth
	}
	if m.height == 0 {
		h = defaultHeight
	}
	return w, h
}

func (m *Model) dayItems() []list.Item {
	snap := m.store.Snapshot()
	names := views.CategoryNames(snap.Categories)
	tasks := views.GroupByDueDate(snap.Tasks)[calendar.DateKey(m.cursor)]

	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = taskItem{task: t, category: names[t.CategoryID]}
	}
	return items
}

func (m *Model) openDay() {
	w, h := m.listSize()
	m.dayList = list.New(m.dayItems(), list.NewDefaultDelegate(), w, h)
	m.dayList.Title = calendar.FormatLong(calendar.DateKey(m.cursor))
	m.dayList.SetFilteringEnabled(false)
	m.dayList.SetShowHelp(false)
	m.view = DayView
}

func (m *Model) refreshDay() tea.Cmd {
	index := m.dayList.Index()
	cmd := m.dayList.SetItems(m.dayItems())
	if n := len(m.dayList.Items()); n > 0 {
		m.dayList.Select(min(index, n-1))
	}
	return cmd
}

func (m *Model) renderCalendar() string {
	snap := m.store.Snapshot()
	groups := views.GroupByDueDate(snap.Tasks)
	today := calendar.DateKey(m.now())
	selected := calendar.DateKey(m.cursor)

	var b strings.Builder
	b.WriteString(m.styles.title.Render(m.cursor.Format("January 2006")))
	b.WriteString("\n")

	for _, label := range calendar.WeekdayLabels {
		b.WriteString(m.styles.header.Render(fmt.Sprintf("%-6s", label[:2])))
	}
	b.WriteString("\n")

	for _, row := range calendar.MonthMatrix(m.cursor) {
		for _, day := range row {
			b.WriteString(m.renderCell(day, len(groups[day.Key]), today, selected))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderPreview(groups[selected], selected))

	stats := views.PeriodStats(snap.Tasks, m.now())
	b.WriteString("\n")
	b.WriteString(m.styles.muted.Render(fmt.Sprintf(
		"Today %d (%d%%) · Week %d (%d%%) · Month %d (%d%%) · Year %d (%d%%)",
		stats.Today.Total, stats.Today.Percent,
		stats.Week.Total, stats.Week.Percent,
		stats.Month.Total, stats.Month.Percent,
		stats.Year.Total, stats.Year.Percent,
	)))

	return fmt.Sprintf("%s\n%s", m.styles.frame.Render(b.String()), m.help.View(m.keys))
}

func (m *Model) renderCell(day calendar.CalendarDay, count int, today, selected string) string {
	marker := ""
	if count > 0 {
		marker = fmt.Sprintf("•%d", count)
	}
	text := fmt.Sprintf("%2d%-3s ", day.Date.Day(), marker)

	switch {
	case day.Key == selected:
		return m.styles.selected.Render(text)
	case day.Key == today:
		return m.styles.today.Render(text)
	case !day.InMonth:
		return m.styles.outside.Render(text)
	case count > 0:
		return m.styles.busy.Render(text)
	default:
		return m.styles.day.Render(text)
	}
}

func (m *Model) renderPreview(tasks []models.Task, key string) string {
	if len(tasks) == 0 {
		return m.styles.muted.Render(fmt.Sprintf("%s: nothing scheduled", calendar.FormatLong(key))) + "\n"
	}

	var b strings.Builder
	b.WriteString(m.styles.header.Render(fmt.Sprintf("%s: %d tasks, %d%% done", calendar.FormatLong(key), len(tasks), views.CompletionRate(tasks))))
	b.WriteString("\n")
	for i, t := range tasks {
		if i == previewLimit {
			b.WriteString(m.styles.muted.Render(fmt.Sprintf("  +%d more", len(tasks)-previewLimit)))
			b.WriteString("\n")
			break
		}
		mark := "○"
		style := m.styles.day
		if t.Completed {
			mark = "✓"
			style = m.styles.ok
		}
		b.WriteString(style.Render(fmt.Sprintf("  %s %s", mark, t.Title)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderDay() string {
	helpKeys := []key.Binding{m.keys.toggle, m.keys.remove, m.keys.back, m.keys.quit}
	return fmt.Sprintf("%s\n\n%s", m.dayList.View(), m.help.ShortHelpView(helpKeys))
}
