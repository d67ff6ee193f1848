package store

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/falcon/internal/models"
	"github.com/desertthunder/falcon/internal/shared"
	"github.com/desertthunder/falcon/internal/storage"
)

// State is the hydration lifecycle of a [Store].
type State int

const (
	Uninitialized State = iota
	Hydrating
	Ready
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Hydrating:
		return "hydrating"
	case Ready:
		return "ready"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Snapshot is a read-only view of every collection at one point in time.
//
// The slices are shared with the store and must not be modified.
type Snapshot struct {
	Tasks         []models.Task     `json:"tasks" yaml:"tasks"`
	Goals         []models.Goal     `json:"goals" yaml:"goals"`
	Categories    []models.Category `json:"categories" yaml:"categories"`
	Themes        []models.Theme    `json:"themes" yaml:"themes"`
	ActiveThemeID string            `json:"activeThemeId" yaml:"active_theme_id"`
}

// ThemeApplied is delivered to listeners whenever the resolved active theme may have changed.
type ThemeApplied struct {
	Theme models.Theme
	Vars  []models.PaletteVar
}

// Listener receives theme notifications.
type Listener func(ThemeApplied)

// Options configures a [Store]. Nil fields fall back to defaults.
type Options struct {
	Adapter *storage.Adapter
	Logger  *log.Logger
	Clock   func() time.Time // Clock stamps CreatedAt and seeds due dates
	IDs     func() string    // IDs generates entity ids
}

// Store holds the domain state and persists every change.
type Store struct {
	mu      sync.RWMutex
	state   State
	snap    Snapshot
	adapter *storage.Adapter
	logger  *log.Logger
	now     func() time.Time
	newID   func() string

	seq uint64 // commit counter for theme notifications, guarded by mu

	lmu       sync.Mutex
	listeners map[int]Listener
	nextLID   int

	pmu       sync.Mutex
	delivered uint64 // newest notification handed to listeners, guarded by pmu
}

// notification is the theme resolved at one commit.
type notification struct {
	seq     uint64
	applied ThemeApplied
	ok      bool
}

// New creates an uninitialized [Store]. Call [Store.Hydrate] before mutating it.
func New(opts Options) *Store {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Adapter == nil {
		opts.Adapter = storage.NewAdapter(storage.NewMemoryBackend(), opts.Logger)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.IDs == nil {
		opts.IDs = shared.GenerateID
	}
	return &Store{
		adapter:   opts.Adapter,
		logger:    shared.WithLogger(opts.Logger, "component", "store"),
		now:       opts.Clock,
		newID:     opts.IDs,
		listeners: make(map[int]Listener),
	}
}

// State reports the current lifecycle state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Hydrate loads every collection from storage, substituting the built-in seed for anything
// missing, empty or unreadable, and marks the store ready. Seeded collections are saved
// immediately so durable state matches memory.
func (s *Store) Hydrate() error {
	s.mu.Lock()
	if s.state != Uninitialized {
		state := s.state
		s.mu.Unlock()
		return fmt.Errorf("%w: store is %s", shared.ErrAlreadyHydrated, state)
	}
	s.state = Hydrating

	now := s.now()
	var seeded []string
	next := Snapshot{
		Tasks:         storage.Load[[]models.Task](s.adapter, storage.KeyTasks, nil),
		Goals:         storage.Load[[]models.Goal](s.adapter, storage.KeyGoals, nil),
		Categories:    storage.Load[[]models.Category](s.adapter, storage.KeyCategories, nil),
		Themes:        storage.Load[[]models.Theme](s.adapter, storage.KeyThemes, nil),
		ActiveThemeID: storage.Load(s.adapter, storage.KeyActiveThemeID, ""),
	}
	if len(next.Tasks) == 0 {
		next.Tasks = seedTasks(now)
		seeded = append(seeded, storage.KeyTasks)
	}
	if len(next.Goals) == 0 {
		next.Goals = seedGoals(now)
		seeded = append(seeded, storage.KeyGoals)
	}
	if len(next.Categories) == 0 {
		next.Categories = DefaultCategories()
		seeded = append(seeded, storage.KeyCategories)
	}
	if len(next.Themes) == 0 {
		next.Themes = DefaultThemes()
		seeded = append(seeded, storage.KeyThemes)
	}
	if next.ActiveThemeID == "" {
		next.ActiveThemeID = DefaultThemeID
		seeded = append(seeded, storage.KeyActiveThemeID)
	}

	s.snap = next
	s.state = Ready
	s.persist(next, seeded)
	n := s.resolve()
	s.mu.Unlock()

	s.logger.Debug("hydrated", "tasks", len(next.Tasks), "goals", len(next.Goals),
		"categories", len(next.Categories), "themes", len(next.Themes), "seeded", seeded)
	s.publish(n)
	return nil
}

// Snapshot returns the current collections.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func (s *Store) Tasks() []models.Task {
	return s.Snapshot().Tasks
}

func (s *Store) Goals() []models.Goal {
	return s.Snapshot().Goals
}

func (s *Store) Categories() []models.Category {
	return s.Snapshot().Categories
}

func (s *Store) Themes() []models.Theme {
	return s.Snapshot().Themes
}

func (s *Store) ActiveThemeID() string {
	return s.Snapshot().ActiveThemeID
}

// Task looks up a task by id.
func (s *Store) Task(id string) (models.Task, bool) {
	return find(s.Tasks(), func(t models.Task) bool { return t.ID == id })
}

// Goal looks up a goal by id.
func (s *Store) Goal(id string) (models.Goal, bool) {
	return find(s.Goals(), func(g models.Goal) bool { return g.ID == id })
}

// Category looks up a category by id.
func (s *Store) Category(id string) (models.Category, bool) {
	return find(s.Categories(), func(c models.Category) bool { return c.ID == id })
}

// Theme looks up a theme by id.
func (s *Store) Theme(id string) (models.Theme, bool) {
	return find(s.Themes(), func(t models.Theme) bool { return t.ID == id })
}

// ActiveTheme resolves the active theme id, falling back to the first theme when the id
// matches nothing. It reports false only when there are no themes at all.
func (s *Store) ActiveTheme() (models.Theme, bool) {
	return resolveTheme(s.Snapshot())
}

func resolveTheme(snap Snapshot) (models.Theme, bool) {
	if t, ok := find(snap.Themes, func(t models.Theme) bool { return t.ID == snap.ActiveThemeID }); ok {
		return t, true
	}
	if len(snap.Themes) > 0 {
		return snap.Themes[0], true
	}
	return models.Theme{}, false
}

// Subscribe registers fn for theme notifications and returns a function that removes it.
// When the store is already ready, fn is called once with the current theme before Subscribe returns.
//
// Listeners are called one at a time in commit order and must not mutate the store.
func (s *Store) Subscribe(fn Listener) func() {
	s.lmu.Lock()
	id := s.nextLID
	s.nextLID++
	s.listeners[id] = fn
	s.lmu.Unlock()

	s.mu.RLock()
	ready := s.state == Ready
	seq := s.seq
	theme, ok := resolveTheme(s.snap)
	s.mu.RUnlock()

	if ready && ok {
		s.pmu.Lock()
		// Skip when a newer commit has already reached fn through publish.
		if s.delivered <= seq {
			fn(ThemeApplied{Theme: theme, Vars: theme.Palette.Vars()})
		}
		s.pmu.Unlock()
	}

	return func() {
		s.lmu.Lock()
		delete(s.listeners, id)
		s.lmu.Unlock()
	}
}

// resolve numbers the current commit and captures its active theme. The caller holds mu.
func (s *Store) resolve() notification {
	s.seq++
	n := notification{seq: s.seq}
	if theme, ok := resolveTheme(s.snap); ok {
		n.applied = ThemeApplied{Theme: theme, Vars: theme.Palette.Vars()}
		n.ok = true
	}
	return n
}

// publish hands n to every listener unless a later commit has already been delivered.
func (s *Store) publish(n notification) {
	s.pmu.Lock()
	defer s.pmu.Unlock()

	if n.seq <= s.delivered {
		s.logger.Debug("theme notification superseded", "seq", n.seq, "delivered", s.delivered)
		return
	}
	s.delivered = n.seq
	if !n.ok {
		s.logger.Warn("no theme to apply")
		return
	}

	s.lmu.Lock()
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]Listener, 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.listeners[id])
	}
	s.lmu.Unlock()

	for _, fn := range fns {
		fn(n.applied)
	}
}

// mutate runs fn against a copy of the current snapshot under the write lock. fn replaces
// whichever collections it changes and returns their storage keys; an empty result is a no-op.
func (s *Store) mutate(op, id string, fn func(next *Snapshot) []string) error {
	s.mu.Lock()
	if s.state != Ready {
		state := s.state
		s.mu.Unlock()
		return fmt.Errorf("%w: cannot %s while store is %s", shared.ErrNotReady, op, state)
	}

	next := s.snap
	keys := fn(&next)
	if len(keys) == 0 {
		s.mu.Unlock()
		s.logger.Debug("no change", "op", op, "id", id)
		return nil
	}
	s.snap = next
	s.persist(next, keys)
	themed := slices.Contains(keys, storage.KeyThemes) || slices.Contains(keys, storage.KeyActiveThemeID)
	var n notification
	if themed {
		n = s.resolve()
	}
	s.mu.Unlock()

	s.logger.Debug("committed", "op", op, "id", id, "keys", keys)
	if themed {
		s.publish(n)
	}
	return nil
}

// persist saves each named collection of snap. Failures are logged; memory stays authoritative.
func (s *Store) persist(snap Snapshot, keys []string) {
	for _, key := range keys {
		var err error
		switch key {
		case storage.KeyTasks:
			err = storage.Save(s.adapter, key, snap.Tasks)
		case storage.KeyGoals:
			err = storage.Save(s.adapter, key, snap.Goals)
		case storage.KeyCategories:
			err = storage.Save(s.adapter, key, snap.Categories)
		case storage.KeyThemes:
			err = storage.Save(s.adapter, key, snap.Themes)
		case storage.KeyActiveThemeID:
			err = storage.Save(s.adapter, key, snap.ActiveThemeID)
		}
		if err != nil {
			s.logger.Warn("failed to persist collection", "key", key, "error", err)
		}
	}
}
