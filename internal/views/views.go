// package views derives read-only projections from a store snapshot: day buckets,
// completion rates, goal momentum and upcoming focus. Nothing here mutates or persists.
package views

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/desertthunder/falcon/internal/calendar"
	"github.com/desertthunder/falcon/internal/models"
)

// UpcomingLimit is the number of open tasks shown as upcoming focus.
const UpcomingLimit = 5

// PeriodStat summarizes the tasks due within one period.
type PeriodStat struct {
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// Dashboard holds completion stats for the periods around a reference day.
type Dashboard struct {
	Today PeriodStat `json:"today"`
	Week  PeriodStat `json:"week"`
	Month PeriodStat `json:"month"`
	Year  PeriodStat `json:"year"`
}

// GoalSnapshot is the average progress of the goals at one cadence.
type GoalSnapshot struct {
	Level   models.GoalLevel `json:"level"`
	Average int              `json:"average"`
	Total   int              `json:"total"`
}

// GroupByDueDate buckets tasks by due date key, keeping collection order inside each bucket.
func GroupByDueDate(tasks []models.Task) map[string][]models.Task {
	byDay := make(map[string][]models.Task)
	for _, t := range tasks {
		byDay[t.DueDate] = append(byDay[t.DueDate], t)
	}
	return byDay
}

// CompletionRate returns the rounded percentage of completed tasks, or 0 for an empty list.
func CompletionRate(tasks []models.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	return roundPercent(float64(done) * 100 / float64(len(tasks)))
}

// GoalAverage returns the rounded mean progress of the goals at level, or 0 when there are none.
func GoalAverage(goals []models.Goal, level models.GoalLevel) int {
	return snapshot(goals, level).Average
}

// GoalSnapshots returns one [GoalSnapshot] per cadence, daily first.
func GoalSnapshots(goals []models.Goal) []GoalSnapshot {
	snaps := make([]GoalSnapshot, 0, len(models.GoalLevels))
	for _, level := range models.GoalLevels {
		snaps = append(snaps, snapshot(goals, level))
	}
	return snaps
}

func snapshot(goals []models.Goal, level models.GoalLevel) GoalSnapshot {
	s := GoalSnapshot{Level: level}
	sum := 0
	for _, g := range goals {
		if g.Level == level {
			s.Total++
			sum += g.Progress
		}
	}
	if s.Total > 0 {
		s.Average = roundPercent(float64(sum) / float64(s.Total))
	}
	return s
}

// Upcoming returns up to n incomplete tasks ordered by due date. Ties keep collection order.
func Upcoming(tasks []models.Task, n int) []models.Task {
	open := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			open = append(open, t)
		}
	}
	sortByDueDate(open)

	if n >= 0 && len(open) > n {
		open = open[:n]
	}
	return open
}

// TasksWithin returns the tasks due inside r, in collection order.
func TasksWithin(tasks []models.Task, r calendar.Range) []models.Task {
	var in []models.Task
	for _, t := range tasks {
		if r.Contains(t.DueDate) {
			in = append(in, t)
		}
	}
	return in
}

// PeriodStats computes the dashboard cards for the day, week, month and year around today.
func PeriodStats(tasks []models.Task, today time.Time) Dashboard {
	stat := func(r calendar.Range) PeriodStat {
		in := TasksWithin(tasks, r)
		return PeriodStat{Total: len(in), Percent: CompletionRate(in)}
	}

	return Dashboard{
		Today: stat(calendar.Day(today)),
		Week:  stat(calendar.Week(today)),
		Month: stat(calendar.Month(today)),
		Year:  stat(calendar.Year(today)),
	}
}

// CategoryNames maps category ids to names.
func CategoryNames(categories []models.Category) map[string]string {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names
}

// CategorySuffix renders " [Name]" for a category id found in names, or "" for none.
func CategorySuffix(names map[string]string, id string) string {
	if name, ok := names[id]; ok && id != "" {
		return " [" + name + "]"
	}
	return ""
}

// LevelTitle capitalizes a cadence for headings: "daily" becomes "Daily".
func LevelTitle(level models.GoalLevel) string {
	if level == "" {
		return ""
	}
	return strings.ToUpper(string(level[:1])) + string(level[1:])
}

// Status filters tasks by completion.
type Status string

const (
	StatusAll  Status = "all"
	StatusOpen Status = "open"
	StatusDone Status = "done"
)

// TaskFilter narrows a task list. Zero values match everything.
type TaskFilter struct {
	Search     string          // case-insensitive substring of title or description
	Priority   models.Priority // empty matches any priority
	CategoryID string          // empty matches any category
	Status     Status          // empty is treated as [StatusAll]
}

// Match reports whether t passes every criterion of f.
func (f TaskFilter) Match(t models.Task) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(t.Title), q) && !strings.Contains(strings.ToLower(t.Description), q) {
			return false
		}
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	if f.CategoryID != "" && t.CategoryID != f.CategoryID {
		return false
	}
	switch f.Status {
	case StatusOpen:
		return !t.Completed
	case StatusDone:
		return t.Completed
	}
	return true
}

// FilterTasks returns the tasks matching f ordered by due date. Ties keep collection order.
func FilterTasks(tasks []models.Task, f TaskFilter) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	sortByDueDate(out)
	return out
}

// FilterGoals returns the goals at level; an empty level returns all goals.
func FilterGoals(goals []models.Goal, level models.GoalLevel) []models.Goal {
	var out []models.Goal
	for _, g := range goals {
		if level == "" || g.Level == level {
			out = append(out, g)
		}
	}
	return out
}

// sortByDueDate stably orders tasks by due date key; YYYY-MM-DD keys sort lexically.
func sortByDueDate(tasks []models.Task) {
	slices.SortStableFunc(tasks, func(a, b models.Task) int {
		return cmp.Compare(a.DueDate, b.DueDate)
	})
}

// roundPercent rounds half away from zero.
func roundPercent(v float64) int {
	return int(math.Round(v))
}
