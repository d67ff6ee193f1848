package store

import (
	"github.com/desertthunder/falcon/internal/models"
	"github.com/desertthunder/falcon/internal/storage"
)

// AddTask creates a task from in and places it first in the collection.
func (s *Store) AddTask(in models.NewTask) (models.Task, error) {
	var task models.Task
	err := s.mutate("add task", "", func(next *Snapshot) []string {
		task = models.Task{
			ID:          s.newID(),
			Title:       in.Title,
			Description: in.Description,
			DueDate:     in.DueDate,
			Priority:    in.Priority,
			CategoryID:  in.CategoryID,
			Completed:   in.Completed,
			CreatedAt:   s.now(),
		}
		next.Tasks = prepend(next.Tasks, task)
		return []string{storage.KeyTasks}
	})
	return task, err
}

// UpdateTask applies patch to the task with id.
func (s *Store) UpdateTask(id string, patch models.TaskPatch) error {
	return s.mutate("update task", id, func(next *Snapshot) []string {
		tasks, ok := replace(next.Tasks, func(t models.Task) bool { return t.ID == id }, patch.Apply)
		if !ok {
			return nil
		}
		next.Tasks = tasks
		return []string{storage.KeyTasks}
	})
}

// DeleteTask removes the task with id.
func (s *Store) DeleteTask(id string) error {
	return s.mutate("delete task", id, func(next *Snapshot) []string {
		tasks, ok := remove(next.Tasks, func(t models.Task) bool { return t.ID == id })
		if !ok {
			return nil
		}
		next.Tasks = tasks
		return []string{storage.KeyTasks}
	})
}

// ToggleTaskCompletion flips the completed flag of the task with id.
func (s *Store) ToggleTaskCompletion(id string) error {
	return s.mutate("toggle task", id, func(next *Snapshot) []string {
		tasks, ok := replace(next.Tasks, func(t models.Task) bool { return t.ID == id }, func(t models.Task) models.Task {
			t.Completed = !t.Completed
			return t
		})
		if !ok {
			return nil
		}
		next.Tasks = tasks
		return []string{storage.KeyTasks}
	})
}

// AddGoal creates a goal from in, clamping its progress, and places it first.
func (s *Store) AddGoal(in models.NewGoal) (models.Goal, error) {
	var goal models.Goal
	err := s.mutate("add goal", "", func(next *Snapshot) []string {
		goal = models.Goal{
			ID:          s.newID(),
			Title:       in.Title,
			Description: in.Description,
			Level:       in.Level,
			CategoryID:  in.CategoryID,
			TargetDate:  in.TargetDate,
			Progress:    models.ClampProgress(in.Progress),
			CreatedAt:   s.now(),
		}
		next.Goals = prepend(next.Goals, goal)
		return []string{storage.KeyGoals}
	})
	return goal, err
}

// UpdateGoal applies patch to the goal with id. Progress is clamped to [0, 100].
func (s *Store) UpdateGoal(id string, patch models.GoalPatch) error {
	return s.mutate("update goal", id, func(next *Snapshot) []string {
		goals, ok := replace(next.Goals, func(g models.Goal) bool { return g.ID == id }, func(g models.Goal) models.Goal {
			g = patch.Apply(g)
			g.Progress = models.ClampProgress(g.Progress)
			return g
		})
		if !ok {
			return nil
		}
		next.Goals = goals
		return []string{storage.KeyGoals}
	})
}

func (s *Store) DeleteGoal(id string) error {
	return s.mutate("delete goal", id, func(next *Snapshot) []string {
		goals, ok := remove(next.Goals, func(g models.Goal) bool { return g.ID == id })
		if !ok {
			return nil
		}
		next.Goals = goals
		return []string{storage.KeyGoals}
	})
}

func (s *Store) AddCategory(in models.NewCategory) (models.Category, error) {
	var category models.Category
	err := s.mutate("add category", "", func(next *Snapshot) []string {
		category = models.Category{ID: s.newID(), Name: in.Name, Color: in.Color}
		next.Categories = prepend(next.Categories, category)
		return []string{storage.KeyCategories}
	})
	return category, err
}

func (s *Store) UpdateCategory(id string, patch models.CategoryPatch) error {
	return s.mutate("update category", id, func(next *Snapshot) []string {
		categories, ok := replace(next.Categories, func(c models.Category) bool { return c.ID == id }, patch.Apply)
		if !ok {
			return nil
		}
		next.Categories = categories
		return []string{storage.KeyCategories}
	})
}

// DeleteCategory removes the category with id and clears it from every task and goal that
// referenced it. All three collections are saved when changed.
func (s *Store) DeleteCategory(id string) error {
	return s.mutate("delete category", id, func(next *Snapshot) []string {
		categories, ok := remove(next.Categories, func(c models.Category) bool { return c.ID == id })
		if !ok {
			return nil
		}
		next.Categories = categories
		keys := []string{storage.KeyCategories}

		if tasks, ok := replace(next.Tasks, func(t models.Task) bool { return t.CategoryID == id }, func(t models.Task) models.Task {
			t.CategoryID = ""
			return t
		}); ok {
			next.Tasks = tasks
			keys = append(keys, storage.KeyTasks)
		}
		if goals, ok := replace(next.Goals, func(g models.Goal) bool { return g.CategoryID == id }, func(g models.Goal) models.Goal {
			g.CategoryID = ""
			return g
		}); ok {
			next.Goals = goals
			keys = append(keys, storage.KeyGoals)
		}
		return keys
	})
}

func (s *Store) AddTheme(in models.NewTheme) (models.Theme, error) {
	var theme models.Theme
	err := s.mutate("add theme", "", func(next *Snapshot) []string {
		theme = models.Theme{ID: s.newID(), Name: in.Name, Palette: in.Palette, IsDefault: in.IsDefault}
		next.Themes = prepend(next.Themes, theme)
		return []string{storage.KeyThemes}
	})
	return theme, err
}

func (s *Store) UpdateTheme(id string, patch models.ThemePatch) error {
	return s.mutate("update theme", id, func(next *Snapshot) []string {
		themes, ok := replace(next.Themes, func(t models.Theme) bool { return t.ID == id }, patch.Apply)
		if !ok {
			return nil
		}
		next.Themes = themes
		return []string{storage.KeyThemes}
	})
}

// DeleteTheme removes the theme with id. Deleting the active theme selects [DefaultThemeID].
func (s *Store) DeleteTheme(id string) error {
	return s.mutate("delete theme", id, func(next *Snapshot) []string {
		themes, ok := remove(next.Themes, func(t models.Theme) bool { return t.ID == id })
		if !ok {
			return nil
		}
		next.Themes = themes
		keys := []string{storage.KeyThemes}
		if next.ActiveThemeID == id && id != DefaultThemeID {
			next.ActiveThemeID = DefaultThemeID
			keys = append(keys, storage.KeyActiveThemeID)
		}
		return keys
	})
}

// SetActiveThemeID selects a theme. The id is not checked; an unknown id renders the first theme.
func (s *Store) SetActiveThemeID(id string) error {
	return s.mutate("set active theme", id, func(next *Snapshot) []string {
		if next.ActiveThemeID == id {
			return nil
		}
		next.ActiveThemeID = id
		return []string{storage.KeyActiveThemeID}
	})
}
