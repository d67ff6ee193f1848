package models

import "time"

// Priority ranks a [Task].
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every [Priority] from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// GoalLevel is the review cadence of a [Goal], not a deadline.
type GoalLevel string

const (
	LevelDaily   GoalLevel = "daily"
	LevelMonthly GoalLevel = "monthly"
	LevelYearly  GoalLevel = "yearly"
)

// GoalLevels lists every [GoalLevel] from shortest to longest cadence.
var GoalLevels = []GoalLevel{LevelDaily, LevelMonthly, LevelYearly}

// Task is a dated to-do item. DueDate is a YYYY-MM-DD date key.
type Task struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description,omitempty"`
	DueDate     string    `json:"dueDate" yaml:"due_date"`
	Priority    Priority  `json:"priority" yaml:"priority"`
	CategoryID  string    `json:"categoryId,omitempty" yaml:"category_id,omitempty"`
	Completed   bool      `json:"completed" yaml:"completed"`
	CreatedAt   time.Time `json:"createdAt" yaml:"created_at"`
}

// Goal tracks progress (0-100) toward an objective reviewed at a [GoalLevel] cadence.
type Goal struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description,omitempty"`
	Level       GoalLevel `json:"level" yaml:"level"`
	CategoryID  string    `json:"categoryId,omitempty" yaml:"category_id,omitempty"`
	TargetDate  string    `json:"targetDate,omitempty" yaml:"target_date,omitempty"`
	Progress    int       `json:"progress" yaml:"progress"`
	CreatedAt   time.Time `json:"createdAt" yaml:"created_at"`
}

// Category groups tasks and goals under a display color.
type Category struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
}

// Theme is a named palette. IsDefault marks the built-in themes.
type Theme struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Palette   Palette `json:"palette" yaml:"palette"`
	IsDefault bool    `json:"isDefault,omitempty" yaml:"is_default,omitempty"`
}

// NewTask holds the caller-supplied fields of a [Task].
type NewTask struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	DueDate     string   `json:"dueDate" validate:"required,datekey"`
	Priority    Priority `json:"priority" validate:"required,oneof=low medium high"`
	CategoryID  string   `json:"categoryId"`
	Completed   bool     `json:"completed"`
}

// NewGoal holds the caller-supplied fields of a [Goal].
type NewGoal struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Level       GoalLevel `json:"level" validate:"required,oneof=daily monthly yearly"`
	CategoryID  string    `json:"categoryId"`
	TargetDate  string    `json:"targetDate" validate:"omitempty,datekey"`
	Progress    int       `json:"progress" validate:"min=0,max=100"`
}

// NewCategory holds the caller-supplied fields of a [Category].
type NewCategory struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color" validate:"required,hexcolor"`
}

// NewTheme holds the caller-supplied fields of a [Theme].
type NewTheme struct {
	Name      string  `json:"name" validate:"required"`
	Palette   Palette `json:"palette"`
	IsDefault bool    `json:"isDefault"`
}

// ClampProgress bounds p to the inclusive range [0, 100].
func ClampProgress(p int) int {
	return min(max(p, 0), 100)
}
