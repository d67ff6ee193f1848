package store

import (
	"time"

	"github.com/desertthunder/falcon/internal/calendar"
	"github.com/desertthunder/falcon/internal/models"
)

// DefaultThemeID is the built-in theme selected when nothing else is.
const DefaultThemeID = "default-dark"

// DefaultCategories returns the built-in category catalog.
func DefaultCategories() []models.Category {
	return []models.Category{
		{ID: "cat-spiritual", Name: "Spiritual", Color: "#8B5CF6"},
		{ID: "cat-fitness", Name: "Physical Fitness", Color: "#22C55E"},
		{ID: "cat-academics", Name: "Academics", Color: "#38BDF8"},
		{ID: "cat-career", Name: "Career", Color: "#F97316"},
	}
}

// DefaultThemes returns the two built-in themes.
func DefaultThemes() []models.Theme {
	return []models.Theme{
		{
			ID:   DefaultThemeID,
			Name: "Falcon Dark",
			Palette: models.Palette{
				Background: "#0b0f1a",
				Surface:    "#121827",
				SurfaceAlt: "#1a2238",
				Text:       "#f8fafc",
				Muted:      "#94a3b8",
				Accent:     "#8b5cf6",
				AccentSoft: "#312e81",
				Border:     "#1f2937",
			},
			IsDefault: true,
		},
		{
			ID:   "midnight-blue",
			Name: "Midnight Blue",
			Palette: models.Palette{
				Background: "#0f172a",
				Surface:    "#1e293b",
				SurfaceAlt: "#273449",
				Text:       "#e2e8f0",
				Muted:      "#94a3b8",
				Accent:     "#38bdf8",
				AccentSoft: "#0b2a3a",
				Border:     "#334155",
			},
			IsDefault: true,
		},
	}
}

// seedTasks returns the starter tasks: one due today and one due tomorrow.
func seedTasks(now time.Time) []models.Task {
	return []models.Task{
		{
			ID:          "task-1",
			Title:       "Plan weekly focus",
			Description: "Pick 3 priority tasks and align calendar blocks.",
			DueDate:     calendar.DateKey(now),
			Priority:    models.PriorityHigh,
			CategoryID:  "cat-career",
			CreatedAt:   now,
		},
		{
			ID:          "task-2",
			Title:       "Evening stretch",
			Description: "15-minute recovery stretch to reset.",
			DueDate:     calendar.DateKey(now.AddDate(0, 0, 1)),
			Priority:    models.PriorityMedium,
			CategoryID:  "cat-fitness",
			CreatedAt:   now,
		},
	}
}

func seedGoals(now time.Time) []models.Goal {
	return []models.Goal{
		{
			ID:          "goal-1",
			Title:       "Read 12 books",
			Description: "One book every month.",
			Level:       models.LevelYearly,
			Progress:    35,
			CategoryID:  "cat-academics",
			CreatedAt:   now,
		},
		{
			ID:          "goal-2",
			Title:       "Daily gratitude",
			Description: "Write 3 things each morning.",
			Level:       models.LevelDaily,
			Progress:    60,
			CategoryID:  "cat-spiritual",
			CreatedAt:   now,
		},
	}
}
