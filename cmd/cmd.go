// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// taskCommand handles task operations
func taskCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "task",
		Aliases: []string{"t"},
		Usage:   "Manage dated tasks",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a task",
				ArgsUsage: "<title>",
				Arguments: []cli.Argument{&cli.StringArg{Name: "title"}},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "due", Aliases: []string{"d"}, Usage: "Due date (YYYY-MM-DD); defaults to today"},
					&cli.StringFlag{Name: "priority", Aliases: []string{"p"}, Usage: "Priority: low, medium or high", Value: "medium"},
					&cli.StringFlag{Name: "category", Usage: "Category ID"},
					&cli.StringFlag{Name: "description", Usage: "Task description"},
				},
				Action: r.TaskAdd,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List tasks ordered by due date",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "Match title or description"},
					&cli.StringFlag{Name: "priority", Aliases: []string{"p"}, Usage: "Only this priority"},
					&cli.StringFlag{Name: "category", Usage: "Only this category ID"},
					&cli.StringFlag{Name: "status", Usage: "all, open or done", Value: "all"},
					&cli.StringFlag{Name: "within", Usage: "Only tasks due today, week, month or year"},
				},
				Action: r.TaskList,
			},
			{
				Name:      "update",
				Usage:     "Update fields of a task",
				ArgsUsage: "<id>",
				Arguments: []cli.Argument{&cli.StringArg{Name: "id"}},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Usage: "New title"},
					&cli.StringFlag{Name: "description", Usage: "New description"},
					&cli.StringFlag{Name: "due", Aliases: []string{"d"}, Usage: "New due date (YYYY-MM-DD)"},
					&cli.StringFlag{Name: "priority", Aliases: []string{"p"}, Usage: "New priority"},
					&cli.StringFlag{Name: "category", Usage: "New category ID; empty clears it"},
				},
				Action: r.TaskUpdate,
			},
			{
				Name:      "done",
				Usage:     "Toggle task completion",
				ArgsUsage: "<id>",
				Arguments: []cli.Argument{&cli.StringArg{Name: "id"}},
				Action:    r.TaskDone,
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Delete a task",
				ArgsUsage: "<id>",
				Arguments: []cli.Argument{&cli.StringArg{Name: "id"}},
				Action:    r.TaskDelete,
			},
		},
	}
}

// goalCommand handles goal operations
func goalCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "goal",
		Aliases: []string{"g"},
		Usage:   "Manage goals and their progress",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a goal",
				ArgsUsage: "<title>",
				Arguments: []cli.Argument{&cli.StringArg{Name: "title"}},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "level", Aliases: []string{"l"}, Usage: "Cadence: daily, monthly or yearly", Value: "monthly"},
					&cli.IntFlag{Name: "progress", Usage: "Initial progress (0-100)"},
					&cli.StringFlag{Name: "category", Usage: "Category ID"},
					&cli.StringFlag{Name: "target", Usage: "Target date (YYYY-MM-DD)"},
					&cli.StringFlag{Name: "description", Usage: "Goal description"},
				},
				Action: r.GoalAdd,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List goals with cadence averages",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "level", Aliases: []string{"l"}, Usage: "Only this cadence"},
				},
				Action: r.GoalList,
			},
			{
				Name:      "progress",
				Usage:     "Set or adjust goal progress",
				ArgsUsage: "<id>",
				Arguments: []cli.Argument{&cli.StringArg{Name: "id"}},
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "set", Usage: "Absolute progress (0-100)"},
					&cli.IntFlag{Name: "add", Usage: "Relative change; may be negative"},
				},
				Action: r.GoalProgress,
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Delete a goal",
				ArgsUsage: "<id>",
				Arguments: []cli.Argument{&cli.StringArg{Name: "id"}},
				Action:    r.GoalDelete,
			},
		},
	}
}

// categoryCommand handles category operations
func categoryCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "category",
		Aliases: []string{"cat"},
		Usage:   "Manage categories",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a category",
				ArgsUsage: "<name>",
				Arguments: []cli.Argument{&cli.StringArg{Name: "name"}},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "color", Usage: "Hex color", Value: "#94A3B8"},
				},
				Action: r.CategoryAdd,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List categories with usage counts",
				Action:  r.CategoryList,
			},
			{
				Name:      "update",
				Usage:     "Rename or recolor a category",
				ArgsUsage: "<id>",
				Arguments: []cli.Argument{&cli.StringArg{Name: "id"}},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "New name"},
					&cli.StringFlag{Name: "color", Usage: "New hex color"},
				},
				Action: r.CategoryUpdate,
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Delete a category and clear it from tasks and goals",
				ArgsUsage: "<id>",
				Arguments: []cli.Argument{&cli.StringArg{Name: "id"}},
				Action:    r.CategoryDelete,
			},
		},
	}
}

// themeCommand handles theme operations
func themeCommand(r *Runner) *cli.Command {
	paletteFlags := []cli.Flag{
		&cli.StringFlag{Name: "from", Usage: "Theme ID whose palette is the starting point", Value: "default-dark"},
	}
	for _, slot := range paletteSlots {
		paletteFlags = append(paletteFlags, &cli.StringFlag{Name: slot, Usage: "Hex color for the " + slot + " slot"})
	}

	return &cli.Command{
		Name:  "theme",
		Usage: "Manage color themes",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a theme",
				ArgsUsage: "<name>",
				Arguments: []cli.Argument{&cli.StringArg{Name: "name"}},
				Flags:     paletteFlags,
				Action:    r.ThemeAdd,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List themes; the active one is marked",
				Action:  r.ThemeList,
			},
			{
				Name:      "use",
				Usage:     "Activate a theme",
				ArgsUsage: "<id>",
				Arguments: []cli.Argument{&cli.StringArg{Name: "id"}},
				Action:    r.ThemeUse,
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Delete a custom theme",
				ArgsUsage: "<id>",
				Arguments: []cli.Argument{&cli.StringArg{Name: "id"}},
				Action:    r.ThemeDelete,
			},
		},
	}
}

func dashboardCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "dashboard",
		Aliases: []string{"dash"},
		Usage:   "Show completion stats, goal momentum and upcoming focus",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Usage: "Reference day (YYYY-MM-DD); defaults to today"},
			&cli.IntFlag{Name: "limit", Usage: "Number of upcoming tasks; defaults to dashboard.upcoming_limit"},
		},
		Action: r.Dashboard,
	}
}

func calendarCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "calendar",
		Aliases: []string{"cal"},
		Usage:   "Print a month grid with per-day task counts",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "month", Aliases: []string{"m"}, Usage: "Month to show (YYYY-MM); defaults to the current month"},
		},
		Action: r.Calendar,
	}
}

func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export tasks and goals",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "csv, markdown, text, json or yaml", Value: "markdown"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file path; stdout when empty"},
		},
		Action: r.Export,
	}
}

func restoreCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "restore",
		Usage:     "Replace stored state with a YAML backup written by 'export --format yaml'",
		ArgsUsage: "<file>",
		Arguments: []cli.Argument{&cli.StringArg{Name: "file"}},
		Action:    r.Restore,
	}
}

// setupCommand handles setup operations for configuration and storage.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Write a configuration file from the embedded template",
				Action: r.SetupConfig,
			},
			{
				Name:  "database",
				Usage: "Initialize the SQLite database and run migrations",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "rollback", Usage: "Roll back the most recent migration instead"},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for the interactive calendar.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive calendar",
		Action:  r.TUI,
	}
}
