package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/falcon/internal/formatter"
	"github.com/desertthunder/falcon/internal/models"
	"github.com/desertthunder/falcon/internal/shared"
	"github.com/desertthunder/falcon/internal/storage"
	"github.com/desertthunder/falcon/internal/store"
	tu "github.com/desertthunder/falcon/internal/testing"
)

// Thursday
var fixedNow = time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	logger := shared.NewLogger(&bytes.Buffer{})
	s := store.New(store.Options{
		Adapter: storage.NewAdapter(storage.NewMemoryBackend(), logger),
		Logger:  logger,
		Clock:   func() time.Time { return fixedNow },
		IDs:     tu.Sequence("id"),
	})
	if err := s.Hydrate(); err != nil {
		t.Fatalf("failed to hydrate store: %v", err)
	}
	return s
}

// run executes the CLI with args against r and returns what it printed.
func run(t *testing.T, r *Runner, args ...string) (string, error) {
	t.Helper()

	output := &bytes.Buffer{}
	r.output = output
	argv := append([]string{"falcon", "--config", filepath.Join(t.TempDir(), "missing.toml")}, args...)
	err := newApp(r).Run(context.Background(), argv)
	return output.String(), err
}

func newTestRunner(t *testing.T) (*Runner, *store.Store) {
	t.Helper()

	s := newTestStore(t)
	return NewRunner(RunnerOpts{
		Logger: shared.NewLogger(&bytes.Buffer{}),
		Store:  s,
		Now:    func() time.Time { return fixedNow },
	}), s
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			s := newTestStore(t)

			runner := NewRunner(RunnerOpts{
				Config:     config,
				ConfigPath: "/test/path/config.toml",
				Logger:     logger,
				Output:     output,
				Store:      s,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.store != s {
				t.Error("expected store to be set")
			}
			if runner.configPath != "/test/path/config.toml" {
				t.Errorf("expected configPath to be set, got %s", runner.configPath)
			}
		})

		t.Run("with nil fields uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
			if runner.now == nil {
				t.Error("expected clock to default to time.Now")
			}
			if runner.store != nil {
				t.Error("expected store to be opened lazily")
			}
		})
	})

	t.Run("Store", func(t *testing.T) {
		t.Run("opens the configured backend once", func(t *testing.T) {
			config := shared.DefaultConfig()
			config.Storage.Driver = "memory"
			runner := NewRunner(RunnerOpts{Config: config, Logger: shared.NewLogger(&bytes.Buffer{})})

			first, err := runner.Store()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			second, _ := runner.Store()
			if first != second {
				t.Error("expected the same store on every call")
			}
			if first.State() != store.Ready {
				t.Errorf("expected hydrated store, got %v", first.State())
			}
			if err := runner.Close(); err != nil {
				t.Errorf("Close() error = %v", err)
			}
		})

		t.Run("unknown driver", func(t *testing.T) {
			config := shared.DefaultConfig()
			config.Storage.Driver = "redis"
			runner := NewRunner(RunnerOpts{Config: config})

			if _, err := runner.Store(); !errors.Is(err, shared.ErrUnknownDriver) {
				t.Errorf("expected ErrUnknownDriver, got %v", err)
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"key": "value"}, true); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"key": "value"}, false); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			expected := `{"key":"value"}` + "\n"
			if output.String() != expected {
				t.Errorf("expected %q, got %q", expected, output.String())
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			err := runner.writeJSON(make(chan int), false)
			if err == nil || !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil || !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			limitedWriter := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limitedWriter})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil || !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlain("hello %s", "world"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if output.String() != "hello world" {
				t.Errorf("expected 'hello world', got %q", output.String())
			}
		})

		t.Run("writePlainln wraps with newlines", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlainln("section"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if output.String() != "\nsection\n" {
				t.Errorf("expected wrapped text, got %q", output.String())
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writePlain("test")
			if err == nil || !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		if len(commands) == 0 {
			t.Error("expected at least one command to be registered")
		}

		for i, cmd := range commands {
			if cmd == nil {
				t.Errorf("command at index %d is nil", i)
			}
		}
	})
}

func TestTaskCommands(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		r, s := newTestRunner(t)

		out, err := run(t, r, "task", "add", "--due", "2024-03-09", "--priority", "high", "--category", "cat-career", "Write report")
		if err != nil {
			t.Fatalf("task add failed: %v", err)
		}
		if out != "✓ Added task id-1: Write report (due Mar 9)\n" {
			t.Errorf("unexpected output %q", out)
		}
		task, ok := s.Task("id-1")
		if !ok || task.Priority != models.PriorityHigh || task.CategoryID != "cat-career" {
			t.Errorf("stored task = %+v", task)
		}
	})

	t.Run("add defaults the due date to today", func(t *testing.T) {
		r, s := newTestRunner(t)

		if _, err := run(t, r, "task", "add", "Call mom"); err != nil {
			t.Fatalf("task add failed: %v", err)
		}
		task, _ := s.Task("id-1")
		if task.DueDate != "2024-03-07" || task.Priority != models.PriorityMedium {
			t.Errorf("task = %+v", task)
		}
	})

	t.Run("add rejects invalid input", func(t *testing.T) {
		tt := []struct {
			name string
			args []string
			want error
		}{
			{"missing title", []string{"task", "add"}, shared.ErrInvalidInput},
			{"bad priority", []string{"task", "add", "--priority", "urgent", "x"}, shared.ErrInvalidInput},
			{"bad due date", []string{"task", "add", "--due", "03/09/2024", "x"}, shared.ErrInvalidInput},
			{"unknown category", []string{"task", "add", "--category", "cat-nope", "x"}, shared.ErrCategoryNotFound},
		}

		for _, tc := range tt {
			t.Run(tc.name, func(t *testing.T) {
				r, s := newTestRunner(t)
				_, err := run(t, r, tc.args...)
				if !errors.Is(err, tc.want) {
					t.Errorf("expected %v, got %v", tc.want, err)
				}
				if len(s.Tasks()) != 2 {
					t.Errorf("rejected input reached the store")
				}
			})
		}
	})

	t.Run("list as JSON", func(t *testing.T) {
		r, _ := newTestRunner(t)
		if _, err := run(t, r, "task", "done", "task-2"); err != nil {
			t.Fatal(err)
		}

		out, err := run(t, r, "--json", "task", "list", "--status", "open")
		if err != nil {
			t.Fatalf("task list failed: %v", err)
		}
		var tasks []models.Task
		if err := json.Unmarshal([]byte(out), &tasks); err != nil {
			t.Fatalf("invalid JSON %q: %v", out, err)
		}
		if len(tasks) != 1 || tasks[0].ID != "task-1" {
			t.Errorf("tasks = %+v", tasks)
		}
	})

	t.Run("list as text", func(t *testing.T) {
		r, _ := newTestRunner(t)

		out, err := run(t, r, "task", "list", "--within", "today")
		if err != nil {
			t.Fatalf("task list failed: %v", err)
		}
		if !strings.Contains(out, "Tasks (1, 0% complete)") || !strings.Contains(out, "[ ] 2024-03-07  high    Plan weekly focus [Career]  (task-1)") {
			t.Errorf("unexpected output:\n%s", out)
		}
	})

	t.Run("list rejects bad flags", func(t *testing.T) {
		for _, args := range [][]string{
			{"task", "list", "--status", "later"},
			{"task", "list", "--priority", "urgent"},
			{"task", "list", "--within", "decade"},
		} {
			r, _ := newTestRunner(t)
			if _, err := run(t, r, args...); !errors.Is(err, shared.ErrInvalidFlag) {
				t.Errorf("%v: expected ErrInvalidFlag, got %v", args, err)
			}
		}
	})

	t.Run("update", func(t *testing.T) {
		r, s := newTestRunner(t)

		if _, err := run(t, r, "task", "update", "--title", "Stretch", "--category", "", "task-2"); err != nil {
			t.Fatalf("task update failed: %v", err)
		}
		task, _ := s.Task("task-2")
		if task.Title != "Stretch" || task.CategoryID != "" || task.Priority != models.PriorityMedium {
			t.Errorf("task = %+v", task)
		}

		if _, err := run(t, r, "task", "update", "--title", "x", "task-9"); !errors.Is(err, shared.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
		if _, err := run(t, r, "task", "update", "task-2"); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
		if _, err := run(t, r, "task", "update", "--due", "tomorrow", "task-2"); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("done toggles and delete removes", func(t *testing.T) {
		r, s := newTestRunner(t)

		out, err := run(t, r, "task", "done", "task-1")
		if err != nil || out != "✓ Completed task-1: Plan weekly focus\n" {
			t.Errorf("done: %q, %v", out, err)
		}
		out, _ = run(t, r, "task", "done", "task-1")
		if out != "○ Reopened task-1: Plan weekly focus\n" {
			t.Errorf("second done: %q", out)
		}

		if _, err := run(t, r, "task", "delete", "task-1"); err != nil {
			t.Fatal(err)
		}
		if _, ok := s.Task("task-1"); ok {
			t.Error("task-1 still present")
		}
		if _, err := run(t, r, "task", "delete", "task-1"); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if _, err := run(t, r, "task", "done"); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})
}

func TestGoalCommands(t *testing.T) {
	t.Run("add and list", func(t *testing.T) {
		r, _ := newTestRunner(t)

		out, err := run(t, r, "goal", "add", "--level", "monthly", "--progress", "150", "Run 100km")
		if err != nil {
			t.Fatalf("goal add failed: %v", err)
		}
		if !strings.Contains(out, "monthly goal id-1: Run 100km (100%)") {
			t.Errorf("unexpected output %q", out)
		}

		out, err = run(t, r, "goal", "list", "--level", "monthly")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out, "Monthly goals (1, avg 100%)") || strings.Contains(out, "Daily goals") {
			t.Errorf("unexpected list:\n%s", out)
		}
	})

	t.Run("add rejects unknown level", func(t *testing.T) {
		r, _ := newTestRunner(t)
		if _, err := run(t, r, "goal", "add", "--level", "weekly", "x"); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("progress", func(t *testing.T) {
		tt := []struct {
			name string
			args []string
			want int
		}{
			{"set", []string{"--set", "50"}, 50},
			{"add clamps high", []string{"--add", "80"}, 100},
			{"negative add clamps low", []string{"--add=-90"}, 0},
		}

		for _, tc := range tt {
			t.Run(tc.name, func(t *testing.T) {
				r, s := newTestRunner(t)
				args := append([]string{"goal", "progress"}, tc.args...)
				if _, err := run(t, r, append(args, "goal-1")...); err != nil {
					t.Fatalf("goal progress failed: %v", err)
				}
				goal, _ := s.Goal("goal-1")
				if goal.Progress != tc.want {
					t.Errorf("progress = %d, want %d", goal.Progress, tc.want)
				}
			})
		}

		r, _ := newTestRunner(t)
		if _, err := run(t, r, "goal", "progress", "--set", "1", "--add", "1", "goal-1"); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
		if _, err := run(t, r, "goal", "progress", "goal-1"); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
		if _, err := run(t, r, "goal", "progress", "--set", "1", "goal-9"); !errors.Is(err, shared.ErrGoalNotFound) {
			t.Errorf("expected ErrGoalNotFound, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, s := newTestRunner(t)
		if _, err := run(t, r, "goal", "delete", "goal-2"); err != nil {
			t.Fatal(err)
		}
		if len(s.Goals()) != 1 {
			t.Errorf("goals = %d, want 1", len(s.Goals()))
		}
	})
}

func TestCategoryCommands(t *testing.T) {
	r, s := newTestRunner(t)

	out, err := run(t, r, "category", "add", "--color", "#123abc", "Home")
	if err != nil || !strings.Contains(out, "Added category id-1: Home (#123abc)") {
		t.Fatalf("category add: %q, %v", out, err)
	}
	if _, err := run(t, r, "category", "add", "--color", "blue", "Bad"); !errors.Is(err, shared.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}

	if _, err := run(t, r, "category", "update", "--name", "House", "id-1"); err != nil {
		t.Fatal(err)
	}
	if c, _ := s.Category("id-1"); c.Name != "House" || c.Color != "#123abc" {
		t.Errorf("category = %+v", c)
	}

	out, err = run(t, r, "--json", "category", "list")
	if err != nil {
		t.Fatal(err)
	}
	var usage []categoryUsage
	if err := json.Unmarshal([]byte(out), &usage); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, u := range usage {
		if u.ID == "cat-career" && (u.Tasks != 1 || u.Goals != 0) {
			t.Errorf("career usage = %+v", u)
		}
	}

	if _, err := run(t, r, "category", "delete", "cat-career"); err != nil {
		t.Fatal(err)
	}
	if task, _ := s.Task("task-1"); task.CategoryID != "" {
		t.Errorf("task-1 still references deleted category")
	}
	if _, err := run(t, r, "category", "delete", "cat-career"); !errors.Is(err, shared.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestThemeCommands(t *testing.T) {
	r, s := newTestRunner(t)

	if _, err := run(t, r, "theme", "delete", "default-dark"); !errors.Is(err, shared.ErrProtectedTheme) {
		t.Errorf("expected ErrProtectedTheme, got %v", err)
	}
	if _, err := run(t, r, "theme", "use", "sunset"); !errors.Is(err, shared.ErrThemeNotFound) {
		t.Errorf("expected ErrThemeNotFound, got %v", err)
	}
	if _, err := run(t, r, "theme", "add", "--accent", "red", "Bad"); !errors.Is(err, shared.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}

	if _, err := run(t, r, "theme", "add", "--from", "midnight-blue", "--accent", "#ff0000", "Crimson"); err != nil {
		t.Fatalf("theme add failed: %v", err)
	}
	theme, ok := s.Theme("id-1")
	if !ok || theme.Palette.Accent != "#ff0000" || theme.Palette.Background != "#0f172a" || theme.IsDefault {
		t.Errorf("theme = %+v", theme)
	}

	if _, err := run(t, r, "theme", "use", "id-1"); err != nil {
		t.Fatal(err)
	}
	out, _ := run(t, r, "theme", "list")
	if !strings.Contains(out, "* id-1") {
		t.Errorf("active theme not marked:\n%s", out)
	}

	out, err := run(t, r, "theme", "delete", "id-1")
	if err != nil {
		t.Fatal(err)
	}
	if s.ActiveThemeID() != store.DefaultThemeID || !strings.Contains(out, "active theme is default-dark") {
		t.Errorf("active theme = %q, output %q", s.ActiveThemeID(), out)
	}
}

func TestDashboardAndCalendar(t *testing.T) {
	t.Run("dashboard JSON", func(t *testing.T) {
		r, _ := newTestRunner(t)

		out, err := run(t, r, "--json", "dashboard")
		if err != nil {
			t.Fatalf("dashboard failed: %v", err)
		}
		var report dashboardReport
		if err := json.Unmarshal([]byte(out), &report); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if report.Date != "2024-03-07" || report.Periods.Today.Total != 1 || report.Periods.Week.Total != 2 {
			t.Errorf("report = %+v", report)
		}
		if len(report.Goals) != 3 || report.Goals[0].Average != 60 || report.Goals[2].Average != 35 {
			t.Errorf("goals = %+v", report.Goals)
		}
		if len(report.Upcoming) != 2 || report.Upcoming[0].ID != "task-1" {
			t.Errorf("upcoming = %+v", report.Upcoming)
		}
	})

	t.Run("dashboard text with limit", func(t *testing.T) {
		r, _ := newTestRunner(t)

		out, err := run(t, r, "dashboard", "--limit", "1")
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{"Dashboard: Thursday, March 7", "Today         0% of 1 tasks", "Goal momentum", "Mar 7   high    Plan weekly focus [Career]"} {
			if !strings.Contains(out, want) {
				t.Errorf("missing %q in:\n%s", want, out)
			}
		}
		if strings.Contains(out, "Evening stretch") {
			t.Errorf("limit not applied:\n%s", out)
		}
	})

	t.Run("calendar", func(t *testing.T) {
		r, _ := newTestRunner(t)

		out, err := run(t, r, "calendar", "--month", "2024-03")
		if err != nil {
			t.Fatalf("calendar failed: %v", err)
		}
		for _, want := range []string{"March 2024", "Mon   Tue", " 7*1", " 8 1", "Mar 7   [ ] Plan weekly focus"} {
			if !strings.Contains(out, want) {
				t.Errorf("missing %q in:\n%s", want, out)
			}
		}

		if _, err := run(t, r, "calendar", "--month", "March"); !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("expected ErrInvalidFlag, got %v", err)
		}
	})

	t.Run("calendar JSON", func(t *testing.T) {
		r, _ := newTestRunner(t)

		out, err := run(t, r, "--json", "calendar", "--month", "2024-02")
		if err != nil {
			t.Fatal(err)
		}
		var report calendarReport
		if err := json.Unmarshal([]byte(out), &report); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if report.Month != "2024-02" || len(report.Weeks) != 6 || report.Weeks[0][0].Date != "2024-01-29" {
			t.Errorf("report = %+v", report)
		}
	})
}

func TestExportAndRestore(t *testing.T) {
	t.Run("export to stdout", func(t *testing.T) {
		r, _ := newTestRunner(t)

		out, err := run(t, r, "export", "--format", "csv")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(out, "ID,Title,Description,Due Date") || !strings.Contains(out, "task-1,Plan weekly focus") {
			t.Errorf("unexpected CSV:\n%s", out)
		}

		if _, err := run(t, r, "export", "--format", "pdf"); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("export to file", func(t *testing.T) {
		r, _ := newTestRunner(t)
		path := filepath.Join(t.TempDir(), "agenda.md")

		out, err := run(t, r, "export", "--format", "md", "--output", path)
		if err != nil {
			t.Fatal(err)
		}
		tu.AssertFileExists(t, path)
		if !strings.Contains(out, "Exported 2 tasks and 2 goals") {
			t.Errorf("unexpected output %q", out)
		}
	})

	t.Run("restore replaces stored state", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "config.toml")
		config := "[storage]\ndriver = \"file\"\npath = " + strings.ReplaceAll(`"`+filepath.Join(dir, "state")+`"`, `\`, `\\`) + "\n"
		if err := os.WriteFile(configPath, []byte(config), 0644); err != nil {
			t.Fatal(err)
		}

		backup := store.Snapshot{
			Tasks:         []models.Task{{ID: "r-1", Title: "Restored task", DueDate: "2024-05-01", Priority: models.PriorityLow, CreatedAt: fixedNow}},
			Goals:         []models.Goal{{ID: "r-2", Title: "Restored goal", Level: models.LevelDaily, Progress: 5, CreatedAt: fixedNow}},
			Categories:    store.DefaultCategories(),
			Themes:        store.DefaultThemes(),
			ActiveThemeID: "midnight-blue",
		}
		data, err := formatter.ExportToYAML(backup)
		if err != nil {
			t.Fatal(err)
		}
		backupPath := filepath.Join(dir, "backup.yaml")
		if err := os.WriteFile(backupPath, data, 0644); err != nil {
			t.Fatal(err)
		}

		execute := func(args ...string) (string, error) {
			output := &bytes.Buffer{}
			r := NewRunner(RunnerOpts{Logger: shared.NewLogger(&bytes.Buffer{}), Output: output, Now: func() time.Time { return fixedNow }})
			err := newApp(r).Run(context.Background(), append([]string{"falcon", "--config", configPath}, args...))
			return output.String(), err
		}

		out, err := execute("restore", backupPath)
		if err != nil {
			t.Fatalf("restore failed: %v", err)
		}
		if !strings.Contains(out, "Restored 1 tasks, 1 goals, 4 categories and 2 themes") {
			t.Errorf("unexpected output %q", out)
		}

		out, err = execute("--json", "task", "list")
		if err != nil {
			t.Fatal(err)
		}
		var tasks []models.Task
		if err := json.Unmarshal([]byte(out), &tasks); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(tasks) != 1 || tasks[0].ID != "r-1" {
			t.Errorf("tasks after restore = %+v", tasks)
		}
	})

	t.Run("restore rejects invalid backups", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		bad := "tasks:\n  - id: x\n    title: \"\"\n    due_date: \"2024-01-01\"\n    priority: low\n"
		if err := os.WriteFile(path, []byte(bad), 0644); err != nil {
			t.Fatal(err)
		}

		config := shared.DefaultConfig()
		config.Storage.Driver = "memory"
		r := NewRunner(RunnerOpts{Config: config, Logger: shared.NewLogger(&bytes.Buffer{})})
		if _, err := run(t, r, "restore", path); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("restore rejects duplicate or missing ids", func(t *testing.T) {
		task := func(id, title string) string {
			return "  - id: \"" + id + "\"\n    title: " + title + "\n    due_date: \"2024-01-01\"\n    priority: low\n"
		}
		category := func(id string) string {
			return "  - id: " + id + "\n    name: Home\n    color: \"#123456\"\n"
		}

		tt := []struct {
			name   string
			backup string
			want   string
		}{
			{"duplicate task ids", "tasks:\n" + task("dup", "First") + task("dup", "Second"), `duplicate task id "dup"`},
			{"task without id", "tasks:\n" + task("t-1", "First") + task("", "No id"), "task #2 has no id"},
			{"duplicate category ids", "categories:\n" + category("home") + category("home"), `duplicate category id "home"`},
		}

		for _, tc := range tt {
			t.Run(tc.name, func(t *testing.T) {
				dir := t.TempDir()
				path := filepath.Join(dir, "backup.yaml")
				if err := os.WriteFile(path, []byte(tc.backup), 0644); err != nil {
					t.Fatal(err)
				}

				config := shared.DefaultConfig()
				config.Storage.Driver = "file"
				config.Storage.Path = filepath.Join(dir, "state")
				r := NewRunner(RunnerOpts{Config: config, Logger: shared.NewLogger(&bytes.Buffer{})})

				_, err := run(t, r, "restore", path)
				if !errors.Is(err, shared.ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				if !strings.Contains(err.Error(), tc.want) {
					t.Errorf("expected error to mention %q, got %v", tc.want, err)
				}
				if _, err := os.Stat(config.Storage.Path); !os.IsNotExist(err) {
					t.Errorf("rejected backup reached storage: %v", err)
				}
			})
		}
	})

	t.Run("restore refuses a hydrated store", func(t *testing.T) {
		r, _ := newTestRunner(t)
		if _, err := run(t, r, "restore", "backup.yaml"); !errors.Is(err, shared.ErrAlreadyHydrated) {
			t.Errorf("expected ErrAlreadyHydrated, got %v", err)
		}
	})
}

func TestSetupCommands(t *testing.T) {
	t.Run("config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		r := NewRunner(RunnerOpts{Logger: shared.NewLogger(&bytes.Buffer{}), Output: &bytes.Buffer{}})

		if err := newApp(r).Run(context.Background(), []string{"falcon", "--config", path, "setup", "config"}); err != nil {
			t.Fatalf("setup config failed: %v", err)
		}
		tu.AssertFileExists(t, path)
		if _, err := shared.LoadConfig(path); err != nil {
			t.Errorf("written config does not load: %v", err)
		}
	})

	t.Run("database", func(t *testing.T) {
		config := shared.DefaultConfig()
		config.Database.Path = filepath.Join(t.TempDir(), "data", "falcon.db")
		r := NewRunner(RunnerOpts{Config: config, Logger: shared.NewLogger(&bytes.Buffer{})})

		out, err := run(t, r, "setup", "database")
		if err != nil {
			t.Fatalf("setup database failed: %v", err)
		}
		tu.AssertFileExists(t, config.Database.Path)
		if !strings.Contains(out, "Database ready at") {
			t.Errorf("unexpected output %q", out)
		}
	})

	t.Run("database rollback", func(t *testing.T) {
		config := shared.DefaultConfig()
		config.Database.Path = filepath.Join(t.TempDir(), "falcon.db")
		r := NewRunner(RunnerOpts{Config: config, Logger: shared.NewLogger(&bytes.Buffer{})})

		if _, err := run(t, r, "setup", "database", "--rollback"); !errors.Is(err, shared.ErrNoMigrations) {
			t.Errorf("rollback of an empty schema: expected ErrNoMigrations, got %v", err)
		}
		if _, err := run(t, r, "setup", "database"); err != nil {
			t.Fatalf("setup database failed: %v", err)
		}

		out, err := run(t, r, "setup", "database", "--rollback")
		if err != nil {
			t.Fatalf("rollback failed: %v", err)
		}
		if !strings.Contains(out, "Rolled back") {
			t.Errorf("unexpected output %q", out)
		}
		if _, err := run(t, r, "setup", "database", "--rollback"); !errors.Is(err, shared.ErrNoMigrations) {
			t.Errorf("second rollback: expected ErrNoMigrations, got %v", err)
		}
	})
}
