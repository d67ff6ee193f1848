package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/desertthunder/falcon/internal/formatter"
	"github.com/desertthunder/falcon/internal/models"
	"github.com/desertthunder/falcon/internal/shared"
	"github.com/desertthunder/falcon/internal/storage"
	"github.com/urfave/cli/v3"
)

// Export renders the current state in the requested format to --output or stdout.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	s, err := r.Store()
	if err != nil {
		return err
	}
	snap := s.Snapshot()

	if output := cmd.String("output"); output != "" {
		path, err := formatter.WriteExport(snap, format, output, r.now())
		if err != nil {
			return err
		}
		r.logger.Info("export written", "format", format, "path", path)
		return r.writePlain("✓ Exported %d tasks and %d goals to %s\n", len(snap.Tasks), len(snap.Goals), path)
	}

	data, err := formatter.Export(snap, format, r.now())
	if err != nil {
		return fmt.Errorf("failed to generate %s: %w", format, err)
	}
	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Restore overwrites every stored collection with the contents of a YAML backup.
//
// It writes through the storage adapter directly, so it must run before anything hydrates the
// store in this process.
func (r *Runner) Restore(ctx context.Context, cmd *cli.Command) error {
	path, err := requireArg(cmd, "file")
	if err != nil {
		return err
	}
	if r.store != nil {
		return fmt.Errorf("%w: restore needs exclusive access to storage", shared.ErrAlreadyHydrated)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}
	snap, err := formatter.ImportFromYAML(data)
	if err != nil {
		return err
	}
	if err := validateSnapshot(snap.Tasks, snap.Goals, snap.Categories, snap.Themes); err != nil {
		return err
	}

	backend, err := storage.Open(r.config)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	r.adapter = storage.NewAdapter(backend, r.logger)

	for _, save := range []func() error{
		func() error { return storage.Save(r.adapter, storage.KeyTasks, snap.Tasks) },
		func() error { return storage.Save(r.adapter, storage.KeyGoals, snap.Goals) },
		func() error { return storage.Save(r.adapter, storage.KeyCategories, snap.Categories) },
		func() error { return storage.Save(r.adapter, storage.KeyThemes, snap.Themes) },
		func() error { return storage.Save(r.adapter, storage.KeyActiveThemeID, snap.ActiveThemeID) },
	} {
		if err := save(); err != nil {
			return fmt.Errorf("failed to restore backup: %w", err)
		}
	}

	return r.writePlain("✓ Restored %d tasks, %d goals, %d categories and %d themes from %s\n",
		len(snap.Tasks), len(snap.Goals), len(snap.Categories), len(snap.Themes), path)
}

// validateSnapshot checks every entity of a backup with the same rules used for new input.
// Ids must be present and unique within each collection.
func validateSnapshot(tasks []models.Task, goals []models.Goal, categories []models.Category, themes []models.Theme) error {
	if err := errors.Join(
		uniqueIDs("task", tasks, func(t models.Task) string { return t.ID }),
		uniqueIDs("goal", goals, func(g models.Goal) string { return g.ID }),
		uniqueIDs("category", categories, func(c models.Category) string { return c.ID }),
		uniqueIDs("theme", themes, func(t models.Theme) string { return t.ID }),
	); err != nil {
		return err
	}

	for _, t := range tasks {
		in := models.NewTask{Title: t.Title, DueDate: t.DueDate, Priority: t.Priority}
		if err := in.Validate(); err != nil {
			return fmt.Errorf("task %s: %w", t.ID, err)
		}
	}
	for _, g := range goals {
		in := models.NewGoal{Title: g.Title, Level: g.Level, TargetDate: g.TargetDate, Progress: g.Progress}
		if err := in.Validate(); err != nil {
			return fmt.Errorf("goal %s: %w", g.ID, err)
		}
	}
	for _, c := range categories {
		if err := (models.NewCategory{Name: c.Name, Color: c.Color}).Validate(); err != nil {
			return fmt.Errorf("category %s: %w", c.ID, err)
		}
	}
	for _, th := range themes {
		if err := (models.NewTheme{Name: th.Name, Palette: th.Palette}).Validate(); err != nil {
			return fmt.Errorf("theme %s: %w", th.ID, err)
		}
	}
	return nil
}

func uniqueIDs[T any](kind string, items []T, id func(T) string) error {
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		v := id(item)
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s #%d has no id", shared.ErrInvalidInput, kind, i+1)
		}
		if seen[v] {
			return fmt.Errorf("%w: duplicate %s id %q", shared.ErrInvalidInput, kind, v)
		}
		seen[v] = true
	}
	return nil
}
