package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/desertthunder/falcon/internal/models"
	"github.com/desertthunder/falcon/internal/shared"
	"github.com/desertthunder/falcon/internal/views"
	"github.com/urfave/cli/v3"
)

// GoalAdd creates a goal at the given cadence.
func (r *Runner) GoalAdd(ctx context.Context, cmd *cli.Command) error {
	s, err := r.Store()
	if err != nil {
		return err
	}

	in := models.NewGoal{
		Title:       strings.TrimSpace(cmd.StringArg("title")),
		Description: cmd.String("description"),
		Level:       models.GoalLevel(strings.ToLower(cmd.String("level"))),
		CategoryID:  cmd.String("category"),
		TargetDate:  cmd.String("target"),
		Progress:    models.ClampProgress(cmd.Int("progress")),
	}
	if err := in.Validate(); err != nil {
		return err
	}
	if err := checkCategory(s, in.CategoryID); err != nil {
		return err
	}

	goal, err := s.AddGoal(in)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(goal, true)
	}
	return r.writePlain("✓ Added %s goal %s: %s (%d%%)\n", goal.Level, goal.ID, goal.Title, goal.Progress)
}

// GoalList prints goals grouped by cadence with the average progress of each.
func (r *Runner) GoalList(ctx context.Context, cmd *cli.Command) error {
	s, err := r.Store()
	if err != nil {
		return err
	}

	level := models.GoalLevel(strings.ToLower(cmd.String("level")))
	if level != "" && !slices.Contains(models.GoalLevels, level) {
		return fmt.Errorf("%w: --level must be one of daily, monthly, yearly", shared.ErrInvalidFlag)
	}

	snap := s.Snapshot()
	goals := views.FilterGoals(snap.Goals, level)

	if cmd.Bool("json") {
		if goals == nil {
			goals = []models.Goal{}
		}
		return r.writeJSON(goals, true)
	}

	names := views.CategoryNames(snap.Categories)
	for _, summary := range views.GoalSnapshots(snap.Goals) {
		if level != "" && summary.Level != level {
			continue
		}
		r.writePlainHeader(fmt.Sprintf("%s goals (%d, avg %d%%)", views.LevelTitle(summary.Level), summary.Total, summary.Average))
		for _, g := range views.FilterGoals(snap.Goals, summary.Level) {
			if err := r.writePlain("%s %3d%%  %s%s  (%s)\n",
				progressBar(g.Progress), g.Progress, g.Title, views.CategorySuffix(names, g.CategoryID), g.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// GoalProgress sets (--set) or adjusts (--add) goal progress. The result is clamped to 0-100.
func (r *Runner) GoalProgress(ctx context.Context, cmd *cli.Command) error {
	s, err := r.Store()
	if err != nil {
		return err
	}

	id, err := requireArg(cmd, "id")
	if err != nil {
		return err
	}
	goal, ok := s.Goal(id)
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrGoalNotFound, id)
	}

	var progress int
	switch {
	case cmd.IsSet("set") && cmd.IsSet("add"):
		return fmt.Errorf("%w: cannot specify both --set and --add", shared.ErrInvalidArgument)
	case cmd.IsSet("set"):
		progress = cmd.Int("set")
	case cmd.IsSet("add"):
		progress = goal.Progress + cmd.Int("add")
	default:
		return fmt.Errorf("%w: either --set or --add must be provided", shared.ErrMissingArgument)
	}

	if err := s.UpdateGoal(id, models.GoalPatch{Progress: models.Ptr(models.ClampProgress(progress))}); err != nil {
		return err
	}

	goal, _ = s.Goal(id)
	if cmd.Bool("json") {
		return r.writeJSON(goal, true)
	}
	return r.writePlain("✓ %s: %s %d%%\n", goal.Title, progressBar(goal.Progress), goal.Progress)
}

// GoalDelete removes a goal.
func (r *Runner) GoalDelete(ctx context.Context, cmd *cli.Command) error {
	s, err := r.Store()
	if err != nil {
		return err
	}

	id, err := requireArg(cmd, "id")
	if err != nil {
		return err
	}
	goal, ok := s.Goal(id)
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrGoalNotFound, id)
	}

	if err := s.DeleteGoal(id); err != nil {
		return err
	}
	return r.writePlain("✓ Deleted goal %s: %s\n", goal.ID, goal.Title)
}

// progressBar renders progress as ten cells.
func progressBar(progress int) string {
	filled := models.ClampProgress(progress) / 10
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", 10-filled) + "]"
}
