package main

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/desertthunder/falcon/internal/calendar"
	"github.com/desertthunder/falcon/internal/models"
	"github.com/desertthunder/falcon/internal/shared"
	"github.com/desertthunder/falcon/internal/store"
	"github.com/desertthunder/falcon/internal/views"
	"github.com/urfave/cli/v3"
)

// TaskAdd creates a task. The due date defaults to today.
func (r *Runner) TaskAdd(ctx context.Context, cmd *cli.Command) error {
	s, err := r.Store()
	if err != nil {
		return err
	}

	due := cmd.String("due")
	if due == "" {
		due = calendar.DateKey(r.now())
	}

	in := models.NewTask{
		Title:       strings.TrimSpace(cmd.StringArg("title")),
		Description: cmd.String("description"),
		DueDate:     due,
		Priority:    models.Priority(strings.ToLower(cmd.String("priority"))),
		CategoryID:  cmd.String("category"),
	}
	if err := in.Validate(); err != nil {
		return err
	}
	if err := checkCategory(s, in.CategoryID); err != nil {
		return err
	}

	task, err := s.AddTask(in)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(task, true)
	}
	return r.writePlain("✓ Added task %s: %s (due %s)\n", task.ID, task.Title, calendar.FormatShort(task.DueDate))
}

// TaskList prints tasks matching the filter flags, ordered by due date.
func (r *Runner) TaskList(ctx context.Context, cmd *cli.Command) error {
	s, err := r.Store()
	if err != nil {
		return err
	}

	filter := views.TaskFilter{
		Search:     cmd.String("search"),
		Priority:   models.Priority(strings.ToLower(cmd.String("priority"))),
		CategoryID: cmd.String("category"),
		Status:     views.Status(strings.ToLower(cmd.String("status"))),
	}
	if filter.Priority != "" && !slices.Contains(models.Priorities, filter.Priority) {
		return fmt.Errorf("%w: --priority must be one of low, medium, high", shared.ErrInvalidFlag)
	}
	switch filter.Status {
	case "", views.StatusAll, views.StatusOpen, views.StatusDone:
	default:
		return fmt.Errorf("%w: --status must be one of all, open, done", shared.ErrInvalidFlag)
	}

	snap := s.Snapshot()
	tasks := snap.Tasks
	if within := cmd.String("within"); within != "" {
		period, err := parsePeriod(within, r.now())
		if err != nil {
			return err
		}
		tasks = views.TasksWithin(tasks, period)
	}
	tasks = views.FilterTasks(tasks, filter)

	if cmd.Bool("json") {
		if tasks == nil {
			tasks = []models.Task{}
		}
		return r.writeJSON(tasks, true)
	}

	r.writePlainHeader(fmt.Sprintf("Tasks (%d, %d%% complete)", len(tasks), views.CompletionRate(tasks)))
	if len(tasks) == 0 {
		return r.writePlain("No tasks found.\n")
	}

	names := views.CategoryNames(snap.Categories)
	for _, t := range tasks {
		if err := r.writePlain("%s %s  %-6s  %s%s  (%s)\n",
			checkbox(t.Completed), t.DueDate, t.Priority, t.Title, views.CategorySuffix(names, t.CategoryID), t.ID); err != nil {
			return err
		}
	}
	return nil
}

// TaskUpdate replaces the fields given by flags on an existing task.
func (r *Runner) TaskUpdate(ctx context.Context, cmd *cli.Command) error {
	s, err := r.Store()
	if err != nil {
		return err
	}

	id, err := requireArg(cmd, "id")
	if err != nil {
		return err
	}
	if _, ok := s.Task(id); !ok {
		return fmt.Errorf("%w: %s", shared.ErrTaskNotFound, id)
	}

	var patch models.TaskPatch
	if cmd.IsSet("title") {
		patch.Title = models.Ptr(strings.TrimSpace(cmd.String("title")))
	}
	if cmd.IsSet("description") {
		patch.Description = models.Ptr(cmd.String("description"))
	}
	if cmd.IsSet("due") {
		patch.DueDate = models.Ptr(cmd.String("due"))
	}
	if cmd.IsSet("priority") {
		patch.Priority = models.Ptr(models.Priority(strings.ToLower(cmd.String("priority"))))
	}
	if cmd.IsSet("category") {
		patch.CategoryID = models.Ptr(cmd.String("category"))
		if err := checkCategory(s, *patch.CategoryID); err != nil {
			return err
		}
	}
	if patch == (models.TaskPatch{}) {
		return fmt.Errorf("%w: nothing to update", shared.ErrMissingArgument)
	}
	if err := patch.Validate(); err != nil {
		return err
	}

	if err := s.UpdateTask(id, patch); err != nil {
		return err
	}

	task, _ := s.Task(id)
	if cmd.Bool("json") {
		return r.writeJSON(task, true)
	}
	return r.writePlain("✓ Updated task %s: %s\n", task.ID, task.Title)
}

// TaskDone toggles the completion flag of a task.
func (r *Runner) TaskDone(ctx context.Context, cmd *cli.Command) error {
	s, err := r.Store()
	if err != nil {
		return err
	}

	id, err := requireArg(cmd, "id")
	if err != nil {
		return err
	}
	if _, ok := s.Task(id); !ok {
		return fmt.Errorf("%w: %s", shared.ErrTaskNotFound, id)
	}

	if err := s.ToggleTaskCompletion(id); err != nil {
		return err
	}

	task, _ := s.Task(id)
	if cmd.Bool("json") {
		return r.writeJSON(task, true)
	}
	if task.Completed {
		return r.writePlain("✓ Completed %s: %s\n", task.ID, task.Title)
	}
	return r.writePlain("○ Reopened %s: %s\n", task.ID, task.Title)
}

// TaskDelete removes a task.
func (r *Runner) TaskDelete(ctx context.Context, cmd *cli.Command) error {
	s, err := r.Store()
	if err != nil {
		return err
	}

	id, err := requireArg(cmd, "id")
	if err != nil {
		return err
	}
	task, ok := s.Task(id)
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrTaskNotFound, id)
	}

	if err := s.DeleteTask(id); err != nil {
		return err
	}
	return r.writePlain("✓ Deleted task %s: %s\n", task.ID, task.Title)
}

func requireArg(cmd *cli.Command, name string) (string, error) {
	v := strings.TrimSpace(cmd.StringArg(name))
	if v == "" {
		return "", fmt.Errorf("%w: <%s>", shared.ErrMissingArgument, name)
	}
	return v, nil
}

// checkCategory rejects references to unknown categories. An empty id means none.
func checkCategory(s *store.Store, id string) error {
	if id == "" {
		return nil
	}
	if _, ok := s.Category(id); !ok {
		return fmt.Errorf("%w: %s", shared.ErrCategoryNotFound, id)
	}
	return nil
}

func parsePeriod(name string, now time.Time) (calendar.Range, error) {
	switch strings.ToLower(name) {
	case "today", "day":
		return calendar.Day(now), nil
	case "week":
		return calendar.Week(now), nil
	case "month":
		return calendar.Month(now), nil
	case "year":
		return calendar.Year(now), nil
	}
	return calendar.Range{}, fmt.Errorf("%w: --within must be one of today, week, month, year", shared.ErrInvalidFlag)
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
