package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/falcon/internal/models"
	"github.com/desertthunder/falcon/internal/shared"
	"github.com/urfave/cli/v3"
)

// categoryUsage is a category with the number of tasks and goals referencing it.
type categoryUsage struct {
	models.Category
	Tasks int `json:"tasks"`
	Goals int `json:"goals"`
}

func (r *Runner) CategoryAdd(ctx context.Context, cmd *cli.Command) error {
	s, err := r.Store()
	if err != nil {
		return err
	}

	in := models.NewCategory{Name: strings.TrimSpace(cmd.StringArg("name")), Color: cmd.String("color")}
	if err := in.Validate(); err != nil {
		return err
	}

	category, err := s.AddCategory(in)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(category, true)
	}
	return r.writePlain("✓ Added category %s: %s (%s)\n", category.ID, category.Name, category.Color)
}

// CategoryList prints every category with how many tasks and goals use it.
func (r *Runner) CategoryList(ctx context.Context, cmd *cli.Command) error {
	s, err := r.Store()
	if err != nil {
		return err
	}

	snap := s.Snapshot()
	usage := make([]categoryUsage, 0, len(snap.Categories))
	for _, c := range snap.Categories {
		u := categoryUsage{Category: c}
		for _, t := range snap.Tasks {
			if t.CategoryID == c.ID {
				u.Tasks++
			}
		}
		for _, g := range snap.Goals {
			if g.CategoryID == c.ID {
				u.Goals++
			}
		}
		usage = append(usage, u)
	}

	if cmd.Bool("json") {
		return r.writeJSON(usage, true)
	}

	r.writePlainHeader(fmt.Sprintf("Categories (%d)", len(usage)))
	for _, u := range usage {
		if err := r.writePlain("%-8s %-20s %d tasks, %d goals  (%s)\n", u.Color, u.Name, u.Tasks, u.Goals, u.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) CategoryUpdate(ctx context.Context, cmd *cli.Command) error {
	s, err := r.Store()
	if err != nil {
		return err
	}

	id, err := requireArg(cmd, "id")
	if err != nil {
		return err
	}
	if _, ok := s.Category(id); !ok {
		return fmt.Errorf("%w: %s", shared.ErrCategoryNotFound, id)
	}

	var patch models.CategoryPatch
	if cmd.IsSet("name") {
		patch.Name = models.Ptr(strings.TrimSpace(cmd.String("name")))
	}
	if cmd.IsSet("color") {
		patch.Color = models.Ptr(cmd.String("color"))
	}
	if patch == (models.CategoryPatch{}) {
		return fmt.Errorf("%w: nothing to update", shared.ErrMissingArgument)
	}
	if err := patch.Validate(); err != nil {
		return err
	}

	if err := s.UpdateCategory(id, patch); err != nil {
		return err
	}

	category, _ := s.Category(id)
	if cmd.Bool("json") {
		return r.writeJSON(category, true)
	}
	return r.writePlain("✓ Updated category %s: %s (%s)\n", category.ID, category.Name, category.Color)
}

// CategoryDelete removes a category; tasks and goals that used it keep existing without one.
func (r *Runner) CategoryDelete(ctx context.Context, cmd *cli.Command) error {
	s, err := r.Store()
	if err != nil {
		return err
	}

	id, err := requireArg(cmd, "id")
	if err != nil {
		return err
	}
	category, ok := s.Category(id)
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrCategoryNotFound, id)
	}

	if err := s.DeleteCategory(id); err != nil {
		return err
	}
	return r.writePlain("✓ Deleted category %s: %s\n", category.ID, category.Name)
}
