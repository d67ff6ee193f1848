package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/falcon/internal/models"
	"github.com/desertthunder/falcon/internal/shared"
	"github.com/urfave/cli/v3"
)

// paletteSlots names the flag for each palette slot, in [models.Palette] order.
var paletteSlots = []string{"background", "surface", "surface-alt", "text", "muted", "accent", "accent-soft", "border"}

// paletteSlot returns a pointer to the palette field behind a slot flag.
func paletteSlot(p *models.Palette, slot string) *string {
	switch slot {
	case "background":
		return &p.Background
	case "surface":
		return &p.Surface
	case "surface-alt":
		return &p.SurfaceAlt
	case "text":
		return &p.Text
	case "muted":
		return &p.Muted
	case "accent":
		return &p.Accent
	case "accent-soft":
		return &p.AccentSoft
	case "border":
		return &p.Border
	}
	return nil
}

type themeRow struct {
	models.Theme
	Active bool `json:"active"`
}

// ThemeAdd creates a theme from the --from theme's palette with per-slot overrides.
func (r *Runner) ThemeAdd(ctx context.Context, cmd *cli.Command) error {
	s, err := r.Store()
	if err != nil {
		return err
	}

	base, ok := s.Theme(cmd.String("from"))
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrThemeNotFound, cmd.String("from"))
	}

	palette := base.Palette
	for _, slot := range paletteSlots {
		if cmd.IsSet(slot) {
			*paletteSlot(&palette, slot) = cmd.String(slot)
		}
	}

	in := models.NewTheme{Name: strings.TrimSpace(cmd.StringArg("name")), Palette: palette}
	if err := in.Validate(); err != nil {
		return err
	}

	theme, err := s.AddTheme(in)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(theme, true)
	}
	return r.writePlain("✓ Added theme %s: %s\n", theme.ID, theme.Name)
}

// ThemeList prints every theme, marking the one currently applied.
func (r *Runner) ThemeList(ctx context.Context, cmd *cli.Command) error {
	s, err := r.Store()
	if err != nil {
		return err
	}

	active, _ := s.ActiveTheme()
	themes := s.Themes()
	rows := make([]themeRow, 0, len(themes))
	for _, t := range themes {
		rows = append(rows, themeRow{Theme: t, Active: t.ID == active.ID})
	}

	if cmd.Bool("json") {
		return r.writeJSON(rows, true)
	}

	r.writePlainHeader(fmt.Sprintf("Themes (%d)", len(rows)))
	for _, row := range rows {
		mark := " "
		if row.Active {
			mark = "*"
		}
		kind := "custom"
		if row.IsDefault {
			kind = "built-in"
		}
		if err := r.writePlain("%s %-16s %-20s accent %s  %s\n", mark, row.ID, row.Name, row.Palette.Accent, kind); err != nil {
			return err
		}
	}
	return nil
}

// ThemeUse activates an existing theme.
func (r *Runner) ThemeUse(ctx context.Context, cmd *cli.Command) error {
	s, err := r.Store()
	if err != nil {
		return err
	}

	id, err := requireArg(cmd, "id")
	if err != nil {
		return err
	}
	theme, ok := s.Theme(id)
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrThemeNotFound, id)
	}

	if err := s.SetActiveThemeID(id); err != nil {
		return err
	}
	return r.writePlain("✓ Using theme %s\n", theme.Name)
}

// ThemeDelete removes a custom theme. Built-in themes are refused.
func (r *Runner) ThemeDelete(ctx context.Context, cmd *cli.Command) error {
	s, err := r.Store()
	if err != nil {
		return err
	}

	id, err := requireArg(cmd, "id")
	if err != nil {
		return err
	}
	theme, ok := s.Theme(id)
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrThemeNotFound, id)
	}
	if theme.IsDefault {
		return fmt.Errorf("%w: %s", shared.ErrProtectedTheme, id)
	}

	if err := s.DeleteTheme(id); err != nil {
		return err
	}
	return r.writePlain("✓ Deleted theme %s; active theme is %s\n", theme.Name, s.ActiveThemeID())
}
