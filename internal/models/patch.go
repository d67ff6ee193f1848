package models

// TaskPatch lists the [Task] fields to replace. Nil fields are left untouched;
// a CategoryID pointing at "" clears the category reference.
type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *string
	Priority    *Priority
	CategoryID  *string
	Completed   *bool
}

// Apply returns t with the supplied fields replaced. ID and CreatedAt never change.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.CategoryID != nil {
		t.CategoryID = *p.CategoryID
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	return t
}

// GoalPatch lists the [Goal] fields to replace. Nil fields are left untouched.
type GoalPatch struct {
	Title       *string
	Description *string
	Level       *GoalLevel
	CategoryID  *string
	TargetDate  *string
	Progress    *int
}

// Apply returns g with the supplied fields replaced. ID and CreatedAt never change.
func (p GoalPatch) Apply(g Goal) Goal {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.Level != nil {
		g.Level = *p.Level
	}
	if p.CategoryID != nil {
		g.CategoryID = *p.CategoryID
	}
	if p.TargetDate != nil {
		g.TargetDate = *p.TargetDate
	}
	if p.Progress != nil {
		g.Progress = *p.Progress
	}
	return g
}

// CategoryPatch lists the [Category] fields to replace.
type CategoryPatch struct {
	Name  *string
	Color *string
}

func (p CategoryPatch) Apply(c Category) Category {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	return c
}

// ThemePatch lists the [Theme] fields to replace.
type ThemePatch struct {
	Name      *string
	Palette   *Palette
	IsDefault *bool
}

func (p ThemePatch) Apply(t Theme) Theme {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Palette != nil {
		t.Palette = *p.Palette
	}
	if p.IsDefault != nil {
		t.IsDefault = *p.IsDefault
	}
	return t
}

// Ptr returns a pointer to v, for building patches inline.
func Ptr[T any](v T) *T {
	return &v
}
