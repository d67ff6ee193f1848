package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/falcon/internal/models"
)

var _ list.Item = taskItem{}

// taskItem wraps [models.Task] to implement [list.Item].
type taskItem struct {
	task     models.Task
	category string
}

func (i taskItem) FilterValue() string { return i.task.Title }
func (i taskItem) Title() string {
	if i.task.Completed {
		return "✓ " + i.task.Title
	}
	return "○ " + i.task.Title
}
func (i taskItem) Description() string {
	desc := string(i.task.Priority)
	if i.category != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.category)
	}
	if i.task.Description != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.task.Description)
	}
	return desc
}
