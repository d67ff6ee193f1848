// package formatter exports a store snapshot to CSV, Markdown, plain text, JSON and YAML
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/falcon/internal/calendar"
	"github.com/desertthunder/falcon/internal/models"
	"github.com/desertthunder/falcon/internal/shared"
	"github.com/desertthunder/falcon/internal/store"
	"github.com/desertthunder/falcon/internal/views"
	"gopkg.in/yaml.v3"
)

// Format names an export encoding.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats lists every supported [Format].
var Formats = []Format{FormatCSV, FormatMarkdown, FormatText, FormatJSON, FormatYAML}

// ParseFormat accepts a format name or a common alias ("md", "txt", "yml").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidArgument, s)
}

// Extension returns the file extension used for f, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return "md"
	case FormatText:
		return "txt"
	default:
		return string(f)
	}
}

// Export renders snap in format f. now is used for headings and the dashboard summary.
func Export(snap store.Snapshot, f Format, now time.Time) ([]byte, error) {
	switch f {
	case FormatCSV:
		return ExportToCSV(snap)
	case FormatMarkdown:
		return ExportToMarkdown(snap, now)
	case FormatText:
		return ExportToText(snap, now)
	case FormatJSON:
		return ExportToJSON(snap)
	case FormatYAML:
		return ExportToYAML(snap)
	}
	return nil, fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidArgument, f)
}

// ExportToCSV writes one row per task with columns: ID, Title, Description, Due Date, Priority,
// Category, Completed, Created At. Tasks are ordered by due date.
func ExportToCSV(snap store.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	names := views.CategoryNames(snap.Categories)

	headers := []string{"ID", "Title", "Description", "Due Date", "Priority", "Category", "Completed", "Created At"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, task := range sortedTasks(snap.Tasks) {
		record := []string{
			task.ID,
			task.Title,
			task.Description,
			task.DueDate,
			string(task.Priority),
			names[task.CategoryID],
			strconv.FormatBool(task.Completed),
			task.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown renders an agenda: a period summary, goals by cadence and tasks grouped by day.
func ExportToMarkdown(snap store.Snapshot, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	names := views.CategoryNames(snap.Categories)
	stats := views.PeriodStats(snap.Tasks, now)

	buf.WriteString("# Falcon Agenda\n\n")
	buf.WriteString(fmt.Sprintf("**Generated**: %s\n", calendar.FormatLong(calendar.DateKey(now))))
	buf.WriteString(fmt.Sprintf("**Tasks**: %d (%d%% complete)\n\n", len(snap.Tasks), views.CompletionRate(snap.Tasks)))

	buf.WriteString("## Progress\n\n")
	buf.WriteString("| Period | Tasks | Complete |\n|---|---|---|\n")
	for _, row := range []struct {
		label string
		stat  views.PeriodStat
	}{
		{"Today", stats.Today}, {"This week", stats.Week}, {"This month", stats.Month}, {"This year", stats.Year},
	} {
		buf.WriteString(fmt.Sprintf("| %s | %d | %d%% |\n", row.label, row.stat.Total, row.stat.Percent))
	}

	if len(snap.Goals) > 0 {
		buf.WriteString("\n## Goals\n")
		for _, level := range models.GoalLevels {
			goals := views.FilterGoals(snap.Goals, level)
			if len(goals) == 0 {
				continue
			}
			buf.WriteString(fmt.Sprintf("\n### %s (avg %d%%)\n\n", views.LevelTitle(level), views.GoalAverage(snap.Goals, level)))
			for _, goal := range goals {
				buf.WriteString(fmt.Sprintf("- %s: %d%%%s\n", goal.Title, goal.Progress, views.CategorySuffix(names, goal.CategoryID)))
			}
		}
	}

	if len(snap.Tasks) > 0 {
		buf.WriteString("\n## Tasks\n")
		groups := views.GroupByDueDate(snap.Tasks)
		keys := make([]string, 0, len(groups))
		for key := range groups {
			keys = append(keys, key)
		}
		slices.Sort(keys)

		for _, key := range keys {
			heading := key
			if long := calendar.FormatLong(key); long != key {
				heading = fmt.Sprintf("%s (%s)", long, key)
			}
			buf.WriteString(fmt.Sprintf("\n### %s\n\n", heading))
			for _, task := range groups[key] {
				box := " "
				if task.Completed {
					box = "x"
				}
				buf.WriteString(fmt.Sprintf("- [%s] %s _(%s)_%s\n", box, task.Title, task.Priority, views.CategorySuffix(names, task.CategoryID)))
			}
		}
	}

	return buf.Bytes(), nil
}

// ExportToText renders upcoming tasks and goal averages as plain text.
func ExportToText(snap store.Snapshot, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	names := views.CategoryNames(snap.Categories)

	buf.WriteString(fmt.Sprintf("Falcon: %s\n", calendar.FormatLong(calendar.DateKey(now))))
	buf.WriteString(fmt.Sprintf("Tasks: %d (%d%% complete)\n", len(snap.Tasks), views.CompletionRate(snap.Tasks)))
	buf.WriteString(fmt.Sprintf("Goals: %d\n\n", len(snap.Goals)))

	for i, task := range sortedTasks(snap.Tasks) {
		mark := " "
		if task.Completed {
			mark = "x"
		}
		buf.WriteString(fmt.Sprintf("%d. [%s] %s - %s (%s)%s\n", i+1, mark, task.DueDate, task.Title, task.Priority, views.CategorySuffix(names, task.CategoryID)))
	}

	if len(snap.Goals) > 0 {
		buf.WriteString("\n")
		for _, s := range views.GoalSnapshots(snap.Goals) {
			buf.WriteString(fmt.Sprintf("%s goals: %d, average %d%%\n", views.LevelTitle(s.Level), s.Total, s.Average))
		}
	}

	return buf.Bytes(), nil
}

// ExportToJSON encodes the full snapshot in the persisted JSON layout.
func ExportToJSON(snap store.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// ExportToYAML encodes the full snapshot as a YAML backup document.
func ExportToYAML(snap store.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("YAML encoder error: %w", err)
	}
	return buf.Bytes(), nil
}

// ImportFromYAML decodes a document written by [ExportToYAML].
func ImportFromYAML(data []byte) (store.Snapshot, error) {
	var snap store.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return store.Snapshot{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return snap, nil
}

// WriteExport renders snap in format f and writes it to path.
//
// Defaults to falcon-export.{ext} in the working directory. Parent directories are created.
func WriteExport(snap store.Snapshot, f Format, path string, now time.Time) (string, error) {
	if path == "" {
		path = "falcon-export." + f.Extension()
	}

	data, err := Export(snap, f, now)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", f, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s file: %w", f, err)
	}

	return path, nil
}

func sortedTasks(tasks []models.Task) []models.Task {
	out := slices.Clone(tasks)
	slices.SortStableFunc(out, func(a, b models.Task) int { return strings.Compare(a.DueDate, b.DueDate) })
	return out
}
