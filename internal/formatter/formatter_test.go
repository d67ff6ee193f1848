package formatter

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/falcon/internal/models"
	"github.com/desertthunder/falcon/internal/shared"
	"github.com/desertthunder/falcon/internal/store"
	th "github.com/desertthunder/falcon/internal/testing"
)

var now = time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC)

func fixture() store.Snapshot {
	created := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	return store.Snapshot{
		Tasks: []models.Task{
			{ID: "t1", Title: "Plan weekly focus", DueDate: "2024-03-07", Priority: models.PriorityHigh, CategoryID: "cat-career", Completed: true, CreatedAt: created},
			{ID: "t2", Title: "Evening stretch", DueDate: "2024-03-08", Priority: models.PriorityMedium, CategoryID: "cat-fitness", CreatedAt: created},
			{ID: "t3", Title: "Tax forms", Description: `Collect, sort "receipts"`, DueDate: "2024-03-05", Priority: models.PriorityLow, CreatedAt: created},
		},
		Goals: []models.Goal{
			{ID: "g1", Title: "Read 12 books", Level: models.LevelYearly, Progress: 35, CategoryID: "cat-academics", TargetDate: "2024-12-31", CreatedAt: created},
			{ID: "g2", Title: "Daily gratitude", Level: models.LevelDaily, Progress: 60, CreatedAt: created},
		},
		Categories: []models.Category{
			{ID: "cat-career", Name: "Career", Color: "#F97316"},
			{ID: "cat-fitness", Name: "Physical Fitness", Color: "#22C55E"},
			{ID: "cat-academics", Name: "Academics", Color: "#38BDF8"},
		},
		Themes:        store.DefaultThemes(),
		ActiveThemeID: store.DefaultThemeID,
	}
}

func TestParseFormat(t *testing.T) {
	tt := []struct {
		in   string
		want Format
		ext  string
	}{
		{"csv", FormatCSV, "csv"},
		{"md", FormatMarkdown, "md"},
		{"Markdown", FormatMarkdown, "md"},
		{"txt", FormatText, "txt"},
		{"json", FormatJSON, "json"},
		{" yml ", FormatYAML, "yaml"},
	}

	for _, tc := range tt {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFormat(tc.in)
			if err != nil {
				t.Fatalf("ParseFormat(%q) error = %v", tc.in, err)
			}
			if got != tc.want || got.Extension() != tc.ext {
				t.Errorf("ParseFormat(%q) = %q (.%s), want %q (.%s)", tc.in, got, got.Extension(), tc.want, tc.ext)
			}
		})
	}

	t.Run("unknown", func(t *testing.T) {
		if _, err := ParseFormat("pdf"); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("error = %v, want ErrInvalidArgument", err)
		}
	})
}

func TestExporters(t *testing.T) {
	snap := fixture()

	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(snap)
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 4 {
			t.Fatalf("expected header + 3 rows, got %d lines:\n%s", len(lines), data)
		}
		if lines[0] != "ID,Title,Description,Due Date,Priority,Category,Completed,Created At" {
			t.Errorf("CSV headers = %q", lines[0])
		}
		if lines[1] != `t3,Tax forms,"Collect, sort ""receipts""",2024-03-05,low,,false,2024-03-01T08:00:00Z` {
			t.Errorf("first row = %q", lines[1])
		}
		if !strings.HasPrefix(lines[2], "t1,Plan weekly focus,,2024-03-07,high,Career,true,") {
			t.Errorf("second row = %q", lines[2])
		}
		if !strings.HasPrefix(lines[3], "t2,") {
			t.Errorf("rows not ordered by due date: %q", lines[3])
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(snap, now)
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}
		output := string(data)

		for _, want := range []string{
			"# Falcon Agenda",
			"**Generated**: Thursday, March 7",
			"**Tasks**: 3 (33% complete)",
			"| Today | 1 | 100% |",
			"| This week | 3 | 33% |",
			"### Daily (avg 60%)",
			"- Daily gratitude: 60%\n",
			"### Yearly (avg 35%)",
			"- Read 12 books: 35% [Academics]",
			"### Tuesday, March 5 (2024-03-05)",
			"- [ ] Tax forms _(low)_\n",
			"- [x] Plan weekly focus _(high)_ [Career]",
			"- [ ] Evening stretch _(medium)_ [Physical Fitness]",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("Markdown missing %q", want)
			}
		}

		if strings.Contains(output, "### Monthly") {
			t.Errorf("Markdown should skip cadences without goals")
		}
		first := strings.Index(output, "(2024-03-05)")
		second := strings.Index(output, "(2024-03-07)")
		third := strings.Index(output, "(2024-03-08)")
		if !(first < second && second < third) {
			t.Errorf("days out of order: %d, %d, %d", first, second, third)
		}
	})

	t.Run("ExportToMarkdown without data", func(t *testing.T) {
		data, err := ExportToMarkdown(store.Snapshot{}, now)
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(string(data), "## Tasks") || strings.Contains(string(data), "## Goals") {
			t.Errorf("empty snapshot should omit sections:\n%s", data)
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(snap, now)
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}
		output := string(data)

		for _, want := range []string{
			"Falcon: Thursday, March 7\n",
			"Tasks: 3 (33% complete)\n",
			"1. [ ] 2024-03-05 - Tax forms (low)\n",
			"2. [x] 2024-03-07 - Plan weekly focus (high) [Career]\n",
			"Daily goals: 1, average 60%\n",
			"Monthly goals: 0, average 0%\n",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("text missing %q\n%s", want, output)
			}
		}
	})

	t.Run("ExportToJSON", func(t *testing.T) {
		data, err := ExportToJSON(snap)
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{`"activeThemeId": "default-dark"`, `"dueDate": "2024-03-05"`, `"surfaceAlt": "#1a2238"`} {
			if !strings.Contains(string(data), want) {
				t.Errorf("JSON missing %s", want)
			}
		}
	})

	t.Run("YAML backup restores the snapshot", func(t *testing.T) {
		data, err := ExportToYAML(snap)
		if err != nil {
			t.Fatalf("ExportToYAML failed: %v", err)
		}
		if !strings.Contains(string(data), "active_theme_id: default-dark") {
			t.Errorf("YAML missing active theme:\n%s", data)
		}

		restored, err := ImportFromYAML(data)
		if err != nil {
			t.Fatalf("ImportFromYAML failed: %v", err)
		}
		if !reflect.DeepEqual(restored, snap) {
			t.Errorf("restored snapshot differs:\n got %+v\nwant %+v", restored, snap)
		}
	})

	t.Run("ImportFromYAML rejects garbage", func(t *testing.T) {
		if _, err := ImportFromYAML([]byte("tasks: [unclosed")); err == nil {
			t.Errorf("expected parse error")
		}
	})
}

func TestWriteExport(t *testing.T) {
	snap := fixture()

	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out", "agenda.md")

		got, err := WriteExport(snap, FormatMarkdown, path, now)
		if err != nil {
			t.Fatalf("WriteExport failed: %v", err)
		}
		if got != path {
			t.Errorf("path = %q, want %q", got, path)
		}
		th.AssertFileExists(t, path)
		if content := th.MustReadFile(t, path); !strings.HasPrefix(content, "# Falcon Agenda") {
			t.Errorf("unexpected content: %q", content)
		}
	})

	t.Run("defaults the filename from the format", func(t *testing.T) {
		t.Chdir(t.TempDir())

		got, err := WriteExport(snap, FormatCSV, "", now)
		if err != nil {
			t.Fatalf("WriteExport failed: %v", err)
		}
		if got != "falcon-export.csv" {
			t.Errorf("path = %q", got)
		}
		th.AssertFileExists(t, got)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := WriteExport(snap, Format("pdf"), filepath.Join(t.TempDir(), "x.pdf"), now)
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("error = %v, want ErrInvalidArgument", err)
		}
	})
}
