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
	"github.com/desertthunder/falcon/internal/views"
	"github.com/urfave/cli/v3"
)

type dashboardReport struct {
	Date       string               `json:"date"`
	Completion int                  `json:"completion"`
	Periods    views.Dashboard      `json:"periods"`
	Goals      []views.GoalSnapshot `json:"goals"`
	Upcoming   []models.Task        `json:"upcoming"`
}

type calendarCell struct {
	Date    string `json:"date"`
	InMonth bool   `json:"inMonth"`
	Total   int    `json:"total"`
	Done    int    `json:"done"`
}

type calendarReport struct {
	Month string           `json:"month"`
	Weeks [][]calendarCell `json:"weeks"`
}

// Dashboard prints period completion, goal averages and upcoming open tasks.
func (r *Runner) Dashboard(ctx context.Context, cmd *cli.Command) error {
	s, err := r.Store()
	if err != nil {
		return err
	}

	day := calendar.StartOfDay(r.now())
	if key := cmd.String("date"); key != "" {
		if day, err = calendar.ParseDateKey(key, day.Location()); err != nil {
			return fmt.Errorf("%w: --date must be YYYY-MM-DD", shared.ErrInvalidFlag)
		}
	}

	limit := cmd.Int("limit")
	if limit <= 0 {
		limit = r.config.Dashboard.UpcomingLimit
	}
	if limit <= 0 {
		limit = views.UpcomingLimit
	}

	snap := s.Snapshot()
	report := dashboardReport{
		Date:       calendar.DateKey(day),
		Completion: views.CompletionRate(snap.Tasks),
		Periods:    views.PeriodStats(snap.Tasks, day),
		Goals:      views.GoalSnapshots(snap.Goals),
		Upcoming:   views.Upcoming(snap.Tasks, limit),
	}

	if cmd.Bool("json") {
		return r.writeJSON(report, true)
	}

	r.writePlainHeader(fmt.Sprintf("Dashboard: %s", calendar.FormatLong(report.Date)))
	r.writePlain("Overall     %3d%% of %d tasks complete\n", report.Completion, len(snap.Tasks))
	for _, row := range []struct {
		label string
		stat  views.PeriodStat
	}{
		{"Today", report.Periods.Today},
		{"This week", report.Periods.Week},
		{"This month", report.Periods.Month},
		{"This year", report.Periods.Year},
	} {
		r.writePlain("%-11s %3d%% of %d tasks\n", row.label, row.stat.Percent, row.stat.Total)
	}

	r.writePlainln("Goal momentum")
	for _, g := range report.Goals {
		r.writePlain("%-11s %s %3d%%  (%d goals)\n", views.LevelTitle(g.Level), progressBar(g.Average), g.Average, g.Total)
	}

	r.writePlainln("Upcoming focus")
	if len(report.Upcoming) == 0 {
		return r.writePlain("Nothing open. Enjoy the calm.\n")
	}
	names := views.CategoryNames(snap.Categories)
	for _, t := range report.Upcoming {
		if err := r.writePlain("%-7s %-6s  %s%s\n", calendar.FormatShort(t.DueDate), t.Priority, t.Title, views.CategorySuffix(names, t.CategoryID)); err != nil {
			return err
		}
	}
	return nil
}

// Calendar prints a Monday-first month grid with the number of tasks due each day.
func (r *Runner) Calendar(ctx context.Context, cmd *cli.Command) error {
	s, err := r.Store()
	if err != nil {
		return err
	}

	now := r.now()
	month := calendar.StartOfMonth(now)
	if v := cmd.String("month"); v != "" {
		if month, err = time.ParseInLocation("2006-01", v, now.Location()); err != nil {
			return fmt.Errorf("%w: --month must be YYYY-MM", shared.ErrInvalidFlag)
		}
	}

	snap := s.Snapshot()
	groups := views.GroupByDueDate(snap.Tasks)
	matrix := calendar.MonthMatrix(month)

	report := calendarReport{Month: month.Format("2006-01")}
	for _, row := range matrix {
		week := make([]calendarCell, 0, len(row))
		for _, day := range row {
			cell := calendarCell{Date: day.Key, InMonth: day.InMonth, Total: len(groups[day.Key])}
			for _, t := range groups[day.Key] {
				if t.Completed {
					cell.Done++
				}
			}
			week = append(week, cell)
		}
		report.Weeks = append(report.Weeks, week)
	}

	if cmd.Bool("json") {
		return r.writeJSON(report, true)
	}

	r.writePlainHeader(month.Format("January 2006"))
	labels := make([]string, 0, len(calendar.WeekdayLabels))
	for _, l := range calendar.WeekdayLabels {
		labels = append(labels, fmt.Sprintf("%-6s", l))
	}
	r.writePlain("%s\n", strings.TrimRight(strings.Join(labels, ""), " "))

	today := calendar.DateKey(now)
	for i, week := range report.Weeks {
		var line strings.Builder
		for j, cell := range week {
			line.WriteString(renderCalendarCell(matrix[i][j], cell, today))
		}
		r.writePlain("%s\n", strings.TrimRight(line.String(), " "))
	}

	var keys []string
	for key := range groups {
		if calendar.Month(month).Contains(key) {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	if len(keys) > 0 {
		r.writePlain("\n")
	}
	for _, key := range keys {
		titles := make([]string, 0, len(groups[key]))
		for _, t := range groups[key] {
			titles = append(titles, checkbox(t.Completed)+" "+t.Title)
		}
		if err := r.writePlain("%-7s %s\n", calendar.FormatShort(key), strings.Join(titles, ", ")); err != nil {
			return err
		}
	}
	return nil
}

// renderCalendarCell renders a six-column cell: the day number, a marker and the task count.
func renderCalendarCell(day calendar.CalendarDay, cell calendarCell, today string) string {
	if !day.InMonth {
		return fmt.Sprintf("%-6s", "  ·")
	}
	marker := " "
	if day.Key == today {
		marker = "*"
	}
	count := ""
	if cell.Total > 0 {
		count = fmt.Sprintf("%d", cell.Total)
	}
	return fmt.Sprintf("%2d%s%-3s", day.Date.Day(), marker, count)
}
