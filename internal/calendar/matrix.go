package calendar

import "time"

const (
	// GridRows is fixed at six so every month renders with the same height.
	GridRows = 6
	GridCols = 7
)

// CalendarDay is one cell of a [Matrix].
type CalendarDay struct {
	Date    time.Time
	InMonth bool   // InMonth reports whether Date belongs to the displayed month
	Key     string // Key is the YYYY-MM-DD date key of Date
}

// Matrix is a Monday-first month grid.
type Matrix [GridRows][GridCols]CalendarDay

// MonthMatrix returns the 6×7 grid for the month containing active.
//
// The first row starts on the Monday on or before the 1st; leading and trailing cells come
// from the adjacent months.
func MonthMatrix(active time.Time) Matrix {
	first := StartOfMonth(active)
	month := first.Month()
	start := first.AddDate(0, 0, -mondayOffset(first))

	var m Matrix
	for row := range GridRows {
		for col := range GridCols {
			d := start.AddDate(0, 0, row*GridCols+col)
			m[row][col] = CalendarDay{
				Date:    d,
				InMonth: d.Month() == month,
				Key:     DateKey(d),
			}
		}
	}
	return m
}

// Days returns the grid cells in row-major order.
func (m Matrix) Days() []CalendarDay {
	days := make([]CalendarDay, 0, GridRows*GridCols)
	for _, row := range m {
		days = append(days, row[:]...)
	}
	return days
}

// Find returns the position of the cell whose key matches, or ok=false.
func (m Matrix) Find(key string) (row, col int, ok bool) {
	for r, week := range m {
		for c, day := range week {
			if day.Key == key {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
