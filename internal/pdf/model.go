// Package pdf renders projected schedule matrices into paginated landscape
// documents. It has no knowledge of the domain beyond the model types below.
package pdf

import (
	"time"

	"github.com/google/uuid"
)

// MonthlySchedule is the row/column matrix model for one month's roster
type MonthlySchedule struct {
	Month       int
	Year        int
	MonthName   string
	GeneratedAt time.Time
	Columns     []ResponsibilityColumn
	Rows        []ScheduleRow
}

// ResponsibilityColumn describes one dynamic table column
type ResponsibilityColumn struct {
	ResponsibilityID uuid.UUID
	Name             string
	DepartmentName   string
}

// ScheduleRow is one meeting occurrence with its resolved display date and
// the publisher short name per responsibility. Unassigned responsibilities
// are absent from the map.
type ScheduleRow struct {
	Date           time.Time
	DateDisplay    string
	DayName        string
	MeetingDisplay string
	Midweek        bool
	Assignments    map[uuid.UUID]string
}

// TotalAssignments counts the non-empty assignment cells across all rows
func (m *MonthlySchedule) TotalAssignments() int {
	total := 0
	for _, row := range m.Rows {
		for _, name := range row.Assignments {
			if name != "" {
				total++
			}
		}
	}
	return total
}
