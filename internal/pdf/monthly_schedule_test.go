package pdf

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleModel() *MonthlySchedule {
	soundID := uuid.New()
	stageID := uuid.New()
	return &MonthlySchedule{
		Month:       3,
		Year:        2025,
		MonthName:   "Marzo",
		GeneratedAt: time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
		Columns: []ResponsibilityColumn{
			{ResponsibilityID: soundID, Name: "Audio", DepartmentName: "Sonido"},
			{ResponsibilityID: stageID, Name: "Plataforma", DepartmentName: "Plataforma"},
		},
		Rows: []ScheduleRow{
			{
				Date:           time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
				DateDisplay:    "05/03",
				DayName:        "MIÉ",
				MeetingDisplay: "Entre Semana",
				Midweek:        true,
				Assignments: map[uuid.UUID]string{
					soundID: "J.Pérez.G",
				},
			},
			{
				Date:           time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
				DateDisplay:    "09/03",
				DayName:        "DOM",
				MeetingDisplay: "Fin de Semana",
				Midweek:        false,
				Assignments: map[uuid.UUID]string{
					soundID: "J.Pérez.G",
					stageID: "M.García.L",
				},
			},
		},
	}
}

func TestRenderMonthlySchedule(t *testing.T) {
	data, err := RenderMonthlySchedule(sampleModel())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderMonthlySchedule_NoRows(t *testing.T) {
	model := sampleModel()
	model.Rows = nil

	data, err := RenderMonthlySchedule(model)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderMonthlySchedule_ManyRowsPaginate(t *testing.T) {
	model := sampleModel()
	row := model.Rows[0]
	for len(model.Rows) < 60 {
		model.Rows = append(model.Rows, row)
	}

	data, err := RenderMonthlySchedule(model)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
	// A second page shows up as another /Type /Page object.
	assert.GreaterOrEqual(t, countPages(data), 2)
}

func countPages(data []byte) int {
	count := 0
	for i := 0; i+11 <= len(data); i++ {
		if string(data[i:i+11]) == "/Type /Page" {
			// Skip the /Type /Pages tree node.
			if i+12 <= len(data) && data[i+11] == 's' {
				continue
			}
			count++
		}
	}
	return count
}

func TestTotalAssignments(t *testing.T) {
	model := sampleModel()
	assert.Equal(t, 3, model.TotalAssignments())

	model.Rows[0].Assignments[uuid.New()] = ""
	assert.Equal(t, 3, model.TotalAssignments(), "empty cells do not count")
}
