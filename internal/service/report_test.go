package service

import (
	"testing"

	"congregation-manager-backend/internal/database/models"
	apperrors "congregation-manager-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestSpanishMonthName(t *testing.T) {
	assert.Equal(t, "Enero", SpanishMonthName(1))
	assert.Equal(t, "Marzo", SpanishMonthName(3))
	assert.Equal(t, "Septiembre", SpanishMonthName(9))
	assert.Equal(t, "Diciembre", SpanishMonthName(12))
	assert.Equal(t, "", SpanishMonthName(0))
	assert.Equal(t, "", SpanishMonthName(13))
}

func TestMeetingTypeDisplay(t *testing.T) {
	assert.Equal(t, "Entre Semana", MeetingTypeDisplay(models.MeetingTypeMidweek))
	assert.Equal(t, "Fin de Semana", MeetingTypeDisplay(models.MeetingTypeWeekend))
	assert.Equal(t, "other", MeetingTypeDisplay(models.MeetingType("other")))
}

func TestPublisherShortName(t *testing.T) {
	tests := []struct {
		name      string
		publisher *models.Publisher
		want      string
	}{
		{
			name: "with mother last name",
			publisher: &models.Publisher{
				FirstName:      "Juan",
				LastName:       "Pérez",
				MotherLastName: "García",
			},
			want: "J.Pérez.G",
		},
		{
			name: "without mother last name",
			publisher: &models.Publisher{
				FirstName: "María",
				LastName:  "López",
			},
			want: "M.López",
		},
		{
			name: "accented initial",
			publisher: &models.Publisher{
				FirstName:      "Ángel",
				LastName:       "Ramírez",
				MotherLastName: "Ñúñez",
			},
			want: "Á.Ramírez.Ñ",
		},
		{
			name:      "nil publisher",
			publisher: nil,
			want:      "",
		},
		{
			name:      "empty first name",
			publisher: &models.Publisher{LastName: "Pérez"},
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PublisherShortName(tt.publisher))
		})
	}
}

func TestPDFFileName(t *testing.T) {
	assert.Equal(t, "Programacion_Marzo_2025.pdf", PDFFileName(3, 2025))
	assert.Equal(t, "Programacion_Diciembre_2030.pdf", PDFFileName(12, 2030))
}

func TestBuildMonthlySchedule_MonthOutOfRange(t *testing.T) {
	s := &ReportService{}

	_, err := s.BuildMonthlySchedule(0, 2025)
	assert.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Month must be between 1 and 12", validationErr.Message)

	_, err = s.BuildMonthlySchedule(13, 2025)
	assert.True(t, apperrors.IsValidation(err))
}

func TestBuildMonthlySchedule_YearOutOfRange(t *testing.T) {
	s := &ReportService{}

	_, err := s.BuildMonthlySchedule(3, 2019)
	assert.Error(t, err)

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Year must be between 2020 and 2030", validationErr.Message)

	_, err = s.BuildMonthlySchedule(3, 2031)
	assert.True(t, apperrors.IsValidation(err))
}
