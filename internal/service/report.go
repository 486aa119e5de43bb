package service

import (
	"errors"
	"fmt"
	"time"

	"congregation-manager-backend/internal/calendar"
	"congregation-manager-backend/internal/database/models"
	apperrors "congregation-manager-backend/internal/errors"
	"congregation-manager-backend/internal/logger"
	"congregation-manager-backend/internal/pdf"
	"congregation-manager-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Spanish calendar names used by the monthly roster. Index 0 of the month
// slice is unused so months index naturally.
var (
	spanishMonths = [...]string{
		"", "Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	spanishDays = map[time.Weekday]string{
		time.Monday:    "LUN",
		time.Tuesday:   "MAR",
		time.Wednesday: "MIÉ",
		time.Thursday:  "JUE",
		time.Friday:    "VIE",
		time.Saturday:  "SÁB",
		time.Sunday:    "DOM",
	}
)

// SpanishMonthName returns the Spanish name of a month in [1,12]
func SpanishMonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return spanishMonths[month]
}

// MeetingTypeDisplay returns the Spanish display label of a meeting type
func MeetingTypeDisplay(meetingType models.MeetingType) string {
	switch meetingType {
	case models.MeetingTypeMidweek:
		return "Entre Semana"
	case models.MeetingTypeWeekend:
		return "Fin de Semana"
	}
	return string(meetingType)
}

// PublisherShortName abbreviates a publisher's name for roster cells:
// first-name initial, dot, last name, plus a dotted mother's-surname initial
// when present.
func PublisherShortName(publisher *models.Publisher) string {
	if publisher == nil || publisher.FirstName == "" {
		return ""
	}
	short := fmt.Sprintf("%s.%s", string([]rune(publisher.FirstName)[0]), publisher.LastName)
	if publisher.MotherLastName != "" {
		short += "." + string([]rune(publisher.MotherLastName)[0])
	}
	return short
}

// ReportService projects a month's meeting schedules, the responsibility
// directory and the congregation's weekday rules into the row/column matrix
// the PDF renderer consumes. Stored schedule dates key on the ISO week's
// Monday; the projector resolves each to the actual meeting day before
// display.
type ReportService struct {
	scheduleRepo       *repository.MeetingScheduleRepository
	responsibilityRepo *repository.ResponsibilityRepository
	congregationRepo   *repository.CongregationRepository
	log                *logger.Logger
}

// NewReportService creates a new report service
func NewReportService(
	scheduleRepo *repository.MeetingScheduleRepository,
	responsibilityRepo *repository.ResponsibilityRepository,
	congregationRepo *repository.CongregationRepository,
) *ReportService {
	return &ReportService{
		scheduleRepo:       scheduleRepo,
		responsibilityRepo: responsibilityRepo,
		congregationRepo:   congregationRepo,
		log:                logger.New(),
	}
}

// BuildMonthlySchedule assembles the matrix model for one month. Month must
// be 1-12 and year 2020-2030; a congregation record must exist to resolve
// meeting days.
func (s *ReportService) BuildMonthlySchedule(month, year int) (*pdf.MonthlySchedule, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.NewValidationError("month", "Month must be between 1 and 12")
	}
	if year < 2020 || year > 2030 {
		return nil, apperrors.NewValidationError("year", "Year must be between 2020 and 2030")
	}

	congregation, err := s.congregationRepo.GetSingleton()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoCongregation
		}
		return nil, fmt.Errorf("failed to get congregation: %w", err)
	}

	schedules, err := s.scheduleRepo.GetByMonth(month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get month schedules: %w", err)
	}

	responsibilities, err := s.responsibilityRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get responsibilities: %w", err)
	}

	model := &pdf.MonthlySchedule{
		Month:       month,
		Year:        year,
		MonthName:   fmt.Sprintf("%s %d", SpanishMonthName(month), year),
		GeneratedAt: time.Now(),
		Columns:     make([]pdf.ResponsibilityColumn, 0, len(responsibilities)),
		Rows:        make([]pdf.ScheduleRow, 0, len(schedules)),
	}

	for _, responsibility := range responsibilities {
		column := pdf.ResponsibilityColumn{
			ResponsibilityID: responsibility.ID,
			Name:             responsibility.Name,
		}
		if responsibility.Department != nil {
			column.DepartmentName = responsibility.Department.Name
		}
		model.Columns = append(model.Columns, column)
	}

	for i := range schedules {
		model.Rows = append(model.Rows, s.toRow(congregation, &schedules[i]))
	}

	s.log.WithFields(map[string]interface{}{
		"month": month, "year": year,
		"schedules": len(model.Rows), "responsibilities": len(model.Columns),
	}).Info("monthly schedule projected")

	return model, nil
}

// GenerateMonthlySchedulePDF projects the month and renders it to PDF bytes
func (s *ReportService) GenerateMonthlySchedulePDF(month, year int) ([]byte, error) {
	model, err := s.BuildMonthlySchedule(month, year)
	if err != nil {
		return nil, err
	}

	data, err := pdf.RenderMonthlySchedule(model)
	if err != nil {
		return nil, fmt.Errorf("failed to render monthly schedule: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"month": month, "year": year, "bytes": len(data),
	}).Info("monthly schedule PDF generated")

	return data, nil
}

// toRow resolves the schedule's display date from the congregation's weekday
// rules and maps its assignments to abbreviated publisher names.
func (s *ReportService) toRow(congregation *models.Congregation, schedule *models.MeetingSchedule) pdf.ScheduleRow {
	meetingDay := congregation.MeetingDay(schedule.MeetingType, schedule.Year)
	date := calendar.MeetingDateWithinWeek(schedule.Date, meetingDay)

	assignments := make(map[uuid.UUID]string, len(schedule.ResponsibilityAssignments))
	for _, assignment := range schedule.ResponsibilityAssignments {
		assignments[assignment.ResponsibilityID] = PublisherShortName(assignment.Publisher)
	}

	return pdf.ScheduleRow{
		Date:           date,
		DateDisplay:    date.Format("02/01"),
		DayName:        spanishDays[date.Weekday()],
		MeetingDisplay: MeetingTypeDisplay(schedule.MeetingType),
		Midweek:        schedule.MeetingType == models.MeetingTypeMidweek,
		Assignments:    assignments,
	}
}

// PDFFileName builds the download filename for a monthly roster
func PDFFileName(month, year int) string {
	return fmt.Sprintf("Programacion_%s_%d.pdf", SpanishMonthName(month), year)
}
