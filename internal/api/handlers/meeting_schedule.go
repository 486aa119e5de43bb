package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"congregation-manager-backend/internal/database/models"
	apperrors "congregation-manager-backend/internal/errors"
	"congregation-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MeetingScheduleHandler handles HTTP requests for meeting schedules and the
// monthly PDF roster
type MeetingScheduleHandler struct {
	service       service.MeetingScheduleServiceInterface
	reportService service.ReportServiceInterface
}

// NewMeetingScheduleHandler creates a new meeting schedule handler
func NewMeetingScheduleHandler(
	service service.MeetingScheduleServiceInterface,
	reportService service.ReportServiceInterface,
) *MeetingScheduleHandler {
	return &MeetingScheduleHandler{
		service:       service,
		reportService: reportService,
	}
}

// GetOrCreateScheduleRequest identifies a schedule by its natural key
type GetOrCreateScheduleRequest struct {
	WeekOfYear  int                `json:"week_of_year" binding:"required"`
	Year        int                `json:"year" binding:"required"`
	MeetingType models.MeetingType `json:"meeting_type" binding:"required"`
}

// CreateMeetingSchedule handles POST /api/v1/meeting-schedules
// @Summary Create a meeting schedule
// @Description Create a meeting schedule from an explicit date and meeting type
// @Tags meeting-schedules
// @Accept json
// @Produce json
// @Param schedule body service.CreateMeetingScheduleRequest true "Schedule data"
// @Success 201 {object} service.MeetingScheduleResponse "Successfully created schedule"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Schedule already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /meeting-schedules [post]
func (h *MeetingScheduleHandler) CreateMeetingSchedule(c *gin.Context) {
	var req service.CreateMeetingScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	schedule, err := h.service.Create(&req)
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidMeetingType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meeting schedule", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// GetMeetingSchedule handles GET /api/v1/meeting-schedules/:id
// @Summary Get meeting schedule by ID
// @Description Get a meeting schedule with its assignments
// @Tags meeting-schedules
// @Accept json
// @Produce json
// @Param id path string true "Meeting schedule ID (UUID)"
// @Success 200 {object} service.MeetingScheduleResponse "Successfully retrieved schedule"
// @Failure 400 {object} map[string]interface{} "Invalid schedule ID"
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /meeting-schedules/{id} [get]
func (h *MeetingScheduleHandler) GetMeetingSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting schedule ID: invalid UUID format"})
		return
	}

	schedule, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrMeetingScheduleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get meeting schedule", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// ListMeetingSchedules handles GET /api/v1/meeting-schedules
// @Summary List meeting schedules
// @Description Get meeting schedules ordered by date, optionally filtered by month and year or by a date range
// @Tags meeting-schedules
// @Accept json
// @Produce json
// @Param month query int false "Calendar month (1-12)"
// @Param year query int false "Year"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} service.MeetingScheduleResponse "Successfully retrieved schedules"
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /meeting-schedules [get]
func (h *MeetingScheduleHandler) ListMeetingSchedules(c *gin.Context) {
	if c.Query("month") != "" || c.Query("year") != "" {
		month, err := strconv.Atoi(c.Query("month"))
		if err != nil || month < 1 || month > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Month must be between 1 and 12"})
			return
		}
		year, err := strconv.Atoi(c.Query("year"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
			return
		}

		schedules, err := h.service.GetByMonth(month, year)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get meeting schedules", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, schedules)
		return
	}

	if c.Query("start_date") != "" || c.Query("end_date") != "" {
		startDate, err := time.Parse("2006-01-02", c.Query("start_date"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date: expected YYYY-MM-DD"})
			return
		}
		endDate, err := time.Parse("2006-01-02", c.Query("end_date"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date: expected YYYY-MM-DD"})
			return
		}

		schedules, err := h.service.GetByDateRange(startDate, endDate)
		if err != nil {
			if apperrors.IsValidation(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get meeting schedules", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, schedules)
		return
	}

	schedules, err := h.service.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get meeting schedules", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// GetOrCreateMeetingSchedule handles POST /api/v1/meeting-schedules/get-or-create
// @Summary Get or create a schedule by natural key
// @Description Look up the schedule for (week, year, meeting type), creating it when absent
// @Tags meeting-schedules
// @Accept json
// @Produce json
// @Param key body GetOrCreateScheduleRequest true "Natural key"
// @Success 200 {object} service.MeetingScheduleResponse "Schedule"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /meeting-schedules/get-or-create [post]
func (h *MeetingScheduleHandler) GetOrCreateMeetingSchedule(c *gin.Context) {
	var req GetOrCreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	schedule, err := h.service.GetOrCreateMeetingSchedule(req.WeekOfYear, req.Year, req.MeetingType)
	if err != nil {
		if apperrors.IsValidation(err) || errors.Is(err, apperrors.ErrInvalidMeetingType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get or create meeting schedule", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// GetOrCreateWeekSchedules handles GET /api/v1/meeting-schedules/week/:year/:week
// @Summary Get or create a week's schedules
// @Description Get the week's schedules, provisioning one midweek and one weekend schedule when the week is empty
// @Tags meeting-schedules
// @Accept json
// @Produce json
// @Param year path int true "Year"
// @Param week path int true "Week of year"
// @Success 200 {array} service.MeetingScheduleResponse "Week schedules"
// @Failure 400 {object} map[string]interface{} "Invalid week or year"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /meeting-schedules/week/{year}/{week} [get]
func (h *MeetingScheduleHandler) GetOrCreateWeekSchedules(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week"})
		return
	}

	schedules, err := h.service.GetOrCreateWeekSchedules(week, year)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get week schedules", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// CopyWeekAssignments handles POST /api/v1/meeting-schedules/copy-week
// @Summary Copy a week's assignments onto another week
// @Description Replace the target week's assignments with copies of the source week's, provisioning target schedules when missing
// @Tags meeting-schedules
// @Accept json
// @Produce json
// @Param copy body service.CopyWeekRequest true "Source and target weeks"
// @Success 200 {object} map[string]interface{} "Copy result"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /meeting-schedules/copy-week [post]
func (h *MeetingScheduleHandler) CopyWeekAssignments(c *gin.Context) {
	var req service.CopyWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	copied, err := h.service.CopyAssignmentsToWeek(req.SourceWeek, req.SourceYear, req.TargetWeek, req.TargetYear)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to copy week assignments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"copied": copied})
}

// UpdateMeetingSchedule handles PUT /api/v1/meeting-schedules/:id
// @Summary Update a meeting schedule
// @Description Update a schedule's date or meeting type, recomputing derived fields
// @Tags meeting-schedules
// @Accept json
// @Produce json
// @Param id path string true "Meeting schedule ID (UUID)"
// @Param schedule body service.UpdateMeetingScheduleRequest true "Schedule data"
// @Success 200 {object} service.MeetingScheduleResponse "Successfully updated schedule"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Failure 409 {object} map[string]interface{} "Schedule already exists for the target week"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /meeting-schedules/{id} [put]
func (h *MeetingScheduleHandler) UpdateMeetingSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting schedule ID: invalid UUID format"})
		return
	}

	var req service.UpdateMeetingScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	schedule, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrMeetingScheduleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidMeetingType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meeting schedule", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// DeleteMeetingSchedule handles DELETE /api/v1/meeting-schedules/:id
// @Summary Delete a meeting schedule
// @Description Delete a meeting schedule. Schedules still carrying assignments are rejected.
// @Tags meeting-schedules
// @Accept json
// @Produce json
// @Param id path string true "Meeting schedule ID (UUID)"
// @Success 204 "Successfully deleted schedule"
// @Failure 400 {object} map[string]interface{} "Invalid schedule ID"
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Failure 409 {object} map[string]interface{} "Schedule still has assignments"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /meeting-schedules/{id} [delete]
func (h *MeetingScheduleHandler) DeleteMeetingSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting schedule ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrMeetingScheduleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrScheduleHasAssignments) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meeting schedule", "details": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// GetMonthlySchedulePDF handles GET /api/v1/meeting-schedules/monthly-schedule/:year/:month
// @Summary Download the monthly schedule PDF
// @Description Render the month's meeting and assignment roster as a landscape A4 PDF
// @Tags meeting-schedules
// @Accept json
// @Produce application/pdf
// @Param year path int true "Year (2020-2030)"
// @Param month path int true "Calendar month (1-12)"
// @Success 200 {file} binary "PDF document"
// @Failure 400 {object} map[string]interface{} "Invalid month or year"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /meeting-schedules/monthly-schedule/{year}/{month} [get]
func (h *MeetingScheduleHandler) GetMonthlySchedulePDF(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Year must be between 2020 and 2030"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Month must be between 1 and 12"})
		return
	}

	data, err := h.reportService.GenerateMonthlySchedulePDF(month, year)
	if err != nil {
		var validationErr *apperrors.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate monthly schedule", "details": err.Error()})
		return
	}

	filename := service.PDFFileName(month, year)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
