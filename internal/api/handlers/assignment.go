package handlers

import (
	"net/http"
	"strconv"
	"time"

	apperrors "congregation-manager-backend/internal/errors"
	"congregation-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssignmentHandler handles HTTP requests for responsibility assignments
type AssignmentHandler struct {
	service service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(service service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

// Assign handles PUT /api/v1/assignments
// @Summary Assign a publisher to a responsibility
// @Description Book a publisher onto a responsibility for a meeting, displacing any existing booking for the pair
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body service.AssignmentRequest true "Assignment data"
// @Success 200 {object} map[string]interface{} "Assignment result"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /assignments [put]
func (h *AssignmentHandler) Assign(c *gin.Context) {
	var req service.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	assigned, err := h.service.Assign(req.MeetingScheduleID, req.ResponsibilityID, req.PublisherID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign responsibility", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assigned": assigned})
}

// CreateAssignment handles POST /api/v1/assignments
// @Summary Create an assignment
// @Description Create an assignment without displacing. Fails when the triple already exists.
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body service.AssignmentRequest true "Assignment data"
// @Success 201 {object} service.AssignmentResponse "Successfully created assignment"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Referenced entity not found"
// @Failure 409 {object} map[string]interface{} "Assignment already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /assignments [post]
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req service.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	assignment, err := h.service.Create(&req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create assignment", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// RemoveAssignment handles DELETE /api/v1/assignments
// @Summary Remove an assignment
// @Description Remove the assignment identified by meeting, responsibility and publisher
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body service.AssignmentRequest true "Assignment data"
// @Success 200 {object} map[string]interface{} "Removal result"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /assignments [delete]
func (h *AssignmentHandler) RemoveAssignment(c *gin.Context) {
	var req service.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	removed, err := h.service.Remove(req.MeetingScheduleID, req.ResponsibilityID, req.PublisherID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove assignment", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// GetAssignmentsByMeeting handles GET /api/v1/meeting-schedules/:id/assignments
// @Summary Get a meeting's assignments
// @Description Get every assignment of a meeting schedule
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Meeting schedule ID (UUID)"
// @Success 200 {array} service.AssignmentResponse "Successfully retrieved assignments"
// @Failure 400 {object} map[string]interface{} "Invalid meeting schedule ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /meeting-schedules/{id}/assignments [get]
func (h *AssignmentHandler) GetAssignmentsByMeeting(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting schedule ID: invalid UUID format"})
		return
	}

	assignments, err := h.service.GetByMeetingSchedule(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get assignments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// GetAssignmentsByPublisher handles GET /api/v1/publishers/:id/assignments
// @Summary Get a publisher's assignments
// @Description Get a publisher's assignments, optionally limited to one calendar month via month and year query parameters
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Publisher ID (UUID)"
// @Param month query int false "Calendar month (1-12)"
// @Param year query int false "Year"
// @Success 200 {array} service.AssignmentResponse "Successfully retrieved assignments"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /publishers/{id}/assignments [get]
func (h *AssignmentHandler) GetAssignmentsByPublisher(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid publisher ID: invalid UUID format"})
		return
	}

	monthStr := c.Query("month")
	yearStr := c.Query("year")
	if monthStr != "" || yearStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Month must be between 1 and 12"})
			return
		}
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
			return
		}

		assignments, err := h.service.GetPublisherAssignmentsForMonth(id, month, year)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get assignments", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, assignments)
		return
	}

	assignments, err := h.service.GetByPublisher(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get assignments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// GetAssignmentsByResponsibility handles GET /api/v1/responsibilities/:id/assignments
// @Summary Get a responsibility's assignments
// @Description Get every assignment of a responsibility
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Responsibility ID (UUID)"
// @Success 200 {array} service.AssignmentResponse "Successfully retrieved assignments"
// @Failure 400 {object} map[string]interface{} "Invalid responsibility ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /responsibilities/{id}/assignments [get]
func (h *AssignmentHandler) GetAssignmentsByResponsibility(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid responsibility ID: invalid UUID format"})
		return
	}

	assignments, err := h.service.GetByResponsibility(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get assignments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// GetAssignmentsByDateRange handles GET /api/v1/assignments
// @Summary Get assignments in a date range
// @Description Get every assignment whose meeting date falls within the inclusive range
// @Tags assignments
// @Accept json
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} service.AssignmentResponse "Successfully retrieved assignments"
// @Failure 400 {object} map[string]interface{} "Invalid date range"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /assignments [get]
func (h *AssignmentHandler) GetAssignmentsByDateRange(c *gin.Context) {
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

	assignments, err := h.service.GetByDateRange(startDate, endDate)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get assignments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assignments)
}
