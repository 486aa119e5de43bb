package handlers

import (
	"errors"
	"net/http"

	"congregation-manager-backend/internal/database/models"
	apperrors "congregation-manager-backend/internal/errors"
	"congregation-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ResponsibilityHandler handles HTTP requests for responsibilities and their
// capacity configuration
type ResponsibilityHandler struct {
	service       service.ResponsibilityServiceInterface
	configService service.AssignmentConfigServiceInterface
}

// NewResponsibilityHandler creates a new responsibility handler
func NewResponsibilityHandler(
	service service.ResponsibilityServiceInterface,
	configService service.AssignmentConfigServiceInterface,
) *ResponsibilityHandler {
	return &ResponsibilityHandler{
		service:       service,
		configService: configService,
	}
}

// CreateResponsibility handles POST /api/v1/responsibilities
// @Summary Create a new responsibility
// @Description Create a new responsibility, optionally owned by a department
// @Tags responsibilities
// @Accept json
// @Produce json
// @Param responsibility body service.CreateResponsibilityRequest true "Responsibility data"
// @Success 201 {object} service.ResponsibilityResponse "Successfully created responsibility"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Department not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /responsibilities [post]
func (h *ResponsibilityHandler) CreateResponsibility(c *gin.Context) {
	var req service.CreateResponsibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	responsibility, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create responsibility", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, responsibility)
}

// GetResponsibility handles GET /api/v1/responsibilities/:id
// @Summary Get responsibility by ID
// @Description Get a specific responsibility by its UUID
// @Tags responsibilities
// @Accept json
// @Produce json
// @Param id path string true "Responsibility ID (UUID)"
// @Success 200 {object} service.ResponsibilityResponse "Successfully retrieved responsibility"
// @Failure 400 {object} map[string]interface{} "Invalid responsibility ID"
// @Failure 404 {object} map[string]interface{} "Responsibility not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /responsibilities/{id} [get]
func (h *ResponsibilityHandler) GetResponsibility(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid responsibility ID: invalid UUID format"})
		return
	}

	responsibility, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResponsibilityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get responsibility", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, responsibility)
}

// ListResponsibilities handles GET /api/v1/responsibilities
// @Summary List all responsibilities
// @Description Get all responsibilities in report column order. Soft-deleted rows are included when include_deleted=true.
// @Tags responsibilities
// @Accept json
// @Produce json
// @Param include_deleted query bool false "Include soft-deleted responsibilities" default(false)
// @Success 200 {array} service.ResponsibilityResponse "Successfully retrieved responsibilities"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /responsibilities [get]
func (h *ResponsibilityHandler) ListResponsibilities(c *gin.Context) {
	includeDeleted := c.DefaultQuery("include_deleted", "false") == "true"

	responsibilities, err := h.service.GetAll(includeDeleted)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get responsibilities", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, responsibilities)
}

// UpdateResponsibility handles PUT /api/v1/responsibilities/:id
// @Summary Update a responsibility
// @Description Update a responsibility's name, description or department
// @Tags responsibilities
// @Accept json
// @Produce json
// @Param id path string true "Responsibility ID (UUID)"
// @Param responsibility body service.UpdateResponsibilityRequest true "Responsibility data"
// @Success 200 {object} service.ResponsibilityResponse "Successfully updated responsibility"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Responsibility not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /responsibilities/{id} [put]
func (h *ResponsibilityHandler) UpdateResponsibility(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid responsibility ID: invalid UUID format"})
		return
	}

	var req service.UpdateResponsibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	responsibility, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrResponsibilityNotFound) || errors.Is(err, apperrors.ErrDepartmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update responsibility", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, responsibility)
}

// DeleteResponsibility handles DELETE /api/v1/responsibilities/:id
// @Summary Delete a responsibility
// @Description Soft-delete a responsibility. The monthly report drops its column.
// @Tags responsibilities
// @Accept json
// @Produce json
// @Param id path string true "Responsibility ID (UUID)"
// @Success 204 "Successfully deleted responsibility"
// @Failure 400 {object} map[string]interface{} "Invalid responsibility ID"
// @Failure 404 {object} map[string]interface{} "Responsibility not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /responsibilities/{id} [delete]
func (h *ResponsibilityHandler) DeleteResponsibility(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid responsibility ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrResponsibilityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete responsibility", "details": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// CreateAssignmentConfig handles POST /api/v1/responsibilities/:id/assignment-configs
// @Summary Create a capacity config
// @Description Declare how many publishers a responsibility wants for a meeting type
// @Tags responsibilities
// @Accept json
// @Produce json
// @Param id path string true "Responsibility ID (UUID)"
// @Param config body service.AssignmentConfigRequest true "Config data"
// @Success 201 {object} service.AssignmentConfigResponse "Successfully created config"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Responsibility not found"
// @Failure 409 {object} map[string]interface{} "Config already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /responsibilities/{id}/assignment-configs [post]
func (h *ResponsibilityHandler) CreateAssignmentConfig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid responsibility ID: invalid UUID format"})
		return
	}

	var req service.AssignmentConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	req.ResponsibilityID = id

	config, err := h.configService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrResponsibilityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidMeetingType) || apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create assignment config", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, config)
}

// ListAssignmentConfigs handles GET /api/v1/responsibilities/:id/assignment-configs
// @Summary List a responsibility's capacity configs
// @Description Get every capacity config of a responsibility
// @Tags responsibilities
// @Accept json
// @Produce json
// @Param id path string true "Responsibility ID (UUID)"
// @Success 200 {array} service.AssignmentConfigResponse "Successfully retrieved configs"
// @Failure 400 {object} map[string]interface{} "Invalid responsibility ID"
// @Failure 404 {object} map[string]interface{} "Responsibility not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /responsibilities/{id}/assignment-configs [get]
func (h *ResponsibilityHandler) ListAssignmentConfigs(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid responsibility ID: invalid UUID format"})
		return
	}

	configs, err := h.configService.GetByResponsibility(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResponsibilityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get assignment configs", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, configs)
}

// UpdateAssignmentConfig handles PUT /api/v1/responsibilities/:id/assignment-configs/:meeting_type
// @Summary Update a capacity config
// @Description Change the configured quantity for a responsibility and meeting type
// @Tags responsibilities
// @Accept json
// @Produce json
// @Param id path string true "Responsibility ID (UUID)"
// @Param meeting_type path string true "Meeting type (midweek or weekend)"
// @Param config body service.AssignmentConfigRequest true "Config data"
// @Success 200 {object} service.AssignmentConfigResponse "Successfully updated config"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Config not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /responsibilities/{id}/assignment-configs/{meeting_type} [put]
func (h *ResponsibilityHandler) UpdateAssignmentConfig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid responsibility ID: invalid UUID format"})
		return
	}

	var req service.AssignmentConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	req.ResponsibilityID = id
	req.MeetingType = models.MeetingType(c.Param("meeting_type"))

	config, err := h.configService.Update(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssignmentConfigNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidMeetingType) || apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update assignment config", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, config)
}

// DeleteAssignmentConfig handles DELETE /api/v1/responsibilities/:id/assignment-configs/:meeting_type
// @Summary Delete a capacity config
// @Description Remove the capacity config for a responsibility and meeting type
// @Tags responsibilities
// @Accept json
// @Produce json
// @Param id path string true "Responsibility ID (UUID)"
// @Param meeting_type path string true "Meeting type (midweek or weekend)"
// @Success 204 "Successfully deleted config"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Config not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /responsibilities/{id}/assignment-configs/{meeting_type} [delete]
func (h *ResponsibilityHandler) DeleteAssignmentConfig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid responsibility ID: invalid UUID format"})
		return
	}

	meetingType := models.MeetingType(c.Param("meeting_type"))
	if err := h.configService.Delete(id, meetingType); err != nil {
		if errors.Is(err, apperrors.ErrAssignmentConfigNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidMeetingType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete assignment config", "details": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
