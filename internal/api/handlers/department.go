package handlers

import (
	"errors"
	"net/http"

	apperrors "congregation-manager-backend/internal/errors"
	"congregation-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DepartmentHandler handles HTTP requests for departments
type DepartmentHandler struct {
	service               service.DepartmentServiceInterface
	responsibilityService service.ResponsibilityServiceInterface
}

// NewDepartmentHandler creates a new department handler
func NewDepartmentHandler(
	service service.DepartmentServiceInterface,
	responsibilityService service.ResponsibilityServiceInterface,
) *DepartmentHandler {
	return &DepartmentHandler{
		service:               service,
		responsibilityService: responsibilityService,
	}
}

// CreateDepartment handles POST /api/v1/departments
// @Summary Create a new department
// @Description Create a new department with an optional responsible publisher
// @Tags departments
// @Accept json
// @Produce json
// @Param department body service.CreateDepartmentRequest true "Department data"
// @Success 201 {object} service.DepartmentResponse "Successfully created department"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Responsible publisher not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /departments [post]
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req service.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	department, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrPublisherNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create department", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, department)
}

// GetDepartment handles GET /api/v1/departments/:id
// @Summary Get department by ID
// @Description Get a specific department by its UUID
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Success 200 {object} service.DepartmentResponse "Successfully retrieved department"
// @Failure 400 {object} map[string]interface{} "Invalid department ID"
// @Failure 404 {object} map[string]interface{} "Department not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /departments/{id} [get]
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid department ID: invalid UUID format"})
		return
	}

	department, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get department", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, department)
}

// ListDepartments handles GET /api/v1/departments
// @Summary List all departments
// @Description Get all departments ordered by name. Soft-deleted rows are included when include_deleted=true.
// @Tags departments
// @Accept json
// @Produce json
// @Param include_deleted query bool false "Include soft-deleted departments" default(false)
// @Success 200 {array} service.DepartmentResponse "Successfully retrieved departments"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /departments [get]
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	includeDeleted := c.DefaultQuery("include_deleted", "false") == "true"

	departments, err := h.service.GetAll(includeDeleted)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get departments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, departments)
}

// GetDepartmentResponsibilities handles GET /api/v1/departments/:id/responsibilities
// @Summary Get a department's responsibilities
// @Description Get the active responsibilities owned by a department
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Success 200 {array} service.ResponsibilityResponse "Successfully retrieved responsibilities"
// @Failure 400 {object} map[string]interface{} "Invalid department ID"
// @Failure 404 {object} map[string]interface{} "Department not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /departments/{id}/responsibilities [get]
func (h *DepartmentHandler) GetDepartmentResponsibilities(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid department ID: invalid UUID format"})
		return
	}

	responsibilities, err := h.responsibilityService.GetByDepartment(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get department responsibilities", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, responsibilities)
}

// UpdateDepartment handles PUT /api/v1/departments/:id
// @Summary Update a department
// @Description Update a department's name, status or responsible publisher
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Param department body service.UpdateDepartmentRequest true "Department data"
// @Success 200 {object} service.DepartmentResponse "Successfully updated department"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Department not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /departments/{id} [put]
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid department ID: invalid UUID format"})
		return
	}

	var req service.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	department, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) || errors.Is(err, apperrors.ErrPublisherNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update department", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, department)
}

// DeleteDepartment handles DELETE /api/v1/departments/:id
// @Summary Delete a department
// @Description Soft-delete a department. Its responsibilities stay active without a department.
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Success 204 "Successfully deleted department"
// @Failure 400 {object} map[string]interface{} "Invalid department ID"
// @Failure 404 {object} map[string]interface{} "Department not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /departments/{id} [delete]
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid department ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete department", "details": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
