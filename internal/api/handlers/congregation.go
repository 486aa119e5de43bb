package handlers

import (
	"errors"
	"net/http"

	apperrors "congregation-manager-backend/internal/errors"
	"congregation-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CongregationHandler handles HTTP requests for the congregation
type CongregationHandler struct {
	service service.CongregationServiceInterface
}

// NewCongregationHandler creates a new congregation handler
func NewCongregationHandler(service service.CongregationServiceInterface) *CongregationHandler {
	return &CongregationHandler{service: service}
}

// CreateCongregation handles POST /api/v1/congregations
// @Summary Create the congregation
// @Description Create the congregation record. Only one congregation may exist.
// @Tags congregations
// @Accept json
// @Produce json
// @Param congregation body service.CreateCongregationRequest true "Congregation data"
// @Success 201 {object} service.CongregationResponse "Successfully created congregation"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Congregation already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /congregations [post]
func (h *CongregationHandler) CreateCongregation(c *gin.Context) {
	var req service.CreateCongregationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	congregation, err := h.service.Create(&req)
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create congregation", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, congregation)
}

// GetCongregation handles GET /api/v1/congregations
// @Summary Get the congregation
// @Description Get the single congregation record
// @Tags congregations
// @Accept json
// @Produce json
// @Success 200 {object} service.CongregationResponse "Successfully retrieved congregation"
// @Failure 404 {object} map[string]interface{} "Congregation not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /congregations [get]
func (h *CongregationHandler) GetCongregation(c *gin.Context) {
	congregation, err := h.service.Get()
	if err != nil {
		if errors.Is(err, apperrors.ErrCongregationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get congregation", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, congregation)
}

// UpdateCongregation handles PUT /api/v1/congregations/:id
// @Summary Update the congregation
// @Description Update the congregation's name, meeting days or address
// @Tags congregations
// @Accept json
// @Produce json
// @Param id path string true "Congregation ID (UUID)"
// @Param congregation body service.UpdateCongregationRequest true "Congregation data"
// @Success 200 {object} service.CongregationResponse "Successfully updated congregation"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Congregation not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /congregations/{id} [put]
func (h *CongregationHandler) UpdateCongregation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid congregation ID: invalid UUID format"})
		return
	}

	var req service.UpdateCongregationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	congregation, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCongregationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update congregation", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, congregation)
}

// DeleteCongregation handles DELETE /api/v1/congregations/:id
// @Summary Delete the congregation
// @Description Deleting the congregation is always rejected
// @Tags congregations
// @Accept json
// @Produce json
// @Param id path string true "Congregation ID (UUID)"
// @Failure 400 {object} map[string]interface{} "Invalid congregation ID"
// @Failure 404 {object} map[string]interface{} "Congregation not found"
// @Failure 405 {object} map[string]interface{} "Deletion not allowed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /congregations/{id} [delete]
func (h *CongregationHandler) DeleteCongregation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid congregation ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrCongregationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsNotAllowed(err) {
			c.JSON(http.StatusMethodNotAllowed, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete congregation", "details": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
