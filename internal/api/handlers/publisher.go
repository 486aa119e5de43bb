package handlers

import (
	"errors"
	"net/http"

	apperrors "congregation-manager-backend/internal/errors"
	"congregation-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PublisherHandler handles HTTP requests for publishers
type PublisherHandler struct {
	service service.PublisherServiceInterface
}

// NewPublisherHandler creates a new publisher handler
func NewPublisherHandler(service service.PublisherServiceInterface) *PublisherHandler {
	return &PublisherHandler{service: service}
}

// CreatePublisher handles POST /api/v1/publishers
// @Summary Create a new publisher
// @Description Create a new publisher with the provided details
// @Tags publishers
// @Accept json
// @Produce json
// @Param publisher body service.CreatePublisherRequest true "Publisher data"
// @Success 201 {object} service.PublisherResponse "Successfully created publisher"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /publishers [post]
func (h *PublisherHandler) CreatePublisher(c *gin.Context) {
	var req service.CreatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	publisher, err := h.service.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create publisher", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, publisher)
}

// GetPublisher handles GET /api/v1/publishers/:id
// @Summary Get publisher by ID
// @Description Get a specific publisher by its UUID
// @Tags publishers
// @Accept json
// @Produce json
// @Param id path string true "Publisher ID (UUID)"
// @Success 200 {object} service.PublisherResponse "Successfully retrieved publisher"
// @Failure 400 {object} map[string]interface{} "Invalid publisher ID"
// @Failure 404 {object} map[string]interface{} "Publisher not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /publishers/{id} [get]
func (h *PublisherHandler) GetPublisher(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid publisher ID: invalid UUID format"})
		return
	}

	publisher, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPublisherNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get publisher", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, publisher)
}

// ListPublishers handles GET /api/v1/publishers
// @Summary List all publishers
// @Description Get all publishers ordered by name. Soft-deleted rows are included when include_deleted=true.
// @Tags publishers
// @Accept json
// @Produce json
// @Param include_deleted query bool false "Include soft-deleted publishers" default(false)
// @Success 200 {array} service.PublisherResponse "Successfully retrieved publishers"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /publishers [get]
func (h *PublisherHandler) ListPublishers(c *gin.Context) {
	includeDeleted := c.DefaultQuery("include_deleted", "false") == "true"

	publishers, err := h.service.GetAll(includeDeleted)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get publishers", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, publishers)
}

// UpdatePublisher handles PUT /api/v1/publishers/:id
// @Summary Update a publisher
// @Description Update a publisher's details
// @Tags publishers
// @Accept json
// @Produce json
// @Param id path string true "Publisher ID (UUID)"
// @Param publisher body service.UpdatePublisherRequest true "Publisher data"
// @Success 200 {object} service.PublisherResponse "Successfully updated publisher"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Publisher not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /publishers/{id} [put]
func (h *PublisherHandler) UpdatePublisher(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid publisher ID: invalid UUID format"})
		return
	}

	var req service.UpdatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	publisher, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrPublisherNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update publisher", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, publisher)
}

// DeletePublisher handles DELETE /api/v1/publishers/:id
// @Summary Delete a publisher
// @Description Soft-delete a publisher. Past assignments keep pointing at the record.
// @Tags publishers
// @Accept json
// @Produce json
// @Param id path string true "Publisher ID (UUID)"
// @Success 204 "Successfully deleted publisher"
// @Failure 400 {object} map[string]interface{} "Invalid publisher ID"
// @Failure 404 {object} map[string]interface{} "Publisher not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /publishers/{id} [delete]
func (h *PublisherHandler) DeletePublisher(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid publisher ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrPublisherNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete publisher", "details": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
