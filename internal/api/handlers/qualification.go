package handlers

import (
	"errors"
	"net/http"

	apperrors "congregation-manager-backend/internal/errors"
	"congregation-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// QualificationHandler handles HTTP requests for publisher qualifications
type QualificationHandler struct {
	service service.QualificationServiceInterface
}

// NewQualificationHandler creates a new qualification handler
func NewQualificationHandler(service service.QualificationServiceInterface) *QualificationHandler {
	return &QualificationHandler{service: service}
}

// AddQualificationRequest represents the request to qualify a publisher
type AddQualificationRequest struct {
	ResponsibilityID uuid.UUID `json:"responsibility_id" binding:"required"`
}

// AddQualification handles POST /api/v1/publishers/:id/qualifications
// @Summary Qualify a publisher
// @Description Record that a publisher may perform a responsibility
// @Tags qualifications
// @Accept json
// @Produce json
// @Param id path string true "Publisher ID (UUID)"
// @Param qualification body AddQualificationRequest true "Responsibility to qualify for"
// @Success 201 {object} service.QualificationResponse "Successfully qualified publisher"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Publisher or responsibility not found"
// @Failure 409 {object} map[string]interface{} "Qualification already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /publishers/{id}/qualifications [post]
func (h *QualificationHandler) AddQualification(c *gin.Context) {
	publisherID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid publisher ID: invalid UUID format"})
		return
	}

	var req AddQualificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	qualification, err := h.service.Add(publisherID, req.ResponsibilityID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add qualification", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, qualification)
}

// RemoveQualification handles DELETE /api/v1/publishers/:id/qualifications/:responsibility_id
// @Summary Remove a publisher's qualification
// @Description Remove a publisher's qualification for a responsibility. Existing assignments are untouched.
// @Tags qualifications
// @Accept json
// @Produce json
// @Param id path string true "Publisher ID (UUID)"
// @Param responsibility_id path string true "Responsibility ID (UUID)"
// @Success 204 "Successfully removed qualification"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Qualification not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /publishers/{id}/qualifications/{responsibility_id} [delete]
func (h *QualificationHandler) RemoveQualification(c *gin.Context) {
	publisherID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid publisher ID: invalid UUID format"})
		return
	}
	responsibilityID, err := uuid.Parse(c.Param("responsibility_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid responsibility ID: invalid UUID format"})
		return
	}

	if err := h.service.Remove(publisherID, responsibilityID); err != nil {
		if errors.Is(err, apperrors.ErrQualificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove qualification", "details": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// GetPublisherQualifications handles GET /api/v1/publishers/:id/qualifications
// @Summary Get a publisher's qualifications
// @Description Get the responsibilities a publisher is qualified for
// @Tags qualifications
// @Accept json
// @Produce json
// @Param id path string true "Publisher ID (UUID)"
// @Success 200 {array} service.QualificationResponse "Successfully retrieved qualifications"
// @Failure 400 {object} map[string]interface{} "Invalid publisher ID"
// @Failure 404 {object} map[string]interface{} "Publisher not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /publishers/{id}/qualifications [get]
func (h *QualificationHandler) GetPublisherQualifications(c *gin.Context) {
	publisherID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid publisher ID: invalid UUID format"})
		return
	}

	qualifications, err := h.service.GetByPublisher(publisherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPublisherNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get qualifications", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, qualifications)
}

// GetQualifiedPublishers handles GET /api/v1/responsibilities/:id/qualified-publishers
// @Summary Get a responsibility's qualified publishers
// @Description Get the publishers qualified to perform a responsibility
// @Tags qualifications
// @Accept json
// @Produce json
// @Param id path string true "Responsibility ID (UUID)"
// @Success 200 {array} service.QualificationResponse "Successfully retrieved qualified publishers"
// @Failure 400 {object} map[string]interface{} "Invalid responsibility ID"
// @Failure 404 {object} map[string]interface{} "Responsibility not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /responsibilities/{id}/qualified-publishers [get]
func (h *QualificationHandler) GetQualifiedPublishers(c *gin.Context) {
	responsibilityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid responsibility ID: invalid UUID format"})
		return
	}

	qualifications, err := h.service.GetByResponsibility(responsibilityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResponsibilityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get qualified publishers", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, qualifications)
}
