package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asikrahman/swe-portfolio-server/internal/application/services"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
)

// EducationHandlers serves the education history endpoints.
type EducationHandlers struct {
	educationService *services.EducationService
	logger           *logging.ChanneledLogger
}

// NewEducationHandlers creates education handlers with dependency injection
func NewEducationHandlers(educationService *services.EducationService, logger *logging.ChanneledLogger) *EducationHandlers {
	return &EducationHandlers{
		educationService: educationService,
		logger:           logger,
	}
}

// GetEducation handles GET /api/education and GET /api/admin/education
func (h *EducationHandlers) GetEducation(c *gin.Context) {
	entries, err := h.educationService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, entries)
}

// GetEducationByID handles GET /api/admin/education/:id
func (h *EducationHandlers) GetEducationByID(c *gin.Context) {
	entry, err := h.educationService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, entry)
}

// PostEducation handles POST /api/admin/education
func (h *EducationHandlers) PostEducation(c *gin.Context) {
	var entry content.EducationEntry
	if err := decodeStrict(c, &entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.educationService.Create(c.Request.Context(), &entry)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

// PutEducation handles PUT /api/admin/education/:id
func (h *EducationHandlers) PutEducation(c *gin.Context) {
	var patch content.EducationPatch
	if err := decodeStrict(c, &patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.educationService.Update(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

// DeleteEducation handles DELETE /api/admin/education/:id
func (h *EducationHandlers) DeleteEducation(c *gin.Context) {
	if err := h.educationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"message": "Education entry deleted"})
}
