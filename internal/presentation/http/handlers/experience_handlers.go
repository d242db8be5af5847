package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asikrahman/swe-portfolio-server/internal/application/services"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
)

// ExperienceHandlers serves the work history endpoints.
type ExperienceHandlers struct {
	experienceService *services.ExperienceService
	logger            *logging.ChanneledLogger
}

// NewExperienceHandlers creates experience handlers with dependency injection
func NewExperienceHandlers(experienceService *services.ExperienceService, logger *logging.ChanneledLogger) *ExperienceHandlers {
	return &ExperienceHandlers{
		experienceService: experienceService,
		logger:            logger,
	}
}

// GetExperience handles GET /api/experience and GET /api/admin/experience
func (h *ExperienceHandlers) GetExperience(c *gin.Context) {
	entries, err := h.experienceService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, entries)
}

// GetExperienceByID handles GET /api/admin/experience/:id
func (h *ExperienceHandlers) GetExperienceByID(c *gin.Context) {
	entry, err := h.experienceService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, entry)
}

// PostExperience handles POST /api/admin/experience
func (h *ExperienceHandlers) PostExperience(c *gin.Context) {
	var entry content.ExperienceEntry
	if err := decodeStrict(c, &entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.experienceService.Create(c.Request.Context(), &entry)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

// PutExperience handles PUT /api/admin/experience/:id
func (h *ExperienceHandlers) PutExperience(c *gin.Context) {
	var patch content.ExperiencePatch
	if err := decodeStrict(c, &patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.experienceService.Update(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

// DeleteExperience handles DELETE /api/admin/experience/:id
func (h *ExperienceHandlers) DeleteExperience(c *gin.Context) {
	if err := h.experienceService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"message": "Experience entry deleted"})
}
