package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asikrahman/swe-portfolio-server/internal/application/services"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
)

// ProfileHandlers serves the public profile and its admin update.
type ProfileHandlers struct {
	profileService *services.ProfileService
	logger         *logging.ChanneledLogger
}

// NewProfileHandlers creates profile handlers with dependency injection
func NewProfileHandlers(profileService *services.ProfileService, logger *logging.ChanneledLogger) *ProfileHandlers {
	return &ProfileHandlers{
		profileService: profileService,
		logger:         logger,
	}
}

// GetProfile handles GET /api/profile
func (h *ProfileHandlers) GetProfile(c *gin.Context) {
	profile, err := h.profileService.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, profile)
}

// PutProfile handles PUT /api/admin/profile - partial update of the
// singleton record.
func (h *ProfileHandlers) PutProfile(c *gin.Context) {
	var patch content.ProfilePatch
	if err := decodeStrict(c, &patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), &patch)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, profile)
}
