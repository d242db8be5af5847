package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asikrahman/swe-portfolio-server/internal/application/services"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
)

// SkillHandlers serves the skill catalog endpoints.
type SkillHandlers struct {
	skillService *services.SkillService
	logger       *logging.ChanneledLogger
}

// NewSkillHandlers creates skill handlers with dependency injection
func NewSkillHandlers(skillService *services.SkillService, logger *logging.ChanneledLogger) *SkillHandlers {
	return &SkillHandlers{
		skillService: skillService,
		logger:       logger,
	}
}

// GetSkills handles GET /api/skills and GET /api/admin/skills
func (h *SkillHandlers) GetSkills(c *gin.Context) {
	skills, err := h.skillService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, skills)
}

// GetSkillByID handles GET /api/admin/skills/:id
func (h *SkillHandlers) GetSkillByID(c *gin.Context) {
	skill, err := h.skillService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, skill)
}

// PostSkill handles POST /api/admin/skills
func (h *SkillHandlers) PostSkill(c *gin.Context) {
	var skill content.Skill
	if err := decodeStrict(c, &skill); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.skillService.Create(c.Request.Context(), &skill)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

// PutSkill handles PUT /api/admin/skills/:id
func (h *SkillHandlers) PutSkill(c *gin.Context) {
	var patch content.SkillPatch
	if err := decodeStrict(c, &patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.skillService.Update(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

// DeleteSkill handles DELETE /api/admin/skills/:id
func (h *SkillHandlers) DeleteSkill(c *gin.Context) {
	if err := h.skillService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"message": "Skill deleted"})
}
