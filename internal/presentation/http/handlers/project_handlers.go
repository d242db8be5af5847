package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asikrahman/swe-portfolio-server/internal/application/services"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
)

// ProjectHandlers serves the portfolio project endpoints.
type ProjectHandlers struct {
	projectService *services.ProjectService
	logger         *logging.ChanneledLogger
}

// NewProjectHandlers creates project handlers with dependency injection
func NewProjectHandlers(projectService *services.ProjectService, logger *logging.ChanneledLogger) *ProjectHandlers {
	return &ProjectHandlers{
		projectService: projectService,
		logger:         logger,
	}
}

// GetProjects handles GET /api/projects and GET /api/admin/projects
func (h *ProjectHandlers) GetProjects(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, projects)
}

// GetProjectByID handles GET /api/projects/:id and GET /api/admin/projects/:id
func (h *ProjectHandlers) GetProjectByID(c *gin.Context) {
	project, err := h.projectService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, project)
}

// PostProject handles POST /api/admin/projects
func (h *ProjectHandlers) PostProject(c *gin.Context) {
	var project content.Project
	if err := decodeStrict(c, &project); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.projectService.Create(c.Request.Context(), &project)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

// PutProject handles PUT /api/admin/projects/:id
func (h *ProjectHandlers) PutProject(c *gin.Context) {
	var patch content.ProjectPatch
	if err := decodeStrict(c, &patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.projectService.Update(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

// DeleteProject handles DELETE /api/admin/projects/:id
func (h *ProjectHandlers) DeleteProject(c *gin.Context) {
	if err := h.projectService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"message": "Project deleted"})
}
