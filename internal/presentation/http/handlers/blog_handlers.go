package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asikrahman/swe-portfolio-server/internal/application/services"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
)

// BlogHandlers serves the blog endpoints. The public side sees published
// posts only; the admin side includes drafts.
type BlogHandlers struct {
	blogService *services.BlogService
	logger      *logging.ChanneledLogger
}

// NewBlogHandlers creates blog handlers with dependency injection
func NewBlogHandlers(blogService *services.BlogService, logger *logging.ChanneledLogger) *BlogHandlers {
	return &BlogHandlers{
		blogService: blogService,
		logger:      logger,
	}
}

// GetBlogs handles GET /api/blogs - published posts only
func (h *BlogHandlers) GetBlogs(c *gin.Context) {
	posts, err := h.blogService.ListPublished(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, posts)
}

// GetBlogBySlug handles GET /api/blogs/:slug - drafts 404 here
func (h *BlogHandlers) GetBlogBySlug(c *gin.Context) {
	post, err := h.blogService.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, post)
}

// GetAllBlogs handles GET /api/admin/blogs - includes drafts
func (h *BlogHandlers) GetAllBlogs(c *gin.Context) {
	posts, err := h.blogService.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, posts)
}

// GetBlogByID handles GET /api/admin/blogs/:id
func (h *BlogHandlers) GetBlogByID(c *gin.Context) {
	post, err := h.blogService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, post)
}

// PostBlog handles POST /api/admin/blogs
func (h *BlogHandlers) PostBlog(c *gin.Context) {
	var post content.BlogPost
	if err := decodeStrict(c, &post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.blogService.Create(c.Request.Context(), &post)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

// PutBlog handles PUT /api/admin/blogs/:id
func (h *BlogHandlers) PutBlog(c *gin.Context) {
	var patch content.BlogPatch
	if err := decodeStrict(c, &patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.blogService.Update(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

// DeleteBlog handles DELETE /api/admin/blogs/:id
func (h *BlogHandlers) DeleteBlog(c *gin.Context) {
	if err := h.blogService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"message": "Blog post deleted"})
}
