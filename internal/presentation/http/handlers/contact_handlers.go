package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asikrahman/swe-portfolio-server/internal/application/services"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
)

// ContactHandlers serves the public contact form and the admin inbox.
type ContactHandlers struct {
	contactService *services.ContactService
	logger         *logging.ChanneledLogger
}

// NewContactHandlers creates contact handlers with dependency injection
func NewContactHandlers(contactService *services.ContactService, logger *logging.ChanneledLogger) *ContactHandlers {
	return &ContactHandlers{
		contactService: contactService,
		logger:         logger,
	}
}

// PostContact handles POST /api/contact - public submission
func (h *ContactHandlers) PostContact(c *gin.Context) {
	var msg content.ContactMessage
	if err := decodeStrict(c, &msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stored, err := h.contactService.Submit(c.Request.Context(), &msg)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusCreated, stored)
}

// GetMessages handles GET /api/admin/messages
func (h *ContactHandlers) GetMessages(c *gin.Context) {
	messages, err := h.contactService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, messages)
}

// PutMessage handles PUT /api/admin/messages/:id - read/unread toggle
func (h *ContactHandlers) PutMessage(c *gin.Context) {
	var patch content.MessagePatch
	if err := decodeStrict(c, &patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.contactService.UpdateStatus(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

// DeleteMessage handles DELETE /api/admin/messages/:id
func (h *ContactHandlers) DeleteMessage(c *gin.Context) {
	if err := h.contactService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"message": "Message deleted"})
}
