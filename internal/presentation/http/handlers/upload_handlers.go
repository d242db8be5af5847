package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asikrahman/swe-portfolio-server/internal/application/services"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
)

// UploadHandlers serves the admin media upload endpoint.
type UploadHandlers struct {
	uploadService *services.UploadService
	logger        *logging.ChanneledLogger
}

// NewUploadHandlers creates upload handlers with dependency injection
func NewUploadHandlers(uploadService *services.UploadService, logger *logging.ChanneledLogger) *UploadHandlers {
	return &UploadHandlers{
		uploadService: uploadService,
		logger:        logger,
	}
}

// PostUpload handles POST /api/admin/upload - multipart field "file".
// The request body is capped before parsing so an oversized upload fails
// fast instead of spooling to disk.
func (h *UploadHandlers) PostUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.uploadService.MaxBytes()+1)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field \"file\" is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	result, err := h.uploadService.Store(data, fileHeader.Filename)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusCreated, result)
}

// DeleteUpload handles DELETE /api/admin/upload - removes a stored file by
// its public URL, for cleaning up media an admin no longer references.
func (h *UploadHandlers) DeleteUpload(c *gin.Context) {
	var req struct {
		URL string `json:"url"`
	}
	if err := decodeStrict(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	if err := h.uploadService.Remove(req.URL); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"message": "Upload removed"})
}
