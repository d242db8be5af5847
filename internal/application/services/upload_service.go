package services

import (
	"fmt"

	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/media"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/performance"
)

// UploadService stores admin uploads (project images, profile photo,
// resume PDF) under the media root.
type UploadService struct {
	processor   *media.ImageProcessor
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
	maxBytes    int64
}

// NewUploadService creates a new upload application service
func NewUploadService(processor *media.ImageProcessor, logger *logging.ChanneledLogger, perfTracker *performance.Tracker, maxBytes int64) *UploadService {
	return &UploadService{
		processor:   processor,
		logger:      logger,
		perfTracker: perfTracker,
		maxBytes:    maxBytes,
	}
}

// MaxBytes returns the configured upload size cap.
func (s *UploadService) MaxBytes() int64 {
	return s.maxBytes
}

// Store processes an upload and returns its public URLs.
func (s *UploadService) Store(data []byte, filename string) (*media.UploadResult, error) {
	marker := s.perfTracker.StartOperation("media:upload")
	defer marker.Complete()
	marker.AddMetadata("filename", filename)
	marker.AddMetadata("bytes", len(data))

	if int64(len(data)) > s.maxBytes {
		marker.SetSuccess(false)
		return nil, Invalid(fmt.Errorf("file exceeds the %d byte upload limit", s.maxBytes))
	}

	result, err := s.processor.SaveUpload(data, filename, newID())
	if err != nil {
		marker.SetSuccess(false)
		return nil, Invalid(err)
	}

	s.logger.Content().Info("Upload stored", "url", result.URL)
	return result, nil
}

// Remove deletes a stored upload by its public URL path. Bad paths are
// reported as validation errors; a file that is already gone is not.
func (s *UploadService) Remove(url string) error {
	marker := s.perfTracker.StartOperation("media:remove")
	defer marker.Complete()
	marker.AddMetadata("url", url)

	if err := s.processor.RemoveUpload(url); err != nil {
		marker.SetSuccess(false)
		return Invalid(err)
	}

	s.logger.Content().Info("Upload removed", "url", url)
	return nil
}
