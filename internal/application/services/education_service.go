package services

import (
	"context"
	"fmt"
	"time"

	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/repositories"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/caching"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/performance"
)

// EducationService manages education history entries.
type EducationService struct {
	repo        repositories.EducationRepository
	cache       *caching.ContentCache
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewEducationService creates a new education application service
func NewEducationService(repo repositories.EducationRepository, cache *caching.ContentCache, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *EducationService {
	return &EducationService{
		repo:        repo,
		cache:       cache,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// List returns every entry in insertion order (cache-first).
func (s *EducationService) List(ctx context.Context) ([]*content.EducationEntry, error) {
	return caching.GetOrLoad(s.cache, caching.KeyEducation, func() ([]*content.EducationEntry, error) {
		return s.repo.FindAll(ctx)
	})
}

// GetByID returns a single entry.
func (s *EducationService) GetByID(ctx context.Context, id string) (*content.EducationEntry, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates and stores a new entry.
func (s *EducationService) Create(ctx context.Context, entry *content.EducationEntry) (*content.EducationEntry, error) {
	marker := s.perfTracker.StartOperation("content:education:create")
	defer marker.Complete()

	if err := content.Validate(entry); err != nil {
		marker.SetSuccess(false)
		return nil, Invalid(err)
	}

	now := time.Now().UTC()
	entry.ID = newID()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	if err := s.repo.Store(ctx, entry); err != nil {
		marker.SetError(err)
		return nil, fmt.Errorf("failed to create education entry: %w", err)
	}

	s.cache.Invalidate(caching.KeyEducation)
	s.logger.Content().Info("Education entry created", "id", entry.ID)
	return entry, nil
}

// Update applies a partial update to an existing entry.
func (s *EducationService) Update(ctx context.Context, id string, patch *content.EducationPatch) (*content.EducationEntry, error) {
	marker := s.perfTracker.StartOperation("content:education:update")
	defer marker.Complete()

	if err := content.Validate(patch); err != nil {
		marker.SetSuccess(false)
		return nil, Invalid(err)
	}

	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		marker.SetError(err)
		return nil, err
	}

	patch.ApplyTo(entry)
	entry.UpdatedAt = time.Now().UTC()

	if err := content.Validate(entry); err != nil {
		marker.SetSuccess(false)
		return nil, Invalid(err)
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		marker.SetError(err)
		return nil, fmt.Errorf("failed to update education entry %s: %w", id, err)
	}

	s.cache.Invalidate(caching.KeyEducation)
	return entry, nil
}

// Delete removes an entry permanently.
func (s *EducationService) Delete(ctx context.Context, id string) error {
	marker := s.perfTracker.StartOperation("content:education:delete")
	defer marker.Complete()

	if err := s.repo.Delete(ctx, id); err != nil {
		marker.SetError(err)
		return err
	}

	s.cache.Invalidate(caching.KeyEducation)
	s.logger.Content().Info("Education entry deleted", "id", id)
	return nil
}
