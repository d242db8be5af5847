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

// ExperienceService manages work history entries.
type ExperienceService struct {
	repo        repositories.ExperienceRepository
	cache       *caching.ContentCache
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewExperienceService creates a new experience application service
func NewExperienceService(repo repositories.ExperienceRepository, cache *caching.ContentCache, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ExperienceService {
	return &ExperienceService{
		repo:        repo,
		cache:       cache,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// List returns every entry in insertion order (cache-first).
func (s *ExperienceService) List(ctx context.Context) ([]*content.ExperienceEntry, error) {
	return caching.GetOrLoad(s.cache, caching.KeyExperience, func() ([]*content.ExperienceEntry, error) {
		return s.repo.FindAll(ctx)
	})
}

// GetByID returns a single entry.
func (s *ExperienceService) GetByID(ctx context.Context, id string) (*content.ExperienceEntry, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates and stores a new entry.
func (s *ExperienceService) Create(ctx context.Context, entry *content.ExperienceEntry) (*content.ExperienceEntry, error) {
	marker := s.perfTracker.StartOperation("content:experience:create")
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
		return nil, fmt.Errorf("failed to create experience entry: %w", err)
	}

	s.cache.Invalidate(caching.KeyExperience)
	s.logger.Content().Info("Experience entry created", "id", entry.ID, "company", entry.Company)
	return entry, nil
}

// Update applies a partial update to an existing entry.
func (s *ExperienceService) Update(ctx context.Context, id string, patch *content.ExperiencePatch) (*content.ExperienceEntry, error) {
	marker := s.perfTracker.StartOperation("content:experience:update")
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
		return nil, fmt.Errorf("failed to update experience entry %s: %w", id, err)
	}

	s.cache.Invalidate(caching.KeyExperience)
	return entry, nil
}

// Delete removes an entry permanently.
func (s *ExperienceService) Delete(ctx context.Context, id string) error {
	marker := s.perfTracker.StartOperation("content:experience:delete")
	defer marker.Complete()

	if err := s.repo.Delete(ctx, id); err != nil {
		marker.SetError(err)
		return err
	}

	s.cache.Invalidate(caching.KeyExperience)
	s.logger.Content().Info("Experience entry deleted", "id", id)
	return nil
}
