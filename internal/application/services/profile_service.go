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

// ProfileService manages the singleton profile record.
type ProfileService struct {
	repo        repositories.ProfileRepository
	cache       *caching.ContentCache
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewProfileService creates a new profile application service
func NewProfileService(repo repositories.ProfileRepository, cache *caching.ContentCache, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ProfileService {
	return &ProfileService{
		repo:        repo,
		cache:       cache,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// Get returns the profile (cache-first).
func (s *ProfileService) Get(ctx context.Context) (*content.Profile, error) {
	return caching.GetOrLoad(s.cache, caching.KeyProfile, func() (*content.Profile, error) {
		return s.repo.Get(ctx)
	})
}

// Update applies a partial update to the profile.
func (s *ProfileService) Update(ctx context.Context, patch *content.ProfilePatch) (*content.Profile, error) {
	marker := s.perfTracker.StartOperation("content:profile:update")
	defer marker.Complete()

	if err := content.Validate(patch); err != nil {
		marker.SetSuccess(false)
		return nil, Invalid(err)
	}

	profile, err := s.repo.Get(ctx)
	if err != nil {
		marker.SetError(err)
		return nil, err
	}

	patch.ApplyTo(profile)
	profile.UpdatedAt = time.Now().UTC()

	if err := content.Validate(profile); err != nil {
		marker.SetSuccess(false)
		return nil, Invalid(err)
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		marker.SetError(err)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.cache.Invalidate(caching.KeyProfile)
	s.logger.Content().Info("Profile updated")
	return profile, nil
}
