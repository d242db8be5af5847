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

// SkillService manages the skill catalog.
type SkillService struct {
	repo        repositories.SkillRepository
	cache       *caching.ContentCache
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewSkillService creates a new skill application service
func NewSkillService(repo repositories.SkillRepository, cache *caching.ContentCache, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *SkillService {
	return &SkillService{
		repo:        repo,
		cache:       cache,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// List returns every skill in insertion order (cache-first).
func (s *SkillService) List(ctx context.Context) ([]*content.Skill, error) {
	return caching.GetOrLoad(s.cache, caching.KeySkills, func() ([]*content.Skill, error) {
		return s.repo.FindAll(ctx)
	})
}

// GetByID returns a single skill.
func (s *SkillService) GetByID(ctx context.Context, id string) (*content.Skill, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates and stores a new skill.
func (s *SkillService) Create(ctx context.Context, skill *content.Skill) (*content.Skill, error) {
	marker := s.perfTracker.StartOperation("content:skills:create")
	defer marker.Complete()

	if err := content.Validate(skill); err != nil {
		marker.SetSuccess(false)
		return nil, Invalid(err)
	}

	now := time.Now().UTC()
	skill.ID = newID()
	skill.CreatedAt = now
	skill.UpdatedAt = now

	if err := s.repo.Store(ctx, skill); err != nil {
		marker.SetError(err)
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}

	s.cache.Invalidate(caching.KeySkills)
	s.logger.Content().Info("Skill created", "id", skill.ID, "name", skill.Name)
	return skill, nil
}

// Update applies a partial update to an existing skill.
func (s *SkillService) Update(ctx context.Context, id string, patch *content.SkillPatch) (*content.Skill, error) {
	marker := s.perfTracker.StartOperation("content:skills:update")
	defer marker.Complete()

	if err := content.Validate(patch); err != nil {
		marker.SetSuccess(false)
		return nil, Invalid(err)
	}

	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		marker.SetError(err)
		return nil, err
	}

	patch.ApplyTo(skill)
	skill.UpdatedAt = time.Now().UTC()

	if err := content.Validate(skill); err != nil {
		marker.SetSuccess(false)
		return nil, Invalid(err)
	}

	if err := s.repo.Update(ctx, skill); err != nil {
		marker.SetError(err)
		return nil, fmt.Errorf("failed to update skill %s: %w", id, err)
	}

	s.cache.Invalidate(caching.KeySkills)
	return skill, nil
}

// Delete removes a skill permanently.
func (s *SkillService) Delete(ctx context.Context, id string) error {
	marker := s.perfTracker.StartOperation("content:skills:delete")
	defer marker.Complete()

	if err := s.repo.Delete(ctx, id); err != nil {
		marker.SetError(err)
		return err
	}

	s.cache.Invalidate(caching.KeySkills)
	s.logger.Content().Info("Skill deleted", "id", id)
	return nil
}
