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

// ProjectService manages portfolio projects.
type ProjectService struct {
	repo        repositories.ProjectRepository
	cache       *caching.ContentCache
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewProjectService creates a new project application service
func NewProjectService(repo repositories.ProjectRepository, cache *caching.ContentCache, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ProjectService {
	return &ProjectService{
		repo:        repo,
		cache:       cache,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// List returns every project in insertion order (cache-first).
func (s *ProjectService) List(ctx context.Context) ([]*content.Project, error) {
	return caching.GetOrLoad(s.cache, caching.KeyProjects, func() ([]*content.Project, error) {
		return s.repo.FindAll(ctx)
	})
}

// GetByID returns a single project. Detail pages bypass the cache; they are
// rare compared to the listing.
func (s *ProjectService) GetByID(ctx context.Context, id string) (*content.Project, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates and stores a new project. An omitted status defaults to
// completed.
func (s *ProjectService) Create(ctx context.Context, project *content.Project) (*content.Project, error) {
	marker := s.perfTracker.StartOperation("content:projects:create")
	defer marker.Complete()

	if project.Status == "" {
		project.Status = content.ProjectStatusDefault
	}

	if err := content.Validate(project); err != nil {
		marker.SetSuccess(false)
		return nil, Invalid(err)
	}

	now := time.Now().UTC()
	project.ID = newID()
	project.CreatedAt = now
	project.UpdatedAt = now

	if err := s.repo.Store(ctx, project); err != nil {
		marker.SetError(err)
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.cache.Invalidate(caching.KeyProjects)
	s.logger.Content().Info("Project created", "id", project.ID, "title", project.Title)
	return project, nil
}

// Update applies a partial update to an existing project.
func (s *ProjectService) Update(ctx context.Context, id string, patch *content.ProjectPatch) (*content.Project, error) {
	marker := s.perfTracker.StartOperation("content:projects:update")
	defer marker.Complete()

	if err := content.Validate(patch); err != nil {
		marker.SetSuccess(false)
		return nil, Invalid(err)
	}

	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		marker.SetError(err)
		return nil, err
	}

	patch.ApplyTo(project)
	project.UpdatedAt = time.Now().UTC()

	if err := content.Validate(project); err != nil {
		marker.SetSuccess(false)
		return nil, Invalid(err)
	}

	if err := s.repo.Update(ctx, project); err != nil {
		marker.SetError(err)
		return nil, fmt.Errorf("failed to update project %s: %w", id, err)
	}

	s.cache.Invalidate(caching.KeyProjects)
	return project, nil
}

// Delete removes a project permanently.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	marker := s.perfTracker.StartOperation("content:projects:delete")
	defer marker.Complete()

	if err := s.repo.Delete(ctx, id); err != nil {
		marker.SetError(err)
		return err
	}

	s.cache.Invalidate(caching.KeyProjects)
	s.logger.Content().Info("Project deleted", "id", id)
	return nil
}
