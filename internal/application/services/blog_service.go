package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/repositories"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/caching"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/performance"
)

const defaultReadTime = 5

// BlogService manages blog posts. The slug is the public lookup key; it is
// derived from the title when the author does not supply one.
type BlogService struct {
	repo        repositories.BlogRepository
	cache       *caching.ContentCache
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewBlogService creates a new blog application service
func NewBlogService(repo repositories.BlogRepository, cache *caching.ContentCache, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *BlogService {
	return &BlogService{
		repo:        repo,
		cache:       cache,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// ListPublished returns published posts in insertion order (cache-first).
func (s *BlogService) ListPublished(ctx context.Context) ([]*content.BlogPost, error) {
	posts, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}

	published := make([]*content.BlogPost, 0, len(posts))
	for _, post := range posts {
		if post.Status == content.BlogStatusPublished {
			published = append(published, post)
		}
	}
	return published, nil
}

// ListAll returns every post including drafts, for the admin panel.
func (s *BlogService) ListAll(ctx context.Context) ([]*content.BlogPost, error) {
	return s.listAll(ctx)
}

func (s *BlogService) listAll(ctx context.Context) ([]*content.BlogPost, error) {
	return caching.GetOrLoad(s.cache, caching.KeyBlogs, func() ([]*content.BlogPost, error) {
		return s.repo.FindAll(ctx)
	})
}

// GetPublishedBySlug returns a published post by slug. Drafts are not
// reachable through the public site.
func (s *BlogService) GetPublishedBySlug(ctx context.Context, slug string) (*content.BlogPost, error) {
	post, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post.Status != content.BlogStatusPublished {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

// GetByID returns a post by identifier, draft or published.
func (s *BlogService) GetByID(ctx context.Context, id string) (*content.BlogPost, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates and stores a new post.
func (s *BlogService) Create(ctx context.Context, post *content.BlogPost) (*content.BlogPost, error) {
	marker := s.perfTracker.StartOperation("content:blogs:create")
	defer marker.Complete()

	if post.Slug == "" {
		post.Slug = content.Slugify(post.Title)
	}
	if post.Status == "" {
		post.Status = content.BlogStatusPublished
	}
	if post.ReadTime == 0 {
		post.ReadTime = defaultReadTime
	}

	if err := content.Validate(post); err != nil {
		marker.SetSuccess(false)
		return nil, Invalid(err)
	}
	if post.Slug == "" {
		marker.SetSuccess(false)
		return nil, Invalid(errors.New("slug could not be derived from title"))
	}

	now := time.Now().UTC()
	post.ID = newID()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Status == content.BlogStatusPublished {
		post.PublishedAt = now
	}

	if err := s.repo.Store(ctx, post); err != nil {
		if errors.Is(err, repositories.ErrDuplicateSlug) {
			marker.SetSuccess(false)
			return nil, Invalid(err)
		}
		marker.SetError(err)
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}

	s.cache.Invalidate(caching.KeyBlogs)
	s.logger.Content().Info("Blog post created", "id", post.ID, "slug", post.Slug)
	return post, nil
}

// Update applies a partial update. Patching the slug to an empty string
// re-derives it from the current title; publishing a draft stamps
// publishedAt.
func (s *BlogService) Update(ctx context.Context, id string, patch *content.BlogPatch) (*content.BlogPost, error) {
	marker := s.perfTracker.StartOperation("content:blogs:update")
	defer marker.Complete()

	if err := content.Validate(patch); err != nil {
		marker.SetSuccess(false)
		return nil, Invalid(err)
	}

	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		marker.SetError(err)
		return nil, err
	}

	patch.ApplyTo(post)
	if post.Slug == "" {
		post.Slug = content.Slugify(post.Title)
	}
	if post.Status == content.BlogStatusPublished && post.PublishedAt.IsZero() {
		post.PublishedAt = time.Now().UTC()
	}
	post.UpdatedAt = time.Now().UTC()

	if err := content.Validate(post); err != nil {
		marker.SetSuccess(false)
		return nil, Invalid(err)
	}

	if err := s.repo.Update(ctx, post); err != nil {
		if errors.Is(err, repositories.ErrDuplicateSlug) {
			marker.SetSuccess(false)
			return nil, Invalid(err)
		}
		marker.SetError(err)
		return nil, fmt.Errorf("failed to update blog post %s: %w", id, err)
	}

	s.cache.Invalidate(caching.KeyBlogs)
	return post, nil
}

// Delete removes a post permanently.
func (s *BlogService) Delete(ctx context.Context, id string) error {
	marker := s.perfTracker.StartOperation("content:blogs:delete")
	defer marker.Complete()

	if err := s.repo.Delete(ctx, id); err != nil {
		marker.SetError(err)
		return err
	}

	s.cache.Invalidate(caching.KeyBlogs)
	s.logger.Content().Info("Blog post deleted", "id", id)
	return nil
}
