package filestore

import (
	"context"

	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/repositories"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/persistence/jsonstore"
)

// BlogRepository enforces slug uniqueness on insert and update; the slug is
// the public lookup key for posts.
type BlogRepository struct {
	coll   *jsonstore.Collection[*content.BlogPost]
	logger *logging.ChanneledLogger
}

func blogID(p *content.BlogPost) string { return p.ID }

func (r *BlogRepository) FindAll(_ context.Context) ([]*content.BlogPost, error) {
	return r.coll.ReadAll()
}

func (r *BlogRepository) FindByID(_ context.Context, id string) (*content.BlogPost, error) {
	return findByID(r.coll, id, blogID)
}

func (r *BlogRepository) FindBySlug(_ context.Context, slug string) (*content.BlogPost, error) {
	records, err := r.coll.ReadAll()
	if err != nil {
		return nil, err
	}
	for _, post := range records {
		if post.Slug == slug {
			return post, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *BlogRepository) Store(_ context.Context, post *content.BlogPost) error {
	err := r.coll.Mutate(func(records []*content.BlogPost) ([]*content.BlogPost, error) {
		for _, existing := range records {
			if existing.Slug == post.Slug {
				return nil, repositories.ErrDuplicateSlug
			}
		}
		return append(records, post), nil
	})
	if err != nil {
		r.logger.Database().Error("Blog insert failed", "error", err.Error(), "slug", post.Slug)
		return err
	}
	return nil
}

func (r *BlogRepository) Update(_ context.Context, post *content.BlogPost) error {
	return r.coll.Mutate(func(records []*content.BlogPost) ([]*content.BlogPost, error) {
		// Existence first: a missing id is a 404 even when the requested
		// slug collides with another post.
		idx := -1
		for i, existing := range records {
			if existing.ID == post.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, repositories.ErrNotFound
		}
		for i, existing := range records {
			if i != idx && existing.Slug == post.Slug {
				return nil, repositories.ErrDuplicateSlug
			}
		}
		records[idx] = post
		return records, nil
	})
}

func (r *BlogRepository) Delete(_ context.Context, id string) error {
	return removeRecord(r.coll, id, blogID)
}
