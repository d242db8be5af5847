package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/repositories"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
)

// BlogRepository relies on the unique slug index; a duplicate key error on
// write surfaces as ErrDuplicateSlug.
type BlogRepository struct {
	coll   *mongo.Collection
	logger *logging.ChanneledLogger
}

func (r *BlogRepository) FindAll(ctx context.Context) ([]*content.BlogPost, error) {
	return findAll[content.BlogPost](ctx, r.coll)
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*content.BlogPost, error) {
	return findOne[content.BlogPost](ctx, r.coll, bson.M{"_id": id})
}

func (r *BlogRepository) FindBySlug(ctx context.Context, slug string) (*content.BlogPost, error) {
	return findOne[content.BlogPost](ctx, r.coll, bson.M{"slug": slug})
}

func (r *BlogRepository) Store(ctx context.Context, post *content.BlogPost) error {
	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrDuplicateSlug
		}
		r.logger.Database().Error("Blog insert failed", "error", err.Error(), "slug", post.Slug)
		return fmt.Errorf("failed to insert blog post: %w", err)
	}
	return nil
}

func (r *BlogRepository) Update(ctx context.Context, post *content.BlogPost) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": post.ID}, post)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrDuplicateSlug
		}
		return fmt.Errorf("failed to update blog post: %w", err)
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}
