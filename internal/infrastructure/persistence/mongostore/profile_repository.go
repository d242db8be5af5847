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

// ProfileRepository manages the singleton profile document.
type ProfileRepository struct {
	coll   *mongo.Collection
	logger *logging.ChanneledLogger
}

func (r *ProfileRepository) Get(ctx context.Context) (*content.Profile, error) {
	return findOne[content.Profile](ctx, r.coll, bson.M{})
}

func (r *ProfileRepository) Store(ctx context.Context, profile *content.Profile) error {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count profile documents: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("profile already exists")
	}
	if err := insertOne(ctx, r.coll, profile); err != nil {
		r.logger.Database().Error("Profile insert failed", "error", err.Error())
		return err
	}
	return nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile *content.Profile) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": profile.ID}, profile)
	if err != nil {
		r.logger.Database().Error("Profile update failed", "error", err.Error())
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
