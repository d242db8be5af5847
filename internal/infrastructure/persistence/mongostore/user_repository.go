package mongostore

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/asikrahman/swe-portfolio-server/internal/domain/user"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
)

// UserRepository persists admin accounts. Emails are stored lowercased; the
// unique index on email rejects duplicate accounts.
type UserRepository struct {
	coll   *mongo.Collection
	logger *logging.ChanneledLogger
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return findOne[user.AdminUser](ctx, r.coll, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.AdminUser, error) {
	return findOne[user.AdminUser](ctx, r.coll, bson.M{"_id": id})
}

func (r *UserRepository) Store(ctx context.Context, u *user.AdminUser) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("account %s already exists", u.Email)
		}
		r.logger.Database().Error("Admin account insert failed", "error", err.Error())
		return fmt.Errorf("failed to insert admin account: %w", err)
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count admin accounts: %w", err)
	}
	return int(count), nil
}
