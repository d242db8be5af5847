package filestore

import (
	"context"
	"fmt"
	"strings"

	"github.com/asikrahman/swe-portfolio-server/internal/domain/repositories"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/user"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/persistence/jsonstore"
)

// UserRepository persists admin accounts. Emails are stored lowercased and
// compared case-insensitively.
type UserRepository struct {
	coll   *jsonstore.Collection[*user.AdminUser]
	logger *logging.ChanneledLogger
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*user.AdminUser, error) {
	records, err := r.coll.ReadAll()
	if err != nil {
		return nil, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range records {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*user.AdminUser, error) {
	records, err := r.coll.ReadAll()
	if err != nil {
		return nil, err
	}
	for _, u := range records {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *UserRepository) Store(_ context.Context, u *user.AdminUser) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	err := r.coll.Mutate(func(records []*user.AdminUser) ([]*user.AdminUser, error) {
		for _, existing := range records {
			if existing.Email == u.Email {
				return nil, fmt.Errorf("account %s already exists", u.Email)
			}
		}
		return append(records, u), nil
	})
	if err != nil {
		r.logger.Database().Error("Admin account insert failed", "error", err.Error())
		return err
	}
	return nil
}

func (r *UserRepository) Count(_ context.Context) (int, error) {
	records, err := r.coll.ReadAll()
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
