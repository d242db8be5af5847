package filestore

import (
	"context"
	"fmt"

	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/repositories"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/persistence/jsonstore"
)

// ProfileRepository persists the singleton profile record. The backing file
// holds a one-element array so it shares the collection machinery.
type ProfileRepository struct {
	coll   *jsonstore.Collection[*content.Profile]
	logger *logging.ChanneledLogger
}

func (r *ProfileRepository) Get(_ context.Context) (*content.Profile, error) {
	records, err := r.coll.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, repositories.ErrNotFound
	}
	return records[0], nil
}

func (r *ProfileRepository) Store(_ context.Context, profile *content.Profile) error {
	err := r.coll.Mutate(func(records []*content.Profile) ([]*content.Profile, error) {
		if len(records) > 0 {
			return nil, fmt.Errorf("profile already exists")
		}
		return []*content.Profile{profile}, nil
	})
	if err != nil {
		r.logger.Database().Error("Profile insert failed", "error", err.Error())
		return err
	}
	return nil
}

func (r *ProfileRepository) Update(_ context.Context, profile *content.Profile) error {
	err := r.coll.Mutate(func(records []*content.Profile) ([]*content.Profile, error) {
		if len(records) == 0 {
			return nil, repositories.ErrNotFound
		}
		return []*content.Profile{profile}, nil
	})
	if err != nil {
		r.logger.Database().Error("Profile update failed", "error", err.Error())
		return err
	}
	return nil
}
