package filestore

import (
	"context"

	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/persistence/jsonstore"
)

type ExperienceRepository struct {
	coll   *jsonstore.Collection[*content.ExperienceEntry]
	logger *logging.ChanneledLogger
}

func experienceID(e *content.ExperienceEntry) string { return e.ID }

func (r *ExperienceRepository) FindAll(_ context.Context) ([]*content.ExperienceEntry, error) {
	return r.coll.ReadAll()
}

func (r *ExperienceRepository) FindByID(_ context.Context, id string) (*content.ExperienceEntry, error) {
	return findByID(r.coll, id, experienceID)
}

func (r *ExperienceRepository) Store(_ context.Context, entry *content.ExperienceEntry) error {
	if err := appendRecord(r.coll, entry); err != nil {
		r.logger.Database().Error("Experience insert failed", "error", err.Error(), "id", entry.ID)
		return err
	}
	return nil
}

func (r *ExperienceRepository) Update(_ context.Context, entry *content.ExperienceEntry) error {
	return replaceRecord(r.coll, entry, experienceID)
}

func (r *ExperienceRepository) Delete(_ context.Context, id string) error {
	return removeRecord(r.coll, id, experienceID)
}
