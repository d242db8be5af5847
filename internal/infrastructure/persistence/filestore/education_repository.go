package filestore

import (
	"context"

	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/persistence/jsonstore"
)

type EducationRepository struct {
	coll   *jsonstore.Collection[*content.EducationEntry]
	logger *logging.ChanneledLogger
}

func educationID(e *content.EducationEntry) string { return e.ID }

func (r *EducationRepository) FindAll(_ context.Context) ([]*content.EducationEntry, error) {
	return r.coll.ReadAll()
}

func (r *EducationRepository) FindByID(_ context.Context, id string) (*content.EducationEntry, error) {
	return findByID(r.coll, id, educationID)
}

func (r *EducationRepository) Store(_ context.Context, entry *content.EducationEntry) error {
	if err := appendRecord(r.coll, entry); err != nil {
		r.logger.Database().Error("Education insert failed", "error", err.Error(), "id", entry.ID)
		return err
	}
	return nil
}

func (r *EducationRepository) Update(_ context.Context, entry *content.EducationEntry) error {
	return replaceRecord(r.coll, entry, educationID)
}

func (r *EducationRepository) Delete(_ context.Context, id string) error {
	return removeRecord(r.coll, id, educationID)
}
