package filestore

import (
	"context"

	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/persistence/jsonstore"
)

type SkillRepository struct {
	coll   *jsonstore.Collection[*content.Skill]
	logger *logging.ChanneledLogger
}

func skillID(s *content.Skill) string { return s.ID }

func (r *SkillRepository) FindAll(_ context.Context) ([]*content.Skill, error) {
	return r.coll.ReadAll()
}

func (r *SkillRepository) FindByID(_ context.Context, id string) (*content.Skill, error) {
	return findByID(r.coll, id, skillID)
}

func (r *SkillRepository) Store(_ context.Context, skill *content.Skill) error {
	if err := appendRecord(r.coll, skill); err != nil {
		r.logger.Database().Error("Skill insert failed", "error", err.Error(), "id", skill.ID)
		return err
	}
	return nil
}

func (r *SkillRepository) Update(_ context.Context, skill *content.Skill) error {
	return replaceRecord(r.coll, skill, skillID)
}

func (r *SkillRepository) Delete(_ context.Context, id string) error {
	return removeRecord(r.coll, id, skillID)
}
