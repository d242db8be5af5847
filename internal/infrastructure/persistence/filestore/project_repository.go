package filestore

import (
	"context"

	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/persistence/jsonstore"
)

type ProjectRepository struct {
	coll   *jsonstore.Collection[*content.Project]
	logger *logging.ChanneledLogger
}

func projectID(p *content.Project) string { return p.ID }

func (r *ProjectRepository) FindAll(_ context.Context) ([]*content.Project, error) {
	return r.coll.ReadAll()
}

func (r *ProjectRepository) FindByID(_ context.Context, id string) (*content.Project, error) {
	return findByID(r.coll, id, projectID)
}

func (r *ProjectRepository) Store(_ context.Context, project *content.Project) error {
	if err := appendRecord(r.coll, project); err != nil {
		r.logger.Database().Error("Project insert failed", "error", err.Error(), "id", project.ID)
		return err
	}
	return nil
}

func (r *ProjectRepository) Update(_ context.Context, project *content.Project) error {
	return replaceRecord(r.coll, project, projectID)
}

func (r *ProjectRepository) Delete(_ context.Context, id string) error {
	return removeRecord(r.coll, id, projectID)
}
