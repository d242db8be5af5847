package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
)

type EducationRepository struct {
	coll   *mongo.Collection
	logger *logging.ChanneledLogger
}

func (r *EducationRepository) FindAll(ctx context.Context) ([]*content.EducationEntry, error) {
	return findAll[content.EducationEntry](ctx, r.coll)
}

func (r *EducationRepository) FindByID(ctx context.Context, id string) (*content.EducationEntry, error) {
	return findOne[content.EducationEntry](ctx, r.coll, bson.M{"_id": id})
}

func (r *EducationRepository) Store(ctx context.Context, entry *content.EducationEntry) error {
	if err := insertOne(ctx, r.coll, entry); err != nil {
		r.logger.Database().Error("Education insert failed", "error", err.Error(), "id", entry.ID)
		return err
	}
	return nil
}

func (r *EducationRepository) Update(ctx context.Context, entry *content.EducationEntry) error {
	return replaceByID(ctx, r.coll, entry.ID, entry)
}

func (r *EducationRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

type ExperienceRepository struct {
	coll   *mongo.Collection
	logger *logging.ChanneledLogger
}

func (r *ExperienceRepository) FindAll(ctx context.Context) ([]*content.ExperienceEntry, error) {
	return findAll[content.ExperienceEntry](ctx, r.coll)
}

func (r *ExperienceRepository) FindByID(ctx context.Context, id string) (*content.ExperienceEntry, error) {
	return findOne[content.ExperienceEntry](ctx, r.coll, bson.M{"_id": id})
}

func (r *ExperienceRepository) Store(ctx context.Context, entry *content.ExperienceEntry) error {
	if err := insertOne(ctx, r.coll, entry); err != nil {
		r.logger.Database().Error("Experience insert failed", "error", err.Error(), "id", entry.ID)
		return err
	}
	return nil
}

func (r *ExperienceRepository) Update(ctx context.Context, entry *content.ExperienceEntry) error {
	return replaceByID(ctx, r.coll, entry.ID, entry)
}

func (r *ExperienceRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

type SkillRepository struct {
	coll   *mongo.Collection
	logger *logging.ChanneledLogger
}

func (r *SkillRepository) FindAll(ctx context.Context) ([]*content.Skill, error) {
	return findAll[content.Skill](ctx, r.coll)
}

func (r *SkillRepository) FindByID(ctx context.Context, id string) (*content.Skill, error) {
	return findOne[content.Skill](ctx, r.coll, bson.M{"_id": id})
}

func (r *SkillRepository) Store(ctx context.Context, skill *content.Skill) error {
	if err := insertOne(ctx, r.coll, skill); err != nil {
		r.logger.Database().Error("Skill insert failed", "error", err.Error(), "id", skill.ID)
		return err
	}
	return nil
}

func (r *SkillRepository) Update(ctx context.Context, skill *content.Skill) error {
	return replaceByID(ctx, r.coll, skill.ID, skill)
}

func (r *SkillRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

type ProjectRepository struct {
	coll   *mongo.Collection
	logger *logging.ChanneledLogger
}

func (r *ProjectRepository) FindAll(ctx context.Context) ([]*content.Project, error) {
	return findAll[content.Project](ctx, r.coll)
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*content.Project, error) {
	return findOne[content.Project](ctx, r.coll, bson.M{"_id": id})
}

func (r *ProjectRepository) Store(ctx context.Context, project *content.Project) error {
	if err := insertOne(ctx, r.coll, project); err != nil {
		r.logger.Database().Error("Project insert failed", "error", err.Error(), "id", project.ID)
		return err
	}
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *content.Project) error {
	return replaceByID(ctx, r.coll, project.ID, project)
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

type MessageRepository struct {
	coll   *mongo.Collection
	logger *logging.ChanneledLogger
}

func (r *MessageRepository) FindAll(ctx context.Context) ([]*content.ContactMessage, error) {
	return findAll[content.ContactMessage](ctx, r.coll)
}

func (r *MessageRepository) FindByID(ctx context.Context, id string) (*content.ContactMessage, error) {
	return findOne[content.ContactMessage](ctx, r.coll, bson.M{"_id": id})
}

func (r *MessageRepository) Store(ctx context.Context, msg *content.ContactMessage) error {
	if err := insertOne(ctx, r.coll, msg); err != nil {
		r.logger.Database().Error("Message insert failed", "error", err.Error(), "id", msg.ID)
		return err
	}
	return nil
}

func (r *MessageRepository) Update(ctx context.Context, msg *content.ContactMessage) error {
	return replaceByID(ctx, r.coll, msg.ID, msg)
}

func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}
