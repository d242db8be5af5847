package filestore

import (
	"context"

	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/persistence/jsonstore"
)

type MessageRepository struct {
	coll   *jsonstore.Collection[*content.ContactMessage]
	logger *logging.ChanneledLogger
}

func messageID(m *content.ContactMessage) string { return m.ID }

func (r *MessageRepository) FindAll(_ context.Context) ([]*content.ContactMessage, error) {
	return r.coll.ReadAll()
}

func (r *MessageRepository) FindByID(_ context.Context, id string) (*content.ContactMessage, error) {
	return findByID(r.coll, id, messageID)
}

func (r *MessageRepository) Store(_ context.Context, msg *content.ContactMessage) error {
	if err := appendRecord(r.coll, msg); err != nil {
		r.logger.Database().Error("Message insert failed", "error", err.Error(), "id", msg.ID)
		return err
	}
	return nil
}

func (r *MessageRepository) Update(_ context.Context, msg *content.ContactMessage) error {
	return replaceRecord(r.coll, msg, messageID)
}

func (r *MessageRepository) Delete(_ context.Context, id string) error {
	return removeRecord(r.coll, id, messageID)
}
