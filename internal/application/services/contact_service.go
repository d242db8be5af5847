package services

import (
	"context"
	"fmt"
	"time"

	"github.com/asikrahman/swe-portfolio-server/internal/domain/entities/content"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/repositories"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/email"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/performance"
)

// ContactService handles contact form submissions and the admin-side
// message inbox.
type ContactService struct {
	repo        repositories.MessageRepository
	mailer      email.Service
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewContactService creates a new contact application service. The mailer
// may be nil when no email provider is configured; submissions are then
// stored without a notification.
func NewContactService(repo repositories.MessageRepository, mailer email.Service, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ContactService {
	return &ContactService{
		repo:        repo,
		mailer:      mailer,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// Submit validates and stores an incoming message, then notifies the site
// owner. The message is persisted first; a mail failure is logged and the
// submission still succeeds.
func (s *ContactService) Submit(ctx context.Context, msg *content.ContactMessage) (*content.ContactMessage, error) {
	marker := s.perfTracker.StartOperation("contact:submit")
	defer marker.Complete()

	if err := content.Validate(msg); err != nil {
		marker.SetSuccess(false)
		return nil, Invalid(err)
	}

	msg.ID = newID()
	msg.Status = content.MessageStatusUnread
	msg.CreatedAt = time.Now().UTC()

	if err := s.repo.Store(ctx, msg); err != nil {
		marker.SetError(err)
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	if s.mailer == nil {
		s.logger.Email().Warn("No email provider configured, skipping contact notification", "id", msg.ID)
		return msg, nil
	}

	if err := s.mailer.SendContactNotification(msg); err != nil {
		s.logger.Email().Error("Contact notification failed", "error", err.Error(), "id", msg.ID)
		return msg, nil
	}

	s.logger.Email().Info("Contact notification sent", "id", msg.ID)
	return msg, nil
}

// List returns every stored message in arrival order.
func (s *ContactService) List(ctx context.Context) ([]*content.ContactMessage, error) {
	return s.repo.FindAll(ctx)
}

// UpdateStatus flips a message between read and unread.
func (s *ContactService) UpdateStatus(ctx context.Context, id string, patch *content.MessagePatch) (*content.ContactMessage, error) {
	if err := content.Validate(patch); err != nil {
		return nil, Invalid(err)
	}

	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.ApplyTo(msg)
	if err := s.repo.Update(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to update message %s: %w", id, err)
	}
	return msg, nil
}

// Delete removes a message permanently.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	marker := s.perfTracker.StartOperation("contact:delete")
	defer marker.Complete()

	if err := s.repo.Delete(ctx, id); err != nil {
		marker.SetError(err)
		return err
	}

	s.logger.Content().Info("Contact message deleted", "id", id)
	return nil
}
