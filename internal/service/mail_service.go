package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"smartmail/internal/model"
	"smartmail/internal/mq"
	"smartmail/pkg/metrics"
)

// EmailStore persists sent emails.
type EmailStore interface {
	Insert(ctx context.Context, e *model.EmailRecord) (*model.EmailRecord, error)
	ListAll(ctx context.Context) ([]model.EmailRecord, error)
}

// EventPublisher publishes domain events. Publishing is best-effort; the
// service never fails a send because of it.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// SendRequest is the inbound shape of a send call.
type SendRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	CC      string `json:"cc"`
	BCC     string `json:"bcc"`
}

// MailService stores outgoing emails under the configured sender identity
// and announces them on the event exchange.
type MailService struct {
	store     EmailStore
	publisher EventPublisher // nil when MQ is not configured
	sender    model.Sender
	logger    *zap.Logger
}

func NewMailService(store EmailStore, publisher EventPublisher, sender model.Sender, logger *zap.Logger) *MailService {
	return &MailService{
		store:     store,
		publisher: publisher,
		sender:    sender,
		logger:    logger,
	}
}

// Send persists the email and publishes an `email.sent` event.
func (s *MailService) Send(ctx context.Context, req SendRequest) (*model.EmailRecord, error) {
	record := &model.EmailRecord{
		To:          req.To,
		CC:          req.CC,
		BCC:         req.BCC,
		Subject:     req.Subject,
		Body:        req.Body,
		Sender:      s.sender.Name,
		SenderEmail: s.sender.Email,
	}

	stored, err := s.store.Insert(ctx, record)
	if err != nil {
		metrics.IncrementEmailSent("failed")
		return nil, err
	}
	metrics.IncrementEmailSent("success")

	if s.publisher != nil {
		payload := mq.EmailSentPayload{
			EmailID:     stored.ID,
			To:          stored.To,
			Subject:     stored.Subject,
			SenderEmail: stored.SenderEmail,
			SentAt:      time.Now(),
		}
		if err := s.publisher.Publish("email.sent", payload); err != nil {
			s.logger.Warn("failed to publish email.sent event",
				zap.Int64("email_id", stored.ID),
				zap.Error(err),
			)
		}
	}

	return stored, nil
}

// List returns all stored emails, newest first.
func (s *MailService) List(ctx context.Context) ([]model.EmailRecord, error) {
	return s.store.ListAll(ctx)
}
