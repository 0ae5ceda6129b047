package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/deppfellow/portfolio-api/internal/errs"
	"github.com/deppfellow/portfolio-api/internal/lib/email"
	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/deppfellow/portfolio-api/internal/server"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client-facing messages. Provider details never reach the client.
const (
	ContactSuccessMessage = "Thank you for your message. We'll get back to you soon!"
	ContactFailureMessage = "We couldn't send your message right now. Please try again later or contact us directly."
)

// ContactNotifier delivers a contact notification and returns the provider message id.
type ContactNotifier interface {
	SendContactNotification(ctx context.Context, data email.ContactData) (string, error)
}

// ContactService relays validated contact form submissions.
type ContactService struct {
	server   *server.Server
	notifier ContactNotifier
}

func NewContactService(s *server.Server, notifier ContactNotifier) *ContactService {
	return &ContactService{
		server:   s,
		notifier: notifier,
	}
}

// Submit sends exactly one notification for sub.
//
// On success it returns the result with a fresh correlation id. On
// failure it returns an *errs.ResponseError carrying a generic result
// (same id) for the client and the provider error for the logs.
func (cs *ContactService) Submit(ctx context.Context, sub model.ContactSubmission) (*model.NotificationResult, error) {
	contactID := uuid.NewString()

	// Prefer the request-scoped logger so lines carry the request_id.
	base := zerolog.Ctx(ctx)
	if base.GetLevel() == zerolog.Disabled {
		base = cs.server.Logger
	}
	logger := base.With().
		Str("contact_id", contactID).
		Logger()

	logger.Info().
		Str("name", sub.FullName()).
		Str("email", sub.Email).
		Int("message_length", len(sub.Message)).
		Msg("contact form submitted")

	start := time.Now()
	messageID, err := cs.notifier.SendContactNotification(ctx, email.NewContactData(
		contactID,
		sub.FirstName,
		sub.LastName,
		sub.Email,
		sub.PhoneNumber,
		sub.Message,
	))
	if err != nil {
		event := logger.Error().Stack().Err(err).Dur("duration", time.Since(start))

		var providerErr *email.ProviderError
		if errors.As(err, &providerErr) {
			event = event.
				Str("provider", providerErr.Provider).
				Int("provider_status", providerErr.StatusCode)
		}
		event.Msg("failed to send contact form email")

		return nil, errs.NewResponseError(http.StatusBadGateway, &model.NotificationResult{
			Success: false,
			Message: ContactFailureMessage,
			ID:      contactID,
		}, err)
	}

	logger.Info().
		Str("message_id", messageID).
		Dur("duration", time.Since(start)).
		Msg("contact form email sent")

	return &model.NotificationResult{
		Success: true,
		Message: ContactSuccessMessage,
		ID:      contactID,
	}, nil
}
