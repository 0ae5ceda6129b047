// Package email provides an email sending client.
//
// Emails are rendered from embedded templates and delivered through a
// transactional email Provider (Brevo over its HTTP API, or Resend via
// resend-go). Every send is a single attempt bounded by a timeout.
package email

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/portfolio-api/internal/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Client renders templates and hands the result to a Provider.
type Client struct {
	provider  Provider
	sender    Address
	recipient Address
	timeout   time.Duration
	logger    *zerolog.Logger
}

// NewClient creates an email Client for the provider selected in config.
func NewClient(cfg *config.Config, logger *zerolog.Logger) (*Client, error) {
	httpClient := &http.Client{Timeout: cfg.Integration.Timeout}

	var provider Provider
	switch cfg.Integration.Provider {
	case config.ProviderBrevo:
		provider = NewBrevoProvider(cfg.Integration.APIKey, cfg.Integration.BaseURL, httpClient)
	case config.ProviderResend:
		p, err := NewResendProvider(cfg.Integration.APIKey, cfg.Integration.BaseURL, httpClient)
		if err != nil {
			return nil, err
		}
		provider = p
	default:
		return nil, fmt.Errorf("unsupported email provider %q", cfg.Integration.Provider)
	}

	return New(
		provider,
		Address{Name: cfg.Contact.SenderName, Email: cfg.Contact.SenderEmail},
		Address{Name: cfg.Contact.RecipientName, Email: cfg.Contact.RecipientEmail},
		cfg.Integration.Timeout,
		logger,
	), nil
}

// New wires a Client around an existing provider.
func New(provider Provider, sender, recipient Address, timeout time.Duration, logger *zerolog.Logger) *Client {
	return &Client{
		provider:  provider,
		sender:    sender,
		recipient: recipient,
		timeout:   timeout,
		logger:    logger,
	}
}

// ProviderName reports which provider the client sends through.
func (c *Client) ProviderName() string {
	return c.provider.Name()
}

// SendEmail renders templateName with data and sends it to a single recipient.
//
// Steps:
//   - Render the HTML and plain-text bodies
//   - Bound the call with the configured timeout
//   - Send through the provider (one attempt, no retries)
//
// It returns the provider's message id.
func (c *Client) SendEmail(ctx context.Context, to Address, replyTo *Address, subject string, templateName Template, data any) (string, error) {
	html, text, err := render(templateName, data)
	if err != nil {
		return "", err
	}

	msg := &Message{
		From:    c.sender,
		To:      []Address{to},
		ReplyTo: replyTo,
		Subject: subject,
		HTML:    html,
		Text:    text,
		Tags:    []string{string(templateName)},
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	messageID, err := c.provider.Send(ctx, msg)
	if err != nil {
		return "", errors.Wrapf(err, "failed to send %s email", templateName)
	}

	c.logger.Debug().
		Str("provider", c.provider.Name()).
		Str("template", string(templateName)).
		Str("message_id", messageID).
		Dur("duration", time.Since(start)).
		Msg("email accepted by provider")

	return messageID, nil
}
