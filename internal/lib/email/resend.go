package email

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
)

// ResendProvider sends through the Resend API using its official SDK.
type ResendProvider struct {
	client *resend.Client
}

// NewResendProvider builds a provider; an empty baseURL keeps the SDK default.
func NewResendProvider(apiKey, baseURL string, httpClient *http.Client) (*ResendProvider, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	client := resend.NewCustomClient(httpClient, apiKey)

	if baseURL != "" {
		// The SDK resolves relative paths ("emails") against BaseURL.
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, errors.Wrapf(err, "resend: invalid base url %q", baseURL)
		}
		client.BaseURL = u
	}

	return &ResendProvider{client: client}, nil
}

func (p *ResendProvider) Name() string {
	return "resend"
}

func (p *ResendProvider) Send(ctx context.Context, msg *Message) (string, error) {
	params := &resend.SendEmailRequest{
		From:    msg.From.String(),
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}
	for _, to := range msg.To {
		params.To = append(params.To, to.String())
	}
	if msg.ReplyTo != nil {
		params.ReplyTo = msg.ReplyTo.Email
	}
	for _, tag := range msg.Tags {
		params.Tags = append(params.Tags, resend.Tag{Name: "category", Value: tag})
	}

	sent, err := p.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", errors.Wrap(err, "resend: send email")
	}

	return sent.Id, nil
}
