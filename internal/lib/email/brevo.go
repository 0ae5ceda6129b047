package email

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// DefaultBrevoBaseURL is the root of the Brevo v3 API.
const DefaultBrevoBaseURL = "https://api.brevo.com"

// maxErrorBody caps how much of a failed response is kept for logging.
const maxErrorBody = 4 << 10

// BrevoProvider sends through Brevo's transactional email endpoint
// (POST /v3/smtp/email).
type BrevoProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewBrevoProvider builds a provider; an empty baseURL selects DefaultBrevoBaseURL.
func NewBrevoProvider(apiKey, baseURL string, httpClient *http.Client) *BrevoProvider {
	if baseURL == "" {
		baseURL = DefaultBrevoBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &BrevoProvider{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type brevoAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoEmailRequest struct {
	Sender      brevoAddress   `json:"sender"`
	To          []brevoAddress `json:"to"`
	ReplyTo     *brevoAddress  `json:"replyTo,omitempty"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
	TextContent string         `json:"textContent,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
}

type brevoEmailResponse struct {
	MessageID string `json:"messageId"`
}

func (p *BrevoProvider) Name() string {
	return "brevo"
}

func (p *BrevoProvider) Send(ctx context.Context, msg *Message) (string, error) {
	payload := brevoEmailRequest{
		Sender:      brevoAddress{Name: msg.From.Name, Email: msg.From.Email},
		Subject:     msg.Subject,
		HTMLContent: msg.HTML,
		TextContent: msg.Text,
		Tags:        msg.Tags,
	}
	for _, to := range msg.To {
		payload.To = append(payload.To, brevoAddress{Name: to.Name, Email: to.Email})
	}
	if msg.ReplyTo != nil {
		payload.ReplyTo = &brevoAddress{Name: msg.ReplyTo.Name, Email: msg.ReplyTo.Email}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "brevo: encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v3/smtp/email", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "brevo: build request")
	}
	req.Header.Set("api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "brevo: send request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &ProviderError{
			Provider:   p.Name(),
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	var out brevoEmailResponse
	// The message id is informational; an unreadable 2xx body is still a success.
	_ = json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&out)

	return out.MessageID, nil
}
