package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deppfellow/portfolio-api/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func testConfig(provider, baseURL string) *config.Config {
	return &config.Config{
		Integration: config.IntegrationConfig{
			Provider: provider,
			APIKey:   "test-key",
			BaseURL:  baseURL,
			Timeout:  2 * time.Second,
		},
		Contact: config.ContactConfig{
			SenderEmail:    "noreply@michaelhenry.me",
			SenderName:     "Website",
			RecipientEmail: "me@michaelhenry.me",
			RecipientName:  "Contact Form",
		},
	}
}

func sampleData() ContactData {
	return NewContactData("id-123", "John", "Doe", "john@example.com", "1234567890", "<b>hi</b>\nsecond line")
}

func TestRender_Contact(t *testing.T) {
	html, text, err := render(TemplateContact, sampleData())
	require.NoError(t, err)

	assert.Contains(t, html, "id-123")
	assert.Contains(t, html, "&lt;b&gt;hi&lt;/b&gt;<br>second line", "user input is escaped, newlines become <br>")
	assert.NotContains(t, html, "<b>hi</b>")

	assert.Contains(t, text, "Name: John Doe")
	assert.Contains(t, text, "<b>hi</b>\nsecond line")
}

func TestPreview(t *testing.T) {
	for name := range PreviewData {
		html, text, err := Preview(name)
		assert.NoError(t, err, name)
		assert.NotEmpty(t, html)
		assert.NotEmpty(t, text)
	}

	_, _, err := Preview(Template("missing"))
	assert.Error(t, err)
}

func TestRender_MissingPhone(t *testing.T) {
	data := sampleData()
	data.PhoneNumber = ""

	html, text, err := render(TemplateContact, data)
	require.NoError(t, err)
	assert.Contains(t, html, "not provided")
	assert.Contains(t, text, "Phone: not provided")
}

func TestBrevo_SendContactNotification(t *testing.T) {
	var got brevoEmailRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/smtp/email", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId":"<201@smtp-relay.mailin.fr>"}`))
	}))
	defer srv.Close()

	client, err := NewClient(testConfig(config.ProviderBrevo, srv.URL), nopLogger())
	require.NoError(t, err)
	assert.Equal(t, "brevo", client.ProviderName())

	id, err := client.SendContactNotification(context.Background(), sampleData())
	require.NoError(t, err)
	assert.Equal(t, "<201@smtp-relay.mailin.fr>", id)

	assert.Equal(t, brevoAddress{Name: "Website", Email: "noreply@michaelhenry.me"}, got.Sender)
	assert.Equal(t, []brevoAddress{{Name: "Contact Form", Email: "me@michaelhenry.me"}}, got.To)
	require.NotNil(t, got.ReplyTo)
	assert.Equal(t, "john@example.com", got.ReplyTo.Email)
	assert.Equal(t, "New Contact Form Submission from John Doe", got.Subject)
	assert.Contains(t, got.HTMLContent, "id-123")
	assert.Contains(t, got.TextContent, "id-123")
	assert.Equal(t, []string{"contact"}, got.Tags)
}

func TestBrevo_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"unauthorized","message":"Key not found"}`))
	}))
	defer srv.Close()

	client, err := NewClient(testConfig(config.ProviderBrevo, srv.URL), nopLogger())
	require.NoError(t, err)

	_, err = client.SendContactNotification(context.Background(), sampleData())
	require.Error(t, err)

	var providerErr *ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, http.StatusUnauthorized, providerErr.StatusCode)
	assert.Contains(t, providerErr.Body, "Key not found")
}

func TestBrevo_SingleAttemptOnFailure(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client, err := NewClient(testConfig(config.ProviderBrevo, srv.URL), nopLogger())
	require.NoError(t, err)

	_, err = client.SendContactNotification(context.Background(), sampleData())
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestBrevo_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	provider := NewBrevoProvider("test-key", srv.URL, srv.Client())
	client := New(provider, Address{Email: "a@b.com"}, Address{Email: "c@d.com"}, 50*time.Millisecond, nopLogger())

	start := time.Now()
	_, err := client.SendContactNotification(context.Background(), sampleData())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestResend_SendContactNotification(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`))
	}))
	defer srv.Close()

	client, err := NewClient(testConfig(config.ProviderResend, srv.URL), nopLogger())
	require.NoError(t, err)
	assert.Equal(t, "resend", client.ProviderName())

	id, err := client.SendContactNotification(context.Background(), sampleData())
	require.NoError(t, err)
	assert.Equal(t, "49a3999c-0ce1-4ea6-ab68-afcd6dc2e794", id)

	assert.Equal(t, `"Website" <noreply@michaelhenry.me>`, got["from"])
	assert.Equal(t, []any{`"Contact Form" <me@michaelhenry.me>`}, got["to"])
	assert.Equal(t, "New Contact Form Submission from John Doe", got["subject"])
}

func TestNewClient_UnknownProvider(t *testing.T) {
	_, err := NewClient(testConfig("smoke-signals", ""), nopLogger())
	assert.Error(t, err)
}

func TestAddress_String(t *testing.T) {
	assert.Equal(t, "a@b.com", Address{Email: "a@b.com"}.String())
	assert.Equal(t, `"Jane Doe" <jane@b.com>`, Address{Name: "Jane Doe", Email: "jane@b.com"}.String())
}
