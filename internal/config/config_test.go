package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORTFOLIO_INTEGRATION.API_KEY", "xkeysib-test")
	t.Setenv("PORTFOLIO_CONTACT.SENDER_EMAIL", "noreply@michaelhenry.me")
	t.Setenv("PORTFOLIO_CONTACT.SENDER_NAME", "Website")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "3030", cfg.Server.Port)
	assert.Equal(t, DefaultCORSAllowedOrigins, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, ProviderBrevo, cfg.Integration.Provider)
	assert.Equal(t, 10*time.Second, cfg.Integration.Timeout)
	assert.Equal(t, "noreply@michaelhenry.me", cfg.Contact.RecipientEmail, "recipient falls back to sender")
	assert.Equal(t, "Contact Form", cfg.Contact.RecipientName)
	assert.Equal(t, "assets/resume.pdf", cfg.Resume.Path)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORTFOLIO_PRIMARY.ENV", "production")
	t.Setenv("PORTFOLIO_SERVER.PORT", "8088")
	t.Setenv("PORTFOLIO_SERVER.CORS_ALLOWED_ORIGINS", "https://example.com, http://localhost:5173")
	t.Setenv("PORTFOLIO_INTEGRATION.PROVIDER", "Resend")
	t.Setenv("PORTFOLIO_INTEGRATION.TIMEOUT", "3s")
	t.Setenv("PORTFOLIO_CONTACT.RECIPIENT_EMAIL", "me@michaelhenry.me")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8088", cfg.Server.Port)
	assert.Equal(t, []string{"https://example.com", "http://localhost:5173"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, ProviderResend, cfg.Integration.Provider)
	assert.Equal(t, 3*time.Second, cfg.Integration.Timeout)
	assert.Equal(t, "me@michaelhenry.me", cfg.Contact.RecipientEmail)
	assert.True(t, cfg.Observability.IsProduction())
	assert.Equal(t, "info", cfg.Observability.GetLogLevel())
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{name: "api key", unset: "PORTFOLIO_INTEGRATION.API_KEY"},
		{name: "sender email", unset: "PORTFOLIO_CONTACT.SENDER_EMAIL"},
		{name: "sender name", unset: "PORTFOLIO_CONTACT.SENDER_NAME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			cfg, err := LoadConfig()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadConfig_RejectsUnknownProvider(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORTFOLIO_INTEGRATION.PROVIDER", "carrier-pigeon")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestObservabilityConfig_Validate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg.Logging.Level = ""
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestLoadConfig_ObservabilityOverridesMergeIntoDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORTFOLIO_OBSERVABILITY.LOGGING.LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Observability.GetLogLevel())
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.True(t, cfg.Observability.NewRelic.AppLogForwardingEnabled, "untouched keys keep their defaults")
}

func TestLoadConfig_RejectsBadOrigin(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORTFOLIO_SERVER.CORS_ALLOWED_ORIGINS", "not a url")

	_, err := LoadConfig()
	assert.Error(t, err)
}
