// Package config manages environment variables.
//
// It reads variables from the process environment (and the `.env` file,
// when present), loads them into structured Go types and validates that
// required values are present so the app fails fast on bad/missing config.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Apply defaults for optional values (ports, timeouts, CORS allowlist).
//   - Validate required values (provider API key, sender identity).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it gets loaded into the
	// process env before we read it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the prefix PORTFOLIO_. The prefix is removed and
	the remainder lowercased, and "." separates nested blocks:

	  PORTFOLIO_SERVER.PORT           -> server.port          -> Config.Server.Port
	  PORTFOLIO_INTEGRATION.API_KEY   -> integration.api_key  -> Config.Integration.APIKey
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "PORTFOLIO_"

// Supported transactional email providers.
const (
	ProviderBrevo  = "brevo"
	ProviderResend = "resend"
)

// DefaultCORSAllowedOrigins is the allowlist used when
// PORTFOLIO_SERVER.CORS_ALLOWED_ORIGINS is not set: the local frontend dev
// servers plus the production site.
var DefaultCORSAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:3001",
	"http://localhost:8080",
	"http://localhost:8081",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:3001",
	"http://127.0.0.1:8080",
	"http://127.0.0.1:8081",
	"https://michaelhenry.me",
}

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from, the
// `validate:"..."` tags are enforced by go-playground/validator after
// defaults are applied.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration" validate:"required"`
	Contact       ContactConfig        `koanf:"contact" validate:"required"`
	Resume        ResumeConfig         `koanf:"resume" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1,dive,url"`
}

// IntegrationConfig holds the transactional email provider credentials.
//
// BaseURL is empty in production; it exists so the provider root can be
// pointed at a sandbox or a local fake.
type IntegrationConfig struct {
	Provider string        `koanf:"provider" validate:"required,oneof=brevo resend"`
	APIKey   string        `koanf:"api_key" validate:"required"`
	BaseURL  string        `koanf:"base_url" validate:"omitempty,url"`
	Timeout  time.Duration `koanf:"timeout" validate:"required,min=1s"`
}

// ContactConfig describes who contact notifications are sent from and to.
type ContactConfig struct {
	SenderEmail    string `koanf:"sender_email" validate:"required,email"`
	SenderName     string `koanf:"sender_name" validate:"required"`
	RecipientEmail string `koanf:"recipient_email" validate:"required,email"`
	RecipientName  string `koanf:"recipient_name" validate:"required"`
}

// ResumeConfig points at the static resume asset bundled with the deployment.
type ResumeConfig struct {
	Path     string `koanf:"path" validate:"required"`
	FileName string `koanf:"file_name" validate:"required"`
}

// LoadConfig loads configuration from PORTFOLIO_ environment variables.
//
// Behavior summary:
//   - Loads env vars with prefix PORTFOLIO_ into koanf
//   - Unmarshals into Config
//   - Applies defaults for optional values
//   - Validates required config blocks/fields
//   - Merges observability overrides into the defaults and validates them
//
// Any error means the process must not start.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Observability starts from the defaults so env vars only override
	// the keys they name.
	mainConfig := &Config{Observability: DefaultObservabilityConfig()}

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	mainConfig.applyDefaults()

	// Service name is fixed, environment always follows primary.env.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// applyDefaults fills optional values that were not provided.
func (c *Config) applyDefaults() {
	if c.Primary.Env == "" {
		c.Primary.Env = "development"
	}

	if c.Server.Port == "" {
		c.Server.Port = "3030"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	c.Server.CORSAllowedOrigins = splitList(c.Server.CORSAllowedOrigins)
	if len(c.Server.CORSAllowedOrigins) == 0 {
		c.Server.CORSAllowedOrigins = append([]string(nil), DefaultCORSAllowedOrigins...)
	}

	c.Integration.Provider = strings.ToLower(strings.TrimSpace(c.Integration.Provider))
	if c.Integration.Provider == "" {
		c.Integration.Provider = ProviderBrevo
	}
	if c.Integration.Timeout == 0 {
		c.Integration.Timeout = 10 * time.Second
	}

	// Without an explicit recipient the notification goes back to the sender.
	if c.Contact.RecipientEmail == "" {
		c.Contact.RecipientEmail = c.Contact.SenderEmail
	}
	if c.Contact.RecipientName == "" {
		c.Contact.RecipientName = "Contact Form"
	}

	if c.Resume.Path == "" {
		c.Resume.Path = "assets/resume.pdf"
	}
	if c.Resume.FileName == "" {
		c.Resume.FileName = "resume.pdf"
	}
}

// splitList flattens comma separated entries. koanf's env provider hands a
// single string for list values, which mapstructure turns into a one
// element slice.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
