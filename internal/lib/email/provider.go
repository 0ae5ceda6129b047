package email

import (
	"context"
	"fmt"
	"net/mail"
)

// Address is a mailbox with an optional display name.
type Address struct {
	Name  string
	Email string
}

// String formats the address as `Name <email>`.
func (a Address) String() string {
	if a.Name == "" {
		return a.Email
	}
	return (&mail.Address{Name: a.Name, Address: a.Email}).String()
}

// Message is a fully rendered email, ready to hand to a Provider.
type Message struct {
	From    Address
	To      []Address
	ReplyTo *Address
	Subject string
	HTML    string
	Text    string
	Tags    []string
}

// Provider delivers a rendered Message through a transactional email API.
//
// Send makes exactly one attempt and returns the provider's message id.
type Provider interface {
	Name() string
	Send(ctx context.Context, msg *Message) (string, error)
}

// ProviderError is returned when the provider answered with a non-2xx status.
// Body is kept for server-side logs only.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
}
