package model

import (
	"github.com/deppfellow/portfolio-api/internal/validation"
)

// Field limits for the contact form.
const (
	MaxEmailLength   = 254
	MaxNameLength    = 100
	MinPhoneLength   = 10
	MaxPhoneLength   = 20
	MaxMessageLength = 1000
)

// ContactRequest is the JSON body of POST /contact.
type ContactRequest struct {
	Email       string `json:"email" validate:"required,email,max=254"`
	FirstName   string `json:"firstName" validate:"required,max=100"`
	LastName    string `json:"lastName" validate:"required,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,min=10,max=20,phone"`
	Message     string `json:"message" validate:"required,max=1000"`
}

// Sanitize trims every field and strips control characters.
// Line breaks are kept in the message only.
func (r *ContactRequest) Sanitize() {
	r.Email = validation.SanitizeLine(r.Email)
	r.FirstName = validation.SanitizeLine(r.FirstName)
	r.LastName = validation.SanitizeLine(r.LastName)
	r.PhoneNumber = validation.SanitizeLine(r.PhoneNumber)
	r.Message = validation.SanitizeText(r.Message)
}

func (r *ContactRequest) Validate() error {
	return validation.Struct(r)
}

// Submission converts a validated request into the value handed to the
// notifier. Callers must have run Sanitize and Validate first.
func (r *ContactRequest) Submission() ContactSubmission {
	return ContactSubmission{
		Email:       r.Email,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
		Message:     r.Message,
	}
}

// ContactSubmission is a sanitized, validated contact form submission.
type ContactSubmission struct {
	Email       string
	FirstName   string
	LastName    string
	PhoneNumber string
	Message     string
}

// FullName joins first and last name.
func (s ContactSubmission) FullName() string {
	return s.FirstName + " " + s.LastName
}

// NotificationResult is the body returned by POST /contact.
//
// ID correlates the response with server logs; it is generated per
// request and never stored.
type NotificationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}
