package model

import (
	"strings"
	"testing"

	"github.com/deppfellow/portfolio-api/internal/errs"
	"github.com/deppfellow/portfolio-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *ContactRequest {
	return &ContactRequest{
		Email:       "a@b.com",
		FirstName:   "John",
		LastName:    "Doe",
		PhoneNumber: "1234567890",
		Message:     "hi",
	}
}

func fieldsOf(fieldErrors []errs.FieldError) []string {
	fields := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		fields = append(fields, fe.Field)
	}
	return fields
}

func TestContactRequest_Valid(t *testing.T) {
	req := validRequest()
	req.Sanitize()

	fieldErrors, err := validation.ValidateFields(req)
	require.NoError(t, err)
	assert.Empty(t, fieldErrors)

	sub := req.Submission()
	assert.Equal(t, "a@b.com", sub.Email)
	assert.Equal(t, "John Doe", sub.FullName())
}

func TestContactRequest_PhoneIsOptional(t *testing.T) {
	req := validRequest()
	req.PhoneNumber = ""

	fieldErrors, err := validation.ValidateFields(req)
	require.NoError(t, err)
	assert.Empty(t, fieldErrors)
}

func TestContactRequest_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *ContactRequest)
		field   string
		message string
	}{
		{name: "missing email", mutate: func(r *ContactRequest) { r.Email = "" }, field: "email", message: "is required"},
		{name: "bad email", mutate: func(r *ContactRequest) { r.Email = "not-an-email" }, field: "email", message: "must be a valid email address"},
		{name: "email without domain", mutate: func(r *ContactRequest) { r.Email = "a@" }, field: "email", message: "must be a valid email address"},
		{name: "empty first name", mutate: func(r *ContactRequest) { r.FirstName = "" }, field: "firstName", message: "is required"},
		{name: "long last name", mutate: func(r *ContactRequest) { r.LastName = strings.Repeat("x", MaxNameLength+1) }, field: "lastName", message: "must not exceed 100 characters"},
		{name: "empty message", mutate: func(r *ContactRequest) { r.Message = "" }, field: "message", message: "is required"},
		{name: "long message", mutate: func(r *ContactRequest) { r.Message = strings.Repeat("m", MaxMessageLength+1) }, field: "message", message: "must not exceed 1000 characters"},
		{name: "short phone", mutate: func(r *ContactRequest) { r.PhoneNumber = "12345" }, field: "phoneNumber", message: "must be at least 10 characters"},
		{name: "long phone", mutate: func(r *ContactRequest) { r.PhoneNumber = strings.Repeat("1", MaxPhoneLength+1) }, field: "phoneNumber", message: "must not exceed 20 characters"},
		{name: "phone letters", mutate: func(r *ContactRequest) { r.PhoneNumber = "call me maybe" }, field: "phoneNumber", message: "must contain only digits, spaces and + - ( ) ."},
		{name: "phone only separators", mutate: func(r *ContactRequest) { r.PhoneNumber = "(----------)" }, field: "phoneNumber", message: "must contain only digits, spaces and + - ( ) ."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			req.Sanitize()

			fieldErrors, err := validation.ValidateFields(req)
			require.NoError(t, err)
			require.Len(t, fieldErrors, 1)
			assert.Equal(t, tt.field, fieldErrors[0].Field)
			assert.Equal(t, tt.message, fieldErrors[0].Error)
		})
	}
}

func TestContactRequest_ReportsEveryViolation(t *testing.T) {
	req := &ContactRequest{
		Email:       "nope",
		PhoneNumber: "abc",
	}
	req.Sanitize()

	fieldErrors, err := validation.ValidateFields(req)
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"email", "firstName", "lastName", "phoneNumber", "message"},
		fieldsOf(fieldErrors),
	)
}

func TestContactRequest_SanitizeBeforeValidate(t *testing.T) {
	req := &ContactRequest{
		Email:       "  a@b.com\x00 ",
		FirstName:   "\tJohn\x07",
		LastName:    " Doe ",
		PhoneNumber: " +1 (555) 123-4567 ",
		Message:     "  line one\r\nline two\x1b  ",
	}
	req.Sanitize()

	assert.Equal(t, "a@b.com", req.Email)
	assert.Equal(t, "John", req.FirstName)
	assert.Equal(t, "Doe", req.LastName)
	assert.Equal(t, "+1 (555) 123-4567", req.PhoneNumber)
	assert.Equal(t, "line one\nline two", req.Message)

	fieldErrors, err := validation.ValidateFields(req)
	require.NoError(t, err)
	assert.Empty(t, fieldErrors)
}

func TestContactRequest_WhitespaceOnlyIsEmpty(t *testing.T) {
	req := validRequest()
	req.Message = " \n\t "
	req.FirstName = "\x01\x02"
	req.Sanitize()

	fieldErrors, err := validation.ValidateFields(req)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"firstName", "message"}, fieldsOf(fieldErrors))
}
