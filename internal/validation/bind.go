package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/deppfellow/portfolio-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required,email"`)
//   - Implement Validate() error that calls validation.Struct(req)
type Validatable interface {
	Validate() error
}

// BindAndValidate binds request data into payload, sanitizes and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the struct from the request body/params.
//  2. payload.Sanitize() runs if the payload implements Sanitizable.
//  3. payload.Validate() applies validation rules.
//
// Every violated rule is reported: the returned *errs.HTTPError (400)
// carries one FieldError per failure.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if s, ok := payload.(Sanitizable); ok {
		s.Sanitize()
	}

	fieldErrors, err := ValidateFields(payload)
	if err != nil {
		return err
	}
	if fieldErrors != nil {
		return errs.NewValidationError(fieldErrors)
	}

	return nil
}

// ValidateFields runs v.Validate() and converts rule violations into
// field errors. A non-nil error means validation itself could not run.
func ValidateFields(v Validatable) ([]errs.FieldError, error) {
	err := v.Validate()
	if err == nil {
		return nil, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, fmt.Errorf("validate payload: %w", err)
	}

	return extractValidationErrors(validationErrors), nil
}

// bindError turns echo's bind failures into a client-facing 400.
// Anything echo already classified differently (415) is passed through.
func bindError(err error) error {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Code != http.StatusBadRequest {
			return echoErr
		}
		if msg, ok := echoErr.Message.(string); ok {
			return errs.NewBadRequestError(msg, false, nil, nil)
		}
	}

	return errs.NewBadRequestError("Invalid request body", false, nil, nil)
}

func extractValidationErrors(validationErrors validator.ValidationErrors) []errs.FieldError {
	fieldErrors := make([]errs.FieldError, 0, len(validationErrors))

	for _, err := range validationErrors {
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// min means length for strings, value for numbers.
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		case "email":
			msg = "must be a valid email address"

		case "phone":
			msg = "must contain only digits, spaces and + - ( ) ."

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", err.Field(), err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", err.Field(), err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: err.Field(),
			Error: msg,
		})
	}

	return fieldErrors
}
