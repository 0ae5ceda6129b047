package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// phoneRegex allows digits plus the separators people actually type.
var phoneRegex = regexp.MustCompile(`^[0-9+\-(). ]+$`)

// validate is the shared validator instance. validator caches struct
// metadata, so one instance is reused for every request.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name ("firstName") instead of the Go name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("phone", validatePhone); err != nil {
		panic(err)
	}

	return v
}

// validatePhone accepts digits and common separators, with at least one digit.
func validatePhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return phoneRegex.MatchString(value) && strings.ContainsAny(value, "0123456789")
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	return validate.Struct(s)
}
