package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterJSONTagNames makes validator report field names from json tags
// so error details line up with the wire format.
func RegisterJSONTagNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
}

// FieldErrors converts a validator error into a field -> message map so
// clients can highlight every invalid field at once.
func FieldErrors(err error) map[string]string {
	details := map[string]string{}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		details["body"] = err.Error()
		return details
	}

	for _, e := range validationErrors {
		details[e.Field()] = formatSingleError(e)
	}

	return details
}

func formatSingleError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", e.Param())
		}
		return fmt.Sprintf("must be at most %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Split(e.Param(), " "), ", "))
	case "email":
		return "is not a valid email address"
	case "url":
		return "is not a valid URL"
	default:
		return fmt.Sprintf("failed validation (%s)", e.Tag())
	}
}
