// File: internal/config/validate.go
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their settings key rather than the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks one configuration section. section is the key prefix used in messages
// (e.g. "cloudinary"), so problems are reported as full settings keys.
func Validate(section string, value interface{}) error {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("error validating %s configuration: %w", section, err)
	}

	problems := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		key := section + "." + fe.Field()
		problems = append(problems, describeProblem(key, fe))
	}

	return fmt.Errorf("invalid %s configuration: %s", section, strings.Join(problems, "; "))
}

func describeProblem(key string, fe validator.FieldError) string {
	var msg string
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required", key)
	case "url":
		msg = fmt.Sprintf("%s must be a valid URL", key)
	case "gte":
		msg = fmt.Sprintf("%s must not be negative", key)
	default:
		msg = fmt.Sprintf("%s failed '%s' check", key, fe.Tag())
	}

	if envs := EnvVarsFor(key); len(envs) > 0 && fe.Tag() == "required" {
		msg += fmt.Sprintf(" (set %s or 'imgup config set %s <value>')", envs[0], key)
	}
	return msg
}
