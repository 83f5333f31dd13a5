// Package validator wraps the go-playground/validator library to validate
// structs through their `validate` tags and report every violation as one
// joined error.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error in the chain returned by Validate
// when at least one rule is violated.
var ErrValidationFailed = errors.New("struct validation failed")

// validator is the package-wide validator instance, created on package load.
var validator *gvalidator.Validate

// errStringFormat describes a single violation.
//
// Example: "'Config.PollInterval': value '0s' does not meet the requirements for the 'min' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
}

// formatError turns validator errors into ErrValidationFailed joined with one
// message per field, named by its full namespace so nested fields are
// unambiguous. Any other error is returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Namespace(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its validation tags. It returns nil when every
// rule passes; otherwise the error satisfies errors.Is(err, ErrValidationFailed).
//
//	type Input struct {
//	    URL string `validate:"required,url"`
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
