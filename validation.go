package accounts

import (
	"fmt"
	"reflect"

	"github.com/goliatone/go-errors"
)

// Validation runs a single field check over a decoded request body. A nil
// return means the input passed. Validators are pure: no I/O, no mutation.
type Validation interface {
	Validate(input map[string]any) error
}

// NewMissingFieldError builds the canonical error for an absent field.
func NewMissingFieldError(field string) error {
	return errors.New(fmt.Sprintf("missing field %s", field), errors.CategoryValidation).
		WithTextCode("MISSING_FIELD").
		WithMetadata(map[string]any{"field": field})
}

// NewInvalidFieldError builds the canonical error for a malformed field.
func NewInvalidFieldError(field string) error {
	return errors.New(fmt.Sprintf("invalid field %s", field), errors.CategoryValidation).
		WithTextCode("INVALID_FIELD").
		WithMetadata(map[string]any{"field": field})
}

// IsValidationError reports whether err is a field-level verdict rather
// than a checker malfunction.
func IsValidationError(err error) bool {
	var rich *errors.Error
	if !errors.As(err, &rich) {
		return false
	}
	return rich.Category == errors.CategoryValidation
}

// ValidationComposite evaluates validations in order and returns the first
// failure. An empty composite always passes.
type ValidationComposite struct {
	validations []Validation
}

func NewValidationComposite(validations ...Validation) *ValidationComposite {
	return &ValidationComposite{validations: validations}
}

func (c *ValidationComposite) Validate(input map[string]any) error {
	for _, v := range c.validations {
		if err := v.Validate(input); err != nil {
			return err
		}
	}
	return nil
}

// RequiredFieldValidation fails when the named key is absent or empty.
type RequiredFieldValidation struct {
	field string
}

func NewRequiredFieldValidation(field string) *RequiredFieldValidation {
	return &RequiredFieldValidation{field: field}
}

func (v *RequiredFieldValidation) Validate(input map[string]any) error {
	value, ok := input[v.field]
	if !ok || value == nil {
		return NewMissingFieldError(v.field)
	}
	if s, isString := value.(string); isString && s == "" {
		return NewMissingFieldError(v.field)
	}
	return nil
}

// CompareFieldsValidation fails when two keys do not hold identical values.
// The error names the second field, the one echoing the first.
type CompareFieldsValidation struct {
	field          string
	fieldToCompare string
}

func NewCompareFieldsValidation(field, fieldToCompare string) *CompareFieldsValidation {
	return &CompareFieldsValidation{field: field, fieldToCompare: fieldToCompare}
}

func (v *CompareFieldsValidation) Validate(input map[string]any) error {
	if !reflect.DeepEqual(input[v.field], input[v.fieldToCompare]) {
		return NewInvalidFieldError(v.fieldToCompare)
	}
	return nil
}

// EmailFormatChecker is the pluggable format capability behind
// EmailValidation. An error return is an adapter malfunction, not a
// verdict, and propagates unchanged.
type EmailFormatChecker interface {
	Valid(email string) (bool, error)
}

// EmailValidation fails when the checker rejects the named field.
type EmailValidation struct {
	field   string
	checker EmailFormatChecker
}

func NewEmailValidation(field string, checker EmailFormatChecker) *EmailValidation {
	return &EmailValidation{field: field, checker: checker}
}

func (v *EmailValidation) Validate(input map[string]any) error {
	email, _ := input[v.field].(string)
	ok, err := v.checker.Valid(email)
	if err != nil {
		return err
	}
	if !ok {
		return NewInvalidFieldError(v.field)
	}
	return nil
}

// PhoneFormatChecker mirrors EmailFormatChecker for phone numbers.
type PhoneFormatChecker interface {
	Valid(number string) (bool, error)
}

// PhoneValidation checks an optional field: absent or empty passes, a
// present value must be a parseable phone number.
type PhoneValidation struct {
	field   string
	checker PhoneFormatChecker
}

func NewPhoneValidation(field string, checker PhoneFormatChecker) *PhoneValidation {
	return &PhoneValidation{field: field, checker: checker}
}

func (v *PhoneValidation) Validate(input map[string]any) error {
	number, _ := input[v.field].(string)
	if number == "" {
		return nil
	}
	ok, err := v.checker.Valid(number)
	if err != nil {
		return err
	}
	if !ok {
		return NewInvalidFieldError(v.field)
	}
	return nil
}
