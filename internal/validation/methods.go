// Package validation checks request payloads before they reach the services.
package validation

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	structValidator *validator.Validate
	once            sync.Once
)

func engine() *validator.Validate {
	once.Do(func() {
		structValidator = validator.New(validator.WithRequiredStructEnabled())
		structValidator.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return structValidator
}

// Validator collects field errors keyed by json field name
type Validator struct {
	Errors map[string]string
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records message for field unless the field already has one
func (v *Validator) AddError(field, message string) {
	if _, ok := v.Errors[field]; !ok {
		v.Errors[field] = message
	}
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Struct applies the `validate` tags of s
func (v *Validator) Struct(s interface{}) {
	err := engine().Struct(s)
	if err == nil {
		return
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		v.AddError("body", err.Error())
		return
	}
	for _, fe := range fieldErrs {
		v.AddError(fe.Field(), message(fe))
	}
}

// PositiveAmount requires amount > 0
func (v *Validator) PositiveAmount(field string, amount decimal.Decimal) {
	v.Check(amount.IsPositive(), field, "must be greater than zero")
}

// AmountPlaces rejects amounts with more than places decimal digits.
// Trailing zeros beyond places are accepted.
func (v *Validator) AmountPlaces(field string, amount decimal.Decimal, places int32) {
	v.Check(amount.Equal(amount.Round(places)), field, fmt.Sprintf("must have at most %d decimal places", places))
}

// FirstError returns one error in a stable order, or "" when valid
func (v *Validator) FirstError() string {
	if v.Valid() {
		return ""
	}
	fields := make([]string, 0, len(v.Errors))
	for f := range v.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("%s %s", fields[0], v.Errors[fields[0]])
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "numeric":
		return "must contain only digits"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
