// Package formvalidate checks decoded form structs with struct tags.
//
// Fields are reported by their `form` tag name so messages match the HTML
// input names.
package formvalidate

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes the first field that failed validation.
type FieldError struct {
	Field string
	Tag   string
}

func (e *FieldError) Error() string {
	switch e.Tag {
	case "required":
		return e.Field + " is required"
	default:
		return e.Field + " failed " + e.Tag + " validation"
	}
}

// Validator wraps a configured validator instance.
type Validator struct {
	v *validator.Validate
}

// New builds a Validator that names fields by their form tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(formFieldName)
	return &Validator{v: v}
}

// Validate returns nil or a *FieldError for the first failing field in
// declaration order.
func (v *Validator) Validate(ctx context.Context, target any) error {
	if v == nil || v.v == nil {
		return errors.New("validator is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := v.v.StructCtx(ctx, target)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	first := fieldErrs[0]
	return &FieldError{Field: first.Field(), Tag: first.Tag()}
}

func formFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}
