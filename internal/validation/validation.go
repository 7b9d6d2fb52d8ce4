package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/DexBinder_Go/internal/domain"
)

// Error is a failed parse: every violated field mapped to a human-readable
// reason. Parsing reports all violations at once, not just the first.
type Error struct {
	Fields map[string]string `json:"fields"`
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return domain.ErrMsgInvalidInput
	}
	paths := make([]string, 0, len(e.Fields))
	for path := range e.Fields {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	parts := make([]string, 0, len(paths))
	for _, path := range paths {
		parts = append(parts, path+": "+e.Fields[path])
	}
	return domain.ErrMsgInvalidInput + ": " + strings.Join(parts, "; ")
}

// Unwrap lets callers match the failure with errors.Is(err, domain.ErrInvalidInput).
func (e *Error) Unwrap() error {
	return domain.ErrInvalidInput
}

// newError builds an Error for a single field.
func newError(field, reason string) *Error {
	return &Error{Fields: map[string]string{field: reason}}
}

var validate = newValidator()

// newValidator configures a validator instance that reports field paths by
// their JSON names, matching what clients actually sent.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check runs struct validation and converts the result into an *Error with
// every violation mapped by JSON field path.
func check(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	fields := make(map[string]string, len(violations))
	for _, e := range violations {
		fields[fieldPath(e)] = reason(e)
	}
	return &Error{Fields: fields}
}

// fieldPath strips the root struct name from the namespace, leaving the
// JSON path the client recognizes (e.g. "current.cardName").
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

// reason maps a validation tag to a user-friendly message
// This prevents leaking internal struct names and provides cleaner error messages
func reason(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min", "gte":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("Must be at least %s", e.Param())
	case "max", "lte":
		switch e.Kind() {
		case reflect.String:
			return fmt.Sprintf("Must be at most %s characters", e.Param())
		case reflect.Slice:
			return fmt.Sprintf("Must have at most %s entries", e.Param())
		default:
			return fmt.Sprintf("Must be at most %s", e.Param())
		}
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(e.Param(), " ", ", "))
	case "url":
		return "Must be a well-formed URL"
	default:
		return "Invalid value"
	}
}
