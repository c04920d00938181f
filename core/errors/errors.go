// Package errors provides the error taxonomy shared by the xliffkit packages.
//
// Four kinds of failure exist:
//   - structural mismatch (TagMismatchError, UnexpectedElementError), fatal at construction
//   - missing required values and invalid values (ValidationError), reported by Validate
//   - wrong host types for explicit values (TypeMismatchError, UnknownFieldError), immediate
//   - rendering of unsupported value types (UnsupportedError)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common cases
var (
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupported indicates an unsupported operation or value type
	ErrUnsupported = errors.New("unsupported")
	// ErrStructure indicates a node that does not match the entity being built
	ErrStructure = errors.New("structural mismatch")
	// ErrType indicates an explicit value of the wrong host type
	ErrType = errors.New("type mismatch")

	// ErrRequired indicates a required attribute or content is absent
	ErrRequired = fmt.Errorf("%w: required value missing", ErrInvalidInput)
	// ErrInvalidEnum indicates a literal outside the known set without the custom prefix
	ErrInvalidEnum = fmt.Errorf("%w: invalid enumerated value", ErrInvalidInput)
	// ErrInvalidValue indicates a value that could not be converted or breaks a rule
	ErrInvalidValue = fmt.Errorf("%w: invalid value", ErrInvalidInput)
)

// TagMismatchError is returned when an entity is built from a node whose tag
// is not the entity's declared tag.
type TagMismatchError struct {
	Expected string
	Got      string
}

func (e *TagMismatchError) Error() string {
	return fmt.Sprintf("incorrect xml tag: expected <%s> but got <%s>", e.Expected, e.Got)
}

func (e *TagMismatchError) Unwrap() error {
	return ErrStructure
}

// UnexpectedElementError is returned when a node carries a child element the
// parent entity does not declare.
type UnexpectedElementError struct {
	Parent string
	Child  string
}

func (e *UnexpectedElementError) Error() string {
	return fmt.Sprintf("unexpected element <%s> in <%s>", e.Child, e.Parent)
}

func (e *UnexpectedElementError) Unwrap() error {
	return ErrStructure
}

// TypeMismatchError represents an explicit value of the wrong host type.
type TypeMismatchError struct {
	Tag      string // Element the field belongs to
	Field    string // Declared field name
	Expected string // Description of the accepted types
	Got      any    // Offending value
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s.%s: expected %s but got %T (%#v)", e.Tag, e.Field, e.Expected, e.Got, e.Got)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrType
}

// UnknownFieldError is returned when explicit values name a field the entity
// does not declare.
type UnknownFieldError struct {
	Tag   string
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s has no field %q", e.Tag, e.Field)
}

func (e *UnknownFieldError) Unwrap() error {
	return ErrType
}

// ParseError represents a parsing or deserialization error
type ParseError struct {
	Format  string // Format being parsed (e.g., "XML", "coord")
	Path    string // File path, if applicable
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, e.Path, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// UnsupportedError represents an unsupported feature or value type
type UnsupportedError struct {
	Feature string // Feature or type that is unsupported
	Reason  string // Why it's not supported
	Err     error  // Underlying error, if any
}

func (e *UnsupportedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported %s: %s", e.Feature, e.Reason)
	}
	return fmt.Sprintf("unsupported %s", e.Feature)
}

func (e *UnsupportedError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrUnsupported
}

// ValidationError is a single failed attribute, content or child check.
type ValidationError struct {
	Tag      string // Element name of the failing entity
	Entity   any    // The failing entity itself
	Field    string // Declared field name
	Value    any    // Offending value (nil when absent)
	Expected string // Expected type or shape
	Message  string // Human-readable detail
	Err      error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "validation failed for %s.%s: %s", e.Tag, e.Field, e.Message)
	if e.Value != nil {
		fmt.Fprintf(&b, " (got %#v", e.Value)
		if e.Expected != "" {
			fmt.Fprintf(&b, ", expected %s", e.Expected)
		}
		b.WriteString(")")
	} else if e.Expected != "" {
		fmt.Fprintf(&b, " (expected %s)", e.Expected)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// ValidationErrors is an ordered aggregate of validation failures collected
// across an entity subtree.
type ValidationErrors []*ValidationError

func (errs ValidationErrors) Error() string {
	switch len(errs) {
	case 0:
		return "no validation errors"
	case 1:
		return errs[0].Error()
	}
	b := &strings.Builder{}
	fmt.Fprintf(b, "%d validation errors:", len(errs))
	for i, e := range errs {
		fmt.Fprintf(b, "\n  %d. In <%s>: %s", i+1, e.Tag, e.Error())
	}
	return b.String()
}

// Unwrap exposes every failure to errors.Is and errors.As.
func (errs ValidationErrors) Unwrap() []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}

// Merge folds err into errs. A single ValidationError is appended, an
// aggregate is flattened in order. Any other error is returned unchanged as
// the second result so callers can propagate it.
func (errs ValidationErrors) Merge(err error) (ValidationErrors, error) {
	if err == nil {
		return errs, nil
	}
	var agg ValidationErrors
	if errors.As(err, &agg) {
		return append(errs, agg...), nil
	}
	var leaf *ValidationError
	if errors.As(err, &leaf) {
		return append(errs, leaf), nil
	}
	return errs, err
}

// AsValidationErrors extracts every validation failure carried by err. A
// single ValidationError yields a one-element aggregate.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	if err == nil {
		return nil, false
	}
	out, rest := ValidationErrors(nil).Merge(err)
	if rest != nil || len(out) == 0 {
		return nil, false
	}
	return out, true
}

// NewRequired creates a ValidationError for an absent mandatory value
func NewRequired(tag string, entity any, field, expected string) *ValidationError {
	return &ValidationError{
		Tag:      tag,
		Entity:   entity,
		Field:    field,
		Expected: expected,
		Message:  "required value is missing",
		Err:      ErrRequired,
	}
}

// NewInvalid creates a ValidationError for a present but unacceptable value
func NewInvalid(tag string, entity any, field string, value any, expected string, cause error) *ValidationError {
	msg, wrapped := "invalid value", ErrInvalidValue
	if cause != nil {
		msg = cause.Error()
		wrapped = fmt.Errorf("%w: %w", ErrInvalidValue, cause)
	}
	return &ValidationError{
		Tag:      tag,
		Entity:   entity,
		Field:    field,
		Value:    value,
		Expected: expected,
		Message:  msg,
		Err:      wrapped,
	}
}

// NewUnsupported creates an UnsupportedError
func NewUnsupported(feature, reason string) *UnsupportedError {
	return &UnsupportedError{
		Feature: feature,
		Reason:  reason,
	}
}

// NewParse creates a ParseError
func NewParse(format, path, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Message: message,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
