// Package coerce converts between markup attribute strings and typed values.
//
// Every value that reaches markup goes through Stringify, so one rendering
// rule holds for attributes, text content and structured values alike.
package coerce

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/FocuswithJustin/xliffkit/core/errors"
)

// Boolean tokens used by XLIFF attributes.
const (
	Yes = "yes"
	No  = "no"
)

// TimeLayout is the compact UTC timestamp form (e.g. 20230501T153000Z).
const TimeLayout = "20060102T150405Z"

// Stringify renders v for markup output. Strings and numbers render
// verbatim, booleans as Yes or No, timestamps in TimeLayout (converted to
// UTC), enumeration tokens and text marshalers as their literal. Any other
// type is an UnsupportedError.
func Stringify(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		if x {
			return Yes, nil
		}
		return No, nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case time.Time:
		return x.UTC().Format(TimeLayout), nil
	case encoding.TextMarshaler:
		b, err := x.MarshalText()
		if err != nil {
			return "", err
		}
		return string(b), nil
	case nil:
		return "", errors.NewUnsupported("nil value", "absent values are not rendered")
	}

	// Named kinds, enumeration constants included.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return Stringify(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	}
	return "", errors.NewUnsupported(fmt.Sprintf("attribute value of type %T", v), "no markup representation")
}

// ToBool accepts a bool or one of the Yes/No tokens.
func ToBool(v any) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		return ParseBool(x)
	}
	return false, fmt.Errorf("%w: expected a bool or one of %q or %q but got %#v", errors.ErrInvalidInput, Yes, No, v)
}

// ParseBool converts a Yes/No token.
func ParseBool(s string) (bool, error) {
	switch s {
	case Yes:
		return true, nil
	case No:
		return false, nil
	}
	return false, fmt.Errorf("%w: expected %q or %q but got %q", errors.ErrInvalidInput, Yes, No, s)
}

// ParseTime parses a TimeLayout timestamp.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected a timestamp like 20060102T150405Z but got %q", errors.ErrInvalidInput, s)
	}
	return t, nil
}

// Codec binds one host type to its markup form. Parse reads a markup
// literal, Format renders through Stringify and Convert accepts explicit
// host values supplied by callers.
type Codec[T any] struct {
	// Expected describes the accepted shape in failures (e.g. "integer").
	Expected string

	parse   func(string) (T, error)
	convert func(any) (T, bool, error)
}

// NewCodec creates a codec from a markup parser. convert may be nil, in
// which case only values of type T are accepted explicitly.
func NewCodec[T any](expected string, parse func(string) (T, error), convert func(any) (T, bool, error)) Codec[T] {
	return Codec[T]{Expected: expected, parse: parse, convert: convert}
}

// Parse converts a markup literal.
func (c Codec[T]) Parse(s string) (T, error) {
	return c.parse(s)
}

// Format renders v for markup.
func (c Codec[T]) Format(v T) (string, error) {
	return Stringify(v)
}

// Convert accepts an explicit host value. Values of type T (or *T) pass
// through; other types go through the codec's conversion hook. A value no
// conversion accepts is a TypeMismatch at the caller.
func (c Codec[T]) Convert(v any) (T, error) {
	switch x := v.(type) {
	case T:
		return x, nil
	case *T:
		if x != nil {
			return *x, nil
		}
	}
	if c.convert != nil {
		out, ok, err := c.convert(v)
		if ok {
			return out, err
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: expected %s but got %T", errors.ErrType, c.Expected, v)
}

// Codecs for the scalar attribute types used by XLIFF.
var (
	String = NewCodec("string", func(s string) (string, error) { return s, nil }, nil)

	Int = NewCodec("integer", parseInt, func(v any) (int, bool, error) {
		switch x := v.(type) {
		case int32:
			return int(x), true, nil
		case int64:
			return int(x), true, nil
		}
		return 0, false, nil
	})

	Float = NewCodec("number", parseFloat, func(v any) (float64, bool, error) {
		switch x := v.(type) {
		case float32:
			return float64(x), true, nil
		case int:
			return float64(x), true, nil
		}
		return 0, false, nil
	})

	Bool = NewCodec("yes or no", ParseBool, func(v any) (bool, bool, error) {
		if s, ok := v.(string); ok {
			b, err := ParseBool(s)
			return b, true, err
		}
		return false, false, nil
	})

	Time = NewCodec("timestamp like 20060102T150405Z", ParseTime, nil)
)

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: expected an integer but got %q", errors.ErrInvalidInput, s)
	}
	return n, nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: expected a number but got %q", errors.ErrInvalidInput, s)
	}
	return f, nil
}
