// Package enum implements open enumerations: a closed set of known tokens
// plus vendor extensions carrying the reserved "x-" prefix.
package enum

import (
	"fmt"
	"slices"
	"strings"

	"github.com/FocuswithJustin/xliffkit/core/errors"
)

// CustomPrefix marks a deliberate extension outside the known set.
const CustomPrefix = "x-"

type kind uint8

const (
	absent kind = iota
	known
	custom
	invalid
)

// Value is either a known member of T, a custom-prefixed literal, or absent
// (the zero value). A markup literal that is neither is kept in an invalid
// state so the owning entity can report it at validation time.
type Value[T ~string] struct {
	kind kind
	lit  string
}

// Known wraps a known member. Membership is checked by Set.Check.
func Known[T ~string](t T) Value[T] {
	return Value[T]{kind: known, lit: string(t)}
}

// Custom wraps an extension literal. The literal must carry CustomPrefix.
func Custom[T ~string](s string) (Value[T], error) {
	if !strings.HasPrefix(s, CustomPrefix) {
		return Value[T]{}, fmt.Errorf("%w: custom value %q must start with %q", errors.ErrInvalidEnum, s, CustomPrefix)
	}
	return Value[T]{kind: custom, lit: s}, nil
}

// MustCustom is like Custom but panics on a missing prefix.
func MustCustom[T ~string](s string) Value[T] {
	v, err := Custom[T](s)
	if err != nil {
		panic(err)
	}
	return v
}

// IsZero reports whether the value is absent.
func (v Value[T]) IsZero() bool { return v.kind == absent }

// IsKnown reports whether the value wraps a member of T.
func (v Value[T]) IsKnown() bool { return v.kind == known }

// IsCustom reports whether the value is a prefixed extension.
func (v Value[T]) IsCustom() bool { return v.kind == custom }

// Member returns the known member, or false for custom, invalid and absent
// values.
func (v Value[T]) Member() (T, bool) {
	if v.kind != known {
		var zero T
		return zero, false
	}
	return T(v.lit), true
}

// String returns the literal token.
func (v Value[T]) String() string { return v.lit }

// MarshalText renders the token unchanged. Invalid and absent values have no
// markup form.
func (v Value[T]) MarshalText() ([]byte, error) {
	switch v.kind {
	case known, custom:
		return []byte(v.lit), nil
	case invalid:
		return nil, fmt.Errorf("%w: %q", errors.ErrInvalidEnum, v.lit)
	}
	return nil, errors.NewUnsupported("absent enumerated value", "absent values are not rendered")
}

// Set is the closed set of known tokens for one attribute.
type Set[T ~string] struct {
	name    string
	members []T
}

// NewSet declares the known members of an enumeration.
func NewSet[T ~string](name string, members ...T) *Set[T] {
	return &Set[T]{name: name, members: members}
}

func (s *Set[T]) Name() string { return s.name }

// Members returns the known tokens in declaration order.
func (s *Set[T]) Members() []T {
	return slices.Clone(s.members)
}

// Contains reports whether t is a known member.
func (s *Set[T]) Contains(t T) bool {
	return slices.Contains(s.members, t)
}

// Expected describes the accepted shape of a value.
func (s *Set[T]) Expected() string {
	tokens := make([]string, len(s.members))
	for i, m := range s.members {
		tokens[i] = string(m)
	}
	return fmt.Sprintf("%s (one of %s, or a %q-prefixed custom value)", s.name, strings.Join(tokens, ", "), CustomPrefix)
}

// Parse converts a literal strictly: a known token yields its member, a
// prefixed literal yields a custom value, anything else fails.
func (s *Set[T]) Parse(lit string) (Value[T], error) {
	if s.Contains(T(lit)) {
		return Known(T(lit)), nil
	}
	if strings.HasPrefix(lit, CustomPrefix) {
		return Value[T]{kind: custom, lit: lit}, nil
	}
	return Value[T]{}, fmt.Errorf("%w: %q is not a valid %s", errors.ErrInvalidEnum, lit, s.Expected())
}

// Decode converts a markup literal without failing. Unconvertible literals
// are kept in the invalid state for Check to report.
func (s *Set[T]) Decode(lit string) Value[T] {
	v, err := s.Parse(lit)
	if err != nil {
		return Value[T]{kind: invalid, lit: lit}
	}
	return v
}

// Convert accepts an explicit host value: a Value, a member of T or a
// string literal. Literals go through Decode, so an unknown literal is kept
// for Check to report; other host types are a type error.
func (s *Set[T]) Convert(v any) (Value[T], error) {
	switch x := v.(type) {
	case Value[T]:
		return x, nil
	case T:
		return s.Decode(string(x)), nil
	case string:
		return s.Decode(x), nil
	}
	return Value[T]{}, fmt.Errorf("%w: expected %s but got %T", errors.ErrType, s.name, v)
}

// Check reports whether v is acceptable for the set. Absent values pass;
// presence is checked by the owning field.
func (s *Set[T]) Check(v Value[T]) error {
	switch v.kind {
	case absent, custom:
		return nil
	case known:
		if s.Contains(T(v.lit)) {
			return nil
		}
	}
	if strings.HasPrefix(v.lit, CustomPrefix) {
		return nil
	}
	return fmt.Errorf("%w: %q is not a member of %s", errors.ErrInvalidEnum, v.lit, s.name)
}
