package schema

import (
	"fmt"
	"strings"

	"github.com/FocuswithJustin/xliffkit/core/coerce"
	"github.com/FocuswithJustin/xliffkit/core/enum"
	"github.com/FocuswithJustin/xliffkit/core/errors"
	"github.com/FocuswithJustin/xliffkit/core/node"
	"github.com/FocuswithJustin/xliffkit/internal/logging"
	"github.com/FocuswithJustin/xliffkit/internal/validation"
)

// Field is one row of a Schema table. Fields are created with Attr, Text,
// Enum, Elements, One and Mixed.
type Field[E any] interface {
	// Name is the key used in Values.
	Name() string
	// XMLName is the attribute name, empty for content and children.
	XMLName() string
	// IsRequired reports whether absence is a validation failure.
	IsRequired() bool

	claims(tag string) bool
	assign(e *E, tag string, v any) error
	decode(e *E, b *Base, tag string, src node.Element) error
	check(e *E, b *Base, tag string, r *validation.Report) bool
	children(e *E) []Entity
	attr(e *E) (node.Attr, bool, error)
	fill(e *E, el node.Element, f node.Factory) error
}

// meta carries the descriptor columns and the no-op defaults shared by every
// field kind.
type meta[E any] struct {
	name     string
	xmlName  string
	required bool
}

func (m *meta[E]) Name() string     { return m.name }
func (m *meta[E]) XMLName() string  { return m.xmlName }
func (m *meta[E]) IsRequired() bool { return m.required }

// label names the field in failures: the attribute name when there is one.
func (m *meta[E]) label() string {
	if m.xmlName != "" {
		return m.xmlName
	}
	return m.name
}

func (m *meta[E]) claims(string) bool                               { return false }
func (m *meta[E]) children(*E) []Entity                             { return nil }
func (m *meta[E]) attr(*E) (node.Attr, bool, error)                 { return node.Attr{}, false, nil }
func (m *meta[E]) fill(*E, node.Element, node.Factory) error        { return nil }
func (m *meta[E]) decode(*E, *Base, string, node.Element) error     { return nil }
func (m *meta[E]) check(*E, *Base, string, *validation.Report) bool { return false }

func (m *meta[E]) mismatch(tag, expected string, v any) error {
	return &errors.TypeMismatchError{Tag: tag, Field: m.name, Expected: expected, Got: v}
}

// Scalar is an attribute or text content field holding an optional T.
type Scalar[E, T any] struct {
	meta[E]
	text  bool
	codec coerce.Codec[T]
	ptr   func(*E) **T
	rules []func(T) error
}

// Attr declares an optional attribute named xmlName.
func Attr[E, T any](name, xmlName string, codec coerce.Codec[T], ptr func(*E) **T) *Scalar[E, T] {
	return &Scalar[E, T]{meta: meta[E]{name: name, xmlName: xmlName}, codec: codec, ptr: ptr}
}

// Text declares the element's direct textual content.
func Text[E, T any](name string, codec coerce.Codec[T], ptr func(*E) **T) *Scalar[E, T] {
	return &Scalar[E, T]{meta: meta[E]{name: name}, text: true, codec: codec, ptr: ptr}
}

// Require marks the field mandatory.
func (s *Scalar[E, T]) Require() *Scalar[E, T] {
	s.required = true
	return s
}

// Rule adds a check run on present values at validation time.
func (s *Scalar[E, T]) Rule(rule func(T) error) *Scalar[E, T] {
	s.rules = append(s.rules, rule)
	return s
}

func (s *Scalar[E, T]) assign(e *E, tag string, v any) error {
	t, err := s.codec.Convert(v)
	if err != nil {
		return s.mismatch(tag, s.codec.Expected, v)
	}
	// Empty text content does not survive markup, so it is stored as absent.
	if s.text {
		if str, err := s.codec.Format(t); err == nil && str == "" {
			*s.ptr(e) = nil
			return nil
		}
	}
	*s.ptr(e) = &t
	return nil
}

func (s *Scalar[E, T]) decode(e *E, b *Base, tag string, src node.Element) error {
	var raw string
	if s.text {
		raw = src.Text()
	} else {
		v, ok := src.Attr(s.xmlName)
		if !ok {
			return nil
		}
		raw = v
	}
	if s.text && raw == "" {
		return nil
	}
	t, err := s.codec.Parse(raw)
	if err != nil {
		b.record(s.name, raw, err)
		if logging.Enabled(logging.LevelDebug) {
			logging.ValueDeferred(tag, s.label(), raw, err)
		}
		return nil
	}
	*s.ptr(e) = &t
	return nil
}

func (s *Scalar[E, T]) check(e *E, b *Base, tag string, r *validation.Report) bool {
	v := *s.ptr(e)
	if v == nil {
		if d, ok := b.deferred[s.name]; ok {
			return r.Add(errors.NewInvalid(tag, e, s.label(), d.raw, s.codec.Expected, d.err))
		}
		if s.required {
			return r.Add(errors.NewRequired(tag, e, s.label(), s.codec.Expected))
		}
		return false
	}
	for _, rule := range s.rules {
		if err := rule(*v); err != nil {
			if r.Add(errors.NewInvalid(tag, e, s.label(), *v, s.codec.Expected, err)) {
				return true
			}
		}
	}
	return false
}

func (s *Scalar[E, T]) attr(e *E) (node.Attr, bool, error) {
	if s.text {
		return node.Attr{}, false, nil
	}
	v := *s.ptr(e)
	if v == nil {
		return node.Attr{}, false, nil
	}
	str, err := s.codec.Format(*v)
	if err != nil {
		return node.Attr{}, false, err
	}
	return node.Attr{Name: s.xmlName, Value: str}, true, nil
}

func (s *Scalar[E, T]) fill(e *E, el node.Element, _ node.Factory) error {
	if !s.text {
		return nil
	}
	v := *s.ptr(e)
	if v == nil {
		return nil
	}
	str, err := s.codec.Format(*v)
	if err != nil {
		return err
	}
	el.SetText(str)
	return nil
}

// EnumField is an extensible enumeration attribute.
type EnumField[E any, T ~string] struct {
	meta[E]
	set *enum.Set[T]
	ptr func(*E) *enum.Value[T]
}

// Enum declares an optional enumerated attribute named xmlName.
func Enum[E any, T ~string](name, xmlName string, set *enum.Set[T], ptr func(*E) *enum.Value[T]) *EnumField[E, T] {
	return &EnumField[E, T]{meta: meta[E]{name: name, xmlName: xmlName}, set: set, ptr: ptr}
}

// Require marks the attribute mandatory.
func (f *EnumField[E, T]) Require() *EnumField[E, T] {
	f.required = true
	return f
}

func (f *EnumField[E, T]) assign(e *E, tag string, v any) error {
	val, err := f.set.Convert(v)
	if err != nil {
		return f.mismatch(tag, f.set.Name(), v)
	}
	*f.ptr(e) = val
	return nil
}

func (f *EnumField[E, T]) decode(e *E, b *Base, tag string, src node.Element) error {
	if raw, ok := src.Attr(f.xmlName); ok {
		*f.ptr(e) = f.set.Decode(raw)
	}
	return nil
}

func (f *EnumField[E, T]) check(e *E, _ *Base, tag string, r *validation.Report) bool {
	v := *f.ptr(e)
	if v.IsZero() {
		if f.required {
			return r.Add(errors.NewRequired(tag, e, f.label(), f.set.Expected()))
		}
		return false
	}
	if err := f.set.Check(v); err != nil {
		return r.Add(errors.NewInvalid(tag, e, f.label(), v.String(), f.set.Expected(), err))
	}
	return false
}

func (f *EnumField[E, T]) attr(e *E) (node.Attr, bool, error) {
	v := *f.ptr(e)
	if v.IsZero() {
		return node.Attr{}, false, nil
	}
	str, err := coerce.Stringify(v)
	if err != nil {
		return node.Attr{}, false, err
	}
	return node.Attr{Name: f.xmlName, Value: str}, true, nil
}

// Decoder builds a child entity of type C from an element with the given
// tag.
type Decoder[C any] struct {
	Tag    string
	Decode func(node.Element) (C, error)
}

// Decode adapts an entity constructor to a Decoder producing C. D must be
// assignable to C, which lets one list hold a union of entity types.
func Decode[C, D Entity](tag string, build func(node.Element, Values) (D, error)) Decoder[C] {
	return Decoder[C]{Tag: tag, Decode: func(n node.Element) (C, error) {
		var zero C
		d, err := build(n, nil)
		if err != nil {
			return zero, err
		}
		c, ok := any(d).(C)
		if !ok {
			return zero, fmt.Errorf("%w: %T is not %T", errors.ErrType, d, zero)
		}
		return c, nil
	}}
}

func findDecoder[C any](decoders []Decoder[C], tag string) (Decoder[C], bool) {
	for _, d := range decoders {
		if d.Tag == tag {
			return d, true
		}
	}
	return Decoder[C]{}, false
}

// List is an ordered list of child entities dispatched by child tag.
type List[E any, C Entity] struct {
	meta[E]
	decoders []Decoder[C]
	ptr      func(*E) *[]C
}

// Elements declares an ordered list of children. Each child element is
// decoded by the decoder registered for its tag.
func Elements[E any, C Entity](name string, ptr func(*E) *[]C, decoders ...Decoder[C]) *List[E, C] {
	return &List[E, C]{meta: meta[E]{name: name}, decoders: decoders, ptr: ptr}
}

// Require marks the list as needing at least one child.
func (l *List[E, C]) Require() *List[E, C] {
	l.required = true
	return l
}

func (l *List[E, C]) claims(tag string) bool {
	_, ok := findDecoder(l.decoders, tag)
	return ok
}

func (l *List[E, C]) assign(e *E, tag string, v any) error {
	list, ok := v.([]C)
	if !ok {
		return l.mismatch(tag, fmt.Sprintf("%T", list), v)
	}
	*l.ptr(e) = append([]C(nil), list...)
	return nil
}

func (l *List[E, C]) decode(e *E, _ *Base, _ string, src node.Element) error {
	var out []C
	for _, child := range src.Children() {
		d, ok := findDecoder(l.decoders, child.Tag())
		if !ok {
			continue
		}
		c, err := d.Decode(child)
		if err != nil {
			return err
		}
		out = append(out, c)
	}
	*l.ptr(e) = out
	return nil
}

func (l *List[E, C]) check(e *E, _ *Base, tag string, r *validation.Report) bool {
	list := *l.ptr(e)
	if len(list) == 0 && l.required {
		return r.Add(errors.NewRequired(tag, e, l.name, l.expected()))
	}
	for _, c := range list {
		if isNil(c) {
			if r.Add(errors.NewInvalid(tag, e, l.name, nil, l.expected(), nil)) {
				return true
			}
		}
	}
	return false
}

func (l *List[E, C]) expected() string {
	tags := make([]string, len(l.decoders))
	for i, d := range l.decoders {
		tags[i] = "<" + d.Tag + ">"
	}
	return fmt.Sprintf("list of %v", tags)
}

func (l *List[E, C]) children(e *E) []Entity {
	var out []Entity
	for _, c := range *l.ptr(e) {
		if !isNil(c) {
			out = append(out, c)
		}
	}
	return out
}

func (l *List[E, C]) fill(e *E, el node.Element, f node.Factory) error {
	for _, c := range l.children(e) {
		if err := appendRendered(el, c, f); err != nil {
			return err
		}
	}
	return nil
}

// Single is one optional or required child entity.
type Single[E any, C Entity] struct {
	meta[E]
	decoders []Decoder[C]
	ptr      func(*E) *C
}

// One declares a single child. Alternatives declare other elements that may
// take its place, as in a choice between <internal-file> and
// <external-file>. A second matching child element is a structural error.
func One[E any, C Entity](name string, ptr func(*E) *C, decoder Decoder[C], alternatives ...Decoder[C]) *Single[E, C] {
	decoders := append([]Decoder[C]{decoder}, alternatives...)
	return &Single[E, C]{meta: meta[E]{name: name}, decoders: decoders, ptr: ptr}
}

// Require marks the child mandatory.
func (s *Single[E, C]) Require() *Single[E, C] {
	s.required = true
	return s
}

func (s *Single[E, C]) claims(tag string) bool {
	_, ok := findDecoder(s.decoders, tag)
	return ok
}

func (s *Single[E, C]) expected() string {
	tags := make([]string, len(s.decoders))
	for i, d := range s.decoders {
		tags[i] = "<" + d.Tag + ">"
	}
	return strings.Join(tags, " or ")
}

func (s *Single[E, C]) assign(e *E, tag string, v any) error {
	c, ok := v.(C)
	if !ok {
		return s.mismatch(tag, s.expected(), v)
	}
	*s.ptr(e) = c
	return nil
}

func (s *Single[E, C]) decode(e *E, _ *Base, tag string, src node.Element) error {
	seen := false
	for _, child := range src.Children() {
		d, ok := findDecoder(s.decoders, child.Tag())
		if !ok {
			continue
		}
		if seen {
			return &errors.UnexpectedElementError{Parent: tag, Child: child.Tag()}
		}
		seen = true
		c, err := d.Decode(child)
		if err != nil {
			return err
		}
		*s.ptr(e) = c
	}
	return nil
}

func (s *Single[E, C]) check(e *E, _ *Base, tag string, r *validation.Report) bool {
	if s.required && isNil(*s.ptr(e)) {
		return r.Add(errors.NewRequired(tag, e, s.name, s.expected()))
	}
	return false
}

func (s *Single[E, C]) children(e *E) []Entity {
	c := *s.ptr(e)
	if isNil(c) {
		return nil
	}
	return []Entity{c}
}

func (s *Single[E, C]) fill(e *E, el node.Element, f node.Factory) error {
	for _, c := range s.children(e) {
		if err := appendRendered(el, c, f); err != nil {
			return err
		}
	}
	return nil
}

func appendRendered(parent node.Element, child Entity, f node.Factory) error {
	n, err := child.Render(f)
	if err != nil {
		return err
	}
	return parent.Append(n)
}
