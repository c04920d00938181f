// Package schema binds Go structs to markup elements through declarative,
// ordered field tables.
//
// A Schema is built once per entity type and shared by all instances. It
// drives every operation on the entity:
//
//   - Build fills an entity from a source node, explicit Values, or both.
//     Explicit values win over the node, the node wins over absence.
//   - Validate checks required values, enumerations, deferred conversion
//     failures and per-field rules, optionally recursing into children and
//     optionally gathering every failure.
//   - Render writes the entity through a node.Factory; ToNode validates
//     first.
//
// Construction fails only for structural problems (wrong tag, unexpected
// child element) and for explicit values of the wrong host type. Everything
// that depends on document data is reported by Validate.
package schema

import (
	"fmt"
	"reflect"

	"github.com/FocuswithJustin/xliffkit/core/errors"
	"github.com/FocuswithJustin/xliffkit/core/node"
	"github.com/FocuswithJustin/xliffkit/internal/logging"
	"github.com/FocuswithJustin/xliffkit/internal/validation"
)

// Entity is a typed object bound to one markup element.
type Entity interface {
	// Tag returns the element name.
	Tag() string
	// Validate checks the entity. With recurse set, children are checked as
	// well. Without gatherAll the first failure is returned as a
	// *errors.ValidationError; with it, all failures are returned as one
	// errors.ValidationErrors.
	Validate(recurse, gatherAll bool) error
	// Render writes the entity and its subtree without validating.
	Render(f node.Factory) (node.Element, error)
}

// Values holds explicit field values keyed by field name. A nil value counts
// as not supplied.
type Values map[string]any

// Base is embedded by every entity. It records markup literals that could not
// be converted while building, so Validate can report them with the
// offending text.
type Base struct {
	deferred map[string]deferred
}

type deferred struct {
	raw string
	err error
}

func (b *Base) schemaBase() *Base { return b }

// Deferred returns the raw literal of field when it failed conversion.
func (b *Base) Deferred(field string) (string, bool) {
	d, ok := b.deferred[field]
	return d.raw, ok
}

func (b *Base) record(field, raw string, err error) {
	if b.deferred == nil {
		b.deferred = make(map[string]deferred)
	}
	b.deferred[field] = deferred{raw: raw, err: err}
}

type baser interface{ schemaBase() *Base }

// Schema is the ordered field table of entity type E.
type Schema[E any] struct {
	tag    string
	fields []Field[E]
	byName map[string]Field[E]
}

// New declares the schema of E. E must embed Base; field names must be
// unique.
func New[E any](tag string, fields ...Field[E]) *Schema[E] {
	var zero E
	if _, ok := any(&zero).(baser); !ok {
		panic(fmt.Sprintf("schema: %T does not embed schema.Base", zero))
	}
	s := &Schema[E]{tag: tag, fields: fields, byName: make(map[string]Field[E], len(fields))}
	for _, f := range fields {
		if _, dup := s.byName[f.Name()]; dup {
			panic(fmt.Sprintf("schema: duplicate field %q in <%s>", f.Name(), tag))
		}
		s.byName[f.Name()] = f
	}
	return s
}

// Tag returns the element name.
func (s *Schema[E]) Tag() string { return s.tag }

// Fields returns the fields in declaration order.
func (s *Schema[E]) Fields() []Field[E] {
	return append([]Field[E](nil), s.fields...)
}

// Field looks up a field by name.
func (s *Schema[E]) Field(name string) (Field[E], bool) {
	f, ok := s.byName[name]
	return f, ok
}

// AttributeMap returns field name to attribute name for every attribute
// field.
func (s *Schema[E]) AttributeMap() map[string]string {
	m := make(map[string]string)
	for _, f := range s.fields {
		if f.XMLName() != "" {
			m[f.Name()] = f.XMLName()
		}
	}
	return m
}

// Make allocates and builds a new E.
func (s *Schema[E]) Make(src node.Element, vals Values) (*E, error) {
	e := new(E)
	if err := s.Build(e, src, vals); err != nil {
		return nil, err
	}
	return e, nil
}

// Build fills e from src and vals. A nil src builds from vals alone.
func (s *Schema[E]) Build(e *E, src node.Element, vals Values) error {
	if src != nil && src.Tag() != s.tag {
		return &errors.TagMismatchError{Expected: s.tag, Got: src.Tag()}
	}
	for name := range vals {
		if _, ok := s.byName[name]; !ok {
			return &errors.UnknownFieldError{Tag: s.tag, Field: name}
		}
	}
	if src != nil {
		for _, child := range src.Children() {
			if !s.claims(child.Tag()) {
				return &errors.UnexpectedElementError{Parent: s.tag, Child: child.Tag()}
			}
		}
	}

	b := baseOf(e)
	b.deferred = nil
	explicit := 0
	for _, f := range s.fields {
		if v, ok := vals[f.Name()]; ok && v != nil {
			if err := f.assign(e, s.tag, v); err != nil {
				return err
			}
			explicit++
			continue
		}
		if src != nil {
			if err := f.decode(e, b, s.tag, src); err != nil {
				return err
			}
		}
	}
	logging.EntityBuilt(s.tag, src != nil, explicit)
	return nil
}

func (s *Schema[E]) claims(tag string) bool {
	for _, f := range s.fields {
		if f.claims(tag) {
			return true
		}
	}
	return false
}

// Validate checks e against the schema.
func (s *Schema[E]) Validate(e *E, recurse, gatherAll bool) error {
	r := validation.New(validation.ModeFor(gatherAll))
	b := baseOf(e)
	for _, f := range s.fields {
		if f.check(e, b, s.tag, r) {
			break
		}
	}
	if recurse && !r.Stopped() {
	children:
		for _, f := range s.fields {
			for _, child := range f.children(e) {
				if r.Merge(child.Validate(true, gatherAll)) {
					break children
				}
			}
		}
	}
	err := r.Err()
	if err != nil {
		logging.ValidationFailed(s.tag, r.Len(), gatherAll)
	}
	return err
}

// Render writes e through f without validating. Absent attributes are
// omitted; children follow in field order.
func (s *Schema[E]) Render(e *E, f node.Factory) (node.Element, error) {
	var attrs []node.Attr
	for _, fd := range s.fields {
		if l, ok := fd.(attrLister[E]); ok {
			attrs = append(attrs, l.attrList(e)...)
			continue
		}
		a, ok, err := fd.attr(e)
		if err != nil {
			return nil, errors.Wrapf(err, "render <%s> %s", s.tag, fd.Name())
		}
		if ok {
			attrs = append(attrs, a)
		}
	}
	el := f(s.tag, attrs)
	for _, fd := range s.fields {
		if err := fd.fill(e, el, f); err != nil {
			return nil, errors.Wrapf(err, "render <%s> %s", s.tag, fd.Name())
		}
	}
	return el, nil
}

// ToNode validates e and its subtree in fail-fast mode, then renders it.
func (s *Schema[E]) ToNode(e *E, f node.Factory) (node.Element, error) {
	if err := s.Validate(e, true, false); err != nil {
		return nil, err
	}
	return s.Render(e, f)
}

func baseOf[E any](e *E) *Base {
	return any(e).(baser).schemaBase()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
