package schema

import (
	"strings"

	"github.com/FocuswithJustin/xliffkit/core/errors"
	"github.com/FocuswithJustin/xliffkit/core/node"
	"github.com/FocuswithJustin/xliffkit/internal/validation"
)

// Part is one run of mixed content: either text or an inline entity.
type Part struct {
	Text string
	Code Entity
}

// TextPart returns a text run.
func TextPart(s string) Part { return Part{Text: s} }

// CodePart returns an inline entity run.
func CodePart(e Entity) Part { return Part{Code: e} }

// IsCode reports whether the part holds an inline entity.
func (p Part) IsCode() bool { return p.Code != nil }

// Content is ordered mixed content. The order of text runs and inline
// entities is significant and is preserved by parsing and rendering.
type Content []Part

// Text returns the concatenated text runs, without inline entities.
func (c Content) Text() string {
	var b strings.Builder
	for _, p := range c {
		if !p.IsCode() {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}

// Codes returns the inline entities in order.
func (c Content) Codes() []Entity {
	var out []Entity
	for _, p := range c {
		if p.IsCode() && !isNil(p.Code) {
			out = append(out, p.Code)
		}
	}
	return out
}

// Lookup resolves the decoder of an inline child element.
type Lookup func(tag string) (Decoder[Entity], bool)

// ParseContent reads the text of src, then each child followed by its tail,
// in document order. Empty text runs are dropped. A child with no decoder is
// a structural error.
func ParseContent(src node.Element, lookup Lookup) (Content, error) {
	var out Content
	if t := src.Text(); t != "" {
		out = append(out, TextPart(t))
	}
	for _, child := range src.Children() {
		d, ok := lookup(child.Tag())
		if !ok {
			return nil, &errors.UnexpectedElementError{Parent: src.Tag(), Child: child.Tag()}
		}
		code, err := d.Decode(child)
		if err != nil {
			return nil, err
		}
		out = append(out, CodePart(code))
		if t := child.Tail(); t != "" {
			out = append(out, TextPart(t))
		}
	}
	return out, nil
}

// RenderContent writes c into el: leading text as el's text, then each
// inline entity followed by the text runs up to the next one as its tail.
func RenderContent(el node.Element, c Content, f node.Factory) error {
	var pending strings.Builder
	var last node.Element
	flush := func() {
		if last == nil {
			el.SetText(pending.String())
		} else {
			last.SetTail(pending.String())
		}
		pending.Reset()
	}
	for _, p := range c {
		if !p.IsCode() {
			pending.WriteString(p.Text)
			continue
		}
		if isNil(p.Code) {
			continue
		}
		n, err := p.Code.Render(f)
		if err != nil {
			return err
		}
		flush()
		if err := el.Append(n); err != nil {
			return err
		}
		last = n
	}
	if pending.Len() > 0 || last == nil {
		flush()
	}
	return nil
}

// MixedField holds ordered mixed content.
type MixedField[E any] struct {
	meta[E]
	lookup Lookup
	ptr    func(*E) *Content
}

// Mixed declares mixed content whose inline children are resolved through
// lookup.
func Mixed[E any](name string, ptr func(*E) *Content, lookup Lookup) *MixedField[E] {
	return &MixedField[E]{meta: meta[E]{name: name}, lookup: lookup, ptr: ptr}
}

// Require marks the content as mandatory.
func (m *MixedField[E]) Require() *MixedField[E] {
	m.required = true
	return m
}

func (m *MixedField[E]) claims(tag string) bool {
	_, ok := m.lookup(tag)
	return ok
}

func (m *MixedField[E]) assign(e *E, tag string, v any) error {
	switch x := v.(type) {
	case Content:
		*m.ptr(e) = append(Content(nil), x...)
	case []Part:
		*m.ptr(e) = append(Content(nil), x...)
	case string:
		*m.ptr(e) = nil
		if x != "" {
			*m.ptr(e) = Content{TextPart(x)}
		}
	default:
		return m.mismatch(tag, "mixed content or string", v)
	}
	return nil
}

func (m *MixedField[E]) decode(e *E, _ *Base, _ string, src node.Element) error {
	c, err := ParseContent(src, m.lookup)
	if err != nil {
		return err
	}
	*m.ptr(e) = c
	return nil
}

func (m *MixedField[E]) check(e *E, _ *Base, tag string, r *validation.Report) bool {
	if m.required && len(*m.ptr(e)) == 0 {
		return r.Add(errors.NewRequired(tag, e, m.name, "text or inline content"))
	}
	return false
}

func (m *MixedField[E]) children(e *E) []Entity {
	return (*m.ptr(e)).Codes()
}

func (m *MixedField[E]) fill(e *E, el node.Element, f node.Factory) error {
	return RenderContent(el, *m.ptr(e), f)
}
