package schema

import (
	"strings"

	"github.com/FocuswithJustin/xliffkit/core/errors"
	"github.com/FocuswithJustin/xliffkit/core/node"
	"github.com/FocuswithJustin/xliffkit/internal/validation"
)

// Extension is a verbatim copy of an element from another vocabulary, kept
// so documents carrying tool extensions survive a round trip.
type Extension struct {
	Tag      string
	Attrs    []node.Attr
	Text     string
	Tail     string // text after the element inside its parent extension
	Children []*Extension
}

// IsForeign reports whether tag carries a namespace prefix other than the
// reserved "xml" one.
func IsForeign(tag string) bool {
	i := strings.IndexByte(tag, ':')
	return i > 0 && tag[:i] != "xml"
}

// CopyExtension snapshots n and its subtree. The tail of n itself is not
// kept.
func CopyExtension(n node.Element) *Extension {
	x := &Extension{Tag: n.Tag(), Text: n.Text()}
	if attrs := n.Attrs(); len(attrs) > 0 {
		x.Attrs = attrs
	}
	for _, c := range n.Children() {
		cx := CopyExtension(c)
		cx.Tail = c.Tail()
		x.Children = append(x.Children, cx)
	}
	return x
}

// Render writes the copy and its subtree through f.
func (x *Extension) Render(f node.Factory) (node.Element, error) {
	el := f(x.Tag, x.Attrs)
	if x.Text != "" {
		el.SetText(x.Text)
	}
	for _, c := range x.Children {
		if c == nil {
			continue
		}
		n, err := c.Render(f)
		if err != nil {
			return nil, err
		}
		if err := el.Append(n); err != nil {
			return nil, err
		}
		if c.Tail != "" {
			n.SetTail(c.Tail)
		}
	}
	return el, nil
}

// ExtensionList holds the foreign child elements of an entity in document
// order.
type ExtensionList[E any] struct {
	meta[E]
	all bool
	ptr func(*E) *[]*Extension
}

// Extensions declares a list of foreign elements. By default it claims
// prefixed child elements only.
func Extensions[E any](name string, ptr func(*E) *[]*Extension) *ExtensionList[E] {
	return &ExtensionList[E]{meta: meta[E]{name: name}, ptr: ptr}
}

// Any makes the list claim every child element. It is meant for elements
// whose whole content is foreign, such as <tool>.
func (l *ExtensionList[E]) Any() *ExtensionList[E] {
	l.all = true
	return l
}

func (l *ExtensionList[E]) claims(tag string) bool {
	return l.all || IsForeign(tag)
}

func (l *ExtensionList[E]) assign(e *E, tag string, v any) error {
	list, ok := v.([]*Extension)
	if !ok {
		return l.mismatch(tag, "[]*schema.Extension", v)
	}
	*l.ptr(e) = append([]*Extension(nil), list...)
	return nil
}

func (l *ExtensionList[E]) decode(e *E, _ *Base, _ string, src node.Element) error {
	var out []*Extension
	for _, child := range src.Children() {
		if l.claims(child.Tag()) {
			out = append(out, CopyExtension(child))
		}
	}
	*l.ptr(e) = out
	return nil
}

func (l *ExtensionList[E]) check(e *E, _ *Base, tag string, r *validation.Report) bool {
	for _, x := range *l.ptr(e) {
		if x == nil || x.Tag == "" {
			if r.Add(errors.NewInvalid(tag, e, l.name, nil, "foreign element", nil)) {
				return true
			}
		}
	}
	return false
}

func (l *ExtensionList[E]) fill(e *E, el node.Element, f node.Factory) error {
	for _, x := range *l.ptr(e) {
		if x == nil || x.Tag == "" {
			continue
		}
		n, err := x.Render(f)
		if err != nil {
			return err
		}
		if err := el.Append(n); err != nil {
			return err
		}
	}
	return nil
}

// NamespaceList holds the prefixed namespace declarations ("xmlns:its") of
// an element so foreign content keeps its bindings when rendered.
type NamespaceList[E any] struct {
	meta[E]
	ptr func(*E) *[]node.Attr
}

// Namespaces declares the prefixed namespace declarations of an element.
func Namespaces[E any](name string, ptr func(*E) *[]node.Attr) *NamespaceList[E] {
	return &NamespaceList[E]{meta: meta[E]{name: name}, ptr: ptr}
}

func isNamespaceDecl(name string) bool {
	return strings.HasPrefix(name, "xmlns:")
}

func (l *NamespaceList[E]) assign(e *E, tag string, v any) error {
	list, ok := v.([]node.Attr)
	if !ok {
		return l.mismatch(tag, "[]node.Attr", v)
	}
	for _, a := range list {
		if !isNamespaceDecl(a.Name) {
			return l.mismatch(tag, "xmlns:* declarations", v)
		}
	}
	*l.ptr(e) = append([]node.Attr(nil), list...)
	return nil
}

func (l *NamespaceList[E]) decode(e *E, _ *Base, _ string, src node.Element) error {
	var out []node.Attr
	for _, a := range src.Attrs() {
		if isNamespaceDecl(a.Name) {
			out = append(out, a)
		}
	}
	*l.ptr(e) = out
	return nil
}

func (l *NamespaceList[E]) attrList(e *E) []node.Attr {
	return *l.ptr(e)
}

// attrLister is implemented by fields rendering several attributes.
type attrLister[E any] interface {
	attrList(e *E) []node.Attr
}
