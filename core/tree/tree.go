// Package tree provides a small in-memory element tree with ElementTree-style
// text and tail placement, parsed and written with encoding/xml.
//
// It is the library-free implementation of the node contract. Documents are
// decoded with RawToken so prefixes are kept as written ("xml:lang"), and the
// decoder's entity map is emptied so no entity expansion takes place.
package tree

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/FocuswithJustin/xliffkit/core/encoding"
	"github.com/FocuswithJustin/xliffkit/core/errors"
	"github.com/FocuswithJustin/xliffkit/core/node"
)

// Element is a single element with its attributes, text, tail and children.
type Element struct {
	tag      string
	attrs    []node.Attr
	text     string
	tail     string
	children []*Element
}

// WriteOptions controls serialization.
type WriteOptions struct {
	Declaration bool // Emit an <?xml version="1.0" encoding="UTF-8"?> header
}

var _ node.Element = (*Element)(nil)

// New is a node.Factory producing detached *Element values.
func New(tag string, attrs []node.Attr) node.Element {
	return NewElement(tag, attrs...)
}

// NewElement creates a detached element. The attribute slice is copied.
func NewElement(tag string, attrs ...node.Attr) *Element {
	el := &Element{tag: tag}
	if len(attrs) > 0 {
		el.attrs = append([]node.Attr(nil), attrs...)
	}
	return el
}

func (e *Element) Tag() string         { return e.tag }
func (e *Element) Text() string        { return e.text }
func (e *Element) SetText(text string) { e.text = text }
func (e *Element) Tail() string        { return e.tail }
func (e *Element) SetTail(tail string) { e.tail = tail }

// Attr returns the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	return node.Lookup(e.attrs, name)
}

// Attrs returns a copy of the attributes in document order.
func (e *Element) Attrs() []node.Attr {
	return append([]node.Attr(nil), e.attrs...)
}

// SetAttr replaces or appends an attribute.
func (e *Element) SetAttr(name, value string) {
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, node.Attr{Name: name, Value: value})
}

// Children returns the child elements in document order.
func (e *Element) Children() []node.Element {
	out := make([]node.Element, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

// Elements returns the concrete child elements.
func (e *Element) Elements() []*Element {
	return e.children
}

// Append adds child as the last child element. Only *Element children are
// accepted.
func (e *Element) Append(child node.Element) error {
	c, ok := child.(*Element)
	if !ok {
		return errors.NewUnsupported(fmt.Sprintf("child %T", child), "tree elements only accept *tree.Element children")
	}
	e.children = append(e.children, c)
	return nil
}

// String serializes the element without declaration.
func (e *Element) String() string {
	var buf bytes.Buffer
	_ = Write(&buf, e, WriteOptions{})
	return buf.String()
}

// Parse reads a single-rooted document.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	dec.Entity = map[string]string{}

	var root *Element
	var stack []*Element
	for {
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &errors.ParseError{Format: "XML", Message: err.Error(), Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{tag: qualified(t.Name)}
			for _, a := range t.Attr {
				el.attrs = append(el.attrs, node.Attr{Name: qualified(a.Name), Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.NewParse("XML", "", "multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			name := qualified(t.Name)
			if len(stack) == 0 || stack[len(stack)-1].tag != name {
				return nil, errors.NewParse("XML", "", fmt.Sprintf("unexpected end element </%s>", name))
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(t)) != "" {
					return nil, errors.NewParse("XML", "", "character data outside the root element")
				}
				continue
			}
			top := stack[len(stack)-1]
			if n := len(top.children); n > 0 {
				top.children[n-1].tail += string(t)
			} else {
				top.text += string(t)
			}
		}
	}

	if len(stack) > 0 {
		return nil, errors.NewParse("XML", "", fmt.Sprintf("unclosed element <%s>", stack[len(stack)-1].tag))
	}
	if root == nil {
		return nil, errors.NewParse("XML", "", "no root element")
	}
	return root, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Element, error) {
	return Parse(strings.NewReader(s))
}

// Write serializes el and its subtree. The tail of el itself is not written.
func Write(w io.Writer, el *Element, opts WriteOptions) error {
	bw := bufio.NewWriter(w)
	if opts.Declaration {
		bw.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	}
	writeElement(bw, el)
	return bw.Flush()
}

func writeElement(w *bufio.Writer, el *Element) {
	w.WriteString("<")
	w.WriteString(el.tag)
	for _, a := range el.attrs {
		w.WriteString(" ")
		w.WriteString(a.Name)
		w.WriteString(`="`)
		w.WriteString(encoding.EscapeXMLAttr(a.Value))
		w.WriteString(`"`)
	}
	if el.text == "" && len(el.children) == 0 {
		w.WriteString("/>")
		return
	}
	w.WriteString(">")
	w.WriteString(encoding.EscapeXMLText(el.text))
	for _, c := range el.children {
		writeElement(w, c)
		w.WriteString(encoding.EscapeXMLText(c.tail))
	}
	w.WriteString("</")
	w.WriteString(el.tag)
	w.WriteString(">")
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
