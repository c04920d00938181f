package xml

import (
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/FocuswithJustin/xliffkit/core/errors"
	"github.com/FocuswithJustin/xliffkit/core/node"
)

// Element adapts an xmlquery element node to node.Element. xmlquery keeps
// character data as sibling text nodes; Text and Tail map onto the text
// nodes before the first child element and after the element respectively.
type Element struct {
	n    *xmlquery.Node
	tail string // tail set while detached, attached on Append
}

var _ node.Element = (*Element)(nil)

// NewElement is a node.Factory producing detached xmlquery elements.
func NewElement(tag string, attrs []node.Attr) node.Element {
	n := &xmlquery.Node{Type: xmlquery.ElementNode}
	if i := strings.IndexByte(tag, ':'); i > 0 {
		n.Prefix, n.Data = tag[:i], tag[i+1:]
	} else {
		n.Data = tag
	}
	for _, a := range attrs {
		xmlquery.AddAttr(n, a.Name, a.Value)
	}
	return &Element{n: n}
}

// Wrap adapts an existing xmlquery element node.
func Wrap(n *xmlquery.Node) *Element {
	return &Element{n: n}
}

// Node returns the underlying xmlquery node.
func (e *Element) Node() *xmlquery.Node { return e.n }

func (e *Element) Tag() string { return elementName(e.n) }

// Text returns the character data before the first child element.
func (e *Element) Text() string {
	var b strings.Builder
	for c := e.n.FirstChild; c != nil && c.Type != xmlquery.ElementNode; c = c.NextSibling {
		if isText(c) {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// SetText replaces the character data before the first child element.
func (e *Element) SetText(text string) {
	for c := e.n.FirstChild; c != nil && c.Type != xmlquery.ElementNode; {
		next := c.NextSibling
		if isText(c) {
			detach(c)
		}
		c = next
	}
	if text != "" {
		prependChild(e.n, textNode(text))
	}
}

// Tail returns the character data between this element and the next
// sibling element.
func (e *Element) Tail() string {
	if e.n.Parent == nil {
		return e.tail
	}
	var b strings.Builder
	for c := e.n.NextSibling; c != nil && c.Type != xmlquery.ElementNode; c = c.NextSibling {
		if isText(c) {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// SetTail replaces the trailing character data.
func (e *Element) SetTail(tail string) {
	if e.n.Parent == nil {
		e.tail = tail
		return
	}
	for c := e.n.NextSibling; c != nil && c.Type != xmlquery.ElementNode; {
		next := c.NextSibling
		if isText(c) {
			detach(c)
		}
		c = next
	}
	if tail != "" {
		insertAfter(e.n, textNode(tail))
	}
}

// Attr returns the named attribute in prefixed form.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.n.Attr {
		if attrName(a) == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs returns the attributes in document order.
func (e *Element) Attrs() []node.Attr {
	out := make([]node.Attr, 0, len(e.n.Attr))
	for _, a := range e.n.Attr {
		out = append(out, node.Attr{Name: attrName(a), Value: a.Value})
	}
	return out
}

// Children returns the child elements in document order.
func (e *Element) Children() []node.Element {
	var out []node.Element
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			out = append(out, &Element{n: c})
		}
	}
	return out
}

// Append adds child as the last child element, followed by its tail.
func (e *Element) Append(child node.Element) error {
	c, ok := child.(*Element)
	if !ok {
		return errors.NewUnsupported(fmt.Sprintf("child %T", child), "xmlquery elements only accept *xml.Element children")
	}
	if c.n.Parent != nil {
		return errors.NewUnsupported("append", "element is already attached")
	}
	xmlquery.AddChild(e.n, c.n)
	c.flushTail()
	return nil
}

// OutputXML serializes the element and its subtree.
func (e *Element) OutputXML() string {
	return e.n.OutputXML(true)
}

func (e *Element) flushTail() {
	if e.tail != "" && e.n.Parent != nil {
		insertAfter(e.n, textNode(e.tail))
		e.tail = ""
	}
}

func textNode(s string) *xmlquery.Node {
	return &xmlquery.Node{Type: xmlquery.TextNode, Data: s}
}

func prependChild(parent, n *xmlquery.Node) {
	first := parent.FirstChild
	if first == nil {
		xmlquery.AddChild(parent, n)
		return
	}
	n.Parent = parent
	n.PrevSibling = nil
	n.NextSibling = first
	first.PrevSibling = n
	parent.FirstChild = n
}

func insertAfter(prev, n *xmlquery.Node) {
	parent := prev.Parent
	n.Parent = parent
	n.PrevSibling = prev
	n.NextSibling = prev.NextSibling
	if prev.NextSibling != nil {
		prev.NextSibling.PrevSibling = n
	} else if parent != nil {
		parent.LastChild = n
	}
	prev.NextSibling = n
}

func detach(n *xmlquery.Node) {
	if n.PrevSibling != nil {
		n.PrevSibling.NextSibling = n.NextSibling
	} else if n.Parent != nil {
		n.Parent.FirstChild = n.NextSibling
	}
	if n.NextSibling != nil {
		n.NextSibling.PrevSibling = n.PrevSibling
	} else if n.Parent != nil {
		n.Parent.LastChild = n.PrevSibling
	}
	n.Parent, n.PrevSibling, n.NextSibling = nil, nil, nil
}
