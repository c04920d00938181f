package schema

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/FocuswithJustin/xliffkit/core/coerce"
	"github.com/FocuswithJustin/xliffkit/core/enum"
	"github.com/FocuswithJustin/xliffkit/core/errors"
	"github.com/FocuswithJustin/xliffkit/core/node"
	"github.com/FocuswithJustin/xliffkit/core/tree"
	"github.com/FocuswithJustin/xliffkit/core/xml"
)

type countType string

var countTypes = enum.NewSet[countType]("count-type", "num-usage", "repetition", "total")

// count is a leaf entity with required content and attributes.
type count struct {
	Base
	Content   *int
	CountType enum.Value[countType]
	Unit      *string
	Priority  *int
}

var countSchema = New[count]("count",
	Text("Content", coerce.Int, func(c *count) **int { return &c.Content }).Require(),
	Enum("CountType", "count-type", countTypes, func(c *count) *enum.Value[countType] { return &c.CountType }).Require(),
	Attr("Unit", "unit", coerce.String, func(c *count) **string { return &c.Unit }),
	Attr("Priority", "priority", coerce.Int, func(c *count) **int { return &c.Priority }).Rule(func(n int) error {
		if n < 1 || n > 10 {
			return fmt.Errorf("priority %d outside 1..10", n)
		}
		return nil
	}),
)

func newCount(src node.Element, vals Values) (*count, error) { return countSchema.Make(src, vals) }

func (c *count) Tag() string                                { return countSchema.Tag() }
func (c *count) Validate(recurse, gatherAll bool) error     { return countSchema.Validate(c, recurse, gatherAll) }
func (c *count) Render(f node.Factory) (node.Element, error) { return countSchema.Render(c, f) }
func (c *count) ToNode(f node.Factory) (node.Element, error) { return countSchema.ToNode(c, f) }

// group owns a list of counts.
type group struct {
	Base
	Name   *string
	Kind   enum.Value[countType]
	Counts []*count
}

var groupSchema = New[group]("count-group",
	Attr("Name", "name", coerce.String, func(g *group) **string { return &g.Name }).Require(),
	Enum("Kind", "kind", countTypes, func(g *group) *enum.Value[countType] { return &g.Kind }),
	Elements("Counts", func(g *group) *[]*count { return &g.Counts }, Decode[*count]("count", newCount)),
)

func newGroup(src node.Element, vals Values) (*group, error) { return groupSchema.Make(src, vals) }

func (g *group) Tag() string                                { return groupSchema.Tag() }
func (g *group) Validate(recurse, gatherAll bool) error     { return groupSchema.Validate(g, recurse, gatherAll) }
func (g *group) Render(f node.Factory) (node.Element, error) { return groupSchema.Render(g, f) }

// code is an inline placeholder; para holds mixed content.
type code struct {
	Base
	ID *string
}

var codeSchema = New[code]("x",
	Attr("ID", "id", coerce.String, func(c *code) **string { return &c.ID }).Require(),
)

func newCode(src node.Element, vals Values) (*code, error) { return codeSchema.Make(src, vals) }

func (c *code) Tag() string                                { return codeSchema.Tag() }
func (c *code) Validate(recurse, gatherAll bool) error     { return codeSchema.Validate(c, recurse, gatherAll) }
func (c *code) Render(f node.Factory) (node.Element, error) { return codeSchema.Render(c, f) }

type para struct {
	Base
	Lang    *string
	Content Content
}

var inline = []Decoder[Entity]{Decode[Entity]("x", newCode)}

var paraSchema = New[para]("source",
	Attr("Lang", "xml:lang", coerce.String, func(p *para) **string { return &p.Lang }),
	Mixed("Content", func(p *para) *Content { return &p.Content }, func(tag string) (Decoder[Entity], bool) {
		return findDecoder(inline, tag)
	}),
)

func (p *para) Tag() string                                { return paraSchema.Tag() }
func (p *para) Validate(recurse, gatherAll bool) error     { return paraSchema.Validate(p, recurse, gatherAll) }
func (p *para) Render(f node.Factory) (node.Element, error) { return paraSchema.Render(p, f) }

func mustParse(t *testing.T, s string) *tree.Element {
	t.Helper()
	el, err := tree.ParseString(s)
	if err != nil {
		t.Fatalf("ParseString(%q) failed: %v", s, err)
	}
	return el
}

func str(s string) *string { return &s }

// TestBuildFromNode verifies attributes and content are read from a node.
func TestBuildFromNode(t *testing.T) {
	c, err := newCount(mustParse(t, `<count count-type="total" unit="word">42</count>`), nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if c.Content == nil || *c.Content != 42 {
		t.Errorf("Content = %v, want 42", c.Content)
	}
	if m, ok := c.CountType.Member(); !ok || m != "total" {
		t.Errorf("CountType = %v", c.CountType)
	}
	if c.Unit == nil || *c.Unit != "word" {
		t.Errorf("Unit = %v", c.Unit)
	}
	if c.Priority != nil {
		t.Errorf("Priority = %v, want absent", *c.Priority)
	}
	if err := c.Validate(true, true); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

// TestBuildPrecedence verifies explicit values win over the node, and the
// node wins over absence.
func TestBuildPrecedence(t *testing.T) {
	src := mustParse(t, `<count count-type="total" unit="word">42</count>`)
	c, err := newCount(src, Values{"Unit": "page", "Priority": 3, "CountType": nil})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if *c.Unit != "page" {
		t.Errorf("Unit = %q, want explicit value", *c.Unit)
	}
	if *c.Content != 42 || c.CountType.String() != "total" {
		t.Errorf("node values lost: %v %v", *c.Content, c.CountType)
	}
	if *c.Priority != 3 {
		t.Errorf("Priority = %v, want 3", *c.Priority)
	}
	if v, _ := src.Attr("unit"); v != "word" {
		t.Errorf("source node was modified: unit=%q", v)
	}
}

// TestBuildFromValues verifies the nil node builds purely from values.
func TestBuildFromValues(t *testing.T) {
	c, err := newCount(nil, Values{"Content": 7, "CountType": countType("repetition")})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if *c.Content != 7 || !c.CountType.IsKnown() || c.Unit != nil {
		t.Errorf("unexpected entity: %+v", c)
	}
}

// TestBuildErrors verifies the failures raised immediately by construction.
func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		vals   Values
		target error
		as     any
	}{
		{"tag mismatch", `<note>42</note>`, nil, errors.ErrStructure, new(*errors.TagMismatchError)},
		{"unexpected child", `<count count-type="total">42<foo/></count>`, nil, errors.ErrStructure, new(*errors.UnexpectedElementError)},
		{"unknown field", "", Values{"Colour": "red"}, errors.ErrType, new(*errors.UnknownFieldError)},
		{"wrong content type", "", Values{"Content": "42"}, errors.ErrType, new(*errors.TypeMismatchError)},
		{"wrong enum type", "", Values{"CountType": 42}, errors.ErrType, new(*errors.TypeMismatchError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var src node.Element
			if tt.src != "" {
				src = mustParse(t, tt.src)
			}
			_, err := newCount(src, tt.vals)
			if !errors.Is(err, tt.target) {
				t.Fatalf("error = %v, want %v", err, tt.target)
			}
			if !errors.As(err, tt.as) {
				t.Errorf("error %T does not match %T", err, tt.as)
			}
		})
	}
}

// TestDeferredFailures verifies bad document data builds and fails only at
// validation, with the offending literal.
func TestDeferredFailures(t *testing.T) {
	c, err := newCount(mustParse(t, `<count count-type="words" priority="high">4x</count>`), nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if raw, ok := c.Deferred("Content"); !ok || raw != "4x" {
		t.Errorf("Deferred(Content) = %q, %v", raw, ok)
	}

	errs, ok := errors.AsValidationErrors(c.Validate(false, true))
	if !ok || len(errs) != 3 {
		t.Fatalf("Validate gathered %v, want 3 failures", errs)
	}
	if errs[0].Field != "Content" || errs[0].Value != "4x" {
		t.Errorf("first failure = %+v", errs[0])
	}
	if errs[1].Field != "count-type" || !errors.Is(errs[1], errors.ErrInvalidEnum) {
		t.Errorf("second failure = %+v", errs[1])
	}
	if errs[2].Field != "priority" || errs[2].Value != "high" {
		t.Errorf("third failure = %+v", errs[2])
	}

	// Fixing the field by mutation clears the deferred failure.
	c.Content = new(int)
	*c.Content = 4
	c.Priority = new(int)
	*c.Priority = 2
	c.CountType = enum.MustCustom[countType]("x-words")
	if err := c.Validate(false, false); err != nil {
		t.Errorf("Validate after fix = %v", err)
	}
}

// TestRequiredAndRules verifies missing values and rule violations.
func TestRequiredAndRules(t *testing.T) {
	c, _ := newCount(nil, Values{"Priority": 11})

	err := c.Validate(false, false)
	var ve *errors.ValidationError
	if !errors.As(err, &ve) || ve.Field != "Content" || !errors.Is(err, errors.ErrRequired) {
		t.Fatalf("fail-fast Validate = %v, want missing Content", err)
	}
	if ve.Entity != c {
		t.Error("failure does not name the failing entity")
	}

	errs, _ := errors.AsValidationErrors(c.Validate(false, true))
	var fields []string
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	if got := fmt.Sprint(fields); got != "[Content count-type priority]" {
		t.Errorf("gathered fields = %s", got)
	}
	if !errors.Is(errs[2], errors.ErrInvalidValue) || errs[2].Value != 11 {
		t.Errorf("rule failure = %+v", errs[2])
	}
}

// TestAggregateCompleteness verifies N parent failures plus M failures in
// each of two children gather to N+2M, and fail-fast stops at the first.
func TestAggregateCompleteness(t *testing.T) {
	bad := func() *count {
		c, _ := newCount(nil, Values{"CountType": "words", "Priority": 0})
		return c // missing content, invalid enum, rule violation: M = 3
	}
	g, err := newGroup(nil, Values{"Kind": "bogus", "Counts": []*count{bad(), bad()}})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	// Missing name and invalid kind: N = 2.

	errs, ok := errors.AsValidationErrors(g.Validate(true, true))
	if !ok || len(errs) != 2+2*3 {
		t.Fatalf("gathered %d failures, want 8:\n%v", len(errs), errs)
	}
	if errs[0].Tag != "count-group" || errs[2].Tag != "count" || errs[2].Entity != g.Counts[0] {
		t.Errorf("failures out of traversal order: %v", errs)
	}

	if errs, _ := errors.AsValidationErrors(g.Validate(false, true)); len(errs) != 2 {
		t.Errorf("non-recursive pass gathered %d failures, want 2", len(errs))
	}

	var ve *errors.ValidationError
	if err := g.Validate(true, false); !errors.As(err, &ve) || ve.Field != "name" {
		t.Errorf("fail-fast = %v, want missing name", err)
	}

	g.Name, g.Kind = str("ok"), enum.Known[countType]("total")
	if err := g.Validate(true, false); !errors.As(err, &ve) || ve.Entity != g.Counts[0] || ve.Field != "Content" {
		t.Errorf("fail-fast = %v, want first child's content", err)
	}
}

// TestConcreteScenario verifies content, enum and omitted optional attribute
// in the rendered node.
func TestConcreteScenario(t *testing.T) {
	c, err := newCount(nil, Values{"Content": 42, "CountType": "total"})
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []node.Factory{tree.New, xml.NewElement} {
		n, err := c.ToNode(f)
		if err != nil {
			t.Fatalf("ToNode failed: %v", err)
		}
		if n.Tag() != "count" || n.Text() != "42" {
			t.Errorf("node %s text = %q", n.Tag(), n.Text())
		}
		if v, ok := n.Attr("count-type"); !ok || v != "total" {
			t.Errorf("count-type = %q, %v", v, ok)
		}
		if attrs := n.Attrs(); len(attrs) != 1 {
			t.Errorf("Attrs() = %v, want only count-type", attrs)
		}
	}
}

// TestToNodeValidates verifies ToNode refuses invalid entities and Render
// does not.
func TestToNodeValidates(t *testing.T) {
	c, _ := newCount(nil, Values{"CountType": "total"})
	if _, err := c.ToNode(tree.New); !errors.Is(err, errors.ErrRequired) {
		t.Errorf("ToNode(invalid) = %v, want ErrRequired", err)
	}
	n, err := c.Render(tree.New)
	if err != nil || n.Tag() != "count" {
		t.Errorf("Render(invalid) = %v, %v", n, err)
	}
}

// TestRoundTrip verifies a rendered entity parses back to an equal entity.
func TestRoundTrip(t *testing.T) {
	g, err := newGroup(nil, Values{"Name": "words", "Counts": []*count{
		{Content: new(int), CountType: enum.Known[countType]("total")},
		{Content: new(int), CountType: enum.MustCustom[countType]("x-lines"), Unit: str("line")},
	}})
	if err != nil {
		t.Fatal(err)
	}
	*g.Counts[1].Content = 12

	for name, f := range map[string]node.Factory{"tree": tree.New, "xmlquery": xml.NewElement} {
		t.Run(name, func(t *testing.T) {
			n, err := groupSchema.ToNode(g, f)
			if err != nil {
				t.Fatalf("ToNode failed: %v", err)
			}
			back, err := newGroup(n, nil)
			if err != nil {
				t.Fatalf("rebuild failed: %v", err)
			}
			if !reflect.DeepEqual(back, g) {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, g)
			}
			// Idempotence.
			for i := 0; i < 2; i++ {
				if err := back.Validate(true, false); err != nil {
					t.Errorf("Validate #%d = %v", i, err)
				}
			}
		})
	}
}

// TestMixedContentOrder verifies text and inline codes keep their exact
// interleaving through parse and render.
func TestMixedContentOrder(t *testing.T) {
	in := `<source xml:lang="en">A<x id="1"/>B<x id="2"/>C</source>`
	p, err := paraSchema.Make(mustParse(t, in), nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(p.Content) != 5 || p.Content.Text() != "ABC" || len(p.Content.Codes()) != 2 {
		t.Fatalf("Content = %+v", p.Content)
	}
	if !p.Content[1].IsCode() || p.Content[2].Text != "B" {
		t.Errorf("parts out of order: %+v", p.Content)
	}

	n, err := paraSchema.ToNode(p, tree.New)
	if err != nil {
		t.Fatal(err)
	}
	if got := n.(*tree.Element).String(); got != in {
		t.Errorf("tree render = %q, want %q", got, in)
	}

	xn, err := paraSchema.ToNode(p, xml.NewElement)
	if err != nil {
		t.Fatal(err)
	}
	reparsed := mustParse(t, xn.(*xml.Element).OutputXML())
	if got := reparsed.String(); got != in {
		t.Errorf("xmlquery render = %q, want %q", got, in)
	}
}

// TestMixedContentEdges verifies leading codes, adjacent text and nested
// validation of inline codes.
func TestMixedContentEdges(t *testing.T) {
	p := &para{Content: Content{
		CodePart(&code{ID: str("1")}),
		TextPart("a"),
		TextPart("b"),
		CodePart(&code{}),
	}}
	n, err := p.Render(tree.New)
	if err != nil {
		t.Fatal(err)
	}
	if got := n.(*tree.Element).String(); got != `<source><x id="1"/>ab<x/></source>` {
		t.Errorf("render = %q", got)
	}

	var ve *errors.ValidationError
	if _, err := paraSchema.ToNode(p, tree.New); err == nil {
		t.Error("ToNode accepted an inline code without id")
	}
	if err := p.Validate(true, false); !errors.As(err, &ve) || ve.Tag != "x" {
		t.Errorf("Validate = %v, want failure in <x>", err)
	}

	if _, err := paraSchema.Make(mustParse(t, `<source>a<bogus/></source>`), nil); !errors.Is(err, errors.ErrStructure) {
		t.Errorf("unknown inline = %v, want ErrStructure", err)
	}
	q, err := paraSchema.Make(nil, Values{"Content": "plain"})
	if err != nil || q.Content.Text() != "plain" {
		t.Errorf("string content = %+v, %v", q, err)
	}
}

func TestAttributeMap(t *testing.T) {
	want := map[string]string{"CountType": "count-type", "Unit": "unit", "Priority": "priority"}
	if got := countSchema.AttributeMap(); !reflect.DeepEqual(got, want) {
		t.Errorf("AttributeMap() = %v, want %v", got, want)
	}
	f, ok := countSchema.Field("Content")
	if !ok || !f.IsRequired() || f.XMLName() != "" {
		t.Errorf("Field(Content) = %v, %v", f, ok)
	}
}

type noBase struct{}

func TestNewRequiresBase(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New accepted a type without Base")
		}
	}()
	New[noBase]("x")
}

// label is a leaf entity with required string content.
type label struct {
	Base
	Value *string
}

var labelSchema = New[label]("note",
	Text("Value", coerce.String, func(l *label) **string { return &l.Value }).Require(),
)

func newLabel(src node.Element, vals Values) (*label, error) { return labelSchema.Make(src, vals) }

func (l *label) Tag() string                                { return labelSchema.Tag() }
func (l *label) Validate(recurse, gatherAll bool) error     { return labelSchema.Validate(l, recurse, gatherAll) }
func (l *label) Render(f node.Factory) (node.Element, error) { return labelSchema.Render(l, f) }

// TestEmptyTextIsAbsent verifies an explicit empty string for text content
// behaves like the parsed form of the rendered element.
func TestEmptyTextIsAbsent(t *testing.T) {
	l, err := newLabel(nil, Values{"Value": ""})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if l.Value != nil {
		t.Errorf("Value = %q, want absent", *l.Value)
	}
	if err := l.Validate(false, false); !errors.Is(err, errors.ErrRequired) {
		t.Errorf("Validate() = %v, want ErrRequired", err)
	}

	n, err := l.Render(tree.New)
	if err != nil {
		t.Fatal(err)
	}
	back, err := newLabel(n, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, l) {
		t.Errorf("rebuilt %+v, want %+v", back, l)
	}

	kept, err := newLabel(nil, Values{"Value": " "})
	if err != nil || kept.Value == nil || *kept.Value != " " {
		t.Errorf("whitespace content = %v, %v", kept.Value, err)
	}
}

// holder has a choice child, namespace declarations and foreign children.
type holder struct {
	Base
	NS    []node.Attr
	Item  Entity
	Extra []*Extension
}

var holderSchema = New[holder]("holder",
	Namespaces("NS", func(h *holder) *[]node.Attr { return &h.NS }),
	One("Item", func(h *holder) *Entity { return &h.Item },
		Decode[Entity]("x", newCode),
		Decode[Entity]("note", newLabel),
	).Require(),
	Extensions("Extra", func(h *holder) *[]*Extension { return &h.Extra }),
)

// TestChoiceChild verifies a single child may be any of its alternatives.
func TestChoiceChild(t *testing.T) {
	h, err := holderSchema.Make(mustParse(t, `<holder><note>a</note></holder>`), nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if l, ok := h.Item.(*label); !ok || *l.Value != "a" {
		t.Errorf("Item = %#v, want label a", h.Item)
	}

	var unexpected *errors.UnexpectedElementError
	_, err = holderSchema.Make(mustParse(t, `<holder><x id="1"/><note>a</note></holder>`), nil)
	if !errors.As(err, &unexpected) || unexpected.Child != "note" {
		t.Errorf("two alternatives = %v, want UnexpectedElementError for note", err)
	}

	empty, err := holderSchema.Make(mustParse(t, `<holder/>`), nil)
	if err != nil {
		t.Fatal(err)
	}
	var ve *errors.ValidationError
	if err := holderSchema.Validate(empty, false, false); !errors.As(err, &ve) || ve.Expected != "<x> or <note>" {
		t.Errorf("Validate() = %v, want required <x> or <note>", err)
	}

	if _, err := holderSchema.Make(nil, Values{"Item": "text"}); !errors.Is(err, errors.ErrType) {
		t.Errorf("Item from string = %v, want ErrType", err)
	}
}

// TestExtensions verifies foreign elements and their namespace declarations
// are kept verbatim.
func TestExtensions(t *testing.T) {
	in := `<holder xmlns:its="urn:its"><x id="1"/><its:rule sel="a">t<its:sub/>tail</its:rule></holder>`
	h, err := holderSchema.Make(mustParse(t, in), nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(h.NS) != 1 || h.NS[0] != (node.Attr{Name: "xmlns:its", Value: "urn:its"}) {
		t.Errorf("NS = %v", h.NS)
	}
	if len(h.Extra) != 1 {
		t.Fatalf("Extra = %d, want 1", len(h.Extra))
	}
	rule := h.Extra[0]
	if rule.Tag != "its:rule" || rule.Text != "t" || len(rule.Children) != 1 || rule.Children[0].Tail != "tail" {
		t.Errorf("extension = %+v", rule)
	}

	n, err := holderSchema.Render(h, tree.New)
	if err != nil {
		t.Fatal(err)
	}
	if got := n.(*tree.Element).String(); got != in {
		t.Errorf("render = %q, want %q", got, in)
	}

	if _, err := holderSchema.Make(mustParse(t, `<holder><bogus/></holder>`), nil); !errors.Is(err, errors.ErrStructure) {
		t.Errorf("unprefixed unknown child = %v, want ErrStructure", err)
	}
	if _, err := holderSchema.Make(nil, Values{"NS": []node.Attr{{Name: "id", Value: "1"}}}); !errors.Is(err, errors.ErrType) {
		t.Errorf("non-declaration NS = %v, want ErrType", err)
	}
}

func TestIsForeign(t *testing.T) {
	tests := []struct {
		tag  string
		want bool
	}{
		{"its:rule", true},
		{"note", false},
		{"xml:foo", false},
		{":bad", false},
	}
	for _, tt := range tests {
		if got := IsForeign(tt.tag); got != tt.want {
			t.Errorf("IsForeign(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}
