package xliff

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/xliffkit/core/coerce"
	"github.com/FocuswithJustin/xliffkit/core/errors"
)

// Coord is the coord attribute: the position and size of a resource as
// "x;y;cx;cy". Unset components are written as "#".
type Coord struct {
	X, Y, CX, CY *float64
}

// coordGrammar is the participle grammar for coord values, e.g. "10;#;200.5;30".
//
//nolint:govet // participle grammar tags are not standard struct tags
type coordGrammar struct {
	Parts []*coordPart `parser:"@@ ( \";\" @@ )*"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type coordPart struct {
	Unset bool     `parser:"  @\"#\""`
	Value *float64 `parser:"| @Number"`
}

var coordLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[-+]?(\d+(\.\d*)?|\.\d+)`},
	{Name: "Punct", Pattern: `[;#]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var coordParser = participle.MustBuild[coordGrammar](
	participle.Lexer(coordLexer),
	participle.Elide("Whitespace"),
)

// ParseCoord parses a coord attribute value.
func ParseCoord(s string) (Coord, error) {
	parsed, err := coordParser.ParseString("", s)
	if err != nil {
		return Coord{}, &errors.ParseError{Format: "coord", Message: err.Error(), Err: errors.ErrInvalidInput}
	}
	if len(parsed.Parts) != 4 {
		return Coord{}, errors.NewParse("coord", "", "expected 4 components x;y;cx;cy but got "+strconv.Itoa(len(parsed.Parts)))
	}
	var c Coord
	for i, dst := range []**float64{&c.X, &c.Y, &c.CX, &c.CY} {
		*dst = parsed.Parts[i].Value
	}
	return c, nil
}

// MarshalText renders the coord in its attribute form.
func (c Coord) MarshalText() ([]byte, error) {
	parts := make([]string, 0, 4)
	for _, v := range []*float64{c.X, c.Y, c.CX, c.CY} {
		if v == nil {
			parts = append(parts, "#")
			continue
		}
		parts = append(parts, strconv.FormatFloat(*v, 'f', -1, 64))
	}
	return []byte(strings.Join(parts, ";")), nil
}

func (c Coord) String() string {
	b, _ := c.MarshalText()
	return string(b)
}

// CoordCodec converts coord attributes.
var CoordCodec = coerce.NewCodec("coord x;y;cx;cy", ParseCoord, func(v any) (Coord, bool, error) {
	if s, ok := v.(string); ok {
		c, err := ParseCoord(s)
		return c, true, err
	}
	return Coord{}, false, nil
})
