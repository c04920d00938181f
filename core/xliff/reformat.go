package xliff

import (
	"fmt"
	"strings"

	"github.com/FocuswithJustin/xliffkit/core/coerce"
	"github.com/FocuswithJustin/xliffkit/core/enum"
	"github.com/FocuswithJustin/xliffkit/core/errors"
)

// Reformat is the reformat attribute. It is either "yes"/"no" for every
// property of the target, or a space separated list of the properties that
// may be modified.
type Reformat struct {
	Allowed bool // yes or no form, used when Props is empty
	Props   []enum.Value[ReformatProp]
}

// ReformatAll returns the "yes" or "no" form.
func ReformatAll(allowed bool) Reformat { return Reformat{Allowed: allowed} }

// ReformatOnly returns the list form.
func ReformatOnly(props ...ReformatProp) Reformat {
	r := Reformat{Props: make([]enum.Value[ReformatProp], len(props))}
	for i, p := range props {
		r.Props[i] = enum.Known(p)
	}
	return r
}

// ParseReformat parses a reformat attribute value. List tokens are decoded
// leniently; unknown tokens are reported by checkReformat.
func ParseReformat(s string) (Reformat, error) {
	if b, err := coerce.ParseBool(s); err == nil {
		return Reformat{Allowed: b}, nil
	}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Reformat{}, errors.NewParse("reformat", "", "expected yes, no or a list of properties")
	}
	var r Reformat
	for _, f := range fields {
		r.Props = append(r.Props, ReformatProps.Decode(f))
	}
	return r, nil
}

// Allows reports whether prop may be modified.
func (r Reformat) Allows(prop ReformatProp) bool {
	if len(r.Props) == 0 {
		return r.Allowed
	}
	for _, p := range r.Props {
		if m, ok := p.Member(); ok && m == prop {
			return true
		}
	}
	return false
}

// MarshalText renders the attribute form.
func (r Reformat) MarshalText() ([]byte, error) {
	if len(r.Props) == 0 {
		s, err := coerce.Stringify(r.Allowed)
		return []byte(s), err
	}
	parts := make([]string, len(r.Props))
	for i, p := range r.Props {
		b, err := p.MarshalText()
		if err != nil {
			return nil, err
		}
		parts[i] = string(b)
	}
	return []byte(strings.Join(parts, " ")), nil
}

func checkReformat(r Reformat) error {
	for _, p := range r.Props {
		if err := ReformatProps.Check(p); err != nil {
			return err
		}
	}
	return nil
}

// ReformatCodec converts reformat attributes. Explicit values may be a
// Reformat, a bool, a literal or a list of properties.
var ReformatCodec = coerce.NewCodec("yes, no or a list of reformat properties", ParseReformat, func(v any) (Reformat, bool, error) {
	switch x := v.(type) {
	case bool:
		return ReformatAll(x), true, nil
	case string:
		r, err := ParseReformat(x)
		return r, true, err
	case []ReformatProp:
		return ReformatOnly(x...), true, nil
	case []string:
		var r Reformat
		for _, s := range x {
			r.Props = append(r.Props, ReformatProps.Decode(s))
		}
		if len(r.Props) == 0 {
			return Reformat{}, true, fmt.Errorf("%w: empty reformat list", errors.ErrInvalidInput)
		}
		return r, true, nil
	}
	return Reformat{}, false, nil
})
