// Package report turns validation failures into coded issues for tools and
// encodes them as JSON or YAML.
package report

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/FocuswithJustin/xliffkit/core/coerce"
	"github.com/FocuswithJustin/xliffkit/core/errors"
)

// Issue codes
const (
	CodeRequired     = "required"
	CodeInvalidEnum  = "invalid_enum"
	CodeInvalidValue = "invalid_value"
	CodeInvalid      = "invalid"
)

// Format selects the issue encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Issue is one validation failure.
type Issue struct {
	Tag      string `json:"tag" yaml:"tag"`
	Field    string `json:"field" yaml:"field"`
	Code     string `json:"code" yaml:"code"`
	Message  string `json:"message" yaml:"message"`
	Value    string `json:"value,omitempty" yaml:"value,omitempty"`
	Expected string `json:"expected,omitempty" yaml:"expected,omitempty"`
}

// Issues is an ordered list of issues.
type Issues []Issue

// FromError collects the issues carried by err in report order. It reports
// false when err holds no validation failure.
func FromError(err error) (Issues, bool) {
	errs, ok := errors.AsValidationErrors(err)
	if !ok {
		return nil, false
	}
	out := make(Issues, len(errs))
	for i, e := range errs {
		out[i] = issueOf(e)
	}
	return out, true
}

func issueOf(e *errors.ValidationError) Issue {
	is := Issue{
		Tag:      e.Tag,
		Field:    e.Field,
		Code:     codeOf(e),
		Message:  e.Message,
		Expected: e.Expected,
	}
	if e.Value != nil {
		if s, err := coerce.Stringify(e.Value); err == nil {
			is.Value = s
		} else {
			is.Value = fmt.Sprint(e.Value)
		}
	}
	return is
}

func codeOf(e *errors.ValidationError) string {
	switch {
	case errors.Is(e, errors.ErrRequired):
		return CodeRequired
	case errors.Is(e, errors.ErrInvalidEnum):
		return CodeInvalidEnum
	case errors.Is(e, errors.ErrInvalidValue):
		return CodeInvalidValue
	}
	return CodeInvalid
}

// Counts returns the number of issues per code.
func (iss Issues) Counts() map[string]int {
	m := make(map[string]int)
	for _, is := range iss {
		m[is.Code]++
	}
	return m
}

// JSON encodes the issues as an indented JSON array.
func (iss Issues) JSON() ([]byte, error) {
	if iss == nil {
		iss = Issues{}
	}
	return json.MarshalIndent(iss, "", "  ")
}

// YAML encodes the issues as a YAML sequence.
func (iss Issues) YAML() ([]byte, error) {
	if iss == nil {
		iss = Issues{}
	}
	return yaml.Marshal(iss)
}

// Write encodes the issues to w.
func (iss Issues) Write(w io.Writer, f Format) error {
	var data []byte
	var err error
	switch f {
	case FormatJSON:
		data, err = iss.JSON()
	case FormatYAML:
		data, err = iss.YAML()
	default:
		return errors.NewUnsupported("report format "+string(f), "use json or yaml")
	}
	if err != nil {
		return errors.Wrapf(err, "encode %s report", f)
	}
	_, err = w.Write(data)
	return err
}

// Parse decodes issues previously written in format f.
func Parse(data []byte, f Format) (Issues, error) {
	var iss Issues
	var err error
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, &iss)
	case FormatYAML:
		err = yaml.Unmarshal(data, &iss)
	default:
		return nil, errors.NewUnsupported("report format "+string(f), "use json or yaml")
	}
	if err != nil {
		return nil, &errors.ParseError{Format: string(f) + " report", Message: err.Error(), Err: err}
	}
	return iss, nil
}
