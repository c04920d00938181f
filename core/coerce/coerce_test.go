package coerce

import (
	"testing"
	"time"

	"github.com/FocuswithJustin/xliffkit/core/errors"
)

type token string

type marshaler struct{ s string }

func (m marshaler) MarshalText() ([]byte, error) { return []byte(m.s), nil }

// TestStringify verifies markup rendering for every supported kind.
func TestStringify(t *testing.T) {
	ts := time.Date(2023, 5, 1, 17, 30, 0, 0, time.FixedZone("CEST", 2*3600))

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "hello", "hello"},
		{"empty string", "", ""},
		{"int", 42, "42"},
		{"negative int64", int64(-7), "-7"},
		{"uint8", uint8(9), "9"},
		{"float", 1.5, "1.5"},
		{"whole float", 3.0, "3"},
		{"float32", float32(0.25), "0.25"},
		{"true", true, "yes"},
		{"false", false, "no"},
		{"time in UTC", ts, "20230501T153000Z"},
		{"named string", token("total"), "total"},
		{"text marshaler", marshaler{"x-custom"}, "x-custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Stringify(tt.in)
			if err != nil {
				t.Fatalf("Stringify(%#v) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Stringify(%#v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestStringifyUnsupported verifies unsupported types fail loudly.
func TestStringifyUnsupported(t *testing.T) {
	for _, in := range []any{nil, []string{"a"}, map[string]int{}, struct{}{}} {
		_, err := Stringify(in)
		if !errors.Is(err, errors.ErrUnsupported) {
			t.Errorf("Stringify(%#v) error = %v, want ErrUnsupported", in, err)
		}
	}
}

// TestToBool verifies boolean conversion.
func TestToBool(t *testing.T) {
	tests := []struct {
		in      any
		want    bool
		wantErr bool
	}{
		{true, true, false},
		{false, false, false},
		{"yes", true, false},
		{"no", false, false},
		{"true", false, true},
		{"YES", false, true},
		{1, false, true},
		{nil, false, true},
	}

	for _, tt := range tests {
		got, err := ToBool(tt.in)
		if tt.wantErr {
			if !errors.Is(err, errors.ErrInvalidInput) {
				t.Errorf("ToBool(%#v) error = %v, want ErrInvalidInput", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ToBool(%#v) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestParseTime(t *testing.T) {
	got, err := ParseTime("20230501T153000Z")
	if err != nil {
		t.Fatalf("ParseTime failed: %v", err)
	}
	want := time.Date(2023, 5, 1, 15, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseTime = %v, want %v", got, want)
	}
	if _, err := ParseTime("2023-05-01"); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("ParseTime(bad) error = %v", err)
	}
}

// TestCodecConvert verifies explicit host values are accepted or rejected.
func TestCodecConvert(t *testing.T) {
	n := 5
	if v, err := Int.Convert(&n); err != nil || v != 5 {
		t.Errorf("Int.Convert(*int) = %v, %v", v, err)
	}
	if v, err := Int.Convert(int64(6)); err != nil || v != 6 {
		t.Errorf("Int.Convert(int64) = %v, %v", v, err)
	}
	if _, err := Int.Convert("5"); !errors.Is(err, errors.ErrType) {
		t.Errorf("Int.Convert(string) error = %v, want ErrType", err)
	}
	if v, err := Bool.Convert("yes"); err != nil || !v {
		t.Errorf("Bool.Convert(yes) = %v, %v", v, err)
	}
	if _, err := Bool.Convert("maybe"); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("Bool.Convert(maybe) error = %v, want ErrInvalidInput", err)
	}
	if v, err := Float.Convert(2); err != nil || v != 2 {
		t.Errorf("Float.Convert(int) = %v, %v", v, err)
	}
	if _, err := Time.Convert("20230501T153000Z"); !errors.Is(err, errors.ErrType) {
		t.Errorf("Time.Convert(string) error = %v, want ErrType", err)
	}
}

// TestCodecParse verifies markup literals convert through each codec.
func TestCodecParse(t *testing.T) {
	if v, err := Int.Parse(" 42 "); err != nil || v != 42 {
		t.Errorf("Int.Parse = %v, %v", v, err)
	}
	if _, err := Int.Parse("4x"); err == nil {
		t.Error("Int.Parse(4x) should fail")
	}
	if v, err := Float.Parse("2.5"); err != nil || v != 2.5 {
		t.Errorf("Float.Parse = %v, %v", v, err)
	}
	if v, err := Bool.Parse("no"); err != nil || v {
		t.Errorf("Bool.Parse = %v, %v", v, err)
	}
	if s, err := Float.Format(2.5); err != nil || s != "2.5" {
		t.Errorf("Float.Format = %q, %v", s, err)
	}
}
