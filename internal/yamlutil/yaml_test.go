package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	var s sample
	if err := Unmarshal([]byte("name: x\ncount: 2\n"), &s); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if s.Name != "x" || s.Count != 2 {
		t.Errorf("got %+v", s)
	}
}

func TestUnmarshal_EmptyData(t *testing.T) {
	t.Parallel()

	var s sample
	if err := Unmarshal(nil, &s); !errors.Is(err, ErrNilData) {
		t.Fatalf("Unmarshal() error = %v, want %v", err, ErrNilData)
	}
}

func TestUnmarshal_NilDestination(t *testing.T) {
	t.Parallel()

	if err := Unmarshal([]byte("a: 1"), nil); !errors.Is(err, ErrNilDestination) {
		t.Fatalf("Unmarshal() error = %v, want %v", err, ErrNilDestination)
	}
}

func TestUnmarshal_InputTooLarge(t *testing.T) {
	t.Parallel()

	var s sample
	data := []byte("name: " + strings.Repeat("a", MaxInputSize))
	if err := Unmarshal(data, &s); !errors.Is(err, ErrInputTooLarge) {
		t.Fatalf("Unmarshal() error = %v, want %v", err, ErrInputTooLarge)
	}
}

func TestUnmarshalStrict_UnknownField(t *testing.T) {
	t.Parallel()

	var s sample
	if err := UnmarshalStrict([]byte("name: x\nbogus: 1\n"), &s); err == nil {
		t.Fatal("UnmarshalStrict() should reject unknown fields")
	}
}

func TestUnmarshalStrict_Valid(t *testing.T) {
	t.Parallel()

	var s sample
	if err := UnmarshalStrict([]byte("name: y\n"), &s); err != nil {
		t.Fatalf("UnmarshalStrict() error = %v", err)
	}
	if s.Name != "y" {
		t.Errorf("Name = %q, want %q", s.Name, "y")
	}
}
