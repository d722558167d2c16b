package motion

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractNone(t *testing.T) {
	v, err := Extract(ComputedStyle{Transform: "none", BackgroundColor: "rgb(255, 0, 0)"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"backgroundColor"}, v.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if got, _ := v.Get("backgroundColor"); got != Str("rgb(255, 0, 0)") {
		t.Errorf("backgroundColor = %#v", got)
	}
}

func TestExtractMatrix(t *testing.T) {
	v, err := Extract(ComputedStyle{Transform: "matrix(2, 0, 0, 2, 10, 20)", BackgroundColor: "transparent"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"translateX", "translateY", "scaleX", "scaleY", "skewX", "skewY", "rotation", "backgroundColor"}
	if diff := cmp.Diff(want, v.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	for key, f := range map[string]float64{
		"translateX": 10, "translateY": 20, "scaleX": 2, "scaleY": 2, "rotation": 0,
	} {
		got, _ := v.Get(key)
		n, ok := got.Float()
		if !ok {
			t.Errorf("%s is not a number: %#v", key, got)
			continue
		}
		assertNear(t, key, n, f)
	}
}

func TestExtractParseError(t *testing.T) {
	tests := []string{
		"matrix3d(1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1)",
		"rotate(45deg)",
		"matrix(1, 0, 0, 1, 0)",
		"matrix(1,0,0,1,0,0)",
		"",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Extract(ComputedStyle{Transform: input})
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("err = %v, want *ParseError", err)
			}
			if pe.Input != input {
				t.Errorf("Input = %q, want %q", pe.Input, input)
			}
		})
	}
}
