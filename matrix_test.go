package motion

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Matrix) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- Decompose ---

func TestDecomposeTranslation(t *testing.T) {
	for _, tc := range []struct{ e, f float64 }{
		{0, 0}, {10, 20}, {-3.5, 1e6}, {0.25, -0.75},
	} {
		d := Decompose(Translate(tc.e, tc.f))
		assertNear(t, "translateX", d.TranslateX, tc.e)
		assertNear(t, "translateY", d.TranslateY, tc.f)
		assertNear(t, "scaleX", d.ScaleX, 1)
		assertNear(t, "scaleY", d.ScaleY, 1)
		assertNear(t, "skewX", d.SkewX, 0)
		assertNear(t, "skewY", d.SkewY, 0)
		assertNear(t, "rotation", d.Rotation, 0)
	}
}

func TestDecomposeUniformScale(t *testing.T) {
	for _, s := range []float64{0.5, 1, 2, 3.75, 100} {
		d := Decompose(Scale(s, s))
		assertNear(t, "scaleX", d.ScaleX, s)
		assertNear(t, "scaleY", d.ScaleY, s)
		assertNear(t, "skewX", d.SkewX, 0)
		assertNear(t, "skewY", d.SkewY, 0)
		assertNear(t, "rotation", d.Rotation, 0)
		assertNear(t, "translateX", d.TranslateX, 0)
	}
}

func TestDecomposeRotation(t *testing.T) {
	d := Decompose(Rotate(30))
	assertNear(t, "skewX", d.SkewX, 30)
	assertNear(t, "skewY", d.SkewY, 30)
	assertNear(t, "rotation", d.Rotation, 30)
	assertNear(t, "scaleX", d.ScaleX, 1)
	assertNear(t, "scaleY", d.ScaleY, 1)
}

func TestDecomposeRotationEqualsSkewX(t *testing.T) {
	// A shear along x moves skewX but not skewY; rotation follows skewX.
	m := Matrix{1, 0, 1, 1, 0, 0}
	d := Decompose(m)
	assertNear(t, "skewX", d.SkewX, -45)
	assertNear(t, "skewY", d.SkewY, 0)
	assertNear(t, "rotation", d.Rotation, d.SkewX)
}

// --- Matrix ops ---

func TestMultiplyOrder(t *testing.T) {
	// Scale first, then translate.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	x, y := m.Apply(1, 1)
	assertNear(t, "x", x, 12)
	assertNear(t, "y", y, 2)
}

func TestInvert(t *testing.T) {
	m := Translate(5, -3).Multiply(Rotate(45)).Multiply(Scale(2, 0.5))
	assertMatrix(t, "m*inv", m.Multiply(m.Invert()), Identity)
}

func TestInvertSingular(t *testing.T) {
	assertMatrix(t, "singular", Scale(0, 1).Invert(), Identity)
}

func TestMatrixString(t *testing.T) {
	got := Matrix{1, 0, 0, 1, 10.5, -2}.String()
	want := "matrix(1, 0, 0, 1, 10.5, -2)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
