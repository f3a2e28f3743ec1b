package svgpath

import (
	"math"
	"testing"
)

func approxPoint(t *testing.T, got, want Point, context string) {
	t.Helper()
	const eps = 1e-9
	if math.Abs(got.X-want.X) > eps || math.Abs(got.Y-want.Y) > eps {
		t.Errorf("%s: got (%g,%g), want (%g,%g)", context, got.X, got.Y, want.X, want.Y)
	}
}

func TestMatrixChaining(t *testing.T) {
	// chained helpers post-multiply: the last call applies to points first
	m := Identity.Translate(10, 0).Scale(2, 2)
	approxPoint(t, m.ApplyPoint(Pt(1, 1)), Pt(12, 2), "translate then scale")

	m = Identity.Scale(2, 2).Translate(10, 0)
	approxPoint(t, m.ApplyPoint(Pt(1, 1)), Pt(22, 2), "scale then translate")
}

func TestMatrixRotate(t *testing.T) {
	m := Identity.Rotate(math.Pi / 2)
	approxPoint(t, m.ApplyPoint(Pt(1, 0)), Pt(0, 1), "rotate 90")
	approxPoint(t, m.ApplyPoint(Pt(0, 1)), Pt(-1, 0), "rotate 90")
}

func TestParseTransformList(t *testing.T) {
	for _, tc := range []struct {
		in      string
		point   Point
		want    Point
	}{
		{"translate(10)", Pt(1, 1), Pt(11, 1)},
		{"translate(10, 20)", Pt(0, 0), Pt(10, 20)},
		{"scale(3)", Pt(1, 2), Pt(3, 6)},
		{"scale(2 4)", Pt(1, 1), Pt(2, 4)},
		{"matrix(1 0 0 1 5 6)", Pt(0, 0), Pt(5, 6)},
		{"rotate(90)", Pt(1, 0), Pt(0, 1)},
		{"rotate(90 1 1)", Pt(1, 0), Pt(2, 1)},
		{"skewX(45)", Pt(0, 1), Pt(1, 1)},
		{"skewY(45)", Pt(1, 0), Pt(1, 1)},
	} {
		list, err := ParseTransformList(tc.in)
		if err != nil {
			t.Errorf("ParseTransformList(%q): %v", tc.in, err)
			continue
		}
		if len(list) != 1 {
			t.Errorf("ParseTransformList(%q): %d matrices", tc.in, len(list))
			continue
		}
		approxPoint(t, list[0].ApplyPoint(tc.point), tc.want, tc.in)
	}
}

func TestParseTransformListMultiple(t *testing.T) {
	list, err := ParseTransformList("translate(10,0) scale(2)")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d matrices, want 2", len(list))
	}
	// source order is preserved; composing left to right applies the
	// rightmost function to points first
	m := Identity
	for _, f := range list {
		m = m.Mult(f)
	}
	approxPoint(t, m.ApplyPoint(Pt(1, 1)), Pt(12, 2), "translate(10,0) scale(2)")
}

func TestParseTransformListErrors(t *testing.T) {
	for _, in := range []string{
		"translate(",
		"translate(1,2,3)",
		"scale()",
		"rotate(1 2)",
		"spin(90)",
		"matrix(1 2 3)",
	} {
		if _, err := ParseTransformList(in); err == nil {
			t.Errorf("ParseTransformList(%q): expected error", in)
		}
	}
}
