package turtle

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/plastikmind/svg2gcode/svgpath"
)

func mustPath(t *testing.T, d string) svgpath.Path {
	t.Helper()
	path, err := svgpath.ParsePathData(d)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func drawOps(t *testing.T, d string, transforms ...svgpath.Matrix) []Op {
	t.Helper()
	rec := &Recorder{}
	terr := NewTerrarium(rec)
	for _, m := range transforms {
		terr.PushTransform(m)
	}
	terr.Draw(mustPath(t, d))
	for range transforms {
		terr.PopTransform()
	}
	if terr.Depth() != 0 {
		t.Fatalf("stack not unwound: depth %d", terr.Depth())
	}
	return rec.DrawOps()
}

func TestDrawRelativeCommands(t *testing.T) {
	got := drawOps(t, "m 1,2 l 3,4 h 5 v -1")
	want := []Op{
		{Kind: "move", Points: []svgpath.Point{{X: 1, Y: 2}}},
		{Kind: "line", Points: []svgpath.Point{{X: 4, Y: 6}}},
		{Kind: "line", Points: []svgpath.Point{{X: 9, Y: 6}}},
		{Kind: "line", Points: []svgpath.Point{{X: 9, Y: 5}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawAbsoluteAfterRelative(t *testing.T) {
	got := drawOps(t, "m 1,1 L 10,10 l 1,1")
	want := []Op{
		{Kind: "move", Points: []svgpath.Point{{X: 1, Y: 1}}},
		{Kind: "line", Points: []svgpath.Point{{X: 10, Y: 10}}},
		{Kind: "line", Points: []svgpath.Point{{X: 11, Y: 11}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawSmoothCubicReflection(t *testing.T) {
	got := drawOps(t, "M0,0 C0,1 1,1 1,0 S2,-1 2,0")
	want := []Op{
		{Kind: "move", Points: []svgpath.Point{{X: 0, Y: 0}}},
		{Kind: "cubic", Points: []svgpath.Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}},
		// first control point reflects (1,1) across (1,0)
		{Kind: "cubic", Points: []svgpath.Point{{X: 1, Y: -1}, {X: 2, Y: -1}, {X: 2, Y: 0}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawSmoothWithoutPredecessor(t *testing.T) {
	// no preceding cubic: the first control point is the current point
	got := drawOps(t, "M3,3 S5,5 6,3")
	want := []Op{
		{Kind: "move", Points: []svgpath.Point{{X: 3, Y: 3}}},
		{Kind: "cubic", Points: []svgpath.Point{{X: 3, Y: 3}, {X: 5, Y: 5}, {X: 6, Y: 3}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawSmoothQuadReflection(t *testing.T) {
	got := drawOps(t, "M0,0 Q1,2 2,0 T4,0")
	want := []Op{
		{Kind: "move", Points: []svgpath.Point{{X: 0, Y: 0}}},
		{Kind: "quad", Points: []svgpath.Point{{X: 1, Y: 2}, {X: 2, Y: 0}}},
		// control reflects (1,2) across (2,0)
		{Kind: "quad", Points: []svgpath.Point{{X: 3, Y: -2}, {X: 4, Y: 0}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawCloseResetsCurrentPoint(t *testing.T) {
	// after close, relative coordinates resolve from the subpath start
	got := drawOps(t, "M1,1 l 1,0 z l 0,1")
	want := []Op{
		{Kind: "move", Points: []svgpath.Point{{X: 1, Y: 1}}},
		{Kind: "line", Points: []svgpath.Point{{X: 2, Y: 1}}},
		{Kind: "close"},
		{Kind: "line", Points: []svgpath.Point{{X: 1, Y: 2}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawUnderTransform(t *testing.T) {
	got := drawOps(t, "M1,1 l 1,0",
		svgpath.Identity.Translate(10, 0),
		svgpath.Identity.Scale(2, 2),
	)
	// composed: translate after scale
	want := []Op{
		{Kind: "move", Points: []svgpath.Point{{X: 12, Y: 2}}},
		{Kind: "line", Points: []svgpath.Point{{X: 14, Y: 2}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawArcFallsBackToLine(t *testing.T) {
	got := drawOps(t, "M0,0 A0,0 0 0 1 5,5")
	want := []Op{
		{Kind: "move", Points: []svgpath.Point{{X: 0, Y: 0}}},
		{Kind: "line", Points: []svgpath.Point{{X: 5, Y: 5}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawArcEmitsCubics(t *testing.T) {
	rec := &Recorder{}
	terr := NewTerrarium(rec)
	terr.Draw(mustPath(t, "M5,0 A5,5 0 0 1 -5,0"))
	ops := rec.DrawOps()
	if len(ops) < 3 {
		t.Fatalf("got %d ops", len(ops))
	}
	if ops[0].Kind != "move" {
		t.Fatalf("first op %q", ops[0].Kind)
	}
	for _, op := range ops[1:] {
		if op.Kind != "cubic" {
			t.Errorf("arc lowered to %q, want cubic", op.Kind)
		}
	}
	last := ops[len(ops)-1].Points[2]
	if last != svgpath.Pt(-5, 0) {
		t.Errorf("arc ends at %+v, want (-5,0)", last)
	}
}

func TestTransformStack(t *testing.T) {
	terr := NewTerrarium(&Recorder{})
	terr.PushTransform(svgpath.Identity.Translate(1, 0))
	terr.PushTransform(svgpath.Identity.Translate(0, 2))
	got := terr.Transform().ApplyPoint(svgpath.Pt(0, 0))
	if got != svgpath.Pt(1, 2) {
		t.Errorf("composed transform moved origin to %+v", got)
	}
	terr.PopTransform()
	got = terr.Transform().ApplyPoint(svgpath.Pt(0, 0))
	if got != svgpath.Pt(1, 0) {
		t.Errorf("after pop, origin at %+v", got)
	}
	terr.PopTransform()
	if terr.Depth() != 0 {
		t.Errorf("depth %d", terr.Depth())
	}
}
