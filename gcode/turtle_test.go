package gcode

import (
	"strings"
	"testing"

	"github.com/plastikmind/svg2gcode/svgpath"
)

func TestProgramGolden(t *testing.T) {
	turtle := NewTurtle(DefaultMachine())
	turtle.Begin()
	turtle.MoveTo(svgpath.Pt(0, 0))
	turtle.LineTo(svgpath.Pt(10, 0))
	turtle.LineTo(svgpath.Pt(10, 5))
	turtle.End()

	want := strings.Join([]string{
		"G21",
		"G90",
		"M5",
		"G0 X0 Y0",
		"M3",
		"G1 X10 Y0 F300",
		"G1 X10 Y5",
		"M5",
		"M2",
	}, "\n") + "\n"
	if got := turtle.String(); got != want {
		t.Errorf("program mismatch:\ngot:\n%swant:\n%s", got, want)
	}
}

func TestToolTogglesOnTravel(t *testing.T) {
	turtle := NewTurtle(DefaultMachine())
	turtle.Begin()
	turtle.MoveTo(svgpath.Pt(0, 0))
	turtle.LineTo(svgpath.Pt(1, 0))
	turtle.MoveTo(svgpath.Pt(5, 5))
	turtle.LineTo(svgpath.Pt(6, 5))
	turtle.End()

	program := turtle.String()
	if got := strings.Count(program, "M3"); got != 2 {
		t.Errorf("tool-on count = %d, want 2", got)
	}
	// Begin's safety off, two travel offs collapse into one each, final off
	if !strings.Contains(program, "M5\nG0 X5 Y5") {
		t.Errorf("tool not lifted before travel:\n%s", program)
	}
}

func TestMachinePersonality(t *testing.T) {
	machine := Machine{
		Units:      UnitsInches,
		ToolOn:     []string{"M3 S1000", "G4 P0.5"},
		ToolOff:    []string{"M5"},
		Begin:      []string{"G54"},
		End:        []string{"G28"},
		FeedRate:   20,
		TravelRate: 100,
	}
	turtle := NewTurtle(machine)
	turtle.Begin()
	turtle.MoveTo(svgpath.Pt(1, 1))
	turtle.LineTo(svgpath.Pt(2, 1))
	turtle.End()

	want := strings.Join([]string{
		"G54",
		"G20",
		"G90",
		"M5",
		"G0 X1 Y1 F100",
		"M3 S1000",
		"G4 P0.5",
		"G1 X2 Y1 F20",
		"M5",
		"G28",
		"M2",
	}, "\n") + "\n"
	if got := turtle.String(); got != want {
		t.Errorf("program mismatch:\ngot:\n%swant:\n%s", got, want)
	}
}

func TestNumberFormatting(t *testing.T) {
	turtle := NewTurtle(DefaultMachine())
	for _, tc := range []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1.5, "1.5"},
		{2.0001, "2"},
		{-0.0001, "0"},
		{-1.25, "-1.25"},
		{3.14159, "3.142"},
	} {
		if got := turtle.num(tc.in); got != tc.want {
			t.Errorf("num(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestComment(t *testing.T) {
	turtle := NewTurtle(DefaultMachine())
	turtle.Comment("layer (one)")
	if got := turtle.String(); got != "(layer [one])\n" {
		t.Errorf("comment = %q", got)
	}
}

func TestCloseReturnsToSubpathStart(t *testing.T) {
	turtle := NewTurtle(DefaultMachine())
	turtle.Begin()
	turtle.MoveTo(svgpath.Pt(1, 1))
	turtle.LineTo(svgpath.Pt(5, 1))
	turtle.Close()
	turtle.End()

	if !strings.Contains(turtle.String(), "G1 X1 Y1") {
		t.Errorf("close did not cut back to subpath start:\n%s", turtle.String())
	}

	// closing with the position already at the start adds no motion
	again := NewTurtle(DefaultMachine())
	again.MoveTo(svgpath.Pt(1, 1))
	lines := strings.Count(again.String(), "\n")
	again.Close()
	if got := strings.Count(again.String(), "\n"); got != lines {
		t.Error("no-op close emitted motion")
	}
}

func TestFlattenStraightCubic(t *testing.T) {
	// control points on the chord collapse to a single cut
	turtle := NewTurtle(DefaultMachine())
	turtle.MoveTo(svgpath.Pt(0, 0))
	turtle.CubicBezier(svgpath.Pt(1, 1), svgpath.Pt(2, 2), svgpath.Pt(3, 3))
	if got := strings.Count(turtle.String(), "G1"); got != 1 {
		t.Errorf("straight cubic flattened to %d cuts, want 1", got)
	}
	if !strings.Contains(turtle.String(), "G1 X3 Y3") {
		t.Errorf("cubic does not end at its endpoint:\n%s", turtle.String())
	}
}

func TestFlattenCurvedCubicEndsExactly(t *testing.T) {
	turtle := NewTurtle(DefaultMachine())
	turtle.MoveTo(svgpath.Pt(0, 0))
	turtle.CubicBezier(svgpath.Pt(0, 10), svgpath.Pt(10, 10), svgpath.Pt(10, 0))
	program := turtle.String()
	cuts := strings.Count(program, "G1")
	if cuts < 4 {
		t.Errorf("curved cubic flattened to only %d cuts", cuts)
	}
	if !strings.HasSuffix(program, "G1 X10 Y0\n") {
		t.Errorf("last cut is not the endpoint:\n%s", program)
	}
}

func TestQuadraticBezier(t *testing.T) {
	turtle := NewTurtle(DefaultMachine())
	turtle.MoveTo(svgpath.Pt(0, 0))
	turtle.QuadraticBezier(svgpath.Pt(5, 5), svgpath.Pt(10, 0))
	if !strings.HasSuffix(turtle.String(), "G1 X10 Y0\n") {
		t.Errorf("quad does not end at its endpoint:\n%s", turtle.String())
	}
}
