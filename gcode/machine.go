// Emits g-code from lowered drawing operations. The Machine type holds
// the device personality (tool sequences, units, rates); Turtle turns
// moves, lines and beziers into motion commands.
package gcode

// Units selects the g-code unit mode.
type Units uint8

const (
	UnitsMillimeters Units = iota
	UnitsInches
)

func (u Units) word() string {
	if u == UnitsInches {
		return "G20"
	}
	return "G21"
}

// Machine describes the output device. Sequences are raw g-code lines
// inserted verbatim; an empty sequence is skipped.
type Machine struct {
	Units Units

	// ToolOn/ToolOff run when the tool engages or releases,
	// e.g. spindle or laser control.
	ToolOn  []string
	ToolOff []string

	// Begin/End wrap the whole program.
	Begin []string
	End   []string

	// FeedRate is the cutting speed in units per minute.
	// TravelRate, when positive, parameterizes rapids as well.
	FeedRate   float64
	TravelRate float64
}

// DefaultMachine is a millimeter machine with a moderate feed and
// plain M3/M5 tool control.
func DefaultMachine() Machine {
	return Machine{
		Units:    UnitsMillimeters,
		ToolOn:   []string{"M3"},
		ToolOff:  []string{"M5"},
		FeedRate: 300,
	}
}
