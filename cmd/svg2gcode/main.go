// Command svg2gcode converts an SVG document into a g-code program.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/plastikmind/svg2gcode/converter"
	"github.com/plastikmind/svg2gcode/gcode"
	"github.com/plastikmind/svg2gcode/svgdom"
	"github.com/plastikmind/svg2gcode/svgpath"
	"github.com/plastikmind/svg2gcode/turtle"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("svg2gcode", flag.ContinueOnError)
	fs.SetOutput(stderr)

	out := fs.String("o", "", "output path (default stdout)")
	feed := fs.Float64("feed", 300, "feed rate in units per minute")
	travel := fs.Float64("travel", 0, "travel rate in units per minute (0 leaves rapids unparameterized)")
	inches := fs.Bool("inches", false, "emit G20 inch mode instead of G21")
	toolOn := fs.String("on", "M3", "tool-on g-code sequence, ; separated")
	toolOff := fs.String("off", "M5", "tool-off g-code sequence, ; separated")
	begin := fs.String("begin", "", "program preamble g-code sequence, ; separated")
	end := fs.String("end", "", "program postamble g-code sequence, ; separated")
	tolerance := fs.Float64("tolerance", gcode.DefaultTolerance, "curve flattening tolerance in user units")
	dpi := fs.Float64("dpi", converter.DefaultDPI, "dots per inch for physical units")
	width := fs.String("width", "", "override document width (CSS length, e.g. 100mm)")
	height := fs.String("height", "", "override document height (CSS length)")
	labelAttr := fs.String("label-attr", "", "attribute used to label nodes in comments instead of the tag name")
	preview := fs.String("preview", "", "also render a PNG preview to this path")
	previewSize := fs.Int("preview-size", 512, "preview canvas size in pixels")
	previewScale := fs.Float64("preview-scale", 1, "preview pixels per user unit")
	quiet := fs.Bool("q", false, "suppress warnings")
	verbose := fs.Bool("v", false, "also log informational diagnostics")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: svg2gcode [options] <input.svg>\n\n")
		fmt.Fprintf(stderr, "Converts an SVG document into a g-code program.\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "error: exactly one SVG file argument is required")
		fs.Usage()
		return 2
	}

	level := zerolog.WarnLevel
	if *quiet {
		level = zerolog.ErrorLevel
	} else if *verbose {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level)

	cfg := converter.Config{
		LabelAttribute: *labelAttr,
		DPI:            *dpi,
	}
	var err error
	if cfg.WidthOverride, err = parseOverride(*width); err != nil {
		log.Error().Err(err).Msg("invalid -width")
		return 2
	}
	if cfg.HeightOverride, err = parseOverride(*height); err != nil {
		log.Error().Err(err).Msg("invalid -height")
		return 2
	}

	doc, err := svgdom.ParseFile(fs.Arg(0))
	if err != nil {
		log.Error().Err(err).Msg("could not parse input")
		return 1
	}

	machine := gcode.Machine{
		ToolOn:     splitSequence(*toolOn),
		ToolOff:    splitSequence(*toolOff),
		Begin:      splitSequence(*begin),
		End:        splitSequence(*end),
		FeedRate:   *feed,
		TravelRate: *travel,
	}
	if *inches {
		machine.Units = gcode.UnitsInches
	}
	program := gcode.NewTurtle(machine)
	program.Tolerance = *tolerance

	diag := zerologDiagnostics{log: log}
	if err := converter.Convert(doc, cfg, program, diag); err != nil {
		log.Error().Err(err).Msg("conversion failed")
		return 1
	}

	if err := writeOutput(*out, stdout, program); err != nil {
		log.Error().Err(err).Msg("could not write output")
		return 1
	}

	if *preview != "" {
		canvas := turtle.NewRasterPreview(*previewSize, *previewSize, *previewScale)
		if err := converter.Convert(doc, cfg, canvas, diag); err != nil {
			log.Error().Err(err).Msg("preview conversion failed")
			return 1
		}
		if err := writePNG(*preview, canvas); err != nil {
			log.Error().Err(err).Msg("could not write preview")
			return 1
		}
	}
	return 0
}

func parseOverride(s string) (*svgpath.Length, error) {
	if s == "" {
		return nil, nil
	}
	l, err := svgpath.ParseLength(s)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// splitSequence splits a flag value into g-code lines on semicolons.
func splitSequence(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func writeOutput(path string, stdout io.Writer, program *gcode.Turtle) error {
	if path == "" {
		_, err := program.WriteTo(stdout)
		return err
	}
	fout, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := program.WriteTo(fout); err != nil {
		fout.Close()
		return err
	}
	return fout.Close()
}

func writePNG(path string, canvas *turtle.RasterPreview) error {
	fout, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(fout, canvas.Image()); err != nil {
		fout.Close()
		return err
	}
	return fout.Close()
}

// zerologDiagnostics bridges converter diagnostics onto the CLI logger.
type zerologDiagnostics struct {
	log zerolog.Logger
}

func (z zerologDiagnostics) Warnf(format string, args ...any) {
	z.log.Warn().Msgf(format, args...)
}

func (z zerologDiagnostics) Infof(format string, args ...any) {
	z.log.Info().Msgf(format, args...)
}
