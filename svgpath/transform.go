package svgpath

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var errBadTransform = errors.New("invalid transform")

// ParseTransformList tokenizes a transform attribute into one matrix
// per transform function, in source order. Composition order is the
// caller's concern.
func ParseTransformList(v string) ([]Matrix, error) {
	var out []Matrix
	for _, chunk := range strings.Split(v, ")") {
		chunk = strings.TrimSpace(chunk)
		if len(chunk) == 0 {
			continue
		}
		name, args, ok := strings.Cut(chunk, "(")
		if !ok {
			return nil, fmt.Errorf("%w: %q", errBadTransform, v)
		}
		nums, err := ParseNumberList(args)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errBadTransform, v, err)
		}
		m, err := transformFunc(strings.ToLower(strings.TrimSpace(name)), nums)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, v)
		}
		out = append(out, m)
	}
	return out, nil
}

func transformFunc(name string, args []float64) (Matrix, error) {
	switch name {
	case "matrix":
		if len(args) == 6 {
			return Matrix{args[0], args[1], args[2], args[3], args[4], args[5]}, nil
		}
	case "translate":
		switch len(args) {
		case 1:
			return Identity.Translate(args[0], 0), nil
		case 2:
			return Identity.Translate(args[0], args[1]), nil
		}
	case "scale":
		switch len(args) {
		case 1:
			return Identity.Scale(args[0], args[0]), nil
		case 2:
			return Identity.Scale(args[0], args[1]), nil
		}
	case "rotate":
		switch len(args) {
		case 1:
			return Identity.Rotate(args[0] * math.Pi / 180), nil
		case 3:
			return Identity.Translate(args[1], args[2]).
				Rotate(args[0] * math.Pi / 180).
				Translate(-args[1], -args[2]), nil
		}
	case "skewx":
		if len(args) == 1 {
			return Identity.SkewX(args[0] * math.Pi / 180), nil
		}
	case "skewy":
		if len(args) == 1 {
			return Identity.SkewY(args[0] * math.Pi / 180), nil
		}
	default:
		return Identity, fmt.Errorf("%w: unknown function %q", errBadTransform, name)
	}
	return Identity, fmt.Errorf("%w: wrong argument count for %q", errBadTransform, name)
}
