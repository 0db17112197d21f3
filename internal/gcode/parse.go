// Package gcode consumes a line-oriented toolpath and drives voxel
// deposition from its extrusion moves.
package gcode

import (
	"fmt"
	"strconv"
	"strings"
)

// EventKind classifies one parsed toolpath line.
type EventKind int

const (
	// EventSkip is a line with no effect on deposition: blank lines,
	// plain comments, non-G commands, and G codes other than 0/1.
	EventSkip EventKind = iota
	// EventMove is a G0 (positioning) or G1 (linear move) command.
	EventMove
	// EventLayer is a layer-change comment marker.
	EventLayer
)

const layerMarker = ";LAYER:"

// Move carries the letter arguments of a motion command. A missing letter
// means "unchanged from the current position", so presence is tracked
// separately from the value.
type Move struct {
	// Rapid is true for G0, false for G1.
	Rapid bool

	HasX, HasY, HasZ, HasE bool
	X, Y, Z, E             float64
}

// Event is one classified toolpath line.
type Event struct {
	Kind  EventKind
	Move  Move
	Layer int
}

// ParseLine classifies a single toolpath line. Letter arguments with an
// unparsable numeric value are treated as omitted; a line whose head is
// not a recognizable command word at all is an error for the caller to
// propagate.
func ParseLine(line string) (Event, error) {
	s := line
	if i := strings.IndexByte(s, ';'); i >= 0 {
		// Layer markers only count on comment-only lines; a trailing
		// comment must not eat the command in front of it.
		if strings.TrimSpace(s[:i]) == "" {
			if rest, ok := strings.CutPrefix(s[i:], layerMarker); ok {
				if n, err := strconv.Atoi(strings.TrimSpace(rest)); err == nil {
					return Event{Kind: EventLayer, Layer: n}, nil
				}
			}
		}
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return Event{Kind: EventSkip}, nil
	}

	fields := strings.Fields(s)
	letter, major, err := splitWord(fields[0])
	if err != nil {
		return Event{}, fmt.Errorf("gcode: unclassifiable line %q: %w", line, err)
	}
	if letter != 'G' || (major != 0 && major != 1) {
		return Event{Kind: EventSkip}, nil
	}

	mv := Move{Rapid: major == 0}
	for _, f := range fields[1:] {
		if len(f) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(f[1:], 64)
		if err != nil {
			// Unparsable value: treat the letter as omitted.
			continue
		}
		switch f[0] {
		case 'X':
			mv.HasX, mv.X = true, v
		case 'Y':
			mv.HasY, mv.Y = true, v
		case 'Z':
			mv.HasZ, mv.Z = true, v
		case 'E':
			mv.HasE, mv.E = true, v
		}
	}
	return Event{Kind: EventMove, Move: mv}, nil
}

func splitWord(w string) (byte, int, error) {
	if len(w) < 2 {
		return 0, 0, fmt.Errorf("short command word %q", w)
	}
	c := w[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'Z' {
		return 0, 0, fmt.Errorf("bad command letter in %q", w)
	}
	n, err := strconv.Atoi(w[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("bad command number in %q", w)
	}
	return c, n, nil
}
