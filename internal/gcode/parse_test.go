package gcode

import "testing"

func TestParseLine_LinearMove(t *testing.T) {
	ev, err := ParseLine("G1 X10.5 Y-2 E0.25")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if ev.Kind != EventMove {
		t.Fatalf("kind=%v want move", ev.Kind)
	}
	mv := ev.Move
	if mv.Rapid {
		t.Fatalf("G1 classified as rapid")
	}
	if !mv.HasX || mv.X != 10.5 {
		t.Fatalf("X: has=%v v=%v", mv.HasX, mv.X)
	}
	if !mv.HasY || mv.Y != -2 {
		t.Fatalf("Y: has=%v v=%v", mv.HasY, mv.Y)
	}
	if mv.HasZ {
		t.Fatalf("Z present on a line without Z")
	}
	if !mv.HasE || mv.E != 0.25 {
		t.Fatalf("E: has=%v v=%v", mv.HasE, mv.E)
	}
}

func TestParseLine_RapidMove(t *testing.T) {
	ev, err := ParseLine("g0 Z0.3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if ev.Kind != EventMove || !ev.Move.Rapid {
		t.Fatalf("lowercase g0 not classified as rapid move: %+v", ev)
	}
	if !ev.Move.HasZ || ev.Move.Z != 0.3 {
		t.Fatalf("Z: %+v", ev.Move)
	}
}

func TestParseLine_LayerMarker(t *testing.T) {
	ev, err := ParseLine(";LAYER:42")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if ev.Kind != EventLayer || ev.Layer != 42 {
		t.Fatalf("got %+v", ev)
	}
}

func TestParseLine_Skips(t *testing.T) {
	for _, line := range []string{
		"",
		"   ",
		"; just a comment",
		"M104 S200",
		"G92 E0",
		"G28 ; home with trailing comment",
	} {
		ev, err := ParseLine(line)
		if err != nil {
			t.Fatalf("%q: %v", line, err)
		}
		if ev.Kind != EventSkip {
			t.Fatalf("%q: kind=%v want skip", line, ev.Kind)
		}
	}
}

func TestParseLine_UnparsableValueOmitted(t *testing.T) {
	ev, err := ParseLine("G1 Xbogus E1.0")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if ev.Move.HasX {
		t.Fatalf("unparsable X treated as present")
	}
	if !ev.Move.HasE || ev.Move.E != 1.0 {
		t.Fatalf("E: %+v", ev.Move)
	}
}

func TestParseLine_TrailingComment(t *testing.T) {
	ev, err := ParseLine("G1 X5 ; skirt")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if ev.Kind != EventMove || !ev.Move.HasX || ev.Move.X != 5 {
		t.Fatalf("got %+v", ev)
	}
}

func TestParseLine_TrailingLayerCommentKeepsMove(t *testing.T) {
	ev, err := ParseLine("G1 X5 ;LAYER:3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if ev.Kind != EventMove {
		t.Fatalf("trailing layer comment ate the move: %+v", ev)
	}
}

func TestParseLine_UnclassifiableIsError(t *testing.T) {
	for _, line := range []string{"hello world", "123", "?G1 X0"} {
		if _, err := ParseLine(line); err == nil {
			t.Fatalf("%q: expected error", line)
		}
	}
}
