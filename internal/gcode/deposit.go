package gcode

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"voxelforge.dev/internal/voxel"
)

// Params calibrates the extrusion-to-voxel mapping. All lengths are in the
// toolpath's physical units except LayerDepth, which is in voxel units.
type Params struct {
	// Unit is the physical edge length of one voxel.
	Unit float64
	// BlocksPerE converts net extrusion length to a voxel budget
	// (filament cross-section in voxel units).
	BlocksPerE float64
	// StepSize subdivides each extruding segment for injection.
	StepSize float64
	// LayerDepth is the z-slab window below the nozzle, in voxels.
	LayerDepth int
	// InjectDepth bounds the injector's frontier search.
	InjectDepth int
}

// Depositor replays a toolpath into a voxel store: extruding linear moves
// become distance-ordered injections along the segment, everything else
// only updates the tracked position.
type Depositor struct {
	st     voxel.Store
	p      Params
	logger *log.Logger

	pos r3.Vec
	e   float64
}

func NewDepositor(st voxel.Store, p Params, logger *log.Logger) *Depositor {
	return &Depositor{st: st, p: p, logger: logger}
}

// Run consumes the whole toolpath from r. Unclassifiable lines abort the
// run; missing or unparsable letter arguments fall back to the prior
// position and are not errors.
func (d *Depositor) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for sc.Scan() {
		lineno++
		ev, err := ParseLine(sc.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
		switch ev.Kind {
		case EventMove:
			d.move(ev.Move)
		case EventLayer:
			if d.logger != nil {
				d.logger.Printf("layer %d: blocks=%d ranges=%d", ev.Layer, d.st.Blocks(), d.st.Ranges())
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("gcode: read: %w", err)
	}
	return nil
}

func (d *Depositor) move(mv Move) {
	dst := d.pos
	if mv.HasX {
		dst.X = mv.X
	}
	if mv.HasY {
		dst.Y = mv.Y
	}
	if mv.HasZ {
		dst.Z = mv.Z
	}

	dstE := d.e
	if !mv.Rapid && mv.HasE {
		dstE = mv.E
	}

	// Travel moves and retractions deposit nothing.
	if mv.Rapid || dstE <= d.e {
		d.pos = dst
		return
	}

	total := (dstE - d.e) * d.p.BlocksPerE
	budget := int(total)

	delta := r3.Sub(dst, d.pos)
	length := r3.Norm(delta)
	if length > d.p.StepSize {
		dir := r3.Scale(1/length, delta)
		perStep := int(total * d.p.StepSize / length)
		cursor := d.pos
		for r3.Norm(r3.Sub(dst, cursor)) > d.p.StepSize {
			cursor = r3.Add(cursor, r3.Scale(d.p.StepSize, dir))
			step := min(perStep, budget)
			d.inject(cursor, step)
			budget -= step
		}
	}
	d.inject(dst, budget)

	d.pos = dst
	d.e = dstE
}

func (d *Depositor) inject(at r3.Vec, n int) {
	p := d.toVoxel(at)
	voxel.InjectAtDepth(d.st, p.Z-d.p.LayerDepth, p.Z, p, n, d.p.InjectDepth)
}

func (d *Depositor) toVoxel(v r3.Vec) voxel.Coord {
	return voxel.Coord{
		X: int(math.Round(v.X / d.p.Unit)),
		Y: int(math.Round(v.Y / d.p.Unit)),
		Z: int(math.Round(v.Z / d.p.Unit)),
	}
}
