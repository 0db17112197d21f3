package voxel

import "fmt"

// Run is a half-open occupied interval [Start, End) along the z axis at a
// fixed (x, y) column. Start < End for every stored run.
type Run struct {
	Start, End int
}

func (r Run) Len() int { return r.End - r.Start }

// Store is the occupancy contract shared by both engines. A store owns the
// set of occupied lattice coordinates plus a running bounding box, and is
// mutated only through Add.
type Store interface {
	// Occupied reports whether c is currently stored.
	Occupied(c Coord) bool
	// Add inserts c. It returns true iff this call newly occupied the
	// voxel; the bounding box is updated only on a true return.
	Add(c Coord) bool
	// Blocks is the total number of occupied unit voxels.
	Blocks() int
	// Ranges is the number of disjoint runs across all columns, a
	// fragmentation metric for diagnostics.
	Ranges() int
	// Bounds is a read-only snapshot of the running bounding box.
	Bounds() *Bounds
	// EachRun visits every run in deterministic order: columns sorted by
	// (x, y), runs within a column by ascending Start.
	EachRun(fn func(x, y int, r Run))
}

// Engine selects a Store implementation at construction time.
type Engine string

const (
	// EngineRuns is the per-column run-length store.
	EngineRuns Engine = "runs"
	// EngineIntervals is the ordered interval-set store.
	EngineIntervals Engine = "intervals"
)

// NewStore builds an empty store backed by the named engine.
func NewStore(e Engine) (Store, error) {
	switch e {
	case EngineRuns:
		return NewRunStore(), nil
	case EngineIntervals:
		return NewIntervalStore(), nil
	default:
		return nil, fmt.Errorf("voxel: unknown engine %q", e)
	}
}
