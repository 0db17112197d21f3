package voxel

import "github.com/google/btree"

// span is a half-open interval [start, end) under the lexicographic Coord
// order. Every stored span covers a single (x, y) column: spans are only
// ever created with unit extent along z and merged with column neighbors.
type span struct {
	start, end Coord
}

// IntervalStore is the interval-set engine: one ordered collection of
// disjoint spans keyed by the full 3-D lexicographic order, in place of
// the run-length engine's per-column lists. Unlike RunStore it coalesces
// with both lexicographic neighbors on insert, so Ranges reports at most
// the run-length engine's count.
type IntervalStore struct {
	tree *btree.BTreeG[span]
	bb   Bounds
}

func NewIntervalStore() *IntervalStore {
	return &IntervalStore{
		tree: btree.NewG(32, func(a, b span) bool { return a.start.Less(b.start) }),
	}
}

// find returns the greatest span whose start is <= c, if any.
func (s *IntervalStore) find(c Coord) (span, bool) {
	var got span
	var ok bool
	s.tree.DescendLessOrEqual(span{start: c}, func(sp span) bool {
		got, ok = sp, true
		return false
	})
	return got, ok
}

func (s *IntervalStore) Occupied(c Coord) bool {
	sp, ok := s.find(c)
	if !ok {
		return false
	}
	return sp.start.X == c.X && sp.start.Y == c.Y &&
		sp.start.Z <= c.Z && c.Z < sp.end.Z
}

func (s *IntervalStore) Add(c Coord) bool {
	if s.Occupied(c) {
		return false
	}

	ins := span{start: c, end: c.Add(Coord{Z: 1})}

	// Coalesce with the column neighbor below. Any span starting at or
	// before c cannot contain c here, so adjacency is the only case.
	if below, ok := s.find(c); ok &&
		below.start.X == c.X && below.start.Y == c.Y && below.end.Z == c.Z {
		s.tree.Delete(below)
		ins.start = below.start
	}

	// Coalesce with the column neighbor above. The tree must not be
	// mutated while an iterator is live, so capture first.
	var above span
	var haveAbove bool
	s.tree.AscendGreaterOrEqual(span{start: ins.end}, func(sp span) bool {
		if sp.start == ins.end {
			above, haveAbove = sp, true
		}
		return false
	})
	if haveAbove {
		s.tree.Delete(above)
		ins.end = above.end
	}

	s.tree.ReplaceOrInsert(ins)
	s.bb.Add(c)
	return true
}

func (s *IntervalStore) Blocks() int {
	n := 0
	s.tree.Ascend(func(sp span) bool {
		n += sp.end.Z - sp.start.Z
		return true
	})
	return n
}

func (s *IntervalStore) Ranges() int { return s.tree.Len() }

func (s *IntervalStore) Bounds() *Bounds { return &s.bb }

func (s *IntervalStore) EachRun(fn func(x, y int, r Run)) {
	s.tree.Ascend(func(sp span) bool {
		fn(sp.start.X, sp.start.Y, Run{Start: sp.start.Z, End: sp.end.Z})
		return true
	})
}
