package voxel

import (
	"fmt"
	"sort"
)

// RunStore is the run-length engine: each (x, y) column holds a slice of
// disjoint z-runs sorted by Start. Insertion extends an adjacent run when
// one exists; otherwise it places a fresh singleton run. Runs that become
// adjacent through independent insertions are left unmerged — Blocks and
// mesh extraction are run-count-neutral, only Ranges observes the split.
type RunStore struct {
	cols map[[2]int][]Run
	bb   Bounds
}

func NewRunStore() *RunStore {
	return &RunStore{cols: make(map[[2]int][]Run)}
}

func (s *RunStore) Occupied(c Coord) bool {
	for _, r := range s.cols[[2]int{c.X, c.Y}] {
		if r.Start <= c.Z && c.Z < r.End {
			return true
		}
	}
	return false
}

func (s *RunStore) Add(c Coord) bool {
	key := [2]int{c.X, c.Y}
	z := c.Z

	runs, ok := s.cols[key]
	if !ok {
		s.cols[key] = []Run{{z, z + 1}}
		s.bb.Add(c)
		return true
	}

	// Containment first, over the whole column: an extension check that
	// fires before a later run's containment check would corrupt the
	// disjointness invariant once runs sit back to back.
	for _, r := range runs {
		if r.Start <= z && z < r.End {
			return false
		}
	}

	extended := false
	for i := range runs {
		if runs[i].Start == z+1 {
			runs[i].Start--
			extended = true
			break
		}
		if runs[i].End == z {
			runs[i].End++
			extended = true
			break
		}
	}

	if !extended {
		i := sort.Search(len(runs), func(i int) bool { return runs[i].Start > z })
		runs = append(runs, Run{})
		copy(runs[i+1:], runs[i:])
		runs[i] = Run{z, z + 1}
		s.cols[key] = runs
	}

	s.bb.Add(c)
	return true
}

func (s *RunStore) Blocks() int {
	n := 0
	for _, runs := range s.cols {
		for _, r := range runs {
			if r.Start >= r.End {
				panic(fmt.Sprintf("voxel: malformed run [%d, %d)", r.Start, r.End))
			}
			n += r.Len()
		}
	}
	return n
}

func (s *RunStore) Ranges() int {
	n := 0
	for _, runs := range s.cols {
		n += len(runs)
	}
	return n
}

func (s *RunStore) Bounds() *Bounds { return &s.bb }

func (s *RunStore) EachRun(fn func(x, y int, r Run)) {
	keys := make([][2]int, 0, len(s.cols))
	for k := range s.cols {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})
	for _, k := range keys {
		for _, r := range s.cols[k] {
			fn(k[0], k[1], r)
		}
	}
}
