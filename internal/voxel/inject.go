package voxel

import "container/heap"

// DefaultInjectDepth caps how many expansion steps an injection frontier
// may take from the seed before an entry is abandoned. It bounds worst-case
// search cost when the slab is large or already densely occupied.
const DefaultInjectDepth = 100

var sixNeighbors = [6]Coord{
	{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
}

type frontierItem struct {
	dist  int
	depth int
	pos   Coord
}

// frontier is a min-heap on squared distance to the seed. container/heap
// pops the Less-smallest element, so Less must read "closer wins" — the
// natural max-heap ordering would silently fill farthest-first.
type frontier []frontierItem

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].dist < f[j].dist }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)        { *f = append(*f, x.(frontierItem)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]
	return it
}

// InjectAt deposits up to n voxels into st, nearest-first by squared
// distance from seed, restricted to z in [zlow, zhigh], with the default
// depth bound.
func InjectAt(st Store, zlow, zhigh int, seed Coord, n int) {
	InjectAtDepth(st, zlow, zhigh, seed, n, DefaultInjectDepth)
}

// InjectAtDepth is InjectAt with an explicit depth bound. Voxels are
// committed in non-decreasing distance order, subject to the depth cutoff.
// Exhausting the frontier before the budget is a normal partial deposit.
func InjectAtDepth(st Store, zlow, zhigh int, seed Coord, n, depth int) {
	if n == 0 {
		return
	}

	cand := &frontier{{dist: 0, depth: depth, pos: seed}}
	visited := NewRunStore()

	for cand.Len() > 0 {
		it := heap.Pop(cand).(frontierItem)
		if it.depth == 0 {
			continue
		}
		if !visited.Add(it.pos) {
			continue
		}

		if st.Add(it.pos) {
			n--
			if n == 0 {
				return
			}
		}

		for _, d := range sixNeighbors {
			next := it.pos.Add(d)
			if next.Z < zlow || next.Z > zhigh {
				continue
			}
			if visited.Occupied(next) {
				continue
			}
			heap.Push(cand, frontierItem{
				dist:  seed.Sub(next).MagSq(),
				depth: it.depth - 1,
				pos:   next,
			})
		}
	}
}
