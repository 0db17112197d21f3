package mesh

import (
	"fmt"

	"voxelforge.dev/internal/voxel"
)

// Lateral face table: neighbor offset to test, anchor offset for the
// emitted quad, and its extent vector. The offset/extent pairing fixes the
// winding for each direction; AddFace's corner order assumes this table.
var lateral = [4]struct {
	dx, dy int
	off    voxel.Coord
	dir    voxel.Coord
}{
	{1, 0, voxel.Coord{X: 1}, voxel.Coord{Y: 1, Z: 1}},
	{-1, 0, voxel.Coord{}, voxel.Coord{Y: 1, Z: 1}},
	{0, 1, voxel.Coord{Y: 1}, voxel.Coord{X: 1, Z: 1}},
	{0, -1, voxel.Coord{}, voxel.Coord{X: 1, Z: 1}},
}

// Build extracts the exposed boundary of st as a quad mesh. Caps are
// emitted per run when the voxel beyond either end is open; lateral faces
// are found by a per-voxel neighbor scan, since the run-length compression
// only applies along z.
func Build(st voxel.Store) *Mesh {
	m := New()
	up := voxel.Coord{X: 1, Y: 1}

	st.EachRun(func(x, y int, r voxel.Run) {
		if r.Start >= r.End {
			panic(fmt.Sprintf("mesh: store yielded malformed run [%d, %d)", r.Start, r.End))
		}

		if !st.Occupied(voxel.Coord{X: x, Y: y, Z: r.Start - 1}) {
			m.AddFace(voxel.Coord{X: x, Y: y, Z: r.Start}, up)
		}
		if !st.Occupied(voxel.Coord{X: x, Y: y, Z: r.End}) {
			m.AddFace(voxel.Coord{X: x, Y: y, Z: r.End}, up)
		}

		for _, f := range lateral {
			for z := r.Start; z < r.End; z++ {
				if st.Occupied(voxel.Coord{X: x + f.dx, Y: y + f.dy, Z: z}) {
					continue
				}
				anchor := voxel.Coord{X: x, Y: y, Z: z}.Add(f.off)
				m.AddFace(anchor, f.dir)
			}
		}
	})

	return m
}
