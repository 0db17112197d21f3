// Package gen drives procedural solid generation over a bounded cubic
// lattice domain.
package gen

import (
	"voxelforge.dev/internal/mesh"
	"voxelforge.dev/internal/voxel"
)

// Predicate decides solid/empty per integer coordinate.
type Predicate func(x, y, z int) bool

// Sphere is the solid ball of the given radius centered on the origin.
func Sphere(r int) Predicate {
	return func(x, y, z int) bool { return x*x+y*y+z*z < r*r }
}

var sixNeighbors = [6][3]int{
	{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
}

// scan enumerates the cube [-r, r]^3 in z-major order, matching the
// ascending-z access pattern the run-length store extends cheapest.
func scan(r int, fn func(x, y, z int)) {
	for z := -r; z <= r; z++ {
		for y := -r; y <= r; y++ {
			for x := -r; x <= r; x++ {
				fn(x, y, z)
			}
		}
	}
}

// BruteForce emits a full cube for every solid voxel, shared faces and
// all. Kept as the dumbest possible baseline.
func BruteForce(r int, p Predicate) *mesh.Mesh {
	m := mesh.New()
	scan(r, func(x, y, z int) {
		if p(x, y, z) {
			m.AddCube(voxel.Coord{X: x, Y: y, Z: z})
		}
	})
	return m
}

// Shell emits cubes only where the predicate flips across a 6-neighbor.
func Shell(r int, p Predicate) *mesh.Mesh {
	m := mesh.New()
	scan(r, func(x, y, z int) {
		r0 := p(x, y, z)
		for _, d := range sixNeighbors {
			if p(x+d[0], y+d[1], z+d[2]) != r0 {
				m.AddCube(voxel.Coord{X: x, Y: y, Z: z})
				return
			}
		}
	})
	return m
}

// Fill inserts every solid voxel into st; the boundary mesh then comes
// from mesh.Build.
func Fill(st voxel.Store, r int, p Predicate) {
	scan(r, func(x, y, z int) {
		if p(x, y, z) {
			st.Add(voxel.Coord{X: x, Y: y, Z: z})
		}
	})
}

// Frames fills st like Fill but emits an intermediate boundary mesh every
// `every` insertions. emit receives the frame index and may abort the scan
// by returning an error.
func Frames(st voxel.Store, r int, p Predicate, every int, emit func(frame int, m *mesh.Mesh) error) error {
	count, frame := 0, 0
	var err error
	scan(r, func(x, y, z int) {
		if err != nil || !p(x, y, z) {
			return
		}
		st.Add(voxel.Coord{X: x, Y: y, Z: z})
		count++
		if count%every == 0 {
			err = emit(frame, mesh.Build(st))
			frame++
		}
	})
	return err
}

// FramesConstZ fills st slice by slice and emits one boundary mesh per
// completed non-negative z slice.
func FramesConstZ(st voxel.Store, r int, p Predicate, emit func(frame int, m *mesh.Mesh) error) error {
	frame := 0
	for z := -r; z <= r; z++ {
		for y := -r; y <= r; y++ {
			for x := -r; x <= r; x++ {
				if p(x, y, z) {
					st.Add(voxel.Coord{X: x, Y: y, Z: z})
				}
			}
		}
		if z < 0 {
			continue
		}
		if err := emit(frame, mesh.Build(st)); err != nil {
			return err
		}
		frame++
	}
	return nil
}

// InjectDemo marches a seed along +x, injecting a fixed budget per step
// into a thin slab. rate is voxels per unit distance.
func InjectDemo(st voxel.Store, zlow, zhigh, stepDist, dist, rate, depth int) {
	for step := 0; step < dist/stepDist; step++ {
		seed := voxel.Coord{X: step * stepDist}
		voxel.InjectAtDepth(st, zlow, zhigh, seed, rate*stepDist, depth)
	}
}
