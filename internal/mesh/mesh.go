// Package mesh builds and serializes quad boundary meshes over a voxel
// store.
package mesh

import (
	"fmt"

	"voxelforge.dev/internal/voxel"
)

// Mesh is a deduplicated vertex list plus quad faces. Vertex indices are
// assigned on first occurrence and stay stable for the life of the mesh;
// serialization depends on that ordering.
type Mesh struct {
	verts []voxel.Coord
	index map[voxel.Coord]int
	faces [][4]int
}

func New() *Mesh {
	return &Mesh{index: make(map[voxel.Coord]int)}
}

func (m *Mesh) Verts() []voxel.Coord { return m.verts }
func (m *Mesh) Faces() [][4]int      { return m.faces }

func (m *Mesh) addVert(c voxel.Coord) int {
	if i, ok := m.index[c]; ok {
		return i
	}
	i := len(m.verts)
	m.verts = append(m.verts, c)
	m.index[c] = i
	return i
}

// AddFace emits one quad anchored at anchor with extent dir. dir must have
// exactly one zero component (the face normal axis); the other two, both
// ±1, span the quad. The corner order follows the sign pattern of dir, so
// winding is consistent per direction table, not independently validated.
func (m *Mesh) AddFace(anchor, dir voxel.Coord) {
	var q [4]int
	switch {
	case dir.X == 0 && dir.Y != 0 && dir.Z != 0:
		q[0] = m.addVert(anchor)
		q[1] = m.addVert(anchor.Add(dir.ProjY()))
		q[2] = m.addVert(anchor.Add(dir.ProjYZ()))
		q[3] = m.addVert(anchor.Add(dir.ProjZ()))
	case dir.Y == 0 && dir.X != 0 && dir.Z != 0:
		q[0] = m.addVert(anchor)
		q[1] = m.addVert(anchor.Add(dir.ProjX()))
		q[2] = m.addVert(anchor.Add(dir.ProjXZ()))
		q[3] = m.addVert(anchor.Add(dir.ProjZ()))
	case dir.Z == 0 && dir.X != 0 && dir.Y != 0:
		q[0] = m.addVert(anchor)
		q[1] = m.addVert(anchor.Add(dir.ProjX()))
		q[2] = m.addVert(anchor.Add(dir.ProjXY()))
		q[3] = m.addVert(anchor.Add(dir.ProjY()))
	default:
		panic(fmt.Sprintf("mesh: malformed face extent %v", dir))
	}
	m.faces = append(m.faces, q)
}

// AddCube emits the six faces of the unit cube anchored at c, without any
// occupancy checks. Used by the brute-force and shell generators.
func (m *Mesh) AddCube(c voxel.Coord) {
	m.AddFace(c, voxel.Coord{X: 1, Y: 1})
	m.AddFace(c, voxel.Coord{X: 1, Z: 1})
	m.AddFace(c, voxel.Coord{Y: 1, Z: 1})

	c = c.Add(voxel.Unit())
	m.AddFace(c, voxel.Coord{X: -1, Y: -1})
	m.AddFace(c, voxel.Coord{X: -1, Z: -1})
	m.AddFace(c, voxel.Coord{Y: -1, Z: -1})
}
