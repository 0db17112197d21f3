// Package voxel holds the integer-lattice occupancy model: the coordinate
// type, the two occupancy store engines, and the material injector.
package voxel

import "fmt"

// Coord is an integer lattice position. int is at least 64 bits on every
// supported platform, so MagSq cannot overflow for coordinates up to ~1e4.
type Coord struct {
	X, Y, Z int
}

// Unit is the (1, 1, 1) diagonal.
func Unit() Coord { return Coord{1, 1, 1} }

func (c Coord) Add(o Coord) Coord { return Coord{c.X + o.X, c.Y + o.Y, c.Z + o.Z} }
func (c Coord) Sub(o Coord) Coord { return Coord{c.X - o.X, c.Y - o.Y, c.Z - o.Z} }

// Min returns the componentwise minimum of c and o.
func (c Coord) Min(o Coord) Coord {
	return Coord{min(c.X, o.X), min(c.Y, o.Y), min(c.Z, o.Z)}
}

// Max returns the componentwise maximum of c and o.
func (c Coord) Max(o Coord) Coord {
	return Coord{max(c.X, o.X), max(c.Y, o.Y), max(c.Z, o.Z)}
}

// MagSq is the squared Euclidean norm.
func (c Coord) MagSq() int { return c.X*c.X + c.Y*c.Y + c.Z*c.Z }

// Projections retain the named components and zero the rest. The mesh
// builder uses them to turn a face extent vector into quad-corner offsets.
func (c Coord) ProjX() Coord  { return Coord{X: c.X} }
func (c Coord) ProjY() Coord  { return Coord{Y: c.Y} }
func (c Coord) ProjZ() Coord  { return Coord{Z: c.Z} }
func (c Coord) ProjXY() Coord { return Coord{X: c.X, Y: c.Y} }
func (c Coord) ProjXZ() Coord { return Coord{X: c.X, Z: c.Z} }
func (c Coord) ProjYZ() Coord { return Coord{Y: c.Y, Z: c.Z} }

// Less orders coordinates lexicographically (x, then y, then z).
func (c Coord) Less(o Coord) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.Z < o.Z
}

func (c Coord) String() string { return fmt.Sprintf("[%d %d %d]", c.X, c.Y, c.Z) }
