package voxel

// Bounds is a running bounding box over every coordinate added to a store.
// Min and Max are meaningless while Count is zero.
type Bounds struct {
	Min, Max Coord
	Count    int
}

func (b *Bounds) Add(c Coord) {
	if b.Count == 0 {
		b.Min = c
		b.Max = c
	} else {
		b.Min = b.Min.Min(c)
		b.Max = b.Max.Max(c)
	}
	b.Count++
}
