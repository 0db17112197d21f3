package gen

import (
	"testing"

	"voxelforge.dev/internal/mesh"
	"voxelforge.dev/internal/voxel"
)

func latticeCount(r int) int {
	n := 0
	for z := -r; z <= r; z++ {
		for y := -r; y <= r; y++ {
			for x := -r; x <= r; x++ {
				if x*x+y*y+z*z < r*r {
					n++
				}
			}
		}
	}
	return n
}

func TestFill_SphereBlockCount(t *testing.T) {
	const r = 5
	want := latticeCount(r)
	for _, e := range []voxel.Engine{voxel.EngineRuns, voxel.EngineIntervals} {
		st, err := voxel.NewStore(e)
		if err != nil {
			t.Fatalf("%s: %v", e, err)
		}
		Fill(st, r, Sphere(r))
		if got := st.Blocks(); got != want {
			t.Fatalf("%s: blocks=%d want %d", e, got, want)
		}
	}
}

func TestFill_MeshVertsInRange(t *testing.T) {
	const r = 5
	st := voxel.NewRunStore()
	Fill(st, r, Sphere(r))
	m := mesh.Build(st)
	if len(m.Faces()) == 0 {
		t.Fatalf("no faces for a solid sphere")
	}
	for _, v := range m.Verts() {
		for _, c := range []int{v.X, v.Y, v.Z} {
			if c < -(r+1) || c > r+1 {
				t.Fatalf("vertex %v outside [-%d, %d]", v, r+1, r+1)
			}
		}
	}
}

// The radius-100 identity from the round-trip scenario. Slow-ish; skipped
// under -short.
func TestFill_SphereRadius100RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("radius-100 scan")
	}
	const r = 100
	st := voxel.NewRunStore()
	Fill(st, r, Sphere(r))
	if got, want := st.Blocks(), latticeCount(r); got != want {
		t.Fatalf("blocks=%d want %d", got, want)
	}
	m := mesh.Build(st)
	for _, v := range m.Verts() {
		for _, c := range []int{v.X, v.Y, v.Z} {
			if c < -(r+1) || c > r+1 {
				t.Fatalf("vertex %v outside bounds", v)
			}
		}
	}
}

func TestBruteForce_CubePerSolidVoxel(t *testing.T) {
	const r = 3
	m := BruteForce(r, Sphere(r))
	if got, want := len(m.Faces()), 6*latticeCount(r); got != want {
		t.Fatalf("faces=%d want %d", got, want)
	}
}

func TestShell_SubsetOfBruteForce(t *testing.T) {
	const r = 4
	shell := Shell(r, Sphere(r))
	brute := BruteForce(r, Sphere(r))
	if len(shell.Faces()) == 0 {
		t.Fatalf("empty shell")
	}
	if len(shell.Faces()) >= len(brute.Faces()) {
		t.Fatalf("shell faces=%d not below brute force %d",
			len(shell.Faces()), len(brute.Faces()))
	}
	// A voxel strictly inside the ball must not appear in the shell: its
	// corner (0,0,0) only occurs via interior cubes.
	interior := voxel.Coord{}
	for _, v := range shell.Verts() {
		if v == interior {
			t.Fatalf("shell contains interior corner %v", v)
		}
	}
}

func TestFrames_EmitsAndFills(t *testing.T) {
	const r = 4
	st := voxel.NewRunStore()
	frames := 0
	err := Frames(st, r, Sphere(r), 50, func(frame int, m *mesh.Mesh) error {
		if frame != frames {
			t.Fatalf("frame index %d, want %d", frame, frames)
		}
		if len(m.Faces()) == 0 {
			t.Fatalf("frame %d has no faces", frame)
		}
		frames++
		return nil
	})
	if err != nil {
		t.Fatalf("frames: %v", err)
	}
	want := latticeCount(r)
	if frames != want/50 {
		t.Fatalf("frames=%d want %d", frames, want/50)
	}
	if st.Blocks() != want {
		t.Fatalf("blocks=%d want %d", st.Blocks(), want)
	}
}

func TestFramesConstZ_OneFramePerUpperSlice(t *testing.T) {
	const r = 3
	st := voxel.NewRunStore()
	frames := 0
	err := FramesConstZ(st, r, Sphere(r), func(frame int, m *mesh.Mesh) error {
		frames++
		return nil
	})
	if err != nil {
		t.Fatalf("frames: %v", err)
	}
	if frames != r+1 {
		t.Fatalf("frames=%d want %d (z = 0..r)", frames, r+1)
	}
	if st.Blocks() != latticeCount(r) {
		t.Fatalf("blocks=%d want %d", st.Blocks(), latticeCount(r))
	}
}

func TestInjectDemo_DepositsAlongSeedMarch(t *testing.T) {
	st := voxel.NewRunStore()
	InjectDemo(st, -2, 2, 2, 10, 8, 100)
	// 5 steps of 16 voxels each; slab is roomy enough for full deposits.
	if got := st.Blocks(); got != 80 {
		t.Fatalf("blocks=%d want 80", got)
	}
	bb := st.Bounds()
	if bb.Min.Z < -2 || bb.Max.Z > 2 {
		t.Fatalf("z bounds [%d, %d] escape slab", bb.Min.Z, bb.Max.Z)
	}
}
