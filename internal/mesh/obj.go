package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// WriteTo serializes the mesh as OBJ text: one "v" line per vertex with
// coordinates scaled then offset, fixed to two decimals, followed by one
// "f" line per quad with 1-based vertex indices.
func (m *Mesh) WriteTo(w io.Writer, offset [3]float64, scale float64) error {
	bw := bufio.NewWriter(w)
	for _, c := range m.verts {
		_, err := fmt.Fprintf(bw, "v %.2f %.2f %.2f\n",
			float64(c.X)*scale+offset[0],
			float64(c.Y)*scale+offset[1],
			float64(c.Z)*scale+offset[2])
		if err != nil {
			return err
		}
	}
	for _, f := range m.faces {
		if _, err := fmt.Fprintf(bw, "f %d %d %d %d\n", f[0]+1, f[1]+1, f[2]+1, f[3]+1); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteOBJ writes the mesh to path. A path ending in ".zst" gets a
// zstd-compressed OBJ stream.
func (m *Mesh) WriteOBJ(path string, offset [3]float64, scale float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mesh: create %s: %w", path, err)
	}

	var w io.Writer = f
	var enc *zstd.Encoder
	if strings.HasSuffix(path, ".zst") {
		enc, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
		if err != nil {
			_ = f.Close()
			return fmt.Errorf("mesh: zstd writer: %w", err)
		}
		w = enc
	}

	werr := m.WriteTo(w, offset, scale)
	if enc != nil {
		if err := enc.Close(); err != nil && werr == nil {
			werr = err
		}
	}
	if err := f.Close(); err != nil && werr == nil {
		werr = err
	}
	if werr != nil {
		return fmt.Errorf("mesh: write %s: %w", path, werr)
	}
	return nil
}
