package tuning

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	d := Defaults()
	if d.SphereRadius != 100 {
		t.Fatalf("sphere_radius=%d", d.SphereRadius)
	}
	if d.Unit != 0.04 {
		t.Fatalf("unit=%v", d.Unit)
	}
	if d.BlocksPerE != 29000 {
		t.Fatalf("blocks_per_e=%v", d.BlocksPerE)
	}
	if d.LayerDepth != 20 || d.InjectDepth != 100 {
		t.Fatalf("layer_depth=%d inject_depth=%d", d.LayerDepth, d.InjectDepth)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	body := "sphere_radius: 12\nunit: 0.1\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.SphereRadius != 12 || got.Unit != 0.1 {
		t.Fatalf("overrides not applied: %+v", got)
	}
	if got.BlocksPerE != Defaults().BlocksPerE {
		t.Fatalf("unset field lost its default: %+v", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("unit: [not a number"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error")
	}
}
